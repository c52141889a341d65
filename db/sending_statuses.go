package db

import (
	"context"
	"database/sql"

	"github.com/google/uuid"
	"github.com/pkg/errors"

	"github.com/cyverse-de/notification-engine/model"

	sq "github.com/Masterminds/squirrel"
)

// sendingStatusColumns lists the columns that make up a stored sending status, in
// the order the scan functions in this file expect them.
var sendingStatusColumns = []string{
	"id",
	"user_id",
	"notification_id",
	"created_date",
	"is_seen",
}

// SaveSendingStatus saves a single sending status in the database.
func SaveSendingStatus(ctx context.Context, tx *sql.Tx, status *model.SendingStatus) error {
	wrapMsg := "unable to save sending status"

	// Build the statement to insert the sending status.
	statement, args, err := sq.StatementBuilder.
		PlaceholderFormat(sq.Dollar).
		Insert("sending_statuses").
		Columns(sendingStatusColumns...).
		Values(
			status.ID,
			status.UserID,
			status.NotificationID,
			status.CreatedDate,
			status.IsSeen).
		ToSql()
	if err != nil {
		return errors.Wrap(err, wrapMsg)
	}

	// Execute the statement.
	_, err = tx.ExecContext(ctx, statement, args...)
	if err != nil {
		return errors.Wrap(err, wrapMsg)
	}

	return nil
}

// CountUnseenStatuses counts the number of sending statuses for the user that
// haven't been marked as seen.
func CountUnseenStatuses(ctx context.Context, tx *sql.Tx, userID uuid.UUID) (int64, error) {
	wrapMsg := "unable to count unseen sending statuses"
	var total int64

	// Build the statement to count the unseen sending statuses.
	statement, args, err := sq.StatementBuilder.
		PlaceholderFormat(sq.Dollar).
		Select("count(*)").
		From("sending_statuses").
		Where(sq.Eq{"user_id": userID}).
		Where(sq.Eq{"is_seen": false}).
		ToSql()
	if err != nil {
		return 0, errors.Wrap(err, wrapMsg)
	}

	// Execute the statement.
	err = tx.QueryRowContext(ctx, statement, args...).Scan(&total)
	if err != nil {
		return 0, errors.Wrap(err, wrapMsg)
	}

	return total, nil
}

// ListSendingStatuses lists every sending status for the user, seen or not.
func ListSendingStatuses(ctx context.Context, tx *sql.Tx, userID uuid.UUID) ([]model.SendingStatus, error) {
	wrapMsg := "unable to list sending statuses"

	// Build the query.
	query, args, err := sq.StatementBuilder.
		PlaceholderFormat(sq.Dollar).
		Select(sendingStatusColumns...).
		From("sending_statuses").
		Where(sq.Eq{"user_id": userID}).
		ToSql()
	if err != nil {
		return nil, errors.Wrap(err, wrapMsg)
	}

	// Query the database.
	rows, err := tx.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, errors.Wrap(err, wrapMsg)
	}
	defer rows.Close()

	// Collect the results.
	statuses := make([]model.SendingStatus, 0)
	for rows.Next() {
		var status model.SendingStatus
		err = rows.Scan(&status.ID, &status.UserID, &status.NotificationID, &status.CreatedDate, &status.IsSeen)
		if err != nil {
			return nil, errors.Wrap(err, wrapMsg)
		}
		statuses = append(statuses, status)
	}
	if err = rows.Err(); err != nil {
		return nil, errors.Wrap(err, wrapMsg)
	}

	return statuses, nil
}

// FirstUnseenStatus returns the user's oldest unseen sending status, ordering by
// creation date with the identifier as a deterministic tie-break. The result is
// nil if every sending status for the user has been seen.
func FirstUnseenStatus(ctx context.Context, tx *sql.Tx, userID uuid.UUID) (*model.SendingStatus, error) {
	wrapMsg := "unable to look up the first unseen sending status"

	// Build the query.
	query, args, err := sq.StatementBuilder.
		PlaceholderFormat(sq.Dollar).
		Select(sendingStatusColumns...).
		From("sending_statuses").
		Where(sq.Eq{"user_id": userID}).
		Where(sq.Eq{"is_seen": false}).
		OrderBy("created_date ASC", "id ASC").
		Limit(1).
		ToSql()
	if err != nil {
		return nil, errors.Wrap(err, wrapMsg)
	}

	// Query the database.
	var status model.SendingStatus
	row := tx.QueryRowContext(ctx, query, args...)
	err = row.Scan(&status.ID, &status.UserID, &status.NotificationID, &status.CreatedDate, &status.IsSeen)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, errors.Wrap(err, wrapMsg)
	}

	return &status, nil
}

// MarkStatusSeen marks a single sending status as seen.
func MarkStatusSeen(ctx context.Context, tx *sql.Tx, statusID uuid.UUID) error {
	wrapMsg := "unable to mark the sending status as seen"

	// Build the statement.
	statement, args, err := sq.StatementBuilder.
		PlaceholderFormat(sq.Dollar).
		Update("sending_statuses").
		Set("is_seen", true).
		Where(sq.Eq{"id": statusID}).
		ToSql()
	if err != nil {
		return errors.Wrap(err, wrapMsg)
	}

	// Execute the statement.
	_, err = tx.ExecContext(ctx, statement, args...)
	if err != nil {
		return errors.Wrap(err, wrapMsg)
	}

	return nil
}

// MarkAllStatusesSeen marks every unseen sending status for the user as seen in a
// single statement, returning the number of rows that were updated.
func MarkAllStatusesSeen(ctx context.Context, tx *sql.Tx, userID uuid.UUID) (int64, error) {
	wrapMsg := "unable to mark the sending statuses as seen"

	// Build the statement.
	statement, args, err := sq.StatementBuilder.
		PlaceholderFormat(sq.Dollar).
		Update("sending_statuses").
		Set("is_seen", true).
		Where(sq.Eq{"user_id": userID}).
		Where(sq.Eq{"is_seen": false}).
		ToSql()
	if err != nil {
		return 0, errors.Wrap(err, wrapMsg)
	}

	// Execute the statement.
	result, err := tx.ExecContext(ctx, statement, args...)
	if err != nil {
		return 0, errors.Wrap(err, wrapMsg)
	}

	// Determine how many rows were updated.
	count, err := result.RowsAffected()
	if err != nil {
		return 0, errors.Wrap(err, wrapMsg)
	}

	return count, nil
}
