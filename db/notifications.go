package db

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"
	"github.com/pkg/errors"

	"github.com/cyverse-de/notification-engine/model"

	sq "github.com/Masterminds/squirrel"
)

// notificationColumns lists the columns that make up a stored notification, in
// the order the scan functions in this file expect them.
var notificationColumns = []string{
	"id",
	"user_id",
	"quotation_name",
	"created_date",
	"expiry_date",
	"is_deleted",
}

// SaveNotification saves a single notification in the database.
func SaveNotification(ctx context.Context, tx *sql.Tx, notification *model.Notification) error {
	wrapMsg := "unable to save notification"

	// Build the statement to insert the notification.
	statement, args, err := sq.StatementBuilder.
		PlaceholderFormat(sq.Dollar).
		Insert("notifications").
		Columns(notificationColumns...).
		Values(
			notification.ID,
			notification.UserID,
			notification.QuotationName,
			notification.CreatedDate,
			notification.ExpiryDate,
			notification.IsDeleted).
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

// GetNotification looks up the notification with the given identifier. The result is
// nil if no matching notification exists. The soft-delete flag is deliberately not
// checked here: a logically deleted notification can still be fetched by ID.
func GetNotification(ctx context.Context, tx *sql.Tx, id uuid.UUID) (*model.Notification, error) {
	wrapMsg := fmt.Sprintf("unable to look up the notification with ID `%s`", id)

	// Build the query.
	query, args, err := sq.StatementBuilder.
		PlaceholderFormat(sq.Dollar).
		Select(notificationColumns...).
		From("notifications").
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, errors.Wrap(err, wrapMsg)
	}

	// Query the database.
	var notification model.Notification
	row := tx.QueryRowContext(ctx, query, args...)
	err = row.Scan(
		&notification.ID,
		&notification.UserID,
		&notification.QuotationName,
		&notification.CreatedDate,
		&notification.ExpiryDate,
		&notification.IsDeleted)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, errors.Wrap(err, wrapMsg)
	}

	return &notification, nil
}

// UserHasNotifications determines whether any notifications that have not been
// logically deleted exist for the user.
func UserHasNotifications(ctx context.Context, tx *sql.Tx, userID uuid.UUID) (bool, error) {
	wrapMsg := "unable to count notifications for the user"
	var total int64

	// Build the statement to count the user's notifications.
	statement, args, err := sq.StatementBuilder.
		PlaceholderFormat(sq.Dollar).
		Select("count(*)").
		From("notifications").
		Where(sq.Eq{"user_id": userID}).
		Where(sq.Eq{"is_deleted": false}).
		ToSql()
	if err != nil {
		return false, errors.Wrap(err, wrapMsg)
	}

	// Execute the statement.
	err = tx.QueryRowContext(ctx, statement, args...).Scan(&total)
	if err != nil {
		return false, errors.Wrap(err, wrapMsg)
	}

	return total > 0, nil
}
