package db

import (
	"context"
	"database/sql"

	"github.com/google/uuid"
	"github.com/pkg/errors"

	"github.com/cyverse-de/notification-engine/model"

	sq "github.com/Masterminds/squirrel"
)

// viewSelectBuilder builds the base query shared by the listing endpoints: the
// user's sending statuses joined with the notifications they track. The
// notifications' soft-delete flag is deliberately not checked by this base query.
func viewSelectBuilder(userID uuid.UUID, columns ...string) sq.SelectBuilder {
	return sq.StatementBuilder.
		PlaceholderFormat(sq.Dollar).
		Select(columns...).
		From("sending_statuses ss").
		Join("notifications n ON ss.notification_id = n.id").
		Where(sq.Eq{"ss.user_id": userID})
}

// ListUnseenNotifications lists the user's unseen sending statuses joined with
// the notifications they track and the name of the user each status belongs to.
// No particular ordering is guaranteed.
func ListUnseenNotifications(ctx context.Context, tx *sql.Tx, userID uuid.UUID) ([]model.NotificationView, error) {
	wrapMsg := "unable to list unseen notifications"

	// Build the query.
	query, args, err := viewSelectBuilder(
		userID,
		"ss.id", "n.id", "n.quotation_name", "n.created_date", "n.expiry_date", "u.user_name").
		Join("users u ON ss.user_id = u.id").
		Where(sq.Eq{"ss.is_seen": false}).
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
	views := make([]model.NotificationView, 0)
	for rows.Next() {
		var view model.NotificationView
		err = rows.Scan(
			&view.SendingStatusID,
			&view.NotificationID,
			&view.QuotationName,
			&view.CreatedDate,
			&view.ExpiryDate,
			&view.UserName)
		if err != nil {
			return nil, errors.Wrap(err, wrapMsg)
		}
		view.Notification = &model.NotificationSummary{
			ID:            view.NotificationID,
			QuotationName: view.QuotationName,
			CreatedDate:   view.CreatedDate,
			ExpiryDate:    view.ExpiryDate,
		}
		views = append(views, view)
	}
	if err = rows.Err(); err != nil {
		return nil, errors.Wrap(err, wrapMsg)
	}

	return views, nil
}

// ListSeenAndUnseenNotifications lists every sending status for the user, seen or
// not, joined with the notifications they track. Each element carries the seen
// flag. No particular ordering is guaranteed.
func ListSeenAndUnseenNotifications(ctx context.Context, tx *sql.Tx, userID uuid.UUID) ([]model.NotificationView, error) {
	wrapMsg := "unable to list seen and unseen notifications"

	// Build the query.
	query, args, err := viewSelectBuilder(
		userID,
		"ss.id", "n.id", "n.quotation_name", "n.created_date", "n.expiry_date", "ss.is_seen").
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
	views := make([]model.NotificationView, 0)
	for rows.Next() {
		var view model.NotificationView
		var isSeen bool
		err = rows.Scan(
			&view.SendingStatusID,
			&view.NotificationID,
			&view.QuotationName,
			&view.CreatedDate,
			&view.ExpiryDate,
			&isSeen)
		if err != nil {
			return nil, errors.Wrap(err, wrapMsg)
		}
		view.IsSeen = &isSeen
		view.Notification = &model.NotificationSummary{
			ID:            view.NotificationID,
			QuotationName: view.QuotationName,
			CreatedDate:   view.CreatedDate,
			ExpiryDate:    view.ExpiryDate,
		}
		views = append(views, view)
	}
	if err = rows.Err(); err != nil {
		return nil, errors.Wrap(err, wrapMsg)
	}

	return views, nil
}

// ListSeenNotifications lists the user's seen sending statuses joined with the
// notifications they track, most recently created notification first. The
// caller is responsible for attaching the username to the results.
func ListSeenNotifications(ctx context.Context, tx *sql.Tx, userID uuid.UUID) ([]model.NotificationView, error) {
	wrapMsg := "unable to list seen notifications"

	// Build the query.
	query, args, err := viewSelectBuilder(
		userID,
		"ss.id", "n.id", "n.quotation_name", "n.created_date", "n.expiry_date").
		Where(sq.Eq{"ss.is_seen": true}).
		OrderBy("n.created_date DESC").
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

	// Collect the results. The seen listing doesn't include the nested
	// notification copy.
	views := make([]model.NotificationView, 0)
	for rows.Next() {
		var view model.NotificationView
		err = rows.Scan(
			&view.SendingStatusID,
			&view.NotificationID,
			&view.QuotationName,
			&view.CreatedDate,
			&view.ExpiryDate)
		if err != nil {
			return nil, errors.Wrap(err, wrapMsg)
		}
		views = append(views, view)
	}
	if err = rows.Err(); err != nil {
		return nil, errors.Wrap(err, wrapMsg)
	}

	return views, nil
}
