package engine

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"

	"github.com/cyverse-de/notification-engine/db"
	"github.com/cyverse-de/notification-engine/model"
)

// Create records a new notification for a user along with the sending status
// that tracks whether the user has seen it. Both rows are inserted in the same
// transaction, so a failure can't leave a notification without its status.
func (s *Service) Create(
	ctx context.Context, userID uuid.UUID, quotationName string, expiryDate time.Time,
) (*model.Notification, error) {
	wrapMsg := "unable to create the notification"

	// The boundary validates requests; this check covers direct callers.
	if strings.TrimSpace(quotationName) == "" {
		return nil, NewInvalidInputError("quotationName is required")
	}

	// Begin a database transaction.
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, errors.Wrap(err, wrapMsg)
	}
	defer tx.Rollback()

	// The notification has to be addressed to an existing user.
	user, err := db.GetUser(ctx, tx, userID)
	if err != nil {
		return nil, errors.Wrap(err, wrapMsg)
	}
	if user == nil {
		return nil, NewNotFoundError(messageUserNotFound)
	}

	// Store the notification.
	now := time.Now()
	notification := &model.Notification{
		ID:            uuid.New(),
		UserID:        user.ID,
		QuotationName: quotationName,
		CreatedDate:   now,
		ExpiryDate:    expiryDate,
		IsDeleted:     false,
	}
	err = db.SaveNotification(ctx, tx, notification)
	if err != nil {
		return nil, errors.Wrap(err, wrapMsg)
	}

	// Store the initial sending status for the addressed user.
	status := &model.SendingStatus{
		ID:             uuid.New(),
		UserID:         user.ID,
		NotificationID: notification.ID,
		CreatedDate:    now,
		IsSeen:         false,
	}
	err = db.SaveSendingStatus(ctx, tx, status)
	if err != nil {
		if db.IsForeignKeyViolation(err) {
			return nil, NewNotFoundError(messageUserNotFound)
		}
		return nil, errors.Wrap(err, wrapMsg)
	}

	// Commit the transaction.
	err = tx.Commit()
	if err != nil {
		return nil, errors.Wrap(err, wrapMsg)
	}

	return notification, nil
}

// Get fetches a notification by its identifier. The soft-delete flag is not
// checked, so a logically deleted notification can still be fetched this way.
func (s *Service) Get(ctx context.Context, id uuid.UUID) (*model.Notification, error) {
	wrapMsg := "unable to get the notification"

	// Begin a database transaction.
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, errors.Wrap(err, wrapMsg)
	}
	defer tx.Rollback()

	// Look up the notification.
	notification, err := db.GetNotification(ctx, tx, id)
	if err != nil {
		return nil, errors.Wrap(err, wrapMsg)
	}
	if notification == nil {
		return nil, NewNotFoundError(messageNotificationAbsent)
	}

	// Commit the transaction.
	err = tx.Commit()
	if err != nil {
		return nil, errors.Wrap(err, wrapMsg)
	}

	return notification, nil
}

// CountUnseen counts the user's unseen notifications. A user with no sending
// statuses at all simply has a count of zero.
func (s *Service) CountUnseen(ctx context.Context, userID uuid.UUID) (int64, error) {
	wrapMsg := "unable to count unseen notifications"

	// Begin a database transaction.
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, errors.Wrap(err, wrapMsg)
	}
	defer tx.Rollback()

	// Count the unseen sending statuses.
	count, err := db.CountUnseenStatuses(ctx, tx, userID)
	if err != nil {
		return 0, errors.Wrap(err, wrapMsg)
	}

	// Commit the transaction.
	err = tx.Commit()
	if err != nil {
		return 0, errors.Wrap(err, wrapMsg)
	}

	return count, nil
}
