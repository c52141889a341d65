package engine

import (
	"context"

	"github.com/google/uuid"
	"github.com/pkg/errors"

	"github.com/cyverse-de/notification-engine/db"
	"github.com/cyverse-de/notification-engine/model"
)

// ListUnseen lists the user's unseen notifications, each joined with the name
// of the user its sending status belongs to. A user with no unseen
// notifications gets an empty listing, not an error.
func (s *Service) ListUnseen(ctx context.Context, userID uuid.UUID) ([]model.NotificationView, error) {
	wrapMsg := "unable to list unseen notifications"

	// Begin a database transaction.
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, errors.Wrap(err, wrapMsg)
	}
	defer tx.Rollback()

	// List the unseen notifications.
	views, err := db.ListUnseenNotifications(ctx, tx, userID)
	if err != nil {
		return nil, errors.Wrap(err, wrapMsg)
	}

	// Commit the transaction.
	err = tx.Commit()
	if err != nil {
		return nil, errors.Wrap(err, wrapMsg)
	}

	return views, nil
}

// ListSeenAndUnseen lists every notification addressed to the user, each
// carrying its seen flag. A user with no notifications gets an empty listing,
// not an error.
func (s *Service) ListSeenAndUnseen(ctx context.Context, userID uuid.UUID) ([]model.NotificationView, error) {
	wrapMsg := "unable to list seen and unseen notifications"

	// Begin a database transaction.
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, errors.Wrap(err, wrapMsg)
	}
	defer tx.Rollback()

	// List the notifications.
	views, err := db.ListSeenAndUnseenNotifications(ctx, tx, userID)
	if err != nil {
		return nil, errors.Wrap(err, wrapMsg)
	}

	// Commit the transaction.
	err = tx.Commit()
	if err != nil {
		return nil, errors.Wrap(err, wrapMsg)
	}

	return views, nil
}

// ListSeen lists the user's seen notifications, most recently created first,
// with the user's name attached to every element. Unlike the other listings, a
// user with no seen notifications gets a NotFoundError rather than an empty
// listing.
func (s *Service) ListSeen(ctx context.Context, userID uuid.UUID) ([]model.NotificationView, error) {
	wrapMsg := "unable to list seen notifications"

	// Begin a database transaction.
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, errors.Wrap(err, wrapMsg)
	}
	defer tx.Rollback()

	// List the seen notifications.
	views, err := db.ListSeenNotifications(ctx, tx, userID)
	if err != nil {
		return nil, errors.Wrap(err, wrapMsg)
	}
	if len(views) == 0 {
		return nil, NewNotFoundError(messageNoSeenForUser)
	}

	// Resolve the username once for the whole result set.
	user, err := db.GetUser(ctx, tx, userID)
	if err != nil {
		return nil, errors.Wrap(err, wrapMsg)
	}
	var userName string
	if user != nil {
		userName = user.UserName
	}
	for i := range views {
		views[i].UserName = userName
	}

	// Commit the transaction.
	err = tx.Commit()
	if err != nil {
		return nil, errors.Wrap(err, wrapMsg)
	}

	return views, nil
}
