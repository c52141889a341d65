package engine

import (
	"context"

	"github.com/google/uuid"
	"github.com/pkg/errors"

	"github.com/cyverse-de/notification-engine/db"
)

// MarkOneSeen marks the user's oldest unseen notification as seen. Calling it
// when everything has been seen already isn't an error; the outcome message
// says so instead. Unseen statuses are picked in creation order with the
// identifier as a deterministic tie-break.
func (s *Service) MarkOneSeen(ctx context.Context, userID uuid.UUID) (*Outcome, error) {
	wrapMsg := "unable to mark a notification as seen"

	// Begin a database transaction.
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, errors.Wrap(err, wrapMsg)
	}
	defer tx.Rollback()

	// Find the next unseen sending status.
	status, err := db.FirstUnseenStatus(ctx, tx, userID)
	if err != nil {
		return nil, errors.Wrap(err, wrapMsg)
	}
	if status == nil {
		return &Outcome{Message: messageOneAlreadySeen}, nil
	}

	// Mark it as seen.
	err = db.MarkStatusSeen(ctx, tx, status.ID)
	if err != nil {
		return nil, errors.Wrap(err, wrapMsg)
	}

	// Commit the transaction.
	err = tx.Commit()
	if err != nil {
		return nil, errors.Wrap(err, wrapMsg)
	}

	return &Outcome{Message: messageOneMarkedSeen}, nil
}

// MarkAllSeen marks every unseen notification for the user as seen in one
// sweep. A user with no notifications or no sending statuses at all gets a
// NotFoundError; a user whose statuses are all seen already gets an outcome
// saying so, and nothing is written.
func (s *Service) MarkAllSeen(ctx context.Context, userID uuid.UUID) (*Outcome, error) {
	wrapMsg := "unable to mark the notifications as seen"

	// Begin a database transaction.
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, errors.Wrap(err, wrapMsg)
	}
	defer tx.Rollback()

	// The user has to have notifications that haven't been logically deleted.
	hasNotifications, err := db.UserHasNotifications(ctx, tx, userID)
	if err != nil {
		return nil, errors.Wrap(err, wrapMsg)
	}
	if !hasNotifications {
		return nil, NewNotFoundError(messageNoNotifications)
	}

	// The user also has to have sending statuses.
	statuses, err := db.ListSendingStatuses(ctx, tx, userID)
	if err != nil {
		return nil, errors.Wrap(err, wrapMsg)
	}
	if len(statuses) == 0 {
		return nil, NewNotFoundError(messageNoSendingStatuses)
	}

	// Nothing to do if every status has been seen already.
	allSeen := true
	for _, status := range statuses {
		if !status.IsSeen {
			allSeen = false
			break
		}
	}
	if allSeen {
		return &Outcome{Message: messageAllAlreadySeen}, nil
	}

	// Mark the unseen statuses as seen in a single batch.
	_, err = db.MarkAllStatusesSeen(ctx, tx, userID)
	if err != nil {
		return nil, errors.Wrap(err, wrapMsg)
	}

	// Commit the transaction.
	err = tx.Commit()
	if err != nil {
		return nil, errors.Wrap(err, wrapMsg)
	}

	return &Outcome{Message: messageStatusesUpdated}, nil
}
