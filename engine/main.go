// Package engine implements the notification bookkeeping operations: recording
// notifications addressed to users and tracking, per user and notification,
// whether the notification has been seen.
//
// Every operation runs inside its own database transaction, which is rolled
// back on any error, so callers never observe a partially applied operation.
package engine

import (
	"database/sql"
)

// Service performs the notification operations against an injected database
// handle. It keeps no other state, so a single instance can safely serve
// concurrent requests; isolation between them is left to the database.
type Service struct {
	db *sql.DB
}

// New returns a new notification service backed by the given database.
func New(db *sql.DB) *Service {
	return &Service{db: db}
}

// Outcome reports the result of a status transition operation.
type Outcome struct {
	Message string `json:"message"`
}

// Outcome messages for the status transition operations.
const (
	messageAllAlreadySeen     = "All notifications are already seen."
	messageStatusesUpdated    = "Sending statuses updated successfully."
	messageOneAlreadySeen     = "All notifications have already been seen."
	messageOneMarkedSeen      = "One notification marked as seen successfully."
	messageNoNotifications    = "No notifications found for the given UserId."
	messageNoSendingStatuses  = "No sending statuses found for the given UserId."
	messageNoSeenForUser      = "No seen notifications found for this user."
	messageUserNotFound       = "User not found."
	messageNotificationAbsent = "Notification not found."
)
