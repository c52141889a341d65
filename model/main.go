package model

import (
	"time"

	"github.com/google/uuid"
)

// User represents an account that notifications can be addressed to. Users are
// provisioned by a separate service; this service only reads them.
type User struct {
	ID        uuid.UUID `json:"id"`
	UserName  string    `json:"userName"`
	Created   time.Time `json:"created"`
	IsDeleted bool      `json:"isDeleted"`
}

// Notification represents a single announced item with a validity window.
type Notification struct {
	ID            uuid.UUID `json:"id"`
	UserID        uuid.UUID `json:"userId"`
	QuotationName string    `json:"quotationName"`
	CreatedDate   time.Time `json:"createdDate"`
	ExpiryDate    time.Time `json:"expiryDate"`
	IsDeleted     bool      `json:"isDeleted"`
}

// SendingStatus tracks whether a notification has been seen by the user it was
// addressed to. The seen flag only ever transitions from false to true.
type SendingStatus struct {
	ID             uuid.UUID `json:"id"`
	UserID         uuid.UUID `json:"userId"`
	NotificationID uuid.UUID `json:"notificationId"`
	CreatedDate    time.Time `json:"createdDate"`
	IsSeen         bool      `json:"isSeen"`
}

// NotificationSummary is the copy of the core notification fields that is
// nested inside some listing results.
type NotificationSummary struct {
	ID            uuid.UUID `json:"id"`
	QuotationName string    `json:"quotationName"`
	CreatedDate   time.Time `json:"createdDate"`
	ExpiryDate    time.Time `json:"expiryDate"`
}

// NotificationView is one element of the per-user listing results: a sending
// status joined with its notification. IsSeen is only populated by the
// combined seen-and-unseen listing, Notification by the unseen and combined
// listings, and UserName by the unseen and seen listings.
type NotificationView struct {
	NotificationID  uuid.UUID            `json:"notificationId"`
	QuotationName   string               `json:"quotationName"`
	CreatedDate     time.Time            `json:"createdDate"`
	ExpiryDate      time.Time            `json:"expiryDate"`
	SendingStatusID uuid.UUID            `json:"sendingStatusId"`
	IsSeen          *bool                `json:"isSeen,omitempty"`
	Notification    *NotificationSummary `json:"notification,omitempty"`
	UserName        string               `json:"userName,omitempty"`
}
