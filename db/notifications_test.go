package db

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/cyverse-de/notification-engine/model"
)

func TestSaveNotification(t *testing.T) {
	assert := assert.New(t)

	db, mock, err := sqlmock.New()
	ctx := context.Background()
	assert.NoError(err, "unable to open the mock database connection")
	defer db.Close()

	// The notification to store.
	notification := &model.Notification{
		ID:            uuid.New(),
		UserID:        uuid.New(),
		QuotationName: "Quote-A",
		CreatedDate:   time.Now(),
		ExpiryDate:    time.Now().Add(7 * 24 * time.Hour),
	}

	// Set up the expectations.
	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO notifications \\(id,user_id,quotation_name,created_date,expiry_date,is_deleted\\)").
		WithArgs(
			notification.ID,
			notification.UserID,
			notification.QuotationName,
			notification.CreatedDate,
			notification.ExpiryDate,
			false).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectRollback()

	// Store the notification.
	tx, err := db.Begin()
	assert.NoError(err, "unable to begin a transaction")
	err = SaveNotification(ctx, tx, notification)
	assert.NoError(err, "unexpected error occurred while saving the notification")
	_ = tx.Rollback()

	// Verify that all mock expectations were met.
	err = mock.ExpectationsWereMet()
	assert.NoError(err, "not all mock expectations were met")
}

func TestGetNotification(t *testing.T) {
	assert := assert.New(t)

	db, mock, err := sqlmock.New()
	ctx := context.Background()
	assert.NoError(err, "unable to open the mock database connection")
	defer db.Close()

	// Set up the expectations.
	mock.ExpectBegin()
	notificationID := uuid.MustParse("a6a97fd2-74c5-42af-ab22-0549a63d3abd")
	userID := uuid.MustParse("46ae63be-7030-4cdd-8eb9-66aa49fcf38b")
	created := time.Now()
	expiry := created.Add(7 * 24 * time.Hour)
	rows := sqlmock.NewRows(notificationColumns).
		AddRow(notificationID.String(), userID.String(), "Quote-A", created, expiry, false)
	mock.ExpectQuery("SELECT id, user_id, quotation_name, created_date, expiry_date, is_deleted FROM notifications WHERE id =").
		WithArgs(notificationID).
		WillReturnRows(rows)
	mock.ExpectRollback()

	// Look up the notification.
	tx, err := db.Begin()
	assert.NoError(err, "unable to begin a transaction")
	notification, err := GetNotification(ctx, tx, notificationID)
	assert.NoError(err, "unexpected error occurred while looking up the notification")
	if assert.NotNil(notification) {
		assert.Equal(notificationID, notification.ID)
		assert.Equal(userID, notification.UserID)
		assert.Equal("Quote-A", notification.QuotationName)
	}
	_ = tx.Rollback()

	// Verify that all mock expectations were met.
	err = mock.ExpectationsWereMet()
	assert.NoError(err, "not all mock expectations were met")
}

func TestGetNotificationNotFound(t *testing.T) {
	assert := assert.New(t)

	db, mock, err := sqlmock.New()
	ctx := context.Background()
	assert.NoError(err, "unable to open the mock database connection")
	defer db.Close()

	// Set up the expectations. The query returns no rows.
	mock.ExpectBegin()
	notificationID := uuid.New()
	rows := sqlmock.NewRows(notificationColumns)
	mock.ExpectQuery("SELECT id, user_id, quotation_name, created_date, expiry_date, is_deleted FROM notifications WHERE id =").
		WithArgs(notificationID).
		WillReturnRows(rows)
	mock.ExpectRollback()

	// Look up the notification.
	tx, err := db.Begin()
	assert.NoError(err, "unable to begin a transaction")
	notification, err := GetNotification(ctx, tx, notificationID)
	assert.NoError(err, "a missing notification should not be an error at this layer")
	assert.Nil(notification)
	_ = tx.Rollback()

	// Verify that all mock expectations were met.
	err = mock.ExpectationsWereMet()
	assert.NoError(err, "not all mock expectations were met")
}

func TestUserHasNotifications(t *testing.T) {
	assert := assert.New(t)

	db, mock, err := sqlmock.New()
	ctx := context.Background()
	assert.NoError(err, "unable to open the mock database connection")
	defer db.Close()

	// Set up the expectations. The count query filters out logically deleted notifications.
	mock.ExpectBegin()
	userID := uuid.New()
	rows := sqlmock.NewRows([]string{"count"}).AddRow(2)
	mock.ExpectQuery("SELECT count\\(\\*\\) FROM notifications WHERE user_id = (.+) AND is_deleted =").
		WithArgs(userID, false).
		WillReturnRows(rows)
	mock.ExpectRollback()

	// Check for notifications.
	tx, err := db.Begin()
	assert.NoError(err, "unable to begin a transaction")
	hasNotifications, err := UserHasNotifications(ctx, tx, userID)
	assert.NoError(err, "unexpected error occurred while counting the notifications")
	assert.True(hasNotifications)
	_ = tx.Rollback()

	// Verify that all mock expectations were met.
	err = mock.ExpectationsWereMet()
	assert.NoError(err, "not all mock expectations were met")
}
