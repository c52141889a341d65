package engine

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestListUnseenEmpty(t *testing.T) {
	assert := assert.New(t)
	service, mock := newMockService(t)
	ctx := context.Background()

	userID := uuid.New()

	// An empty unseen listing is a valid result, not an error.
	mock.ExpectBegin()
	mock.ExpectQuery("SELECT ss.id, n.id, n.quotation_name, n.created_date, n.expiry_date, u.user_name").
		WithArgs(userID, false).
		WillReturnRows(sqlmock.NewRows([]string{"id", "id", "quotation_name", "created_date", "expiry_date", "user_name"}))
	mock.ExpectCommit()

	views, err := service.ListUnseen(ctx, userID)
	assert.NoError(err, "an empty unseen listing should not be an error")
	assert.NotNil(views)
	assert.Empty(views)

	// Verify that all mock expectations were met.
	err = mock.ExpectationsWereMet()
	assert.NoError(err, "not all mock expectations were met")
}

func TestListSeenAndUnseenEmpty(t *testing.T) {
	assert := assert.New(t)
	service, mock := newMockService(t)
	ctx := context.Background()

	userID := uuid.New()

	// An empty combined listing is a valid result, not an error.
	mock.ExpectBegin()
	mock.ExpectQuery("SELECT ss.id, n.id, n.quotation_name, n.created_date, n.expiry_date, ss.is_seen").
		WithArgs(userID).
		WillReturnRows(sqlmock.NewRows([]string{"id", "id", "quotation_name", "created_date", "expiry_date", "is_seen"}))
	mock.ExpectCommit()

	views, err := service.ListSeenAndUnseen(ctx, userID)
	assert.NoError(err, "an empty combined listing should not be an error")
	assert.NotNil(views)
	assert.Empty(views)

	// Verify that all mock expectations were met.
	err = mock.ExpectationsWereMet()
	assert.NoError(err, "not all mock expectations were met")
}

func TestListSeen(t *testing.T) {
	assert := assert.New(t)
	service, mock := newMockService(t)
	ctx := context.Background()

	userID := uuid.New()
	t1 := time.Now().Add(-3 * time.Hour)
	t2 := time.Now().Add(-2 * time.Hour)
	t3 := time.Now().Add(-1 * time.Hour)
	expiry := time.Now().Add(7 * 24 * time.Hour)

	// The seen listing comes back most recent first, and the username is
	// resolved once and attached to every element.
	mock.ExpectBegin()
	rows := sqlmock.NewRows([]string{"id", "id", "quotation_name", "created_date", "expiry_date"}).
		AddRow(uuid.New().String(), uuid.New().String(), "Quote-C", t3, expiry).
		AddRow(uuid.New().String(), uuid.New().String(), "Quote-B", t2, expiry).
		AddRow(uuid.New().String(), uuid.New().String(), "Quote-A", t1, expiry)
	mock.ExpectQuery("SELECT ss.id, n.id, n.quotation_name, n.created_date, n.expiry_date "+
		"FROM sending_statuses ss "+
		"JOIN notifications n ON ss.notification_id = n.id "+
		"WHERE ss.user_id = (.+) AND ss.is_seen = (.+) "+
		"ORDER BY n.created_date DESC").
		WithArgs(userID, true).
		WillReturnRows(rows)
	expectGetUser(mock, userID, "sarahr")
	mock.ExpectCommit()

	views, err := service.ListSeen(ctx, userID)
	assert.NoError(err, "unexpected error occurred while listing the seen notifications")
	if assert.Len(views, 3) {
		assert.Equal("Quote-C", views[0].QuotationName)
		assert.Equal("Quote-B", views[1].QuotationName)
		assert.Equal("Quote-A", views[2].QuotationName)
		for _, view := range views {
			assert.Equal("sarahr", view.UserName)
		}
	}

	// Verify that all mock expectations were met.
	err = mock.ExpectationsWereMet()
	assert.NoError(err, "not all mock expectations were met")
}

func TestListSeenEmpty(t *testing.T) {
	assert := assert.New(t)
	service, mock := newMockService(t)
	ctx := context.Background()

	userID := uuid.New()

	// Unlike the other listings, an empty seen listing is reported as not found.
	mock.ExpectBegin()
	mock.ExpectQuery("SELECT ss.id, n.id, n.quotation_name, n.created_date, n.expiry_date").
		WithArgs(userID, true).
		WillReturnRows(sqlmock.NewRows([]string{"id", "id", "quotation_name", "created_date", "expiry_date"}))
	mock.ExpectRollback()

	views, err := service.ListSeen(ctx, userID)
	assert.Nil(views)
	assert.Error(err)
	assert.IsType(NotFoundError{}, err)
	assert.Equal("No seen notifications found for this user.", err.Error())

	// Verify that all mock expectations were met.
	err = mock.ExpectationsWereMet()
	assert.NoError(err, "not all mock expectations were met")
}
