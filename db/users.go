package db

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"

	"github.com/cyverse-de/notification-engine/model"

	sq "github.com/Masterminds/squirrel"
)

// AddUser adds a user to the `users` table, returning the stored user. Users are
// normally provisioned by a separate service; this function exists for that
// provisioning path and for tests.
func AddUser(ctx context.Context, tx *sql.Tx, userName string) (*model.User, error) {
	wrapMsg := fmt.Sprintf("unable to add `%s` to the users table", userName)

	user := &model.User{
		ID:       uuid.New(),
		UserName: userName,
		Created:  time.Now(),
	}

	// Build the statement.
	statement, args, err := sq.StatementBuilder.
		PlaceholderFormat(sq.Dollar).
		Insert("users").
		Columns("id", "user_name", "created", "is_deleted").
		Values(user.ID, user.UserName, user.Created, user.IsDeleted).
		ToSql()
	if err != nil {
		return nil, errors.Wrap(err, wrapMsg)
	}

	// Execute the statement.
	_, err = tx.ExecContext(ctx, statement, args...)
	if err != nil {
		return nil, errors.Wrap(err, wrapMsg)
	}

	return user, nil
}

// GetUser looks up the user with the given identifier. The result is nil if no
// matching user exists.
func GetUser(ctx context.Context, tx *sql.Tx, userID uuid.UUID) (*model.User, error) {
	wrapMsg := fmt.Sprintf("unable to look up the user with ID `%s`", userID)

	// Build the query.
	query, args, err := sq.StatementBuilder.
		PlaceholderFormat(sq.Dollar).
		Select("id", "user_name", "created", "is_deleted").
		From("users").
		Where(sq.Eq{"id": userID}).
		ToSql()
	if err != nil {
		return nil, errors.Wrap(err, wrapMsg)
	}

	// Query the database.
	var user model.User
	row := tx.QueryRowContext(ctx, query, args...)
	err = row.Scan(&user.ID, &user.UserName, &user.Created, &user.IsDeleted)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, errors.Wrap(err, wrapMsg)
	}

	return &user, nil
}
