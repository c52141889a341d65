package db

import (
	"database/sql"

	"github.com/pkg/errors"
	"github.com/pressly/goose/v3"

	"github.com/cyverse-de/notification-engine/migrations"
)

// ApplyMigrations brings the database schema up to date using the embedded
// migration files.
func ApplyMigrations(db *sql.DB) error {
	wrapMsg := "unable to apply the database migrations"

	goose.SetBaseFS(migrations.FS)

	if err := goose.SetDialect("postgres"); err != nil {
		return errors.Wrap(err, wrapMsg)
	}

	if err := goose.Up(db, "."); err != nil {
		return errors.Wrap(err, wrapMsg)
	}

	return nil
}
