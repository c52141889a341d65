package db

import (
	"database/sql"

	"github.com/cyverse-de/dbutil"
	"github.com/lib/pq"
	"github.com/pkg/errors"
)

// InitDatabase establishes a database connection and verifies that the database can be reached.
func InitDatabase(driverName, databaseURI string) (*sql.DB, error) {
	wrapMsg := "unable to initialize the database"

	// Create a database connector to establish the connection.
	connector, err := dbutil.NewDefaultConnector("1m")
	if err != nil {
		return nil, errors.Wrap(err, wrapMsg)
	}

	// Establish the database connection.
	db, err := connector.Connect(driverName, databaseURI)
	if err != nil {
		return nil, errors.Wrap(err, wrapMsg)
	}

	return db, nil
}

// IsForeignKeyViolation determines whether an error indicates that a statement was
// rejected because of a foreign key constraint, for example an insert referencing a
// missing row or a delete attempted on a row that sending statuses still reference.
func IsForeignKeyViolation(err error) bool {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		const foreignKeyViolation = "23503"
		return string(pqErr.Code) == foreignKeyViolation
	}
	return false
}
