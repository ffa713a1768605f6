package store

import (
	"errors"
	"fmt"

	sqlite "github.com/mattn/go-sqlite3"
)

var (
	ErrRecordNotFound      = errors.New("record not found")
	ErrConstraintViolation = errors.New("database constraint violation")
	ErrTxInProgress        = errors.New("store is already in a transaction")
)

// mapSQLiteErr converts driver constraint failures into ErrConstraintViolation
// so callers can match them without importing the driver.
func mapSQLiteErr(err error) error {
	var sqliteErr sqlite.Error
	if errors.As(err, &sqliteErr) {
		if errors.Is(sqliteErr.Code, sqlite.ErrConstraint) {
			return fmt.Errorf("%w: %v", ErrConstraintViolation, err)
		}
	}
	return err
}
