package database

import (
	"database/sql"
	"errors"
	"strings"

	"github.com/mattn/go-sqlite3"
)

var (
	// ErrNotFound is returned when a row lookup or targeted
	// update/delete matches nothing.
	ErrNotFound = errors.New("record not found")

	ErrDuplicateUsername = errors.New("username already exists")
	ErrDuplicateEmail    = errors.New("email already in use")
	ErrDuplicateRoomName = errors.New("room name already exists")
)

// mapSQLError translates driver errors into the package's sentinel
// errors. Uniqueness is enforced by the store, not by check-then-act
// in the application, so concurrent inserts surface here.
func mapSQLError(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, sql.ErrNoRows) {
		return ErrNotFound
	}

	var sqliteErr sqlite3.Error
	if errors.As(err, &sqliteErr) && sqliteErr.ExtendedCode == sqlite3.ErrConstraintUnique {
		msg := sqliteErr.Error()
		switch {
		case strings.Contains(msg, "users.username"):
			return ErrDuplicateUsername
		case strings.Contains(msg, "users.email"):
			return ErrDuplicateEmail
		case strings.Contains(msg, "classrooms.room_name"):
			return ErrDuplicateRoomName
		}
	}
	return err
}
