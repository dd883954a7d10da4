package db

import (
	"errors"
	"time"
)

// ErrConstraintUnique is returned when an insert violates a uniqueness
// constraint, in practice the UNIQUE index on users.email.
var ErrConstraintUnique = errors.New("unique constraint violation")

// DbAuth is the credential store consumed by the authentication handlers and
// the identity provider adapter.
type DbAuth interface {
	// GetUserByEmail returns the user record for the given email, or
	// (nil, nil) when no matching record exists. A non-nil error always
	// indicates a store failure, never "not found".
	GetUserByEmail(email string) (*User, error)

	// GetUserById returns the user record for the given id, or (nil, nil)
	// when no matching record exists.
	GetUserById(id string) (*User, error)

	// CreateUserWithPassword inserts a local-credential account. The password
	// field must already be hashed. A duplicate email fails with
	// ErrConstraintUnique.
	CreateUserWithPassword(user User) (*User, error)

	// CreateUserWithOauth2 inserts a provider-issued account with the
	// sentinel password value. On a conflicting email the existing row is
	// returned instead, so two racing first-time logins both succeed and
	// observe the single surviving row.
	CreateUserWithOauth2(user User) (*User, error)

	// UpdateFavorite replaces the single favorite movie title of the user
	// identified by email. An empty title clears the favorite.
	UpdateFavorite(email string, title string) error
}

// DbSession is the server-side session store.
type DbSession interface {
	// CreateSession persists a new session record.
	CreateSession(s Session) error

	// GetSession returns the session with the given id, or (nil, nil) when
	// none exists.
	GetSession(id string) (*Session, error)

	// DeleteSession removes a session record. Deleting a missing session is
	// not an error.
	DeleteSession(id string) error

	// DeleteExpiredSessions removes every session whose expiry is before the
	// given instant and reports how many were removed.
	DeleteExpiredSessions(before time.Time) (int, error)
}

// DbApp combines the store roles a full application instance needs.
type DbApp interface {
	DbAuth
	DbSession
}

// TimeFormat formats a time for storage: RFC3339 in UTC.
func TimeFormat(t time.Time) string {
	return t.UTC().Format(time.RFC3339)
}

// TimeParse parses a stored RFC3339 timestamp.
func TimeParse(s string) (time.Time, error) {
	return time.Parse(time.RFC3339, s)
}
