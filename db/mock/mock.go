package mock

import (
	"time"

	"github.com/reelmark/reelmark/db"
)

// Compile-time check to ensure Db implements the DbApp interface
var _ db.DbApp = (*Db)(nil)

// Db implements db.DbApp for testing purposes.
// Use function fields to allow overriding behavior in specific tests.
type Db struct {
	// --- Mock DbAuth Methods ---
	GetUserByEmailFunc         func(email string) (*db.User, error)
	GetUserByIdFunc            func(id string) (*db.User, error)
	CreateUserWithPasswordFunc func(user db.User) (*db.User, error)
	CreateUserWithOauth2Func   func(user db.User) (*db.User, error)
	UpdateFavoriteFunc         func(email string, title string) error

	// --- Mock DbSession Methods ---
	CreateSessionFunc         func(s db.Session) error
	GetSessionFunc            func(id string) (*db.Session, error)
	DeleteSessionFunc         func(id string) error
	DeleteExpiredSessionsFunc func(before time.Time) (int, error)
}

// --- Implement DbAuth ---

func (m *Db) GetUserByEmail(email string) (*db.User, error) {
	if m.GetUserByEmailFunc != nil {
		return m.GetUserByEmailFunc(email)
	}
	return nil, nil // Default: not found
}

func (m *Db) GetUserById(id string) (*db.User, error) {
	if m.GetUserByIdFunc != nil {
		return m.GetUserByIdFunc(id)
	}
	return nil, nil // Default: not found
}

func (m *Db) CreateUserWithPassword(user db.User) (*db.User, error) {
	if m.CreateUserWithPasswordFunc != nil {
		return m.CreateUserWithPasswordFunc(user)
	}
	user.ID = "mock-pw-user-id"
	return &user, nil
}

func (m *Db) CreateUserWithOauth2(user db.User) (*db.User, error) {
	if m.CreateUserWithOauth2Func != nil {
		return m.CreateUserWithOauth2Func(user)
	}
	user.ID = "mock-oauth-user-id"
	user.Password = db.Oauth2PasswordSentinel
	return &user, nil
}

func (m *Db) UpdateFavorite(email string, title string) error {
	if m.UpdateFavoriteFunc != nil {
		return m.UpdateFavoriteFunc(email, title)
	}
	return nil // Default: success
}

// --- Implement DbSession ---

func (m *Db) CreateSession(s db.Session) error {
	if m.CreateSessionFunc != nil {
		return m.CreateSessionFunc(s)
	}
	return nil // Default: success
}

func (m *Db) GetSession(id string) (*db.Session, error) {
	if m.GetSessionFunc != nil {
		return m.GetSessionFunc(id)
	}
	return nil, nil // Default: not found
}

func (m *Db) DeleteSession(id string) error {
	if m.DeleteSessionFunc != nil {
		return m.DeleteSessionFunc(id)
	}
	return nil // Default: success
}

func (m *Db) DeleteExpiredSessions(before time.Time) (int, error) {
	if m.DeleteExpiredSessionsFunc != nil {
		return m.DeleteExpiredSessionsFunc(before)
	}
	return 0, nil // Default: nothing expired
}
