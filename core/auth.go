package core

import (
	"errors"
	"net/http"
)

// Authenticator restores the request's principal. On failure it also
// returns the precomputed response the handler should write, so every
// protected request resolves to a concrete answer.
type Authenticator interface {
	Authenticate(r *http.Request) (*Principal, error, jsonResponse)
}

// SessionAuthenticator implements Authenticator on top of the session
// manager.
type SessionAuthenticator struct {
	sessions *SessionManager
}

func NewSessionAuthenticator(sessions *SessionManager) *SessionAuthenticator {
	return &SessionAuthenticator{sessions: sessions}
}

func (a *SessionAuthenticator) Authenticate(r *http.Request) (*Principal, error, jsonResponse) {
	principal, err := a.sessions.Deserialize(r)
	if err != nil {
		switch {
		case errors.Is(err, ErrSessionExpired):
			return nil, err, errorSessionExpired
		case errors.Is(err, ErrNoSession):
			return nil, err, errorLoginRequired
		default:
			return nil, err, errorAuthDatabaseError
		}
	}
	return principal, nil, jsonResponse{}
}

// IsAuthenticated reports whether the request carries a valid session.
func (a *App) IsAuthenticated(r *http.Request) bool {
	principal, err, _ := a.authenticator.Authenticate(r)
	return err == nil && principal != nil
}
