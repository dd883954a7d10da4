package core

import (
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/reelmark/reelmark/cache"
	"github.com/reelmark/reelmark/config"
	"github.com/reelmark/reelmark/crypto"
	"github.com/reelmark/reelmark/db"
)

var (
	ErrNoSession      = errors.New("no session")
	ErrSessionExpired = errors.New("session expired")
)

// Principal is the identity restored from a session. It carries only what
// the handlers need; never the stored user record or its password field.
type Principal struct {
	UserID   string
	Email    string
	Favorite string
}

// SessionManager persists sessions server-side and hands the browser a
// signed cookie whose only claim is the session id. A cache sits in front
// of the sessions table on the read path.
type SessionManager struct {
	dbSession      db.DbSession
	cache          cache.Cache[string, *db.Session]
	configProvider *config.Provider
	logger         *slog.Logger
}

func NewSessionManager(dbSession db.DbSession, sessionCache cache.Cache[string, *db.Session], configProvider *config.Provider, logger *slog.Logger) *SessionManager {
	return &SessionManager{
		dbSession:      dbSession,
		cache:          sessionCache,
		configProvider: configProvider,
		logger:         logger,
	}
}

// Serialize creates a session record for the user and sets the cookie.
// The favorite is snapshotted at login time.
func (sm *SessionManager) Serialize(w http.ResponseWriter, user *db.User) error {
	cfg := sm.configProvider.Get()
	now := time.Now().UTC()

	session := db.Session{
		ID:       crypto.RandomString(32, crypto.AlphanumericAlphabet),
		UserID:   user.ID,
		Email:    user.Email,
		Favorite: user.Favorite,
		Created:  now,
		Expires:  now.Add(cfg.Session.Duration.Duration),
	}

	if err := sm.dbSession.CreateSession(session); err != nil {
		return err
	}

	token, _, err := crypto.NewSessionToken(session.ID, []byte(cfg.Session.Secret), cfg.Session.Duration.Duration)
	if err != nil {
		return err
	}

	sm.cache.SetWithTTL(session.ID, &session, 1, cfg.Session.Duration.Duration)
	http.SetCookie(w, sm.sessionCookie(cfg, token, session.Expires))

	return nil
}

// Deserialize restores the principal from the request cookie. The principal
// comes from the session record alone; no freshness check against the users
// table happens here.
func (sm *SessionManager) Deserialize(r *http.Request) (*Principal, error) {
	cfg := sm.configProvider.Get()

	cookie, err := r.Cookie(cfg.Session.CookieName)
	if err != nil {
		return nil, ErrNoSession
	}

	sessionID, err := crypto.ParseSessionToken(cookie.Value, []byte(cfg.Session.Secret))
	if err != nil {
		if errors.Is(err, crypto.ErrJwtTokenExpired) {
			return nil, ErrSessionExpired
		}
		return nil, ErrNoSession
	}

	session, found := sm.cache.Get(sessionID)
	if !found {
		stored, err := sm.dbSession.GetSession(sessionID)
		if err != nil {
			return nil, err
		}
		if stored == nil {
			return nil, ErrNoSession
		}
		session = stored
		sm.cache.SetWithTTL(sessionID, session, 1, time.Until(session.Expires))
	}

	if time.Now().After(session.Expires) {
		return nil, ErrSessionExpired
	}

	return &Principal{
		UserID:   session.UserID,
		Email:    session.Email,
		Favorite: session.Favorite,
	}, nil
}

// Destroy deletes the session record and clears the cookie. Store errors
// are logged only; the cookie is cleared regardless, so the caller can
// always proceed with its redirect.
func (sm *SessionManager) Destroy(w http.ResponseWriter, r *http.Request) {
	cfg := sm.configProvider.Get()

	if cookie, err := r.Cookie(cfg.Session.CookieName); err == nil {
		if sessionID, err := crypto.ParseSessionToken(cookie.Value, []byte(cfg.Session.Secret)); err == nil {
			sm.cache.Delete(sessionID)
			if err := sm.dbSession.DeleteSession(sessionID); err != nil {
				sm.logger.Error("failed to delete session", "session_id", sessionID, "error", err)
			}
		}
	}

	http.SetCookie(w, &http.Cookie{
		Name:     cfg.Session.CookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}

func (sm *SessionManager) sessionCookie(cfg *config.Config, token string, expires time.Time) *http.Cookie {
	return &http.Cookie{
		Name:     cfg.Session.CookieName,
		Value:    token,
		Path:     "/",
		Expires:  expires,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	}
}
