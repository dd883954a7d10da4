package core

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/reelmark/reelmark/crypto"
	"github.com/reelmark/reelmark/db"
)

// RegisterWithPasswordHandler handles local account creation
// Endpoint: POST /api/register-with-password
// Authenticated: No
// Allowed Mimetype: application/json
func (a *App) RegisterWithPasswordHandler(w http.ResponseWriter, r *http.Request) {
	if err, resp := a.Validator().ContentType(r, MimeTypeJSON); err != nil {
		writeJsonError(w, resp)
		return
	}

	var req struct {
		Identity        string `json:"identity"` // email
		Name            string `json:"name"`
		Password        string `json:"password"`
		PasswordConfirm string `json:"password_confirm"`
	}

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJsonError(w, errorInvalidRequest)
		return
	}

	if req.Identity == "" || req.Password == "" {
		writeJsonError(w, errorMissingFields)
		return
	}

	if err := ValidateEmail(req.Identity); err != nil {
		writeJsonError(w, errorInvalidRequest)
		return
	}

	if len(req.Password) < 8 {
		writeJsonError(w, errorPasswordComplexity)
		return
	}

	if req.Password != req.PasswordConfirm {
		writeJsonError(w, errorPasswordMismatch)
		return
	}

	hash, err := crypto.GenerateHash(req.Password)
	if err != nil {
		a.logger.Error("register: failed to hash password", "error", err)
		writeJsonError(w, errorAuthDatabaseError)
		return
	}

	user, err := a.DbAuth().CreateUserWithPassword(db.User{
		Email:    req.Identity,
		Name:     req.Name,
		Password: string(hash),
	})
	if err != nil {
		if errors.Is(err, db.ErrConstraintUnique) {
			writeJsonError(w, errorEmailConflict)
			return
		}
		a.logger.Error("register: failed to create user", "error", err)
		writeJsonError(w, errorAuthDatabaseError)
		return
	}

	// Registration doubles as login.
	if err := a.Sessions().Serialize(w, user); err != nil {
		a.logger.Error("register: failed to establish session", "error", err)
		writeJsonError(w, errorTokenGeneration)
		return
	}

	metricAuthAttempts.WithLabelValues(metricMethodPassword, metricOutcomeSuccess).Inc()
	writeAuthResponse(w, user)
}
