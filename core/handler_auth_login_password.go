package core

import (
	"encoding/json"
	"net/http"

	"github.com/reelmark/reelmark/crypto"
)

// AuthWithPasswordHandler handles password-based authentication (login)
// Endpoint: POST /api/auth-with-password
// Authenticated: No
// Allowed Mimetype: application/json
func (a *App) AuthWithPasswordHandler(w http.ResponseWriter, r *http.Request) {
	if err, resp := a.Validator().ContentType(r, MimeTypeJSON); err != nil {
		writeJsonError(w, resp)
		return
	}

	var req struct {
		Identity string `json:"identity"` // email
		Password string `json:"password"`
	}

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJsonError(w, errorInvalidRequest)
		return
	}

	if req.Identity == "" || req.Password == "" {
		writeJsonError(w, errorInvalidRequest)
		return
	}

	if err := ValidateEmail(req.Identity); err != nil {
		writeJsonError(w, errorInvalidRequest)
		return
	}

	user, err := a.DbAuth().GetUserByEmail(req.Identity)
	if err != nil {
		a.logger.Error("login: user lookup failed", "error", err)
		writeJsonError(w, errorAuthDatabaseError)
		return
	}
	if user == nil {
		metricAuthAttempts.WithLabelValues(metricMethodPassword, metricOutcomeFailure).Inc()
		writeJsonError(w, errorInvalidCredentials)
		return
	}

	// An OAuth2-created account holds the sentinel, which never matches a
	// submitted password.
	if !crypto.CheckPassword(req.Password, user.Password) {
		metricAuthAttempts.WithLabelValues(metricMethodPassword, metricOutcomeFailure).Inc()
		writeJsonError(w, errorInvalidCredentials)
		return
	}

	if err := a.Sessions().Serialize(w, user); err != nil {
		a.logger.Error("login: failed to establish session", "error", err)
		writeJsonError(w, errorTokenGeneration)
		return
	}

	metricAuthAttempts.WithLabelValues(metricMethodPassword, metricOutcomeSuccess).Inc()
	writeAuthResponse(w, user)
}
