package core

import (
	"net/http"
)

// LogoutHandler destroys the session and sends the browser home. Store
// failures are logged inside Destroy; the redirect happens regardless.
// Endpoint: GET /logout
// Authenticated: No (a missing session is not an error here)
func (a *App) LogoutHandler(w http.ResponseWriter, r *http.Request) {
	a.Sessions().Destroy(w, r)
	http.Redirect(w, r, "/", http.StatusFound)
}
