package core

import (
	"net/http"
)

// UpdateFavoriteHandler sets or clears the signed-in user's favorite
// title, then sends the browser back to the favorites view. Anonymous
// requests get the login-required response instead of a redirect, so the
// submitting page can re-render its login prompt.
// Endpoint: POST /api/favorite
// Authenticated: Yes
// Allowed Mimetype: application/x-www-form-urlencoded
func (a *App) UpdateFavoriteHandler(w http.ResponseWriter, r *http.Request) {
	principal, err, resp := a.Auth().Authenticate(r)
	if err != nil {
		writeJsonError(w, resp)
		return
	}

	if err, resp := a.Validator().ContentType(r, MimeTypeForm); err != nil {
		writeJsonError(w, resp)
		return
	}

	if err := r.ParseForm(); err != nil {
		writeJsonError(w, errorInvalidRequest)
		return
	}

	// An empty title clears the favorite.
	title := r.PostForm.Get("title")

	if err := a.DbAuth().UpdateFavorite(principal.Email, title); err != nil {
		a.logger.Error("favorite update failed", "email", principal.Email, "error", err)
		writeJsonError(w, errorAuthDatabaseError)
		return
	}

	http.Redirect(w, r, endpointPath(a.Config().Endpoints.Favorites), http.StatusSeeOther)
}
