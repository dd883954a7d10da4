package core

import (
	"errors"
	"net/http"

	"github.com/reelmark/reelmark/movies"
)

// FavoritesData is the payload of the favorites view.
type FavoritesData struct {
	Email    string        `json:"email"`
	Favorite string        `json:"favorite"`
	Movie    *movies.Movie `json:"movie,omitempty"`
}

// FavoritesHandler returns the signed-in user's favorite with its movie
// details. Anonymous requests are redirected to the login page. With no
// favorite set, no external lookup happens at all; with one set, exactly
// one lookup runs, keyed on the stored title.
// Endpoint: GET /favorites
// Authenticated: Yes
func (a *App) FavoritesHandler(w http.ResponseWriter, r *http.Request) {
	principal, err, _ := a.Auth().Authenticate(r)
	if err != nil {
		http.Redirect(w, r, loginPath, http.StatusFound)
		return
	}

	// The favorite may have changed since login; read it fresh instead of
	// trusting the session snapshot.
	user, err := a.DbAuth().GetUserByEmail(principal.Email)
	if err != nil {
		a.logger.Error("favorites: user lookup failed", "email", principal.Email, "error", err)
		writeJsonError(w, errorAuthDatabaseError)
		return
	}
	if user == nil {
		// Session outlived the account.
		http.Redirect(w, r, loginPath, http.StatusFound)
		return
	}

	data := FavoritesData{
		Email:    user.Email,
		Favorite: user.Favorite,
	}

	if user.Favorite != "" {
		movie, err := a.movies.Lookup(r.Context(), user.Favorite)
		switch {
		case err == nil:
			metricMovieLookups.WithLabelValues(metricOutcomeSuccess).Inc()
			data.Movie = movie
		case errors.Is(err, movies.ErrNotFound):
			// A stored title the API no longer matches is not a failure;
			// the view just renders without details.
			metricMovieLookups.WithLabelValues(metricOutcomeNotFound).Inc()
		default:
			metricMovieLookups.WithLabelValues(metricOutcomeError).Inc()
			a.logger.Error("favorites: movie lookup failed", "title", user.Favorite, "error", err)
			writeJsonError(w, errorMovieLookupFailed)
			return
		}
	}

	writeJsonWithData(w, JsonWithData{
		JsonBasic: JsonBasic{
			Status:  http.StatusOK,
			Code:    CodeOkFavorites,
			Message: "Favorites",
		},
		Data: data,
	})
}
