package core

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/reelmark/reelmark/movies"
)

// MovieSearchHandler looks a title up against the external movie API.
// A miss is what the API itself reports as not found; transport and
// upstream failures answer as a bad gateway.
// Endpoint: POST /api/movie-search
// Authenticated: No
// Allowed Mimetype: application/json
func (a *App) MovieSearchHandler(w http.ResponseWriter, r *http.Request) {
	if err, resp := a.Validator().ContentType(r, MimeTypeJSON); err != nil {
		writeJsonError(w, resp)
		return
	}

	var req struct {
		Title string `json:"title"`
	}

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJsonError(w, errorInvalidRequest)
		return
	}

	if req.Title == "" {
		writeJsonError(w, errorMissingFields)
		return
	}

	movie, err := a.movies.Lookup(r.Context(), req.Title)
	if err != nil {
		if errors.Is(err, movies.ErrNotFound) {
			metricMovieLookups.WithLabelValues(metricOutcomeNotFound).Inc()
			writeJsonError(w, errorMovieNotFound)
			return
		}
		metricMovieLookups.WithLabelValues(metricOutcomeError).Inc()
		a.logger.Error("movie search failed", "title", req.Title, "error", err)
		writeJsonError(w, errorMovieLookupFailed)
		return
	}

	metricMovieLookups.WithLabelValues(metricOutcomeSuccess).Inc()
	writeJsonWithData(w, JsonWithData{
		JsonBasic: JsonBasic{
			Status:  http.StatusOK,
			Code:    CodeOkMovieFound,
			Message: "Movie found",
		},
		Data: movie,
	})
}
