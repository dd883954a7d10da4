package core

import (
	"net/http"
)

// ListEndpointsHandler returns the configured API endpoints.
// Endpoint: GET /api/list-endpoints
// Authenticated: No
func (a *App) ListEndpointsHandler(w http.ResponseWriter, r *http.Request) {
	cfg := a.Config()

	endpoints := map[string]string{
		"list_endpoints":         cfg.Endpoints.ListEndpoints,
		"auth_with_password":     cfg.Endpoints.AuthWithPassword,
		"register_with_password": cfg.Endpoints.RegisterWithPassword,
		"list_oauth2_providers":  cfg.Endpoints.ListOAuth2Providers,
		"oauth2_redirect":        cfg.Endpoints.OAuth2Redirect,
		"oauth2_callback":        cfg.Endpoints.OAuth2Callback,
		"logout":                 cfg.Endpoints.Logout,
		"favorites":              cfg.Endpoints.Favorites,
		"update_favorite":        cfg.Endpoints.UpdateFavorite,
		"movie_search":           cfg.Endpoints.MovieSearch,
	}

	writeJsonWithData(w, JsonWithData{
		JsonBasic: JsonBasic{
			Status:  http.StatusOK,
			Code:    CodeOkEndpointsList,
			Message: "Available endpoints",
		},
		Data: endpoints,
	})
}
