package reelmark

import (
	"io/fs"

	"github.com/reelmark/reelmark/config"
	"github.com/reelmark/reelmark/core"
	r "github.com/reelmark/reelmark/router"
)

func route(cfg *config.Config, app *core.App) {
	pages, err := fs.Sub(EmbeddedPages, "static")
	if err != nil {
		panic(err)
	}

	app.Router().Register(
		// --- pages ---
		r.NewRoute("GET /").WithHandlerFunc(core.PageHandler(pages, "index.html")),
		r.NewRoute("GET /browse").WithHandlerFunc(core.PageHandler(pages, "browse.html")),
		r.NewRoute("GET /login").WithHandlerFunc(core.PageHandler(pages, "login.html")),

		// --- api routes ---
		r.NewRoute(cfg.Endpoints.ListEndpoints).WithHandlerFunc(app.ListEndpointsHandler),
		r.NewRoute(cfg.Endpoints.AuthWithPassword).WithHandlerFunc(app.AuthWithPasswordHandler),
		r.NewRoute(cfg.Endpoints.RegisterWithPassword).WithHandlerFunc(app.RegisterWithPasswordHandler),
		r.NewRoute(cfg.Endpoints.ListOAuth2Providers).WithHandlerFunc(app.ListOAuth2ProvidersHandler),
		r.NewRoute(cfg.Endpoints.OAuth2Redirect).WithHandlerFunc(app.OAuth2RedirectHandler),
		r.NewRoute(cfg.Endpoints.OAuth2Callback).WithHandlerFunc(app.OAuth2CallbackHandler),
		r.NewRoute(cfg.Endpoints.Logout).WithHandlerFunc(app.LogoutHandler),
		r.NewRoute(cfg.Endpoints.Favorites).WithHandlerFunc(app.FavoritesHandler),
		r.NewRoute(cfg.Endpoints.UpdateFavorite).WithHandlerFunc(app.UpdateFavoriteHandler),
		r.NewRoute(cfg.Endpoints.MovieSearch).WithHandlerFunc(app.MovieSearchHandler),

		// --- observability ---
		r.NewRoute("GET "+cfg.Metrics.Endpoint).WithHandlerFunc(app.MetricsHandler),
	)
}
