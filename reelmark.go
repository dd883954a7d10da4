// Package reelmark assembles the movie-favorites application: config,
// database, caches, HTTP routes, session purge scheduler and server.
package reelmark

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/reelmark/reelmark/config"
	"github.com/reelmark/reelmark/core"
	"github.com/reelmark/reelmark/movies"
	"github.com/reelmark/reelmark/scheduler"
	"github.com/reelmark/reelmark/server"
)

// New creates the App and Server from the configuration file at
// configPath. Options select implementations for the database, router,
// caches and logger; everything left unset falls back to the defaults
// (httprouter, ristretto, phuslu JSON logging). A database option is
// mandatory.
func New(configPath string, opts ...Option) (*core.App, *server.Server, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load config: %w", err)
	}

	init := &initializer{cfg: cfg}
	for _, opt := range opts {
		if err := opt(init); err != nil {
			return nil, nil, err
		}
	}

	if init.dbApp == nil {
		return nil, nil, fmt.Errorf("a database is required (use WithZombiezenPool)")
	}
	if init.logger == nil {
		init.logger = slog.New(slog.NewTextHandler(os.Stdout, DefaultLoggerOptions))
	}
	if init.router == nil {
		if err := WithRouterHttprouter()(init); err != nil {
			return nil, nil, err
		}
	}
	if init.sessionCache == nil || init.movieCache == nil {
		if err := WithCacheRistretto()(init); err != nil {
			return nil, nil, err
		}
	}

	configProvider := config.NewProvider(cfg)
	sessions := core.NewSessionManager(init.dbApp, init.sessionCache, configProvider, init.logger)
	movieClient := movies.NewClient(cfg.Movies, init.movieCache, init.logger)

	app, err := core.NewApp(
		core.WithDbApp(init.dbApp),
		core.WithRouter(init.router),
		core.WithConfigProvider(configProvider),
		core.WithLogger(init.logger),
		core.WithSessionManager(sessions),
		core.WithMovieFinder(movieClient),
	)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to initialize app: %w", err)
	}

	route(cfg, app)

	purger := scheduler.NewScheduler(cfg.Session.PurgeInterval.Duration, init.dbApp, init.logger)
	srv := server.NewServer(cfg.Server, app.RequestLog(app.Router()), purger, init.logger)

	return app, srv, nil
}
