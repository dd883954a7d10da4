package core

import (
	"context"
	"log/slog"

	"github.com/reelmark/reelmark/config"
	"github.com/reelmark/reelmark/db"
	"github.com/reelmark/reelmark/movies"
	"github.com/reelmark/reelmark/router"
)

// MovieFinder is the movie lookup dependency of the handlers. The movies
// client satisfies it; tests substitute their own.
type MovieFinder interface {
	Lookup(ctx context.Context, title string) (*movies.Movie, error)
}

// App is the application wide context.
// Database handles and other permanent structs go here; all handlers and
// middleware have App as receiver and reach their dependencies through it.
type App struct {
	dbAuth         db.DbAuth
	dbSession      db.DbSession
	sessions       *SessionManager
	router         router.Router
	configProvider *config.Provider
	logger         *slog.Logger
	authenticator  Authenticator
	validator      Validator
	movies         MovieFinder
}

// Router returns the application's router instance
func (a *App) Router() router.Router {
	return a.router
}

func (a *App) SetRouter(r router.Router) {
	a.router = r
}

func (a *App) DbAuth() db.DbAuth {
	return a.dbAuth
}

func (a *App) DbSession() db.DbSession {
	return a.dbSession
}

// SetDb sets the database interfaces for auth and sessions
func (a *App) SetDb(dbApp db.DbApp) {
	if dbApp == nil {
		panic("DbApp cannot be nil")
	}
	a.dbAuth = dbApp
	a.dbSession = dbApp
}

func (a *App) Logger() *slog.Logger {
	return a.logger
}

func (a *App) SetLogger(l *slog.Logger) {
	a.logger = l
}

func (a *App) Sessions() *SessionManager {
	return a.sessions
}

func (a *App) Auth() Authenticator {
	return a.authenticator
}

func (a *App) Validator() Validator {
	return a.validator
}

func (a *App) Config() *config.Config {
	return a.configProvider.Get()
}

func (a *App) ConfigProvider() *config.Provider {
	return a.configProvider
}
