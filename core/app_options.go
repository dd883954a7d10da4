package core

import (
	"fmt"
	"log/slog"

	"github.com/reelmark/reelmark/config"
	"github.com/reelmark/reelmark/db"
	"github.com/reelmark/reelmark/router"
)

type Option func(*App)

func WithDbApp(dbApp db.DbApp) Option {
	return func(a *App) {
		a.dbAuth = dbApp
		a.dbSession = dbApp
	}
}

func WithRouter(r router.Router) Option {
	return func(a *App) {
		a.router = r
	}
}

func WithConfigProvider(p *config.Provider) Option {
	return func(a *App) {
		a.configProvider = p
	}
}

func WithLogger(l *slog.Logger) Option {
	return func(a *App) {
		a.logger = l
	}
}

func WithSessionManager(sm *SessionManager) Option {
	return func(a *App) {
		a.sessions = sm
	}
}

func WithAuthenticator(auth Authenticator) Option {
	return func(a *App) {
		a.authenticator = auth
	}
}

func WithValidator(v Validator) Option {
	return func(a *App) {
		a.validator = v
	}
}

func WithMovieFinder(m MovieFinder) Option {
	return func(a *App) {
		a.movies = m
	}
}

// NewApp assembles the application context from options. Every dependency
// is injected; there is no global fallback.
func NewApp(opts ...Option) (*App, error) {
	a := &App{}
	for _, opt := range opts {
		opt(a)
	}

	if a.dbAuth == nil || a.dbSession == nil {
		return nil, fmt.Errorf("database is required (use WithDbApp)")
	}
	if a.router == nil {
		return nil, fmt.Errorf("router is required (use WithRouter)")
	}
	if a.configProvider == nil {
		return nil, fmt.Errorf("config provider is required (use WithConfigProvider)")
	}
	if a.logger == nil {
		return nil, fmt.Errorf("logger is required (use WithLogger)")
	}
	if a.sessions == nil {
		return nil, fmt.Errorf("session manager is required (use WithSessionManager)")
	}
	if a.movies == nil {
		return nil, fmt.Errorf("movie finder is required (use WithMovieFinder)")
	}
	if a.authenticator == nil {
		a.authenticator = NewSessionAuthenticator(a.sessions)
	}
	if a.validator == nil {
		a.validator = NewValidator()
	}

	return a, nil
}
