package reelmark

import (
	"fmt"
	"log/slog"
	"os"
	"runtime"

	phuslog "github.com/phuslu/log"
	"zombiezen.com/go/sqlite/sqlitex"

	"github.com/reelmark/reelmark/cache"
	"github.com/reelmark/reelmark/cache/ristretto"
	"github.com/reelmark/reelmark/config"
	"github.com/reelmark/reelmark/db"
	"github.com/reelmark/reelmark/db/zombiezen"
	"github.com/reelmark/reelmark/movies"
	"github.com/reelmark/reelmark/router"
	"github.com/reelmark/reelmark/router/httprouter"
)

// initializer collects the pluggable pieces before the App is assembled.
// Options fill it; New applies defaults for whatever is left unset.
type initializer struct {
	cfg          *config.Config
	dbApp        db.DbApp
	router       router.Router
	logger       *slog.Logger
	sessionCache cache.Cache[string, *db.Session]
	movieCache   cache.Cache[string, *movies.Movie]
}

type Option func(*initializer) error

// WithZombiezenPool configures the App to use the zombiezen SQLite
// implementation with an existing pool. The caller owns the pool's
// lifecycle.
func WithZombiezenPool(pool *sqlitex.Pool) Option {
	return func(i *initializer) error {
		dbApp, err := zombiezen.New(pool)
		if err != nil {
			return fmt.Errorf("failed to initialize zombiezen db: %w", err)
		}
		i.dbApp = dbApp
		return nil
	}
}

// WithRouterHttprouter selects the httprouter-backed router.
func WithRouterHttprouter() Option {
	return func(i *initializer) error {
		i.router = httprouter.New()
		return nil
	}
}

// WithCacheRistretto builds the session and movie caches on ristretto,
// sized from the configuration.
func WithCacheRistretto() Option {
	return func(i *initializer) error {
		sessions, err := ristretto.New[*db.Session](i.cfg.Session.CacheSize)
		if err != nil {
			return fmt.Errorf("failed to create session cache: %w", err)
		}
		moviesCache, err := ristretto.New[*movies.Movie](i.cfg.Movies.CacheSize)
		if err != nil {
			return fmt.Errorf("failed to create movie cache: %w", err)
		}
		i.sessionCache = sessions
		i.movieCache = moviesCache
		return nil
	}
}

// DefaultLoggerOptions provides default settings for slog handlers.
var DefaultLoggerOptions = &slog.HandlerOptions{
	Level: slog.LevelInfo,
}

// WithPhusLogger configures slog with phuslu/log's JSON handler.
// Uses DefaultLoggerOptions if opts is nil.
func WithPhusLogger(opts *slog.HandlerOptions) Option {
	return func(i *initializer) error {
		if opts == nil {
			opts = DefaultLoggerOptions
		}
		i.logger = slog.New(phuslog.SlogNewJSONHandler(os.Stderr, opts))
		return nil
	}
}

// WithTextLogger configures slog with the standard library's text handler.
func WithTextLogger(opts *slog.HandlerOptions) Option {
	return func(i *initializer) error {
		if opts == nil {
			opts = DefaultLoggerOptions
		}
		i.logger = slog.New(slog.NewTextHandler(os.Stdout, opts))
		return nil
	}
}

// NewZombiezenPool creates a zombiezen SQLite connection pool with
// reasonable defaults (WAL mode, pool sized to the CPU count). Share a
// single pool if your application accesses the database directly too,
// otherwise concurrent writers run into SQLITE_BUSY.
func NewZombiezenPool(dbPath string) (*sqlitex.Pool, error) {
	poolSize := runtime.NumCPU()
	initString := fmt.Sprintf("file:%s", dbPath)

	pool, err := sqlitex.NewPool(initString, sqlitex.PoolOptions{
		PoolSize: poolSize,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create zombiezen pool at %s: %w", dbPath, err)
	}
	return pool, nil
}
