package main

import (
	"context"
	"flag"
	"fmt"
	"io/fs"
	"log/slog"
	"os"

	"zombiezen.com/go/sqlite/sqlitex"

	"github.com/reelmark/reelmark"
	"github.com/reelmark/reelmark/migrations"
)

// applyMigrations runs every embedded schema script. The scripts are
// idempotent (CREATE ... IF NOT EXISTS), so running them on every start
// is safe.
func applyMigrations(pool *sqlitex.Pool) error {
	conn, err := pool.Take(context.Background())
	if err != nil {
		return fmt.Errorf("failed to get connection for migrations: %w", err)
	}
	defer pool.Put(conn)

	schema := migrations.Schema()
	return fs.WalkDir(schema, ".", func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		sql, err := fs.ReadFile(schema, path)
		if err != nil {
			return fmt.Errorf("failed to read migration %s: %w", path, err)
		}
		if err := sqlitex.ExecuteScript(conn, string(sql), nil); err != nil {
			return fmt.Errorf("failed to execute migration %s: %w", path, err)
		}
		return nil
	})
}

func main() {
	configPath := flag.String("config", "", "path to the TOML configuration file (empty uses defaults plus environment)")
	dbPath := flag.String("db", "reelmark.db", "path to the SQLite database file")
	flag.Parse()

	pool, err := reelmark.NewZombiezenPool(*dbPath)
	if err != nil {
		slog.Error("failed to open database", "path", *dbPath, "err", err)
		os.Exit(1)
	}
	defer pool.Close()

	if err := applyMigrations(pool); err != nil {
		slog.Error("failed to apply migrations", "err", err)
		os.Exit(1)
	}

	_, srv, err := reelmark.New(*configPath,
		reelmark.WithZombiezenPool(pool),
		reelmark.WithRouterHttprouter(),
		reelmark.WithCacheRistretto(),
		reelmark.WithPhusLogger(nil),
	)
	if err != nil {
		slog.Error("failed to initialize application", "err", err)
		os.Exit(1)
	}

	srv.Run()
}
