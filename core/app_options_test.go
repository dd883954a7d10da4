package core

import (
	"io"
	"log/slog"
	"strings"
	"testing"

	"github.com/reelmark/reelmark/config"
	"github.com/reelmark/reelmark/db/mock"
)

func TestNewAppMissingDependencies(t *testing.T) {
	provider := config.NewProvider(newTestConfig())
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	mockDb := &mock.Db{}
	sessions := NewSessionManager(mockDb, newMockSessionCache(), provider, logger)

	all := func() []Option {
		return []Option{
			WithDbApp(mockDb),
			WithRouter(&MockRouter{}),
			WithConfigProvider(provider),
			WithLogger(logger),
			WithSessionManager(sessions),
			WithMovieFinder(&MockMovieFinder{}),
		}
	}

	testCases := []struct {
		name    string
		drop    int // index into all() to omit
		wantErr string
	}{
		{"missing database", 0, "database"},
		{"missing router", 1, "router"},
		{"missing config provider", 2, "config provider"},
		{"missing logger", 3, "logger"},
		{"missing session manager", 4, "session manager"},
		{"missing movie finder", 5, "movie finder"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			opts := all()
			opts = append(opts[:tc.drop], opts[tc.drop+1:]...)

			_, err := NewApp(opts...)
			if err == nil {
				t.Fatal("expected an error")
			}
			if !strings.Contains(err.Error(), tc.wantErr) {
				t.Errorf("error %q does not mention %q", err, tc.wantErr)
			}
		})
	}
}

func TestNewAppDefaults(t *testing.T) {
	provider := config.NewProvider(newTestConfig())
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	mockDb := &mock.Db{}
	sessions := NewSessionManager(mockDb, newMockSessionCache(), provider, logger)

	app, err := NewApp(
		WithDbApp(mockDb),
		WithRouter(&MockRouter{}),
		WithConfigProvider(provider),
		WithLogger(logger),
		WithSessionManager(sessions),
		WithMovieFinder(&MockMovieFinder{}),
	)
	if err != nil {
		t.Fatalf("NewApp failed: %v", err)
	}

	if _, ok := app.Auth().(*SessionAuthenticator); !ok {
		t.Errorf("expected the session authenticator by default, got %T", app.Auth())
	}
	if _, ok := app.Validator().(*DefaultValidator); !ok {
		t.Errorf("expected the default validator, got %T", app.Validator())
	}
}
