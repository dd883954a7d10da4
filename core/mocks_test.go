package core

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/reelmark/reelmark/cache"
	"github.com/reelmark/reelmark/config"
	"github.com/reelmark/reelmark/db"
	"github.com/reelmark/reelmark/db/mock"
	"github.com/reelmark/reelmark/movies"
	"github.com/reelmark/reelmark/router"
)

// MockValidator implements Validator with an overridable function field.
type MockValidator struct {
	ContentTypeFunc func(r *http.Request, allowedType string) (error, jsonResponse)
}

func (m *MockValidator) ContentType(r *http.Request, allowedType string) (error, jsonResponse) {
	if m.ContentTypeFunc != nil {
		return m.ContentTypeFunc(r, allowedType)
	}
	return nil, jsonResponse{} // Default: accept anything
}

// MockMovieFinder implements MovieFinder with an overridable function field.
type MockMovieFinder struct {
	LookupFunc func(ctx context.Context, title string) (*movies.Movie, error)
}

func (m *MockMovieFinder) Lookup(ctx context.Context, title string) (*movies.Movie, error) {
	if m.LookupFunc != nil {
		return m.LookupFunc(ctx, title)
	}
	return nil, movies.ErrNotFound // Default: not found
}

// MockRouter implements router.Router for testing.
type MockRouter struct {
	ParamFunc func(req *http.Request, key string) string
}

func (m *MockRouter) Handle(endpoint string, handler http.Handler)                                 {}
func (m *MockRouter) HandleFunc(endpoint string, handler func(http.ResponseWriter, *http.Request)) {}
func (m *MockRouter) ServeHTTP(w http.ResponseWriter, r *http.Request)                             {}
func (m *MockRouter) Register(routes ...*router.Route)                                             {}

func (m *MockRouter) Param(req *http.Request, key string) string {
	if m.ParamFunc != nil {
		return m.ParamFunc(req, key)
	}
	return ""
}

// mockSessionCache is a synchronous map-backed session cache.
type mockSessionCache struct {
	entries map[string]*db.Session
}

func newMockSessionCache() *mockSessionCache {
	return &mockSessionCache{entries: make(map[string]*db.Session)}
}

func (m *mockSessionCache) Get(key string) (*db.Session, bool) {
	v, ok := m.entries[key]
	return v, ok
}

func (m *mockSessionCache) Set(key string, value *db.Session, cost int64) bool {
	m.entries[key] = value
	return true
}

func (m *mockSessionCache) SetWithTTL(key string, value *db.Session, cost int64, ttl time.Duration) bool {
	m.entries[key] = value
	return true
}

func (m *mockSessionCache) Delete(key string) {
	delete(m.entries, key)
}

var _ cache.Cache[string, *db.Session] = (*mockSessionCache)(nil)

const testSessionSecret = "test_secret_32_bytes_long_xxxxxx"

func newTestConfig() *config.Config {
	cfg := config.NewDefaultConfig()
	cfg.Session.Secret = testSessionSecret
	google := cfg.OAuth2Providers["google"]
	google.ClientID = "test-client-id"
	google.ClientSecret = "test-client-secret"
	cfg.OAuth2Providers["google"] = google
	return cfg
}

// newTestApp assembles an App on mocks. Tests override the mock fields
// they care about.
func newTestApp(t *testing.T, mockDb *mock.Db) *App {
	t.Helper()

	if mockDb == nil {
		mockDb = &mock.Db{}
	}

	provider := config.NewProvider(newTestConfig())
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	sessions := NewSessionManager(mockDb, newMockSessionCache(), provider, logger)

	app, err := NewApp(
		WithDbApp(mockDb),
		WithRouter(&MockRouter{}),
		WithConfigProvider(provider),
		WithLogger(logger),
		WithSessionManager(sessions),
		WithMovieFinder(&MockMovieFinder{}),
		WithValidator(&MockValidator{}),
	)
	if err != nil {
		t.Fatalf("failed to build test app: %v", err)
	}
	return app
}

// signIn establishes a session for the user and returns the cookie to
// attach to subsequent requests.
func signIn(t *testing.T, app *App, user *db.User) *http.Cookie {
	t.Helper()

	rec := httptest.NewRecorder()
	if err := app.Sessions().Serialize(rec, user); err != nil {
		t.Fatalf("failed to establish session: %v", err)
	}
	cookies := rec.Result().Cookies()
	if len(cookies) != 1 {
		t.Fatalf("expected exactly one session cookie, got %d", len(cookies))
	}
	return cookies[0]
}
