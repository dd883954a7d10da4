package core

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/reelmark/reelmark/db"
	"github.com/reelmark/reelmark/db/mock"
	"github.com/reelmark/reelmark/movies"
)

func TestFavoritesHandlerAnonymousRedirects(t *testing.T) {
	app := newTestApp(t, nil)

	req := httptest.NewRequest("GET", "/favorites", nil)
	rec := httptest.NewRecorder()

	app.FavoritesHandler(rec, req)

	if rec.Code != http.StatusFound {
		t.Fatalf("expected redirect status 302, got %d", rec.Code)
	}
	if loc := rec.Header().Get("Location"); loc != loginPath {
		t.Errorf("expected redirect to %q, got %q", loginPath, loc)
	}
}

func TestFavoritesHandlerNoFavoriteSkipsLookup(t *testing.T) {
	mockDb := &mock.Db{
		GetUserByEmailFunc: func(email string) (*db.User, error) {
			return &db.User{ID: "user-1", Email: email}, nil
		},
	}
	app := newTestApp(t, mockDb)

	lookups := 0
	app.movies = &MockMovieFinder{
		LookupFunc: func(ctx context.Context, title string) (*movies.Movie, error) {
			lookups++
			return nil, movies.ErrNotFound
		},
	}

	cookie := signIn(t, app, &db.User{ID: "user-1", Email: "test@example.com"})
	req := httptest.NewRequest("GET", "/favorites", nil)
	req.AddCookie(cookie)
	rec := httptest.NewRecorder()

	app.FavoritesHandler(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", rec.Code)
	}
	if lookups != 0 {
		t.Errorf("no favorite set: expected 0 lookups, got %d", lookups)
	}
}

func TestFavoritesHandlerWithFavorite(t *testing.T) {
	mockDb := &mock.Db{
		GetUserByEmailFunc: func(email string) (*db.User, error) {
			return &db.User{ID: "user-1", Email: email, Favorite: "Heat"}, nil
		},
	}
	app := newTestApp(t, mockDb)

	lookups := 0
	app.movies = &MockMovieFinder{
		LookupFunc: func(ctx context.Context, title string) (*movies.Movie, error) {
			lookups++
			if title != "Heat" {
				t.Errorf("lookup keyed on %q, want %q", title, "Heat")
			}
			return &movies.Movie{Title: "Heat", Year: "1995"}, nil
		},
	}

	cookie := signIn(t, app, &db.User{ID: "user-1", Email: "test@example.com", Favorite: "Heat"})
	req := httptest.NewRequest("GET", "/favorites", nil)
	req.AddCookie(cookie)
	rec := httptest.NewRecorder()

	app.FavoritesHandler(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d: %s", rec.Code, rec.Body.String())
	}
	if lookups != 1 {
		t.Errorf("expected exactly 1 lookup, got %d", lookups)
	}

	var resp struct {
		Data FavoritesData `json:"data"`
	}
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if resp.Data.Favorite != "Heat" || resp.Data.Movie == nil || resp.Data.Movie.Year != "1995" {
		t.Errorf("unexpected payload: %+v", resp.Data)
	}
}

func TestFavoritesHandlerStaleFavoriteTitle(t *testing.T) {
	// The stored title no longer matches anything upstream. The view still
	// renders, just without movie details.
	mockDb := &mock.Db{
		GetUserByEmailFunc: func(email string) (*db.User, error) {
			return &db.User{ID: "user-1", Email: email, Favorite: "Gone Movie"}, nil
		},
	}
	app := newTestApp(t, mockDb)

	cookie := signIn(t, app, &db.User{ID: "user-1", Email: "test@example.com"})
	req := httptest.NewRequest("GET", "/favorites", nil)
	req.AddCookie(cookie)
	rec := httptest.NewRecorder()

	app.FavoritesHandler(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", rec.Code)
	}

	var resp struct {
		Data FavoritesData `json:"data"`
	}
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if resp.Data.Movie != nil {
		t.Errorf("expected no movie details, got %+v", resp.Data.Movie)
	}
}

func TestFavoritesHandlerLookupFailure(t *testing.T) {
	mockDb := &mock.Db{
		GetUserByEmailFunc: func(email string) (*db.User, error) {
			return &db.User{ID: "user-1", Email: email, Favorite: "Heat"}, nil
		},
	}
	app := newTestApp(t, mockDb)
	app.movies = &MockMovieFinder{
		LookupFunc: func(ctx context.Context, title string) (*movies.Movie, error) {
			return nil, errors.New("connection refused")
		},
	}

	cookie := signIn(t, app, &db.User{ID: "user-1", Email: "test@example.com"})
	req := httptest.NewRequest("GET", "/favorites", nil)
	req.AddCookie(cookie)
	rec := httptest.NewRecorder()

	app.FavoritesHandler(rec, req)
	checkErrorResponse(t, rec, errorMovieLookupFailed)
}

func TestFavoritesHandlerUserGone(t *testing.T) {
	// Valid session but the account no longer exists.
	app := newTestApp(t, nil)

	cookie := signIn(t, app, &db.User{ID: "user-1", Email: "gone@example.com"})
	req := httptest.NewRequest("GET", "/favorites", nil)
	req.AddCookie(cookie)
	rec := httptest.NewRecorder()

	app.FavoritesHandler(rec, req)

	if rec.Code != http.StatusFound {
		t.Fatalf("expected redirect status 302, got %d", rec.Code)
	}
}

func TestFavoritesHandlerStoreFailure(t *testing.T) {
	mockDb := &mock.Db{
		GetUserByEmailFunc: func(email string) (*db.User, error) {
			return nil, errors.New("disk on fire")
		},
	}
	app := newTestApp(t, mockDb)

	cookie := signIn(t, app, &db.User{ID: "user-1", Email: "test@example.com"})
	req := httptest.NewRequest("GET", "/favorites", nil)
	req.AddCookie(cookie)
	rec := httptest.NewRecorder()

	app.FavoritesHandler(rec, req)
	checkErrorResponse(t, rec, errorAuthDatabaseError)
}
