package router_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	rtr "github.com/reelmark/reelmark/router"
)

func TestRouteBasicHandler(t *testing.T) {
	route := rtr.NewRoute("GET /test").
		WithHandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusOK)
			w.Write([]byte("OK"))
		})

	req := httptest.NewRequest("GET", "/test", nil)
	rec := httptest.NewRecorder()

	route.Handler().ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Errorf("expected status %d, got %d", http.StatusOK, rec.Code)
	}
	if body := rec.Body.String(); body != "OK" {
		t.Errorf("expected body 'OK', got '%s'", body)
	}
}

func TestRouteMiddlewareOrder(t *testing.T) {
	var callOrder []string

	mw := func(name string) func(http.Handler) http.Handler {
		return func(next http.Handler) http.Handler {
			return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				callOrder = append(callOrder, name)
				next.ServeHTTP(w, r)
			})
		}
	}

	route := rtr.NewRoute("GET /test").
		WithHandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			callOrder = append(callOrder, "handler")
			w.WriteHeader(http.StatusOK)
		}).
		WithMiddleware(mw("mw1"), mw("mw2"))

	req := httptest.NewRequest("GET", "/test", nil)
	rec := httptest.NewRecorder()

	route.Handler().ServeHTTP(rec, req)

	expected := []string{"mw1", "mw2", "handler"}
	if len(callOrder) != len(expected) {
		t.Fatalf("expected %d calls, got %d: %v", len(expected), len(callOrder), callOrder)
	}
	for i, name := range expected {
		if callOrder[i] != name {
			t.Errorf("call %d: expected %q, got %q", i, name, callOrder[i])
		}
	}
}

func TestRouteMiddlewareChain(t *testing.T) {
	var callOrder []string

	mw := func(name string) func(http.Handler) http.Handler {
		return func(next http.Handler) http.Handler {
			return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				callOrder = append(callOrder, name)
				next.ServeHTTP(w, r)
			})
		}
	}

	route := rtr.NewRoute("GET /test").
		WithHandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			callOrder = append(callOrder, "handler")
		}).
		WithMiddlewareChain([]func(http.Handler) http.Handler{mw("a"), mw("b")})

	route.Handler().ServeHTTP(httptest.NewRecorder(), httptest.NewRequest("GET", "/test", nil))

	expected := []string{"a", "b", "handler"}
	for i, name := range expected {
		if callOrder[i] != name {
			t.Errorf("call %d: expected %q, got %q", i, name, callOrder[i])
		}
	}
}

func TestRouteNilHandlerPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("expected panic for route with nil handler")
		}
	}()
	rtr.NewRoute("GET /test").Handler()
}
