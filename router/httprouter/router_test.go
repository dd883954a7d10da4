package httprouter

import (
	"net/http"
	"net/http/httptest"
	"testing"

	rtr "github.com/reelmark/reelmark/router"
)

func TestSplitEndpoint(t *testing.T) {
	testCases := []struct {
		name       string
		endpoint   string
		wantMethod string
		wantPath   string
	}{
		{"method and path", "POST /users", "POST", "/users"},
		{"path only defaults to GET", "/users", "GET", "/users"},
		{"root path", "GET /", "GET", "/"},
		{"path with parameter", "DELETE /sessions/:id", "DELETE", "/sessions/:id"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			method, path := splitEndpoint(tc.endpoint)
			if method != tc.wantMethod {
				t.Errorf("method: got %q, want %q", method, tc.wantMethod)
			}
			if path != tc.wantPath {
				t.Errorf("path: got %q, want %q", path, tc.wantPath)
			}
		})
	}
}

func TestRouterDispatch(t *testing.T) {
	r := New()
	r.HandleFunc("POST /things", func(w http.ResponseWriter, req *http.Request) {
		w.WriteHeader(http.StatusCreated)
	})

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest("POST", "/things", nil))
	if rec.Code != http.StatusCreated {
		t.Errorf("expected status %d, got %d", http.StatusCreated, rec.Code)
	}

	rec = httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest("GET", "/things", nil))
	if rec.Code != http.StatusMethodNotAllowed {
		t.Errorf("expected status %d for wrong method, got %d", http.StatusMethodNotAllowed, rec.Code)
	}
}

func TestRouterParam(t *testing.T) {
	r := New()
	var got string
	r.HandleFunc("GET /movies/:title", func(w http.ResponseWriter, req *http.Request) {
		got = r.Param(req, "title")
	})

	r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest("GET", "/movies/heat", nil))
	if got != "heat" {
		t.Errorf("expected param 'heat', got %q", got)
	}
}

func TestRouterRegister(t *testing.T) {
	r := New()
	r.Register(
		rtr.NewRoute("GET /a").WithHandlerFunc(func(w http.ResponseWriter, req *http.Request) {
			w.Write([]byte("a"))
		}),
		rtr.NewRoute("GET /b").WithHandlerFunc(func(w http.ResponseWriter, req *http.Request) {
			w.Write([]byte("b"))
		}),
	)

	for _, path := range []string{"/a", "/b"} {
		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, httptest.NewRequest("GET", path, nil))
		if rec.Body.String() != path[1:] {
			t.Errorf("GET %s: expected body %q, got %q", path, path[1:], rec.Body.String())
		}
	}
}
