package router

import (
	"net/http"
)

// Route pairs an endpoint with a handler and its middleware chain.
type Route struct {
	endpoint    string
	handler     http.Handler
	middlewares []func(http.Handler) http.Handler
}

// NewRoute creates a route for the given endpoint ("METHOD /path").
func NewRoute(endpoint string) *Route {
	return &Route{
		endpoint:    endpoint,
		middlewares: make([]func(http.Handler) http.Handler, 0),
	}
}

func (r *Route) Endpoint() string {
	return r.endpoint
}

func (r *Route) WithHandler(h http.Handler) *Route {
	r.handler = h
	return r
}

func (r *Route) WithHandlerFunc(h func(http.ResponseWriter, *http.Request)) *Route {
	r.handler = http.HandlerFunc(h)
	return r
}

// WithMiddleware adds one or more middlewares to the route.
// Middlewares execute in the order they are listed, from left to right:
//
//	.WithMiddleware(mw1, mw2)
//
// runs mw1 first, then mw2, then the handler. This follows the same
// semantics as middleware chaining packages like Alice
// (github.com/justinas/alice), matching the natural reading order.
func (r *Route) WithMiddleware(middlewares ...func(http.Handler) http.Handler) *Route {
	for _, mw := range middlewares {
		r.middlewares = append([]func(http.Handler) http.Handler{mw}, r.middlewares...)
	}
	return r
}

// WithMiddlewareChain adds a slice of middlewares, preserving their order.
func (r *Route) WithMiddlewareChain(middlewares []func(http.Handler) http.Handler) *Route {
	return r.WithMiddleware(middlewares...)
}

// Handler returns the final handler with all middlewares applied.
func (r *Route) Handler() http.Handler {
	if r.handler == nil {
		panic("route handler cannot be nil")
	}
	handler := r.handler
	for _, mw := range r.middlewares {
		handler = mw(handler)
	}
	return handler
}
