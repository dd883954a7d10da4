package router

import (
	"net/http"
)

// Router registers endpoints and dispatches requests to them.
//
// An endpoint is a string of the form "METHOD /path"; the method prefix is
// optional and defaults to GET. Path parameters use the syntax of the
// underlying implementation (":id" for httprouter).
type Router interface {
	http.Handler

	// Handle registers a handler for the given endpoint.
	Handle(endpoint string, handler http.Handler)

	// HandleFunc registers a handler function for the given endpoint.
	HandleFunc(endpoint string, handler func(http.ResponseWriter, *http.Request))

	// Param returns the value of the named path parameter for the request,
	// or "" if the parameter is not present.
	Param(req *http.Request, key string) string

	// Register registers a set of routes.
	Register(routes ...*Route)
}
