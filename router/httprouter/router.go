package httprouter

import (
	"net/http"
	"strings"

	jshttprouter "github.com/julienschmidt/httprouter"
	"github.com/reelmark/reelmark/router"
)

// Router implements router.Router on top of julienschmidt/httprouter.
type Router struct {
	rt *jshttprouter.Router
}

func New() *Router {
	return &Router{rt: jshttprouter.New()}
}

func (r *Router) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	r.rt.ServeHTTP(w, req)
}

// splitEndpoint separates the optional method prefix from the path.
// "GET /users" yields ("GET", "/users"); "/users" defaults to GET.
func splitEndpoint(endpoint string) (method, path string) {
	method, path, found := strings.Cut(endpoint, " ")
	if !found || !strings.HasPrefix(path, "/") {
		return http.MethodGet, endpoint
	}
	return method, path
}

func (r *Router) Handle(endpoint string, handler http.Handler) {
	method, path := splitEndpoint(endpoint)
	r.rt.Handler(method, path, handler)
}

func (r *Router) HandleFunc(endpoint string, handler func(http.ResponseWriter, *http.Request)) {
	r.Handle(endpoint, http.HandlerFunc(handler))
}

func (r *Router) Param(req *http.Request, key string) string {
	params := jshttprouter.ParamsFromContext(req.Context())
	return params.ByName(key)
}

func (r *Router) Register(routes ...*router.Route) {
	for _, route := range routes {
		r.Handle(route.Endpoint(), route.Handler())
	}
}
