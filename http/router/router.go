package router

import (
	"fmt"
	"net/http"
	"net/url"

	"github.com/approute/approute"
	"github.com/approute/approute/http/keyring"
	"github.com/approute/approute/http/middleware"
	"github.com/gorilla/mux"
)

const (
	staticPath = "/static/"
	staticDir  = "static"
)

// A Route maps a path and HTTP method to an [http.HandlerFunc].
// Additional [middleware.Adapter] can be called when a server handles
// a request matching the Route.
//
// A Route with no Method answers GET, HEAD and POST,
// fitting handlers produced by [view.Dispatcher.Handle].
//
// A Route with a Name can be turned back into a URL through [Router.URL].
type Route struct {
	Path        string
	Method      string
	Name        string
	Handler     http.HandlerFunc
	Middlewares []middleware.Adapter
}

// Router routes requests for resources to their location in a standard approute app layout.
type Router struct {
	env           approute.Environment
	everyReqStack []middleware.Adapter
	logReq        middleware.Adapter
	r             *mux.Router
}

// New constructs a [*Router] for the given environment.
//
// Requests under "/static/" serve files out of the static directory.
func New(env approute.Environment, logReq middleware.Adapter) *Router {
	if logReq == nil {
		logReq = middleware.NoopAdapter
	}

	r := mux.NewRouter()
	cacheControl := cacheControlMiddleware()

	staticServer := http.FileServer(http.Dir(staticDir))
	r.PathPrefix(staticPath).Handler(middleware.Chain(
		http.StripPrefix(staticPath, staticServer),
		cacheControl,
		logReq,
	))

	return &Router{logReq: logReq, env: env, r: r}
}

// AuthedRoutes registers the set of Routes as those requiring authentication.
// AuthedRoutes applies the given middlewares before performing that check,
// using middleware.RequireAuthed.
//
// middleware.RequireAuthed requires loginUrl and logoffUrl to appropriately
// redirect applicable requests.
func (r *Router) AuthedRoutes(
	userKey keyring.Keyable,
	loginUrl,
	logoffUrl string,
	routes []Route,
	middlewares ...middleware.Adapter,
) {
	mws := append(middlewares, middleware.RequireAuthed(userKey, loginUrl, logoffUrl))
	r.HandleRoutes(routes, mws...)
}

// CatchAll sets up a handler for all routes to funnel to for e.g. maintenance mode.
func (r *Router) CatchAll(handler http.HandlerFunc) {
	r.r.PathPrefix("/").Handler(
		middleware.Chain(
			middleware.ReportPanic(r.env)(handler),
			r.everyReqStack...,
		),
	)
}

// Handle applies the [Route] to the [*Router].
func (r *Router) Handle(route Route) {
	r.HandleRoutes([]Route{route})
}

// HandleNotFound sets the provided [http.HandlerFunc] as the default function
// for when no other registered Route is matched.
func (r *Router) HandleNotFound(handler http.HandlerFunc) {
	r.r.NotFoundHandler = middleware.Chain(
		middleware.ReportPanic(r.env)(handler),
		r.logReq,
	)
}

// HandleRoutes registers the set of Routes on the Router
// and includes all the [middleware.Adapter] on each Route.
// Any [middleware.Adapter] already assigned to a Route is appended to middlewares,
// so are called after the default set.
func (r *Router) HandleRoutes(routes []Route, middlewares ...middleware.Adapter) {
	for _, route := range routes {
		mws := append(r.everyReqStack, middlewares...)
		mws = append(mws, route.Middlewares...)
		handler := middleware.Chain(middleware.ReportPanic(r.env)(route.Handler), mws...)

		registered := r.r.Handle(route.Path, handler)
		if route.Method != "" {
			registered.Methods(route.Method)
		} else {
			registered.Methods(http.MethodGet, http.MethodHead, http.MethodPost)
		}

		if route.Name != "" {
			registered.Name(route.Name)
		}
	}
}

// OnEveryRequest appends the middlewares to the existing stack
// that the [*Router] will apply to every request.
func (r *Router) OnEveryRequest(middlewares ...middleware.Adapter) {
	r.everyReqStack = append(r.everyReqStack, middlewares...)
}

// ServeHTTP responds to an HTTP request.
func (r *Router) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	r.r.ServeHTTP(w, req)
}

func (r *Router) SubrouterHost(host string) *Router {
	return &Router{
		env:           r.env,
		r:             r.r.Host(host).Subrouter(),
		logReq:        r.logReq,
		everyReqStack: r.everyReqStack,
	}
}

// Subrouter constructs a [Router] that handles requests to endpoints matching the prefix.
//
// e.g., r.Subrouter("/api/v1") handles requests to endpoints like /api/v1/users
func (r *Router) Subrouter(prefix string) *Router {
	return &Router{
		env:           r.env,
		r:             r.r.PathPrefix(prefix).Subrouter(),
		logReq:        r.logReq,
		everyReqStack: r.everyReqStack,
	}
}

// UnauthedRoutes registers the set of Routes as those requiring unauthenticated users.
// It applies the given middlewares before performing that check.
func (r *Router) UnauthedRoutes(userKey keyring.Keyable, routes []Route, middlewares ...middleware.Adapter) {
	r.HandleRoutes(routes, append(middlewares, middleware.RequireUnauthed(userKey))...)
}

// URL builds the URL for the named route,
// filling in the route's variables with matching args.
//
// Args beyond the route's variables become query parameters,
// so a redirect can point at a specific rendition of a page.
//
// URL implements [view.URLer].
func (r *Router) URL(name string, args map[string]string) (*url.URL, error) {
	route := r.r.Get(name)
	if route == nil {
		return nil, fmt.Errorf("%w: no route named %q", approute.ErrNotExist, name)
	}

	varNames, err := route.GetVarNames()
	if err != nil {
		return nil, fmt.Errorf("%w: %s", approute.ErrUnexpected, err)
	}

	pairs := make([]string, 0, 2*len(varNames))
	used := make(map[string]bool, len(varNames))
	for _, vn := range varNames {
		val, ok := args[vn]
		if !ok {
			return nil, fmt.Errorf("%w: route %q requires %q", approute.ErrMissingData, name, vn)
		}

		pairs = append(pairs, vn, val)
		used[vn] = true
	}

	u, err := route.URL(pairs...)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", approute.ErrBadFormat, err)
	}

	q := u.Query()
	for k, v := range args {
		if !used[k] {
			q.Set(k, v)
		}
	}

	if len(q) > 0 {
		u.RawQuery = q.Encode()
	}

	return u, nil
}

// cacheControlMiddleware helps by adding a "Cache-Control" header to the response.
func cacheControlMiddleware() middleware.Adapter {
	return func(handler http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Cache-Control", "max-age=2592000") // 30 days
			handler.ServeHTTP(w, r)
		})
	}
}
