package router

import (
	"net/http"

	"github.com/julienschmidt/httprouter"
	"github.com/vfg2006/sdr-metrics-api/pkg/apiErrors"
)

var (
	WithRoutes = func(routes ...Route) ConfigRouter {
		return func(router *Router) {
			router.pending = append(router.pending, routes...)
		}
	}

	// WithRouteMiddleware aplica um middleware construído a partir da própria rota em todas elas
	WithRouteMiddleware = func(build func(route Route) func(http.Handler) http.Handler) ConfigRouter {
		return func(router *Router) {
			router.routeMiddlewares = append(router.routeMiddlewares, build)
		}
	}
)

type Route struct {
	Path        string
	Method      string
	Handler     http.Handler
	Middlewares []func(http.Handler) http.Handler // Lista de middlewares específicos para esta rota
}

type Router struct {
	router           *httprouter.Router
	pending          []Route
	routeMiddlewares []func(route Route) func(http.Handler) http.Handler
}

type ConfigRouter func(router *Router)

func New(configs ...ConfigRouter) Router {
	router := &Router{
		router: httprouter.New(),
	}

	router.router.NotFound = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		apiErrors.WriteError(w, apiErrors.ErrResourceNotFound, "Rota não encontrada", nil)
	})
	router.router.MethodNotAllowed = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		apiErrors.WriteError(w, apiErrors.ErrMethodNotAllowed, "Método não permitido", nil)
	})

	for _, config := range configs {
		config(router)
	}

	router.AddRoutes(router.pending...)
	router.pending = nil

	return *router
}

func (r Router) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	r.router.ServeHTTP(w, req)
}

// AddRoutes adiciona rotas ao router com seus middlewares específicos
func (r Router) AddRoutes(routes ...Route) {
	for _, route := range routes {
		var handler http.Handler = route.Handler

		// Aplicar middlewares específicos da rota, do último para o primeiro
		for i := len(route.Middlewares) - 1; i >= 0; i-- {
			handler = route.Middlewares[i](handler)
		}

		// Middlewares globais por rota ficam por fora
		for i := len(r.routeMiddlewares) - 1; i >= 0; i-- {
			handler = r.routeMiddlewares[i](route)(handler)
		}

		r.router.Handler(route.Method, route.Path, handler)
	}
}
