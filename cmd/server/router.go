package main

import (
	"net/http"

	"github.com/danielgtaylor/huma/v2/adapters/humachi"
	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"

	"github.com/janisto/cloudrun-smoke/internal/http/routes"
	"github.com/janisto/cloudrun-smoke/internal/platform/config"
	applog "github.com/janisto/cloudrun-smoke/internal/platform/logging"
	"github.com/janisto/cloudrun-smoke/internal/platform/metrics"
	appmiddleware "github.com/janisto/cloudrun-smoke/internal/platform/middleware"
	"github.com/janisto/cloudrun-smoke/internal/platform/respond"
)

// newRouter assembles the middleware stack and the endpoint table.
// m may be nil when metrics are disabled.
func newRouter(cfg *config.Config, m *metrics.Metrics) http.Handler {
	router := chi.NewRouter()
	router.NotFound(respond.NotFoundHandler())
	router.MethodNotAllowed(respond.MethodNotAllowedHandler())

	stack := []func(http.Handler) http.Handler{
		appmiddleware.Security(routes.DocsPath),
		appmiddleware.Vary(),
		appmiddleware.CORS(),
		appmiddleware.RequestID(),
		// RealIP trusts X-Forwarded-For; only safe behind the platform's front end.
		chimiddleware.RealIP,
		chimiddleware.RequestSize(1 << 20),
		applog.RequestLogger(cfg.ProjectID),
		applog.AccessLogger(),
	}
	if m != nil {
		stack = append(stack, m.Middleware())
	}
	stack = append(stack, respond.Recoverer())
	router.Use(stack...)

	api := humachi.New(router, routes.NewConfig(Version, cfg.DocsEnabled))
	routes.Register(api)
	return router
}
