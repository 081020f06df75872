package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	_ "github.com/rogerio-castellano/inventory-store/docs"
	"github.com/rogerio-castellano/inventory-store/internal/auth"
	"github.com/rogerio-castellano/inventory-store/internal/http/handlers"
	rl "github.com/rogerio-castellano/inventory-store/internal/http/rate_limiter"
	"github.com/rogerio-castellano/inventory-store/internal/metrics"
	httpSwagger "github.com/swaggo/http-swagger/v2"
	"go.uber.org/zap"
)

// RouterOptions lists the optional pieces of the router. Nil fields are skipped.
type RouterOptions struct {
	Limiter   *rl.RateLimiter
	Collector *metrics.Collector
	Logger    *zap.SugaredLogger
	// Auth guards the mutating routes when set.
	Auth *auth.TokenIssuer
}

func NewRouter(srv *handlers.Server, opts RouterOptions) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)
	if opts.Logger != nil {
		r.Use(RequestLogger(opts.Logger))
	}
	if opts.Collector != nil {
		r.Use(opts.Collector.Middleware)
		r.Method(http.MethodGet, "/metrics", opts.Collector.Handler())
	}
	r.Get("/swagger/*", httpSwagger.Handler(httpSwagger.URL("/swagger/doc.json")))

	r.Group(func(r chi.Router) {
		if opts.Limiter != nil {
			r.Use(opts.Limiter.Middleware)
		}

		r.Get("/items", srv.GetItemsHandler)
		r.Get("/items/{item}", srv.GetItemHandler)
		r.Get("/items/{item}/movements", srv.GetMovementsHandler)
		r.Get("/items/{item}/movements/export", srv.ExportMovementsHandler)
		r.Get("/low-stock", srv.GetLowStockHandler)
		r.Get("/export", srv.ExportItemsHandler)
		r.Get("/metrics/dashboard", srv.GetDashboardMetricsHandler)

		r.Group(func(r chi.Router) {
			if opts.Auth != nil {
				r.Use(AuthMiddleware(opts.Auth))
			}
			r.Post("/items/{item}/add", srv.AddItemHandler)
			r.Post("/items/{item}/remove", srv.RemoveItemHandler)
			r.Post("/import", srv.ImportItemsHandler)
		})
	})

	return r
}
