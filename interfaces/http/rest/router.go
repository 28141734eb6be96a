package rest

import (
	"net/http"

	querybus "mhtrends-backend/application/queries/bus"
	"mhtrends-backend/interfaces/http/rest/handlers"
	"mhtrends-backend/interfaces/http/rest/middleware"
	pkgerrors "mhtrends-backend/pkg/errors"
	"mhtrends-backend/pkg/observability"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"go.uber.org/zap"
)

// RouterConfig holds the HTTP surface options
type RouterConfig struct {
	AllowedOrigins []string
	EnableMetrics  bool
}

// Router creates and configures the HTTP router
type Router struct {
	queryBus     *querybus.QueryBus
	errorHandler *pkgerrors.ErrorHandler
	collector    *observability.Collector
	config       RouterConfig
	logger       *zap.Logger
}

// NewRouter creates a new router instance
func NewRouter(
	queryBus *querybus.QueryBus,
	errorHandler *pkgerrors.ErrorHandler,
	collector *observability.Collector,
	config RouterConfig,
	logger *zap.Logger,
) *Router {
	return &Router{
		queryBus:     queryBus,
		errorHandler: errorHandler,
		collector:    collector,
		config:       config,
		logger:       logger,
	}
}

// Setup configures all routes and middleware
func (rt *Router) Setup() *chi.Mux {
	router := chi.NewRouter()

	// Global middleware
	router.Use(middleware.RequestID)
	router.Use(chimiddleware.RealIP)
	router.Use(middleware.Logger(rt.logger))
	router.Use(middleware.Metrics(rt.collector))
	router.Use(rt.errorHandler.Middleware)

	router.Use(cors.Handler(cors.Options{
		AllowedOrigins: rt.config.AllowedOrigins,
		AllowedMethods: []string{http.MethodGet, http.MethodOptions},
		AllowedHeaders: []string{"Accept", "Content-Type", middleware.RequestIDHeader},
		ExposedHeaders: []string{middleware.RequestIDHeader},
		MaxAge:         300,
	}))

	router.NotFound(func(w http.ResponseWriter, r *http.Request) {
		rt.errorHandler.HandleStatus(w, r, http.StatusNotFound, "route not found")
	})
	router.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		rt.errorHandler.HandleStatus(w, r, http.StatusMethodNotAllowed, "method not allowed")
	})

	router.Get("/", handlers.Status)
	router.Get("/health", handlers.Health)
	router.Get("/ready", handlers.Ready)
	if rt.config.EnableMetrics {
		router.Method(http.MethodGet, "/metrics", rt.collector.Handler())
	}

	router.Route("/api", func(r chi.Router) {
		r.Use(middleware.CircuitBreaker(
			middleware.DefaultCircuitBreakerConfig("dashboard"),
			rt.errorHandler,
			rt.logger,
		))

		dashboardHandler := handlers.NewDashboardHandler(rt.queryBus, rt.errorHandler, rt.collector, rt.logger)
		r.Get("/dashboard", dashboardHandler.GetDashboard)
	})

	return router
}
