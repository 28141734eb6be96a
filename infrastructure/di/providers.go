package di

import (
	"context"
	"fmt"

	"mhtrends-backend/application/ports"
	"mhtrends-backend/application/queries"
	querybus "mhtrends-backend/application/queries/bus"
	"mhtrends-backend/application/queries/handlers"
	"mhtrends-backend/infrastructure/config"
	"mhtrends-backend/infrastructure/synthetic"
	"mhtrends-backend/interfaces/http/rest"
	"mhtrends-backend/interfaces/http/rest/middleware"
	pkgerrors "mhtrends-backend/pkg/errors"
	"mhtrends-backend/pkg/observability"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// ProvideLogger creates a new logger instance
func ProvideLogger(cfg *config.Config) (*zap.Logger, error) {
	var zapCfg zap.Config
	if cfg.IsProduction() {
		zapCfg = zap.NewProductionConfig()
	} else {
		zapCfg = zap.NewDevelopmentConfig()
	}

	level, err := zapcore.ParseLevel(cfg.LogLevel)
	if err != nil {
		return nil, fmt.Errorf("invalid LOG_LEVEL %q: %w", cfg.LogLevel, err)
	}
	zapCfg.Level = zap.NewAtomicLevelAt(level)

	return zapCfg.Build(zap.Fields(zap.String("service", "mhtrends-backend")))
}

// ProvideClock creates the wall clock in the configured time zone
func ProvideClock(cfg *config.Config) (ports.Clock, error) {
	loc, err := cfg.Location()
	if err != nil {
		return nil, err
	}
	return synthetic.NewSystemClock(loc), nil
}

// ProvideRandomSource creates the shared generator, seeded from the clock
func ProvideRandomSource(clock ports.Clock) ports.RandomSource {
	return synthetic.NewTimeSeededRand(clock)
}

// ProvideSettingsStore seeds the live dashboard rules from startup config
func ProvideSettingsStore(cfg *config.Config) *config.SettingsStore {
	return config.NewSettingsStore(cfg.Dashboard)
}

// ProvideConfigWatcher hot reloads the rules file in development. It
// returns a nil watcher and a no-op cleanup when there is nothing to watch.
func ProvideConfigWatcher(cfg *config.Config, store *config.SettingsStore, logger *zap.Logger) (*config.ConfigWatcher, func(), error) {
	if !cfg.IsDevelopment() || cfg.IsLambda || cfg.ConfigFile == "" {
		logger.Info("Configuration hot reloading disabled",
			zap.String("environment", cfg.Environment),
		)
		return nil, func() {}, nil
	}

	w, err := config.NewConfigWatcher(cfg.ConfigFile, store, logger)
	if err != nil {
		return nil, nil, err
	}
	return w, func() { w.Stop() }, nil
}

// ProvideTimeSeriesProvider creates the synthetic series generator
func ProvideTimeSeriesProvider(rng ports.RandomSource) ports.TimeSeriesProvider {
	return synthetic.NewTimeSeriesGenerator(rng)
}

// ProvideCatalog creates the fixed topic and emotion catalog
func ProvideCatalog() *synthetic.StaticCatalog {
	return synthetic.NewStaticCatalog()
}

// ProvideGraphProvider creates the synthetic graph generator sized from config
func ProvideGraphProvider(rng ports.RandomSource, cfg *config.Config) ports.GraphProvider {
	return synthetic.NewGraphGenerator(rng, cfg.Dashboard.GraphNodeCount, cfg.Dashboard.GraphLinkCount)
}

// ProvideGetDashboardHandler creates the dashboard query handler
func ProvideGetDashboardHandler(
	timeSeries ports.TimeSeriesProvider,
	topics ports.TopicProvider,
	emotions ports.EmotionProvider,
	graph ports.GraphProvider,
	clock ports.Clock,
	settings ports.SettingsSource,
	logger *zap.Logger,
) *handlers.GetDashboardHandler {
	return handlers.NewGetDashboardHandler(timeSeries, topics, emotions, graph, clock, settings, logger)
}

// ProvideCollector creates the Prometheus collector
func ProvideCollector() *observability.Collector {
	return observability.NewCollector("mhtrends")
}

// ProvideTracerProvider initializes tracing; disabled tracing yields no-op spans
func ProvideTracerProvider(ctx context.Context, cfg *config.Config) (*observability.TracerProvider, error) {
	return observability.InitTracing(ctx, observability.TracingConfig{
		Enabled:     cfg.EnableTracing,
		ServiceName: "mhtrends-backend",
		Environment: cfg.Environment,
		Endpoint:    cfg.OTLPEndpoint,
	})
}

// ProvideQueryBus creates the query bus and registers every query handler
func ProvideQueryBus(
	dashboardHandler *handlers.GetDashboardHandler,
	collector *observability.Collector,
	tracing *observability.TracerProvider,
) (*querybus.QueryBus, error) {
	var mws []querybus.Middleware
	if tracing.Enabled() {
		mws = append(mws, querybus.NewTracingMiddleware(tracing.Tracer()))
	}
	mws = append(mws, querybus.NewMetricsMiddleware(collector))
	queryBus := querybus.NewQueryBus(mws...)

	err := queryBus.Register(queries.GetDashboardQuery{}, querybus.QueryHandlerFunc(
		func(ctx context.Context, query querybus.Query) (interface{}, error) {
			dashboardQuery, ok := query.(queries.GetDashboardQuery)
			if !ok {
				return nil, fmt.Errorf("invalid query type %T", query)
			}
			return dashboardHandler.Handle(ctx, dashboardQuery)
		},
	))
	if err != nil {
		return nil, err
	}

	return queryBus, nil
}

// ProvideErrorHandler creates the HTTP error handler. Development responses
// carry error internals.
func ProvideErrorHandler(cfg *config.Config, logger *zap.Logger) *pkgerrors.ErrorHandler {
	return pkgerrors.NewErrorHandler(logger, cfg.IsDevelopment()).
		WithRequestID(middleware.GetRequestIDFromRequest)
}

// ProvideRouter builds the HTTP router
func ProvideRouter(
	cfg *config.Config,
	queryBus *querybus.QueryBus,
	errorHandler *pkgerrors.ErrorHandler,
	collector *observability.Collector,
	logger *zap.Logger,
) *chi.Mux {
	return rest.NewRouter(queryBus, errorHandler, collector, rest.RouterConfig{
		AllowedOrigins: cfg.CORSAllowedOrigins,
		EnableMetrics:  cfg.EnableMetrics,
	}, logger).Setup()
}
