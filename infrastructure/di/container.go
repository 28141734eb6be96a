package di

import (
	"context"
	"errors"

	querybus "mhtrends-backend/application/queries/bus"
	"mhtrends-backend/infrastructure/config"
	pkgerrors "mhtrends-backend/pkg/errors"
	"mhtrends-backend/pkg/observability"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// Container holds all application dependencies
type Container struct {
	Config       *config.Config
	Logger       *zap.Logger
	Settings     *config.SettingsStore
	Watcher      *config.ConfigWatcher
	Collector    *observability.Collector
	Tracing      *observability.TracerProvider
	QueryBus     *querybus.QueryBus
	ErrorHandler *pkgerrors.ErrorHandler
	Router       *chi.Mux
}

// Shutdown flushes telemetry. The config watcher is stopped by the cleanup
// returned from InitializeContainer.
func (c *Container) Shutdown(ctx context.Context) error {
	var errs []error

	if c.Tracing != nil {
		if err := c.Tracing.Shutdown(ctx); err != nil {
			errs = append(errs, err)
		}
	}
	if c.Logger != nil {
		// stderr sync fails on some platforms; nothing to recover
		_ = c.Logger.Sync()
	}

	return errors.Join(errs...)
}
