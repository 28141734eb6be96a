//go:build wireinject
// +build wireinject

package di

import (
	"context"

	"mhtrends-backend/application/ports"
	"mhtrends-backend/infrastructure/config"
	"mhtrends-backend/infrastructure/synthetic"

	"github.com/google/wire"
)

// SyntheticSet provides the fabricated data sources
var SyntheticSet = wire.NewSet(
	ProvideClock,
	ProvideRandomSource,
	ProvideTimeSeriesProvider,
	ProvideCatalog,
	wire.Bind(new(ports.TopicProvider), new(*synthetic.StaticCatalog)),
	wire.Bind(new(ports.EmotionProvider), new(*synthetic.StaticCatalog)),
	ProvideGraphProvider,
)

// SuperSet is the main provider set containing all providers
var SuperSet = wire.NewSet(
	ProvideLogger,
	ProvideSettingsStore,
	wire.Bind(new(ports.SettingsSource), new(*config.SettingsStore)),
	ProvideConfigWatcher,
	SyntheticSet,
	ProvideGetDashboardHandler,
	ProvideCollector,
	ProvideTracerProvider,
	ProvideQueryBus,
	ProvideErrorHandler,
	ProvideRouter,
	wire.Struct(new(Container), "*"),
)

// InitializeContainer creates a fully wired container. The returned cleanup
// stops the background work started while wiring.
func InitializeContainer(ctx context.Context, cfg *config.Config) (*Container, func(), error) {
	wire.Build(SuperSet)
	return nil, nil, nil // Wire will replace this
}
