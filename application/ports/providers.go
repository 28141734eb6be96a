package ports

import (
	"context"
	"time"

	"mhtrends-backend/domain/config"
	"mhtrends-backend/domain/dashboard"
)

// DashboardRequest carries the resolved parameters every provider receives
type DashboardRequest struct {
	Range    dashboard.DateRange
	Platform string
}

// TimeSeriesProvider supplies the daily volume and emotion series.
// This is a port in hexagonal architecture - the synthetic generator is one adapter,
// a real analytics store would be another.
type TimeSeriesProvider interface {
	// FetchTimeSeries returns one point per date in the range, ascending
	FetchTimeSeries(ctx context.Context, req DashboardRequest) ([]dashboard.TimeSeriesPoint, error)
}

// TopicProvider supplies trending topics
type TopicProvider interface {
	FetchTopics(ctx context.Context, req DashboardRequest) ([]dashboard.TopicTrend, error)
}

// EmotionProvider supplies the emotion distribution
type EmotionProvider interface {
	FetchEmotions(ctx context.Context, req DashboardRequest) ([]dashboard.EmotionShare, error)
}

// GraphProvider supplies the user interaction graph
type GraphProvider interface {
	FetchGraph(ctx context.Context, req DashboardRequest) (dashboard.Graph, error)
}

// RandomSource is the pseudo-random generator used by synthetic providers.
// Implementations must be safe for concurrent use.
type RandomSource interface {
	// Float64 returns a uniform value in [0, 1)
	Float64() float64
	// IntN returns a uniform value in [0, n); n must be positive
	IntN(n int) int
}

// Clock supplies the current time
type Clock interface {
	Now() time.Time
}

// SettingsSource returns the current dashboard rules. The returned value
// must not be mutated; sources may swap it on reload.
type SettingsSource interface {
	Current() *config.DomainConfig
}
