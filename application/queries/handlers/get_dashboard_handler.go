package handlers

import (
	"context"
	"fmt"

	"mhtrends-backend/application/ports"
	"mhtrends-backend/application/queries"
	"mhtrends-backend/domain/dashboard"
	pkgerrors "mhtrends-backend/pkg/errors"

	"go.uber.org/zap"
)

// GetDashboardHandler assembles the dashboard from its data providers
type GetDashboardHandler struct {
	timeSeries ports.TimeSeriesProvider
	topics     ports.TopicProvider
	emotions   ports.EmotionProvider
	graph      ports.GraphProvider
	clock      ports.Clock
	settings   ports.SettingsSource
	logger     *zap.Logger
}

// NewGetDashboardHandler creates a new dashboard handler
func NewGetDashboardHandler(
	timeSeries ports.TimeSeriesProvider,
	topics ports.TopicProvider,
	emotions ports.EmotionProvider,
	graph ports.GraphProvider,
	clock ports.Clock,
	settings ports.SettingsSource,
	logger *zap.Logger,
) *GetDashboardHandler {
	return &GetDashboardHandler{
		timeSeries: timeSeries,
		topics:     topics,
		emotions:   emotions,
		graph:      graph,
		clock:      clock,
		settings:   settings,
		logger:     logger,
	}
}

// Handle executes the dashboard query. The response is all-or-nothing:
// any provider failure fails the whole request. The query is validated here
// as well as in QueryBus.Ask, so Handle can be called without the bus.
func (h *GetDashboardHandler) Handle(ctx context.Context, query queries.GetDashboardQuery) (*dashboard.Dashboard, error) {
	if err := query.Validate(); err != nil {
		return nil, fmt.Errorf("invalid query: %w", err)
	}

	rules := h.settings.Current()

	dateRange, err := dashboard.ResolveDateRange(query.From, query.To, h.clock.Now(), rules)
	if err != nil {
		return nil, err
	}

	platform := query.Platform
	if platform == "" {
		platform = rules.DefaultPlatform
	}

	req := ports.DashboardRequest{Range: dateRange, Platform: platform}

	series, err := h.timeSeries.FetchTimeSeries(ctx, req)
	if err != nil {
		return nil, h.providerFailed("time series", req, err)
	}

	topics, err := h.topics.FetchTopics(ctx, req)
	if err != nil {
		return nil, h.providerFailed("topics", req, err)
	}

	emotions, err := h.emotions.FetchEmotions(ctx, req)
	if err != nil {
		return nil, h.providerFailed("emotions", req, err)
	}

	graph, err := h.graph.FetchGraph(ctx, req)
	if err != nil {
		return nil, h.providerFailed("graph", req, err)
	}

	h.logger.Debug("Dashboard assembled",
		zap.String("from", dateRange.FromString()),
		zap.String("to", dateRange.ToString()),
		zap.String("platform", platform),
		zap.Int("points", len(series)),
		zap.Int("nodes", len(graph.Nodes)),
		zap.Int("links", len(graph.Links)),
	)

	return &dashboard.Dashboard{
		TimeSeries: series,
		Topics:     topics,
		Emotions:   emotions,
		Graph:      graph,
		Meta: dashboard.Meta{
			From:     dateRange.FromString(),
			To:       dateRange.ToString(),
			Platform: platform,
		},
	}, nil
}

func (h *GetDashboardHandler) providerFailed(provider string, req ports.DashboardRequest, err error) error {
	h.logger.Error("Dashboard provider failed",
		zap.String("provider", provider),
		zap.String("from", req.Range.FromString()),
		zap.String("to", req.Range.ToString()),
		zap.String("platform", req.Platform),
		zap.Error(err),
	)
	return pkgerrors.NewProviderError(provider, err)
}
