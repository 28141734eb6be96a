package rest

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"mhtrends-backend/application/queries"
	querybus "mhtrends-backend/application/queries/bus"
	"mhtrends-backend/application/queries/handlers"
	domainconfig "mhtrends-backend/domain/config"
	"mhtrends-backend/domain/dashboard"
	"mhtrends-backend/infrastructure/config"
	"mhtrends-backend/infrastructure/synthetic"
	"mhtrends-backend/interfaces/http/rest/middleware"
	pkgerrors "mhtrends-backend/pkg/errors"
	"mhtrends-backend/pkg/observability"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

var today = time.Date(2026, time.October, 15, 9, 0, 0, 0, time.UTC)

func newTestRouter(t *testing.T, seed uint64) *chi.Mux {
	t.Helper()

	rng := synthetic.NewLockedRand(seed)
	catalog := synthetic.NewStaticCatalog()
	dashboardHandler := handlers.NewGetDashboardHandler(
		synthetic.NewTimeSeriesGenerator(rng),
		catalog,
		catalog,
		synthetic.NewGraphGenerator(rng, 40, 80),
		synthetic.FixedClock(today),
		config.NewSettingsStore(domainconfig.DefaultDomainConfig()),
		zap.NewNop(),
	)

	collector := observability.NewCollector("test")
	queryBus := querybus.NewQueryBus(querybus.NewMetricsMiddleware(collector))
	require.NoError(t, queryBus.Register(queries.GetDashboardQuery{}, querybus.QueryHandlerFunc(
		func(ctx context.Context, query querybus.Query) (interface{}, error) {
			return dashboardHandler.Handle(ctx, query.(queries.GetDashboardQuery))
		},
	)))

	return NewRouter(
		queryBus,
		pkgerrors.NewErrorHandler(zap.NewNop(), false).WithRequestID(middleware.GetRequestIDFromRequest),
		collector,
		RouterConfig{AllowedOrigins: []string{"http://localhost:3000"}, EnableMetrics: true},
		zap.NewNop(),
	).Setup()
}

func get(t *testing.T, router http.Handler, target string) *httptest.ResponseRecorder {
	t.Helper()
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, target, nil))
	return rr
}

func decodeDashboard(t *testing.T, rr *httptest.ResponseRecorder) dashboard.Dashboard {
	t.Helper()
	require.Equal(t, http.StatusOK, rr.Code, rr.Body.String())
	assert.Equal(t, "application/json", rr.Header().Get("Content-Type"))

	var payload dashboard.Dashboard
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &payload))
	return payload
}

func TestStatusEndpoint(t *testing.T) {
	rr := get(t, newTestRouter(t, 1), "/")

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `{"status":"Mental Health Backend API Running"}`, rr.Body.String())
}

func TestOperationalEndpoints(t *testing.T) {
	router := newTestRouter(t, 1)

	assert.JSONEq(t, `{"status":"healthy"}`, get(t, router, "/health").Body.String())
	assert.JSONEq(t, `{"status":"ready"}`, get(t, router, "/ready").Body.String())

	get(t, router, "/api/dashboard")
	metrics := get(t, router, "/metrics")
	assert.Equal(t, http.StatusOK, metrics.Code)
	assert.Contains(t, metrics.Body.String(), `test_http_requests_total{method="GET",route="/api/dashboard",status="200"} 1`)
}

func TestDashboard_ExampleRange(t *testing.T) {
	payload := decodeDashboard(t, get(t, newTestRouter(t, 2), "/api/dashboard?from=2024-01-01&to=2024-01-03&platform=reddit"))

	require.Len(t, payload.TimeSeries, 3)
	assert.Equal(t, "2024-01-01", payload.TimeSeries[0].Date)
	assert.Equal(t, "2024-01-02", payload.TimeSeries[1].Date)
	assert.Equal(t, "2024-01-03", payload.TimeSeries[2].Date)
	assert.Equal(t, dashboard.Meta{From: "2024-01-01", To: "2024-01-03", Platform: "reddit"}, payload.Meta)
}

func TestDashboard_Defaults(t *testing.T) {
	payload := decodeDashboard(t, get(t, newTestRouter(t, 3), "/api/dashboard"))

	require.Len(t, payload.TimeSeries, 31)
	assert.Equal(t, "2026-09-15", payload.TimeSeries[0].Date)
	assert.Equal(t, "2026-10-15", payload.TimeSeries[30].Date)
	assert.Equal(t, dashboard.Meta{From: "2026-09-15", To: "2026-10-15", Platform: "twitter"}, payload.Meta)
}

func TestDashboard_PayloadProperties(t *testing.T) {
	payload := decodeDashboard(t, get(t, newTestRouter(t, 4), "/api/dashboard?from=2024-02-20&to=2024-03-10"))

	// contiguous ascending dates, inclusive of both ends
	require.Len(t, payload.TimeSeries, 20)
	start := time.Date(2024, time.February, 20, 0, 0, 0, 0, time.UTC)
	for i, point := range payload.TimeSeries {
		assert.Equal(t, start.AddDate(0, 0, i).Format(dashboard.DateLayout), point.Date)
		assert.GreaterOrEqual(t, point.Count, 0)
		for _, score := range []float64{point.Anxiety, point.Sadness, point.Joy} {
			assert.GreaterOrEqual(t, score, 0.0)
			assert.LessOrEqual(t, score, 0.8)
		}
	}

	assert.Equal(t, synthetic.DefaultTopics, payload.Topics)
	assert.Equal(t, synthetic.DefaultEmotions, payload.Emotions)

	require.Len(t, payload.Graph.Nodes, 40)
	require.Len(t, payload.Graph.Links, 80)
	index := payload.Graph.NodeIndex()
	for _, node := range payload.Graph.Nodes {
		assert.GreaterOrEqual(t, node.Degree, 1)
		assert.LessOrEqual(t, node.Degree, 10)
		assert.GreaterOrEqual(t, node.Sentiment, -0.8)
		assert.Less(t, node.Sentiment, 0.8)
	}
	for _, link := range payload.Graph.Links {
		assert.Contains(t, index, link.Source)
		assert.Contains(t, index, link.Target)
		assert.NotEqual(t, link.Source, link.Target)
		assert.GreaterOrEqual(t, link.Value, 0.0)
		assert.Less(t, link.Value, 1.0)
	}
}

func TestDashboard_NonASCIIPlatform(t *testing.T) {
	payload := decodeDashboard(t, get(t, newTestRouter(t, 9), "/api/dashboard?from=2024-01-01&to=2024-01-02&platform=%E5%BE%AE%E5%8D%9A"))

	assert.Equal(t, "微博", payload.Meta.Platform)
	assert.Len(t, payload.TimeSeries, 2)
}

func TestDashboard_MultiYearRange(t *testing.T) {
	payload := decodeDashboard(t, get(t, newTestRouter(t, 10), "/api/dashboard?from=2023-01-01&to=2024-12-31"))

	require.Len(t, payload.TimeSeries, 731)
	assert.Equal(t, "2023-01-01", payload.TimeSeries[0].Date)
	assert.Equal(t, "2024-12-31", payload.TimeSeries[730].Date)
}

func TestDashboard_JSONShape(t *testing.T) {
	rr := get(t, newTestRouter(t, 5), "/api/dashboard?from=2024-01-01&to=2024-01-01")
	require.Equal(t, http.StatusOK, rr.Code)

	var raw map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &raw))
	for _, key := range []string{"timeSeries", "topics", "emotions", "graph", "meta"} {
		assert.Contains(t, raw, key)
	}

	var graph map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(raw["graph"], &graph))
	assert.Contains(t, graph, "nodes")
	assert.Contains(t, graph, "links")
}

func TestDashboard_BadRequests(t *testing.T) {
	router := newTestRouter(t, 6)

	tests := []struct {
		name   string
		target string
		code   string
	}{
		{name: "malformed from", target: "/api/dashboard?from=01-01-2024", code: pkgerrors.CodeInvalidDate},
		{name: "malformed to", target: "/api/dashboard?to=2024-13-01", code: pkgerrors.CodeInvalidDate},
		{name: "reversed range", target: "/api/dashboard?from=2024-01-05&to=2024-01-01", code: pkgerrors.CodeInvalidRange},
		{name: "oversize range", target: "/api/dashboard?from=2000-01-01&to=2024-01-01", code: pkgerrors.CodeRangeTooLarge},
		{name: "platform too long", target: "/api/dashboard?platform=" + strings.Repeat("a", 65), code: pkgerrors.CodeInvalidPlatform},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rr := get(t, router, tt.target)

			require.Equal(t, http.StatusBadRequest, rr.Code)
			var body pkgerrors.ErrorResponse
			require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &body))
			assert.True(t, body.Error)
			assert.Equal(t, string(pkgerrors.ErrorTypeValidation), body.Type)
			assert.Equal(t, tt.code, body.Code)
			assert.NotEmpty(t, body.RequestID)
		})
	}
}

func TestDashboard_SameSeedSamePayload(t *testing.T) {
	target := "/api/dashboard?from=2024-01-01&to=2024-01-10"

	first := get(t, newTestRouter(t, 42), target)
	second := get(t, newTestRouter(t, 42), target)

	require.Equal(t, http.StatusOK, first.Code)
	assert.Equal(t, first.Body.String(), second.Body.String())
}

func TestRouter_NotFoundAndMethodNotAllowed(t *testing.T) {
	router := newTestRouter(t, 7)

	assert.Equal(t, http.StatusNotFound, get(t, router, "/api/unknown").Code)

	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, httptest.NewRequest(http.MethodPost, "/api/dashboard", nil))
	assert.Equal(t, http.StatusMethodNotAllowed, rr.Code)

	var body pkgerrors.ErrorResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &body))
	assert.Equal(t, string(pkgerrors.ErrorTypeMethodNotAllowed), body.Type)
}

func TestRouter_CORS(t *testing.T) {
	router := newTestRouter(t, 8)

	req := httptest.NewRequest(http.MethodGet, "/api/dashboard", nil)
	req.Header.Set("Origin", "http://localhost:3000")
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)

	assert.Equal(t, "http://localhost:3000", rr.Header().Get("Access-Control-Allow-Origin"))
	assert.NotEmpty(t, rr.Header().Get("X-Request-ID"))
}
