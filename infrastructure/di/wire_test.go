package di

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"

	domainconfig "mhtrends-backend/domain/config"
	"mhtrends-backend/domain/dashboard"
	"mhtrends-backend/infrastructure/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func testConfig() *config.Config {
	return &config.Config{
		ServerAddress: ":0",
		Environment:   "test",
		Timezone:      "UTC",
		LogLevel:      "error",
		EnableMetrics: true,
		Dashboard:     domainconfig.DefaultDomainConfig(),
	}
}

func TestInitializeContainerIntegration(t *testing.T) {
	container, cleanup, err := InitializeContainer(context.Background(), testConfig())
	require.NoError(t, err)
	require.NotNil(t, container.Router)
	assert.Nil(t, container.Watcher)
	defer cleanup()
	defer func() { assert.NoError(t, container.Shutdown(context.Background())) }()

	rr := httptest.NewRecorder()
	container.Router.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `{"status":"Mental Health Backend API Running"}`, rr.Body.String())

	rr = httptest.NewRecorder()
	container.Router.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/api/dashboard?from=2024-01-01&to=2024-01-03&platform=reddit", nil))
	require.Equal(t, http.StatusOK, rr.Code)

	var payload dashboard.Dashboard
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &payload))
	assert.Len(t, payload.TimeSeries, 3)
	assert.Len(t, payload.Graph.Nodes, 40)
	assert.Len(t, payload.Graph.Links, 80)
	assert.Equal(t, dashboard.Meta{From: "2024-01-01", To: "2024-01-03", Platform: "reddit"}, payload.Meta)

	rr = httptest.NewRecorder()
	container.Router.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), "mhtrends_series_points_generated_total 3")
	assert.Contains(t, rr.Body.String(), `mhtrends_queries_total{query="GetDashboardQuery"} 1`)
}

func TestInitializeContainer_ConfiguredGraphSize(t *testing.T) {
	cfg := testConfig()
	cfg.Dashboard.GraphNodeCount = 5
	cfg.Dashboard.GraphLinkCount = 3

	container, cleanup, err := InitializeContainer(context.Background(), cfg)
	require.NoError(t, err)
	defer cleanup()
	defer container.Shutdown(context.Background())

	rr := httptest.NewRecorder()
	container.Router.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/api/dashboard", nil))
	require.Equal(t, http.StatusOK, rr.Code)

	var payload dashboard.Dashboard
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &payload))
	assert.Len(t, payload.Graph.Nodes, 5)
	assert.Len(t, payload.Graph.Links, 3)
	assert.Len(t, payload.TimeSeries, 31)
}

func TestProvideLogger_InvalidLevel(t *testing.T) {
	cfg := testConfig()
	cfg.LogLevel = "chatty"

	_, err := ProvideLogger(cfg)
	assert.ErrorContains(t, err, "invalid LOG_LEVEL")
}

func TestProvideConfigWatcher_DisabledOutsideDevelopment(t *testing.T) {
	cfg := testConfig()
	cfg.ConfigFile = "dashboard.yaml"
	logger, err := ProvideLogger(cfg)
	require.NoError(t, err)

	watcher, cleanup, err := ProvideConfigWatcher(cfg, ProvideSettingsStore(cfg), logger)
	require.NoError(t, err)
	assert.Nil(t, watcher)
	require.NotNil(t, cleanup)
	cleanup()
}

func developmentConfig(t *testing.T) *config.Config {
	t.Helper()
	path := filepath.Join(t.TempDir(), "dashboard.yaml")
	require.NoError(t, os.WriteFile(path, []byte("dashboard:\n  default_platform: twitter\n"), 0o644))

	cfg := testConfig()
	cfg.Environment = "development"
	cfg.ConfigFile = path
	return cfg
}

func TestProvideConfigWatcher_CleanupStopsWatcher(t *testing.T) {
	cfg := developmentConfig(t)
	store := ProvideSettingsStore(cfg)

	watcher, cleanup, err := ProvideConfigWatcher(cfg, store, zap.NewNop())
	require.NoError(t, err)
	require.NotNil(t, watcher)

	cleanup()
	cleanup()

	require.NoError(t, os.WriteFile(cfg.ConfigFile, []byte("dashboard:\n  default_platform: reddit\n"), 0o644))
	assert.Never(t, func() bool {
		return store.Current().DefaultPlatform == "reddit"
	}, time.Second, 50*time.Millisecond)
}

func TestInitializeContainer_FailsAfterWatcherStarted(t *testing.T) {
	cfg := developmentConfig(t)
	cfg.Timezone = "Mars/Olympus_Mons"

	container, cleanup, err := InitializeContainer(context.Background(), cfg)
	assert.Error(t, err)
	assert.Nil(t, container)
	assert.Nil(t, cleanup)
}
