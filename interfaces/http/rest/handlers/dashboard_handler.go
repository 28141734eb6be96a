package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"

	"mhtrends-backend/application/queries"
	querybus "mhtrends-backend/application/queries/bus"
	"mhtrends-backend/domain/dashboard"
	pkgerrors "mhtrends-backend/pkg/errors"

	"go.uber.org/zap"
)

// SeriesRecorder counts the time series points served
type SeriesRecorder interface {
	RecordSeriesPoints(n int)
}

// DashboardHandler handles dashboard HTTP requests
type DashboardHandler struct {
	queryBus     *querybus.QueryBus
	errorHandler *pkgerrors.ErrorHandler
	recorder     SeriesRecorder
	logger       *zap.Logger
}

// NewDashboardHandler creates a new dashboard handler. recorder may be nil.
func NewDashboardHandler(
	queryBus *querybus.QueryBus,
	errorHandler *pkgerrors.ErrorHandler,
	recorder SeriesRecorder,
	logger *zap.Logger,
) *DashboardHandler {
	return &DashboardHandler{
		queryBus:     queryBus,
		errorHandler: errorHandler,
		recorder:     recorder,
		logger:       logger,
	}
}

// GetDashboard handles GET /api/dashboard?from&to&platform
func (h *DashboardHandler) GetDashboard(w http.ResponseWriter, r *http.Request) {
	params := r.URL.Query()
	query := queries.GetDashboardQuery{
		From:     params.Get("from"),
		To:       params.Get("to"),
		Platform: params.Get("platform"),
	}

	result, err := h.queryBus.Ask(r.Context(), query)
	if err != nil {
		h.errorHandler.Handle(w, r, err)
		return
	}

	payload, ok := result.(*dashboard.Dashboard)
	if !ok {
		h.errorHandler.Handle(w, r, pkgerrors.NewInternalError(fmt.Sprintf("unexpected dashboard result %T", result)))
		return
	}

	if h.recorder != nil {
		h.recorder.RecordSeriesPoints(len(payload.TimeSeries))
	}

	h.respondJSON(w, http.StatusOK, payload)
}

func (h *DashboardHandler) respondJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		h.logger.Error("Failed to encode response", zap.Error(err))
	}
}
