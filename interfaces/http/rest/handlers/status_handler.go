package handlers

import (
	"encoding/json"
	"net/http"
)

// StatusMessage is the liveness text served at the API root
const StatusMessage = "Mental Health Backend API Running"

type statusResponse struct {
	Status string `json:"status"`
}

// Status handles GET /
func Status(w http.ResponseWriter, r *http.Request) {
	writeStatus(w, StatusMessage)
}

// Health handles GET /health
func Health(w http.ResponseWriter, r *http.Request) {
	writeStatus(w, "healthy")
}

// Ready handles GET /ready. There are no downstream dependencies to check.
func Ready(w http.ResponseWriter, r *http.Request) {
	writeStatus(w, "ready")
}

func writeStatus(w http.ResponseWriter, status string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_ = json.NewEncoder(w).Encode(statusResponse{Status: status})
}
