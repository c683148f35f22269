// Package api declares HTTP contracts and route registration helpers.
package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/okian/clicker/internal/domain/categories"
	"github.com/okian/clicker/internal/domain/classification"
)

// Dependencies required by HTTP handlers. Using an interface bundle keeps
// the handler layer loosely coupled to implementations in other packages.
type Dependencies interface {
	// Thresholds returns the tier threshold table for a cohort on a round.
	Thresholds(ctx context.Context, round string, b categories.Bowstyle, g categories.Gender, a categories.AgeGroup) (classification.ThresholdTable, error)

	// Scores returns only the threshold scores, best tier first.
	Scores(ctx context.Context, round string, b categories.Bowstyle, g categories.Gender, a categories.AgeGroup) ([]int, error)

	// Classify bands a raw score into the tier code it achieves.
	Classify(ctx context.Context, score int, round string, b categories.Bowstyle, g categories.Gender, a categories.AgeGroup) (string, error)

	// Rounds lists the round names the scheme accepts.
	Rounds(ctx context.Context) []string
}

// Server wires HTTP routes for the business API.
type Server struct {
	healthHandler          *HealthHandler
	statsHandler           *StatsHandler
	classificationsHandler *ClassificationsHandler
	roundsHandler          *RoundsHandler
}

// NewServer creates a new API server with all handlers.
func NewServer(deps Dependencies, statsProvider StatsProvider) *Server {
	return &Server{
		healthHandler:          NewHealthHandler(),
		statsHandler:           NewStatsHandler(statsProvider),
		classificationsHandler: NewClassificationsHandler(deps),
		roundsHandler:          NewRoundsHandler(deps),
	}
}

// Register attaches all HTTP routes to mux.
func (s *Server) Register(_ context.Context, mux *http.ServeMux) {
	mux.HandleFunc("/healthz", MetricsMiddleware(s.healthHandler.HandleHealth, "healthz"))
	mux.HandleFunc("/stats", MetricsMiddleware(s.statsHandler.HandleStats, "stats"))
	mux.HandleFunc("/rounds", MetricsMiddleware(s.roundsHandler.HandleGetRounds, "rounds"))
	mux.HandleFunc("/classifications", MetricsMiddleware(s.classificationsHandler.HandleGetThresholds, "classifications"))
	mux.HandleFunc("/classifications/classify", MetricsMiddleware(s.classificationsHandler.HandleClassify, "classify"))
}

type errorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, code string, err error) {
	msg := http.StatusText(status)
	if err != nil {
		msg = err.Error()
	}
	writeJSON(w, status, errorResponse{Code: code, Message: msg})
}

// writeDomainError translates engine rejections into HTTP responses,
// preserving the engine's message text.
func writeDomainError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, classification.ErrUnrecognisedRound):
		writeError(w, http.StatusBadRequest, "unrecognised_round", err)
	case errors.Is(err, classification.ErrInvalidScore):
		writeError(w, http.StatusBadRequest, "invalid_score", err)
	case errors.Is(err, classification.ErrInvalidInput):
		writeError(w, http.StatusBadRequest, "invalid_input", err)
	default:
		writeError(w, http.StatusInternalServerError, "internal_error", err)
	}
}
