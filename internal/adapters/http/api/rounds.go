// Package api declares HTTP contracts and route registration helpers.
package api

import (
	"net/http"
)

// RoundsHandler handles round listing requests.
type RoundsHandler struct {
	deps Dependencies
}

// NewRoundsHandler creates a new rounds handler.
func NewRoundsHandler(deps Dependencies) *RoundsHandler {
	return &RoundsHandler{deps: deps}
}

// roundsResponse mirrors the response shape of GET /rounds.
type roundsResponse struct {
	Rounds []string `json:"rounds"`
}

// HandleGetRounds handles GET /rounds requests.
func (h *RoundsHandler) HandleGetRounds(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.NotFound(w, r)
		return
	}
	writeJSON(w, http.StatusOK, roundsResponse{Rounds: h.deps.Rounds(r.Context())})
}
