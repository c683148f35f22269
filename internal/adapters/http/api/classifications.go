// Package api declares HTTP contracts and route registration helpers.
package api

import (
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"github.com/okian/clicker/internal/domain/categories"
)

// ClassificationsHandler handles threshold and banding requests.
type ClassificationsHandler struct {
	deps Dependencies
}

// NewClassificationsHandler creates a new classifications handler.
func NewClassificationsHandler(deps Dependencies) *ClassificationsHandler {
	return &ClassificationsHandler{deps: deps}
}

// cohortQuery carries the parsed competitor axes common to both endpoints.
type cohortQuery struct {
	round    string
	bowstyle categories.Bowstyle
	gender   categories.Gender
	age      categories.AgeGroup
}

func parseCohort(q url.Values) (cohortQuery, error) {
	var c cohortQuery

	c.round = q.Get("round")
	if c.round == "" {
		return c, fmt.Errorf("%w: missing round", ErrBadRequest)
	}

	b, err := categories.ParseBowstyle(q.Get("bowstyle"))
	if err != nil {
		return c, fmt.Errorf("%w: %w", ErrBadRequest, err)
	}
	c.bowstyle = b

	g, err := categories.ParseGender(q.Get("gender"))
	if err != nil {
		return c, fmt.Errorf("%w: %w", ErrBadRequest, err)
	}
	c.gender = g

	a, err := categories.ParseAgeGroup(q.Get("age"))
	if err != nil {
		return c, fmt.Errorf("%w: %w", ErrBadRequest, err)
	}
	c.age = a

	return c, nil
}

// HandleGetThresholds handles GET /classifications?round=&bowstyle=&gender=&age=.
// It returns the full tier threshold table for the cohort, best tier first.
func (h *ClassificationsHandler) HandleGetThresholds(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.NotFound(w, r)
		return
	}
	c, err := parseCohort(r.URL.Query())
	if err != nil {
		writeError(w, http.StatusBadRequest, "bad_request", err)
		return
	}

	table, err := h.deps.Thresholds(r.Context(), c.round, c.bowstyle, c.gender, c.age)
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, table)
}

// classifyResponse mirrors the response shape of the classify endpoint.
type classifyResponse struct {
	Round          string `json:"round"`
	Score          int    `json:"score"`
	Classification string `json:"classification"`
}

// HandleClassify handles GET /classifications/classify with the cohort
// query plus score=N.
func (h *ClassificationsHandler) HandleClassify(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.NotFound(w, r)
		return
	}
	c, err := parseCohort(r.URL.Query())
	if err != nil {
		writeError(w, http.StatusBadRequest, "bad_request", err)
		return
	}
	score, err := strconv.Atoi(r.URL.Query().Get("score"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "bad_request",
			fmt.Errorf("%w: score must be an integer", ErrBadRequest))
		return
	}

	tier, err := h.deps.Classify(r.Context(), score, c.round, c.bowstyle, c.gender, c.age)
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, classifyResponse{
		Round:          c.round,
		Score:          score,
		Classification: tier,
	})
}
