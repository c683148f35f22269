package verify

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"github.com/okian/clicker/internal/domain/classification"
)

// check is one verification step against a running service.
type check struct {
	name string
	run  func(ctx context.Context, c *httpClient, baseURL string) error
}

// cohort is a competitor selection used in check URLs.
type cohort struct {
	round    string
	bowstyle string
	gender   string
	age      string
}

func (co cohort) query() string {
	q := url.Values{}
	q.Set("round", co.round)
	q.Set("bowstyle", co.bowstyle)
	q.Set("gender", co.gender)
	q.Set("age", co.age)
	return q.Encode()
}

// sweepCohorts covers every bowstyle the scheme accepts plus a coaxed
// style, both genders, and the age extremes.
var sweepCohorts = []cohort{
	{"portsmouth", "recurve", "male", "adult"},
	{"portsmouth", "recurve", "female", "50+"},
	{"portsmouth", "compound", "male", "under_21"},
	{"portsmouth", "barebow", "female", "under_16"},
	{"worcester", "longbow", "male", "adult"},
	{"vegas_300", "recurve", "female", "under_12"},
	{"wa18", "compound", "male", "adult"},
	{"portsmouth", "flatbow", "male", "adult"},
}

func checks() []check {
	return []check{
		{name: "health endpoint responds", run: checkHealth},
		{name: "rounds list covers the scheme", run: checkRounds},
		{name: "threshold tables are well formed", run: checkThresholdShapes},
		{name: "classify agrees with thresholds", run: checkClassifyConsistency},
		{name: "unknown rounds are rejected", run: checkUnknownRound},
		{name: "out-of-range scores are rejected", run: checkScoreRange},
	}
}

func checkHealth(ctx context.Context, c *httpClient, baseURL string) error {
	status, _, err := c.get(ctx, baseURL+"/healthz")
	if err != nil {
		return err
	}
	if status != http.StatusOK {
		return fmt.Errorf("health returned status %d", status)
	}
	return nil
}

func checkRounds(ctx context.Context, c *httpClient, baseURL string) error {
	var resp RoundsResult
	if err := c.getJSON(ctx, baseURL+"/rounds", http.StatusOK, &resp); err != nil {
		return err
	}
	for _, want := range []string{"portsmouth", "worcester", "vegas_300", "wa18", "wa25", "bray_i", "bray_ii", "stafford"} {
		if !contains(resp.Rounds, want) {
			return fmt.Errorf("rounds list is missing %q", want)
		}
	}
	if contains(resp.Rounds, "wa720_70") {
		return fmt.Errorf("rounds list includes an outdoor round")
	}
	return nil
}

func checkThresholdShapes(ctx context.Context, c *httpClient, baseURL string) error {
	for _, co := range sweepCohorts {
		table, err := fetchThresholds(ctx, c, baseURL, co)
		if err != nil {
			return err
		}
		if len(table) != 8 {
			return fmt.Errorf("cohort %+v: got %d tiers, want 8", co, len(table))
		}
		if table[0].Tier != "I-GMB" || table[7].Tier != "I-A3" {
			return fmt.Errorf("cohort %+v: tier order is wrong: %s..%s", co, table[0].Tier, table[7].Tier)
		}
		if err := assertNonIncreasing(table); err != nil {
			return fmt.Errorf("cohort %+v: %w", co, err)
		}
	}
	return nil
}

// checkClassifyConsistency verifies the boundary law: a score equal to
// an attainable threshold classifies into a tier carrying that same
// threshold. Duplicate thresholds collapse, so the tier identity is
// checked through its score.
func checkClassifyConsistency(ctx context.Context, c *httpClient, baseURL string) error {
	for _, co := range sweepCohorts {
		table, err := fetchThresholds(ctx, c, baseURL, co)
		if err != nil {
			return err
		}
		byTier := make(map[string]int, len(table))
		for _, t := range table {
			byTier[t.Tier] = t.Score
		}
		for _, t := range table {
			if t.Score == classification.Unattainable {
				continue
			}
			var resp ClassifyResult
			u := fmt.Sprintf("%s/classifications/classify?%s&score=%d", baseURL, co.query(), t.Score)
			if err := c.getJSON(ctx, u, http.StatusOK, &resp); err != nil {
				return err
			}
			got, ok := byTier[resp.Classification]
			if !ok {
				return fmt.Errorf("cohort %+v score %d: got tier %q outside the table", co, t.Score, resp.Classification)
			}
			if got != t.Score {
				return fmt.Errorf("cohort %+v score %d: tier %q carries threshold %d", co, t.Score, resp.Classification, got)
			}
		}
	}
	return nil
}

func checkUnknownRound(ctx context.Context, c *httpClient, baseURL string) error {
	co := cohort{"some_roundname", "recurve", "male", "adult"}
	status, body, err := c.get(ctx, baseURL+"/classifications?"+co.query())
	if err != nil {
		return err
	}
	if status != http.StatusBadRequest {
		return fmt.Errorf("unknown round returned status %d: %s", status, body)
	}
	return nil
}

func checkScoreRange(ctx context.Context, c *httpClient, baseURL string) error {
	co := cohort{"portsmouth", "recurve", "male", "adult"}
	for _, score := range []int{-1, 601, 1000} {
		u := fmt.Sprintf("%s/classifications/classify?%s&score=%d", baseURL, co.query(), score)
		status, body, err := c.get(ctx, u)
		if err != nil {
			return err
		}
		if status != http.StatusBadRequest {
			return fmt.Errorf("score %d returned status %d: %s", score, status, body)
		}
	}
	return nil
}

func fetchThresholds(ctx context.Context, c *httpClient, baseURL string, co cohort) ([]Threshold, error) {
	var table []Threshold
	if err := c.getJSON(ctx, baseURL+"/classifications?"+co.query(), http.StatusOK, &table); err != nil {
		return nil, err
	}
	return table, nil
}

// assertNonIncreasing checks threshold scores never rise from best
// tier to worst, ignoring unattainable sentinels.
func assertNonIncreasing(table []Threshold) error {
	prev := -1
	for i := len(table) - 1; i >= 0; i-- {
		s := table[i].Score
		if s == classification.Unattainable {
			continue
		}
		if prev >= 0 && s < prev {
			return fmt.Errorf("threshold for %s (%d) is below the next tier (%d)", table[i].Tier, s, prev)
		}
		prev = s
	}
	return nil
}

func contains(haystack []string, needle string) bool {
	for _, s := range haystack {
		if s == needle {
			return true
		}
	}
	return false
}
