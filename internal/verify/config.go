package verify

import "time"

// Config holds configuration for the verification run.
type Config struct {
	BaseURL string        // Base URL of the service
	Timeout time.Duration // HTTP request timeout
	LogFile string        // Log file for check output
	Verbose bool          // Enable verbose logging
}

// Threshold mirrors the API threshold shape.
type Threshold struct {
	Tier  string `json:"tier"`
	Score int    `json:"score"`
}

// ClassifyResult mirrors the API classify response.
type ClassifyResult struct {
	Round          string `json:"round"`
	Score          int    `json:"score"`
	Classification string `json:"classification"`
}

// RoundsResult mirrors the API rounds response.
type RoundsResult struct {
	Rounds []string `json:"rounds"`
}

// Stats holds verification statistics.
type Stats struct {
	ChecksRun    int
	ChecksPassed int
	ChecksFailed int
	StartTime    time.Time
	EndTime      time.Time
	Duration     time.Duration
}
