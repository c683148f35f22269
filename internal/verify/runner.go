package verify

import (
	"context"
	"fmt"
	"time"

	"github.com/okian/clicker/pkg/logger"
)

// Run executes every verification check against the configured service.
func Run(ctx context.Context, config *Config) error {
	stats := &Stats{StartTime: time.Now()}
	log := logger.Get()

	log.Info(ctx, "starting classification verification",
		logger.String("baseURL", config.BaseURL),
		logger.String("timeout", config.Timeout.String()),
		logger.Any("verbose", config.Verbose))

	client := newHTTPClient(config.Timeout)

	var failures []string
	for _, ch := range checks() {
		stats.ChecksRun++
		if err := ch.run(ctx, client, config.BaseURL); err != nil {
			stats.ChecksFailed++
			failures = append(failures, ch.name)
			log.Error(ctx, "check failed",
				logger.String("check", ch.name),
				logger.Error(err))
			continue
		}
		stats.ChecksPassed++
		if config.Verbose {
			log.Info(ctx, "check passed", logger.String("check", ch.name))
		}
	}

	stats.EndTime = time.Now()
	stats.Duration = stats.EndTime.Sub(stats.StartTime)

	log.Info(ctx, "verification finished",
		logger.Int("run", stats.ChecksRun),
		logger.Int("passed", stats.ChecksPassed),
		logger.Int("failed", stats.ChecksFailed),
		logger.String("duration", stats.Duration.String()))

	if stats.ChecksFailed > 0 {
		return fmt.Errorf("%d of %d checks failed: %v", stats.ChecksFailed, stats.ChecksRun, failures)
	}
	return nil
}
