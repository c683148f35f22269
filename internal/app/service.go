// Package service provides the core business service that implements
// the dependencies required by the HTTP API.
package service

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"time"

	"github.com/okian/clicker/internal/domain/categories"
	"github.com/okian/clicker/internal/domain/classification"
	"github.com/okian/clicker/internal/domain/handicap"
	"github.com/okian/clicker/internal/domain/rounds"
	"github.com/okian/clicker/pkg/logger"
	"github.com/okian/clicker/pkg/metrics"
)

// Service wires the classification engine, round registry, and score
// model behind the HTTP API.
type Service struct {
	mu sync.RWMutex

	// Core components
	engine   *classification.Indoor
	registry *rounds.Registry
	calc     handicap.Calculator

	// Configuration
	roundsFile string

	// State
	started bool

	// Counters for GetStats.
	queriesServed   atomic.Int64
	queriesRejected atomic.Int64

	// Logging
	logger logger.Logger
}

// Option applies a configuration option to the Service.
type Option func(*Service)

// WithLogger sets a custom logger for the service.
func WithLogger(l logger.Logger) Option {
	return func(s *Service) {
		if l != nil {
			s.logger = l
		}
	}
}

// WithRegistry substitutes the round registry.
func WithRegistry(reg *rounds.Registry) Option {
	return func(s *Service) {
		if reg != nil {
			s.registry = reg
		}
	}
}

// WithCalculator substitutes the handicap score model.
func WithCalculator(c handicap.Calculator) Option {
	return func(s *Service) {
		if c != nil {
			s.calc = c
		}
	}
}

// WithRoundsFile points the service at a YAML file of extra round
// definitions merged over the built-in registry at Start.
func WithRoundsFile(path string) Option {
	return func(s *Service) {
		s.roundsFile = path
	}
}

// New constructs a new Service with default configuration. The engine
// is usable immediately; Start only merges the optional rounds file.
func New(opts ...Option) *Service {
	s := &Service{
		registry: rounds.Default(),
		calc:     handicap.NewAGB(),
		logger:   logger.Get(),
	}
	for _, opt := range opts {
		opt(s)
	}
	s.engine = classification.NewIndoor(
		classification.WithRegistry(s.registry),
		classification.WithCalculator(s.calc),
	)
	return s
}

// Start initializes the service components.
func (s *Service) Start(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.started {
		return nil
	}

	s.logger.Info(ctx, "starting classification service...")

	if s.roundsFile != "" {
		reg, err := rounds.Load(ctx, s.registry, s.roundsFile)
		if err != nil {
			return err
		}
		s.registry = reg
		s.engine = classification.NewIndoor(
			classification.WithRegistry(s.registry),
			classification.WithCalculator(s.calc),
		)
		s.logger.Info(ctx, "merged rounds file",
			logger.String("path", s.roundsFile),
		)
	}

	metrics.UpdateRoundsRegistered(len(s.registry.Names()))

	s.started = true
	s.logger.Info(ctx, "classification service started",
		logger.Int("rounds", len(s.registry.Names())),
		logger.Int("eligibleRounds", len(s.engine.EligibleRounds())),
	)
	return nil
}

// Stop shuts the service down. The engine holds no resources; Stop
// exists so callers can pair it with Start.
func (s *Service) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.started {
		return
	}
	s.started = false
	s.logger.Info(context.Background(), "classification service stopped")
}

// Thresholds returns the tier threshold table for a competitor on a
// round, best tier first.
func (s *Service) Thresholds(ctx context.Context, round string, b categories.Bowstyle, g categories.Gender, a categories.AgeGroup) (classification.ThresholdTable, error) {
	start := time.Now()
	table, err := s.currentEngine().Thresholds(classification.ByName(round), b, g, a)
	s.observe(ctx, "thresholds", start, err)
	return table, err
}

// Scores returns only the threshold scores, best tier first.
func (s *Service) Scores(ctx context.Context, round string, b categories.Bowstyle, g categories.Gender, a categories.AgeGroup) ([]int, error) {
	start := time.Now()
	scores, err := s.currentEngine().Scores(classification.ByName(round), b, g, a)
	s.observe(ctx, "scores", start, err)
	return scores, err
}

// Classify bands a raw score into the tier code it achieves.
func (s *Service) Classify(ctx context.Context, score int, round string, b categories.Bowstyle, g categories.Gender, a categories.AgeGroup) (string, error) {
	start := time.Now()
	tier, err := s.currentEngine().Classify(score, classification.ByName(round), b, g, a)
	s.observe(ctx, "classify", start, err)
	return tier, err
}

// Rounds lists the round names the scheme accepts.
func (s *Service) Rounds(_ context.Context) []string {
	return s.currentEngine().EligibleRounds()
}

// Stats is a point-in-time snapshot of service counters.
type Stats struct {
	Started          bool  `json:"started"`
	QueriesServed    int64 `json:"queries_served"`
	QueriesRejected  int64 `json:"queries_rejected"`
	RoundsRegistered int   `json:"rounds_registered"`
	EligibleRounds   int   `json:"eligible_rounds"`
}

// GetStats returns service statistics for monitoring.
func (s *Service) GetStats() Stats {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return Stats{
		Started:          s.started,
		QueriesServed:    s.queriesServed.Load(),
		QueriesRejected:  s.queriesRejected.Load(),
		RoundsRegistered: len(s.registry.Names()),
		EligibleRounds:   len(s.engine.EligibleRounds()),
	}
}

// currentEngine snapshots the engine so queries observe a consistent
// registry while Start merges a rounds file.
func (s *Service) currentEngine() *classification.Indoor {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.engine
}

func (s *Service) observe(ctx context.Context, op string, start time.Time, err error) {
	metrics.ObserveClassificationDuration(op, float64(time.Since(start).Microseconds())/1000.0)
	if err == nil {
		s.queriesServed.Add(1)
		metrics.RecordClassification(op)
		return
	}
	s.queriesRejected.Add(1)
	metrics.RecordClassificationError(errorKind(err))
	s.logger.Debug(ctx, "classification query rejected",
		logger.String("op", op),
		logger.Error(err),
	)
}

func errorKind(err error) string {
	switch {
	case errors.Is(err, classification.ErrUnrecognisedRound):
		return "unrecognised_round"
	case errors.Is(err, classification.ErrInvalidScore):
		return "invalid_score"
	case errors.Is(err, classification.ErrInvalidInput):
		return "invalid_input"
	default:
		return "internal"
	}
}
