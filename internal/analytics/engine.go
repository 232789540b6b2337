// Package analytics implements the heuristic analyzer modules that fan out
// over a labeled transaction set: pattern detection, forecasting, benchmark
// comparison, savings goals, scoring, momentum, trigger detection, gamified
// challenges, personality classification and peer comparison. Every module
// is a pure function of the set and defensively returns an explicit
// insufficient-data result instead of failing, so one starved module never
// silences the others.
package analytics

import (
	"context"

	"flexicoach/fincoach/internal/logging"
	"flexicoach/fincoach/internal/models"

	"golang.org/x/sync/errgroup"
)

// Engine runs every analyzer module over one immutable transaction set.
type Engine struct {
	logger logging.Logger
}

// NewEngine creates an Engine.
func NewEngine(logger logging.Logger) *Engine {
	if logger == nil {
		logger = logging.GetLogger()
	}
	return &Engine{logger: logger}
}

// Run executes all modules concurrently. Each module writes a distinct field
// of the result, and the set is read-only, so no further coordination is
// needed.
func (e *Engine) Run(ctx context.Context, set *models.TransactionSet) (models.Analytics, error) {
	var result models.Analytics

	g, _ := errgroup.WithContext(ctx)
	g.Go(func() error { result.Patterns = DetectPatterns(set); return nil })
	g.Go(func() error { result.Forecast = PredictNextMonth(set); return nil })
	g.Go(func() error { result.Benchmark = CompareToBenchmarks(set); return nil })
	g.Go(func() error { result.SavingsGoals = GenerateSavingsGoals(set); return nil })
	g.Go(func() error { result.Health = HealthScore(set); return nil })
	g.Go(func() error { result.Momentum = Momentum(set); return nil })
	g.Go(func() error { result.Triggers = DetectTriggers(set); return nil })
	g.Go(func() error { result.Challenges = GenerateChallenges(set); return nil })
	g.Go(func() error { result.Personality = Personality(set); return nil })
	g.Go(func() error { result.Peers = PeerComparison(set); return nil })
	g.Go(func() error { result.Habits = HabitsScore(set); return nil })

	if err := g.Wait(); err != nil {
		return models.Analytics{}, err
	}

	e.logger.Debug("Analytics engine completed",
		logging.Field{Key: "transactions", Value: set.Len()})

	return result, nil
}
