package rcomb

import (
	"context"
	"errors"

	"go.uber.org/zap"

	"github.com/opendiamond-go/rcomb/permutation"
)

// ErrNoData is returned by an Evaluator when a score is not yet
// available for the given permutation. It models the original engine's
// oracle-stall convention the way io.EOF models end-of-stream: callers
// test for it with errors.Is, and a Step that observes it returns
// StepNeedsData rather than failing the search.
var ErrNoData = errors.New("rcomb: evaluator has no data yet")

// Evaluator scores a permutation's decided prefix. Implementations may
// return ErrNoData to stall a Step without aborting the search, or any
// other error to abort it. Evaluate must be safe to call with a
// Permutation whose Length() is less than its Capacity(): drivers score
// partial permutations as well as complete ones.
type Evaluator interface {
	Evaluate(ctx context.Context, perm *permutation.Permutation) (score int, err error)
}

// EvaluatorFunc adapts a function to an Evaluator.
type EvaluatorFunc func(ctx context.Context, perm *permutation.Permutation) (int, error)

// Evaluate calls f.
func (f EvaluatorFunc) Evaluate(ctx context.Context, perm *permutation.Permutation) (int, error) {
	return f(ctx, perm)
}

// StepOutcome reports what a driver's Step call accomplished.
type StepOutcome int

const (
	// StepProgress means Step made forward progress; the caller may call
	// Step again immediately.
	StepProgress StepOutcome = iota
	// StepNeedsData means Step stalled on ErrNoData from the Evaluator;
	// the caller should arrange for that data and call Step again.
	StepNeedsData
	// StepComplete means the search has finished; Result holds the
	// final permutation. HillClimb latches this permanently: every
	// further Step call is a no-op that immediately returns
	// StepComplete again. BestFirst instead re-arms for reuse: its heap
	// is already drained when it first returns StepComplete, and exactly
	// one further Step call resets it to its initial state (itself still returning
	// StepComplete), and any Step call after that begins a fresh search
	// (returning StepProgress) — see BestFirst's doc comment. A host
	// that wants a one-shot result should stop calling Step, and read
	// Result, as soon as it observes StepComplete.
	StepComplete
)

// config holds the options every driver in this package accepts.
type config struct {
	logger *zap.Logger
}

func newConfig(opts []Option) *config {
	cfg := &config{logger: zap.NewNop()}
	for _, opt := range opts {
		opt(cfg)
	}

	return cfg
}

// Option configures a driver constructor.
type Option func(*config)

// WithLogger attaches a zap.Logger the driver uses for structured debug
// tracing (current best score, accepted/rejected swaps, heap activity).
// The default is a no-op logger; passing nil restores it.
func WithLogger(logger *zap.Logger) Option {
	return func(cfg *config) {
		if logger == nil {
			logger = zap.NewNop()
		}
		cfg.logger = logger
	}
}
