package rcomb

import (
	"context"
	"errors"

	"github.com/opendiamond-go/rcomb/permutation"
	"github.com/opendiamond-go/rcomb/poset"
)

// HillClimb performs pairwise-swap local search over a starting
// permutation: it tries every (i, j) position pair in turn, accepts a
// swap that strictly improves the Evaluator's score, and repeats full
// passes until one pass accepts no swap.
//
// A swap of positions (i, j) is only attempted when every pairwise swap
// it would imply is consistent with the partial order — see
// checkValidSwap, ported from the original engine's check_valid_swap.
//
// Unlike the engine this was ported from, which ran an entire pass (or
// until the Evaluator stalled) inside a single call, Step here advances
// the search by one candidate per call. This makes the cursor state
// (i, j, improved) explicit and resumable without relying on a stalled
// call re-entering mid-loop.
type HillClimb struct {
	cfg  *config
	po   *poset.PartialOrder
	eval Evaluator

	n int

	bestSeq   *permutation.Permutation
	nextSeq   *permutation.Permutation
	bestScore int
	haveScore bool

	i, j     int
	improved bool
	done     bool
}

// NewHillClimb starts a hill-climbing search from start. start's decided
// prefix (Length()) is taken as the full sequence under search; start is
// duplicated internally, so the caller retains ownership of its argument.
func NewHillClimb(start *permutation.Permutation, po *poset.PartialOrder, eval Evaluator, opts ...Option) (*HillClimb, error) {
	if start == nil {
		return nil, errors.New("rcomb: NewHillClimb: start is nil")
	}
	if po == nil {
		return nil, errors.New("rcomb: NewHillClimb: po is nil")
	}
	if eval == nil {
		return nil, errors.New("rcomb: NewHillClimb: eval is nil")
	}

	n := start.Length()
	hc := &HillClimb{
		cfg:     newConfig(opts),
		po:      po,
		eval:    eval,
		n:       n,
		bestSeq: start.Duplicate(),
		nextSeq: permutation.New(n),
		i:       0,
		j:       1,
	}

	return hc, nil
}

// checkValidSwap reports whether swapping the elements at positions u
// and v is consistent with po: the elements at u and v must themselves
// be incomparable, and neither may be comparable to any element strictly
// between them, since swapping u and v effectively swaps each of those
// intermediate elements past both endpoints.
func checkValidSwap(po *poset.PartialOrder, perm *permutation.Permutation, u, v int) bool {
	if po.IsComparable(perm.Element(u), perm.Element(v)) {
		return false
	}
	for i := u + 1; i < v; i++ {
		if po.IsComparable(perm.Element(u), perm.Element(i)) ||
			po.IsComparable(perm.Element(i), perm.Element(v)) {
			return false
		}
	}

	return true
}

func (hc *HillClimb) advanceCursor() {
	hc.j++
	if hc.j >= hc.n {
		hc.i++
		hc.j = hc.i + 1
	}
}

// Step advances the search by one unit of work: evaluating one
// candidate swap (preceded, on the first call, by scoring the current
// best) or closing out a pass.
//
// It returns StepNeedsData, with a nil error, when the Evaluator
// returns ErrNoData; the cursor is left exactly where it was, so the
// next Step retries the same candidate. Any other Evaluator error ends
// the Step and is returned unwrapped.
func (hc *HillClimb) Step(ctx context.Context) (StepOutcome, error) {
	if hc.done {
		return StepComplete, nil
	}

	if !hc.haveScore {
		score, err := hc.eval.Evaluate(ctx, hc.bestSeq)
		if err != nil {
			if errors.Is(err, ErrNoData) {
				hc.nextSeq.CopyFrom(hc.bestSeq)

				return StepNeedsData, nil
			}

			return StepProgress, err
		}
		hc.bestScore = score
		hc.haveScore = true
		logHillClimbStart(hc.cfg.logger, hc.bestSeq, hc.bestScore)
	}

	if hc.i == 0 && hc.j == 1 {
		// Start of a fresh pass: nothing has been accepted yet this
		// pass. Cleared here rather than at the tail of the previous
		// pass so the flag's meaning ("this pass improved") stays
		// unambiguous regardless of the initial zero value.
		hc.improved = false
	}

	for hc.i < hc.n-1 {
		u, v := hc.i, hc.j
		if !checkValidSwap(hc.po, hc.bestSeq, u, v) {
			hc.advanceCursor()
			continue
		}

		logHillClimbSwapTried(hc.cfg.logger, u, v)
		hc.nextSeq.CopyFrom(hc.bestSeq)
		hc.nextSeq.Swap(u, v)

		score, err := hc.eval.Evaluate(ctx, hc.nextSeq)
		if err != nil {
			if errors.Is(err, ErrNoData) {
				return StepNeedsData, nil
			}

			// Oracle error (not a stall): fall back to exposing the
			// current best as next, per spec.md §7.
			hc.nextSeq.CopyFrom(hc.bestSeq)

			return StepProgress, err
		}

		if score > hc.bestScore {
			logHillClimbSwapAccepted(hc.cfg.logger, u, v, hc.bestScore, score)
			hc.improved = true
			hc.bestScore = score
			hc.bestSeq.CopyFrom(hc.nextSeq)
		} else {
			logHillClimbSwapRejected(hc.cfg.logger, u, v, "no improvement")
		}
		hc.advanceCursor()

		return StepProgress, nil
	}

	// Full pass completed: stop if it accepted no swap, else rescan.
	hc.i, hc.j = 0, 1
	if !hc.improved {
		hc.done = true
		logHillClimbDone(hc.cfg.logger, hc.bestSeq, hc.bestScore)

		return StepComplete, nil
	}

	return StepProgress, nil
}

// Result returns the best permutation found so far. The returned value
// is owned by hc; callers must not Destroy it while hc is still in use.
func (hc *HillClimb) Result() *permutation.Permutation {
	return hc.bestSeq
}

// Next returns the candidate permutation under evaluation, useful for
// diagnostics while a search is paused on StepNeedsData.
func (hc *HillClimb) Next() *permutation.Permutation {
	return hc.nextSeq
}

// Close releases hc's internal permutations. hc must not be used
// afterward.
func (hc *HillClimb) Close() {
	hc.bestSeq.Destroy()
	hc.nextSeq.Destroy()
}
