package rcomb

import (
	"context"
	"errors"
	"fmt"

	"github.com/opendiamond-go/rcomb/maxheap"
	"github.com/opendiamond-go/rcomb/permutation"
	"github.com/opendiamond-go/rcomb/poset"
)

type bfPhase int

const (
	bfPhaseInit bfPhase = iota
	bfPhaseVisit
	bfPhaseExpand
	bfPhaseDone
)

// BestFirst performs a best-first search over partial permutations of
// [0, n): a max-heap of partial permutations, keyed by the Evaluator's
// score, is repeatedly expanded by appending one more element to its
// highest-scoring member until a full-length permutation reaches the
// top of the heap.
//
// Only partial permutations consistent with po are ever placed on the
// heap; see isValidPartialPerm. The search starts from every minimal
// element of po (an element with nothing strictly less than it), since
// only those may legally begin a valid full permutation.
//
// Unlike HillClimb, BestFirst re-arms itself for reuse after completion
// instead of latching done forever: the Step that returns StepComplete
// has already drained the heap, one further Step call resets internal
// state back to its initial phase (that call still reports
// StepComplete), and any
// Step call after that begins an entirely new search from scratch. This
// lets a host re-run the same BestFirst — e.g. after the Evaluator's
// underlying statistics change — without reallocating. A host that
// wants a single result should stop calling Step, and read Result, as
// soon as it observes StepComplete.
type BestFirst struct {
	cfg  *config
	po   *poset.PartialOrder
	eval Evaluator

	n     int
	phase bfPhase
	i, j  int

	heap    *maxheap.Heap
	bestSeq *permutation.Permutation
	nextSeq *permutation.Permutation
}

// NewBestFirst starts a best-first search over permutations of [0, n).
// The heap is sized n*n, matching the original engine; on pathological
// orders (few constraints, many ties) this can be exceeded, in which
// case Step reports the overflow as an error rather than panicking.
func NewBestFirst(n int, po *poset.PartialOrder, eval Evaluator, opts ...Option) (*BestFirst, error) {
	if n < 0 {
		return nil, errors.New("rcomb: NewBestFirst: negative n")
	}
	if po == nil {
		return nil, errors.New("rcomb: NewBestFirst: po is nil")
	}
	if eval == nil {
		return nil, errors.New("rcomb: NewBestFirst: eval is nil")
	}

	return &BestFirst{
		cfg:     newConfig(opts),
		po:      po,
		eval:    eval,
		n:       n,
		phase:   bfPhaseInit,
		heap:    maxheap.New(n * n),
		bestSeq: permutation.New(n),
		nextSeq: permutation.New(n),
	}, nil
}

// isValidPartialPerm reports whether perm's decided prefix respects po:
// no decided element may be required (by po) to come strictly after an
// element at any later position, decided or not.
func isValidPartialPerm(po *poset.PartialOrder, perm *permutation.Permutation, n int) bool {
	for i := 0; i < perm.Length(); i++ {
		for j := i + 1; j < n; j++ {
			if po.Get(perm.Element(i), perm.Element(j)) == poset.GT {
				return false
			}
		}
	}

	return true
}

// repairFull brings perm's undecided suffix [perm.Length(), n) into an
// order consistent with po, by a simple O(n^2) topological sort over
// that suffix; Length is left unchanged (callers set it to n). Used to hand the host a
// complete, valid permutation to work from while a search is stalled on
// ErrNoData — ported from make_valid_perm.
func repairFull(po *poset.PartialOrder, perm *permutation.Permutation, n int) {
	start := perm.Length()
	for i := start; i < n; i++ {
		v1 := perm.Element(i)
		for j := i + 1; j < n; j++ {
			v2 := perm.Element(j)
			if po.Get(v1, v2) == poset.GT {
				perm.Swap(i, j)
				v1 = v2
			}
		}
	}
}

// Step advances the search by one unit of work: considering one
// candidate start element, extracting one heap entry, or expanding one
// child of the current best partial permutation.
//
// On StepNeedsData, bf.Next() holds a complete, order-consistent
// permutation built by extending the stalled candidate with repairFull,
// so a host that wants a usable answer immediately (rather than waiting
// out the stall) always has one available.
func (bf *BestFirst) Step(ctx context.Context) (StepOutcome, error) {
	switch bf.phase {
	case bfPhaseInit:
		return bf.stepInit(ctx)
	case bfPhaseVisit:
		return bf.stepVisit()
	case bfPhaseExpand:
		return bf.stepExpand(ctx)
	default:
		// bfPhaseDone: the previous Step already reported StepComplete
		// and drained the heap. Reset to INIT so bf can be reused for a
		// fresh search (e.g. once the Evaluator's underlying statistics
		// have changed) without reallocating.
		bf.i, bf.j = 0, 0
		bf.phase = bfPhaseInit

		return StepComplete, nil
	}
}

func (bf *BestFirst) stepInit(ctx context.Context) (StepOutcome, error) {
	if bf.i >= bf.n {
		bf.phase = bfPhaseVisit

		return StepProgress, nil
	}

	start := bf.i
	if !bf.po.IsMin(start) {
		bf.i++

		return StepProgress, nil
	}

	cand := permutation.New(bf.n)
	cand.IdentityFill()
	cand.Swap(0, start)
	cand.SetLength(1)

	score, err := bf.eval.Evaluate(ctx, cand)
	if err != nil {
		if errors.Is(err, ErrNoData) {
			// bf.i is left pointing at start: the next Step retries the
			// same candidate instead of skipping it.
			bf.nextSeq.CopyAllFrom(cand)
			repairFull(bf.po, bf.nextSeq, bf.n)
			bf.nextSeq.SetLength(bf.n)
			cand.Destroy()

			return StepNeedsData, nil
		}
		cand.Destroy()

		return StepProgress, err
	}

	logBestFirstInsert(bf.cfg.logger, cand, score, bf.heap.Size()+1)
	if err := bf.heap.Insert(score, cand); err != nil {
		cand.Destroy()

		return StepProgress, fmt.Errorf("rcomb: bestfirst: %w", err)
	}
	bf.i++

	return StepProgress, nil
}

func (bf *BestFirst) stepVisit() (StepOutcome, error) {
	if bf.heap.Size() == 0 {
		bf.finish()

		return StepComplete, nil
	}

	top, err := bf.heap.ExtractMax()
	if err != nil {
		return StepProgress, fmt.Errorf("rcomb: bestfirst: %w", err)
	}
	bf.bestSeq.CopyAllFrom(top)
	top.Destroy()
	logBestFirstVisit(bf.cfg.logger, bf.bestSeq, bf.bestSeq.Length())

	if bf.bestSeq.Length() == bf.n {
		bf.finish()

		return StepComplete, nil
	}

	bf.phase = bfPhaseExpand
	bf.j = bf.bestSeq.Length()

	return StepProgress, nil
}

func (bf *BestFirst) stepExpand(ctx context.Context) (StepOutcome, error) {
	if bf.j >= bf.n {
		bf.phase = bfPhaseVisit

		return StepProgress, nil
	}

	pos := bf.bestSeq.Length()
	bf.nextSeq.CopyAllFrom(bf.bestSeq)
	bf.nextSeq.Swap(pos, bf.j)
	bf.nextSeq.SetLength(pos + 1)

	if !isValidPartialPerm(bf.po, bf.nextSeq, bf.n) {
		bf.j++

		return StepProgress, nil
	}

	score, err := bf.eval.Evaluate(ctx, bf.nextSeq)
	if err != nil {
		if errors.Is(err, ErrNoData) {
			// bf.j is left unchanged: the next Step retries the
			// same child instead of skipping it.
			repairFull(bf.po, bf.nextSeq, bf.n)
			bf.nextSeq.SetLength(bf.n)

			return StepNeedsData, nil
		}

		return StepProgress, err
	}

	child := bf.nextSeq.Duplicate()
	logBestFirstInsert(bf.cfg.logger, child, score, bf.heap.Size()+1)
	if err := bf.heap.Insert(score, child); err != nil {
		child.Destroy()

		return StepProgress, fmt.Errorf("rcomb: bestfirst: %w", err)
	}
	bf.j++

	return StepProgress, nil
}

// finish drains and releases any permutations still queued on the
// heap and marks the search complete.
func (bf *BestFirst) finish() {
	for _, p := range bf.heap.Drain() {
		p.Destroy()
	}
	bf.phase = bfPhaseDone
	logBestFirstDone(bf.cfg.logger, bf.bestSeq)
}

// Result returns the best (highest-scoring) complete permutation found.
// It is only meaningful once Step has returned StepComplete; before
// that it holds the most recently visited heap entry, which may be
// partial. The returned value is owned by bf.
func (bf *BestFirst) Result() *permutation.Permutation {
	return bf.bestSeq
}

// Next returns the candidate permutation under evaluation, useful for
// diagnostics while a search is paused on StepNeedsData.
func (bf *BestFirst) Next() *permutation.Permutation {
	return bf.nextSeq
}

// Close releases bf's internal permutations, including any still on
// the heap. bf must not be used afterward.
func (bf *BestFirst) Close() {
	for _, p := range bf.heap.Drain() {
		p.Destroy()
	}
	bf.bestSeq.Destroy()
	bf.nextSeq.Destroy()
}
