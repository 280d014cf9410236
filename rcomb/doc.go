// Package rcomb implements two resumable search drivers over
// permutation.Permutation, scored by a caller-supplied Evaluator and
// constrained by a poset.PartialOrder: HillClimb, a pairwise-swap local
// search, and BestFirst, a heap-driven partial-permutation expansion.
//
// Both drivers are pull-style state machines: a host calls Step
// repeatedly. Step returns StepNeedsData, with a nil error, when the
// Evaluator returns ErrNoData; the host is expected to arrange for
// that data to become available (e.g. by running an asynchronous
// measurement) and call Step again. No progress already made is lost
// across a StepNeedsData return. TestHillClimb_ResumesAfterNoData and
// TestBestFirst_ResumesAfterNoData exercise that protocol.
package rcomb
