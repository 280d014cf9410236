package rcomb

import (
	"go.uber.org/zap"

	"github.com/opendiamond-go/rcomb/permutation"
)

// The original engine traced its search with printf calls guarded by a
// debug flag. This package replaces those calls with structured zap
// fields gated behind WithLogger, so a host that wants the trace gets
// queryable fields instead of a formatted string, and a host that
// doesn't pays for a no-op logger call.

func logHillClimbStart(logger *zap.Logger, perm *permutation.Permutation, score int) {
	logger.Debug("hillclimb: start",
		zap.Stringer("perm", perm),
		zap.Int("score", score),
	)
}

func logHillClimbSwapTried(logger *zap.Logger, i, j int) {
	logger.Debug("hillclimb: swap tried", zap.Int("i", i), zap.Int("j", j))
}

func logHillClimbSwapRejected(logger *zap.Logger, i, j int, reason string) {
	logger.Debug("hillclimb: swap rejected",
		zap.Int("i", i), zap.Int("j", j), zap.String("reason", reason),
	)
}

func logHillClimbSwapAccepted(logger *zap.Logger, i, j, oldScore, newScore int) {
	logger.Debug("hillclimb: swap accepted",
		zap.Int("i", i), zap.Int("j", j),
		zap.Int("old_score", oldScore), zap.Int("new_score", newScore),
	)
}

func logHillClimbDone(logger *zap.Logger, perm *permutation.Permutation, score int) {
	logger.Debug("hillclimb: done", zap.Stringer("perm", perm), zap.Int("score", score))
}

func logBestFirstInsert(logger *zap.Logger, perm *permutation.Permutation, score, heapSize int) {
	logger.Debug("bestfirst: heap insert",
		zap.Stringer("perm", perm), zap.Int("score", score), zap.Int("heap_size", heapSize),
	)
}

func logBestFirstVisit(logger *zap.Logger, perm *permutation.Permutation, length int) {
	logger.Debug("bestfirst: visit", zap.Stringer("perm", perm), zap.Int("length", length))
}

func logBestFirstDone(logger *zap.Logger, perm *permutation.Permutation) {
	logger.Debug("bestfirst: done", zap.Stringer("perm", perm))
}
