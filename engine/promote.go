package engine

import "golang.org/x/exp/constraints"

// timeframeRank orders Timeframe values from finest to coarsest, mirroring
// the ordering runtime/sam/expr/coerce uses for its numeric type ranks.
var timeframeRank = map[string]int{
	"second": 0, "minute": 1, "hour": 2, "day": 3,
	"week": 4, "month": 5, "quarter": 6, "year": 7,
}

// min is the generic ordinal comparison runtime/sam/expr/coerce pulls in
// golang.org/x/exp/constraints for; we reuse the same dependency for the
// same purpose, ranking timeframe coarseness instead of numeric width.
func min[T constraints.Ordered](a, b T) T {
	if a < b {
		return a
	}
	return b
}

// finerTimeframe returns whichever of a, b truncates to less time, the
// timeframe reconcileGranularity truncates the coarser operand to.
func finerTimeframe(a, b string) string {
	ra, oka := timeframeRank[a]
	rb, okb := timeframeRank[b]
	if !oka {
		return b
	}
	if !okb {
		return a
	}
	if min(ra, rb) == ra {
		return a
	}
	return b
}
