package synth

import "github.com/shaibs3/resepgen/internal/db_model"

// Rand is the subset of *math/rand/v2.Rand used for sampling
type Rand interface {
	IntN(n int) int
}

// Sample draws min(limit, len(rows)) rows uniformly without replacement.
// The result is in draw order; rows is not modified.
func Sample(rng Rand, rows []db_model.SourceRow, limit int) []db_model.SourceRow {
	idx := sampleIndices(rng, len(rows), limit)
	out := make([]db_model.SourceRow, len(idx))
	for i, j := range idx {
		out[i] = rows[j]
	}
	return out
}

// sampleIndices runs a partial Fisher-Yates shuffle over [0, n) and returns the first k positions
func sampleIndices(rng Rand, n, k int) []int {
	k = min(max(k, 0), n)
	idx := make([]int, n)
	for i := range idx {
		idx[i] = i
	}
	for i := 0; i < k; i++ {
		j := i + rng.IntN(n-i)
		idx[i], idx[j] = idx[j], idx[i]
	}
	return idx[:k]
}

// drawDistinct picks k distinct items from pool
func drawDistinct(rng Rand, pool []string, k int) []string {
	idx := sampleIndices(rng, len(pool), k)
	out := make([]string, len(idx))
	for i, j := range idx {
		out[i] = pool[j]
	}
	return out
}

// intBetween returns a uniform integer in [lo, hi]
func intBetween(rng Rand, lo, hi int) int {
	return lo + rng.IntN(hi-lo+1)
}

func choice(rng Rand, labels []string) string {
	return labels[rng.IntN(len(labels))]
}
