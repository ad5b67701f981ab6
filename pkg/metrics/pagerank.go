package metrics

import "math"

// pageRank runs the power iteration over the directed adjacency with the
// given damping factor, stopping once the L1 delta between iterations
// drops below precision or maxIterations is reached. Dangling mass is
// redistributed uniformly so the scores always sum to 1.
func pageRank(a *adjacency, damping, precision float64, maxIterations int) []float64 {
	n := len(a.ids)
	scores := make([]float64, n)
	if n == 0 {
		return scores
	}

	inv := 1.0 / float64(n)
	for i := range scores {
		scores[i] = inv
	}

	next := make([]float64, n)
	for iter := 0; iter < maxIterations; iter++ {
		dangling := 0.0
		for i := 0; i < n; i++ {
			if len(a.out[i]) == 0 {
				dangling += scores[i]
			}
		}

		base := (1-damping)*inv + damping*dangling*inv
		for i := range next {
			next[i] = base
		}
		for v := 0; v < n; v++ {
			out := a.out[v]
			if len(out) == 0 {
				continue
			}
			share := damping * scores[v] / float64(len(out))
			for _, w := range out {
				next[w] += share
			}
		}

		delta := 0.0
		for i := range next {
			delta += math.Abs(next[i] - scores[i])
		}
		scores, next = next, scores
		if delta < precision {
			break
		}
	}
	return scores
}
