package metrics

// degreeCentrality returns the normalized directed degree of each node:
// (in + out) / (2 * (n - 1)).
func degreeCentrality(a *adjacency) []float64 {
	n := len(a.ids)
	scores := make([]float64, n)
	if n < 2 {
		return scores
	}
	denom := float64(2 * (n - 1))
	for i := range scores {
		scores[i] = float64(len(a.in[i])+len(a.out[i])) / denom
	}
	return scores
}

// betweennessCentrality implements the Brandes accumulation over the
// directed graph, normalized by (n-1)(n-2).
func betweennessCentrality(a *adjacency) []float64 {
	n := len(a.ids)
	scores := make([]float64, n)
	if n < 3 {
		return scores
	}

	dist := make([]int, n)
	paths := make([]float64, n)
	delta := make([]float64, n)
	pred := make([][]int, n)

	for s := 0; s < n; s++ {
		order := make([]int, 0, n)
		for i := 0; i < n; i++ {
			dist[i] = -1
			paths[i] = 0
			delta[i] = 0
			pred[i] = pred[i][:0]
		}
		dist[s] = 0
		paths[s] = 1

		queue := []int{s}
		for len(queue) > 0 {
			v := queue[0]
			queue = queue[1:]
			order = append(order, v)
			for _, w := range a.out[v] {
				if dist[w] < 0 {
					dist[w] = dist[v] + 1
					queue = append(queue, w)
				}
				if dist[w] == dist[v]+1 {
					paths[w] += paths[v]
					pred[w] = append(pred[w], v)
				}
			}
		}

		for i := len(order) - 1; i >= 0; i-- {
			w := order[i]
			for _, v := range pred[w] {
				delta[v] += (paths[v] / paths[w]) * (1 + delta[w])
			}
			if w != s {
				scores[w] += delta[w]
			}
		}
	}

	norm := float64((n - 1) * (n - 2))
	for i := range scores {
		scores[i] /= norm
	}
	return scores
}

// closenessCentrality returns Wasserman-Faust normalized closeness over
// directed shortest paths: (r/(n-1)) * (r/sum) where r is the number of
// reachable nodes and sum the total distance to them. A node that reaches
// nothing scores 0.
func closenessCentrality(a *adjacency) []float64 {
	n := len(a.ids)
	scores := make([]float64, n)
	if n < 2 {
		return scores
	}

	dist := make([]int, n)
	for s := 0; s < n; s++ {
		for i := 0; i < n; i++ {
			dist[i] = -1
		}
		dist[s] = 0
		queue := []int{s}
		reachable := 0
		sum := 0
		for len(queue) > 0 {
			v := queue[0]
			queue = queue[1:]
			for _, w := range a.out[v] {
				if dist[w] < 0 {
					dist[w] = dist[v] + 1
					reachable++
					sum += dist[w]
					queue = append(queue, w)
				}
			}
		}
		if sum > 0 {
			r := float64(reachable)
			scores[s] = (r / float64(n-1)) * (r / float64(sum))
		}
	}
	return scores
}
