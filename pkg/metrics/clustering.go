package metrics

// clusteringCoefficients computes the local clustering coefficient per
// node over the undirected projection: 2L / (k(k-1)) where k is the
// neighborhood size and L the number of neighbor pairs connected by an
// edge in either direction. Nodes with fewer than two neighbors score 0.
func clusteringCoefficients(a *adjacency) []float64 {
	scores := make([]float64, len(a.ids))
	for v := range a.und {
		neighbors := a.und[v]
		k := len(neighbors)
		if k < 2 {
			continue
		}
		links := 0
		for i := 0; i < k; i++ {
			for j := i + 1; j < k; j++ {
				if a.undSet[neighbors[i]][neighbors[j]] {
					links++
				}
			}
		}
		scores[v] = float64(2*links) / float64(k*(k-1))
	}
	return scores
}
