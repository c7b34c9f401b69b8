package core

// SiteWeight is one term of an interpolation weight list.
type SiteWeight struct {
	Site   int
	Weight float64
}

// WeightEntry is the result of a weight query: a convex combination over
// site indices, or nil when the query point falls outside the covered
// region. Weights of a covered entry sum to 1.
type WeightEntry []SiteWeight

// Covered reports whether the entry carries any weights.
func (w WeightEntry) Covered() bool {
	return len(w) > 0
}

// Sum returns the weight total.
func (w WeightEntry) Sum() float64 {
	total := 0.0
	for _, sw := range w {
		total += sw.Weight
	}
	return total
}

// WeightQuerier computes interpolation weights for a plane point. The
// weighting scheme is opaque to the automaton. Implementations must be
// deterministic and depend only on the query point and the fixed site
// geometry, never on simulation state.
type WeightQuerier interface {
	QueryWeights(p Site) WeightEntry
}
