package growth

import (
	"gonum.org/v1/gonum/floats"

	"dendrite/pkg/core"
)

// RegisterQuery computes interpolation weights for (x, y) once and caches
// the entry under a fresh monotonically increasing key, which it returns.
// Entries are immutable after registration and are never recomputed, even
// when later queries land on the same coordinates; uncovered points store
// a no-coverage entry that Sample reports as absent.
func (n *Network) RegisterQuery(x, y float64) int {
	entry := n.queryWeights(core.Site{X: x, Y: y})
	n.queries = append(n.queries, entry)
	return len(n.queries) - 1
}

// QueryCount returns the number of registered query keys.
func (n *Network) QueryCount() int { return len(n.queries) }

// Sample blends the current site states under the key's frozen weights.
// The weights were fixed at registration; the states are read live, so
// the sampled field follows the automaton as it steps. ok is false for
// no-coverage entries. An unknown key panics.
func (n *Network) Sample(key int) (core.NumericProperty, bool) {
	return n.blend(n.queries[key])
}

// SampleAt is the uncached variant: it queries weights for (x, y) and
// blends immediately without registering a key.
func (n *Network) SampleAt(x, y float64) (core.NumericProperty, bool) {
	return n.blend(n.queryWeights(core.Site{X: x, Y: y}))
}

// PropertyOf returns the one-hot encoding of site i's current state,
// bypassing interpolation. An out-of-range index panics.
func (n *Network) PropertyOf(i int) core.NumericProperty {
	return n.props[i].Numeric()
}

// NearestSite returns the index of the site closest to (x, y), for
// hit-testing a plane point against site identities.
func (n *Network) NearestSite(x, y float64) int {
	return n.index.nearest(core.Site{X: x, Y: y})
}

func (n *Network) queryWeights(p core.Site) core.WeightEntry {
	if n.querier == nil {
		return nil
	}
	return n.querier.QueryWeights(p)
}

func (n *Network) blend(entry core.WeightEntry) (core.NumericProperty, bool) {
	var acc core.NumericProperty
	if !entry.Covered() {
		return acc, false
	}
	for _, sw := range entry {
		one := n.props[sw.Site].Numeric()
		floats.AddScaled(acc[:], sw.Weight, one[:])
	}
	return acc, true
}
