package growth

import (
	"dendrite/pkg/core"
)

// Network owns the state of one branching-network simulation: the
// immutable site set and adjacency, the double-buffered per-site records,
// the spatial index, and the interpolation query cache. A Network is not
// safe for concurrent mutation; a single caller drives it.
type Network struct {
	sites []core.Site
	graph *core.UndirectedGraph

	props []core.Property
	next  []core.Property

	index   *siteIndex
	querier core.WeightQuerier
	queries []core.WeightEntry

	lifetime int
}

// New constructs a network over the given sites and adjacency. The graph
// must span exactly the site set. The querier supplies interpolation
// weights for field sampling; a nil querier leaves every query uncovered.
func New(sites []core.Site, graph *core.UndirectedGraph, querier core.WeightQuerier) (*Network, error) {
	if len(sites) == 0 {
		return nil, core.ErrNoSites
	}
	if graph == nil {
		return nil, core.ErrNilGraph
	}
	if graph.Len() != len(sites) {
		return nil, core.ErrGraphMismatch
	}
	props := make([]core.Property, len(sites))
	next := make([]core.Property, len(sites))
	for i := range props {
		props[i] = blankProperty()
	}
	return &Network{
		sites:    sites,
		graph:    graph,
		props:    props,
		next:     next,
		index:    newSiteIndex(sites),
		querier:  querier,
		lifetime: -1,
	}, nil
}

func blankProperty() core.Property {
	return core.Property{State: core.StateNone, Child: core.NoSite, Parent: core.NoSite}
}

// Seed forces the site nearest to (x, y) to Live at age 0 with no parent,
// overwriting whatever was there, walls included. Exactly one site
// changes. It returns the seeded site's index.
func (n *Network) Seed(x, y float64) int {
	i := n.index.nearest(core.Site{X: x, Y: y})
	n.props[i] = core.Property{State: core.StateLive, Child: core.NoSite, Parent: core.NoSite}
	return i
}

// SetLifetime sets how many completed steps a site may stay Live before
// it must resolve into Path or Dead. Step reports false until a
// non-negative lifetime has been set.
func (n *Network) SetLifetime(steps int) {
	n.lifetime = steps
}

// Len returns the number of sites.
func (n *Network) Len() int { return len(n.sites) }

// Sites exposes the site set. The slice is shared and must not be
// modified.
func (n *Network) Sites() []core.Site { return n.sites }

// Graph exposes the adjacency relation, read-only by convention.
func (n *Network) Graph() *core.UndirectedGraph { return n.graph }

// Lifetime returns the configured lifetime, -1 while unset.
func (n *Network) Lifetime() int { return n.lifetime }

// StateOf returns site i's current state.
func (n *Network) StateOf(i int) core.State { return n.props[i].State }

// AgeOf returns the completed Live steps of site i.
func (n *Network) AgeOf(i int) int { return n.props[i].Age }

// ParentOf returns the neighbor that grew site i, NoSite when absent.
func (n *Network) ParentOf(i int) int { return n.props[i].Parent }

// ChildOf returns the downstream child of a Path site, NoSite otherwise.
func (n *Network) ChildOf(i int) int { return n.props[i].Child }

// Census counts the sites currently in each state.
func (n *Network) Census() [core.StateCount]int {
	var counts [core.StateCount]int
	for i := range n.props {
		counts[n.props[i].State]++
	}
	return counts
}
