package growth

import (
	"dendrite/pkg/core"
)

// Step advances every site one synchronous generation and reports whether
// a step was performed. It reports false and does no work while no
// lifetime has been set.
//
// Next states are a pure function of the pre-step snapshot: reads go to
// the current buffer, writes to the scratch buffer, and the two swap once
// the whole pass is done, so neighbor lookups never observe a partially
// updated generation.
func (n *Network) Step() bool {
	if n.lifetime < 0 {
		return false
	}
	for i := range n.props {
		n.next[i] = n.transition(i)
	}
	n.props, n.next = n.next, n.props
	return true
}

// transition computes site i's next record from the current snapshot.
func (n *Network) transition(i int) core.Property {
	p := n.props[i]
	switch p.State {
	case core.StateNone:
		parent := n.electParent(i)
		if parent == core.NoSite {
			return p
		}
		return core.Property{State: core.StateLive, Child: core.NoSite, Parent: parent}
	case core.StateLive:
		if p.Age+1 < n.lifetime {
			p.Age++
			return p
		}
		if child := n.findChild(i); child != core.NoSite {
			return core.Property{State: core.StatePath, Child: child, Parent: p.Parent}
		}
		return blankDead()
	case core.StatePath:
		if n.props[p.Child].Parent == i {
			return p
		}
		if child := n.findChild(i); child != core.NoSite {
			p.Child = child
			return p
		}
		return blankDead()
	case core.StateDead:
		return blankDead()
	default: // walls never transition
		return p
	}
}

func blankDead() core.Property {
	return core.Property{State: core.StateDead, Child: core.NoSite, Parent: core.NoSite}
}

// electParent returns the Live neighbor nearest to site i, NoSite when no
// neighbor is Live. Equal distances resolve to the neighbor appearing
// later in adjacency order.
func (n *Network) electParent(i int) int {
	best := core.NoSite
	bestDist := 0.0
	for _, j := range n.graph.Neighbors(i) {
		if n.props[j].State != core.StateLive {
			continue
		}
		d := n.sites[i].SquaredDistance(n.sites[j])
		if best == core.NoSite || d <= bestDist {
			best = j
			bestDist = d
		}
	}
	return best
}

// findChild scans i's neighbors in adjacency order and returns the first
// one whose parent is i, NoSite when no neighbor claims i. The first-match
// rule decides which branch of a fork survives as the final path.
func (n *Network) findChild(i int) int {
	for _, j := range n.graph.Neighbors(i) {
		if n.props[j].Parent == i {
			return j
		}
	}
	return core.NoSite
}
