package growth

import (
	"dendrite/pkg/core"
)

// FindPath walks greedily from site from to site to: at every site it
// moves to the neighbor closest to the target, recording each visited
// site including both endpoints. It returns nil when it strands on a
// neighborless site or exceeds a site-count hop budget. Greedy descent
// has no backtracking, so a path that exists can still be missed; callers
// treat nil as "no path", not as a failure.
func (n *Network) FindPath(from, to int) []int {
	path := []int{from}
	current := from
	target := n.sites[to]
	for hops := 0; current != to; hops++ {
		if hops >= len(n.sites) {
			return nil
		}
		next := core.NoSite
		bestDist := 0.0
		for _, j := range n.graph.Neighbors(current) {
			d := n.sites[j].SquaredDistance(target)
			if next == core.NoSite || d < bestDist {
				next = j
				bestDist = d
			}
		}
		if next == core.NoSite {
			return nil
		}
		path = append(path, next)
		current = next
	}
	return path
}

// MarkWall carves an obstacle along the greedy path between the sites
// nearest to (prevX, prevY) and (x, y). Every site on the path becomes
// Wall with its parent cleared, overwriting prior state. When no path is
// found nothing mutates. It reports whether a wall was placed.
func (n *Network) MarkWall(x, y, prevX, prevY float64) bool {
	from := n.index.nearest(core.Site{X: prevX, Y: prevY})
	to := n.index.nearest(core.Site{X: x, Y: y})
	path := n.FindPath(from, to)
	if path == nil {
		return false
	}
	for _, i := range path {
		n.props[i] = core.Property{State: core.StateWall, Child: core.NoSite, Parent: core.NoSite}
	}
	return true
}
