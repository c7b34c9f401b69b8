package growth

import (
	"gonum.org/v1/gonum/spatial/kdtree"

	"dendrite/pkg/core"
)

// siteIndex is the immutable nearest-site lookup structure, built once
// from the full site set at network construction.
type siteIndex struct {
	tree *kdtree.Tree
}

func newSiteIndex(sites []core.Site) *siteIndex {
	nodes := make(siteNodes, len(sites))
	for i, s := range sites {
		nodes[i] = siteNode{x: s.X, y: s.Y, id: i}
	}
	return &siteIndex{tree: kdtree.New(nodes, false)}
}

// nearest returns the index of the site minimizing squared Euclidean
// distance to p. Exact ties resolve to whichever minimizer the tree
// traversal keeps; callers must not rely on a particular one.
func (x *siteIndex) nearest(p core.Site) int {
	got, _ := x.tree.Nearest(siteNode{x: p.X, y: p.Y, id: core.NoSite})
	return got.(siteNode).id
}

// siteNode carries a site's coordinates plus its index so tree results
// map back to site identities.
type siteNode struct {
	x, y float64
	id   int
}

func (n siteNode) Compare(c kdtree.Comparable, d kdtree.Dim) float64 {
	q := c.(siteNode)
	switch d {
	case 0:
		return n.x - q.x
	default:
		return n.y - q.y
	}
}

func (n siteNode) Dims() int { return 2 }

func (n siteNode) Distance(c kdtree.Comparable) float64 {
	q := c.(siteNode)
	dx := n.x - q.x
	dy := n.y - q.y
	return dx*dx + dy*dy
}

type siteNodes []siteNode

func (s siteNodes) Index(i int) kdtree.Comparable { return s[i] }

func (s siteNodes) Len() int { return len(s) }

func (s siteNodes) Pivot(d kdtree.Dim) int {
	return sitePlane{siteNodes: s, Dim: d}.Pivot()
}

func (s siteNodes) Slice(start, end int) kdtree.Interface { return s[start:end] }

// sitePlane sorts siteNodes along a single dimension for tree building.
type sitePlane struct {
	siteNodes
	kdtree.Dim
}

func (p sitePlane) Less(i, j int) bool {
	switch p.Dim {
	case 0:
		return p.siteNodes[i].x < p.siteNodes[j].x
	default:
		return p.siteNodes[i].y < p.siteNodes[j].y
	}
}

func (p sitePlane) Pivot() int {
	return kdtree.Partition(p, kdtree.MedianOfMedians(p))
}

func (p sitePlane) Slice(start, end int) kdtree.SortSlicer {
	p.siteNodes = p.siteNodes[start:end]
	return p
}

func (p sitePlane) Swap(i, j int) {
	p.siteNodes[i], p.siteNodes[j] = p.siteNodes[j], p.siteNodes[i]
}
