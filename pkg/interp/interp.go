package interp

import (
	"github.com/fogleman/delaunay"
	"github.com/pkg/errors"

	"dendrite/pkg/core"
)

// Interpolator answers weight queries over a fixed site set with
// barycentric weights on the site Delaunay triangulation. It implements
// core.WeightQuerier; weights depend only on geometry, never on
// simulation state, so cached entries stay valid for the life of the
// network.
type Interpolator struct {
	tri  *delaunay.Triangulation
	grid *triangleGrid
}

// New triangulates the sites and builds the point-location grid. It
// fails when the sites cannot be triangulated, for instance fewer than
// three of them.
func New(sites []core.Site) (*Interpolator, error) {
	points := make([]delaunay.Point, len(sites))
	for i, s := range sites {
		points[i] = delaunay.Point{X: s.X, Y: s.Y}
	}
	tri, err := delaunay.Triangulate(points)
	if err != nil {
		return nil, errors.Wrap(err, "interp: triangulate sites")
	}
	return &Interpolator{
		tri:  tri,
		grid: newTriangleGrid(points, tri.Triangles),
	}, nil
}

// QueryWeights returns the barycentric weights of p inside its containing
// triangle, renormalized to sum to exactly 1, or nil when p falls outside
// the triangulation.
func (ip *Interpolator) QueryWeights(p core.Site) core.WeightEntry {
	ti, wa, wb, wc, ok := ip.grid.locate(p.X, p.Y)
	if !ok {
		return nil
	}
	// The inside test tolerates a hair of negativity at edges; clamp
	// before renormalizing so the entry stays a convex combination.
	wa = clampWeight(wa)
	wb = clampWeight(wb)
	wc = clampWeight(wc)
	total := wa + wb + wc
	if total == 0 {
		return nil
	}
	return core.WeightEntry{
		{Site: ip.tri.Triangles[3*ti], Weight: wa / total},
		{Site: ip.tri.Triangles[3*ti+1], Weight: wb / total},
		{Site: ip.tri.Triangles[3*ti+2], Weight: wc / total},
	}
}

func clampWeight(w float64) float64 {
	if w < 0 {
		return 0
	}
	return w
}
