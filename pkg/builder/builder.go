// Package builder assembles growth networks from scratch: it scatters
// sites inside a bounding rectangle, optionally pins extra sites along
// the boundary, relaxes the distribution, and triangulates the result
// into the site graph a network runs on.
package builder

import (
	"math"

	"github.com/fogleman/delaunay"
	"github.com/pkg/errors"

	"dendrite/pkg/core"
	"dendrite/pkg/growth"
	"dendrite/pkg/interp"
)

// Builder accumulates sites inside a bounding rectangle and turns them
// into a network. Failures in intermediate stages stick to the builder
// and surface from Build, so stages chain without per-call checks.
type Builder struct {
	sites  []core.Site
	boundX float64
	boundY float64
	err    error
}

// New scatters count sites uniformly over [0,boundX) x [0,boundY).
// The seed fully determines the scatter.
func New(count int, boundX, boundY float64, seed int64) *Builder {
	rng := core.NewRNG(seed)
	sites := make([]core.Site, count)
	for i := range sites {
		sites[i] = core.Site{
			X: rng.FloatRange(0, boundX),
			Y: rng.FloatRange(0, boundY),
		}
	}
	return &Builder{sites: sites, boundX: boundX, boundY: boundY}
}

// NewWithConfig runs the pipeline the config describes: scatter,
// boundary sites, relaxation. Call Build on the result to obtain the
// network.
func NewWithConfig(cfg Config) *Builder {
	return New(cfg.Count, cfg.BoundX, cfg.BoundY, cfg.Seed).
		AddEdgeSites(cfg.EdgeSitesX, cfg.EdgeSitesY).
		Relax(cfg.Relax)
}

// AddEdgeSites appends evenly spaced sites along the four boundary
// edges, walking the corners in order so each corner appears exactly
// once. numX counts sites per horizontal edge, numY per vertical edge;
// zero or negative picks a count from the current site density,
// square-root scaled to the edge length.
func (b *Builder) AddEdgeSites(numX, numY int) *Builder {
	if b.err != nil {
		return b
	}
	corners := [4]core.Site{
		{X: 0, Y: 0},
		{X: 0, Y: b.boundY},
		{X: b.boundX, Y: b.boundY},
		{X: b.boundX, Y: 0},
	}
	autoX := int(math.Sqrt(float64(len(b.sites)) / b.boundY * b.boundX))
	autoY := int(math.Sqrt(float64(len(b.sites)) / b.boundX * b.boundY))
	for i, corner := range corners {
		next := corners[(i+1)%len(corners)]
		num := numY
		auto := autoY
		if i%2 == 1 {
			num = numX
			auto = autoX
		}
		if num <= 0 {
			num = auto
		}
		for j := 0; j < num; j++ {
			t := float64(j) / float64(num)
			b.sites = append(b.sites, core.Site{
				X: corner.X*(1-t) + next.X*t,
				Y: corner.Y*(1-t) + next.Y*t,
			})
		}
	}
	return b
}

// Relax applies times rounds of Lloyd-style relaxation: every site
// moves to the mean of its incident triangles' circumcenters, with
// circumcenters clamped to the bounds. Zero rounds leave the sites
// untouched.
func (b *Builder) Relax(times int) *Builder {
	if b.err != nil {
		return b
	}
	for round := 0; round < times; round++ {
		pts := b.points()
		tri, err := delaunay.Triangulate(pts)
		if err != nil {
			b.err = errors.Wrap(err, "builder: relax triangulation")
			return b
		}
		sumX := make([]float64, len(b.sites))
		sumY := make([]float64, len(b.sites))
		counts := make([]int, len(b.sites))
		for t := 0; t < len(tri.Triangles); t += 3 {
			v0 := tri.Triangles[t]
			v1 := tri.Triangles[t+1]
			v2 := tri.Triangles[t+2]
			cx, cy := circumcenter(pts[v0], pts[v1], pts[v2])
			cx = clamp(cx, 0, b.boundX)
			cy = clamp(cy, 0, b.boundY)
			for _, v := range [3]int{v0, v1, v2} {
				sumX[v] += cx
				sumY[v] += cy
				counts[v]++
			}
		}
		for i := range b.sites {
			if counts[i] > 0 {
				b.sites[i] = core.Site{
					X: sumX[i] / float64(counts[i]),
					Y: sumY[i] / float64(counts[i]),
				}
			}
		}
	}
	return b
}

// Build triangulates the accumulated sites, reduces the triangles to a
// deduplicated undirected graph, and wires a network with a fresh
// interpolator over the same sites.
func (b *Builder) Build() (*growth.Network, error) {
	if b.err != nil {
		return nil, b.err
	}
	tri, err := delaunay.Triangulate(b.points())
	if err != nil {
		return nil, errors.Wrap(err, "builder: triangulate sites")
	}
	graph := core.NewUndirectedGraph(len(b.sites))
	for t := 0; t < len(tri.Triangles); t += 3 {
		v0 := tri.Triangles[t]
		v1 := tri.Triangles[t+1]
		v2 := tri.Triangles[t+2]
		// Triangles share one winding, so each interior edge shows up
		// in ascending vertex order exactly once across the mesh.
		if v0 < v1 {
			graph.AddEdge(v0, v1)
		}
		if v1 < v2 {
			graph.AddEdge(v1, v2)
		}
		if v2 < v0 {
			graph.AddEdge(v2, v0)
		}
	}
	querier, err := interp.New(b.sites)
	if err != nil {
		return nil, errors.Wrap(err, "builder: interpolator")
	}
	return growth.New(b.sites, graph, querier)
}

// Sites returns the accumulated sites. The slice is shared with the
// builder and, after Build, with the network.
func (b *Builder) Sites() []core.Site { return b.sites }

// Bounds returns the generation rectangle.
func (b *Builder) Bounds() (float64, float64) { return b.boundX, b.boundY }

func (b *Builder) points() []delaunay.Point {
	pts := make([]delaunay.Point, len(b.sites))
	for i, s := range b.sites {
		pts[i] = delaunay.Point{X: s.X, Y: s.Y}
	}
	return pts
}

// circumcenter returns the circumcenter of triangle abc, falling back
// to the centroid when the triangle has no area.
func circumcenter(a, b, c delaunay.Point) (float64, float64) {
	abx := b.X - a.X
	aby := b.Y - a.Y
	acx := c.X - a.X
	acy := c.Y - a.Y
	d := 2 * (abx*acy - aby*acx)
	if d == 0 {
		return (a.X + b.X + c.X) / 3, (a.Y + b.Y + c.Y) / 3
	}
	abLen := abx*abx + aby*aby
	acLen := acx*acx + acy*acy
	ux := (acy*abLen - aby*acLen) / d
	uy := (abx*acLen - acx*abLen) / d
	return a.X + ux, a.Y + uy
}

func clamp(v, lo, hi float64) float64 {
	return math.Min(math.Max(v, lo), hi)
}
