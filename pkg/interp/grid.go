package interp

import (
	"math"

	"github.com/fogleman/delaunay"
)

// insideEps tolerates floating error in the containment test; points
// within this margin of a triangle edge still count as inside.
const insideEps = -1e-9

// triangleGrid buckets triangle indices into uniform cells over the
// triangulation's bounding box, so locating a point scans a handful of
// candidate triangles instead of all of them.
type triangleGrid struct {
	points    []delaunay.Point
	triangles []int

	minX, minY float64
	maxX, maxY float64
	cellSize   float64
	gridW      int
	gridH      int
	cells      [][]int
}

func newTriangleGrid(points []delaunay.Point, triangles []int) *triangleGrid {
	minX, minY := math.Inf(1), math.Inf(1)
	maxX, maxY := math.Inf(-1), math.Inf(-1)
	for _, p := range points {
		minX = math.Min(minX, p.X)
		minY = math.Min(minY, p.Y)
		maxX = math.Max(maxX, p.X)
		maxY = math.Max(maxY, p.Y)
	}

	triCount := len(triangles) / 3
	width := maxX - minX
	height := maxY - minY
	// Cells near twice the mean triangle extent keep candidate lists short
	// without exploding the cell count.
	cellSize := 0.0
	if triCount > 0 {
		cellSize = 2 * math.Sqrt(width*height/float64(triCount))
	}
	if cellSize <= 0 || math.IsNaN(cellSize) {
		cellSize = 1
	}
	gridW := int(math.Ceil(width / cellSize))
	if gridW <= 0 {
		gridW = 1
	}
	gridH := int(math.Ceil(height / cellSize))
	if gridH <= 0 {
		gridH = 1
	}

	g := &triangleGrid{
		points:    points,
		triangles: triangles,
		minX:      minX,
		minY:      minY,
		maxX:      maxX,
		maxY:      maxY,
		cellSize:  cellSize,
		gridW:     gridW,
		gridH:     gridH,
		cells:     make([][]int, gridW*gridH),
	}

	for ti := 0; ti < triCount; ti++ {
		a := points[triangles[3*ti]]
		b := points[triangles[3*ti+1]]
		c := points[triangles[3*ti+2]]

		triMinX := math.Min(a.X, math.Min(b.X, c.X))
		triMaxX := math.Max(a.X, math.Max(b.X, c.X))
		triMinY := math.Min(a.Y, math.Min(b.Y, c.Y))
		triMaxY := math.Max(a.Y, math.Max(b.Y, c.Y))

		cellMinX := g.clampX(int((triMinX - minX) / cellSize))
		cellMaxX := g.clampX(int((triMaxX - minX) / cellSize))
		cellMinY := g.clampY(int((triMinY - minY) / cellSize))
		cellMaxY := g.clampY(int((triMaxY - minY) / cellSize))

		for cy := cellMinY; cy <= cellMaxY; cy++ {
			for cx := cellMinX; cx <= cellMaxX; cx++ {
				idx := cy*gridW + cx
				g.cells[idx] = append(g.cells[idx], ti)
			}
		}
	}
	return g
}

func (g *triangleGrid) clampX(cx int) int {
	if cx < 0 {
		return 0
	}
	if cx >= g.gridW {
		return g.gridW - 1
	}
	return cx
}

func (g *triangleGrid) clampY(cy int) int {
	if cy < 0 {
		return 0
	}
	if cy >= g.gridH {
		return g.gridH - 1
	}
	return cy
}

// locate returns the triangle containing (x, y) and the barycentric
// weights of the point inside it. The last result is false outside the
// grid or when no candidate triangle contains the point.
func (g *triangleGrid) locate(x, y float64) (int, float64, float64, float64, bool) {
	if x < g.minX || x > g.maxX || y < g.minY || y > g.maxY {
		return 0, 0, 0, 0, false
	}
	cx := g.clampX(int((x - g.minX) / g.cellSize))
	cy := g.clampY(int((y - g.minY) / g.cellSize))

	p := delaunay.Point{X: x, Y: y}
	for _, ti := range g.cells[cy*g.gridW+cx] {
		a := g.points[g.triangles[3*ti]]
		b := g.points[g.triangles[3*ti+1]]
		c := g.points[g.triangles[3*ti+2]]
		wa, wb, wc, inside := barycentric(p, a, b, c)
		if inside {
			return ti, wa, wb, wc, true
		}
	}
	return 0, 0, 0, 0, false
}

// barycentric returns p's weights with respect to triangle abc and
// whether p lies inside it, within insideEps of the edges. A zero-area
// triangle contains nothing.
func barycentric(p, a, b, c delaunay.Point) (float64, float64, float64, bool) {
	den := (b.Y-c.Y)*(a.X-c.X) + (c.X-b.X)*(a.Y-c.Y)
	if den == 0 {
		return 0, 0, 0, false
	}
	wa := ((b.Y-c.Y)*(p.X-c.X) + (c.X-b.X)*(p.Y-c.Y)) / den
	wb := ((c.Y-a.Y)*(p.X-c.X) + (a.X-c.X)*(p.Y-c.Y)) / den
	wc := 1 - wa - wb
	inside := wa >= insideEps && wb >= insideEps && wc >= insideEps
	return wa, wb, wc, inside
}
