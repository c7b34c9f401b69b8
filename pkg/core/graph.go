package core

// UndirectedGraph is a symmetric adjacency relation over site indices,
// built once by the site/graph builder and read-only afterward. Each
// site's neighbors keep their insertion order; parent election and child
// lookup in the automaton depend on that order staying fixed.
type UndirectedGraph struct {
	adjacency [][]int
	edges     int
}

// NewUndirectedGraph returns an empty graph spanning n sites.
func NewUndirectedGraph(n int) *UndirectedGraph {
	return &UndirectedGraph{adjacency: make([][]int, n)}
}

// AddEdge connects i and j in both directions. Self-loops are ignored.
// Deduplication is the caller's job; the triangulation reduction adds
// each undirected pair exactly once.
func (g *UndirectedGraph) AddEdge(i, j int) {
	if i == j {
		return
	}
	g.adjacency[i] = append(g.adjacency[i], j)
	g.adjacency[j] = append(g.adjacency[j], i)
	g.edges++
}

// Neighbors returns i's adjacency in insertion order. The slice is
// shared with the graph; callers must not modify it.
func (g *UndirectedGraph) Neighbors(i int) []int {
	return g.adjacency[i]
}

// Degree returns the number of neighbors of i.
func (g *UndirectedGraph) Degree(i int) int {
	return len(g.adjacency[i])
}

// Len returns the number of sites the graph spans.
func (g *UndirectedGraph) Len() int {
	return len(g.adjacency)
}

// EdgeCount returns the number of undirected edges added so far.
func (g *UndirectedGraph) EdgeCount() int {
	return g.edges
}
