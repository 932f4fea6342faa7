// Package graph holds the include-dependency graph model and the pure
// transforms applied to it: reachability extraction, header/source
// merging and render-record derivation.
package graph

// Edge is an ordered includer to included pair.
type Edge struct {
	From string
	To   string
}

// Graph is a directed graph over string node identities with unique-edge
// semantics: inserting an existing edge is a no-op. Nodes and edges keep
// insertion order so derived outputs stay deterministic.
type Graph struct {
	nodes   []string
	nodeSet map[string]struct{}
	edges   []Edge
	edgeSet map[Edge]struct{}
	succ    map[string][]string
	inDeg   map[string]int
}

// New creates an empty graph.
func New() *Graph {
	return &Graph{
		nodeSet: map[string]struct{}{},
		edgeSet: map[Edge]struct{}{},
		succ:    map[string][]string{},
		inDeg:   map[string]int{},
	}
}

// AddNode inserts a node unless it is already present.
func (g *Graph) AddNode(id string) {
	if _, ok := g.nodeSet[id]; ok {
		return
	}
	g.nodeSet[id] = struct{}{}
	g.nodes = append(g.nodes, id)
}

// AddEdge inserts a directed edge, creating missing endpoints. Duplicate
// edges are ignored.
func (g *Graph) AddEdge(from, to string) {
	edge := Edge{From: from, To: to}
	if _, ok := g.edgeSet[edge]; ok {
		return
	}
	g.AddNode(from)
	g.AddNode(to)
	g.edgeSet[edge] = struct{}{}
	g.edges = append(g.edges, edge)
	g.succ[from] = append(g.succ[from], to)
	g.inDeg[to]++
}

// HasNode reports whether id is a node of the graph.
func (g *Graph) HasNode(id string) bool {
	_, ok := g.nodeSet[id]
	return ok
}

// HasEdge reports whether the edge from -> to is present.
func (g *Graph) HasEdge(from, to string) bool {
	_, ok := g.edgeSet[Edge{From: from, To: to}]
	return ok
}

// Nodes returns the node identities in insertion order.
func (g *Graph) Nodes() []string {
	out := make([]string, len(g.nodes))
	copy(out, g.nodes)
	return out
}

// Edges returns the edges in insertion order.
func (g *Graph) Edges() []Edge {
	out := make([]Edge, len(g.edges))
	copy(out, g.edges)
	return out
}

// Successors returns the direct include targets of id in insertion order.
func (g *Graph) Successors(id string) []string {
	out := make([]string, len(g.succ[id]))
	copy(out, g.succ[id])
	return out
}

// Degree returns the total in plus out degree of id. A self-loop counts
// twice.
func (g *Graph) Degree(id string) int {
	return len(g.succ[id]) + g.inDeg[id]
}

// NodeCount returns the number of nodes.
func (g *Graph) NodeCount() int { return len(g.nodes) }

// EdgeCount returns the number of edges.
func (g *Graph) EdgeCount() int { return len(g.edges) }
