package graph

// MergeHeaders returns a new graph in which every node whose stem is
// shared by a header/source sibling is replaced by the synthetic
// [merged] identity, both as a node and on every edge endpoint.
// Identities without a recognized suffix never merge: they neither count
// toward a stem's eligibility nor get remapped. Nodes and edges the
// merge does not rewrite are copied through unchanged, so a graph with
// no eligible stems comes back with the same nodes and edges.
func MergeHeaders(g *Graph) *Graph {
	eligible := map[string]bool{}
	for _, id := range g.nodes {
		stem, ok := splitSuffix(id)
		if !ok {
			continue
		}
		_, seen := eligible[stem]
		eligible[stem] = seen
	}
	merged := New()
	for _, id := range g.nodes {
		merged.AddNode(mergedName(id, eligible))
	}
	for _, edge := range g.edges {
		merged.AddEdge(mergedName(edge.From, eligible), mergedName(edge.To, eligible))
	}
	return merged
}

func mergedName(id string, eligible map[string]bool) string {
	if stem, ok := splitSuffix(id); ok && eligible[stem] {
		return MergedPrefix + stem
	}
	return id
}
