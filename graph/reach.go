package graph

import (
	"errors"
	"fmt"
)

// ErrEntryNotFound reports a reachability entry that is not a node of the
// graph. Callers match it with errors.Is.
var ErrEntryNotFound = errors.New("entry node not found")

// Reachable returns the induced subgraph of entry plus every node
// reachable from it along forward edges. The closure is computed
// breadth-first with a seen set, so cyclic graphs terminate and each node
// is visited once however many paths reach it. An entry with no
// descendants yields a single-node graph without error.
func Reachable(g *Graph, entry string) (*Graph, error) {
	if !g.HasNode(entry) {
		return nil, fmt.Errorf("%w: %q", ErrEntryNotFound, entry)
	}
	seen := map[string]struct{}{entry: {}}
	queue := []string{entry}
	for len(queue) > 0 {
		id := queue[0]
		queue = queue[1:]
		for _, next := range g.succ[id] {
			if _, ok := seen[next]; ok {
				continue
			}
			seen[next] = struct{}{}
			queue = append(queue, next)
		}
	}
	sub := New()
	for _, id := range g.nodes {
		if _, ok := seen[id]; ok {
			sub.AddNode(id)
		}
	}
	for _, edge := range g.edges {
		if _, ok := seen[edge.From]; !ok {
			continue
		}
		if _, ok := seen[edge.To]; !ok {
			continue
		}
		sub.AddEdge(edge.From, edge.To)
	}
	return sub, nil
}
