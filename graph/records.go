package graph

import "math"

// SizeFactor scales the log-compressed degree used for node sizing.
const SizeFactor = 3

// Node is a render-facing node record.
type Node struct {
	Name     string `json:"name" yaml:"name"`
	Category int    `json:"category" yaml:"category"`
	Size     int    `json:"size" yaml:"size"`
}

// Link is a render-facing edge record.
type Link struct {
	Source string `json:"source" yaml:"source"`
	Target string `json:"target" yaml:"target"`
}

// RecordSet is the complete surface handed to a renderer: nodes, links
// and the category legend. All of it is derived; none of it is shared
// with the graph it came from.
type RecordSet struct {
	Nodes      []Node   `json:"nodes" yaml:"nodes"`
	Links      []Link   `json:"links" yaml:"links"`
	Categories []string `json:"categories" yaml:"categories"`
}

// Records derives the render record set for g. When showSuffix is false,
// recognized suffixes are stripped from node names and from both link
// endpoints, so links stay joinable to nodes.
func Records(g *Graph, showSuffix bool) *RecordSet {
	name := func(id string) string {
		if showSuffix {
			return id
		}
		return Stem(id)
	}
	set := &RecordSet{Nodes: []Node{}, Links: []Link{}, Categories: CategoryLabels()}
	for _, id := range g.Nodes() {
		set.Nodes = append(set.Nodes, Node{
			Name:     name(id),
			Category: int(Categorize(id)),
			Size:     NodeSize(g.Degree(id)),
		})
	}
	for _, edge := range g.Edges() {
		set.Links = append(set.Links, Link{Source: name(edge.From), Target: name(edge.To)})
	}
	return set
}

// NodeSize maps a degree onto a symbol size, log-compressed so hub nodes
// do not dwarf the chart. Isolated nodes get the minimum size of 1.
func NodeSize(degree int) int {
	return int(math.Floor(SizeFactor*math.Log1p(float64(degree)))) + 1
}
