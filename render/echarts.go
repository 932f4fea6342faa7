// Package render turns graph record sets into deliverables: a
// force-directed HTML chart and a digest-stamped JSON document.
package render

import (
	"fmt"
	"github.com/SLAPaper/CppIncludeGraph/graph"
	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"
	"io"
	"os"
	"path/filepath"
)

// DefaultFileName is written when the output path is an existing
// directory.
const DefaultFileName = "render.html"

// Options carry the rendering knobs the pipeline passes through
// unmodified.
type Options struct {
	// Title labels the chart and the HTML page.
	Title string
	// Repulsion is handed to the force layout as-is, never interpreted.
	Repulsion int
}

// WriteHTML renders records as a self-contained force-directed graph
// page.
func WriteHTML(records *graph.RecordSet, w io.Writer, options Options) error {
	chart := charts.NewGraph()
	chart.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{
			PageTitle: options.Title,
			Width:     "100vw",
			Height:    "100vh",
		}),
		charts.WithTitleOpts(opts.Title{Title: options.Title}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(false)}),
		charts.WithLegendOpts(opts.Legend{Show: opts.Bool(true), Data: records.Categories}),
	)

	nodes := make([]opts.GraphNode, 0, len(records.Nodes))
	for _, node := range records.Nodes {
		nodes = append(nodes, opts.GraphNode{
			Name:       node.Name,
			Category:   node.Category,
			SymbolSize: float32(node.Size),
		})
	}
	links := make([]opts.GraphLink, 0, len(records.Links))
	for _, link := range records.Links {
		links = append(links, opts.GraphLink{Source: link.Source, Target: link.Target})
	}
	categories := make([]*opts.GraphCategory, 0, len(records.Categories))
	for _, label := range records.Categories {
		categories = append(categories, &opts.GraphCategory{Name: label})
	}

	chart.AddSeries("", nodes, links,
		charts.WithGraphChartOpts(opts.GraphChart{
			Layout:     "force",
			Force:      &opts.GraphForce{Repulsion: float32(options.Repulsion)},
			Categories: categories,
			Roam:       opts.Bool(true),
			Draggable:  opts.Bool(true),
			EdgeSymbol: []string{"none", "arrow"},
		}),
		charts.WithLabelOpts(opts.Label{Show: opts.Bool(true)}),
	)
	return chart.Render(w)
}

// WriteHTMLFile renders records into outPath and returns the path
// actually written. An existing directory receives DefaultFileName
// inside it.
func WriteHTMLFile(records *graph.RecordSet, outPath string, options Options) (string, error) {
	target := outPath
	if info, err := os.Stat(outPath); err == nil && info.IsDir() {
		target = filepath.Join(outPath, DefaultFileName)
	}
	file, err := os.Create(target)
	if err != nil {
		return "", fmt.Errorf("create %v: %w", target, err)
	}
	defer file.Close()
	if err := WriteHTML(records, file, options); err != nil {
		return "", fmt.Errorf("render %v: %w", target, err)
	}
	return target, nil
}
