// Command includegraph scans a C++ source tree for #include directives,
// builds a directed dependency graph and renders it as a force-directed
// HTML chart.
//
// Usage:
//
//	includegraph path/to/sources
//	includegraph path/to/sources --entryfile src/main.cpp --out deps.html
//	includegraph path/to/sources --all --nomerge --export records.json
package main

import (
	"context"
	"errors"
	"fmt"
	"github.com/SLAPaper/CppIncludeGraph/graph"
	"github.com/SLAPaper/CppIncludeGraph/render"
	"github.com/SLAPaper/CppIncludeGraph/repository"
	"github.com/SLAPaper/CppIncludeGraph/scanner"
	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"path/filepath"
)

type options struct {
	out        string
	entryFile  string
	all        bool
	noMerge    bool
	showSuffix bool
	repulsion  int
	export     string
	verbose    bool
}

func newCommand() *cobra.Command {
	opts := &options{}
	cmd := &cobra.Command{
		Use:   "includegraph <path>",
		Short: "Render the include graph of a C++ source tree",
		Long: "includegraph scans a source tree for #include directives, builds a\n" +
			"directed dependency graph and renders it as a force-directed HTML chart.",
		Args:          cobra.ExactArgs(1),
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			return run(cmd.Context(), args[0], opts)
		},
	}
	flags := cmd.Flags()
	flags.StringVar(&opts.out, "out", ".", "output path for the HTML chart; a directory receives "+render.DefaultFileName)
	flags.StringVar(&opts.entryFile, "entryfile", "main.cpp", "entry node for reachability extraction")
	flags.BoolVar(&opts.all, "all", false, "render the whole graph instead of the entry file's descendants")
	flags.BoolVar(&opts.noMerge, "nomerge", false, "keep header and source files as separate nodes")
	flags.BoolVar(&opts.showSuffix, "showsuffix", false, "keep file suffixes in node labels")
	flags.IntVar(&opts.repulsion, "forcerepulsion", 1000, "repulsion strength of the force layout")
	flags.StringVar(&opts.export, "export", "", "also write the render records as JSON to this file")
	flags.BoolVar(&opts.verbose, "verbose", false, "enable debug logging")
	return cmd
}

func run(ctx context.Context, root string, opts *options) error {
	if opts.verbose {
		log.SetLevel(log.DebugLevel)
	}

	result, err := scanner.New().ScanTree(ctx, root)
	if err != nil {
		return err
	}
	g := result.Graph
	log.Info("tree scanned", "files", result.Files, "nodes", g.NodeCount(), "edges", g.EdgeCount())
	if result.Truncated > 0 {
		log.Warn("skipped undecodable content", "files", result.Truncated)
	}

	project, err := repository.New().DetectProject(ctx, root)
	if err != nil {
		return err
	}
	title := project.Name
	if title == "" {
		title = filepath.Base(project.RootPath)
	}
	log.Debug("project detected", "type", project.Type, "name", title, "root", project.RootPath)

	if !opts.all {
		g, err = graph.Reachable(g, opts.entryFile)
		if err != nil {
			if errors.Is(err, graph.ErrEntryNotFound) {
				return fmt.Errorf("%w; pass --all for the whole graph or --entryfile to pick another entry", err)
			}
			return err
		}
		log.Debug("reachable subgraph extracted", "entry", opts.entryFile, "nodes", g.NodeCount(), "edges", g.EdgeCount())
	}
	if !opts.noMerge {
		g = graph.MergeHeaders(g)
		log.Debug("header and source nodes merged", "nodes", g.NodeCount(), "edges", g.EdgeCount())
	}

	records := graph.Records(g, opts.showSuffix)
	written, err := render.WriteHTMLFile(records, opts.out, render.Options{Title: title, Repulsion: opts.repulsion})
	if err != nil {
		return err
	}
	log.Info("chart rendered", "path", written)

	if opts.export != "" {
		document, err := render.NewDocument(records, title)
		if err != nil {
			return err
		}
		if err := document.WriteJSONFile(opts.export); err != nil {
			return err
		}
		log.Info("records exported", "path", opts.export)
	}
	return nil
}

func main() {
	if err := newCommand().ExecuteContext(context.Background()); err != nil {
		log.Fatal(err)
	}
}
