package main

import (
	"context"
	"encoding/json"
	"errors"
	"github.com/SLAPaper/CppIncludeGraph/graph"
	"github.com/SLAPaper/CppIncludeGraph/render"
	"github.com/stretchr/testify/assert"
	"os"
	"path/filepath"
	"testing"
)

// demoTree is a source tree where main.cpp has a same-stem header and
// util.cpp is not reachable from the entry, so the rendered node set
// tells apart every combination of extraction and merging.
func demoTree() map[string]string {
	return map[string]string{
		"CMakeLists.txt": "project(DemoTool)\n",
		"main.cpp":       "#include \"main.h\"\n#include \"util.h\"\n#include <vector>\n",
		"util.cpp":       "#include \"util.h\"\n",
		"stray.cpp":      "#include \"lone.h\"\n",
	}
}

func writeTree(t *testing.T, root string, files map[string]string) {
	t.Helper()
	for name, content := range files {
		target := filepath.Join(root, filepath.FromSlash(name))
		assert.NoError(t, os.MkdirAll(filepath.Dir(target), 0o755))
		assert.NoError(t, os.WriteFile(target, []byte(content), 0o644))
	}
}

// defaultOptions mirrors the command's flag defaults.
func defaultOptions(out string) *options {
	return &options{out: out, entryFile: "main.cpp", repulsion: 1000}
}

func readDocument(t *testing.T, path string) *render.Document {
	t.Helper()
	data, err := os.ReadFile(path)
	if !assert.NoError(t, err) {
		t.FailNow()
	}
	document := &render.Document{}
	assert.NoError(t, json.Unmarshal(data, document))
	return document
}

func nodeNames(document *render.Document) []string {
	names := make([]string, 0, len(document.Nodes))
	for _, node := range document.Nodes {
		names = append(names, node.Name)
	}
	return names
}

func TestRun_Pipeline(t *testing.T) {
	tests := []struct {
		description string
		mutate      func(*options)
		expectNames []string
		expectLinks []graph.Link
	}{
		{
			description: "default run extracts the entry closure before merging",
			mutate:      func(*options) {},
			// util.h keeps its own node: its source sibling is outside
			// the entry closure, so no pair forms after extraction.
			expectNames: []string{"[merged]main", "util", "vector"},
			expectLinks: []graph.Link{
				{Source: "[merged]main", Target: "[merged]main"},
				{Source: "[merged]main", Target: "util"},
				{Source: "[merged]main", Target: "vector"},
			},
		},
		{
			description: "all renders every scanned file and pairs merge tree wide",
			mutate:      func(o *options) { o.all = true },
			expectNames: []string{"[merged]main", "[merged]util", "stray", "lone", "vector"},
			expectLinks: []graph.Link{
				{Source: "[merged]main", Target: "[merged]main"},
				{Source: "[merged]main", Target: "[merged]util"},
				{Source: "[merged]main", Target: "vector"},
				{Source: "[merged]util", Target: "[merged]util"},
				{Source: "stray", Target: "lone"},
			},
		},
		{
			description: "nomerge keeps header and source nodes apart",
			mutate:      func(o *options) { o.all = true; o.noMerge = true; o.showSuffix = true },
			expectNames: []string{"main.cpp", "main.h", "util.cpp", "util.h", "stray.cpp", "lone.h", "vector"},
			expectLinks: []graph.Link{
				{Source: "main.cpp", Target: "main.h"},
				{Source: "main.cpp", Target: "util.h"},
				{Source: "main.cpp", Target: "vector"},
				{Source: "util.cpp", Target: "util.h"},
				{Source: "stray.cpp", Target: "lone.h"},
			},
		},
	}
	for _, tc := range tests {
		t.Run(tc.description, func(t *testing.T) {
			root := t.TempDir()
			writeTree(t, root, demoTree())
			out := t.TempDir()
			opts := defaultOptions(out)
			opts.export = filepath.Join(out, "records.json")
			tc.mutate(opts)

			err := run(context.Background(), root, opts)
			if !assert.NoError(t, err) {
				return
			}

			document := readDocument(t, opts.export)
			assert.Equal(t, "DemoTool", document.Project)
			assert.ElementsMatch(t, tc.expectNames, nodeNames(document))
			assert.ElementsMatch(t, tc.expectLinks, document.Links)
			assert.Equal(t, graph.CategoryLabels(), document.Categories)
			assert.NotZero(t, document.Digest)

			page, err := os.ReadFile(filepath.Join(out, render.DefaultFileName))
			if assert.NoError(t, err) {
				assert.Contains(t, string(page), "DemoTool")
				assert.Contains(t, string(page), "vector")
			}
		})
	}
}

func TestRun_MissingEntry(t *testing.T) {
	root := t.TempDir()
	writeTree(t, root, map[string]string{
		"CMakeLists.txt": "project(DemoTool)\n",
		"util.cpp":       "#include \"util.h\"\n",
	})
	out := t.TempDir()

	err := run(context.Background(), root, defaultOptions(out))
	assert.True(t, errors.Is(err, graph.ErrEntryNotFound))
	assert.Contains(t, err.Error(), "main.cpp")
	assert.Contains(t, err.Error(), "--all")

	// nothing is rendered when extraction fails
	entries, err := os.ReadDir(out)
	if assert.NoError(t, err) {
		assert.Empty(t, entries)
	}
}

func TestRun_TitleFallsBackToRoot(t *testing.T) {
	// No marker anywhere up the temp tree, so the chart is titled after
	// the scan root itself.
	root := t.TempDir()
	writeTree(t, root, map[string]string{
		"main.cpp": "#include <vector>\n",
	})
	out := t.TempDir()
	opts := defaultOptions(out)
	opts.export = filepath.Join(out, "records.json")

	err := run(context.Background(), root, opts)
	if !assert.NoError(t, err) {
		return
	}
	assert.Equal(t, filepath.Base(root), readDocument(t, opts.export).Project)
}

func TestNewCommand_Defaults(t *testing.T) {
	root := t.TempDir()
	writeTree(t, root, demoTree())
	out := t.TempDir()
	export := filepath.Join(out, "records.json")

	cmd := newCommand()
	cmd.SetArgs([]string{root, "--out", out, "--export", export})
	if !assert.NoError(t, cmd.ExecuteContext(context.Background())) {
		return
	}

	names := nodeNames(readDocument(t, export))
	assert.Contains(t, names, "[merged]main")
	assert.NotContains(t, names, "stray")
}

func TestNewCommand_FlagWiring(t *testing.T) {
	root := t.TempDir()
	writeTree(t, root, demoTree())
	out := t.TempDir()
	export := filepath.Join(out, "records.json")

	cmd := newCommand()
	cmd.SetArgs([]string{
		root, "--out", out, "--all", "--nomerge", "--showsuffix",
		"--forcerepulsion", "400", "--export", export,
	})
	if !assert.NoError(t, cmd.ExecuteContext(context.Background())) {
		return
	}

	names := nodeNames(readDocument(t, export))
	assert.Contains(t, names, "main.cpp")
	assert.Contains(t, names, "stray.cpp")
	for _, name := range names {
		assert.NotContains(t, name, graph.MergedPrefix)
	}
}
