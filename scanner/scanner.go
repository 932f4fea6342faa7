// Package scanner walks a source tree and folds the include directives
// of every recognized file into a dependency graph.
package scanner

import (
	"bufio"
	"context"
	"fmt"
	"github.com/SLAPaper/CppIncludeGraph/graph"
	"github.com/viant/afs"
	"github.com/viant/afs/storage"
	"io"
	"os"
	"path"
	"unicode/utf8"
)

// maxLine bounds a single scanned line; longer lines are treated like
// undecodable input and end that file's scan.
const maxLine = 1 << 20

// Result is the outcome of a tree scan.
type Result struct {
	// Graph holds one edge per (file, include target) pair found.
	Graph *graph.Graph
	// Files counts the files visited.
	Files int
	// Truncated counts files abandoned mid-way on undecodable content.
	Truncated int
}

// Scanner builds include graphs from source trees.
type Scanner struct {
	fs afs.Service
}

// New creates a scanner backed by the abstract file service.
func New() *Scanner {
	return &Scanner{fs: afs.New()}
}

// ScanTree walks root recursively and scans every file carrying a
// recognized suffix. Scanned files are identified by their slash
// separated path relative to root; include targets by their raw
// directive text. Only directives create nodes, so a file that includes
// nothing and is included by nothing does not appear in the graph.
func (s *Scanner) ScanTree(ctx context.Context, root string) (*Result, error) {
	object, err := s.fs.Object(ctx, root)
	if err != nil {
		return nil, fmt.Errorf("scan root %v: %w", root, err)
	}
	if !object.IsDir() {
		return nil, fmt.Errorf("scan root %v: not a directory", root)
	}
	result := &Result{Graph: graph.New()}
	var visitor storage.OnVisit = func(ctx context.Context, baseURL, parent string, info os.FileInfo, reader io.Reader) (bool, error) {
		if info.IsDir() {
			return true, nil
		}
		if !graph.HasRecognizedSuffix(info.Name()) {
			return true, nil
		}
		identity := path.Join(parent, info.Name())
		result.Files++
		targets, clean := scanIncludes(reader)
		if !clean {
			result.Truncated++
		}
		for _, target := range targets {
			result.Graph.AddEdge(identity, target)
		}
		return true, nil
	}
	if err := s.fs.Walk(ctx, root, visitor); err != nil {
		return nil, fmt.Errorf("walk %v: %w", root, err)
	}
	return result, nil
}

// scanIncludes reads one file line by line and collects include targets.
// The first undecodable or overlong line ends the scan of that file;
// clean is false then, and targets collected before it are kept.
func scanIncludes(reader io.Reader) (targets []string, clean bool) {
	lines := bufio.NewScanner(reader)
	lines.Buffer(make([]byte, 0, 64*1024), maxLine)
	for lines.Scan() {
		if !utf8.Valid(lines.Bytes()) {
			return targets, false
		}
		if target, ok := ParseLine(lines.Text()); ok {
			targets = append(targets, target)
		}
	}
	if err := lines.Err(); err != nil {
		return targets, false
	}
	return targets, true
}
