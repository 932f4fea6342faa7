// Package repository locates the project enclosing a scan root so the
// rendered chart can be titled after it.
package repository

import (
	"context"
	"fmt"
	"github.com/viant/afs"
	"golang.org/x/mod/modfile"
	"os"
	"path"
	"path/filepath"
	"regexp"
)

// Detector identifies project root folders and extracts project names.
type Detector struct {
	fs afs.Service
	// Project root marker files/directories, highest priority first
	markers []string
}

// New creates a detector recognizing common C/C++ build markers plus
// generic fallbacks.
func New() *Detector {
	return &Detector{
		fs: afs.New(),
		markers: []string{
			"CMakeLists.txt",        // CMake projects
			"compile_commands.json", // clang tooling export
			"Makefile",              // plain make
			"go.mod",                // Go projects carrying C++ sources
			".git",                  // generic VCS marker
		},
	}
}

// DetectProject searches up from root for the nearest project marker and
// returns the project info. When nothing matches, Type is "unknown" and
// Name stays empty; a missing marker is never an error.
func (d *Detector) DetectProject(ctx context.Context, root string) (*Project, error) {
	absPath, err := filepath.Abs(root)
	if err != nil {
		return nil, err
	}
	info, err := os.Stat(absPath)
	if err != nil {
		return nil, fmt.Errorf("detect project %v: %w", root, err)
	}
	startDir := absPath
	if !info.IsDir() {
		startDir = filepath.Dir(absPath)
	}

	project := &Project{Type: "unknown", RootPath: absPath}
	rootPath, marker := d.findProjectRoot(startDir)
	if rootPath == "" {
		return project, nil
	}
	project.RootPath = rootPath
	project.Type = projectType(marker)
	project.Name = d.extractProjectName(ctx, rootPath, marker)
	return project, nil
}

// findProjectRoot searches up the directory tree for the first marker hit.
func (d *Detector) findProjectRoot(startDir string) (string, string) {
	dir := startDir
	for {
		for _, marker := range d.markers {
			if _, err := os.Stat(filepath.Join(dir, marker)); err == nil {
				return dir, marker
			}
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			// Reached the filesystem root with no match
			break
		}
		dir = parent
	}
	return "", ""
}

func (d *Detector) extractProjectName(ctx context.Context, rootPath, marker string) string {
	switch marker {
	case "CMakeLists.txt":
		return d.extractCMakeProjectName(ctx, filepath.Join(rootPath, marker))
	case "go.mod":
		return d.extractGoModuleName(ctx, filepath.Join(rootPath, marker))
	default:
		return filepath.Base(rootPath)
	}
}

var cmakeProjectPattern = regexp.MustCompile(`(?mi)^\s*project\s*\(\s*([A-Za-z0-9_.+-]+)`)

// extractCMakeProjectName reads the first argument of the project()
// command; the directory name is the fallback.
func (d *Detector) extractCMakeProjectName(ctx context.Context, cmakePath string) string {
	content, err := d.fs.DownloadWithURL(ctx, cmakePath)
	if err != nil {
		return filepath.Base(filepath.Dir(cmakePath))
	}
	match := cmakeProjectPattern.FindSubmatch(content)
	if len(match) < 2 {
		return filepath.Base(filepath.Dir(cmakePath))
	}
	return string(match[1])
}

// extractGoModuleName returns the last element of the module path.
func (d *Detector) extractGoModuleName(ctx context.Context, goModPath string) string {
	content, err := d.fs.DownloadWithURL(ctx, goModPath)
	if err != nil {
		return filepath.Base(filepath.Dir(goModPath))
	}
	if mod, _ := modfile.Parse(goModPath, content, nil); mod != nil && mod.Module != nil {
		return path.Base(mod.Module.Mod.Path)
	}
	return filepath.Base(filepath.Dir(goModPath))
}

// projectType identifies the type of project based on the marker file.
func projectType(marker string) string {
	switch marker {
	case "CMakeLists.txt":
		return "cmake"
	case "compile_commands.json":
		return "compiledb"
	case "Makefile":
		return "make"
	case "go.mod":
		return "go"
	case ".git":
		return "git"
	default:
		return "unknown"
	}
}
