package repository

// Project describes the project enclosing a scan root.
type Project struct {
	RootPath string // Absolute path of the directory holding the matched marker, or the scan root itself
	Type     string // Type of project behind the marker (cmake, compiledb, make, go, git, unknown)
	Name     string // Name of the project (extracted from marker files); empty when none carries one
}
