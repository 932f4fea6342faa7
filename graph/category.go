package graph

import "strings"

// Category classifies a node identity for display.
type Category int

const (
	CategorySource Category = iota
	CategoryHeader
	CategoryModule
	CategoryOther
)

// CategoryLabels returns the fixed legend labels, indexed by Category.
func CategoryLabels() []string {
	return []string{"cpp", "h", "module", "other"}
}

// Categorize maps an identity onto its category, checked in priority
// order: source suffix, header suffix, merged marker, otherwise other.
func Categorize(id string) Category {
	for _, suffix := range SourceSuffixes {
		if strings.HasSuffix(id, suffix) {
			return CategorySource
		}
	}
	if strings.HasSuffix(id, HeaderSuffix) {
		return CategoryHeader
	}
	if strings.HasPrefix(id, MergedPrefix) {
		return CategoryModule
	}
	return CategoryOther
}
