package graph

import "strings"

// MergedPrefix marks a synthetic node standing in for a header/source
// pair. Real file identities always carry a suffix, so the marker cannot
// collide with them.
const MergedPrefix = "[merged]"

// File suffixes recognized by the scan. The set is a fixed enumeration.
var (
	SourceSuffixes = []string{".cpp", ".cc"}
	HeaderSuffix   = ".h"
)

// RecognizedSuffixes returns every file suffix the tool scans, sources
// first.
func RecognizedSuffixes() []string {
	return append(append([]string{}, SourceSuffixes...), HeaderSuffix)
}

// HasRecognizedSuffix reports whether name carries a scanned file suffix.
func HasRecognizedSuffix(name string) bool {
	_, ok := splitSuffix(name)
	return ok
}

// Stem returns id without its recognized suffix; an identity without one
// is its own stem.
func Stem(id string) string {
	stem, _ := splitSuffix(id)
	return stem
}

// splitSuffix splits id into stem and recognized suffix. ok is false when
// id carries no recognized suffix or consists of the suffix alone.
func splitSuffix(id string) (stem string, ok bool) {
	for _, suffix := range RecognizedSuffixes() {
		if strings.HasSuffix(id, suffix) && len(id) > len(suffix) {
			return id[:len(id)-len(suffix)], true
		}
	}
	return id, false
}
