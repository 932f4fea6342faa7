package scanner

import (
	"regexp"
	"strings"
)

var (
	directivePattern = regexp.MustCompile(`^#\s*(?:include|INCLUDE)`)
	targetPattern    = regexp.MustCompile(`[<"](.+)[">]`)
)

// ParseLine extracts the include target from a single source line. A line
// carries a directive when, after trimming surrounding whitespace, it
// starts with a hash followed by optional whitespace and the token
// include or INCLUDE. The target is the first delimited run on the line,
// greedy to the last closing delimiter. ok is false when the line has no
// directive or no delimited target.
func ParseLine(line string) (target string, ok bool) {
	trimmed := strings.TrimSpace(line)
	if !directivePattern.MatchString(trimmed) {
		return "", false
	}
	match := targetPattern.FindStringSubmatch(trimmed)
	if match == nil {
		return "", false
	}
	return match[1], true
}
