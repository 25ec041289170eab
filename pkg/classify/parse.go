package classify

import (
	"strconv"
	"strings"
)

// parseIntOr parses an integer-like field, falling back to def on any
// malformed value. Classifiers are total; field parsing never errors.
func parseIntOr(raw string, def int) int {
	n, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		return def
	}
	return n
}
