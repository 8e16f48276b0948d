// Package resolve implements the recipe identifier resolution pipeline:
// normalization, tiered matching, suggestion ranking, and diagnostic
// reporting. The pipeline is a pure, synchronous computation — it borrows
// a read-only corpus snapshot per call, holds no state across calls, and
// is safe for concurrent use.
package resolve

import (
	"regexp"
	"strings"

	"golang.org/x/text/cases"
)

var (
	separatorRe = regexp.MustCompile(`[\s_]+`)
	invalidRe   = regexp.MustCompile(`[^a-z0-9-]+`)
	hyphenRunRe = regexp.MustCompile(`-{2,}`)
)

// Normalize canonicalizes a raw identifier into a comparison key.
// Rules, applied in order:
//  1. Trim leading/trailing whitespace
//  2. Locale-independent case fold
//  3. Runs of whitespace or underscores become a single hyphen
//  4. Characters outside [a-z0-9-] are stripped
//  5. Hyphen runs collapse to one; leading/trailing hyphens are stripped
//
// Normalize is idempotent. Empty or all-punctuation input yields the
// empty key; empty keys never match anything.
func Normalize(raw string) string {
	key := strings.TrimSpace(raw)
	if key == "" {
		return ""
	}
	key = cases.Fold().String(key)
	key = separatorRe.ReplaceAllString(key, "-")
	key = invalidRe.ReplaceAllString(key, "")
	key = hyphenRunRe.ReplaceAllString(key, "-")
	return strings.Trim(key, "-")
}
