package slug

import (
	"regexp"
	"strconv"
	"strings"
)

var nonAlnumRegex = regexp.MustCompile(`[^a-z0-9]+`)

// Make derives a URL-safe referral slug from a realtor's name,
// e.g. "Jane  Smith" -> "jane-smith".
func Make(parts ...string) string {
	joined := strings.ToLower(strings.Join(parts, " "))
	joined = nonAlnumRegex.ReplaceAllString(joined, "-")
	return strings.Trim(joined, "-")
}

// WithSuffix appends a numeric disambiguator for slug collisions,
// e.g. ("jane-smith", 2) -> "jane-smith-2".
func WithSuffix(base string, n int) string {
	if n <= 1 {
		return base
	}
	return base + "-" + strconv.Itoa(n)
}
