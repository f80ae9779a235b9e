package catalog

import (
	"strings"

	"github.com/agnivade/levenshtein"
)

// maxSuggestRatio bounds how different input may be from a key, relative to
// the longer of the two, before no suggestion is offered.
const maxSuggestRatio = 0.4

// Suggest returns the key closest to input by edit distance. It reports false
// when input is empty, already an exact key, or too far from every key.
func Suggest(input string, keys []string) (string, bool) {
	in := strings.ToLower(strings.TrimSpace(input))
	if in == "" {
		return "", false
	}
	best, bestDist := "", -1
	for _, k := range keys {
		if k == in {
			return "", false
		}
		d := levenshtein.ComputeDistance(in, k)
		if bestDist < 0 || d < bestDist {
			best, bestDist = k, d
		}
	}
	if bestDist < 0 {
		return "", false
	}
	maxlen := len(in)
	if len(best) > maxlen {
		maxlen = len(best)
	}
	if float64(bestDist)/float64(maxlen) >= maxSuggestRatio {
		return "", false
	}
	return best, true
}
