package mock

import (
	"net/url"
	"slices"
)

// MatchURLVals reports whether two sets of url values hold the same keys and
// values. Value order within a key is significant.
func MatchURLVals(v1, v2 url.Values) bool {
	if len(v1) != len(v2) {
		return false
	}
	for key, val := range v1 {
		val2, ok := v2[key]
		if !ok || !slices.Equal(val, val2) {
			return false
		}
	}
	return true
}
