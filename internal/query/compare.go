package query

import (
	"strconv"
	"strings"
)

// Compare orders two field values. When both are non-empty and fully
// parseable as numbers they compare numerically ("9" < "10"); otherwise the
// comparison falls back to case-insensitive lexicographic order. A missing
// value compares as the empty string.
func Compare(a, b string) int {
	if a != "" && b != "" {
		na, errA := strconv.ParseFloat(a, 64)
		nb, errB := strconv.ParseFloat(b, 64)
		if errA == nil && errB == nil {
			switch {
			case na < nb:
				return -1
			case na > nb:
				return 1
			default:
				return 0
			}
		}
	}

	return strings.Compare(strings.ToLower(a), strings.ToLower(b))
}
