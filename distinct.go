// Package distinct collapses duplicate integers in a slice and returns
// the surviving values in ascending order.
package distinct

import (
	"sort"
)

// Ints returns a new slice containing each distinct value of s exactly
// once, sorted ascending. The input is not modified; the caller owns
// the result. Empty input yields empty output.
func Ints(s []int) []int {
	out := make([]int, len(s))
	copy(out, s)
	return IntsInPlace(out)
}

// IntsInPlace computes the sorted slice of distinct elements in-place.
// Original input is destroyed.
func IntsInPlace(s []int) []int {
	if len(s) < 2 {
		return s
	}
	sort.Ints(s)
	j := 1
	for i := 1; i < len(s); i++ {
		if s[j-1] != s[i] {
			s[j] = s[i]
			j++
		}
	}
	return s[:j]
}

// NonEmpty reports whether s has at least one element.
func NonEmpty(s []int) bool {
	return len(s) > 0
}
