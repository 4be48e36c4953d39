// Package compare provides the ordering functions used by the containers of
// this module to sort and partition their values.
package compare

import "golang.org/x/exp/constraints"

// Function is a comparison function for ordered types.
func Function[T constraints.Ordered](a, b T) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return +1
	default:
		return 0
	}
}

// Reverse returns a comparison function which orders values in the opposite
// order of cmp.
func Reverse[T any](cmp func(T, T) int) func(T, T) int {
	return func(a, b T) int { return cmp(b, a) }
}
