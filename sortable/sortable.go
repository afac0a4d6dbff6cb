// Package sortable provides sortable wrapper types for primitive types to implement comparison interfaces.
package sortable

import (
	"github.com/amp-labs/amp-vector/compare"
)

// Sortable is implemented by element types that carry their own ordering.
// LessThan must describe a strict weak ordering that agrees with Equals:
// if neither a.LessThan(b) nor b.LessThan(a) holds, a and b sort together.
type Sortable[T any] interface {
	compare.Comparable[T]

	LessThan(other T) bool
}

// GreaterThan reports whether a sorts strictly after b.
func GreaterThan[T Sortable[T]](a, b T) bool {
	return b.LessThan(a)
}

// IsSorted reports whether the slice is in non-decreasing order.
func IsSorted[T Sortable[T]](items []T) bool {
	for i := 1; i < len(items); i++ {
		if items[i].LessThan(items[i-1]) {
			return false
		}
	}

	return true
}
