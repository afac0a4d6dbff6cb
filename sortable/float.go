package sortable

import "math"

// Float64 is a sortable wrapper for float64.
//
// NaN has no natural place in a numeric ordering, so Float64 puts every NaN
// before all other values and treats NaNs as equal to each other. This keeps
// LessThan a strict weak ordering, which binary insertion depends on.
type Float64 float64

var _ Sortable[Float64] = (*Float64)(nil)

// Equals returns true if both values are equal, or both are NaN.
func (f Float64) Equals(other Float64) bool {
	a, b := float64(f), float64(other)
	if math.IsNaN(a) || math.IsNaN(b) {
		return math.IsNaN(a) && math.IsNaN(b)
	}

	return a == b
}

// LessThan returns true if f sorts before other.
func (f Float64) LessThan(other Float64) bool {
	a, b := float64(f), float64(other)

	switch {
	case math.IsNaN(b):
		return false
	case math.IsNaN(a):
		return true
	default:
		return a < b
	}
}
