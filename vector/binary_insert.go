package vector

import "github.com/amp-labs/amp-vector/sortable"

// BinaryInsert inserts value into a vector whose elements are in ascending
// order, keeping them in order, and returns the index it was placed at.
// A value equal to an existing element is placed before it.
func (v *Vector[T]) BinaryInsert(value T) int {
	return v.binaryInsert(value, 0, v.size)
}

// binaryInsert searches elements[start:start+length] for the insertion
// point of value. Each call either inserts or recurses on a strictly
// shorter window, so the depth is bounded by log2(size).
func (v *Vector[T]) binaryInsert(value T, start, length int) int {
	switch length {
	case 0:
		v.insertAt(value, start)

		return start
	case 1:
		if sortable.GreaterThan(value, v.elements[start]) {
			v.insertAt(value, start+1)

			return start + 1
		}

		v.insertAt(value, start)

		return start
	}

	half := length / 2 //nolint:mnd
	mid := start + half

	if sortable.GreaterThan(v.elements[mid], value) {
		return v.binaryInsert(value, start, half)
	}

	return v.binaryInsert(value, mid, length-half)
}
