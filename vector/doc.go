// Package vector provides Vector, a growable array of sortable elements with
// bounds-checked indexed access, positional insert and remove, and sorted
// insertion by binary search.
//
// # Growth
//
// A Vector starts with DefaultInitialCapacity slots (or the capacity given to
// WithInitialCapacity). When an insert finds the vector full, a new buffer
// DefaultGrowthBoost slots larger is allocated and the live elements are
// copied across. Growth is additive: capacity goes 20, 30, 40, ... rather than
// doubling, and it never shrinks, not even on Remove or Clear.
//
// # Errors
//
// Get, Set and Remove fail with ErrOutOfBounds for an index outside [0, Size).
// Insert fails with ErrInvalidInsertIndex for an index outside [0, Size].
// Both come wrapped in an *IndexError carrying the operation name, the index
// and the valid range. A failed call leaves the vector untouched.
//
// # Sorted insertion
//
// BinaryInsert assumes the vector is already in ascending order and inserts
// a value at the position found by halving the search range. An element equal
// to the value being inserted ends up after it: ties are placed on the left.
// Mixing BinaryInsert with Add, Insert or Set is allowed, but the ordering is
// then only as good as what the caller put there.
//
// # Thread Safety
//
// Vector is not safe for concurrent use. It never exposes its buffer, so a
// value obtained from Get or Entries stays valid across later growth.
package vector
