package vector

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/amp-labs/amp-vector/compare"
	"github.com/amp-labs/amp-vector/sortable"
)

const (
	opGet    = "Get"
	opSet    = "Set"
	opInsert = "Insert"
	opRemove = "Remove"
)

// Vector is a growable array of sortable elements. The zero value is not
// usable; create one with New.
type Vector[T sortable.Sortable[T]] struct {
	// elements is the whole buffer: len(elements) is the capacity, and only
	// elements[:size] hold live values. The rest are zero values.
	elements []T
	size     int
	boost    int
	name     string
	log      *slog.Logger
}

// New returns an empty vector. Without options its capacity is
// DefaultInitialCapacity and it grows by DefaultGrowthBoost.
func New[T sortable.Sortable[T]](opts ...Option) *Vector[T] {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	v := &Vector[T]{
		elements: make([]T, o.initialCapacity),
		boost:    o.boost,
		name:     o.name,
		log:      o.log,
	}

	v.recordShape()

	return v
}

// Clone returns a deep copy of the vector. The copy gets a buffer of the
// same capacity as the source (not just its size), so both grow at the
// same moments. Mutating one never affects the other. O(size).
//
// The copy is unnamed and so reports no metrics; the source's series keep
// tracking the source only.
func (v *Vector[T]) Clone() *Vector[T] {
	elements := make([]T, len(v.elements))
	for i := range v.size {
		elements[i] = v.elements[i]
	}

	return &Vector[T]{
		elements: elements,
		size:     v.size,
		boost:    v.boost,
		log:      v.log,
	}
}

// Size returns the number of elements in the vector.
func (v *Vector[T]) Size() int {
	return v.size
}

// Capacity returns the number of allocated slots.
func (v *Vector[T]) Capacity() int {
	return len(v.elements)
}

// IsEmpty returns true if the vector holds no elements.
func (v *Vector[T]) IsEmpty() bool {
	return v.size == 0
}

func (v *Vector[T]) checkBounds(index int, op string) error {
	if index < 0 || index >= v.size {
		return newOutOfBounds(op, index, v.size)
	}

	return nil
}

// Get returns the element at index.
func (v *Vector[T]) Get(index int) (T, error) {
	if err := v.checkBounds(index, opGet); err != nil {
		var zero T

		return zero, err
	}

	return v.elements[index], nil
}

// Set overwrites the element at index. It never resizes the vector.
func (v *Vector[T]) Set(index int, value T) error {
	if err := v.checkBounds(index, opSet); err != nil {
		return err
	}

	v.elements[index] = value

	return nil
}

// Add appends value at the end of the vector, growing it if needed.
func (v *Vector[T]) Add(value T) {
	v.insertAt(value, v.size)
}

// Insert places value at index, shifting the elements at index and after
// one slot to the right. Index must be in [0, Size]; Size appends.
func (v *Vector[T]) Insert(value T, index int) error {
	if index < 0 || index > v.size {
		return newInvalidInsertIndex(index, v.size)
	}

	v.insertAt(value, index)

	return nil
}

// insertAt does the work of Insert for an index already known to be valid.
func (v *Vector[T]) insertAt(value T, index int) {
	if v.size >= len(v.elements) {
		v.grow()
	}

	// Walk down from the top so every element is read before it is overwritten.
	for i := v.size - 1; i >= index; i-- {
		v.elements[i+1] = v.elements[i]
	}

	v.elements[index] = value
	v.size++

	v.recordShape()
}

// grow replaces the buffer with one boost slots larger.
func (v *Vector[T]) grow() {
	oldCapacity := len(v.elements)
	elements := make([]T, oldCapacity+v.boost)

	for i := range v.size {
		elements[i] = v.elements[i]
	}

	v.elements = elements

	if v.log != nil {
		v.log.Debug("vector grown",
			"vector", v.name,
			"size", v.size,
			"old_capacity", oldCapacity,
			"new_capacity", len(elements))
	}

	v.recordGrowth(v.size)
}

// Remove deletes the element at index, shifting everything after it one
// slot to the left. Capacity is unchanged.
func (v *Vector[T]) Remove(index int) error {
	if err := v.checkBounds(index, opRemove); err != nil {
		return err
	}

	for i := index; i < v.size-1; i++ {
		v.elements[i] = v.elements[i+1]
	}

	var zero T

	v.size--
	v.elements[v.size] = zero

	v.recordShape()

	return nil
}

// Clear removes every element. The buffer is kept, so capacity is unchanged.
func (v *Vector[T]) Clear() {
	var zero T

	for i := range v.size {
		v.elements[i] = zero
	}

	v.size = 0

	v.recordShape()
}

// Entries returns a copy of the live elements, in order.
func (v *Vector[T]) Entries() []T {
	out := make([]T, v.size)
	copy(out, v.elements[:v.size])

	return out
}

// Equal returns true if both vectors hold equal elements in the same order.
// Capacity is not compared.
func (v *Vector[T]) Equal(other *Vector[T]) bool {
	if other == nil {
		return false
	}

	return compare.EqualSlices(v.elements[:v.size], other.elements[:other.size])
}

// IsSorted returns true if the elements are in non-decreasing order.
func (v *Vector[T]) IsSorted() bool {
	return sortable.IsSorted(v.elements[:v.size])
}

// String renders the elements separated by single spaces.
func (v *Vector[T]) String() string {
	var sb strings.Builder

	for i := range v.size {
		if i > 0 {
			sb.WriteByte(' ')
		}

		sb.WriteString(fmt.Sprint(v.elements[i]))
	}

	return sb.String()
}
