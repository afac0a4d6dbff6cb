package vector

import (
	"errors"
	"fmt"
)

var (
	// ErrOutOfBounds is returned by Get, Set and Remove when the index is
	// outside [0, size).
	ErrOutOfBounds = errors.New("index out of bounds")

	// ErrInvalidInsertIndex is returned by Insert when the index is outside
	// [0, size]. Inserting at size is an append.
	ErrInvalidInsertIndex = errors.New("invalid insert index")
)

// IndexError describes a rejected index. Kind is one of ErrOutOfBounds or
// ErrInvalidInsertIndex, so callers can match with errors.Is and pull the
// details out with errors.As.
type IndexError struct {
	Kind  error
	Op    string
	Index int
	Size  int
}

func newOutOfBounds(op string, index, size int) *IndexError {
	return &IndexError{Kind: ErrOutOfBounds, Op: op, Index: index, Size: size}
}

func newInvalidInsertIndex(index, size int) *IndexError {
	return &IndexError{Kind: ErrInvalidInsertIndex, Op: opInsert, Index: index, Size: size}
}

// Low is the smallest index the operation would have accepted.
func (e *IndexError) Low() int {
	return 0
}

// High is the largest index the operation would have accepted. For an
// empty vector and an element operation this is -1, i.e. no index is valid.
func (e *IndexError) High() int {
	if errors.Is(e.Kind, ErrInvalidInsertIndex) {
		return e.Size
	}

	return e.Size - 1
}

func (e *IndexError) Error() string {
	return fmt.Sprintf("%s: index %d out of bounds [%d, %d]", e.Op, e.Index, e.Low(), e.High())
}

func (e *IndexError) Unwrap() error {
	return e.Kind
}
