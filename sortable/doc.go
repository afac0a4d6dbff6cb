// Package sortable provides wrapper types for primitive types that implement
// the Sortable interface, enabling their use as elements of ordered containers.
//
// # Overview
//
// The sortable package defines the [Sortable] interface and provides ready-to-use
// implementations for common primitive types: [Int], [Byte], [Float64] and [String],
// plus two string orderings meant for people rather than machines: [Natural]
// (digit runs compared numerically) and [Collated] (language-aware, built by a
// [Collator]).
//
// The Sortable interface extends [github.com/amp-labs/amp-vector/compare.Comparable]
// by adding a LessThan method, providing both equality comparison and ordering.
// [github.com/amp-labs/amp-vector/vector.Vector] relies on it for BinaryInsert.
//
// # Usage
//
//	vec := vector.New[sortable.Natural]()
//	vec.BinaryInsert("file10")
//	vec.BinaryInsert("file2")
//	// vec.String() == "file2 file10"
//
// # Creating Custom Sortable Types
//
// To create a custom sortable type, implement the Sortable interface:
//
//	type Task struct {
//	    Priority int
//	    Name     string
//	}
//
//	func (t Task) Equals(other Task) bool {
//	    return t.Priority == other.Priority && t.Name == other.Name
//	}
//
//	func (t Task) LessThan(other Task) bool {
//	    if t.Priority != other.Priority {
//	        return t.Priority < other.Priority
//	    }
//	    return t.Name < other.Name
//	}
//
// LessThan must be a strict weak ordering that agrees with Equals, otherwise
// binary insertion can place elements out of order.
//
// # Thread Safety
//
// The wrapper types in this package are value types and are inherently thread-safe
// for read operations. [Collator] keeps an internal buffer and must not be shared
// between goroutines.
package sortable
