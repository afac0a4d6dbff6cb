package sortable

import "facette.io/natsort"

// Natural is a string that sorts in natural order, meaning runs of digits
// are compared by numeric value: "file2" < "file10" < "file100".
// Plain lexical ordering (see String) would put "file10" first.
type Natural string

var _ Sortable[Natural] = (*Natural)(nil)

func (n Natural) Equals(other Natural) bool {
	return string(n) == string(other)
}

// LessThan reports whether n sorts strictly before other. natsort.Compare
// answers true both ways for numerically equal runs ("1" and "01") and false
// both ways when a side is empty; those pairs fall back to byte order.
func (n Natural) LessThan(other Natural) bool {
	a, b := string(n), string(other)
	if a == b {
		return false
	}

	less, greater := natsort.Compare(a, b), natsort.Compare(b, a)
	if less != greater {
		return less
	}

	return a < b
}
