package sortable

// String orders strings by byte-wise lexical comparison, which is what
// Go's < operator does on strings.
type String string

var _ Sortable[String] = (*String)(nil)

func (s String) Equals(other String) bool {
	return string(s) == string(other)
}

func (s String) LessThan(other String) bool {
	return string(s) < string(other)
}
