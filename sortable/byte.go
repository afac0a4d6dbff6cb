package sortable

// Byte is a sortable wrapper type for the built-in byte type.
type Byte byte

var _ Sortable[Byte] = (*Byte)(nil)

func (b Byte) Equals(other Byte) bool {
	return byte(b) == byte(other)
}

func (b Byte) LessThan(other Byte) bool {
	return byte(b) < byte(other)
}

// String renders the byte as a character rather than a number.
func (b Byte) String() string {
	return string(rune(b))
}
