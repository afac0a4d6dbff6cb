package sortable

import (
	"bytes"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// Collator builds Collated values for a single locale. It wraps a
// collate.Collator together with its key buffer, and like collate.Collator
// it is not safe for concurrent use.
type Collator struct {
	tag      language.Tag
	collator *collate.Collator
	buf      collate.Buffer
}

// NewCollator returns a Collator for the given BCP 47 language tag.
// Extra collate options (collate.IgnoreCase, collate.Numeric, ...) are
// passed through to collate.New.
func NewCollator(tag language.Tag, opts ...collate.Option) *Collator {
	return &Collator{
		tag:      tag,
		collator: collate.New(tag, opts...),
	}
}

// Tag returns the language the collator orders by.
func (c *Collator) Tag() language.Tag {
	return c.tag
}

// Make returns a Collated value for s. The collation key is computed once,
// here, so comparisons afterwards are plain byte comparisons.
func (c *Collator) Make(s string) Collated {
	key := bytes.Clone(c.collator.KeyFromString(&c.buf, s))
	c.buf.Reset()

	return Collated{Text: s, key: key}
}

// Collated is a string ordered by the rules of a human language, so that for
// example "apple" < "Banana" < "cherry" in English regardless of case, and
// accented letters sort next to their base letter.
//
// Values must be created with Collator.Make. Comparing values made by
// collators for different languages is meaningless.
type Collated struct {
	Text string
	key  []byte
}

var _ Sortable[Collated] = (*Collated)(nil)

// Equals reports whether both values are the same text.
func (c Collated) Equals(other Collated) bool {
	return c.Text == other.Text
}

// LessThan compares collation keys, falling back to the raw text when two
// different strings collate to the same key so that the ordering stays
// consistent with Equals.
func (c Collated) LessThan(other Collated) bool {
	switch bytes.Compare(c.key, other.key) {
	case -1:
		return true
	case 1:
		return false
	default:
		return c.Text < other.Text
	}
}

// String returns the original text.
func (c Collated) String() string {
	return c.Text
}

// MarshalText lets encoders render a Collated as its text.
func (c Collated) MarshalText() ([]byte, error) {
	return []byte(c.Text), nil
}
