package runestream

import (
	"strings"

	"golang.org/x/exp/slices"
)

// Text is an immutable run of positioned characters treated as one
// string-like unit, carrying the source span it covers. It is typically
// built from the result of draining Reader.ReadLine, or from the characters
// of a scanned token.
//
// Like Char, Text compares by its materialized text only: two texts
// spelling the same string are equal no matter where in the source they
// were read from. String doubles as the canonical map key.
type Text struct {
	chars []Char
	value string
	from  Position
	to    Position
}

// NewText builds a Text from a finished, non-empty run of characters. It
// returns ErrEmptyText when chars is empty; a text with no characters would
// carry no meaningful span.
func NewText(chars []Char) (*Text, error) {
	if len(chars) == 0 {
		return nil, ErrEmptyText
	}

	cs := slices.Clone(chars)

	var sb strings.Builder
	sb.Grow(len(cs))
	for _, c := range cs {
		sb.WriteRune(c.Rune)
	}

	return &Text{
		chars: cs,
		value: sb.String(),
		from:  cs[0].Position(),
		to:    cs[len(cs)-1].Position(),
	}, nil
}

// String returns the materialized text, the concatenation of every
// character value in order.
func (t *Text) String() string { return t.value }

// Len returns the number of characters.
func (t *Text) Len() int { return len(t.chars) }

// Chars returns a copy of the underlying characters.
func (t *Text) Chars() []Char {
	return slices.Clone(t.chars)
}

// From returns the position of the first character.
func (t *Text) From() Position { return t.from }

// To returns the position of the last character.
func (t *Text) To() Position { return t.to }

// Equal reports whether both texts materialize to the same string. The
// source span does not participate in the comparison.
func (t *Text) Equal(o *Text) bool {
	return o != nil && t.value == o.value
}

// EqualString reports whether the materialized text equals s.
func (t *Text) EqualString(s string) bool {
	return t.value == s
}
