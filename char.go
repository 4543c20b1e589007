package runestream

import (
	"fmt"
	"unicode"
	"unicode/utf8"
)

// Position is a zero-based location in the scanned input.
type Position struct {
	Line   int
	Column int
}

func (p Position) String() string {
	return fmt.Sprintf("%d:%d", p.Line, p.Column)
}

// Char is a single character annotated with the position it was read from.
//
// Char compares by value only: two characters at different positions are
// equal when their runes match, and a character can be tested directly
// against a rune literal via Is. Go's built-in == would drag the position
// into the comparison, so consumer code must go through Is or Equal.
type Char struct {
	Line   int
	Column int
	Rune   rune
}

// Position returns the location the character was read from.
func (c Char) Position() Position {
	return Position{Line: c.Line, Column: c.Column}
}

// Is reports whether the character value matches r, ignoring position.
func (c Char) Is(r rune) bool {
	return c.Rune == r
}

// Equal reports whether both characters hold the same rune. Position is
// deliberately excluded; see the type comment.
func (c Char) Equal(o Char) bool {
	return c.Rune == o.Rune
}

// IsSpace reports whether the character is whitespace.
func (c Char) IsSpace() bool { return unicode.IsSpace(c.Rune) }

// IsDigit reports whether the character is a decimal digit.
func (c Char) IsDigit() bool { return unicode.IsDigit(c.Rune) }

// IsNumber reports whether the character is a Unicode number.
func (c Char) IsNumber() bool { return unicode.IsNumber(c.Rune) }

// IsLetter reports whether the character is a letter.
func (c Char) IsLetter() bool { return unicode.IsLetter(c.Rune) }

// IsLower reports whether the character is a lower case letter.
func (c Char) IsLower() bool { return unicode.IsLower(c.Rune) }

// IsUpper reports whether the character is an upper case letter.
func (c Char) IsUpper() bool { return unicode.IsUpper(c.Rune) }

// IsASCII reports whether the character is a 7-bit ASCII character.
func (c Char) IsASCII() bool { return c.Rune < utf8.RuneSelf }

// Between reports whether the character value lies within [lo, hi],
// inclusive on both ends.
func (c Char) Between(lo, hi rune) bool {
	return c.Rune >= lo && c.Rune <= hi
}

// ToLower returns the lower case form of the character at the same position.
func (c Char) ToLower() Char {
	return Char{Line: c.Line, Column: c.Column, Rune: unicode.ToLower(c.Rune)}
}

// ToUpper returns the upper case form of the character at the same position.
func (c Char) ToUpper() Char {
	return Char{Line: c.Line, Column: c.Column, Rune: unicode.ToUpper(c.Rune)}
}

func (c Char) String() string {
	return fmt.Sprintf("%q@%d:%d", c.Rune, c.Line, c.Column)
}
