package runestream

import "errors"

// ErrEndOfData is returned by Read, Peek and Precache when no further
// characters exist. Callers are expected to consult EOF first; hitting this
// error indicates a caller contract violation, not a transient condition.
var ErrEndOfData = errors.New("runestream: read past end of data")

// ErrEmptyText is returned by NewText when given no characters.
var ErrEmptyText = errors.New("runestream: text requires at least one character")
