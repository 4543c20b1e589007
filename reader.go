// Package runestream presents a text source as a forward-only stream of
// characters annotated with the zero-based line and column they were read
// from, suitable as the lexical front end of a parser or tokenizer.
//
// The Reader pulls raw characters from a Source in fixed-size blocks,
// assigns each a position, and hands them out one at a time through
// Peek/Read or as lazy sequences through ReadLine and ReadToEnd. Line
// tracking treats \r, \n and \r\n as a single logical line break while
// still delivering the raw terminator characters. Columns advance by one
// per character regardless of visual width.
//
// Runs of characters are aggregated into Text values that carry the source
// span they cover and compare by their materialized string alone.
package runestream

import (
	"bufio"
	"fmt"
	"io"
	"iter"
	"strings"
)

// blockSize is the number of runes pulled from the source per cache refill.
const blockSize = 4096

// Reader presents a Source as a lazily buffered stream of positioned
// characters. It is forward-only: no seeking, no unread.
//
// A Reader is not safe for concurrent use. Its blocking behavior is
// inherited from the Source; the Reader itself provides no cancellation or
// timeouts.
type Reader struct {
	src Source

	cache []Char // positioned, not yet consumed characters
	head  int    // index of the next cache entry to hand out

	// position of the next raw character to be pulled from the source
	line   int
	column int

	// A \r ending a fetched block may pair with a \n opening the next
	// one. Carry its position across the refill so the split pair lands
	// exactly where an unsplit read would put it.
	pendingCR  bool
	pendingPos Position

	block  []rune // scratch buffer reused across refills
	closed bool
}

// NewReader wraps an arbitrary Source. The Reader takes ownership of src
// and releases it on Close.
func NewReader(src Source) *Reader {
	return &Reader{
		src:   src,
		cache: make([]Char, 0, blockSize),
		block: make([]rune, blockSize),
	}
}

// NewStringReader reads from an in-memory string.
func NewStringReader(s string) *Reader {
	return NewReader(&stringSource{r: strings.NewReader(s)})
}

// NewStreamReader reads UTF-8 text from r. When r is an io.Closer it is
// closed together with the Reader.
func NewStreamReader(r io.Reader) *Reader {
	src := &streamSource{br: bufio.NewReader(r)}
	if c, ok := r.(io.Closer); ok {
		src.closer = c
	}
	return NewReader(src)
}

// EOF reports whether every character has been consumed: nothing cached and
// nothing left in the source.
func (r *Reader) EOF() bool {
	return r.head >= len(r.cache) && !r.src.More()
}

// Peek returns the next character without consuming it. It returns
// ErrEndOfData when the reader is exhausted; callers are expected to check
// EOF first.
func (r *Reader) Peek() (Char, error) {
	if err := r.ensureCache(); err != nil {
		return Char{}, err
	}
	return r.cache[r.head], nil
}

// Read consumes and returns the next character. Same failure contract as
// Peek.
func (r *Reader) Read() (Char, error) {
	if err := r.ensureCache(); err != nil {
		return Char{}, err
	}
	c := r.cache[r.head]
	r.head++
	return c, nil
}

// Precache forces a refill when the cache is empty, materializing at least
// one block of characters before further inspection. It returns
// ErrEndOfData when the reader is already exhausted.
func (r *Reader) Precache() error {
	return r.ensureCache()
}

// ReadToEnd drains the remaining characters as a lazy, finite, single-pass
// sequence. Once the sequence finishes the reader is exhausted; it is not
// restartable. If the source fails mid-stream the sequence ends early and
// the error is observable through a subsequent Read.
func (r *Reader) ReadToEnd() iter.Seq[Char] {
	return func(yield func(Char) bool) {
		for !r.EOF() {
			c, err := r.Read()
			if err != nil {
				return
			}
			if !yield(c) {
				return
			}
		}
	}
}

// ReadLine yields one logical line as a lazy, single-pass sequence,
// including the terminating character(s). A \r immediately followed by \n
// counts as one terminator and both characters are yielded. A final line
// without terminator simply ends at end of data.
func (r *Reader) ReadLine() iter.Seq[Char] {
	return func(yield func(Char) bool) {
		for !r.EOF() {
			c, err := r.Read()
			if err != nil {
				return
			}
			if !yield(c) {
				return
			}
			if c.Is('\n') {
				return
			}
			if c.Is('\r') {
				if !r.EOF() {
					if next, err := r.Peek(); err == nil && next.Is('\n') {
						next, err = r.Read()
						if err != nil || !yield(next) {
							return
						}
					}
				}
				return
			}
		}
	}
}

// Close releases the underlying source. Closing more than once is a no-op.
func (r *Reader) Close() error {
	if r.closed {
		return nil
	}
	r.closed = true
	return r.src.Close()
}

// ensureCache refills the cache from the source when it has been drained.
// It never returns with an empty cache and a nil error: afterwards either
// at least one positioned character is available, or the error states why
// not.
func (r *Reader) ensureCache() error {
	if r.head < len(r.cache) {
		return nil
	}
	if !r.src.More() {
		return ErrEndOfData
	}

	n, err := r.src.ReadRunes(r.block)
	if err != nil {
		return fmt.Errorf("runestream: source read: %w", err)
	}
	if n == 0 {
		return ErrEndOfData
	}

	r.cache = r.cache[:0]
	r.head = 0

	for i := 0; i < n; i++ {
		ch := r.block[i]

		if r.pendingCR {
			r.pendingCR = false
			if ch == '\n' {
				// Second half of a pair split by the previous block
				// boundary. The line advance already happened, so the
				// \n slots in right after the carried \r.
				r.cache = append(r.cache, Char{
					Line:   r.pendingPos.Line,
					Column: r.pendingPos.Column + 1,
					Rune:   '\n',
				})
				continue
			}
		}

		r.cache = append(r.cache, Char{Line: r.line, Column: r.column, Rune: ch})
		pos := Position{Line: r.line, Column: r.column}
		r.column++

		switch ch {
		case '\r':
			if i+1 < n && r.block[i+1] == '\n' {
				// Keep the \r\n pair whole within this refill.
				i++
				r.cache = append(r.cache, Char{Line: r.line, Column: r.column, Rune: '\n'})
				r.column++
			} else if i+1 == n {
				r.pendingCR = true
				r.pendingPos = pos
			}
			r.line++
			r.column = 0
		case '\n':
			r.line++
			r.column = 0
		}
	}

	return nil
}
