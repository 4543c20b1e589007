package runestream

import (
	"bufio"
	"io"
	"strings"
)

// Source is the pull contract the Reader drains.
//
// ReadRunes fills p with up to len(p) runes and returns how many it read.
// Short reads are allowed; 0 with a nil error means true end of data.
//
// More reports, without consuming, whether another rune can be read. It may
// block until the source can answer, but must never report a spurious end.
//
// The Reader owns its Source exclusively and closes it exactly once.
type Source interface {
	ReadRunes(p []rune) (int, error)
	More() bool
	io.Closer
}

// stringSource serves runes from an in-memory string.
type stringSource struct {
	r *strings.Reader
}

func (s *stringSource) ReadRunes(p []rune) (int, error) {
	for i := range p {
		r, _, err := s.r.ReadRune()
		if err == io.EOF {
			return i, nil
		}
		if err != nil {
			return i, err
		}
		p[i] = r
	}
	return len(p), nil
}

func (s *stringSource) More() bool { return s.r.Len() > 0 }

func (s *stringSource) Close() error { return nil }

// streamSource decodes UTF-8 text from an arbitrary byte stream.
type streamSource struct {
	br     *bufio.Reader
	closer io.Closer // the wrapped reader, when it owns a resource
}

func (s *streamSource) ReadRunes(p []rune) (int, error) {
	for i := range p {
		r, _, err := s.br.ReadRune()
		if err == io.EOF {
			return i, nil
		}
		if err != nil {
			return i, err
		}
		p[i] = r
	}
	return len(p), nil
}

// More peeks one byte ahead. This blocks until the stream produces a byte
// or reports EOF, so a slow stream delays the answer rather than faking an
// end of data.
func (s *streamSource) More() bool {
	_, err := s.br.Peek(1)
	return err == nil
}

func (s *streamSource) Close() error {
	if s.closer != nil {
		return s.closer.Close()
	}
	return nil
}
