package errors

import (
	stderrors "errors"
	"strings"
	"testing"

	"github.com/alecthomas/assert/v2"
	"github.com/robinvdvleuten/runestream"
)

func TestPositionedError(t *testing.T) {
	err := At(runestream.Position{Line: 2, Column: 6}, "unexpected character")

	// Zero-based positions render 1-based for humans.
	assert.Equal(t, "line 3, column 7: unexpected character", err.Error())
	assert.Equal(t, runestream.Position{Line: 2, Column: 6}, err.Position())
}

func TestWrapPreservesUnderlying(t *testing.T) {
	underlying := stderrors.New("boom")
	err := Wrap(runestream.Position{Line: 0, Column: 0}, underlying)

	assert.True(t, stderrors.Is(err, underlying))
	assert.Equal(t, "line 1, column 1: boom", err.Error())
}

func TestTextFormatterWithoutSource(t *testing.T) {
	tf := NewTextFormatter()
	err := At(runestream.Position{Line: 0, Column: 3}, "oops")

	assert.Equal(t, "line 1, column 4: oops", tf.Format(err))
}

func TestTextFormatterSourceContext(t *testing.T) {
	source := []byte("one\ntwo\nthree x\nfour")
	tf := NewTextFormatter(WithSource(source))

	err := At(runestream.Position{Line: 2, Column: 6}, "unexpected character")

	want := strings.Join([]string{
		"line 3, column 7: unexpected character",
		"",
		"   one",
		"   two",
		"   three x",
		"         ^",
		"   four",
		"",
	}, "\n")
	assert.Equal(t, want, tf.Format(err))
}

func TestTextFormatterCaretAfterWideRunes(t *testing.T) {
	source := []byte("ab\n日本x")
	tf := NewTextFormatter(WithSource(source))

	err := At(runestream.Position{Line: 1, Column: 2}, "bad")

	// The two ideographs occupy four cells, so the caret sits four cells
	// in, even though the error column is two characters in.
	want := strings.Join([]string{
		"line 2, column 3: bad",
		"",
		"   ab",
		"   日本x",
		"       ^",
		"",
	}, "\n")
	assert.Equal(t, want, tf.Format(err))
}

func TestTextFormatterPlainError(t *testing.T) {
	tf := NewTextFormatter(WithSource([]byte("source")))
	assert.Equal(t, "plain", tf.Format(stderrors.New("plain")))
}

func TestTextFormatterFormatAll(t *testing.T) {
	tf := NewTextFormatter()

	assert.Equal(t, "", tf.FormatAll(nil))

	out := tf.FormatAll([]error{
		At(runestream.Position{Line: 0, Column: 0}, "first"),
		At(runestream.Position{Line: 1, Column: 0}, "second"),
	})
	assert.Equal(t, "line 1, column 1: first\n\nline 2, column 1: second", out)
}

func TestTextFormatterStyles(t *testing.T) {
	tf := NewTextFormatter(
		WithSource([]byte("abc")),
		WithStyles(DefaultStyles()),
	)

	out := tf.Format(At(runestream.Position{Line: 0, Column: 1}, "styled"))
	assert.True(t, strings.Contains(out, "styled"))
	assert.True(t, strings.Contains(out, "abc"))
}

func TestJSONFormatter(t *testing.T) {
	jf := NewJSONFormatter()

	err := At(runestream.Position{Line: 0, Column: 4}, "oops")
	assert.Equal(t,
		`{"type":"*errors.E","message":"line 1, column 5: oops","position":{"line":0,"column":4}}`,
		jf.Format(err))

	// Positions stay zero-based in JSON; plain errors omit the field.
	assert.Equal(t,
		`{"type":"*errors.errorString","message":"plain"}`,
		jf.Format(stderrors.New("plain")))
}

func TestJSONFormatterAll(t *testing.T) {
	jf := NewJSONFormatter()

	out := jf.FormatAllToSlice([]error{
		At(runestream.Position{Line: 1, Column: 2}, "a"),
		stderrors.New("b"),
	})

	assert.Equal(t, 2, len(out))
	assert.Equal(t, "line 2, column 3: a", out[0].Message)
	assert.Equal(t, &PositionJSON{Line: 1, Column: 2}, out[0].Position)
	assert.Equal(t, "b", out[1].Message)
	assert.Zero(t, out[1].Position)
}
