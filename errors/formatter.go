// Package errors provides presentation for positioned errors raised by
// consumers of the runestream reader. It separates error formatting from
// scanning logic, allowing diagnostics to be rendered in multiple formats
// (text, JSON) for different consumers (CLI tools, APIs, editors).
//
// The package defines a Formatter interface and provides two
// implementations:
//   - TextFormatter: human-readable output with a source excerpt and a
//     caret under the offending column
//   - JSONFormatter: structured output for APIs and tooling
//
// Reader positions are zero-based; TextFormatter renders them 1-based for
// humans, while JSONFormatter emits the raw values.
package errors

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
	"github.com/robinvdvleuten/runestream"
)

// E is an error annotated with the source position it was raised at.
type E struct {
	Pos        runestream.Position
	Message    string
	Underlying error
}

// At creates a positioned error.
func At(pos runestream.Position, message string) *E {
	return &E{Pos: pos, Message: message}
}

// Wrap attaches a position to an existing error.
func Wrap(pos runestream.Position, err error) *E {
	return &E{Pos: pos, Message: err.Error(), Underlying: err}
}

func (e *E) Error() string {
	return fmt.Sprintf("line %d, column %d: %s", e.Pos.Line+1, e.Pos.Column+1, e.Message)
}

// Position returns the source position the error was raised at.
func (e *E) Position() runestream.Position {
	return e.Pos
}

func (e *E) Unwrap() error {
	return e.Underlying
}

// Positioned is implemented by errors that know where in the source they
// occurred. Formatters use it to locate the excerpt and caret.
type Positioned interface {
	error
	Position() runestream.Position
}

// Formatter formats errors for output in different formats.
type Formatter interface {
	// Format formats a single error.
	Format(err error) string

	// FormatAll formats multiple errors.
	FormatAll(errs []error) string
}

// Styles bundles the terminal styles TextFormatter applies when styling is
// enabled via WithStyles.
type Styles struct {
	Message lipgloss.Style
	Excerpt lipgloss.Style
	Caret   lipgloss.Style
}

// DefaultStyles returns a reasonable style set for terminal output.
func DefaultStyles() *Styles {
	return &Styles{
		Message: lipgloss.NewStyle().Bold(true),
		Excerpt: lipgloss.NewStyle().Faint(true),
		Caret:   lipgloss.NewStyle().Foreground(lipgloss.Color("9")),
	}
}

// TextFormatter formats errors for human consumption. With source content
// attached it shows the lines around the error position and a caret under
// the offending column.
type TextFormatter struct {
	sourceContent []byte
	styles        *Styles
}

// TextFormatterOption is an option for configuring TextFormatter.
type TextFormatterOption func(*TextFormatter)

// WithSource sets the scanned source so errors can show an excerpt.
func WithSource(source []byte) TextFormatterOption {
	return func(tf *TextFormatter) {
		tf.sourceContent = source
	}
}

// WithStyles enables terminal styling of the formatted output.
func WithStyles(styles *Styles) TextFormatterOption {
	return func(tf *TextFormatter) {
		tf.styles = styles
	}
}

// NewTextFormatter creates a new text formatter.
func NewTextFormatter(opts ...TextFormatterOption) *TextFormatter {
	tf := &TextFormatter{}
	for _, opt := range opts {
		opt(tf)
	}
	return tf
}

// Format formats a single error. Positioned errors gain a source excerpt
// when source content is available; anything else falls back to Error().
func (tf *TextFormatter) Format(err error) string {
	if e, ok := err.(Positioned); ok && tf.sourceContent != nil {
		return tf.formatWithSourceContext(e.Position(), e.Error())
	}
	return err.Error()
}

// FormatAll formats multiple errors, separating them with blank lines.
func (tf *TextFormatter) FormatAll(errs []error) string {
	if len(errs) == 0 {
		return ""
	}

	var buf bytes.Buffer
	for i, err := range errs {
		buf.WriteString(tf.Format(err))
		if i < len(errs)-1 {
			buf.WriteString("\n\n")
		}
	}

	return buf.String()
}

// formatWithSourceContext formats an error message followed by the source
// lines around the error position.
func (tf *TextFormatter) formatWithSourceContext(pos runestream.Position, message string) string {
	var buf bytes.Buffer

	if tf.styles != nil {
		message = tf.styles.Message.Render(message)
	}
	buf.WriteString(message)
	buf.WriteString("\n\n")

	sourceLines := strings.Split(string(tf.sourceContent), "\n")

	// Show up to two lines before and one after the error line.
	startLine := pos.Line - 2
	endLine := pos.Line + 1
	if startLine < 0 {
		startLine = 0
	}
	if endLine >= len(sourceLines) {
		endLine = len(sourceLines) - 1
	}

	for i := startLine; i <= endLine; i++ {
		line := strings.TrimRight(sourceLines[i], "\r")
		excerpt := line
		if tf.styles != nil {
			excerpt = tf.styles.Excerpt.Render(excerpt)
		}
		buf.WriteString("   ")
		buf.WriteString(excerpt)
		buf.WriteByte('\n')

		if i == pos.Line {
			// Align the caret by display width, not character count,
			// so wide runes in the excerpt do not skew it.
			prefix := []rune(line)
			if pos.Column < len(prefix) {
				prefix = prefix[:pos.Column]
			}
			caret := "^"
			if tf.styles != nil {
				caret = tf.styles.Caret.Render(caret)
			}
			buf.WriteString("   ")
			buf.WriteString(strings.Repeat(" ", runewidth.StringWidth(string(prefix))))
			buf.WriteString(caret)
			buf.WriteByte('\n')
		}
	}

	return buf.String()
}

// JSONFormatter formats errors as JSON.
type JSONFormatter struct{}

// NewJSONFormatter creates a new JSON formatter.
func NewJSONFormatter() *JSONFormatter {
	return &JSONFormatter{}
}

// ErrorJSON represents an error in JSON format.
type ErrorJSON struct {
	Type     string        `json:"type"`
	Message  string        `json:"message"`
	Position *PositionJSON `json:"position,omitempty"`
}

// PositionJSON represents a source position in JSON format. Line and
// column are zero-based, matching the reader.
type PositionJSON struct {
	Line   int `json:"line"`
	Column int `json:"column"`
}

// Format formats a single error as JSON.
func (jf *JSONFormatter) Format(err error) string {
	data, _ := json.Marshal(jf.toJSON(err))
	return string(data)
}

// FormatAll formats multiple errors as a JSON array.
func (jf *JSONFormatter) FormatAll(errs []error) string {
	data, _ := json.MarshalIndent(jf.FormatAllToSlice(errs), "", "  ")
	return string(data)
}

// FormatAllToSlice returns errors as a slice of ErrorJSON structs.
func (jf *JSONFormatter) FormatAllToSlice(errs []error) []ErrorJSON {
	result := make([]ErrorJSON, 0, len(errs))
	for _, err := range errs {
		result = append(result, jf.toJSON(err))
	}
	return result
}

// toJSON converts an error to ErrorJSON.
func (jf *JSONFormatter) toJSON(err error) ErrorJSON {
	errJSON := ErrorJSON{
		Type:    fmt.Sprintf("%T", err),
		Message: err.Error(),
	}

	if e, ok := err.(Positioned); ok {
		pos := e.Position()
		errJSON.Position = &PositionJSON{
			Line:   pos.Line,
			Column: pos.Column,
		}
	}

	return errJSON
}
