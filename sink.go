package pretty

import (
	"fmt"
	"io"
)

// Sink is the uniform write interface the renderer writes through. It
// mirrors the two operations the Rust source's Render trait exposes:
// WritePartial may report a short write, WriteAll guarantees either a full
// write or an error. The renderer performs no retry on either.
type Sink interface {
	// WritePartial writes as much of s as the underlying destination
	// accepts in one call, returning the number of bytes written.
	WritePartial(s string) (int, error)
	// WriteAll writes s in full or returns an error.
	WriteAll(s string) error
}

// ByteSink adapts an io.Writer — an octet stream, with text encoded as
// UTF-8 — to Sink. Its errors are the writer's own, reported verbatim.
type ByteSink struct {
	w io.Writer
}

// NewByteSink returns a Sink that writes to w.
func NewByteSink(w io.Writer) *ByteSink {
	return &ByteSink{w: w}
}

func (s *ByteSink) WritePartial(str string) (int, error) {
	return s.w.Write([]byte(str))
}

func (s *ByteSink) WriteAll(str string) error {
	_, err := io.WriteString(s.w, str)
	return err
}

// CharSink adapts an io.StringWriter — a text buffer such as
// *strings.Builder or *bytes.Buffer — to Sink. Since io.StringWriter has no
// notion of a short write, WritePartial is synthesised as WriteAll followed
// by returning the full length, per spec.md §4.2. Errors are wrapped in
// *FormatError so callers can tell a formatting failure apart from a
// ByteSink's raw I/O error.
type CharSink struct {
	w io.StringWriter
}

// NewCharSink returns a Sink that writes to w.
func NewCharSink(w io.StringWriter) *CharSink {
	return &CharSink{w: w}
}

func (s *CharSink) WritePartial(str string) (int, error) {
	if err := s.WriteAll(str); err != nil {
		return 0, err
	}
	return len(str), nil
}

func (s *CharSink) WriteAll(str string) error {
	if _, err := s.w.WriteString(str); err != nil {
		return &FormatError{Err: err}
	}
	return nil
}

// FormatError reports a failure from a CharSink's underlying
// io.StringWriter, distinguishing it from ByteSink's I/O errors.
type FormatError struct {
	Err error
}

func (e *FormatError) Error() string {
	return fmt.Sprintf("pretty: formatting failed: %v", e.Err)
}

func (e *FormatError) Unwrap() error {
	return e.Err
}
