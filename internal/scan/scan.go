// Package scan provides byte-level lookahead over buffered source text.
package scan

import "fmt"

// Error is a lexical violation at a byte offset of the scanned source.
type Error struct {
	Offset int
	Msg    string
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s at offset %d", e.Msg, e.Offset)
}

// Scanner is a cursor over fully buffered source text. It never rewinds.
type Scanner struct {
	src string
	off int
}

func New(src string) *Scanner {
	return &Scanner{src: src}
}

// Peek returns the byte at the cursor without consuming it.
// ok is false once the source is exhausted.
func (s *Scanner) Peek() (byte, bool) {
	if s.off >= len(s.src) {
		return 0, false
	}
	return s.src[s.off], true
}

// PeekAt returns the byte n positions past the cursor without consuming.
func (s *Scanner) PeekAt(n int) (byte, bool) {
	if s.off+n >= len(s.src) {
		return 0, false
	}
	return s.src[s.off+n], true
}

// Advance consumes one byte. Advancing past the end is a no-op.
func (s *Scanner) Advance() {
	if s.off < len(s.src) {
		s.off++
	}
}

// SkipSpace consumes the run of JSON whitespace at the cursor.
func (s *Scanner) SkipSpace() {
	for s.off < len(s.src) {
		switch s.src[s.off] {
		case ' ', '\t', '\n', '\r':
			s.off++
		default:
			return
		}
	}
}

// Offset is the cursor position in bytes from the start of the source.
func (s *Scanner) Offset() int {
	return s.off
}

// Text returns the source between start and the cursor.
func (s *Scanner) Text(start int) string {
	return s.src[start:s.off]
}

// Take consumes and returns the next n bytes when that many remain.
// It consumes nothing otherwise.
func (s *Scanner) Take(n int) (string, bool) {
	if s.off+n > len(s.src) {
		return "", false
	}
	t := s.src[s.off : s.off+n]
	s.off += n
	return t, true
}

// Expect consumes c or reports what stands in its place.
func (s *Scanner) Expect(c byte) error {
	got, ok := s.Peek()
	if !ok {
		return s.Errorf("expected %q, got end of input", c)
	}
	if got != c {
		return s.Errorf("expected %q, got %q", c, got)
	}
	s.off++
	return nil
}

// Keyword consumes the exact literal word.
func (s *Scanner) Keyword(word string) error {
	start := s.off
	for i := 0; i < len(word); i++ {
		got, ok := s.Peek()
		if !ok || got != word[i] {
			return s.ErrorfAt(start, "expected %q", word)
		}
		s.off++
	}
	return nil
}

// Errorf reports a lexical violation at the cursor.
func (s *Scanner) Errorf(format string, args ...any) *Error {
	return s.ErrorfAt(s.off, format, args...)
}

// ErrorfAt reports a lexical violation at a specific offset.
func (s *Scanner) ErrorfAt(offset int, format string, args ...any) *Error {
	return &Error{Offset: offset, Msg: fmt.Sprintf(format, args...)}
}
