package scan

import (
	"errors"
	"testing"
)

func TestPeekAdvance(t *testing.T) {
	t.Parallel()

	s := New("ab")

	if c, ok := s.Peek(); !ok || c != 'a' {
		t.Fatalf("Peek() = (%q, %v), want ('a', true)", c, ok)
	}

	s.Advance()
	if c, ok := s.Peek(); !ok || c != 'b' {
		t.Fatalf("Peek() after Advance = (%q, %v), want ('b', true)", c, ok)
	}

	s.Advance()
	if _, ok := s.Peek(); ok {
		t.Fatal("Peek() at end of input returned ok")
	}

	s.Advance()
	if got := s.Offset(); got != 2 {
		t.Fatalf("Offset() after advancing past end = %d, want 2", got)
	}
}

func TestPeekAt(t *testing.T) {
	t.Parallel()

	s := New("abc")
	s.Advance()

	if c, ok := s.PeekAt(1); !ok || c != 'c' {
		t.Fatalf("PeekAt(1) = (%q, %v), want ('c', true)", c, ok)
	}
	if _, ok := s.PeekAt(2); ok {
		t.Fatal("PeekAt(2) past end returned ok")
	}
	if got := s.Offset(); got != 1 {
		t.Fatalf("PeekAt consumed input, Offset() = %d, want 1", got)
	}
}

func TestSkipSpace(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
		want  int
	}{
		{name: "none", input: "x", want: 0},
		{name: "mixed", input: " \t\r\n x", want: 5},
		{name: "all_space", input: "   ", want: 3},
		{name: "empty", input: "", want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := New(tt.input)
			s.SkipSpace()
			if got := s.Offset(); got != tt.want {
				t.Fatalf("SkipSpace() on %q left offset %d, want %d", tt.input, got, tt.want)
			}
		})
	}
}

func TestExpect(t *testing.T) {
	t.Parallel()

	s := New("[]")
	if err := s.Expect('['); err != nil {
		t.Fatalf("Expect('[') = %v, want nil", err)
	}

	err := s.Expect('}')
	if err == nil {
		t.Fatal("Expect('}') on ']' succeeded")
	}

	var scanErr *Error
	if !errors.As(err, &scanErr) {
		t.Fatalf("Expect error type = %T, want *Error", err)
	}
	if scanErr.Offset != 1 {
		t.Fatalf("Expect error offset = %d, want 1", scanErr.Offset)
	}

	s = New("")
	if err := s.Expect('x'); err == nil {
		t.Fatal("Expect on empty input succeeded")
	}
}

func TestKeyword(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		input   string
		word    string
		ok      bool
		wantOff int
	}{
		{name: "match", input: "true", word: "true", ok: true, wantOff: 4},
		{name: "prefix_mismatch", input: "truth", word: "true", ok: false, wantOff: 0},
		{name: "short_input", input: "tr", word: "true", ok: false, wantOff: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := New(tt.input)
			err := s.Keyword(tt.word)
			if (err == nil) != tt.ok {
				t.Fatalf("Keyword(%q) on %q error = %v, want ok %v", tt.word, tt.input, err, tt.ok)
			}
			if err != nil {
				var scanErr *Error
				if !errors.As(err, &scanErr) {
					t.Fatalf("Keyword error type = %T, want *Error", err)
				}
				if scanErr.Offset != tt.wantOff {
					t.Fatalf("Keyword error offset = %d, want %d", scanErr.Offset, tt.wantOff)
				}
			}
		})
	}
}

func TestTakeText(t *testing.T) {
	t.Parallel()

	s := New("12345")
	start := s.Offset()

	got, ok := s.Take(3)
	if !ok || got != "123" {
		t.Fatalf("Take(3) = (%q, %v), want (\"123\", true)", got, ok)
	}

	if _, ok := s.Take(3); ok {
		t.Fatal("Take(3) with 2 bytes left returned ok")
	}
	if s.Offset() != 3 {
		t.Fatalf("failed Take consumed input, Offset() = %d, want 3", s.Offset())
	}

	if text := s.Text(start); text != "123" {
		t.Fatalf("Text(%d) = %q, want \"123\"", start, text)
	}
}

func TestErrorMessage(t *testing.T) {
	t.Parallel()

	s := New("ab")
	s.Advance()

	err := s.Errorf("bad byte %q", 'b')
	if err.Offset != 1 {
		t.Fatalf("Errorf offset = %d, want 1", err.Offset)
	}
	if want := `bad byte 'b' at offset 1`; err.Error() != want {
		t.Fatalf("Error() = %q, want %q", err.Error(), want)
	}
}
