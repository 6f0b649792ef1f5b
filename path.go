package jdom

import (
	"fmt"
	"strings"
)

// Segment is one hop of a compiled path expression. Segments form a
// doubly-linked chain; the final segment (Next returns nil) names the
// target of the operation, every other segment is an intermediate hop
// that must resolve to a composite unless its flags permit a
// short-circuit.
type Segment struct {
	name     string
	optional bool
	lenient  bool
	prev     *Segment
	next     *Segment
}

// Name is the object key or array index text this segment addresses.
func (s *Segment) Name() string { return s.name }

// Optional reports whether a missing child at this segment short-circuits
// to nil instead of ErrNotFound.
func (s *Segment) Optional() bool { return s.optional }

// Lenient reports whether a scalar at this segment short-circuits to nil
// instead of ErrTypeMismatch.
func (s *Segment) Lenient() bool { return s.lenient }

// Prev returns the preceding segment, nil at the head.
func (s *Segment) Prev() *Segment { return s.prev }

// Next returns the following segment, nil at the terminal.
func (s *Segment) Next() *Segment { return s.next }

// SetOptional toggles the optional policy on this segment.
func (s *Segment) SetOptional(v bool) { s.optional = v }

// SetLenient toggles the lenient policy on this segment.
func (s *Segment) SetLenient(v bool) { s.lenient = v }

// String renders the single segment in path syntax, flag suffixes
// included.
func (s *Segment) String() string {
	var b strings.Builder
	for i := 0; i < len(s.name); i++ {
		c := s.name[i]
		if c == '.' || c == '?' || c == '~' || c == '\\' {
			b.WriteByte('\\')
		}
		b.WriteByte(c)
	}
	if s.optional {
		b.WriteByte('?')
	}
	if s.lenient {
		b.WriteByte('~')
	}
	return b.String()
}

// ParsePath compiles a path expression and returns the head of its
// segment chain.
//
// Segments are separated by '.'. Each is a non-empty name followed by
// flag suffixes, in either order: '?' marks the segment optional, '~'
// marks it lenient. A backslash escapes '.', '?', '~' or '\' inside a
// name.
//
//	users.3.name      three hops
//	meta?.labels      a missing meta resolves to nil, not ErrNotFound
//	items.0~.id       a scalar at items.0 resolves to nil
//	fields.a\.b       addresses the key "a.b"
//
// Malformed expressions return ErrArgument.
func ParsePath(expr string) (*Segment, error) {
	if expr == "" {
		return nil, fmt.Errorf("%w: empty path", ErrArgument)
	}

	var head, tail *Segment
	i := 0
	for {
		seg, rest, err := parsePathSegment(expr, i)
		if err != nil {
			return nil, err
		}
		if tail == nil {
			head = seg
		} else {
			tail.next = seg
			seg.prev = tail
		}
		tail = seg
		if rest >= len(expr) {
			return head, nil
		}
		i = rest + 1 // consume the '.'
	}
}

// parsePathSegment scans one segment starting at i and returns it with
// the index of the terminating '.' or end of expression.
func parsePathSegment(expr string, i int) (*Segment, int, error) {
	start := i
	var (
		name  strings.Builder
		seg   Segment
		flags bool
	)

	for i < len(expr) && expr[i] != '.' {
		c := expr[i]
		switch c {
		case '\\':
			if flags {
				return nil, i, fmt.Errorf("%w: name character after flags at offset %d in path %q", ErrArgument, i, expr)
			}
			i++
			if i >= len(expr) {
				return nil, i, fmt.Errorf("%w: dangling escape at end of path %q", ErrArgument, expr)
			}
			e := expr[i]
			if e != '.' && e != '?' && e != '~' && e != '\\' {
				return nil, i, fmt.Errorf("%w: invalid escape \\%c at offset %d in path %q", ErrArgument, e, i-1, expr)
			}
			name.WriteByte(e)
			i++
		case '?':
			seg.optional = true
			flags = true
			i++
		case '~':
			seg.lenient = true
			flags = true
			i++
		default:
			if flags {
				return nil, i, fmt.Errorf("%w: name character after flags at offset %d in path %q", ErrArgument, i, expr)
			}
			name.WriteByte(c)
			i++
		}
	}

	if name.Len() == 0 {
		return nil, i, fmt.Errorf("%w: empty segment at offset %d in path %q", ErrArgument, start, expr)
	}

	seg.name = name.String()
	return &seg, i, nil
}
