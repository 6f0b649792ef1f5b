package jdom

import (
	"strconv"
	"strings"
	"unicode/utf16"
	"unicode/utf8"

	"github.com/shopspring/decimal"

	"github.com/jacoelho/jdom/internal/scan"
)

// One decoder per element kind. Each skips leading whitespace, verifies
// its opening token, then consumes exactly one literal of its kind;
// composite decoders recurse through decodeValue. Errors are *scan.Error
// values, wrapped into ErrParse at the parse entry points.

// decodeValue dispatches on one byte of lookahead: '{' object, '[' array,
// '"' string, 't'/'f' boolean, 'n' null, '-' or digit number. Once
// dispatched there is no backtracking into another kind.
func decodeValue(s *scan.Scanner) (Element, error) {
	s.SkipSpace()
	c, ok := s.Peek()
	if !ok {
		return nil, s.Errorf("unexpected end of input, expected a value")
	}
	switch {
	case c == '{':
		return decodeObject(s)
	case c == '[':
		return decodeArray(s)
	case c == '"':
		return decodeString(s)
	case c == 't' || c == 'f':
		return decodeBool(s)
	case c == 'n':
		return decodeNull(s)
	case c == '-' || isDigit(c):
		return decodeNumber(s)
	default:
		return nil, s.Errorf("unexpected character %q, expected a value", c)
	}
}

func isDigit(c byte) bool { return c >= '0' && c <= '9' }

func decodeNull(s *scan.Scanner) (Element, error) {
	s.SkipSpace()
	if err := s.Keyword("null"); err != nil {
		return nil, err
	}
	return Null{}, nil
}

func decodeBool(s *scan.Scanner) (Element, error) {
	s.SkipSpace()
	c, ok := s.Peek()
	if !ok {
		return nil, s.Errorf("unexpected end of input, expected a boolean")
	}
	switch c {
	case 't':
		if err := s.Keyword("true"); err != nil {
			return nil, err
		}
		return Bool(true), nil
	case 'f':
		if err := s.Keyword("false"); err != nil {
			return nil, err
		}
		return Bool(false), nil
	default:
		return nil, s.Errorf("unexpected character %q, expected a boolean", c)
	}
}

// decodeNumber consumes the JSON numeric grammar: an optional minus, an
// integer part without leading zeros, an optional fraction, an optional
// exponent. The consumed text is kept as the literal and parsed into an
// exact decimal.
func decodeNumber(s *scan.Scanner) (Element, error) {
	s.SkipSpace()
	start := s.Offset()

	if c, ok := s.Peek(); ok && c == '-' {
		s.Advance()
	}

	c, ok := s.Peek()
	switch {
	case !ok:
		return nil, s.Errorf("unexpected end of input in number")
	case c == '0':
		s.Advance()
	case isDigit(c):
		digits(s)
	default:
		return nil, s.Errorf("unexpected character %q in number", c)
	}

	if c, ok := s.Peek(); ok && c == '.' {
		s.Advance()
		if err := requireDigits(s, "fraction"); err != nil {
			return nil, err
		}
	}

	if c, ok := s.Peek(); ok && (c == 'e' || c == 'E') {
		s.Advance()
		if c, ok := s.Peek(); ok && (c == '+' || c == '-') {
			s.Advance()
		}
		if err := requireDigits(s, "exponent"); err != nil {
			return nil, err
		}
	}

	lit := s.Text(start)
	dec, err := decimal.NewFromString(lit)
	if err != nil {
		return nil, s.ErrorfAt(start, "invalid number %q", lit)
	}
	return Number{lit: lit, dec: dec}, nil
}

func digits(s *scan.Scanner) {
	for {
		c, ok := s.Peek()
		if !ok || !isDigit(c) {
			return
		}
		s.Advance()
	}
}

func requireDigits(s *scan.Scanner, part string) error {
	c, ok := s.Peek()
	if !ok || !isDigit(c) {
		return s.Errorf("expected digit in number %s", part)
	}
	digits(s)
	return nil
}

func decodeString(s *scan.Scanner) (Element, error) {
	s.SkipSpace()
	if err := s.Expect('"'); err != nil {
		return nil, err
	}

	var out strings.Builder
	for {
		c, ok := s.Peek()
		switch {
		case !ok:
			return nil, s.Errorf("unterminated string")
		case c == '"':
			s.Advance()
			return String(out.String()), nil
		case c == '\\':
			s.Advance()
			if err := decodeEscape(s, &out); err != nil {
				return nil, err
			}
		case c < 0x20:
			return nil, s.Errorf("control character %q in string", c)
		default:
			out.WriteByte(c)
			s.Advance()
		}
	}
}

// decodeEscape consumes one escape sequence, cursor just past the
// backslash.
func decodeEscape(s *scan.Scanner, out *strings.Builder) error {
	c, ok := s.Peek()
	if !ok {
		return s.Errorf("unterminated escape sequence")
	}
	s.Advance()

	switch c {
	case '"':
		out.WriteByte('"')
	case '\\':
		out.WriteByte('\\')
	case '/':
		out.WriteByte('/')
	case 'b':
		out.WriteByte('\b')
	case 'f':
		out.WriteByte('\f')
	case 'n':
		out.WriteByte('\n')
	case 'r':
		out.WriteByte('\r')
	case 't':
		out.WriteByte('\t')
	case 'u':
		return decodeUnicodeEscape(s, out)
	default:
		return s.ErrorfAt(s.Offset()-2, "invalid escape character %q", c)
	}
	return nil
}

func decodeUnicodeEscape(s *scan.Scanner, out *strings.Builder) error {
	raw, ok := s.Take(4)
	if !ok {
		return s.Errorf("unterminated \\u escape")
	}
	v, err := strconv.ParseUint(raw, 16, 32)
	if err != nil {
		return s.ErrorfAt(s.Offset()-4, "invalid \\u escape %q", raw)
	}

	r := rune(v)
	if utf16.IsSurrogate(r) {
		if paired, ok := surrogatePair(s, r); ok {
			out.WriteRune(paired)
			return nil
		}
		// Unpaired surrogates have no UTF-8 form; WriteRune stores the
		// replacement character.
	}
	out.WriteRune(r)
	return nil
}

// surrogatePair consumes a following \uXXXX escape when it completes hi
// into a valid pair. It consumes nothing otherwise, so the next escape is
// decoded on its own.
func surrogatePair(s *scan.Scanner, hi rune) (rune, bool) {
	var buf [6]byte
	for i := range buf {
		c, ok := s.PeekAt(i)
		if !ok {
			return 0, false
		}
		buf[i] = c
	}
	if buf[0] != '\\' || buf[1] != 'u' {
		return 0, false
	}
	lo, err := strconv.ParseUint(string(buf[2:]), 16, 32)
	if err != nil {
		return 0, false
	}
	r := utf16.DecodeRune(hi, rune(lo))
	if r == utf8.RuneError {
		return 0, false
	}
	s.Take(6)
	return r, true
}

func decodeArray(s *scan.Scanner) (Element, error) {
	s.SkipSpace()
	if err := s.Expect('['); err != nil {
		return nil, err
	}

	arr := NewArray()
	s.SkipSpace()
	if c, ok := s.Peek(); ok && c == ']' {
		s.Advance()
		return arr, nil
	}

	for {
		el, err := decodeValue(s)
		if err != nil {
			return nil, err
		}
		arr.Append(el)

		s.SkipSpace()
		c, ok := s.Peek()
		switch {
		case !ok:
			return nil, s.Errorf("unterminated array, expected ',' or ']'")
		case c == ',':
			s.Advance()
			s.SkipSpace()
			if c, ok := s.Peek(); ok && c == ']' {
				return nil, s.Errorf("trailing comma before %q", c)
			}
		case c == ']':
			s.Advance()
			return arr, nil
		default:
			return nil, s.Errorf("unexpected character %q in array, expected ',' or ']'", c)
		}
	}
}

func decodeObject(s *scan.Scanner) (Element, error) {
	s.SkipSpace()
	if err := s.Expect('{'); err != nil {
		return nil, err
	}

	obj := NewObject()
	s.SkipSpace()
	if c, ok := s.Peek(); ok && c == '}' {
		s.Advance()
		return obj, nil
	}

	for {
		s.SkipSpace()
		if c, ok := s.Peek(); !ok || c != '"' {
			return nil, s.Errorf("expected object key")
		}
		key, err := decodeString(s)
		if err != nil {
			return nil, err
		}

		s.SkipSpace()
		if err := s.Expect(':'); err != nil {
			return nil, err
		}

		value, err := decodeValue(s)
		if err != nil {
			return nil, err
		}
		// Duplicate keys upsert: the first occurrence keeps its position.
		obj.Set(string(key.(String)), value)

		s.SkipSpace()
		c, ok := s.Peek()
		switch {
		case !ok:
			return nil, s.Errorf("unterminated object, expected ',' or '}'")
		case c == ',':
			s.Advance()
			s.SkipSpace()
			if c, ok := s.Peek(); ok && c == '}' {
				return nil, s.Errorf("trailing comma before %q", c)
			}
		case c == '}':
			s.Advance()
			return obj, nil
		default:
			return nil, s.Errorf("unexpected character %q in object, expected ',' or '}'", c)
		}
	}
}
