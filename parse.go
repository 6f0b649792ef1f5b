package jdom

import (
	"errors"
	"fmt"
	"strings"

	"github.com/jacoelho/jdom/internal/scan"
)

// Parse decodes a complete JSON document of any kind. The input may carry
// leading and trailing whitespace; anything else around the single
// top-level literal is an ErrParse.
func Parse(src string) (Element, error) {
	return parseWith(src, decodeValue)
}

// ParseNull decodes a document that must be the null literal.
func ParseNull(src string) (Null, error) {
	el, err := parseWith(src, decodeNull)
	if err != nil {
		return Null{}, err
	}
	return el.(Null), nil
}

// ParseBool decodes a document that must be a boolean literal.
func ParseBool(src string) (Bool, error) {
	el, err := parseWith(src, decodeBool)
	if err != nil {
		return false, err
	}
	return el.(Bool), nil
}

// ParseNumber decodes a document that must be a number literal.
func ParseNumber(src string) (Number, error) {
	el, err := parseWith(src, decodeNumber)
	if err != nil {
		return Number{}, err
	}
	return el.(Number), nil
}

// ParseString decodes a document that must be a string literal.
func ParseString(src string) (String, error) {
	el, err := parseWith(src, decodeString)
	if err != nil {
		return "", err
	}
	return el.(String), nil
}

// ParseArray decodes a document that must be an array.
func ParseArray(src string) (*Array, error) {
	el, err := parseWith(src, decodeArray)
	if err != nil {
		return nil, err
	}
	return el.(*Array), nil
}

// ParseObject decodes a document that must be an object.
func ParseObject(src string) (*Object, error) {
	el, err := parseWith(src, decodeObject)
	if err != nil {
		return nil, err
	}
	return el.(*Object), nil
}

func parseWith(src string, decode func(*scan.Scanner) (Element, error)) (Element, error) {
	s := scan.New(src)

	el, err := decode(s)
	if err != nil {
		return nil, parseError(src, err)
	}

	s.SkipSpace()
	if c, ok := s.Peek(); ok {
		return nil, parseError(src, s.Errorf("unexpected character %q after value", c))
	}

	return el, nil
}

// parseError wraps a scanner error into ErrParse, embedding the failure
// offset and an excerpt of the source around it.
func parseError(src string, err error) error {
	var se *scan.Error
	if !errors.As(err, &se) {
		return fmt.Errorf("%w: %v", ErrParse, err)
	}
	return fmt.Errorf("%w: %s at offset %d\n%s", ErrParse, se.Msg, se.Offset, excerpt(src, se.Offset))
}

const excerptRadius = 30

// excerpt renders a window of src around off with a column marker:
//
//	{"a": 1,}
//	        ^
//
// Whitespace control characters inside the window become plain spaces so
// the marker stays aligned.
func excerpt(src string, off int) string {
	lo := off - excerptRadius
	if lo < 0 {
		lo = 0
	}
	hi := off + excerptRadius
	if hi > len(src) {
		hi = len(src)
	}

	var b strings.Builder
	for i := lo; i < hi; i++ {
		c := src[i]
		if c == '\n' || c == '\r' || c == '\t' {
			c = ' '
		}
		b.WriteByte(c)
	}
	b.WriteByte('\n')
	for i := lo; i < off; i++ {
		b.WriteByte(' ')
	}
	b.WriteByte('^')
	return b.String()
}
