package httpmsg

import (
	"fmt"
	"regexp"
	"strings"
)

// Header is one message header.
type Header struct {
	Name  string
	Value string
}

// RFC 9110: names are tokens; values may carry anything but control
// characters, tab excepted.
var (
	headerNamePattern  = regexp.MustCompile("^[!#$%&'*+\\-.^_`|~0-9A-Za-z]+$")
	headerValuePattern = regexp.MustCompile(`^[^\x00-\x08\x0a-\x1f\x7f]*$`)
)

// NewHeader validates a header name and value.
func NewHeader(name, value string) (Header, error) {
	if !headerNamePattern.MatchString(name) {
		return Header{}, fmt.Errorf("%w: header name %q", ErrInvalid, name)
	}
	if !headerValuePattern.MatchString(value) {
		return Header{}, fmt.Errorf("%w: header %s value %q", ErrInvalid, name, value)
	}
	return Header{Name: name, Value: value}, nil
}

// MustHeader panics when the name or value is invalid.
func MustHeader(name, value string) Header {
	h, err := NewHeader(name, value)
	if err != nil {
		panic(err)
	}
	return h
}

// Headers is an ordered multi-map of message headers. Lookups fold case;
// With and Without return copies, leaving the receiver untouched.
type Headers []Header

// Get returns the value of the last header matching name,
// case-insensitively.
func (h Headers) Get(name string) (string, bool) {
	for i := len(h) - 1; i >= 0; i-- {
		if strings.EqualFold(h[i].Name, name) {
			return h[i].Value, true
		}
	}
	return "", false
}

// GetAll returns every value for name in order, matching
// case-insensitively.
func (h Headers) GetAll(name string) []string {
	var out []string
	for _, header := range h {
		if strings.EqualFold(header.Name, name) {
			out = append(out, header.Value)
		}
	}
	return out
}

// With returns a copy with header appended.
func (h Headers) With(header Header) Headers {
	out := make(Headers, len(h), len(h)+1)
	copy(out, h)
	return append(out, header)
}

// Without returns a copy with every header matching name removed,
// case-insensitively.
func (h Headers) Without(name string) Headers {
	out := make(Headers, 0, len(h))
	for _, header := range h {
		if !strings.EqualFold(header.Name, name) {
			out = append(out, header)
		}
	}
	return out
}

// Names returns the distinct header names in first-seen order, original
// spelling, folding case for distinctness.
func (h Headers) Names() []string {
	var out []string
	for _, header := range h {
		seen := false
		for _, name := range out {
			if strings.EqualFold(name, header.Name) {
				seen = true
				break
			}
		}
		if !seen {
			out = append(out, header.Name)
		}
	}
	return out
}
