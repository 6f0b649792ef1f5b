package httpmsg

import (
	"fmt"
	"regexp"
	"strings"
)

// Scheme is a URI scheme. Schemes compare case-insensitively, so
// construction folds to the lowercase canonical form.
type Scheme struct {
	name string
}

// RFC 3986 section 3.1.
var schemePattern = regexp.MustCompile(`^[A-Za-z][A-Za-z0-9+.-]*$`)

// Well-known schemes.
var (
	SchemeHTTP  = Scheme{name: "http"}
	SchemeHTTPS = Scheme{name: "https"}
)

// NewScheme validates and canonicalizes a scheme name.
func NewScheme(name string) (Scheme, error) {
	if !schemePattern.MatchString(name) {
		return Scheme{}, fmt.Errorf("%w: scheme %q", ErrInvalid, name)
	}
	return Scheme{name: strings.ToLower(name)}, nil
}

// MustScheme panics when name is not a valid scheme.
func MustScheme(name string) Scheme {
	s, err := NewScheme(name)
	if err != nil {
		panic(err)
	}
	return s
}

func (s Scheme) String() string { return s.name }

// IsZero reports an unset scheme.
func (s Scheme) IsZero() bool { return s.name == "" }
