package httpmsg

import (
	"fmt"
	"regexp"
	"strings"
)

// URI is a scheme:[//authority]path[?query][#fragment] reference with
// every component validated. String reassembles the components; the
// scheme and host come back in their lowercase canonical form, and
// numeric port text normalizes, so equal URIs render equal text.
type URI struct {
	scheme       Scheme
	authority    Authority
	hasAuthority bool
	path         string
	rawQuery     string
	query        Query
	hasQuery     bool
	fragment     string
	hasFragment  bool
}

// Component split from RFC 3986 appendix B. Groups: scheme, authority,
// path, query, fragment. The pattern matches any text; component
// validation does the rejecting.
var uriPattern = regexp.MustCompile(`^(?:([^:/?#]+):)?(?://([^/?#]*))?([^?#]*)(?:\?([^#]*))?(?:#(.*))?$`)

var (
	pathPattern     = regexp.MustCompile(`^(?:[A-Za-z0-9\-._~!$&'()*+,;=:@/]|%[0-9A-Fa-f]{2})*$`)
	fragmentPattern = regexp.MustCompile(`^(?:[A-Za-z0-9\-._~!$&'()*+,;=:@/?]|%[0-9A-Fa-f]{2})*$`)
)

// ParseURI splits text per RFC 3986 appendix B and validates each
// component. The scheme is required; authority, query and fragment are
// kept only when their delimiters appear, so String can tell a trailing
// '?' from no query at all.
func ParseURI(text string) (URI, error) {
	m := uriPattern.FindStringSubmatchIndex(text)
	if m == nil {
		// Only a newline in the fragment defeats the split pattern.
		return URI{}, fmt.Errorf("%w: URI %q", ErrInvalid, text)
	}
	group := func(i int) (string, bool) {
		lo, hi := m[2*i], m[2*i+1]
		if lo < 0 {
			return "", false
		}
		return text[lo:hi], true
	}

	schemeText, hasScheme := group(1)
	if !hasScheme {
		return URI{}, fmt.Errorf("%w: URI %q has no scheme", ErrInvalid, text)
	}
	scheme, err := NewScheme(schemeText)
	if err != nil {
		return URI{}, err
	}

	u := URI{scheme: scheme}

	if authorityText, ok := group(2); ok {
		authority, err := ParseAuthority(authorityText)
		if err != nil {
			return URI{}, err
		}
		u.authority, u.hasAuthority = authority, true
	}

	pathText, _ := group(3)
	if !pathPattern.MatchString(pathText) {
		return URI{}, fmt.Errorf("%w: path %q", ErrInvalid, pathText)
	}
	if u.hasAuthority && pathText != "" && !strings.HasPrefix(pathText, "/") {
		return URI{}, fmt.Errorf("%w: path %q after an authority must start with '/'", ErrInvalid, pathText)
	}
	u.path = pathText

	if queryText, ok := group(4); ok {
		query, err := ParseQuery(queryText)
		if err != nil {
			return URI{}, err
		}
		u.rawQuery, u.query, u.hasQuery = queryText, query, true
	}

	if fragmentText, ok := group(5); ok {
		if !fragmentPattern.MatchString(fragmentText) {
			return URI{}, fmt.Errorf("%w: fragment %q", ErrInvalid, fragmentText)
		}
		u.fragment, u.hasFragment = fragmentText, true
	}

	return u, nil
}

// MustURI panics when text is not a valid URI.
func MustURI(text string) URI {
	u, err := ParseURI(text)
	if err != nil {
		panic(err)
	}
	return u
}

func (u URI) Scheme() Scheme { return u.scheme }

// Authority returns the authority when the URI carries one.
func (u URI) Authority() (Authority, bool) { return u.authority, u.hasAuthority }

func (u URI) Path() string { return u.path }

// Query returns the decoded query parameters when the URI carries a
// query.
func (u URI) Query() (Query, bool) { return u.query, u.hasQuery }

// RawQuery returns the query exactly as written, percent escapes intact.
func (u URI) RawQuery() (string, bool) { return u.rawQuery, u.hasQuery }

// Fragment returns the fragment when the URI carries one.
func (u URI) Fragment() (string, bool) { return u.fragment, u.hasFragment }

func (u URI) String() string {
	var b strings.Builder
	b.WriteString(u.scheme.name)
	b.WriteByte(':')
	if u.hasAuthority {
		b.WriteString("//")
		b.WriteString(u.authority.String())
	}
	b.WriteString(u.path)
	if u.hasQuery {
		b.WriteByte('?')
		b.WriteString(u.rawQuery)
	}
	if u.hasFragment {
		b.WriteByte('#')
		b.WriteString(u.fragment)
	}
	return b.String()
}
