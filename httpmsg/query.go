package httpmsg

import (
	"fmt"
	"net/url"
	"strings"
)

// Param is one query parameter.
type Param struct {
	Key   string
	Value string
}

// Query is an ordered multi-valued parameter list. The same key may
// appear any number of times; order survives parsing, encoding and the
// With/Without copies.
type Query []Param

// ParseQuery decodes application/x-www-form-urlencoded text. Empty text
// is the empty query; a parameter without '=' decodes as key with an
// empty value.
func ParseQuery(text string) (Query, error) {
	if text == "" {
		return nil, nil
	}

	parts := strings.Split(text, "&")
	q := make(Query, 0, len(parts))
	for _, part := range parts {
		if part == "" {
			continue
		}
		rawKey, rawValue, _ := strings.Cut(part, "=")
		key, err := url.QueryUnescape(rawKey)
		if err != nil {
			return nil, fmt.Errorf("%w: query key %q: %v", ErrInvalid, rawKey, err)
		}
		value, err := url.QueryUnescape(rawValue)
		if err != nil {
			return nil, fmt.Errorf("%w: query value %q: %v", ErrInvalid, rawValue, err)
		}
		q = append(q, Param{Key: key, Value: value})
	}
	return q, nil
}

// MustQuery panics when text is not a valid query.
func MustQuery(text string) Query {
	q, err := ParseQuery(text)
	if err != nil {
		panic(err)
	}
	return q
}

// Get returns the value of the last parameter with key.
func (q Query) Get(key string) (string, bool) {
	for i := len(q) - 1; i >= 0; i-- {
		if q[i].Key == key {
			return q[i].Value, true
		}
	}
	return "", false
}

// GetAll returns every value for key, in order.
func (q Query) GetAll(key string) []string {
	var out []string
	for _, p := range q {
		if p.Key == key {
			out = append(out, p.Value)
		}
	}
	return out
}

// With returns a copy with key=value appended.
func (q Query) With(key, value string) Query {
	out := make(Query, len(q), len(q)+1)
	copy(out, q)
	return append(out, Param{Key: key, Value: value})
}

// Without returns a copy with every parameter named key removed.
func (q Query) Without(key string) Query {
	out := make(Query, 0, len(q))
	for _, p := range q {
		if p.Key != key {
			out = append(out, p)
		}
	}
	return out
}

// Encode renders application/x-www-form-urlencoded text in parameter
// order.
func (q Query) Encode() string {
	var b strings.Builder
	for i, p := range q {
		if i > 0 {
			b.WriteByte('&')
		}
		b.WriteString(url.QueryEscape(p.Key))
		b.WriteByte('=')
		b.WriteString(url.QueryEscape(p.Value))
	}
	return b.String()
}

func (q Query) String() string { return q.Encode() }
