// Package query selects elements out of document trees: Select evaluates
// RFC 9535 JSONPath expressions, Glob matches wildcard patterns against
// dotted paths.
package query

import (
	"errors"
	"fmt"
	"strings"

	"github.com/theory/jsonpath"
	"github.com/tidwall/match"

	"github.com/jacoelho/jdom"
)

// ErrExpression is a JSONPath expression that does not compile.
var ErrExpression = errors.New("query: invalid expression")

// Select evaluates a JSONPath expression against root and returns every
// matched element, in document order.
//
// Numbers pass through float64 during evaluation so that filter
// comparisons such as $[?@.price > 10] behave as JSONPath specifies;
// selected numbers are re-rendered from that float64, so literals wider
// than float64 precision come back rounded.
func Select(root jdom.Element, expr string) ([]jdom.Element, error) {
	if root == nil {
		return nil, fmt.Errorf("%w: nil element", ErrExpression)
	}

	path, err := jsonpath.Parse(expr)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrExpression, err)
	}

	results := path.Select(selectable(root))

	out := make([]jdom.Element, 0, len(results))
	for _, r := range results {
		el, err := jdom.FromGo(r)
		if err != nil {
			return nil, fmt.Errorf("%w: result %v", ErrExpression, err)
		}
		out = append(out, el)
	}
	return out, nil
}

// selectable converts a tree into the untyped values jsonpath evaluates
// over: map[string]any, []any, string, bool, float64 and nil.
func selectable(el jdom.Element) any {
	switch t := el.(type) {
	case jdom.Number:
		f, _ := t.Decimal().Float64()
		return f
	case *jdom.Array:
		out := make([]any, t.Len())
		for i := range out {
			out[i] = selectable(t.At(i))
		}
		return out
	case *jdom.Object:
		out := make(map[string]any, t.Len())
		for _, k := range t.Keys() {
			v, _ := t.Get(k)
			out[k] = selectable(v)
		}
		return out
	default:
		return el.Native()
	}
}

// Match is one Glob hit: the dotted path from the root and the element
// found there.
type Match struct {
	Path  string
	Value jdom.Element
}

// Glob walks root and collects every descendant whose dotted path matches
// pattern. '*' matches any run of characters, '?' exactly one; both can
// cross the '.' separators, so "users.*" also matches "users.0.name".
// Array indices appear in paths as decimal strings. The root itself (the
// empty path) is never a match. Matches arrive in document order.
func Glob(root jdom.Element, pattern string) []Match {
	var out []Match
	jdom.Walk(root, func(path []string, el jdom.Element) bool {
		if len(path) == 0 {
			return true
		}
		dotted := strings.Join(path, ".")
		if match.Match(dotted, pattern) {
			out = append(out, Match{Path: dotted, Value: el})
		}
		return true
	})
	return out
}
