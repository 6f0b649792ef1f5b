package jdom

import (
	"encoding/json"
	"fmt"
	"slices"

	"github.com/shopspring/decimal"
)

// FromGo converts a Go value into an element. Accepted inputs: nil, bool,
// string, every integer and float width, json.Number, decimal.Decimal,
// []any, []Element, map[string]any and existing Elements. Map keys enter
// the object sorted, since Go maps carry no order. Anything else returns
// ErrArgument.
func FromGo(v any) (Element, error) {
	switch t := v.(type) {
	case nil:
		return Null{}, nil
	case Element:
		return t, nil
	case bool:
		return Bool(t), nil
	case string:
		return String(t), nil
	case int:
		return NumberFromInt(int64(t)), nil
	case int8:
		return NumberFromInt(int64(t)), nil
	case int16:
		return NumberFromInt(int64(t)), nil
	case int32:
		return NumberFromInt(int64(t)), nil
	case int64:
		return NumberFromInt(t), nil
	case uint:
		return NumberFromUint(uint64(t)), nil
	case uint8:
		return NumberFromUint(uint64(t)), nil
	case uint16:
		return NumberFromUint(uint64(t)), nil
	case uint32:
		return NumberFromUint(uint64(t)), nil
	case uint64:
		return NumberFromUint(t), nil
	case float32:
		n, err := NumberFromFloat(float64(t))
		if err != nil {
			return nil, err
		}
		return n, nil
	case float64:
		n, err := NumberFromFloat(t)
		if err != nil {
			return nil, err
		}
		return n, nil
	case json.Number:
		n, err := NumberFromString(string(t))
		if err != nil {
			return nil, fmt.Errorf("%w: invalid json.Number %q", ErrArgument, t)
		}
		return n, nil
	case decimal.Decimal:
		return NumberFromDecimal(t), nil
	case []Element:
		return NewArray(t...), nil
	case []any:
		arr := NewArray()
		for _, item := range t {
			el, err := FromGo(item)
			if err != nil {
				return nil, err
			}
			arr.Append(el)
		}
		return arr, nil
	case map[string]any:
		keys := make([]string, 0, len(t))
		for k := range t {
			keys = append(keys, k)
		}
		slices.Sort(keys)

		obj := NewObject()
		for _, k := range keys {
			el, err := FromGo(t[k])
			if err != nil {
				return nil, err
			}
			obj.Set(k, el)
		}
		return obj, nil
	default:
		return nil, fmt.Errorf("%w: cannot convert %T to an element", ErrArgument, v)
	}
}

func (Null) Native() any { return nil }

func (b Bool) Native() any { return bool(b) }

// Native returns the number as a json.Number so no precision is lost.
func (n Number) Native() any { return json.Number(n.literal()) }

func (s String) Native() any { return string(s) }

func (a *Array) Native() any {
	out := make([]any, len(a.items))
	for i, el := range a.items {
		out[i] = el.Native()
	}
	return out
}

func (o *Object) Native() any {
	out := make(map[string]any, len(o.members))
	for _, m := range o.members {
		out[m.key] = m.value.Native()
	}
	return out
}
