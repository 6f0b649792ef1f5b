// Package yamlconv bridges YAML documents and element trees. Mapping
// order survives both directions: decoding keeps members in source order,
// encoding emits them in insertion order.
package yamlconv

import (
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/goccy/go-yaml"

	"github.com/jacoelho/jdom"
)

// ErrYAML wraps every failure of this package.
var ErrYAML = errors.New("yamlconv: invalid document")

// Decode turns one YAML document into an element tree. Mappings become
// objects in source order, sequences become arrays, integers and floats
// become numbers. YAML-only scalars serialize into strings: timestamps as
// RFC 3339 text, binary as its raw bytes.
func Decode(data []byte) (jdom.Element, error) {
	var v any
	if err := yaml.UnmarshalWithOptions(data, &v, yaml.UseOrderedMap()); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrYAML, err)
	}
	return fromYAML(v)
}

func fromYAML(v any) (jdom.Element, error) {
	switch t := v.(type) {
	case nil:
		return jdom.Null{}, nil
	case bool:
		return jdom.Bool(t), nil
	case string:
		return jdom.String(t), nil
	case []byte:
		return jdom.String(t), nil
	case int:
		return jdom.NumberFromInt(int64(t)), nil
	case int64:
		return jdom.NumberFromInt(t), nil
	case uint64:
		return jdom.NumberFromUint(t), nil
	case float64:
		n, err := jdom.NumberFromFloat(t)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrYAML, err)
		}
		return n, nil
	case time.Time:
		return jdom.String(t.Format(time.RFC3339)), nil
	case yaml.MapSlice:
		obj := jdom.NewObject()
		for _, item := range t {
			val, err := fromYAML(item.Value)
			if err != nil {
				return nil, err
			}
			obj.Set(mapKey(item.Key), val)
		}
		return obj, nil
	case map[string]any:
		// Plain maps carry no order; FromGo sorts their keys.
		return jdom.FromGo(t)
	case []any:
		arr := jdom.NewArray()
		for _, item := range t {
			el, err := fromYAML(item)
			if err != nil {
				return nil, err
			}
			arr.Append(el)
		}
		return arr, nil
	default:
		return nil, fmt.Errorf("%w: unsupported value %T", ErrYAML, v)
	}
}

// mapKey renders a YAML mapping key as an object key. YAML permits
// non-string scalar keys; objects do not, so those keep their scalar
// text.
func mapKey(k any) string {
	switch t := k.(type) {
	case string:
		return t
	case nil:
		return "null"
	case bool:
		return strconv.FormatBool(t)
	case int64:
		return strconv.FormatInt(t, 10)
	case uint64:
		return strconv.FormatUint(t, 10)
	case float64:
		return strconv.FormatFloat(t, 'g', -1, 64)
	default:
		return fmt.Sprint(t)
	}
}

// Encode renders an element tree as a YAML document. Integral numbers
// encode as YAML integers; everything else passes through float64, so
// literals wider than float64 precision come back rounded.
func Encode(el jdom.Element) ([]byte, error) {
	if el == nil {
		return nil, fmt.Errorf("%w: nil element", ErrYAML)
	}
	out, err := yaml.Marshal(toYAML(el))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrYAML, err)
	}
	return out, nil
}

func toYAML(el jdom.Element) any {
	switch t := el.(type) {
	case jdom.Bool:
		return bool(t)
	case jdom.Number:
		return yamlNumber(t)
	case jdom.String:
		return string(t)
	case *jdom.Array:
		out := make([]any, t.Len())
		for i := range out {
			out[i] = toYAML(t.At(i))
		}
		return out
	case *jdom.Object:
		out := make(yaml.MapSlice, 0, t.Len())
		for _, k := range t.Keys() {
			v, _ := t.Get(k)
			out = append(out, yaml.MapItem{Key: k, Value: toYAML(v)})
		}
		return out
	default: // jdom.Null
		return nil
	}
}

func yamlNumber(n jdom.Number) any {
	d := n.Decimal()
	if d.IsInteger() {
		i := d.BigInt()
		if i.IsInt64() {
			return i.Int64()
		}
		if i.IsUint64() {
			return i.Uint64()
		}
	}
	f, _ := d.Float64()
	return f
}
