package jdom

import (
	"fmt"
	"strconv"
)

// Path operations walk the segment chain one composite layer per hop:
//
//   - On an array, the segment name must parse as a non-negative integer.
//     When it does not, the walk returns nil if the previous segment was
//     lenient, ErrArgument otherwise.
//   - An intermediate segment must resolve to a composite. A scalar in the
//     way returns nil when the segment is lenient, ErrTypeMismatch
//     otherwise; a missing child returns nil when the segment is optional,
//     ErrNotFound otherwise.
//   - The terminal segment applies the primitive.
//
// The walk is deterministic and never backtracks. Failed operations leave
// the tree untouched: hops only descend, and the single structural write
// happens at the terminal segment once every hop has validated.

type pathOp uint8

const (
	opQuery pathOp = iota
	opAssign
	opDelete
	opUpdate
)

func walkPath(root Composite, path *Segment, op pathOp, value Element, transform func(Element) Element) (Element, error) {
	if path == nil {
		return nil, fmt.Errorf("%w: nil path", ErrArgument)
	}

	cur := root
	for seg := path; ; seg = seg.next {
		idx := -1
		arr, isArray := cur.(*Array)
		if isArray {
			i, err := strconv.Atoi(seg.name)
			if err != nil || i < 0 {
				if seg.prev != nil && seg.prev.lenient {
					return nil, nil
				}
				return nil, fmt.Errorf("%w: invalid array index %q", ErrArgument, seg.name)
			}
			idx = i
		}

		if seg.next == nil {
			return applyTerminal(cur, seg.name, idx, op, value, transform)
		}

		var (
			child Element
			found bool
		)
		if isArray {
			child, found = arr.at(idx)
		} else {
			child, found = cur.(*Object).Get(seg.name)
		}

		if !found {
			if seg.optional {
				return nil, nil
			}
			return nil, fmt.Errorf("%w: segment %q", ErrNotFound, seg.name)
		}

		next, ok := child.(Composite)
		if !ok {
			if seg.lenient {
				return nil, nil
			}
			return nil, fmt.Errorf("%w: segment %q holds a %s, not a composite", ErrTypeMismatch, seg.name, child.Kind())
		}
		cur = next
	}
}

func applyTerminal(cur Composite, name string, idx int, op pathOp, value Element, transform func(Element) Element) (Element, error) {
	arr, isArray := cur.(*Array)
	obj, _ := cur.(*Object)

	read := func() Element {
		if isArray {
			return arr.At(idx)
		}
		el, _ := obj.Get(name)
		return el
	}

	switch op {
	case opQuery:
		return read(), nil

	case opAssign:
		if isArray {
			return arr.Set(idx, value), nil
		}
		return obj.Set(name, value), nil

	case opDelete:
		if isArray {
			return arr.Remove(idx), nil
		}
		return obj.Remove(name), nil

	default: // opUpdate
		current := read()
		result := transform(current)
		if result == current {
			return result, nil
		}
		if result == nil {
			if isArray {
				arr.Remove(idx)
			} else {
				obj.Remove(name)
			}
			return nil, nil
		}
		if isArray {
			arr.Set(idx, result)
		} else {
			obj.Set(name, result)
		}
		return result, nil
	}
}

func (o *Object) Query(path *Segment) (Element, error) {
	return walkPath(o, path, opQuery, nil, nil)
}

func (o *Object) Assign(path *Segment, value Element) (Element, error) {
	if value == nil {
		return nil, fmt.Errorf("%w: nil value, use Null{} for a JSON null", ErrArgument)
	}
	return walkPath(o, path, opAssign, value, nil)
}

func (o *Object) Delete(path *Segment) (Element, error) {
	return walkPath(o, path, opDelete, nil, nil)
}

func (o *Object) Update(path *Segment, transform func(Element) Element) (Element, error) {
	if transform == nil {
		return nil, fmt.Errorf("%w: nil transform", ErrArgument)
	}
	return walkPath(o, path, opUpdate, nil, transform)
}

func (a *Array) Query(path *Segment) (Element, error) {
	return walkPath(a, path, opQuery, nil, nil)
}

func (a *Array) Assign(path *Segment, value Element) (Element, error) {
	if value == nil {
		return nil, fmt.Errorf("%w: nil value, use Null{} for a JSON null", ErrArgument)
	}
	return walkPath(a, path, opAssign, value, nil)
}

func (a *Array) Delete(path *Segment) (Element, error) {
	return walkPath(a, path, opDelete, nil, nil)
}

func (a *Array) Update(path *Segment, transform func(Element) Element) (Element, error) {
	if transform == nil {
		return nil, fmt.Errorf("%w: nil transform", ErrArgument)
	}
	return walkPath(a, path, opUpdate, nil, transform)
}

// Query compiles path and queries root.
func Query(root Composite, path string) (Element, error) {
	p, err := compileFor(root, path)
	if err != nil {
		return nil, err
	}
	return root.Query(p)
}

// Assign compiles path and assigns value into root, returning the
// previous element at the target.
func Assign(root Composite, path string, value Element) (Element, error) {
	p, err := compileFor(root, path)
	if err != nil {
		return nil, err
	}
	return root.Assign(p, value)
}

// Delete compiles path and removes its target from root, returning the
// removed element.
func Delete(root Composite, path string) (Element, error) {
	p, err := compileFor(root, path)
	if err != nil {
		return nil, err
	}
	return root.Delete(p)
}

// Update compiles path and reconciles the element at its target through
// transform.
func Update(root Composite, path string, transform func(Element) Element) (Element, error) {
	p, err := compileFor(root, path)
	if err != nil {
		return nil, err
	}
	return root.Update(p, transform)
}

func compileFor(root Composite, path string) (*Segment, error) {
	if root == nil {
		return nil, fmt.Errorf("%w: nil composite", ErrArgument)
	}
	return ParsePath(path)
}

// Walk visits root and every descendant in document order. fn receives
// the path from root (array indices in decimal) and the element; a false
// return skips that element's children. The path slice is reused between
// calls: copy it before retaining.
func Walk(root Element, fn func(path []string, el Element) bool) {
	walkElement(root, nil, fn)
}

func walkElement(el Element, path []string, fn func(path []string, el Element) bool) {
	if el == nil || !fn(path, el) {
		return
	}
	switch c := el.(type) {
	case *Array:
		for i, item := range c.items {
			walkElement(item, append(path, strconv.Itoa(i)), fn)
		}
	case *Object:
		for _, m := range c.members {
			walkElement(m.value, append(path, m.key), fn)
		}
	}
}
