package jdom

// Array is an ordered sequence of elements.
type Array struct {
	items []Element
}

// NewArray returns an array holding the given elements. The argument
// slice is copied.
func NewArray(items ...Element) *Array {
	a := &Array{}
	if len(items) > 0 {
		a.items = append([]Element(nil), items...)
	}
	return a
}

// Len is the number of elements.
func (a *Array) Len() int { return len(a.items) }

// At returns the element at index i, or nil when out of range.
func (a *Array) At(i int) Element {
	el, _ := a.at(i)
	return el
}

func (a *Array) at(i int) (Element, bool) {
	if i < 0 || i >= len(a.items) {
		return nil, false
	}
	return a.items[i], true
}

// Append adds elements at the end.
func (a *Array) Append(items ...Element) {
	a.items = append(a.items, items...)
}

// Set stores value at index i and returns the previous element there.
// Setting past the end pads the gap with Null; the padded Null is the
// returned previous element for a fresh index. Set panics when i is
// negative.
func (a *Array) Set(i int, value Element) Element {
	for i >= len(a.items) {
		a.items = append(a.items, Null{})
	}
	prev := a.items[i]
	a.items[i] = value
	return prev
}

// Remove deletes the element at index i, shifts later elements down and
// returns it. Out-of-range indices are a no-op returning nil.
func (a *Array) Remove(i int) Element {
	if i < 0 || i >= len(a.items) {
		return nil
	}
	el := a.items[i]
	a.items = append(a.items[:i], a.items[i+1:]...)
	return el
}

func (a *Array) Kind() Kind { return KindArray }

// Equal compares element-wise, in order.
func (a *Array) Equal(other Element) bool {
	o, ok := other.(*Array)
	if !ok || len(o.items) != len(a.items) {
		return false
	}
	for i, el := range a.items {
		if !el.Equal(o.items[i]) {
			return false
		}
	}
	return true
}

func (a *Array) Hash() uint64 {
	h := hashByte(fnvOffset, byte(KindArray))
	for _, el := range a.items {
		h = hashUint64(h, el.Hash())
	}
	return h
}

// Clone returns an array with fresh backing storage sharing the same
// child elements.
func (a *Array) Clone() Element {
	return NewArray(a.items...)
}
