package jdom

// Kind identifies the concrete variant of an Element.
type Kind uint8

const (
	KindNull Kind = iota
	KindBool
	KindNumber
	KindString
	KindArray
	KindObject
)

var kindNames = [...]string{
	KindNull:   "null",
	KindBool:   "boolean",
	KindNumber: "number",
	KindString: "string",
	KindArray:  "array",
	KindObject: "object",
}

func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return "unknown"
}

// Element is one node of a document tree. The variant set is closed:
// Null, Bool, Number, String, *Array and *Object.
//
// A nil Element means "no element" (an absent child, a short-circuited
// path); the JSON null value is the distinct Null{}.
type Element interface {
	// Kind reports the concrete variant.
	Kind() Kind

	// Equal reports structural, value-based equality. Numbers compare by
	// numeric value, so Parse("1") equals Parse("1.0"); object members
	// compare regardless of insertion order; array elements in order.
	Equal(other Element) bool

	// Hash returns a structural hash consistent with Equal.
	Hash() uint64

	// Clone copies the element. Composite clones get fresh backing
	// storage but share their child elements; scalars return themselves.
	Clone() Element

	// Compact renders the minimal single-line textual form.
	Compact() string

	// Pretty renders the element with one child per line. indent prefixes
	// the current level; tab is appended once per nesting level.
	Pretty(indent, tab string) string

	// Native converts to untyped Go values: nil, bool, json.Number,
	// string, []any and map[string]any. Object member order is not
	// representable in a Go map and is lost.
	Native() any

	appendCompact(dst []byte) []byte
	appendPretty(dst []byte, indent, tab string) []byte
}

// Composite is a container element. Only *Array and *Object implement it;
// the path operations exist only on composites.
type Composite interface {
	Element

	// Len is the number of direct children.
	Len() int

	// Query returns the element the path addresses, or nil when the walk
	// short-circuits through an optional or lenient segment or the
	// terminal child is absent.
	Query(path *Segment) (Element, error)

	// Assign sets the element the path addresses to value and returns the
	// previous element at that position, or nil when there was none.
	// Assigning past the end of an array pads the gap with Null.
	Assign(path *Segment, value Element) (Element, error)

	// Delete removes the element the path addresses and returns it, or
	// nil when there was nothing to remove.
	Delete(path *Segment) (Element, error)

	// Update reads the element the path addresses, applies transform and
	// reconciles: an identical result is a no-op, a nil result deletes,
	// anything else is assigned. Returns the final element at the path.
	Update(path *Segment, transform func(Element) Element) (Element, error)
}

// Null is the JSON null value.
type Null struct{}

func (Null) Kind() Kind { return KindNull }

func (Null) Equal(other Element) bool {
	_, ok := other.(Null)
	return ok
}

func (Null) Hash() uint64 { return hashByte(fnvOffset, byte(KindNull)) }

func (n Null) Clone() Element { return n }

// Bool is a JSON boolean.
type Bool bool

func (b Bool) Kind() Kind { return KindBool }

func (b Bool) Equal(other Element) bool {
	o, ok := other.(Bool)
	return ok && o == b
}

func (b Bool) Hash() uint64 {
	h := hashByte(fnvOffset, byte(KindBool))
	if b {
		return hashByte(h, 1)
	}
	return hashByte(h, 0)
}

func (b Bool) Clone() Element { return b }

// String is a JSON string holding decoded text: escape sequences from the
// source are already reversed.
type String string

func (s String) Kind() Kind { return KindString }

func (s String) Equal(other Element) bool {
	o, ok := other.(String)
	return ok && o == s
}

func (s String) Hash() uint64 {
	return hashString(hashByte(fnvOffset, byte(KindString)), string(s))
}

func (s String) Clone() Element { return s }

// FNV-1a, folded inline so composite hashes can mix child hashes without
// allocating hash.Hash64 values.
const (
	fnvOffset uint64 = 14695981039346656037
	fnvPrime  uint64 = 1099511628211
)

func hashByte(h uint64, b byte) uint64 {
	h ^= uint64(b)
	h *= fnvPrime
	return h
}

func hashString(h uint64, s string) uint64 {
	for i := 0; i < len(s); i++ {
		h = hashByte(h, s[i])
	}
	return h
}

func hashUint64(h uint64, v uint64) uint64 {
	for i := 0; i < 8; i++ {
		h = hashByte(h, byte(v>>(8*i)))
	}
	return h
}

var (
	_ Element   = Null{}
	_ Element   = Bool(false)
	_ Element   = Number{}
	_ Element   = String("")
	_ Composite = (*Array)(nil)
	_ Composite = (*Object)(nil)
)
