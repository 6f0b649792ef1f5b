package jdom

type member struct {
	key   string
	value Element
}

// Object is an insertion-ordered mapping of string keys to elements.
// Keys are unique: setting an existing key keeps its position and
// replaces its value, a brand-new key is appended.
type Object struct {
	members []member
}

// NewObject returns an empty object.
func NewObject() *Object { return &Object{} }

// Len is the number of members.
func (o *Object) Len() int { return len(o.members) }

// Get returns the element stored under key.
func (o *Object) Get(key string) (Element, bool) {
	for _, m := range o.members {
		if m.key == key {
			return m.value, true
		}
	}
	return nil, false
}

// Keys returns the keys in insertion order.
func (o *Object) Keys() []string {
	keys := make([]string, len(o.members))
	for i, m := range o.members {
		keys[i] = m.key
	}
	return keys
}

// Set stores value under key and returns the previous element, or nil
// when the key is new.
func (o *Object) Set(key string, value Element) Element {
	for i, m := range o.members {
		if m.key == key {
			o.members[i].value = value
			return m.value
		}
	}
	o.members = append(o.members, member{key: key, value: value})
	return nil
}

// Remove deletes key and returns its element, or nil when absent.
func (o *Object) Remove(key string) Element {
	for i, m := range o.members {
		if m.key == key {
			o.members = append(o.members[:i], o.members[i+1:]...)
			return m.value
		}
	}
	return nil
}

func (o *Object) Kind() Kind { return KindObject }

// Equal is insensitive to member order: the same keys mapping to equal
// elements match regardless of insertion history.
func (o *Object) Equal(other Element) bool {
	t, ok := other.(*Object)
	if !ok || len(t.members) != len(o.members) {
		return false
	}
	for _, m := range o.members {
		v, found := t.Get(m.key)
		if !found || !m.value.Equal(v) {
			return false
		}
	}
	return true
}

func (o *Object) Hash() uint64 {
	// Member hashes combine commutatively so that hashes agree whenever
	// Equal does, independent of insertion order.
	var sum uint64
	for _, m := range o.members {
		mh := hashString(fnvOffset, m.key)
		mh = hashUint64(mh, m.value.Hash())
		sum += mh
	}
	return hashUint64(hashByte(fnvOffset, byte(KindObject)), sum)
}

// Clone returns an object with fresh backing storage sharing the same
// child elements.
func (o *Object) Clone() Element {
	c := &Object{members: make([]member, len(o.members))}
	copy(c.members, o.members)
	return c
}
