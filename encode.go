package jdom

// Serializers. Compact emits no whitespace at all; Pretty emits one child
// per line, each indented one tab deeper than its parent, with ": "
// between object keys and values. Empty composites render as their bare
// delimiter pair in both forms.

func compactString(e Element) string {
	return string(e.appendCompact(nil))
}

func prettyString(e Element, indent, tab string) string {
	return string(e.appendPretty(nil, indent, tab))
}

func (n Null) Compact() string                  { return compactString(n) }
func (n Null) Pretty(indent, tab string) string { return prettyString(n, indent, tab) }

func (b Bool) Compact() string                  { return compactString(b) }
func (b Bool) Pretty(indent, tab string) string { return prettyString(b, indent, tab) }

func (n Number) Compact() string                  { return compactString(n) }
func (n Number) Pretty(indent, tab string) string { return prettyString(n, indent, tab) }

func (s String) Compact() string                  { return compactString(s) }
func (s String) Pretty(indent, tab string) string { return prettyString(s, indent, tab) }

func (a *Array) Compact() string                  { return compactString(a) }
func (a *Array) Pretty(indent, tab string) string { return prettyString(a, indent, tab) }

func (o *Object) Compact() string                  { return compactString(o) }
func (o *Object) Pretty(indent, tab string) string { return prettyString(o, indent, tab) }

func (n Null) appendCompact(dst []byte) []byte {
	return append(dst, "null"...)
}

func (b Bool) appendCompact(dst []byte) []byte {
	if b {
		return append(dst, "true"...)
	}
	return append(dst, "false"...)
}

func (n Number) appendCompact(dst []byte) []byte {
	return append(dst, n.literal()...)
}

func (s String) appendCompact(dst []byte) []byte {
	return appendQuoted(dst, string(s))
}

func (a *Array) appendCompact(dst []byte) []byte {
	dst = append(dst, '[')
	for i, el := range a.items {
		if i > 0 {
			dst = append(dst, ',')
		}
		dst = el.appendCompact(dst)
	}
	return append(dst, ']')
}

func (o *Object) appendCompact(dst []byte) []byte {
	dst = append(dst, '{')
	for i, m := range o.members {
		if i > 0 {
			dst = append(dst, ',')
		}
		dst = appendQuoted(dst, m.key)
		dst = append(dst, ':')
		dst = m.value.appendCompact(dst)
	}
	return append(dst, '}')
}

func (n Null) appendPretty(dst []byte, _, _ string) []byte   { return n.appendCompact(dst) }
func (b Bool) appendPretty(dst []byte, _, _ string) []byte   { return b.appendCompact(dst) }
func (n Number) appendPretty(dst []byte, _, _ string) []byte { return n.appendCompact(dst) }
func (s String) appendPretty(dst []byte, _, _ string) []byte { return s.appendCompact(dst) }

func (a *Array) appendPretty(dst []byte, indent, tab string) []byte {
	if len(a.items) == 0 {
		return append(dst, "[]"...)
	}
	inner := indent + tab
	dst = append(dst, '[', '\n')
	for i, el := range a.items {
		if i > 0 {
			dst = append(dst, ',', '\n')
		}
		dst = append(dst, inner...)
		dst = el.appendPretty(dst, inner, tab)
	}
	dst = append(dst, '\n')
	dst = append(dst, indent...)
	return append(dst, ']')
}

func (o *Object) appendPretty(dst []byte, indent, tab string) []byte {
	if len(o.members) == 0 {
		return append(dst, "{}"...)
	}
	inner := indent + tab
	dst = append(dst, '{', '\n')
	for i, m := range o.members {
		if i > 0 {
			dst = append(dst, ',', '\n')
		}
		dst = append(dst, inner...)
		dst = appendQuoted(dst, m.key)
		dst = append(dst, ':', ' ')
		dst = m.value.appendPretty(dst, inner, tab)
	}
	dst = append(dst, '\n')
	dst = append(dst, indent...)
	return append(dst, '}')
}

const hexDigits = "0123456789abcdef"

// appendQuoted writes s as a JSON string. Quote, backslash and control
// characters are escaped; the forward slash never is. Bytes above 0x1f
// pass through untouched, so UTF-8 text is preserved as written.
func appendQuoted(dst []byte, s string) []byte {
	dst = append(dst, '"')
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case c == '"':
			dst = append(dst, '\\', '"')
		case c == '\\':
			dst = append(dst, '\\', '\\')
		case c >= 0x20:
			dst = append(dst, c)
		case c == '\b':
			dst = append(dst, '\\', 'b')
		case c == '\f':
			dst = append(dst, '\\', 'f')
		case c == '\n':
			dst = append(dst, '\\', 'n')
		case c == '\r':
			dst = append(dst, '\\', 'r')
		case c == '\t':
			dst = append(dst, '\\', 't')
		default:
			dst = append(dst, '\\', 'u', '0', '0', hexDigits[c>>4], hexDigits[c&0xf])
		}
	}
	return append(dst, '"')
}
