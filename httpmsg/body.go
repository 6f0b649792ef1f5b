package httpmsg

import "github.com/jacoelho/jdom"

// Body is a message payload. Bytes are copied on the way in and out, so
// a Body never shares storage with its callers.
type Body struct {
	data []byte
}

// NewBody copies data into a Body.
func NewBody(data []byte) Body {
	if len(data) == 0 {
		return Body{}
	}
	return Body{data: append([]byte(nil), data...)}
}

// BodyFromString returns the Body holding text.
func BodyFromString(text string) Body {
	return Body{data: []byte(text)}
}

// Bytes returns a copy of the payload.
func (b Body) Bytes() []byte {
	if len(b.data) == 0 {
		return nil
	}
	return append([]byte(nil), b.data...)
}

func (b Body) String() string { return string(b.data) }

func (b Body) Len() int { return len(b.data) }

func (b Body) IsEmpty() bool { return len(b.data) == 0 }

// Document parses the payload as a JSON document.
func (b Body) Document() (jdom.Element, error) {
	return jdom.Parse(string(b.data))
}
