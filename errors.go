package jdom

import "errors"

// Error kinds, discriminated with errors.Is. Optional and lenient path
// segments never produce errors; their short-circuits return nil elements.
var (
	// ErrParse is malformed document text. A failed parse returns no
	// partial tree; the message carries the byte offset and an excerpt
	// of the source around it.
	ErrParse = errors.New("jdom: parse error")

	// ErrArgument is a malformed call: an unparsable path expression, a
	// segment that must index an array but is not a non-negative integer,
	// or a nil value where an element is required.
	ErrArgument = errors.New("jdom: invalid argument")

	// ErrNotFound is an absent intermediate segment without the optional
	// flag.
	ErrNotFound = errors.New("jdom: path not found")

	// ErrTypeMismatch is a scalar blocking an intermediate segment without
	// the lenient flag.
	ErrTypeMismatch = errors.New("jdom: type mismatch")
)
