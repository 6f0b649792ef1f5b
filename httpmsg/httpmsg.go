// Package httpmsg holds the value objects of HTTP messages: schemes,
// hosts, ports, authorities, URIs, query parameters, headers, status
// codes and bodies. Every type is an immutable wrapper constructed
// through a validating function; Must variants panic and exist for tests
// and fixtures. JSON bodies parse into document trees through
// Body.Document.
package httpmsg

import "errors"

// ErrInvalid wraps every validation failure in this package.
var ErrInvalid = errors.New("httpmsg: invalid value")
