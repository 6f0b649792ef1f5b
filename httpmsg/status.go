package httpmsg

import (
	"fmt"
	"net/http"
	"strconv"
)

// Status is an HTTP response status code.
type Status struct {
	code int
}

// NewStatus validates that code is within 100 through 599.
func NewStatus(code int) (Status, error) {
	if code < 100 || code > 599 {
		return Status{}, fmt.Errorf("%w: status code %d out of range", ErrInvalid, code)
	}
	return Status{code: code}, nil
}

// ParseStatus validates decimal status code text.
func ParseStatus(text string) (Status, error) {
	code, err := strconv.Atoi(text)
	if err != nil {
		return Status{}, fmt.Errorf("%w: status code %q", ErrInvalid, text)
	}
	return NewStatus(code)
}

// MustStatus panics when code is out of range.
func MustStatus(code int) Status {
	s, err := NewStatus(code)
	if err != nil {
		panic(err)
	}
	return s
}

func (s Status) Code() int { return s.code }

// Reason returns the registered reason phrase, or "" for unassigned
// codes.
func (s Status) Reason() string { return http.StatusText(s.code) }

// String renders "code reason", or the bare code where no phrase is
// registered.
func (s Status) String() string {
	reason := s.Reason()
	if reason == "" {
		return strconv.Itoa(s.code)
	}
	return strconv.Itoa(s.code) + " " + reason
}

func (s Status) Informational() bool { return s.code >= 100 && s.code <= 199 }

func (s Status) Successful() bool { return s.code >= 200 && s.code <= 299 }

func (s Status) Redirection() bool { return s.code >= 300 && s.code <= 399 }

func (s Status) ClientError() bool { return s.code >= 400 && s.code <= 499 }

func (s Status) ServerError() bool { return s.code >= 500 && s.code <= 599 }
