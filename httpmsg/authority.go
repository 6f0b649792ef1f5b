package httpmsg

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// UserInfo is the user information subcomponent of an authority, kept
// percent-encoded exactly as written.
type UserInfo struct {
	value string
}

// RFC 3986 section 3.2.1: unreserved / pct-encoded / sub-delims / ":".
var userInfoPattern = regexp.MustCompile(`^(?:[A-Za-z0-9\-._~!$&'()*+,;=:]|%[0-9A-Fa-f]{2})*$`)

// NewUserInfo validates the user information text.
func NewUserInfo(value string) (UserInfo, error) {
	if !userInfoPattern.MatchString(value) {
		return UserInfo{}, fmt.Errorf("%w: user info %q", ErrInvalid, value)
	}
	return UserInfo{value: value}, nil
}

// MustUserInfo panics when value is not valid user information.
func MustUserInfo(value string) UserInfo {
	u, err := NewUserInfo(value)
	if err != nil {
		panic(err)
	}
	return u
}

func (u UserInfo) String() string { return u.value }

// Host is a registered name, an IPv4 address or a bracketed IPv6
// literal. Host names compare case-insensitively, so construction folds
// to lowercase.
type Host struct {
	name string
}

// RFC 3986 section 3.2.2. The reg-name production also covers dotted
// IPv4 text; IPv6 literals stay inside their brackets.
var (
	hostNamePattern = regexp.MustCompile(`^(?:[A-Za-z0-9\-._~!$&'()*+,;=]|%[0-9A-Fa-f]{2})+$`)
	hostIPv6Pattern = regexp.MustCompile(`^\[[0-9A-Fa-f:.]+\]$`)
)

// NewHost validates and canonicalizes a host.
func NewHost(name string) (Host, error) {
	if !hostNamePattern.MatchString(name) && !hostIPv6Pattern.MatchString(name) {
		return Host{}, fmt.Errorf("%w: host %q", ErrInvalid, name)
	}
	return Host{name: strings.ToLower(name)}, nil
}

// MustHost panics when name is not a valid host.
func MustHost(name string) Host {
	h, err := NewHost(name)
	if err != nil {
		panic(err)
	}
	return h
}

func (h Host) String() string { return h.name }

// Port is a TCP or UDP port number.
type Port struct {
	number int
}

// NewPort validates that number is within 0 through 65535.
func NewPort(number int) (Port, error) {
	if number < 0 || number > 65535 {
		return Port{}, fmt.Errorf("%w: port %d out of range", ErrInvalid, number)
	}
	return Port{number: number}, nil
}

// ParsePort validates decimal port text.
func ParsePort(text string) (Port, error) {
	number, err := strconv.Atoi(text)
	if err != nil {
		return Port{}, fmt.Errorf("%w: port %q", ErrInvalid, text)
	}
	return NewPort(number)
}

// MustPort panics when number is out of range.
func MustPort(number int) Port {
	p, err := NewPort(number)
	if err != nil {
		panic(err)
	}
	return p
}

func (p Port) Number() int { return p.number }

func (p Port) String() string { return strconv.Itoa(p.number) }

// Authority is the [userinfo@]host[:port] component of a URI. User
// information and port are optional; the host is required.
type Authority struct {
	user    UserInfo
	hasUser bool
	host    Host
	port    Port
	hasPort bool
}

// NewAuthority returns the authority for host alone.
func NewAuthority(host Host) Authority {
	return Authority{host: host}
}

// ParseAuthority splits and validates [userinfo@]host[:port] text.
func ParseAuthority(text string) (Authority, error) {
	var a Authority

	rest := text
	if i := strings.Index(rest, "@"); i >= 0 {
		user, err := NewUserInfo(rest[:i])
		if err != nil {
			return Authority{}, err
		}
		a.user, a.hasUser = user, true
		rest = rest[i+1:]
	}

	hostText, portText, hasPort, err := splitHostPort(rest)
	if err != nil {
		return Authority{}, err
	}

	host, err := NewHost(hostText)
	if err != nil {
		return Authority{}, err
	}
	a.host = host

	if hasPort {
		port, err := ParsePort(portText)
		if err != nil {
			return Authority{}, err
		}
		a.port, a.hasPort = port, true
	}
	return a, nil
}

// MustAuthority panics when text is not a valid authority.
func MustAuthority(text string) Authority {
	a, err := ParseAuthority(text)
	if err != nil {
		panic(err)
	}
	return a
}

// splitHostPort separates the optional :port suffix, leaving the colons
// of a bracketed IPv6 literal alone.
func splitHostPort(text string) (host, port string, hasPort bool, err error) {
	if strings.HasPrefix(text, "[") {
		end := strings.Index(text, "]")
		if end < 0 {
			return "", "", false, fmt.Errorf("%w: unterminated IPv6 literal in %q", ErrInvalid, text)
		}
		host = text[:end+1]
		tail := text[end+1:]
		switch {
		case tail == "":
			return host, "", false, nil
		case strings.HasPrefix(tail, ":"):
			return host, tail[1:], true, nil
		default:
			return "", "", false, fmt.Errorf("%w: text after IPv6 literal in %q", ErrInvalid, text)
		}
	}
	if i := strings.LastIndex(text, ":"); i >= 0 {
		return text[:i], text[i+1:], true, nil
	}
	return text, "", false, nil
}

// WithUser returns a copy carrying user.
func (a Authority) WithUser(user UserInfo) Authority {
	a.user, a.hasUser = user, true
	return a
}

// WithPort returns a copy carrying port.
func (a Authority) WithPort(port Port) Authority {
	a.port, a.hasPort = port, true
	return a
}

// User returns the user information when present.
func (a Authority) User() (UserInfo, bool) { return a.user, a.hasUser }

func (a Authority) Host() Host { return a.host }

// Port returns the port when present.
func (a Authority) Port() (Port, bool) { return a.port, a.hasPort }

func (a Authority) String() string {
	var b strings.Builder
	if a.hasUser {
		b.WriteString(a.user.value)
		b.WriteByte('@')
	}
	b.WriteString(a.host.name)
	if a.hasPort {
		b.WriteByte(':')
		b.WriteString(a.port.String())
	}
	return b.String()
}
