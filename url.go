package rtsp

import (
	"fmt"
	"strconv"
	"strings"
)

// DefaultPort is the well-known RTSP port. ParseURL never fills it in; use PortOr.
const DefaultPort uint16 = 554

// URL is a parsed RTSP resource locator. Abspath and Query keep their
// percent-escapes; use DecodePathComponents to decode the path.
type URL struct {
	Transports LowerTrans
	Family     Family
	User       *string
	Password   *string
	Host       string
	Port       *uint16
	Abspath    string
	Query      *string

	released bool
}

func newURL(v URL) *URL {
	u := new(URL)
	*u = v
	return u
}

// base scheme -> transports it implies on its own
var urlSchemes = map[string]LowerTrans{
	"rtsp":  LowerTransUnknown,
	"rtspu": LowerTransUDP | LowerTransUDPMcast,
	"rtspt": LowerTransTCP,
}

var transportHints = map[string]LowerTrans{
	"tcp":       LowerTransTCP,
	"udp":       LowerTransUDP,
	"mcast":     LowerTransUDPMcast,
	"udp-mcast": LowerTransUDPMcast,
}

var familyHints = map[string]Family{
	"ipv4":  FamilyINET,
	"inet":  FamilyINET,
	"ipv6":  FamilyINET6,
	"inet6": FamilyINET6,
}

// ParseURL parses raw into a URL. On failure no value is allocated and the
// returned error matches ErrInvalidSyntax plus one of the more specific URL
// errors.
func ParseURL(raw string) (*URL, error) {
	var v URL

	rest, err := v.parseScheme(raw)
	if err != nil {
		return nil, err
	}

	end := strings.IndexAny(rest, "/?")
	if end < 0 {
		end = len(rest)
	}
	authority, rest := rest[:end], rest[end:]

	hostport, err := v.parseUserinfo(authority)
	if err != nil {
		return nil, err
	}

	if err := v.parseHostPort(hostport); err != nil {
		return nil, err
	}

	if err := v.parsePath(rest); err != nil {
		return nil, err
	}

	return newURL(v), nil
}

func (u *URL) parseScheme(raw string) (string, error) {
	col := strings.Index(raw, "://")
	if col < 0 {
		return "", makeError(ErrInvalidScheme, fmt.Sprintf("no scheme separator in %q", raw))
	}

	tokens := strings.Split(raw[:col], "+")
	transports, ok := urlSchemes[strings.ToLower(tokens[0])]
	if !ok {
		return "", makeError(ErrInvalidScheme, fmt.Sprintf("unknown scheme %q", tokens[0]))
	}

	for _, token := range tokens[1:] {
		token = strings.ToLower(token)
		if trans, ok := transportHints[token]; ok {
			transports |= trans
			continue
		}
		if family, ok := familyHints[token]; ok {
			u.Family = family
			continue
		}
		return "", makeError(ErrUnknownTransport, fmt.Sprintf("scheme token %q", token))
	}

	// no hint at all means any transport will do
	if transports == LowerTransUnknown {
		transports = LowerTransAll
	}
	u.Transports = transports

	return raw[col+3:], nil
}

func (u *URL) parseUserinfo(authority string) (string, error) {
	at := strings.IndexByte(authority, '@')
	if at < 0 {
		return authority, nil
	}

	userinfo := authority[:at]
	user, passwd, hasPasswd := strings.Cut(userinfo, ":")
	if user == "" {
		return "", makeError(ErrInvalidUserinfo, fmt.Sprintf("empty user in %q", authority))
	}

	u.User = cloneString(&user)
	if hasPasswd {
		u.Password = cloneString(&passwd)
	}

	return authority[at+1:], nil
}

func (u *URL) parseHostPort(hostport string) error {
	if hostport == "" {
		return makeError(ErrMissingHost, "empty authority")
	}

	var host, port string
	var hasPort bool

	if hostport[0] == '[' {
		end := strings.IndexByte(hostport, ']')
		if end < 0 {
			return makeError(ErrInvalidHost, fmt.Sprintf("unterminated IPv6 literal %q", hostport))
		}
		host = hostport[1:end]

		switch after := hostport[end+1:]; {
		case after == "":
		case after[0] == ':':
			port, hasPort = after[1:], true
		default:
			return makeError(ErrInvalidHost, fmt.Sprintf("unexpected %q after IPv6 literal", after))
		}
		u.Family = FamilyINET6
	} else {
		host, port, hasPort = strings.Cut(hostport, ":")
	}

	if host == "" {
		return makeError(ErrMissingHost, fmt.Sprintf("empty host in %q", hostport))
	}
	u.Host = strings.Clone(host)

	if hasPort {
		p, err := parsePort(port)
		if err != nil {
			return err
		}
		u.Port = &p
	}

	return nil
}

func parsePort(value string) (uint16, error) {
	if value == "" {
		return 0, makeError(ErrInvalidPort, "empty port")
	}
	for i := 0; i < len(value); i++ {
		if !isDigit(value[i]) {
			return 0, makeError(ErrInvalidPort, fmt.Sprintf("non-digit port %q", value))
		}
	}

	port, err := strconv.ParseUint(value, 10, 16)
	if err != nil {
		return 0, makeError(ErrInvalidPort, fmt.Sprintf("port %q out of range", value))
	}
	return uint16(port), nil
}

func (u *URL) parsePath(rest string) error {
	if rest == "" || rest[0] != '/' {
		return makeError(ErrMissingPath, fmt.Sprintf("no absolute path in %q", rest))
	}

	abspath, query, hasQuery := strings.Cut(rest, "?")
	u.Abspath = strings.Clone(abspath)
	if hasQuery {
		u.Query = cloneString(&query)
	}
	return nil
}

// Release drops every field of u. u must not be used afterwards.
// Releasing nil or an already released URL does nothing, and no other
// value is ever affected by it.
func (u *URL) Release() {
	if u == nil || u.released {
		return
	}
	*u = URL{released: true}
}

// Clone returns an independent copy of u that must be released separately.
func (u *URL) Clone() *URL {
	if u == nil {
		return nil
	}

	v := *u
	v.User = cloneString(u.User)
	v.Password = cloneString(u.Password)
	v.Query = cloneString(u.Query)
	if u.Port != nil {
		port := *u.Port
		v.Port = &port
	}
	return newURL(v)
}

func (u *URL) SetPort(port uint16) {
	u.Port = &port
}

// PortOr returns the explicit port of u, or def when the URL has none.
func (u *URL) PortOr(def uint16) uint16 {
	if u.Port == nil {
		return def
	}
	return *u.Port
}

func cloneString(s *string) *string {
	if s == nil {
		return nil
	}
	c := strings.Clone(*s)
	return &c
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}
