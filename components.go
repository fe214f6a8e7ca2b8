package rtsp

import "strings"

// DecodePathComponents splits the absolute path of u on every '/' and
// percent-decodes each segment on its own, so "%2F" never introduces a split.
// The first element is always empty. Escapes of the NUL byte stay as "%00"
// and malformed escapes are kept as literal text.
func (u *URL) DecodePathComponents() []string {
	segments := strings.Split(u.Abspath, "/")

	comps := make([]string, len(segments))
	for i, segment := range segments {
		comps[i] = unescapePathComponent(segment)
	}
	return comps
}

func DecodePathComponents(u *URL) []string {
	return u.DecodePathComponents()
}

func unescapePathComponent(s string) string {
	var b strings.Builder
	b.Grow(len(s))

	for i := 0; i < len(s); i++ {
		if s[i] == '%' && i+2 < len(s) && isHex(s[i+1]) && isHex(s[i+2]) {
			if c := unhex(s[i+1])<<4 | unhex(s[i+2]); c != 0 {
				b.WriteByte(c)
				i += 2
				continue
			}
		}
		b.WriteByte(s[i])
	}
	return b.String()
}

func isHex(c byte) bool {
	return isDigit(c) || (c >= 'a' && c <= 'f') || (c >= 'A' && c <= 'F')
}

func unhex(c byte) byte {
	switch {
	case isDigit(c):
		return c - '0'
	case c >= 'a' && c <= 'f':
		return c - 'a' + 10
	default:
		return c - 'A' + 10
	}
}
