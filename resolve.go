package rtsp

import "strings"

// Resolve resolves a control attribute of a session description against u.
// "*" and "" name u itself, an absolute URL is parsed as is, a control
// starting with '/' replaces the path and anything else is appended to the
// path of u.
func (u *URL) Resolve(control string) (*URL, error) {
	if hasScheme(control) {
		return ParseURL(control)
	}
	if u == nil {
		return nil, makeError(ErrMissingHost, "relative control "+control+" without base URL")
	}
	if control == "" || control == "*" {
		return u.Clone(), nil
	}

	path, query, hasQuery := strings.Cut(control, "?")
	if !strings.HasPrefix(path, "/") {
		base := u.Abspath
		if !strings.HasSuffix(base, "/") {
			base += "/"
		}
		path = base + path
	}

	c := u.Clone()
	c.Abspath = strings.Clone(path)
	c.Query = nil
	if hasQuery {
		query = strings.Clone(query)
		c.Query = &query
	}
	return c, nil
}

// hasScheme reports whether control starts with "scheme://", looking only
// before the first '/' or '?'.
func hasScheme(control string) bool {
	prefix := control
	if i := strings.IndexAny(control, "/?"); i >= 0 {
		prefix = control[:i]
	}
	return strings.HasSuffix(prefix, ":") && strings.HasPrefix(control[len(prefix):], "//")
}
