package rtsp

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidSyntax = errors.New("InvalidSyntaxError")
	ErrUnsupported   = errors.New("UnsupportedError")
)

// URL parse failures. Each one also matches ErrInvalidSyntax.
var (
	ErrInvalidScheme    = fmt.Errorf("%w: malformed scheme", ErrInvalidSyntax)
	ErrUnknownTransport = fmt.Errorf("%w: unknown transport", ErrInvalidSyntax)
	ErrInvalidUserinfo  = fmt.Errorf("%w: invalid userinfo", ErrInvalidSyntax)
	ErrMissingHost      = fmt.Errorf("%w: missing host", ErrInvalidSyntax)
	ErrInvalidHost      = fmt.Errorf("%w: invalid host", ErrInvalidSyntax)
	ErrInvalidPort      = fmt.Errorf("%w: invalid port", ErrInvalidSyntax)
	ErrMissingPath      = fmt.Errorf("%w: missing path", ErrInvalidSyntax)
)

func makeError(kind error, message string) (err error) {
	return fmt.Errorf("%w: %s", kind, message)
}
