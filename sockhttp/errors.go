package sockhttp

import (
	"errors"
	"fmt"
)

var (
	// ErrProtocolVersion reports a response whose version is not
	// exactly HTTP/1.1.
	ErrProtocolVersion = errors.New("sockhttp: unsupported protocol version")
	// ErrBadContent reports request content that is neither absent,
	// text, nor a readable byte stream.
	ErrBadContent = errors.New("sockhttp: unsupported content type")
)

// StatusError is returned when the daemon answers with a status
// outside the 2xx range. It is immutable once constructed; callers
// branch on StatusCode or report Reason.
type StatusError struct {
	Method     string
	URL        string
	StatusCode int
	Reason     string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("sockhttp: %s %s: %d %s", e.Method, e.URL, e.StatusCode, e.Reason)
}
