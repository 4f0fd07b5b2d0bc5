package upstream

import (
	"errors"
	"fmt"
)

// Classification errors for outbound calls. Handlers match these with
// errors.Is / errors.As to pick the inbound status code.
var (
	// ErrConnectivity wraps DNS and connection-level failures reaching the
	// upstream service.
	ErrConnectivity = errors.New("upstream connection failed")

	// ErrTimeout wraps a call that exceeded its deadline.
	ErrTimeout = errors.New("upstream request timed out")

	// ErrDecode wraps a 2xx response whose body is not valid JSON.
	ErrDecode = errors.New("upstream response is not valid JSON")
)

// StatusError reports an upstream response outside the 2xx range. The body
// text is kept for diagnostics only; it is never parsed as data.
type StatusError struct {
	Code int
	Body string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("upstream returned status %d: %s", e.Code, e.Body)
}

// SinkError reports a local filesystem failure while persisting a response.
// It is a separate type from the upstream errors so callers can tell a local
// disk problem from an upstream one.
type SinkError struct {
	Path string
	Err  error
}

func (e *SinkError) Error() string {
	return fmt.Sprintf("failed to write %s: %v", e.Path, e.Err)
}

func (e *SinkError) Unwrap() error {
	return e.Err
}
