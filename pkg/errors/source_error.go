package custom_error

import (
	"context"
	"errors"
	"fmt"
	"net"
)

type CustomError interface {
	Error() string
}

// UpstreamShapeError marks a response that arrived but is not usable data:
// an HTML error page, an empty body, or a header-only sheet.
type UpstreamShapeError struct {
	Source string
	Reason string
}

// TransportError marks a network-level failure: connection refused, DNS,
// or the per-attempt timeout.
type TransportError struct {
	Source string
	Err    error
}

func (e *UpstreamShapeError) Error() string {
	return fmt.Sprintf("%s: unusable response (%s)", e.Source, e.Reason)
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("%s: transport failure: %v", e.Source, e.Err)
}

func (e *TransportError) Unwrap() error {
	return e.Err
}

// WrapFetchError classifies a fetch failure from the named source. Timeouts
// and network errors become TransportError; everything else is treated as a
// shape problem with that source's data.
func WrapFetchError(source string, err error) CustomError {
	var shapeErr *UpstreamShapeError
	if errors.As(err, &shapeErr) {
		return shapeErr
	}

	var netErr net.Error
	if errors.Is(err, context.DeadlineExceeded) || errors.As(err, &netErr) {
		return &TransportError{Source: source, Err: err}
	}

	return &UpstreamShapeError{Source: source, Reason: err.Error()}
}
