package custom_error

import (
	"context"
	"errors"
	"fmt"
	"net"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWrapFetchErrorTimeout(t *testing.T) {
	wrapped := WrapFetchError("csv:primary", fmt.Errorf("get: %w", context.DeadlineExceeded))

	var transport *TransportError
	assert.True(t, errors.As(wrapped, &transport))
	assert.Equal(t, "csv:primary", transport.Source)
	assert.ErrorIs(t, transport, context.DeadlineExceeded)
}

func TestWrapFetchErrorNetwork(t *testing.T) {
	netErr := &net.OpError{Op: "dial", Net: "tcp", Err: errors.New("connection refused")}
	wrapped := WrapFetchError("json:primary", netErr)

	var transport *TransportError
	assert.True(t, errors.As(wrapped, &transport))
}

func TestWrapFetchErrorShape(t *testing.T) {
	wrapped := WrapFetchError("csv:primary", errors.New("response looks like an html page"))

	var shape *UpstreamShapeError
	assert.True(t, errors.As(wrapped, &shape))
	assert.Contains(t, shape.Error(), "csv:primary")
	assert.Contains(t, shape.Error(), "html page")
}

func TestWrapFetchErrorKeepsExistingShapeError(t *testing.T) {
	original := &UpstreamShapeError{Source: "csv:primary", Reason: "http status 500"}
	wrapped := WrapFetchError("other", fmt.Errorf("fetch: %w", original))

	var shape *UpstreamShapeError
	assert.True(t, errors.As(wrapped, &shape))
	assert.Equal(t, "csv:primary", shape.Source)
}
