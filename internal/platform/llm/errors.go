package llm

import "fmt"

// UpstreamError is a non-success reply from the model endpoint, including a
// success status with no choices.
type UpstreamError struct {
	StatusCode int
	Body       string
}

func (e *UpstreamError) Error() string {
	return fmt.Sprintf("llm upstream status %d: %s", e.StatusCode, e.Body)
}

// TransportError means no HTTP reply was received: DNS, connect, TLS,
// timeout or cancellation.
type TransportError struct {
	Err error
}

func (e *TransportError) Error() string {
	return "llm transport: " + e.Err.Error()
}

func (e *TransportError) Unwrap() error {
	return e.Err
}
