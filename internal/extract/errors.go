package extract

import (
	"errors"
	"fmt"
)

var (
	// ErrNoPayloadFound matches replies that contain no brace delimited region.
	ErrNoPayloadFound = errors.New("no JSON object in reply")
	// ErrMalformedPayload matches a brace delimited region that is not valid JSON.
	ErrMalformedPayload = errors.New("malformed JSON payload")
	// ErrEmptyTitle is returned when an extraction has no subject.
	ErrEmptyTitle = errors.New("title is required")
)

// PayloadError is a parse failure. Raw is the whole reply for
// ErrNoPayloadFound and the offending substring for ErrMalformedPayload.
type PayloadError struct {
	Kind  error
	Raw   string
	Cause error
}

func (e *PayloadError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%v: %v", e.Kind, e.Cause)
	}
	return e.Kind.Error()
}

func (e *PayloadError) Is(target error) bool {
	return target == e.Kind
}

func (e *PayloadError) Unwrap() error {
	return e.Cause
}
