package extract

import (
	"encoding/json"
	"strings"
)

// Payload is a decoded reply object with no shape guarantees.
type Payload map[string]any

// ParseReply decodes the span from the first '{' to the last '}' of reply.
// Prose or code fences around a single object are tolerated. Stray braces in
// trailing prose widen the span and make it fail as malformed.
func ParseReply(reply string) (Payload, error) {
	start := strings.IndexByte(reply, '{')
	end := strings.LastIndexByte(reply, '}')
	if start < 0 || end < start {
		parseFailures.WithLabelValues("no_payload").Inc()
		return nil, &PayloadError{Kind: ErrNoPayloadFound, Raw: reply}
	}

	span := reply[start : end+1]
	var p Payload
	if err := json.Unmarshal([]byte(span), &p); err != nil {
		parseFailures.WithLabelValues("malformed").Inc()
		return nil, &PayloadError{Kind: ErrMalformedPayload, Raw: span, Cause: err}
	}
	return p, nil
}
