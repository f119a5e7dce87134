package llm

import (
	"bytes"
	"context"
	"io"
	"net/http"
)

// maxErrorBody bounds how much of a failure reply is kept.
const maxErrorBody = 64 << 10

type errorBodyKey struct{}

// errorBody receives the raw body of a failed reply for one call.
type errorBody struct {
	data []byte
}

func withErrorBody(ctx context.Context, b *errorBody) context.Context {
	return context.WithValue(ctx, errorBodyKey{}, b)
}

// captureTransport copies non-2xx reply bodies into the errorBody carried by
// the request context and hands an identical body on to the caller.
type captureTransport struct {
	next http.RoundTripper
}

func (t *captureTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	next := t.next
	if next == nil {
		next = http.DefaultTransport
	}
	resp, err := next.RoundTrip(req)
	if err != nil || (resp.StatusCode >= 200 && resp.StatusCode < 400) {
		return resp, err
	}
	dst, ok := req.Context().Value(errorBodyKey{}).(*errorBody)
	if !ok {
		return resp, nil
	}

	data, readErr := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
	_ = resp.Body.Close()
	dst.data = data
	resp.Body = io.NopCloser(bytes.NewReader(data))
	if readErr != nil {
		return nil, readErr
	}
	return resp, nil
}
