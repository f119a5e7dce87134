package llm

import (
	"context"
	"errors"
	"math"
	"net/http"
	"time"

	openai "github.com/sashabaranov/go-openai"
	"go.uber.org/zap"
)

// Options configures a Client against any OpenAI compatible endpoint.
type Options struct {
	BaseURL     string
	APIKey      string
	Model       string
	Temperature float32
	Timeout     time.Duration
	// HTTPClient overrides the default client; Timeout is ignored when set.
	HTTPClient *http.Client
}

// Client sends single-turn chat completions.
type Client struct {
	api         *openai.Client
	model       string
	temperature float32
	log         *zap.Logger
}

func New(opts Options, log *zap.Logger) *Client {
	cfg := openai.DefaultConfig(opts.APIKey)
	if opts.BaseURL != "" {
		cfg.BaseURL = opts.BaseURL
	}
	hc := &http.Client{Timeout: opts.Timeout}
	if opts.HTTPClient != nil {
		copied := *opts.HTTPClient
		hc = &copied
	}
	hc.Transport = &captureTransport{next: hc.Transport}
	cfg.HTTPClient = hc

	temperature := opts.Temperature
	if temperature == 0 {
		// go-openai drops a zero temperature from the request body.
		temperature = math.SmallestNonzeroFloat32
	}
	return &Client{
		api:         openai.NewClientWithConfig(cfg),
		model:       opts.Model,
		temperature: temperature,
		log:         log,
	}
}

// Complete sends prompt as the only user message and returns the content of
// the first choice unchanged. There are no retries.
func (c *Client) Complete(ctx context.Context, prompt string) (string, error) {
	start := time.Now()
	captured := &errorBody{}
	resp, err := c.api.CreateChatCompletion(withErrorBody(ctx, captured), openai.ChatCompletionRequest{
		Model:       c.model,
		Temperature: c.temperature,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleUser, Content: prompt},
		},
	})
	callDuration.Observe(time.Since(start).Seconds())
	if err != nil {
		err = classify(err, captured.data)
		c.record(err)
		return "", err
	}
	if len(resp.Choices) == 0 {
		err := &UpstreamError{StatusCode: http.StatusOK, Body: "response has no choices"}
		c.record(err)
		return "", err
	}

	c.record(nil)
	c.log.Debug("llm completion",
		zap.String("model", c.model),
		zap.Int("prompt_tokens", resp.Usage.PromptTokens),
		zap.Int("completion_tokens", resp.Usage.CompletionTokens),
	)
	return resp.Choices[0].Message.Content, nil
}

func (c *Client) record(err error) {
	var up *UpstreamError
	switch {
	case err == nil:
		callsTotal.WithLabelValues("ok").Inc()
	case errors.As(err, &up):
		callsTotal.WithLabelValues("upstream").Inc()
		c.log.Warn("llm upstream error", zap.Int("status", up.StatusCode), zap.String("body", up.Body))
	default:
		callsTotal.WithLabelValues("transport").Inc()
		c.log.Warn("llm transport error", zap.Error(err))
	}
}

// classify maps go-openai errors onto UpstreamError and TransportError.
// raw is the unparsed failure body when one was received.
func classify(err error, raw []byte) error {
	var apiErr *openai.APIError
	if errors.As(err, &apiErr) {
		return &UpstreamError{StatusCode: apiErr.HTTPStatusCode, Body: bodyOr(raw, apiErr.Message)}
	}
	var reqErr *openai.RequestError
	if errors.As(err, &reqErr) && reqErr.HTTPStatusCode != 0 {
		return &UpstreamError{StatusCode: reqErr.HTTPStatusCode, Body: bodyOr(raw, reqErr.Error())}
	}
	return &TransportError{Err: err}
}

func bodyOr(raw []byte, fallback string) string {
	if len(raw) > 0 {
		return string(raw)
	}
	return fallback
}
