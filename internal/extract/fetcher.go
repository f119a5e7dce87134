package extract

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

// NoContentRetrieved stands in for the source text when no URL produced any.
const NoContentRetrieved = "（取得できた参考テキストはありません）"

const (
	DefaultUserAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/124.0.0.0 Safari/537.36"
	DefaultTimeout   = 10 * time.Second
	DefaultMaxChars  = 6000

	maxBodyBytes = 2 << 20
)

// HTTPDoer is satisfied by *http.Client.
type HTTPDoer interface {
	Do(req *http.Request) (*http.Response, error)
}

type FetcherOptions struct {
	Timeout   time.Duration
	RPS       float64 // 0 disables the limiter
	UserAgent string
	MaxChars  int
	Client    HTTPDoer
}

// FetchFailure records a URL that was skipped and why.
type FetchFailure struct {
	URL    string `json:"url"`
	Reason string `json:"reason"`
}

// FetchOutput is the combined text of every URL that succeeded, in input
// order, plus the per-URL outcomes.
type FetchOutput struct {
	Text     string         `json:"text"`
	Fetched  []string       `json:"fetched"`
	Failures []FetchFailure `json:"failures"`
}

// Fetcher downloads source pages one at a time and reduces them to text.
type Fetcher struct {
	client    HTTPDoer
	limiter   *rate.Limiter
	timeout   time.Duration
	userAgent string
	maxChars  int
	log       *zap.Logger
}

func NewFetcher(opts FetcherOptions, log *zap.Logger) *Fetcher {
	f := &Fetcher{
		client:    opts.Client,
		timeout:   opts.Timeout,
		userAgent: opts.UserAgent,
		maxChars:  opts.MaxChars,
		log:       log,
	}
	if f.client == nil {
		f.client = &http.Client{}
	}
	if f.timeout <= 0 {
		f.timeout = DefaultTimeout
	}
	if f.userAgent == "" {
		f.userAgent = DefaultUserAgent
	}
	if f.maxChars <= 0 {
		f.maxChars = DefaultMaxChars
	}
	if opts.RPS > 0 {
		f.limiter = rate.NewLimiter(rate.Limit(opts.RPS), 1)
	}
	return f
}

// Fetch makes one GET per URL. Failures are recorded and skipped; Fetch never
// returns an error. With nothing fetched, Text is NoContentRetrieved.
func (f *Fetcher) Fetch(ctx context.Context, urls []string) FetchOutput {
	out := FetchOutput{Fetched: []string{}, Failures: []FetchFailure{}}
	var blocks []string

	for _, raw := range urls {
		u := strings.TrimSpace(raw)
		text, err := f.fetchOne(ctx, u)
		if err != nil {
			fetchTotal.WithLabelValues("failed").Inc()
			f.log.Warn("source fetch failed", zap.String("url", u), zap.Error(err))
			out.Failures = append(out.Failures, FetchFailure{URL: u, Reason: err.Error()})
			continue
		}
		fetchTotal.WithLabelValues("ok").Inc()
		out.Fetched = append(out.Fetched, u)
		blocks = append(blocks, fmt.Sprintf("【出典: %s】\n%s", u, text))
	}

	if len(blocks) == 0 {
		out.Text = NoContentRetrieved
		return out
	}
	out.Text = strings.Join(blocks, "\n\n")
	return out
}

func (f *Fetcher) fetchOne(ctx context.Context, rawURL string) (string, error) {
	u, err := url.Parse(rawURL)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return "", errors.New("invalid url")
	}

	if f.limiter != nil {
		if err := f.limiter.Wait(ctx); err != nil {
			return "", err
		}
	}

	ctx, cancel := context.WithTimeout(ctx, f.timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return "", err
	}
	req.Header.Set("User-Agent", f.userAgent)
	req.Header.Set("Accept", "text/html,application/xhtml+xml;q=0.9,*/*;q=0.8")
	req.Header.Set("Accept-Language", "ja,en;q=0.8")

	resp, err := f.client.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return "", fmt.Errorf("status %d", resp.StatusCode)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		return "", fmt.Errorf("read body: %w", err)
	}

	text := StripBoilerplate(string(body))
	if text == "" {
		return "", errors.New("no text after cleanup")
	}
	return truncateRunes(text, f.maxChars), nil
}

func truncateRunes(s string, n int) string {
	if n <= 0 {
		return s
	}
	count := 0
	for i := range s {
		if count == n {
			return s[:i]
		}
		count++
	}
	return s
}
