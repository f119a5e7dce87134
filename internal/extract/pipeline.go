package extract

import (
	"context"
	"errors"
	"slices"
	"strings"

	"mangaapi/internal/catalog"

	"go.uber.org/zap"
)

// Completer is the model call. *llm.Client satisfies it.
type Completer interface {
	Complete(ctx context.Context, prompt string) (string, error)
}

// Request is the input of one extraction run.
type Request struct {
	Title        string   `json:"title" validate:"notblank"`
	SourceURLs   []string `json:"source_urls" validate:"max=10,dive,url"`
	PriorSources []string `json:"prior_sources" validate:"max=20"`
}

// Response is the output of one run. On error only the diagnostic fields
// (Prompt, Raw, Fetched, Failures) are meaningful and Result must not be
// applied.
type Response struct {
	Result   Result         `json:"result"`
	Prompt   string         `json:"prompt"`
	Raw      string         `json:"raw"`
	Fetched  []string       `json:"fetched"`
	Failures []FetchFailure `json:"failures"`
}

type Service struct {
	fetcher *Fetcher
	llm     Completer
	log     *zap.Logger
}

func NewService(fetcher *Fetcher, llm Completer, log *zap.Logger) *Service {
	return &Service{fetcher: fetcher, llm: llm, log: log}
}

// Prepare fetches the sources and renders the prompt without calling the
// model.
func (s *Service) Prepare(ctx context.Context, req Request) (string, FetchOutput, error) {
	title := strings.TrimSpace(req.Title)
	if title == "" {
		return "", FetchOutput{}, ErrEmptyTitle
	}
	fetched := s.fetcher.Fetch(ctx, catalog.CleanList(req.SourceURLs))
	prompt := BuildPrompt(PromptInput{
		Title:        title,
		SourceText:   fetched.Text,
		PriorSources: req.PriorSources,
	})
	return prompt, fetched, nil
}

// Extract runs fetch, prompt, model call, parse and decode in order.
func (s *Service) Extract(ctx context.Context, req Request) (Response, error) {
	prompt, fetched, err := s.Prepare(ctx, req)
	if err != nil {
		return Response{}, err
	}
	resp := Response{Prompt: prompt, Fetched: fetched.Fetched, Failures: fetched.Failures}

	reply, err := s.llm.Complete(ctx, prompt)
	if err != nil {
		extractTotal.WithLabelValues("llm_error").Inc()
		return resp, err
	}
	resp.Raw = reply

	payload, err := ParseReply(reply)
	if err != nil {
		extractTotal.WithLabelValues("parse_error").Inc()
		var perr *PayloadError
		if errors.As(err, &perr) {
			s.log.Warn("unparseable model reply", zap.Error(err), zap.String("raw", perr.Raw))
		}
		return resp, err
	}

	resp.Result = DecodeResult(payload)
	if len(resp.Result.Sources) == 0 {
		resp.Result.Sources = slices.Clone(fetched.Fetched)
	}

	extractTotal.WithLabelValues("ok").Inc()
	s.log.Info("extraction complete",
		zap.String("title", strings.TrimSpace(req.Title)),
		zap.Int("fetched", len(fetched.Fetched)),
		zap.Int("failed", len(fetched.Failures)),
		zap.Int("good_reviews", len(resp.Result.PositiveReviews)),
		zap.Int("bad_reviews", len(resp.Result.NegativeReviews)),
	)
	return resp, nil
}

// Apply merges a successful response onto base.
func (s *Service) Apply(base catalog.Draft, resp Response) catalog.Draft {
	return Merge(base, resp.Result)
}
