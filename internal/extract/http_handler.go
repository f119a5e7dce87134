package extract

import (
	"errors"
	"net/http"

	"mangaapi/internal/catalog"
	"mangaapi/internal/httpx"
	"mangaapi/internal/platform/llm"
)

type HTTPHandler struct {
	svc *Service
}

func NewHTTPHandler(svc *Service) *HTTPHandler {
	return &HTTPHandler{svc: svc}
}

type extractRequest struct {
	Request
	// Base is the in-progress edit. When present the result is merged onto it.
	Base *catalog.Draft `json:"base,omitempty"`
}

type extractResponse struct {
	Result   Result         `json:"result"`
	Draft    *catalog.Draft `json:"draft,omitempty"`
	Prompt   string         `json:"prompt"`
	Fetched  []string       `json:"fetched"`
	Failures []FetchFailure `json:"failures"`
}

// diagnostics is attached to failed extractions.
type diagnostics struct {
	Prompt   string         `json:"prompt"`
	Fetched  []string       `json:"fetched"`
	Failures []FetchFailure `json:"failures"`
}

type promptResponse struct {
	Prompt   string         `json:"prompt"`
	Fetched  []string       `json:"fetched"`
	Failures []FetchFailure `json:"failures"`
}

// Extract handles POST /v1/admin/extract
func (h *HTTPHandler) Extract(w http.ResponseWriter, r *http.Request) {
	var req extractRequest
	if !httpx.DecodeJSON(w, r, &req) {
		return
	}

	resp, err := h.svc.Extract(r.Context(), req.Request)
	if err != nil {
		writeExtractError(w, r, err, resp)
		return
	}

	out := extractResponse{
		Result:   resp.Result,
		Prompt:   resp.Prompt,
		Fetched:  resp.Fetched,
		Failures: resp.Failures,
	}
	if req.Base != nil {
		merged := h.svc.Apply(*req.Base, resp)
		out.Draft = &merged
	}
	httpx.JSONSuccess(w, r, out, nil)
}

// Prompt handles POST /v1/admin/prompt
func (h *HTTPHandler) Prompt(w http.ResponseWriter, r *http.Request) {
	var req Request
	if !httpx.DecodeJSON(w, r, &req) {
		return
	}

	prompt, fetched, err := h.svc.Prepare(r.Context(), req)
	if err != nil {
		writeError(w, r, err)
		return
	}
	httpx.JSONSuccess(w, r, promptResponse{
		Prompt:   prompt,
		Fetched:  fetched.Fetched,
		Failures: fetched.Failures,
	}, nil)
}

// writeExtractError reports a failed run with the prompt and fetch outcome
// that led to it. Failures before the prompt was built have none.
func writeExtractError(w http.ResponseWriter, r *http.Request, err error, resp Response) {
	if resp.Prompt == "" {
		writeError(w, r, err)
		return
	}
	status, body := errorBody(err)
	body.Data = diagnostics{Prompt: resp.Prompt, Fetched: resp.Fetched, Failures: resp.Failures}
	httpx.JSONErrorBody(w, r, status, body)
}

func writeError(w http.ResponseWriter, r *http.Request, err error) {
	status, body := errorBody(err)
	httpx.JSONErrorBody(w, r, status, body)
}

func errorBody(err error) (int, httpx.ErrorResponseBody) {
	var (
		up   *llm.UpstreamError
		tr   *llm.TransportError
		perr *PayloadError
	)
	switch {
	case errors.Is(err, ErrEmptyTitle):
		return http.StatusBadRequest, httpx.ErrorResponseBody{
			Code:    "VALIDATION_ERROR",
			Message: err.Error(),
			Details: []httpx.ErrorDetail{{Field: "title", Message: "title is required"}},
		}
	case errors.As(err, &up):
		return http.StatusBadGateway, httpx.ErrorResponseBody{Code: "LLM_UPSTREAM_ERROR", Message: up.Error(), Raw: up.Body}
	case errors.As(err, &tr):
		return http.StatusGatewayTimeout, httpx.ErrorResponseBody{Code: "LLM_TRANSPORT_ERROR", Message: tr.Error()}
	case errors.As(err, &perr):
		return http.StatusBadGateway, httpx.ErrorResponseBody{Code: "AI_OUTPUT_UNPARSEABLE", Message: perr.Error(), Raw: perr.Raw}
	default:
		return http.StatusInternalServerError, httpx.ErrorResponseBody{Code: "INTERNAL_ERROR", Message: "Internal server error"}
	}
}
