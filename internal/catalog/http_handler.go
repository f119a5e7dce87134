package catalog

import (
	"errors"
	"net/http"
	"strconv"

	"mangaapi/internal/httpx"
)

type HTTPHandler struct {
	svc *Service
}

func NewHTTPHandler(svc *Service) *HTTPHandler {
	return &HTTPHandler{svc: svc}
}

type saveRequest struct {
	Item    Item     `json:"item"`
	Authors []string `json:"authors" validate:"max=50"`
	Venues  []string `json:"venues" validate:"max=50"`
}

func actorFrom(r *http.Request) Actor {
	return Actor{UserID: httpx.UserIDFrom(r), Admin: httpx.IsAdmin(r)}
}

// List handles GET /v1/manga
// @Summary List latest manga
// @Tags manga
// @Produce json
// @Param limit query int false "Maximum items" default(100)
// @Success 200 {object} httpx.SuccessResponse
// @Failure 500 {object} httpx.ErrorResponse
// @Router /v1/manga [get]
func (h *HTTPHandler) List(w http.ResponseWriter, r *http.Request) {
	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))

	items, err := h.svc.List(r.Context(), limit)
	if err != nil {
		httpx.JSONError(w, r, http.StatusInternalServerError, "INTERNAL_ERROR", "Internal server error", nil)
		return
	}
	httpx.JSONSuccess(w, r, items, map[string]any{"count": len(items)})
}

// Get handles GET /v1/manga/{id}
// @Summary Get manga detail with authors and venues
// @Tags manga
// @Produce json
// @Param id path string true "Manga ID"
// @Success 200 {object} httpx.SuccessResponse
// @Failure 404 {object} httpx.ErrorResponse
// @Router /v1/manga/{id} [get]
func (h *HTTPHandler) Get(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if id == "" {
		httpx.JSONError(w, r, http.StatusBadRequest, "BAD_REQUEST", "id is required", nil)
		return
	}

	detail, err := h.svc.Get(r.Context(), id)
	if err != nil {
		writeError(w, r, err)
		return
	}
	httpx.JSONSuccess(w, r, detail, nil)
}

// AdminList handles GET /v1/admin/manga
// @Summary List manga editable by the caller
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Success 200 {object} httpx.SuccessResponse
// @Router /v1/admin/manga [get]
func (h *HTTPHandler) AdminList(w http.ResponseWriter, r *http.Request) {
	items, err := h.svc.ListForActor(r.Context(), actorFrom(r))
	if err != nil {
		httpx.JSONError(w, r, http.StatusInternalServerError, "INTERNAL_ERROR", "Internal server error", nil)
		return
	}
	httpx.JSONSuccess(w, r, items, map[string]any{"count": len(items)})
}

// Save handles PUT /v1/admin/manga
// @Summary Create or update a manga and link its authors and venues
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Success 200 {object} httpx.SuccessResponse
// @Failure 400 {object} httpx.ErrorResponse
// @Failure 403 {object} httpx.ErrorResponse
// @Failure 500 {object} httpx.ErrorResponse
// @Router /v1/admin/manga [put]
func (h *HTTPHandler) Save(w http.ResponseWriter, r *http.Request) {
	var req saveRequest
	if !httpx.DecodeJSON(w, r, &req) {
		return
	}

	res, err := h.svc.Save(r.Context(), actorFrom(r), Draft{Item: req.Item, Authors: req.Authors, Venues: req.Venues})
	if err != nil {
		var perr *PartialPersistenceError
		if errors.As(err, &perr) {
			httpx.JSONErrorBody(w, r, http.StatusInternalServerError, httpx.ErrorResponseBody{
				Code:    "PARTIAL_SAVE",
				Message: perr.Error(),
				Details: []httpx.ErrorDetail{{Field: "item.id", Message: perr.ItemID}},
				Data:    res,
			})
			return
		}
		writeError(w, r, err)
		return
	}
	httpx.JSONSuccess(w, r, res, nil)
}

// Delete handles DELETE /v1/admin/manga/{id}
// @Summary Delete a manga
// @Tags admin
// @Security BearerAuth
// @Param id path string true "Manga ID"
// @Success 204
// @Failure 403 {object} httpx.ErrorResponse
// @Failure 404 {object} httpx.ErrorResponse
// @Router /v1/admin/manga/{id} [delete]
func (h *HTTPHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if id == "" {
		httpx.JSONError(w, r, http.StatusBadRequest, "BAD_REQUEST", "id is required", nil)
		return
	}

	if err := h.svc.Delete(r.Context(), actorFrom(r), id); err != nil {
		writeError(w, r, err)
		return
	}
	httpx.JSONSuccessNoContent(w)
}

func writeError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, ErrNotFound):
		httpx.JSONError(w, r, http.StatusNotFound, "NOT_FOUND", "Manga not found", nil)
	case errors.Is(err, ErrForbidden):
		httpx.JSONError(w, r, http.StatusForbidden, "FORBIDDEN", "You may not modify this manga", nil)
	case errors.Is(err, ErrInvalidItem):
		httpx.JSONError(w, r, http.StatusBadRequest, "VALIDATION_ERROR", err.Error(), []httpx.ErrorDetail{
			{Field: "item.title", Message: "title is required"},
		})
	default:
		httpx.JSONError(w, r, http.StatusInternalServerError, "INTERNAL_ERROR", "Internal server error", nil)
	}
}
