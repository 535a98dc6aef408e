package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"textcompare/internal/compare"
	"textcompare/internal/contextutil"
	"textcompare/internal/service"
)

// ComparisonHandler serves the texts, the comparison and brightness toggling.
type ComparisonHandler struct {
	svc service.ComparisonService
}

// NewComparisonHandler creates a new ComparisonHandler.
func NewComparisonHandler(svc service.ComparisonService) *ComparisonHandler {
	return &ComparisonHandler{svc: svc}
}

// TextsResponse holds both texts and the notices of the comparison shown.
type TextsResponse struct {
	A       compare.Text `json:"a"`
	B       compare.Text `json:"b"`
	Notices []string     `json:"notices,omitempty"`
}

// UpdateTextRequest is the body of PUT /api/texts/{id}.
type UpdateTextRequest struct {
	Plain string `json:"plain"`
}

// ComparisonResponse is the body returned by POST /api/compare.
type ComparisonResponse struct {
	ID      string       `json:"id"`
	A       compare.Text `json:"a"`
	B       compare.Text `json:"b"`
	Notices []string     `json:"notices,omitempty"`
}

// BrightnessResponse is the body returned by POST /api/brightness.
type BrightnessResponse struct {
	A compare.Text `json:"a"`
	B compare.Text `json:"b"`
	// Affected lists the tokens whose brightness was set.
	Affected []compare.Address `json:"affected"`
}

// BrightnessRequest is the body of POST /api/brightness.
type BrightnessRequest struct {
	// Core of the token under the pointer.
	Core string `json:"core"`
	// Event is "mouseenter" or "mouseleave".
	Event string `json:"event"`
}

func toTextsResponse(t service.TextsResponse) TextsResponse {
	return TextsResponse{A: t.A, B: t.B, Notices: t.Notices}
}

// GetTexts handles GET /api/texts.
func (h *ComparisonHandler) GetTexts(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	texts, err := h.svc.GetTexts(ctx)
	if err != nil {
		handleServiceError(w, ctx, err, "Failed to load texts")
		return
	}
	writeJSON(ctx, w, http.StatusOK, toTextsResponse(texts))
}

// UpdateText handles PUT /api/texts/{id}.
func (h *ComparisonHandler) UpdateText(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := contextutil.LoggerFromContext(ctx)

	var req UpdateTextRequest
	if err := decodeJSON(r, &req); err != nil {
		logger.WarnContext(ctx, "invalid request body", "error", err)
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	text, err := h.svc.UpdateText(ctx, service.UpdateTextRequest{
		TextID: chi.URLParam(r, "id"),
		Plain:  req.Plain,
	})
	if err != nil {
		handleServiceError(w, ctx, err, "Failed to update text")
		return
	}
	writeJSON(ctx, w, http.StatusOK, text)
}

// Compare handles POST /api/compare.
func (h *ComparisonHandler) Compare(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	res, err := h.svc.Compare(ctx)
	if err != nil {
		handleServiceError(w, ctx, err, "Failed to compare texts")
		return
	}
	writeJSON(ctx, w, http.StatusOK, ComparisonResponse{
		ID:      res.ID,
		A:       res.A,
		B:       res.B,
		Notices: res.Notices,
	})
}

// SetBrightness handles POST /api/brightness.
func (h *ComparisonHandler) SetBrightness(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := contextutil.LoggerFromContext(ctx)

	var req BrightnessRequest
	if err := decodeJSON(r, &req); err != nil {
		logger.WarnContext(ctx, "invalid request body", "error", err)
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	res, err := h.svc.SetBrightness(ctx, service.BrightnessRequest{
		Core:  req.Core,
		Event: req.Event,
	})
	if err != nil {
		handleServiceError(w, ctx, err, "Failed to set brightness")
		return
	}
	affected := res.Affected
	if affected == nil {
		affected = []compare.Address{}
	}
	writeJSON(ctx, w, http.StatusOK, BrightnessResponse{A: res.A, B: res.B, Affected: affected})
}
