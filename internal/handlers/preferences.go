package handlers

import (
	"net/http"

	"textcompare/internal/contextutil"
	"textcompare/internal/service"
	"textcompare/internal/settings"
	"textcompare/internal/theme"
)

// PreferencesHandler serves settings and the theme.
type PreferencesHandler struct {
	svc service.PreferencesService
}

// NewPreferencesHandler creates a new PreferencesHandler.
func NewPreferencesHandler(svc service.PreferencesService) *PreferencesHandler {
	return &PreferencesHandler{svc: svc}
}

// SettingsPatch is the body of PATCH /api/settings. Absent fields are left unchanged.
type SettingsPatch struct {
	IgnoreStopWords *bool   `json:"ignoreStopWords,omitempty"`
	Lemmatize       *bool   `json:"lemmatize,omitempty"`
	Mode            *string `json:"mode,omitempty"`
}

// SettingsResponse is the body returned by PATCH /api/settings: the settings
// plus, in view mode, the notices of the recomputed comparison.
type SettingsResponse struct {
	settings.Snapshot
	Notices []string `json:"notices,omitempty"`
}

// ThemeResponse is the body returned by the theme endpoints.
type ThemeResponse struct {
	Theme theme.Theme `json:"theme"`
}

// GetSettings handles GET /api/settings.
func (h *PreferencesHandler) GetSettings(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	writeJSON(ctx, w, http.StatusOK, h.svc.GetSettings(ctx))
}

// UpdateSettings handles PATCH /api/settings.
func (h *PreferencesHandler) UpdateSettings(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := contextutil.LoggerFromContext(ctx)

	var patch SettingsPatch
	if err := decodeJSON(r, &patch); err != nil {
		logger.WarnContext(ctx, "invalid request body", "error", err)
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	res, err := h.svc.UpdateSettings(ctx, service.UpdateSettingsRequest{
		IgnoreStopWords: patch.IgnoreStopWords,
		Lemmatize:       patch.Lemmatize,
		Mode:            patch.Mode,
	})
	if err != nil {
		handleServiceError(w, ctx, err, "Failed to update settings")
		return
	}
	writeJSON(ctx, w, http.StatusOK, SettingsResponse{Snapshot: res.Settings, Notices: res.Notices})
}

// GetTheme handles GET /api/theme.
func (h *PreferencesHandler) GetTheme(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	writeJSON(ctx, w, http.StatusOK, ThemeResponse{Theme: h.svc.GetTheme(ctx)})
}

// ToggleTheme handles POST /api/theme/toggle.
func (h *PreferencesHandler) ToggleTheme(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	next, err := h.svc.ToggleTheme(ctx)
	if err != nil {
		handleServiceError(w, ctx, err, "Failed to toggle theme")
		return
	}
	writeJSON(ctx, w, http.StatusOK, ThemeResponse{Theme: next})
}
