package service

import (
	"context"

	"textcompare/internal/contextutil"
	"textcompare/internal/settings"
	"textcompare/internal/theme"
)

// UpdateSettingsRequest changes any subset of the settings.
type UpdateSettingsRequest struct {
	IgnoreStopWords *bool
	Lemmatize       *bool
	Mode            *string
}

// SettingsResponse is the settings after an update and the notices of the
// comparison shown in view mode.
type SettingsResponse struct {
	Settings settings.Snapshot
	Notices  []string
}

// NoticeSource reports the notices of the comparison currently shown.
type NoticeSource interface {
	Notices() []string
}

// PreferencesService exposes comparison settings and the theme.
type PreferencesService interface {
	// GetSettings returns the current settings.
	GetSettings(ctx context.Context) settings.Snapshot
	// UpdateSettings applies the given changes. In view mode a flag change
	// recomputes the comparison before this returns, and the response carries
	// that comparison's notices.
	UpdateSettings(ctx context.Context, req UpdateSettingsRequest) (SettingsResponse, error)
	// GetTheme returns the applied theme.
	GetTheme(ctx context.Context) theme.Theme
	// ToggleTheme switches and persists the theme.
	ToggleTheme(ctx context.Context) (theme.Theme, error)
}

type preferencesService struct {
	settings *settings.Settings
	themes   *theme.Service
	notices  NoticeSource
}

// NewPreferencesService creates a new PreferencesService. notices may be nil.
func NewPreferencesService(s *settings.Settings, themes *theme.Service, notices NoticeSource) PreferencesService {
	return &preferencesService{settings: s, themes: themes, notices: notices}
}

func (p *preferencesService) GetSettings(ctx context.Context) settings.Snapshot {
	return p.settings.Snapshot()
}

func (p *preferencesService) UpdateSettings(ctx context.Context, req UpdateSettingsRequest) (SettingsResponse, error) {
	logger := contextutil.LoggerFromContext(ctx)

	// Validate everything before applying anything.
	var mode settings.Mode
	if req.Mode != nil {
		m, err := settings.ParseMode(*req.Mode)
		if err != nil {
			logger.WarnContext(ctx, "invalid mode", "mode", *req.Mode)
			return SettingsResponse{}, &ValidationError{Field: "mode", Message: "must be edit or view"}
		}
		mode = m
	}

	// Mode first, so a flag change in the same request sees the new mode.
	if req.Mode != nil {
		if err := p.settings.SetMode(mode); err != nil {
			return SettingsResponse{}, WrapError(err, "failed to set mode")
		}
	}
	if req.IgnoreStopWords != nil {
		p.settings.SetIgnoreStopWords(ctx, *req.IgnoreStopWords)
	}
	if req.Lemmatize != nil {
		p.settings.SetLemmatize(ctx, *req.Lemmatize)
	}

	resp := SettingsResponse{Settings: p.settings.Snapshot()}
	if resp.Settings.Mode == settings.ModeView && p.notices != nil {
		resp.Notices = p.notices.Notices()
	}
	logger.InfoContext(ctx, "settings updated",
		"mode", resp.Settings.Mode,
		"ignore_stop_words", resp.Settings.IgnoreStopWords,
		"lemmatize", resp.Settings.Lemmatize,
		"notices", len(resp.Notices))
	return resp, nil
}

func (p *preferencesService) GetTheme(ctx context.Context) theme.Theme {
	return p.themes.Current()
}

func (p *preferencesService) ToggleTheme(ctx context.Context) (theme.Theme, error) {
	next, err := p.themes.Toggle(ctx)
	if err != nil {
		contextutil.LoggerFromContext(ctx).ErrorContext(ctx, "failed to persist theme", "error", err)
		return next, WrapError(err, "failed to toggle theme")
	}
	return next, nil
}
