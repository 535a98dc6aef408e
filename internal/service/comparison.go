package service

//go:generate go run go.uber.org/mock/mockgen@latest -destination=mocks/mock_comparison_service.go -package=mocks -mock_names=ComparisonService=MockComparisonService textcompare/internal/service ComparisonService
//go:generate go run go.uber.org/mock/mockgen@latest -destination=mocks/mock_preferences_service.go -package=mocks -mock_names=PreferencesService=MockPreferencesService textcompare/internal/service PreferencesService

import (
	"context"
	"errors"
	"fmt"

	"textcompare/internal/compare"
	"textcompare/internal/contextutil"
)

// UpdateTextRequest replaces the source of one text.
type UpdateTextRequest struct {
	TextID string
	Plain  string
}

// BrightnessRequest carries a pointer signal over a token.
type BrightnessRequest struct {
	Core  string
	Event string
}

// TextsResponse holds both texts and the notices of the comparison shown.
type TextsResponse struct {
	A       compare.Text
	B       compare.Text
	Notices []string
}

// BrightnessResponse holds both texts after a brightness change and the
// tokens it touched.
type BrightnessResponse struct {
	A        compare.Text
	B        compare.Text
	Affected []compare.Address
}

// ComparisonResponse is the outcome of a comparison.
type ComparisonResponse struct {
	ID      string
	A       compare.Text
	B       compare.Text
	Notices []string
	// LemmatizeErr wraps ErrExternalService when lemmatization was skipped.
	LemmatizeErr error
}

// ComparisonService exposes the comparison state.
type ComparisonService interface {
	// GetTexts returns both texts as of the last comparison.
	GetTexts(ctx context.Context) (TextsResponse, error)
	// UpdateText replaces the source of one text.
	UpdateText(ctx context.Context, req UpdateTextRequest) (compare.Text, error)
	// Compare recomputes the comparison of both texts.
	Compare(ctx context.Context) (ComparisonResponse, error)
	// SetBrightness brightens or dims every highlighted token sharing a core.
	SetBrightness(ctx context.Context, req BrightnessRequest) (BrightnessResponse, error)
}

// comparisonService implements ComparisonService.
type comparisonService struct {
	state *compare.State
}

// NewComparisonService creates a new ComparisonService.
func NewComparisonService(state *compare.State) ComparisonService {
	return &comparisonService{state: state}
}

func (s *comparisonService) GetTexts(ctx context.Context) (TextsResponse, error) {
	a, b := s.state.Texts()
	return TextsResponse{A: a, B: b, Notices: s.state.Notices()}, nil
}

func (s *comparisonService) UpdateText(ctx context.Context, req UpdateTextRequest) (compare.Text, error) {
	logger := contextutil.LoggerFromContext(ctx)

	id, err := compare.ParseTextID(req.TextID)
	if err != nil {
		logger.WarnContext(ctx, "unknown text id", "text_id", req.TextID)
		return compare.Text{}, fmt.Errorf("text %q: %w", req.TextID, ErrNotFound)
	}

	if err := s.state.SetPlain(id, req.Plain); err != nil {
		return compare.Text{}, WrapError(err, "failed to update text")
	}

	logger.DebugContext(ctx, "text updated", "text_id", int(id), "length", len(req.Plain))
	return s.state.Text(id)
}

func (s *comparisonService) Compare(ctx context.Context) (ComparisonResponse, error) {
	logger := contextutil.LoggerFromContext(ctx)

	res, err := s.state.Compare(ctx)
	if err != nil {
		if errors.Is(err, compare.ErrSuperseded) {
			logger.InfoContext(ctx, "comparison superseded by a newer request")
			return ComparisonResponse{}, fmt.Errorf("comparison discarded: %w: %w", ErrConflict, err)
		}
		logger.ErrorContext(ctx, "comparison failed", "error", err)
		return ComparisonResponse{}, WrapError(err, "failed to compare texts")
	}

	resp := ComparisonResponse{
		ID:      res.ID.String(),
		A:       res.A,
		B:       res.B,
		Notices: res.Notices,
	}
	if res.LemmatizeErr != nil {
		// Non-fatal: the notice reaches the user with the result.
		resp.LemmatizeErr = fmt.Errorf("%w: %w", ErrExternalService, res.LemmatizeErr)
		logger.WarnContext(ctx, "comparison completed without lemmatization", "error", resp.LemmatizeErr)
	}

	logger.InfoContext(ctx, "comparison completed", "comparison_id", res.ID, "notices", len(res.Notices))
	return resp, nil
}

func (s *comparisonService) SetBrightness(ctx context.Context, req BrightnessRequest) (BrightnessResponse, error) {
	kind, err := compare.ParseEventKind(req.Event)
	if err != nil {
		contextutil.LoggerFromContext(ctx).WarnContext(ctx, "unsupported brightness event", "event", req.Event)
		return BrightnessResponse{}, &ValidationError{
			Field:   "event",
			Message: "must be mouseenter or mouseleave",
		}
	}

	s.state.SetBrightness(req.Core, kind)
	a, b := s.state.Texts()
	return BrightnessResponse{A: a, B: b, Affected: s.state.Addresses(req.Core)}, nil
}
