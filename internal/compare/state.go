package compare

//go:generate go run go.uber.org/mock/mockgen@latest -destination=mocks/mock_lemmatizer.go -package=mocks textcompare/internal/compare Lemmatizer

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/google/uuid"

	"textcompare/internal/contextutil"
	"textcompare/internal/matcher"
	"textcompare/internal/settings"
	"textcompare/internal/tokenizer"
)

var (
	// ErrSuperseded is returned by Compare when a newer comparison started
	// before this one finished. Its result is discarded.
	ErrSuperseded = errors.New("comparison superseded by a newer one")
	// ErrUnknownText is returned for a TextID other than TextA or TextB.
	ErrUnknownText = errors.New("unknown text")
	// ErrNoLemmatizer is reported when lemmatization is on but no backend is configured.
	ErrNoLemmatizer = errors.New("no lemmatizer configured")
)

// NoticeLemmatizeFailed is shown to the user when lemmatization was skipped.
const NoticeLemmatizeFailed = "Lemmatization is unavailable, the texts were compared without it"

// Lemmatizer rewrites token cores into dictionary forms.
// This interface is defined from the consumer's perspective.
type Lemmatizer interface {
	Lemmatize(ctx context.Context, a, b []tokenizer.Token) ([]tokenizer.Token, []tokenizer.Token, error)
}

// SettingsSource provides the flags a comparison runs with.
type SettingsSource interface {
	Snapshot() settings.Snapshot
}

// Text is one side of the comparison.
type Text struct {
	Plain     string            `json:"plain"`
	Tokenized []tokenizer.Token `json:"tokenized"`
}

func (t Text) clone() Text {
	out := Text{Plain: t.Plain}
	if t.Tokenized != nil {
		out.Tokenized = append([]tokenizer.Token(nil), t.Tokenized...)
	}
	return out
}

// Result is the outcome of one comparison.
type Result struct {
	ID       uuid.UUID
	A        Text
	B        Text
	Settings settings.Snapshot
	// Notices are non-fatal problems the user should be told about.
	Notices []string
	// LemmatizeErr is the lemmatization failure behind a notice, if any.
	LemmatizeErr error
}

// State owns both texts and their token arenas.
type State struct {
	mu         sync.Mutex
	texts      [2]Text
	notices    []string
	seq        uint64
	tokenizer  *tokenizer.Tokenizer
	settings   SettingsSource
	lemmatizer Lemmatizer
}

// New creates a State. lemmatizer may be nil, in which case enabling
// lemmatization only produces a notice.
func New(tok *tokenizer.Tokenizer, src SettingsSource, lemmatizer Lemmatizer) *State {
	if tok == nil {
		tok = tokenizer.New(nil)
	}
	if src == nil {
		src = settings.New()
	}
	return &State{
		tokenizer:  tok,
		settings:   src,
		lemmatizer: lemmatizer,
	}
}

// SetPlain replaces the editable source of one text. The tokenized view is
// left untouched until the next Compare.
func (s *State) SetPlain(id TextID, plain string) error {
	i, err := id.index()
	if err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.texts[i].Plain = plain
	return nil
}

// Text returns a copy of one text.
func (s *State) Text(id TextID) (Text, error) {
	i, err := id.index()
	if err != nil {
		return Text{}, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.texts[i].clone(), nil
}

// Texts returns copies of both texts.
func (s *State) Texts() (Text, Text) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.texts[0].clone(), s.texts[1].clone()
}

// Notices returns the notices of the comparison currently shown.
func (s *State) Notices() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]string(nil), s.notices...)
}

// Compare retokenizes both texts, optionally lemmatizes them and highlights
// shared cores. Both tokenized views are replaced together. A lemmatization
// failure is reported in Result.Notices and does not fail the comparison.
func (s *State) Compare(ctx context.Context) (Result, error) {
	logger := contextutil.LoggerFromContext(ctx)
	snap := s.settings.Snapshot()

	s.mu.Lock()
	s.seq++
	seq := s.seq
	plainA, plainB := s.texts[0].Plain, s.texts[1].Plain
	s.mu.Unlock()

	result := Result{ID: uuid.New(), Settings: snap}

	a, _ := s.tokenizer.Tokenize(plainA)
	b, _ := s.tokenizer.Tokenize(plainB)

	if snap.Lemmatize {
		la, lb, err := s.lemmatize(ctx, a, b)
		if err != nil {
			logger.WarnContext(ctx, "lemmatization failed, comparing without it",
				"comparison_id", result.ID, "error", err)
			result.Notices = append(result.Notices, NoticeLemmatizeFailed)
			result.LemmatizeErr = err
		} else {
			a, b = la, lb
		}
	}

	// Lemmatized tokens come from outside; start them from a clean state.
	matcher.Reset(a)
	matcher.Reset(b)
	if err := matcher.Match(a, b, matcher.Options{IgnoreStopWords: snap.IgnoreStopWords}); err != nil {
		return Result{}, fmt.Errorf("match texts: %w", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if seq != s.seq {
		logger.DebugContext(ctx, "discarding superseded comparison", "comparison_id", result.ID)
		return Result{}, ErrSuperseded
	}

	s.texts[0].Tokenized = a
	s.texts[1].Tokenized = b
	s.notices = append([]string(nil), result.Notices...)
	result.A = s.texts[0].clone()
	result.B = s.texts[1].clone()

	logger.DebugContext(ctx, "texts compared",
		"comparison_id", result.ID,
		"tokens_a", len(a),
		"tokens_b", len(b),
		"ignore_stop_words", snap.IgnoreStopWords,
		"lemmatize", snap.Lemmatize,
	)
	return result, nil
}

func (s *State) lemmatize(ctx context.Context, a, b []tokenizer.Token) ([]tokenizer.Token, []tokenizer.Token, error) {
	if s.lemmatizer == nil {
		return nil, nil, ErrNoLemmatizer
	}
	la, lb, err := s.lemmatizer.Lemmatize(ctx, a, b)
	if err != nil {
		return nil, nil, err
	}
	if len(la) != len(a) || len(lb) != len(b) {
		return nil, nil, fmt.Errorf("lemmatizer returned %d/%d tokens for %d/%d", len(la), len(lb), len(a), len(b))
	}
	return la, lb, nil
}

// SetBrightness sets Bright on every highlighted token, in both texts, whose
// core equals core. EventEnter brightens and EventLeave dims. Empty or
// whitespace-only cores are ignored. Any other event kind panics.
func (s *State) SetBrightness(core string, kind EventKind) {
	if strings.TrimSpace(core) == "" {
		return
	}
	bright := kind.bright()

	s.mu.Lock()
	defer s.mu.Unlock()

	for _, addr := range s.addressesLocked(core) {
		s.texts[addr.Text-1].Tokenized[addr.Index].Bright = bright
	}
}

// Addresses returns the positions of highlighted tokens whose core equals core.
func (s *State) Addresses(core string) []Address {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.addressesLocked(core)
}

func (s *State) addressesLocked(core string) []Address {
	var out []Address
	for i, text := range s.texts {
		for j, tok := range text.Tokenized {
			if tok.Core == core && tok.Highlight {
				out = append(out, Address{Text: TextID(i + 1), Index: j})
			}
		}
	}
	return out
}

// Watch recomputes the comparison whenever a comparison flag changes while
// the settings are in view mode. The recompute runs on the context of the
// call that changed the flag, and its notices are kept for Notices.
// The returned function stops watching.
func (s *State) Watch(src *settings.Settings) func() {
	return src.Subscribe(func(ctx context.Context, change settings.Change) {
		if change.New.Mode != settings.ModeView {
			return
		}
		logger := contextutil.LoggerFromContext(ctx)
		if _, err := s.Compare(ctx); err != nil {
			if errors.Is(err, ErrSuperseded) {
				return
			}
			logger.ErrorContext(ctx, "recomputing comparison after settings change failed", "error", err)
		}
	})
}
