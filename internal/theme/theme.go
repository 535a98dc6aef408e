package theme

//go:generate go run go.uber.org/mock/mockgen@latest -destination=mocks/mock_storage.go -package=mocks textcompare/internal/theme Storage

import (
	"context"
	"fmt"
	"sync"

	"textcompare/internal/contextutil"
)

// Theme is the colour scheme of the comparison surface.
type Theme string

const (
	Light Theme = "light"
	Dark  Theme = "dark"
)

// StorageKey is the only key the theme is persisted under.
const StorageKey = "theme"

// Valid reports whether t is one of the two supported themes.
func (t Theme) Valid() bool {
	return t == Light || t == Dark
}

// Opposite returns the other theme.
func (t Theme) Opposite() Theme {
	if t == Light {
		return Dark
	}
	return Light
}

// Storage reads and writes string values by key.
// Implementations report a missing key with ok == false and a nil error.
type Storage interface {
	Read(ctx context.Context, key string) (value string, ok bool, err error)
	Write(ctx context.Context, key, value string) error
}

// Service keeps the persisted theme and the surface in sync.
type Service struct {
	mu       sync.Mutex
	storage  Storage
	surface  *Surface
	fallback Theme
}

// NewService creates a Service. An invalid fallback is replaced with Light.
func NewService(storage Storage, fallback Theme) *Service {
	if !fallback.Valid() {
		fallback = Light
	}
	return &Service{
		storage:  storage,
		surface:  NewSurface(),
		fallback: fallback,
	}
}

// Init loads the stored theme and applies it to the surface.
// A missing or unknown stored value is replaced by the fallback, which is
// written back so storage holds a valid value afterwards.
func (s *Service) Init(ctx context.Context) (Theme, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	logger := contextutil.LoggerFromContext(ctx)

	value, ok, err := s.storage.Read(ctx, StorageKey)
	if err != nil {
		return "", fmt.Errorf("read theme: %w", err)
	}

	current := Theme(value)
	if !ok || !current.Valid() {
		logger.DebugContext(ctx, "stored theme missing or invalid, repairing", "stored", value, "theme", s.fallback)
		current = s.fallback
		if err := s.storage.Write(ctx, StorageKey, string(current)); err != nil {
			return "", fmt.Errorf("write default theme: %w", err)
		}
	}

	s.surface.Reset(current)
	return current, nil
}

// Toggle persists the other theme and then applies it to the surface.
// A failed write leaves the surface unchanged and returns the current theme.
// It panics if the surface does not hold exactly one theme class.
func (s *Service) Toggle(ctx context.Context) (Theme, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	old := s.surface.Current()
	next := old.Opposite()

	if err := s.storage.Write(ctx, StorageKey, string(next)); err != nil {
		return old, fmt.Errorf("write theme: %w", err)
	}
	s.surface.Replace(old, next)
	return next, nil
}

// Current returns the theme applied to the surface.
func (s *Service) Current() Theme {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.surface.Current()
}

// Surface is the set of theme classes applied to the display root.
type Surface struct {
	classes map[Theme]bool
}

// NewSurface returns a surface with no theme applied.
func NewSurface() *Surface {
	return &Surface{classes: make(map[Theme]bool)}
}

// Reset removes every theme class and applies t.
func (s *Surface) Reset(t Theme) {
	s.classes = map[Theme]bool{t: true}
}

// Replace swaps class old for next.
func (s *Surface) Replace(old, next Theme) {
	delete(s.classes, old)
	s.classes[next] = true
}

// Current returns the single applied theme.
// No theme or both themes at once is an invariant violation and panics.
func (s *Surface) Current() Theme {
	light, dark := s.classes[Light], s.classes[Dark]
	switch {
	case !light && !dark:
		panic("theme: surface has no theme class")
	case light && dark:
		panic("theme: surface has both theme classes")
	case light:
		return Light
	default:
		return Dark
	}
}
