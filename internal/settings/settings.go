package settings

import (
	"context"
	"fmt"
	"sync"
)

// Mode is the current interaction mode of the comparison surface.
type Mode string

const (
	// ModeEdit means the texts are being edited and no comparison is shown.
	ModeEdit Mode = "edit"
	// ModeView means the comparison is shown and must follow settings changes.
	ModeView Mode = "view"
)

// ParseMode validates a mode string.
func ParseMode(s string) (Mode, error) {
	switch Mode(s) {
	case ModeEdit, ModeView:
		return Mode(s), nil
	default:
		return "", fmt.Errorf("unknown mode %q", s)
	}
}

// Snapshot is an immutable copy of the settings at one point in time.
type Snapshot struct {
	IgnoreStopWords bool `json:"ignoreStopWords"`
	Lemmatize       bool `json:"lemmatize"`
	Mode            Mode `json:"mode"`
}

// Change describes a transition of the comparison flags.
type Change struct {
	Old Snapshot
	New Snapshot
}

// Observer is notified after a comparison flag changes. ctx is the context
// of the call that made the change.
type Observer func(ctx context.Context, change Change)

// Settings holds the comparison flags and the current mode.
type Settings struct {
	mu        sync.Mutex
	current   Snapshot
	observers map[int]Observer
	nextID    int
}

// New creates Settings in edit mode with both flags off.
func New() *Settings {
	return &Settings{
		current:   Snapshot{Mode: ModeEdit},
		observers: make(map[int]Observer),
	}
}

// Snapshot returns the current settings.
func (s *Settings) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.current
}

// Subscribe registers an observer for flag changes and returns a function
// that removes it. Mode changes alone do not notify.
func (s *Settings) Subscribe(o Observer) func() {
	s.mu.Lock()
	defer s.mu.Unlock()

	id := s.nextID
	s.nextID++
	s.observers[id] = o

	return func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		delete(s.observers, id)
	}
}

// SetIgnoreStopWords updates the stop-word flag. Observers run before it returns.
func (s *Settings) SetIgnoreStopWords(ctx context.Context, v bool) {
	s.update(ctx, func(snap *Snapshot) { snap.IgnoreStopWords = v })
}

// SetLemmatize updates the lemmatization flag. Observers run before it returns.
func (s *Settings) SetLemmatize(ctx context.Context, v bool) {
	s.update(ctx, func(snap *Snapshot) { snap.Lemmatize = v })
}

// SetMode switches between edit and view.
func (s *Settings) SetMode(m Mode) error {
	if _, err := ParseMode(string(m)); err != nil {
		return err
	}
	s.mu.Lock()
	s.current.Mode = m
	s.mu.Unlock()
	return nil
}

func (s *Settings) update(ctx context.Context, apply func(*Snapshot)) {
	s.mu.Lock()
	old := s.current
	apply(&s.current)
	next := s.current
	observers := make([]Observer, 0, len(s.observers))
	for _, o := range s.observers {
		observers = append(observers, o)
	}
	s.mu.Unlock()

	if old.IgnoreStopWords == next.IgnoreStopWords && old.Lemmatize == next.Lemmatize {
		return
	}

	// Observers run outside the lock so they may read Snapshot.
	change := Change{Old: old, New: next}
	for _, o := range observers {
		o(ctx, change)
	}
}
