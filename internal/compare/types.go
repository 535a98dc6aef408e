package compare

import (
	"errors"
	"fmt"
	"strings"
)

// TextID identifies one of the two compared texts.
type TextID int

const (
	TextA TextID = 1
	TextB TextID = 2
)

// ParseTextID accepts "1"/"a" and "2"/"b", case-insensitively.
func ParseTextID(s string) (TextID, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "1", "a":
		return TextA, nil
	case "2", "b":
		return TextB, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownText, s)
	}
}

func (id TextID) index() (int, error) {
	switch id {
	case TextA:
		return 0, nil
	case TextB:
		return 1, nil
	default:
		return 0, fmt.Errorf("%w: %d", ErrUnknownText, int(id))
	}
}

// Address locates a token in the arena of one text.
type Address struct {
	Text  TextID `json:"text"`
	Index int    `json:"index"`
}

// EventKind is the pointer signal that drives brightness.
type EventKind int

const (
	EventEnter EventKind = iota + 1
	EventLeave
)

// ErrUnknownEvent is returned by ParseEventKind for anything but enter or leave.
var ErrUnknownEvent = errors.New("unknown event kind")

// ParseEventKind maps "mouseenter"/"enter" and "mouseleave"/"leave" to kinds.
func ParseEventKind(s string) (EventKind, error) {
	switch s {
	case "mouseenter", "enter":
		return EventEnter, nil
	case "mouseleave", "leave":
		return EventLeave, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownEvent, s)
	}
}

func (k EventKind) String() string {
	switch k {
	case EventEnter:
		return "enter"
	case EventLeave:
		return "leave"
	default:
		return fmt.Sprintf("EventKind(%d)", int(k))
	}
}

// bright panics for kinds other than EventEnter and EventLeave.
func (k EventKind) bright() bool {
	switch k {
	case EventEnter:
		return true
	case EventLeave:
		return false
	default:
		panic(fmt.Sprintf("compare: brightness supports only enter and leave events, got %v", k))
	}
}
