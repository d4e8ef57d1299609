// Package registry is the authoritative store of desktop window state.
//
// Every registered application has exactly one WindowState, created when the
// Registry is built and never removed. Callers read copies and mutate only
// through the Registry's operations, which keep stacking order unique and
// sizes above the floor.
package registry

import (
	"errors"
	"fmt"
	"strings"

	"github.com/Gaurav-Gosain/tuidesk/internal/geom"
)

// WindowID identifies one registered application slot.
type WindowID uint8

// Registered applications, in dock order.
const (
	Finder WindowID = iota + 1
	Terminal
	Browser
	Mail
	Code
	Snake
	Tetris

	windowIDEnd
)

var windowSlugs = [...]string{
	Finder:   "finder",
	Terminal: "terminal",
	Browser:  "safari",
	Mail:     "mail",
	Code:     "vscode",
	Snake:    "snake",
	Tetris:   "tetris",
}

// ErrUnknownWindow is returned or wrapped when an id is outside the
// registered set.
var ErrUnknownWindow = errors.New("unknown window")

// AllWindowIDs returns every registered id in registration order.
func AllWindowIDs() []WindowID {
	ids := make([]WindowID, 0, int(windowIDEnd)-1)
	for id := Finder; id < windowIDEnd; id++ {
		ids = append(ids, id)
	}
	return ids
}

// Valid reports whether id belongs to the registered set.
func (id WindowID) Valid() bool {
	return id >= Finder && id < windowIDEnd
}

// Index returns the zero-based registration index of id.
func (id WindowID) Index() int {
	return int(id) - int(Finder)
}

func (id WindowID) String() string {
	if !id.Valid() {
		return fmt.Sprintf("window(%d)", uint8(id))
	}
	return windowSlugs[id]
}

// ParseWindowID resolves a slug such as "terminal" or "vscode".
func ParseWindowID(s string) (WindowID, error) {
	want := strings.ToLower(strings.TrimSpace(s))
	for id := Finder; id < windowIDEnd; id++ {
		if windowSlugs[id] == want {
			return id, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownWindow, s)
}

// Mode is the presentation state derived from the visibility flags.
type Mode uint8

const (
	ModeHidden Mode = iota
	ModeFloating
	ModeMaximized
)

func (m Mode) String() string {
	switch m {
	case ModeHidden:
		return "hidden"
	case ModeFloating:
		return "floating"
	case ModeMaximized:
		return "maximized"
	default:
		return fmt.Sprintf("Mode(%d)", uint8(m))
	}
}

// WindowState is the full state of one window. Values handed out by the
// Registry are copies.
type WindowState struct {
	ID          WindowID
	IsOpen      bool
	IsMinimized bool
	IsMaximized bool
	ZIndex      int
	Position    geom.Point
	Size        geom.Size
}

// Visible reports whether the window is drawn and receives pointer input.
func (s WindowState) Visible() bool {
	return s.IsOpen && !s.IsMinimized
}

// Mode derives the presentation state.
func (s WindowState) Mode() Mode {
	switch {
	case !s.Visible():
		return ModeHidden
	case s.IsMaximized:
		return ModeMaximized
	default:
		return ModeFloating
	}
}

// Rect returns the floating geometry, which is preserved while maximized.
func (s WindowState) Rect() geom.Rect {
	return geom.RectOf(s.Position, s.Size)
}
