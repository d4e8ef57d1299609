// Package input routes keyboard and pointer events to the desktop.
//
// Keys go through the keymap in window management mode and to the focused
// window's content in content mode. Pointer presses are resolved against the
// dock and the window stack; motion and release drive the active session.
package input

import (
	tea "charm.land/bubbletea/v2"

	"github.com/Gaurav-Gosain/tuidesk/internal/app"
)

// HandleInput is the main input coordinator that routes messages to appropriate handlers
func HandleInput(msg tea.Msg, d *app.Desktop) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyPressMsg:
		return HandleKeyPress(msg, d)
	case tea.MouseClickMsg:
		return handleMouseClick(msg, d)
	case tea.MouseMotionMsg:
		return handleMouseMotion(msg, d)
	case tea.MouseReleaseMsg:
		return handleMouseRelease(msg, d)
	case tea.BlurMsg:
		d.Tracker.Cancel("focus lost")
		return d, nil
	default:
		return d, nil
	}
}

// FilterMouseMotion is a tea.WithFilter function that drops pointer motion
// unless a drag or resize has installed a pointer capture.
func FilterMouseMotion(model tea.Model, msg tea.Msg) tea.Msg {
	if _, ok := msg.(tea.MouseMotionMsg); !ok {
		return msg
	}
	d, ok := model.(*app.Desktop)
	if !ok {
		return msg
	}
	if d.Tracker.Capture().Active() {
		return msg
	}
	return nil
}
