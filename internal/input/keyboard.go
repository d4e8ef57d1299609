package input

import (
	tea "charm.land/bubbletea/v2"

	"github.com/Gaurav-Gosain/tuidesk/internal/app"
	"github.com/Gaurav-Gosain/tuidesk/internal/config"
	"github.com/Gaurav-Gosain/tuidesk/internal/shell"
)

// HandleKeyPress handles all keyboard input and routes to mode-specific handlers.
// Overlays take keys first, then content mode, then the keymap.
func HandleKeyPress(msg tea.KeyPressMsg, d *app.Desktop) (*app.Desktop, tea.Cmd) {
	switch {
	case d.Launcher.IsOpen():
		return handleLauncherKey(msg, d)
	case d.ShowHelp:
		return handleHelpKey(msg, d)
	case d.ShowLogs:
		return handleLogsKey(msg, d)
	case d.Mode == app.ContentMode:
		return HandleContentModeKey(msg, d)
	}
	return HandleWindowManagementModeKey(msg, d)
}

// HandleWindowManagementModeKey resolves the key through the keymap.
func HandleWindowManagementModeKey(msg tea.KeyPressMsg, d *app.Desktop) (*app.Desktop, tea.Cmd) {
	action, ok := d.Keymap.Action(msg.String())
	if !ok {
		return d, nil
	}
	return GetDispatcher().Dispatch(action, msg, d)
}

// HandleContentModeKey forwards the key to the focused window's content. The
// exit_content binding and ctrl+c are never forwarded.
func HandleContentModeKey(msg tea.KeyPressMsg, d *app.Desktop) (*app.Desktop, tea.Cmd) {
	key := msg.String()
	if action, ok := d.Keymap.Action(key); ok && action == "exit_content" {
		d.ExitContentMode()
		return d, nil
	}
	if key == "ctrl+c" {
		return handleQuit(msg, d)
	}

	_, c, ok := d.FocusedContent()
	interactive, isInteractive := c.(shell.Interactive)
	if !ok || !isInteractive {
		// Focus moved to something that takes no input.
		d.ExitContentMode()
		return HandleWindowManagementModeKey(msg, d)
	}
	return d, interactive.Update(msg)
}

func handleLauncherKey(msg tea.KeyPressMsg, d *app.Desktop) (*app.Desktop, tea.Cmd) {
	switch msg.String() {
	case "esc", "ctrl+space", "ctrl+c":
		d.Launcher.Close()
	case "enter":
		it, ok := d.Launcher.Selected()
		d.Launcher.Close()
		if !ok {
			return d, nil
		}
		if err := d.Dock.Click(d.Registry, it); err != nil {
			d.ShowNotification(err.Error(), "error", config.NotificationDuration)
		}
	case "up", "ctrl+p", "shift+tab":
		d.Launcher.Move(-1)
	case "down", "ctrl+n", "tab":
		d.Launcher.Move(1)
	case "backspace":
		d.Launcher.Backspace()
	default:
		if msg.Text != "" {
			d.Launcher.Type(msg.Text)
		}
	}
	return d, nil
}

func handleHelpKey(msg tea.KeyPressMsg, d *app.Desktop) (*app.Desktop, tea.Cmd) {
	key := msg.String()
	if action, _ := d.Keymap.Action(key); key == "esc" || key == "q" || action == "toggle_help" {
		d.ShowHelp = false
	}
	return d, nil
}

func handleLogsKey(msg tea.KeyPressMsg, d *app.Desktop) (*app.Desktop, tea.Cmd) {
	key := msg.String()
	switch key {
	case "esc", "q":
		d.ShowLogs = false
	case "up", "k":
		d.LogScrollOffset = max(d.LogScrollOffset-1, 0)
	case "down", "j":
		// Clamped against the page size when rendered.
		d.LogScrollOffset++
	case "pgup":
		d.LogScrollOffset = max(d.LogScrollOffset-10, 0)
	case "pgdown":
		d.LogScrollOffset += 10
	case "g":
		d.LogScrollOffset = 0
	case "G":
		d.LogScrollOffset = len(d.LogMessages)
	default:
		if action, _ := d.Keymap.Action(key); action == "toggle_logs" {
			d.ShowLogs = false
		}
	}
	return d, nil
}
