package input

import (
	"fmt"

	tea "charm.land/bubbletea/v2"

	"github.com/Gaurav-Gosain/tuidesk/internal/app"
	"github.com/Gaurav-Gosain/tuidesk/internal/config"
	"github.com/Gaurav-Gosain/tuidesk/internal/registry"
)

// ActionHandler is a function that handles a specific action
type ActionHandler func(_ tea.KeyPressMsg, d *app.Desktop) (*app.Desktop, tea.Cmd)

// ActionDispatcher maps action names to handler functions
type ActionDispatcher struct {
	handlers map[string]ActionHandler
}

// NewActionDispatcher creates a new action dispatcher with all handlers registered
func NewActionDispatcher() *ActionDispatcher {
	d := &ActionDispatcher{
		handlers: make(map[string]ActionHandler),
	}
	d.registerHandlers()
	return d
}

func (d *ActionDispatcher) registerHandlers() {
	// Window management
	d.Register("next_window", handleNextWindow)
	d.Register("prev_window", handlePrevWindow)
	d.Register("minimize_window", onTopWindow((*registry.Registry).Minimize))
	d.Register("maximize_window", onTopWindow((*registry.Registry).Maximize))
	d.Register("close_window", onTopWindow((*registry.Registry).Close))
	d.Register("restore_all", handleRestoreAll)
	d.Register("toggle_all", handleToggleAll)
	d.Register("enter_content", handleEnterContent)
	for i := 1; i <= len(registry.AllWindowIDs()); i++ {
		d.Register(config.SelectWindowAction(i), makeSelectWindowHandler(i-1))
	}

	// System
	d.Register("toggle_launcher", handleToggleLauncher)
	d.Register("toggle_help", handleToggleHelp)
	d.Register("toggle_logs", handleToggleLogs)
	d.Register("exit_content", handleExitContent)
	d.Register("quit", handleQuit)
}

// Register adds an action handler
func (d *ActionDispatcher) Register(action string, handler ActionHandler) {
	d.handlers[action] = handler
}

// Dispatch executes the handler for a given action
func (d *ActionDispatcher) Dispatch(action string, msg tea.KeyPressMsg, desk *app.Desktop) (*app.Desktop, tea.Cmd) {
	if handler, ok := d.handlers[action]; ok {
		return handler(msg, desk)
	}
	return desk, nil
}

// HasAction checks if an action is registered
func (d *ActionDispatcher) HasAction(action string) bool {
	_, ok := d.handlers[action]
	return ok
}

var globalDispatcher = NewActionDispatcher()

// GetDispatcher returns the global action dispatcher
func GetDispatcher() *ActionDispatcher {
	return globalDispatcher
}

func handleNextWindow(_ tea.KeyPressMsg, d *app.Desktop) (*app.Desktop, tea.Cmd) {
	d.Registry.CycleFocus(true)
	return d, nil
}

func handlePrevWindow(_ tea.KeyPressMsg, d *app.Desktop) (*app.Desktop, tea.Cmd) {
	d.Registry.CycleFocus(false)
	return d, nil
}

// onTopWindow applies op to the highest visible window, if any.
func onTopWindow(op func(*registry.Registry, registry.WindowID)) ActionHandler {
	return func(_ tea.KeyPressMsg, d *app.Desktop) (*app.Desktop, tea.Cmd) {
		if id, ok := d.Registry.TopVisible(); ok {
			op(d.Registry, id)
		}
		return d, nil
	}
}

func handleRestoreAll(_ tea.KeyPressMsg, d *app.Desktop) (*app.Desktop, tea.Cmd) {
	d.Registry.RestoreAll()
	return d, nil
}

func handleToggleAll(_ tea.KeyPressMsg, d *app.Desktop) (*app.Desktop, tea.Cmd) {
	d.Registry.ToggleAll()
	return d, nil
}

func handleEnterContent(_ tea.KeyPressMsg, d *app.Desktop) (*app.Desktop, tea.Cmd) {
	if d.EnterContentMode() {
		return d, nil
	}
	if id, _, ok := d.FocusedContent(); ok {
		d.ShowNotification(fmt.Sprintf("%s does not take input", d.Shells[id].Title()), "info", config.NotificationDuration)
	}
	return d, nil
}

func handleExitContent(_ tea.KeyPressMsg, d *app.Desktop) (*app.Desktop, tea.Cmd) {
	d.ExitContentMode()
	return d, nil
}

// makeSelectWindowHandler creates a handler that clicks the idx-th app in
// the dock.
func makeSelectWindowHandler(idx int) ActionHandler {
	return func(_ tea.KeyPressMsg, d *app.Desktop) (*app.Desktop, tea.Cmd) {
		items := d.Dock.Apps()
		if idx >= len(items) {
			return d, nil
		}
		if err := d.Dock.Click(d.Registry, items[idx]); err != nil {
			d.ShowNotification(err.Error(), "error", config.NotificationDuration)
		}
		return d, nil
	}
}

func handleToggleLauncher(_ tea.KeyPressMsg, d *app.Desktop) (*app.Desktop, tea.Cmd) {
	d.Launcher.Toggle()
	return d, nil
}

func handleToggleHelp(_ tea.KeyPressMsg, d *app.Desktop) (*app.Desktop, tea.Cmd) {
	d.ShowHelp = !d.ShowHelp
	if d.ShowHelp {
		d.ShowLogs = false
	}
	return d, nil
}

func handleToggleLogs(_ tea.KeyPressMsg, d *app.Desktop) (*app.Desktop, tea.Cmd) {
	d.ShowLogs = !d.ShowLogs
	if d.ShowLogs {
		d.ShowHelp = false
		// Open at the tail.
		d.LogScrollOffset = len(d.LogMessages)
	}
	return d, nil
}

func handleQuit(_ tea.KeyPressMsg, d *app.Desktop) (*app.Desktop, tea.Cmd) {
	d.Tracker.Cancel("quit")
	return d, tea.Quit
}
