package app

import (
	"fmt"
	"runtime/debug"
	"time"

	tea "charm.land/bubbletea/v2"
)

// TickerMsg is the periodic housekeeping tick.
type TickerMsg time.Time

// tickInterval paces notification expiry. Rendering is event driven.
const tickInterval = 250 * time.Millisecond

// TickCmd schedules the next housekeeping tick.
func TickCmd() tea.Cmd {
	return tea.Tick(tickInterval, func(t time.Time) tea.Msg {
		return TickerMsg(t)
	})
}

// InputHandler is a function type that handles input messages.
// This allows the Update method to delegate to the input package without creating a circular dependency.
type InputHandler func(msg tea.Msg, d *Desktop) (tea.Model, tea.Cmd)

// inputHandler is the registered input handler function.
var inputHandler InputHandler

// SetInputHandler registers the input handler function.
// This must be called during initialization before the Update loop runs.
func SetInputHandler(handler InputHandler) {
	inputHandler = handler
}

// Init opens the startup apps and starts the housekeeping tick.
func (d *Desktop) Init() tea.Cmd {
	d.safely("init", d.OpenStartupApps)
	return TickCmd()
}

// Update handles all incoming messages and updates the application state.
func (d *Desktop) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		d.Width = msg.Width
		d.Height = msg.Height
		return d, nil

	case TickerMsg:
		d.CleanupNotifications()
		return d, TickCmd()
	}

	return d.safeDispatch(msg)
}

// safeDispatch runs the input handler for one message. A panic is contained
// to that message: it is logged, any session is torn down and the desktop
// keeps running.
func (d *Desktop) safeDispatch(msg tea.Msg) (model tea.Model, cmd tea.Cmd) {
	if inputHandler == nil {
		return d, nil
	}
	defer func() {
		if r := recover(); r != nil {
			d.recovered(fmt.Sprintf("%T", msg), r)
			model, cmd = d, nil
		}
	}()
	return inputHandler(msg, d)
}

// safely runs fn with the same containment as safeDispatch.
func (d *Desktop) safely(op string, fn func()) {
	defer func() {
		if r := recover(); r != nil {
			d.recovered(op, r)
		}
	}()
	fn()
}

func (d *Desktop) recovered(op string, r any) {
	d.Tracker.Cancel("panic")
	d.logger.Error("recovered panic", "op", op, "err", r, "stack", string(debug.Stack()))
	d.ShowNotification(fmt.Sprintf("internal error: %v", r), "error", 3*time.Second)
}
