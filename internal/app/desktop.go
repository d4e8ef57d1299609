// Package app provides the desktop host: the Bubble Tea model that owns the
// window registry, one shell per registered app, the dock and the active
// interaction session.
package app

import (
	"fmt"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"
	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/Gaurav-Gosain/tuidesk/internal/apps"
	"github.com/Gaurav-Gosain/tuidesk/internal/config"
	"github.com/Gaurav-Gosain/tuidesk/internal/dock"
	"github.com/Gaurav-Gosain/tuidesk/internal/geom"
	"github.com/Gaurav-Gosain/tuidesk/internal/registry"
	"github.com/Gaurav-Gosain/tuidesk/internal/session"
	"github.com/Gaurav-Gosain/tuidesk/internal/shell"
)

// Mode represents where key presses go.
type Mode int

const (
	// WindowManagementMode resolves keys through the keymap.
	WindowManagementMode Mode = iota
	// ContentMode passes keys to the focused window's content.
	ContentMode
)

// Notification represents a temporary notification message.
type Notification struct {
	ID        string
	Message   string
	Type      string // "info", "warning", "error"
	StartTime time.Time
	Duration  time.Duration
}

// LogMessage represents a log entry with timestamp and level.
type LogMessage struct {
	Time    time.Time
	Level   string // INFO, WARN, ERROR
	Message string
}

// Options configures a Desktop.
type Options struct {
	Config   *config.UserConfig
	Contents map[registry.WindowID]shell.Content
	Opener   dock.Opener
	Logger   *log.Logger
	// Remote marks SSH and web sessions.
	Remote bool
}

// Desktop is the application model.
type Desktop struct {
	Registry *registry.Registry
	Shells   map[registry.WindowID]*shell.Shell
	Dock     *dock.Dock
	Launcher *dock.Launcher
	Tracker  *session.Tracker
	Keymap   *config.Keymap

	Width  int
	Height int
	Mode   Mode
	Remote bool

	ShowHelp        bool
	ShowLogs        bool
	LogMessages     []LogMessage
	LogScrollOffset int
	Notifications   []Notification

	startup []registry.WindowID
	logger  *log.Logger
	cache   *lru.Cache[renderKey, string]
}

// New builds a desktop. Missing options fall back to the defaults.
func New(opts Options) (*Desktop, error) {
	cfg := opts.Config
	if cfg == nil {
		cfg = config.DefaultConfig()
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.Default()
	}
	contents := opts.Contents
	if contents == nil {
		contents = apps.Default(nil)
	}

	cache, err := lru.New[renderKey, string](config.RenderCacheSize)
	if err != nil {
		return nil, fmt.Errorf("failed to create render cache: %w", err)
	}

	reg := registry.New(cfg.RegistryOptions())
	d := &Desktop{
		Registry: reg,
		Shells:   make(map[registry.WindowID]*shell.Shell, len(registry.AllWindowIDs())),
		Dock:     dock.New(dock.DefaultItems(), opts.Opener, logger),
		Launcher: dock.NewLauncher(dock.DefaultItems()),
		Tracker: session.NewTracker(reg,
			session.WithFloorPolicy(cfg.FloorPolicy()),
			session.WithLogger(logger)),
		Keymap:  config.NewKeymap(cfg),
		Width:   config.DefaultTerminalWidth,
		Height:  config.DefaultTerminalHeight,
		Remote:  opts.Remote,
		startup: cfg.StartupWindows(),
		logger:  logger,
		cache:   cache,
	}
	for _, id := range registry.AllWindowIDs() {
		d.Shells[id] = shell.New(id, contents[id])
	}

	for _, w := range cfg.Warnings() {
		d.LogWarn("config: %s", w)
	}
	return d, nil
}

// Logger returns the structured logger entries are mirrored to.
func (d *Desktop) Logger() *log.Logger { return d.logger }

// Log adds a new log message to the log buffer and mirrors it to the file
// logger.
func (d *Desktop) Log(level, format string, args ...any) {
	message := fmt.Sprintf(format, args...)
	d.LogMessages = append(d.LogMessages, LogMessage{Time: time.Now(), Level: level, Message: message})
	if len(d.LogMessages) > config.MaxLogMessages {
		d.LogMessages = d.LogMessages[len(d.LogMessages)-config.MaxLogMessages:]
	}

	switch level {
	case "ERROR":
		d.logger.Error(message)
	case "WARN":
		d.logger.Warn(message)
	default:
		d.logger.Info(message)
	}

	// Sticky scroll: follow the tail while the viewer is at the bottom.
	if d.ShowLogs {
		maxScroll := max(len(d.LogMessages)-d.logsPerPage(), 0)
		if d.LogScrollOffset >= maxScroll-2 {
			d.LogScrollOffset = maxScroll
		}
	}
}

// LogInfo logs an informational message.
func (d *Desktop) LogInfo(format string, args ...any) { d.Log("INFO", format, args...) }

// LogWarn logs a warning message.
func (d *Desktop) LogWarn(format string, args ...any) { d.Log("WARN", format, args...) }

// LogError logs an error message.
func (d *Desktop) LogError(format string, args ...any) { d.Log("ERROR", format, args...) }

// ShowNotification displays a temporary notification and logs it.
func (d *Desktop) ShowNotification(message, notifType string, duration time.Duration) {
	d.Notifications = append(d.Notifications, Notification{
		ID:        uuid.NewString(),
		Message:   message,
		Type:      notifType,
		StartTime: time.Now(),
		Duration:  duration,
	})

	switch notifType {
	case "error":
		d.LogError("%s", message)
	case "warning":
		d.LogWarn("%s", message)
	default:
		d.LogInfo("%s", message)
	}
}

// CleanupNotifications removes expired notifications.
func (d *Desktop) CleanupNotifications() {
	now := time.Now()
	active := d.Notifications[:0]
	for _, n := range d.Notifications {
		if now.Sub(n.StartTime) < n.Duration {
			active = append(active, n)
		}
	}
	d.Notifications = active
}

// DockY returns the row of the dock's items.
func (d *Desktop) DockY() int {
	if config.DockbarPosition == "top" {
		return 0
	}
	return d.Height - config.DockHeight
}

// InDock reports whether row y belongs to the dock.
func (d *Desktop) InDock(y int) bool {
	if config.IsDockbarHidden() {
		return false
	}
	top := d.DockY()
	return y >= top && y < top+config.DockHeight
}

// DesktopArea is the region maximized windows fill: the screen minus the
// dock rows.
func (d *Desktop) DesktopArea() geom.Rect {
	r := geom.Rect{Width: d.Width, Height: d.Height}
	if config.IsDockbarHidden() {
		return r
	}
	r.Height = max(0, d.Height-config.DockHeight)
	if config.DockbarPosition == "top" {
		r.Y = config.DockHeight
	}
	return r
}

// WindowAt finds the topmost visible window under p.
func (d *Desktop) WindowAt(p geom.Point) (registry.WindowState, shell.Hit, bool) {
	stacked := d.Registry.Stacked()
	area := d.DesktopArea()
	for i := len(stacked) - 1; i >= 0; i-- {
		if hit := shell.HitTest(stacked[i], area, p); hit.Zone != shell.ZoneNone {
			return stacked[i], hit, true
		}
	}
	return registry.WindowState{}, shell.Hit{}, false
}

// FocusedContent returns the content of the top visible window.
func (d *Desktop) FocusedContent() (registry.WindowID, shell.Content, bool) {
	id, ok := d.Registry.TopVisible()
	if !ok {
		return 0, nil, false
	}
	return id, d.Shells[id].Content, true
}

// EnterContentMode routes keys to the focused window when its content
// accepts them.
func (d *Desktop) EnterContentMode() bool {
	_, c, ok := d.FocusedContent()
	if !ok {
		return false
	}
	if _, interactive := c.(shell.Interactive); !interactive {
		return false
	}
	d.Mode = ContentMode
	return true
}

// ExitContentMode returns keys to the window manager.
func (d *Desktop) ExitContentMode() {
	d.Mode = WindowManagementMode
}

// OpenStartupApps opens the configured startup windows in order.
func (d *Desktop) OpenStartupApps() {
	for _, id := range d.startup {
		d.Registry.Open(id)
		d.LogInfo("opened %s", d.Shells[id].Title())
	}
}

func (d *Desktop) logsPerPage() int {
	return max(max(d.Height-8, 8)-6, 1)
}
