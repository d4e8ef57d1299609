// Package config provides configuration constants, keybinding management, and user settings.
package config

import (
	"time"

	"charm.land/lipgloss/v2"
)

// =============================================================================
// Window Defaults
// =============================================================================

const (
	// DefaultWindowWidth is the initial width of every application window
	DefaultWindowWidth = 60

	// DefaultWindowHeight is the initial height of every application window
	DefaultWindowHeight = 18

	// MinWindowWidth is the minimum width a window can be resized to
	MinWindowWidth = 24

	// MinWindowHeight is the minimum height a window can be resized to
	MinWindowHeight = 8

	// DefaultBaseZ is the stacking value of the first registered window
	DefaultBaseZ = 10

	// DefaultCascadeOriginX is the column of the first window
	DefaultCascadeOriginX = 4

	// DefaultCascadeOriginY is the row of the first window
	DefaultCascadeOriginY = 2

	// DefaultCascadeStepX is the horizontal stagger between windows
	DefaultCascadeStepX = 3

	// DefaultCascadeStepY is the vertical stagger between windows
	DefaultCascadeStepY = 1
)

// =============================================================================
// Timing
// =============================================================================

const (
	// NotificationDuration is how long notifications remain visible
	NotificationDuration = 1500 * time.Millisecond

	// HostInfoTTL is how long the terminal app caches its host summary
	HostInfoTTL = 5 * time.Second
)

// =============================================================================
// Frame Rate
// =============================================================================

const (
	// NormalFPS caps the program's frame rate
	NormalFPS = 60
)

// =============================================================================
// UI Layout Dimensions
// =============================================================================

const (
	// DockHeight is the height of the dock area
	DockHeight = 2

	// LogViewerWidth is the width of the log viewer overlay
	LogViewerWidth = 80

	// LauncherWidth is the width of the launcher overlay
	LauncherWidth = 40

	// LauncherMaxResults is the number of matches the launcher lists
	LauncherMaxResults = 6

	// MaxNotificationWidth is the maximum width of notification messages
	MaxNotificationWidth = 60

	// NotificationMargin is the margin from screen edge for notifications
	NotificationMargin = 2

	// MaxNameLengthDock is the maximum length of an item label in the dock
	MaxNameLengthDock = 12

	// RenderCacheSize is the number of rendered window layers kept
	RenderCacheSize = 64
)

// =============================================================================
// Dock Visual Characters
// =============================================================================

const (
	// DockPillLeftChar is the left character for pill-style indicators
	DockPillLeftChar = string(rune(0xe0b6))

	// DockPillRightChar is the right character for pill-style indicators
	DockPillRightChar = string(rune(0xe0b4))

	// DockIndicatorOpen marks an open window under its dock item
	DockIndicatorOpen = "•"

	// DockIndicatorFocused marks the focused window under its dock item
	DockIndicatorFocused = "▔"

	// DockSeparator is the gap between dock items
	DockSeparator = " "
)

const (
	// DockPillLeftCharASCII is the ASCII fallback for pill left
	DockPillLeftCharASCII = "["

	// DockPillRightCharASCII is the ASCII fallback for pill right
	DockPillRightCharASCII = "]"

	// DockIndicatorOpenASCII is the ASCII fallback for the open marker
	DockIndicatorOpenASCII = "."

	// DockIndicatorFocusedASCII is the ASCII fallback for the focus marker
	DockIndicatorFocusedASCII = "^"
)

// Dock icons, keyed by item. Nerd Font glyphs with ASCII fallbacks.
var (
	dockIcons = map[string]string{
		"finder":   string(rune(0xf07b)),
		"terminal": string(rune(0xf120)),
		"safari":   string(rune(0xf0ac)),
		"mail":     string(rune(0xf0e0)),
		"vscode":   string(rune(0xf121)),
		"snake":    string(rune(0xf11b)),
		"tetris":   string(rune(0xf1b2)),
		"github":   string(rune(0xf09b)),
		"linkedin": string(rune(0xf0e1)),
		"resume":   string(rune(0xf1c1)),
		"trash":    string(rune(0xf1f8)),
		"all_apps": string(rune(0xf009)),
	}
	dockIconsASCII = map[string]string{
		"finder":   "F",
		"terminal": ">",
		"safari":   "B",
		"mail":     "@",
		"vscode":   "C",
		"snake":    "S",
		"tetris":   "T",
		"github":   "gh",
		"linkedin": "in",
		"resume":   "cv",
		"trash":    "x",
		"all_apps": "*",
	}
)

// =============================================================================
// Runtime Configuration
// =============================================================================

// UseASCIIOnly controls whether to use ASCII fallback characters instead of Nerd Fonts
// Set via --ascii-only command-line flag or appearance.ascii_only config
var UseASCIIOnly = false

// BorderStyle controls which border style to use for windows
// Set via --border-style flag or appearance.border_style config
var BorderStyle = "rounded"

// DockbarPosition controls the position of the dockbar
// Set via --dockbar-position flag or appearance.dockbar_position config
var DockbarPosition = "bottom"

// HideWindowButtons controls whether to hide window control buttons
// Set via --hide-window-buttons flag or appearance.hide_window_buttons config
var HideWindowButtons = false

// WindowTitlePosition controls where window titles are displayed
// Options: bottom, top, hidden
// Set via --window-title-position flag or appearance.window_title_position config
var WindowTitlePosition = "top"

// GetDockPillLeftChar returns the appropriate pill left character based on UseASCIIOnly
func GetDockPillLeftChar() string {
	if UseASCIIOnly {
		return DockPillLeftCharASCII
	}
	return DockPillLeftChar
}

// GetDockPillRightChar returns the appropriate pill right character based on UseASCIIOnly
func GetDockPillRightChar() string {
	if UseASCIIOnly {
		return DockPillRightCharASCII
	}
	return DockPillRightChar
}

// GetDockIndicatorOpen returns the open marker
func GetDockIndicatorOpen() string {
	if UseASCIIOnly {
		return DockIndicatorOpenASCII
	}
	return DockIndicatorOpen
}

// GetDockIndicatorFocused returns the focus marker
func GetDockIndicatorFocused() string {
	if UseASCIIOnly {
		return DockIndicatorFocusedASCII
	}
	return DockIndicatorFocused
}

// GetDockIcon returns the icon for a dock item key, or its first letter.
func GetDockIcon(key string) string {
	icons := dockIcons
	if UseASCIIOnly {
		icons = dockIconsASCII
	}
	if icon, ok := icons[key]; ok {
		return icon
	}
	if key == "" {
		return "?"
	}
	return key[:1]
}

// IsDockbarHidden reports whether the dock takes no rows.
func IsDockbarHidden() bool {
	return DockbarPosition == "hidden"
}

// =============================================================================
// Window Decoration Characters
// =============================================================================

const (
	// WindowButtonClose is the close button
	WindowButtonClose = " ⤫ "
	// WindowButtonMinimize is the minimize button
	WindowButtonMinimize = " — "
	// WindowButtonMaximize is the maximize button
	WindowButtonMaximize = " □ "
	// WindowButtonRestore is shown instead of maximize while maximized
	WindowButtonRestore = " ◱ "
	// WindowPillLeft is the left pill-style character for window decorations.
	WindowPillLeft = string(rune(0xe0b6))
	// WindowPillRight is the right pill-style character for window decorations.
	WindowPillRight = string(rune(0xe0b4))
)

const (
	// WindowButtonCloseASCII is the close button (ASCII fallback).
	WindowButtonCloseASCII = " X "
	// WindowButtonMinimizeASCII is the minimize button (ASCII fallback).
	WindowButtonMinimizeASCII = " _ "
	// WindowButtonMaximizeASCII is the maximize button (ASCII fallback).
	WindowButtonMaximizeASCII = " O "
	// WindowButtonRestoreASCII is the restore button (ASCII fallback).
	WindowButtonRestoreASCII = " o "
	// WindowPillLeftASCII is the left pill-style character (ASCII fallback).
	WindowPillLeftASCII = "["
	// WindowPillRightASCII is the right pill-style character (ASCII fallback).
	WindowPillRightASCII = "]"
)

// GetBorderForStyle returns the lipgloss Border for the current style
func GetBorderForStyle() lipgloss.Border {
	if UseASCIIOnly || BorderStyle == "ascii" {
		return lipgloss.ASCIIBorder()
	}
	switch BorderStyle {
	case "normal":
		return lipgloss.NormalBorder()
	case "thick":
		return lipgloss.ThickBorder()
	case "double":
		return lipgloss.DoubleBorder()
	case "hidden":
		return lipgloss.HiddenBorder()
	case "block":
		return lipgloss.BlockBorder()
	case "outer-half-block":
		return lipgloss.OuterHalfBlockBorder()
	case "inner-half-block":
		return lipgloss.InnerHalfBlockBorder()
	default:
		return lipgloss.RoundedBorder()
	}
}

// GetWindowButtonClose returns the appropriate close button
func GetWindowButtonClose() string {
	if UseASCIIOnly {
		return WindowButtonCloseASCII
	}
	return WindowButtonClose
}

// GetWindowButtonMinimize returns the appropriate minimize button
func GetWindowButtonMinimize() string {
	if UseASCIIOnly {
		return WindowButtonMinimizeASCII
	}
	return WindowButtonMinimize
}

// GetWindowButtonMaximize returns the maximize or restore button
func GetWindowButtonMaximize(maximized bool) string {
	switch {
	case UseASCIIOnly && maximized:
		return WindowButtonRestoreASCII
	case UseASCIIOnly:
		return WindowButtonMaximizeASCII
	case maximized:
		return WindowButtonRestore
	default:
		return WindowButtonMaximize
	}
}

// GetWindowPillLeft returns the appropriate pill left character
func GetWindowPillLeft() string {
	if UseASCIIOnly {
		return WindowPillLeftASCII
	}
	return WindowPillLeft
}

// GetWindowPillRight returns the appropriate pill right character
func GetWindowPillRight() string {
	if UseASCIIOnly {
		return WindowPillRightASCII
	}
	return WindowPillRight
}

// =============================================================================
// Button Positions (offsets from the window's right edge, inclusive)
// =============================================================================

const (
	// MinimizeButtonLeft is the left offset of the minimize button.
	MinimizeButtonLeft = -11
	// MinimizeButtonRight is the right offset of the minimize button.
	MinimizeButtonRight = -9
	// MaximizeButtonLeft is the left offset of the maximize button.
	MaximizeButtonLeft = -8
	// MaximizeButtonRight is the right offset of the maximize button.
	MaximizeButtonRight = -6
	// CloseButtonLeft is the left offset of the close button.
	CloseButtonLeft = -5
	// CloseButtonRight is the right offset of the close button.
	CloseButtonRight = -3
)

// =============================================================================
// Limits
// =============================================================================

const (
	// MaxLogMessages is the maximum number of log messages to keep in memory
	MaxLogMessages = 100

	// MaxHelpLines is the estimated maximum number of help lines
	MaxHelpLines = 30
)

// =============================================================================
// Overlay Layers (above any window stacking value)
// =============================================================================

const (
	// ZIndexBackground is the z-index of the desktop wallpaper
	ZIndexBackground = -1

	// ZIndexDock is the z-index for the dock
	ZIndexDock = 1 << 20

	// ZIndexLauncher is the z-index for the launcher overlay
	ZIndexLauncher = ZIndexDock + 1

	// ZIndexHelp is the z-index for help overlay
	ZIndexHelp = ZIndexDock + 2

	// ZIndexLogs is the z-index for log viewer overlay
	ZIndexLogs = ZIndexDock + 3

	// ZIndexNotifications is the z-index for notifications
	ZIndexNotifications = ZIndexDock + 4
)

// =============================================================================
// Default Values
// =============================================================================

const (
	// DefaultSSHPort is the default SSH server port
	DefaultSSHPort = "2222"

	// DefaultSSHHost is the default SSH server host
	DefaultSSHHost = "localhost"

	// DefaultWebPort is the default port for the browser front end
	DefaultWebPort = "7681"

	// DefaultWebHost is the default host for the browser front end
	DefaultWebHost = "localhost"

	// DefaultTerminalWidth is the fallback terminal width when screen size unknown
	DefaultTerminalWidth = 80

	// DefaultTerminalHeight is the fallback terminal height when screen size unknown
	DefaultTerminalHeight = 24

	// BorderWidth is the width of window borders (left and right)
	BorderWidth = 2

	// BorderHeight is the height of window borders (top and bottom)
	BorderHeight = 2
)
