// Package theme provides the desktop color palette, backed by bubbletint.
package theme

import (
	"fmt"
	"image/color"
	"sort"

	"charm.land/lipgloss/v2"
	"github.com/charmbracelet/log"
	tint "github.com/lrstanley/bubbletint/v2"
)

var enabled bool

// Initialize sets up the theme registry with the specified theme name.
// Call this once at application startup.
// If themeName is empty, theming is disabled and fixed fallback colors are used.
func Initialize(themeName string) error {
	if themeName == "" {
		enabled = false
		return nil
	}

	enabled = true
	tint.NewDefaultRegistry()

	if dir, err := ThemesDir(); err == nil {
		_, errs := LoadThemeDir(dir)
		for _, err := range errs {
			log.Warn("skipping custom theme", "err", err)
		}
	}

	if !tint.SetTintID(themeName) {
		log.Warn("theme not found, using default", "theme", themeName)
		tint.SetTintID("default")
	}
	return nil
}

// IsEnabled returns true if theming is enabled
func IsEnabled() bool {
	return enabled
}

// Current returns the currently active theme.
// Returns nil if theming is disabled.
func Current() *tint.Tint {
	if !enabled {
		return nil
	}
	return tint.Current()
}

// Available lists every registered theme id, including custom themes.
func Available() []string {
	if !enabled {
		tint.NewDefaultRegistry()
		if dir, err := ThemesDir(); err == nil {
			_, _ = LoadThemeDir(dir)
		}
	}
	ids := tint.TintIDs()
	sort.Strings(ids)
	return ids
}

// pick returns the themed color when theming is on, else the fallback hex.
func pick(fallback string, themed func(*tint.Tint) color.Color) color.Color {
	if t := Current(); t != nil {
		return themed(t)
	}
	return lipgloss.Color(fallback)
}

// BorderUnfocused returns the color for unfocused window borders.
func BorderUnfocused() color.Color {
	return pick("#FAAAAA", func(t *tint.Tint) color.Color { return t.Red })
}

// BorderFocused returns the color for the focused window's border.
func BorderFocused() color.Color {
	return pick("#AFFFFF", func(t *tint.Tint) color.Color { return t.BrightCyan })
}

// BorderInteracting returns the border color while a window is dragged or resized.
func BorderInteracting() color.Color {
	return pick("#AAFFAA", func(t *tint.Tint) color.Color { return t.BrightGreen })
}

// ButtonFg returns the foreground color for title bar buttons and badges.
func ButtonFg() color.Color {
	return pick("#000000", func(t *tint.Tint) color.Color { return t.Black })
}

// WindowFg returns the foreground color for window content.
func WindowFg() color.Color {
	return pick("#e5e5e5", func(t *tint.Tint) color.Color { return t.Fg })
}

// DesktopBg returns the wallpaper background.
func DesktopBg() color.Color {
	return pick("#101018", func(t *tint.Tint) color.Color { return t.Bg })
}

// DesktopPattern returns the wallpaper pattern color.
func DesktopPattern() color.Color {
	return pick("#26263a", func(t *tint.Tint) color.Color { return t.BrightBlack })
}

// DockBg returns the background color for the dock.
func DockBg() color.Color {
	return lipgloss.Color("#2a2a3e")
}

// DockFg returns the foreground color for dock labels.
func DockFg() color.Color {
	return lipgloss.Color("#a0a0a8")
}

// DockActive returns the indicator color for open windows.
func DockActive() color.Color {
	return pick("#4ade80", func(t *tint.Tint) color.Color { return t.BrightGreen })
}

// DockFocused returns the indicator color for the focused window.
func DockFocused() color.Color {
	return pick("#4865f2", func(t *tint.Tint) color.Color { return t.BrightBlue })
}

// DockDimmed returns the color for minimized windows and link items.
func DockDimmed() color.Color {
	return lipgloss.Color("#808090")
}

// LauncherBorder returns the border color of the launcher overlay.
func LauncherBorder() color.Color {
	return pick("#5c5cff", func(t *tint.Tint) color.Color { return t.Blue })
}

// LauncherMatch returns the highlight color for matched runes in the launcher.
func LauncherMatch() color.Color {
	return pick("#ffff00", func(t *tint.Tint) color.Color { return t.Yellow })
}

// LogViewerTitle returns the color for log viewer titles.
func LogViewerTitle() color.Color {
	return lipgloss.Color("14")
}

// LogViewerError returns the color for error messages in the log viewer.
func LogViewerError() color.Color {
	return lipgloss.Color("9")
}

// LogViewerWarn returns the color for warning messages in the log viewer.
func LogViewerWarn() color.Color {
	return lipgloss.Color("11")
}

// LogViewerInfo returns the color for info messages in the log viewer.
func LogViewerInfo() color.Color {
	return lipgloss.Color("10")
}

// LogViewerBg returns the background color for the log viewer.
func LogViewerBg() color.Color {
	return lipgloss.Color("#1a1a2a")
}

// NotificationError returns the color for error notifications.
func NotificationError() color.Color {
	return pick("#cd0000", func(t *tint.Tint) color.Color { return t.Red })
}

// NotificationInfo returns the color for info notifications.
func NotificationInfo() color.Color {
	return pick("#0000ee", func(t *tint.Tint) color.Color { return t.Blue })
}

// HelpBorder returns the border color for the help overlay.
func HelpBorder() color.Color {
	return lipgloss.Color("14")
}

// HelpKey returns the color for key names in the help overlay.
func HelpKey() color.Color {
	return lipgloss.Color("5")
}

// HelpGray returns the gray color for help descriptions.
func HelpGray() color.Color {
	return lipgloss.Color("8")
}

// ColorToString converts a color.Color to a hex string.
func ColorToString(c color.Color) string {
	if c == nil {
		return "#000000"
	}
	r, g, b, _ := c.RGBA()
	return fmt.Sprintf("#%02x%02x%02x", uint8(r>>8), uint8(g>>8), uint8(b>>8))
}
