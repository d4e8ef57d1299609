package config

import (
	"slices"

	"github.com/Gaurav-Gosain/tuidesk/internal/theme"
)

// Overrides contains CLI flag values that can override user config.
// Zero values indicate the flag was not set and should use the user config default.
type Overrides struct {
	// ASCIIOnly uses ASCII characters instead of Nerd Font icons
	ASCIIOnly bool

	// BorderStyle overrides the window border style
	BorderStyle string

	// DockbarPosition overrides the dockbar position
	DockbarPosition string

	// HideWindowButtons overrides hiding window control buttons
	HideWindowButtons bool

	// WindowTitlePosition overrides the window title position
	WindowTitlePosition string

	// ThemeName is the theme to load
	ThemeName string

	// FloorPolicy overrides desktop.floor_policy
	FloorPolicy string

	// StartupApps replaces desktop.startup_apps when non-nil
	StartupApps []string

	// Debug forces the debug log level
	Debug bool
}

// ApplyAppearance sets the process-wide appearance globals and loads the
// theme, with flags winning over user config. If userConfig is nil, only
// CLI flag values (when set) are applied. Renders read these globals
// without locking, so call it before any program runs.
func ApplyAppearance(overrides Overrides, userConfig *UserConfig) error {
	if err := validateOverrides(overrides); err != nil {
		return err
	}

	UseASCIIOnly = overrides.ASCIIOnly || (userConfig != nil && userConfig.Appearance.ASCIIOnly)

	if overrides.BorderStyle != "" {
		BorderStyle = overrides.BorderStyle
	} else if userConfig != nil && userConfig.Appearance.BorderStyle != "" {
		BorderStyle = userConfig.Appearance.BorderStyle
	}

	if overrides.DockbarPosition != "" {
		DockbarPosition = overrides.DockbarPosition
	} else if userConfig != nil && userConfig.Appearance.DockbarPosition != "" {
		DockbarPosition = userConfig.Appearance.DockbarPosition
	}

	if userConfig != nil {
		HideWindowButtons = overrides.HideWindowButtons || userConfig.Appearance.HideWindowButtons
	} else {
		HideWindowButtons = overrides.HideWindowButtons
	}

	if overrides.WindowTitlePosition != "" {
		WindowTitlePosition = overrides.WindowTitlePosition
	} else if userConfig != nil && userConfig.Appearance.WindowTitlePosition != "" {
		WindowTitlePosition = userConfig.Appearance.WindowTitlePosition
	}

	themeName := overrides.ThemeName
	if themeName == "" && userConfig != nil {
		themeName = userConfig.Appearance.Theme
	}
	return theme.Initialize(themeName)
}

// ApplyDesktopOverrides writes the desktop-section flags into userConfig
// and validates the result. It touches no globals, so each session may
// call it on its own copy of the config.
func ApplyDesktopOverrides(overrides Overrides, userConfig *UserConfig) error {
	if userConfig == nil {
		return nil
	}
	if overrides.FloorPolicy != "" {
		userConfig.Desktop.FloorPolicy = overrides.FloorPolicy
	}
	if overrides.StartupApps != nil {
		userConfig.Desktop.StartupApps = overrides.StartupApps
	}
	if overrides.Debug {
		userConfig.Desktop.LogLevel = "debug"
	}
	if res := ValidateConfig(userConfig); res.HasErrors() {
		return res.Err()
	}
	return nil
}

func validateOverrides(o Overrides) error {
	res := &ValidationResult{}
	if o.BorderStyle != "" && !slices.Contains(validBorderStyles, o.BorderStyle) {
		res.errorf("flags", "--border-style", "unknown style %q", o.BorderStyle)
	}
	if o.DockbarPosition != "" && !slices.Contains(validDockbarPositions, o.DockbarPosition) {
		res.errorf("flags", "--dockbar-position", "must be one of %v, got %q", validDockbarPositions, o.DockbarPosition)
	}
	if o.WindowTitlePosition != "" && !slices.Contains(validTitlePositions, o.WindowTitlePosition) {
		res.errorf("flags", "--window-title-position", "must be one of %v, got %q", validTitlePositions, o.WindowTitlePosition)
	}
	return res.Err()
}
