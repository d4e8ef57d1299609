package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/adrg/xdg"
	"github.com/pelletier/go-toml/v2"
)

const configRelPath = "tuidesk/config.toml"

// UserConfig represents the user's custom configuration
type UserConfig struct {
	Appearance  AppearanceConfig  `toml:"appearance"`
	Desktop     DesktopConfig     `toml:"desktop"`
	Keybindings KeybindingsConfig `toml:"keybindings"`

	warnings []ValidationIssue
}

// Warnings returns the non-fatal issues found when the config was loaded.
func (c *UserConfig) Warnings() []ValidationIssue {
	return c.warnings
}

// AppearanceConfig holds appearance-related settings
type AppearanceConfig struct {
	BorderStyle         string `toml:"border_style"`          // rounded, normal, thick, double, hidden, block, ascii, outer-half-block, inner-half-block
	HideWindowButtons   bool   `toml:"hide_window_buttons"`   // Hide window control buttons (minimize, maximize, close)
	DockbarPosition     string `toml:"dockbar_position"`      // Dockbar position: bottom, top, hidden
	WindowTitlePosition string `toml:"window_title_position"` // Window title position: top, bottom, hidden (default: top)
	Theme               string `toml:"theme"`                 // Color theme name (e.g., dracula, nord, my-custom-theme)
	ASCIIOnly           bool   `toml:"ascii_only"`            // Use ASCII instead of Nerd Font glyphs
}

// DesktopConfig holds window layout settings
type DesktopConfig struct {
	MinWidth       int      `toml:"min_width"`        // Resize floor width (default: 24)
	MinHeight      int      `toml:"min_height"`       // Resize floor height (default: 8)
	DefaultWidth   int      `toml:"default_width"`    // Initial window width (default: 60)
	DefaultHeight  int      `toml:"default_height"`   // Initial window height (default: 18)
	CascadeOriginX int      `toml:"cascade_origin_x"` // Column of the first window (default: 4)
	CascadeOriginY int      `toml:"cascade_origin_y"` // Row of the first window (default: 2)
	CascadeStepX   int      `toml:"cascade_step_x"`   // Horizontal stagger per window (default: 3)
	CascadeStepY   int      `toml:"cascade_step_y"`   // Vertical stagger per window (default: 1)
	BaseZ          int      `toml:"base_z"`           // Stacking value of the first window (default: 10)
	FloorPolicy    string   `toml:"floor_policy"`     // reject or clamp (default: reject)
	StartupApps    []string `toml:"startup_apps"`     // Apps opened at launch (default: [finder])
	LogLevel       string   `toml:"log_level"`        // debug, info, warn, error (default: info)
}

// KeybindingsConfig holds all keybinding configurations
type KeybindingsConfig struct {
	WindowManagement map[string][]string `toml:"window_management"`
	System           map[string][]string `toml:"system"`
}

// DefaultConfig returns the default configuration
func DefaultConfig() *UserConfig {
	return &UserConfig{
		Appearance: AppearanceConfig{
			BorderStyle:         "rounded",
			HideWindowButtons:   false,
			DockbarPosition:     "bottom",
			WindowTitlePosition: "top",
		},
		Desktop: DesktopConfig{
			MinWidth:       MinWindowWidth,
			MinHeight:      MinWindowHeight,
			DefaultWidth:   DefaultWindowWidth,
			DefaultHeight:  DefaultWindowHeight,
			CascadeOriginX: DefaultCascadeOriginX,
			CascadeOriginY: DefaultCascadeOriginY,
			CascadeStepX:   DefaultCascadeStepX,
			CascadeStepY:   DefaultCascadeStepY,
			BaseZ:          DefaultBaseZ,
			FloorPolicy:    "reject",
			StartupApps:    []string{"finder"},
			LogLevel:       "info",
		},
		Keybindings: KeybindingsConfig{
			WindowManagement: map[string][]string{
				"next_window":     {"tab"},
				"prev_window":     {"shift+tab"},
				"minimize_window": {"m"},
				"maximize_window": {"f"},
				"close_window":    {"x", "w"},
				"restore_all":     {"M"},
				"toggle_all":      {"A"},
				"enter_content":   {"i", "enter"},
				"select_window_1": {"1"},
				"select_window_2": {"2"},
				"select_window_3": {"3"},
				"select_window_4": {"4"},
				"select_window_5": {"5"},
				"select_window_6": {"6"},
				"select_window_7": {"7"},
			},
			System: map[string][]string{
				"toggle_launcher": {"space", "ctrl+space"},
				"toggle_help":     {"?"},
				"toggle_logs":     {"L"},
				"exit_content":    {"esc"},
				"quit":            {"q", "ctrl+c"},
			},
		},
	}
}

// LoadUserConfig loads the user configuration from XDG config directory
func LoadUserConfig() (*UserConfig, error) {
	configPath, err := xdg.SearchConfigFile(configRelPath)
	if err != nil {
		return createDefaultConfig()
	}
	return LoadUserConfigFrom(configPath)
}

// LoadUserConfigFrom loads and validates the configuration at path.
func LoadUserConfigFrom(path string) (*UserConfig, error) {
	// #nosec G304 - path is from XDG search or an explicit flag
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg, err := ParseUserConfig(data)
	if err != nil {
		return nil, err
	}
	return cfg, nil
}

// ParseUserConfig decodes TOML, fills defaults and validates the result.
func ParseUserConfig(data []byte) (*UserConfig, error) {
	// Decode over the defaults so a partial file keeps the layout values it
	// omits. Keybindings are merged per action below instead.
	cfg := *DefaultConfig()
	cfg.Keybindings = KeybindingsConfig{}
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	defaultCfg := DefaultConfig()
	fillMissingAppearance(&cfg, defaultCfg)
	fillMissingDesktop(&cfg, defaultCfg)
	fillMissingKeybinds(&cfg, defaultCfg)

	validation := ValidateConfig(&cfg)
	if validation.HasErrors() {
		return nil, validation.Err()
	}
	cfg.warnings = validation.Warnings
	return &cfg, nil
}

// createDefaultConfig creates a default config file in the user's config directory
func createDefaultConfig() (*UserConfig, error) {
	cfg := DefaultConfig()

	configPath, err := xdg.ConfigFile(configRelPath)
	if err != nil {
		return nil, fmt.Errorf("failed to get config path: %w", err)
	}
	if err := WriteDefaultConfig(configPath); err != nil {
		return nil, err
	}
	return cfg, nil
}

// WriteDefaultConfig writes the commented default configuration to path.
func WriteDefaultConfig(configPath string) error {
	if err := os.MkdirAll(filepath.Dir(configPath), 0750); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := toml.Marshal(DefaultConfig())
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	var sb strings.Builder
	sb.WriteString("# tuidesk Configuration File\n")
	sb.WriteString("#\n")
	sb.WriteString("# Configuration location: " + configPath + "\n")
	sb.WriteString("# Reset with: tuidesk config reset\n\n")

	sb.WriteString("# ============================================================================\n")
	sb.WriteString("# APPEARANCE\n")
	sb.WriteString("# ============================================================================\n")
	sb.WriteString("# border_style: rounded, normal, thick, double, hidden, block, ascii,\n")
	sb.WriteString("#               outer-half-block, inner-half-block (default: rounded)\n")
	sb.WriteString("# dockbar_position: bottom, top, hidden (default: bottom)\n")
	sb.WriteString("# window_title_position: top, bottom, hidden (default: top)\n")
	sb.WriteString("# theme: bubbletint theme id, empty for terminal colors.\n")
	sb.WriteString("#   Custom themes: ~/.config/tuidesk/themes/*.json\n")
	sb.WriteString("#\n")
	sb.WriteString("# ============================================================================\n")
	sb.WriteString("# DESKTOP\n")
	sb.WriteString("# ============================================================================\n")
	sb.WriteString("# min_width / min_height: windows are never resized below this floor\n")
	sb.WriteString("# floor_policy: what the left and top edges do at the floor\n")
	sb.WriteString("#   reject: the edge stops where the drag started (default)\n")
	sb.WriteString("#   clamp:  the size pins to the floor, the opposite edge stays put\n")
	sb.WriteString("# startup_apps: finder, terminal, safari, mail, vscode, snake, tetris\n")
	sb.WriteString("#\n")
	sb.WriteString("# ============================================================================\n")
	sb.WriteString("# KEYBINDINGS\n")
	sb.WriteString("# ============================================================================\n")
	sb.WriteString("# enter_content sends keys to the focused app until exit_content is pressed.\n")
	sb.WriteString("# ============================================================================\n\n")

	sb.Write(data)

	if err := os.WriteFile(configPath, []byte(sb.String()), 0600); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}
	return nil
}

// fillMissingAppearance fills in any missing appearance settings with defaults
func fillMissingAppearance(cfg, defaultCfg *UserConfig) {
	if cfg.Appearance.BorderStyle == "" {
		cfg.Appearance.BorderStyle = defaultCfg.Appearance.BorderStyle
	}
	if cfg.Appearance.DockbarPosition == "" {
		cfg.Appearance.DockbarPosition = defaultCfg.Appearance.DockbarPosition
	}
	if cfg.Appearance.WindowTitlePosition == "" {
		cfg.Appearance.WindowTitlePosition = defaultCfg.Appearance.WindowTitlePosition
	}
}

// fillMissingDesktop fills in zero-valued layout settings with defaults
func fillMissingDesktop(cfg, defaultCfg *UserConfig) {
	d, def := &cfg.Desktop, defaultCfg.Desktop
	fillInt(&d.MinWidth, def.MinWidth)
	fillInt(&d.MinHeight, def.MinHeight)
	fillInt(&d.DefaultWidth, def.DefaultWidth)
	fillInt(&d.DefaultHeight, def.DefaultHeight)
	// Cascade origin and step may be zero.
	if d.BaseZ <= 0 {
		d.BaseZ = def.BaseZ
	}
	if d.FloorPolicy == "" {
		d.FloorPolicy = def.FloorPolicy
	}
	if d.StartupApps == nil {
		d.StartupApps = def.StartupApps
	}
	if d.LogLevel == "" {
		d.LogLevel = def.LogLevel
	}
}

func fillInt(target *int, def int) {
	if *target == 0 {
		*target = def
	}
}

// fillMissingKeybinds fills in any missing keybindings with defaults
func fillMissingKeybinds(cfg, defaultCfg *UserConfig) {
	if cfg.Keybindings.WindowManagement == nil {
		cfg.Keybindings.WindowManagement = make(map[string][]string)
	}
	if cfg.Keybindings.System == nil {
		cfg.Keybindings.System = make(map[string][]string)
	}
	fillMapDefaults(cfg.Keybindings.WindowManagement, defaultCfg.Keybindings.WindowManagement)
	fillMapDefaults(cfg.Keybindings.System, defaultCfg.Keybindings.System)
}

func fillMapDefaults(target, defaults map[string][]string) {
	for k, v := range defaults {
		if _, exists := target[k]; !exists {
			target[k] = v
		}
	}
}

// GetConfigPath returns the path to the config file
func GetConfigPath() (string, error) {
	path, err := xdg.SearchConfigFile(configRelPath)
	if err != nil {
		return xdg.ConfigFile(configRelPath)
	}
	return path, nil
}
