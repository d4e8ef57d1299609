package config

import (
	"errors"
	"fmt"
	"slices"
	"sort"

	"github.com/charmbracelet/log"

	"github.com/Gaurav-Gosain/tuidesk/internal/geom"
	"github.com/Gaurav-Gosain/tuidesk/internal/registry"
)

// Smallest floor that still fits the window chrome: two border columns,
// two pills and three buttons.
const (
	minFloorWidth  = 13
	minFloorHeight = 3
)

var (
	validBorderStyles = []string{
		"rounded", "normal", "thick", "double", "hidden", "block", "ascii",
		"outer-half-block", "inner-half-block",
	}
	validDockbarPositions = []string{"bottom", "top", "hidden"}
	validTitlePositions   = []string{"top", "bottom", "hidden"}
)

// ValidationIssue is a single problem found in the configuration.
type ValidationIssue struct {
	Field   string
	Key     string
	Message string
}

func (v ValidationIssue) String() string {
	return fmt.Sprintf("[%s] %s: %s", v.Field, v.Key, v.Message)
}

// ValidationResult collects errors (fatal) and warnings (reported only).
type ValidationResult struct {
	Errors   []ValidationIssue
	Warnings []ValidationIssue
}

// HasErrors reports whether any fatal issue was found.
func (r *ValidationResult) HasErrors() bool { return len(r.Errors) > 0 }

// HasWarnings reports whether any warning was found.
func (r *ValidationResult) HasWarnings() bool { return len(r.Warnings) > 0 }

// Err joins every error into one, or returns nil.
func (r *ValidationResult) Err() error {
	if !r.HasErrors() {
		return nil
	}
	errs := make([]error, 0, len(r.Errors))
	for _, issue := range r.Errors {
		errs = append(errs, errors.New(issue.String()))
	}
	return fmt.Errorf("configuration has %d error(s): %w", len(r.Errors), errors.Join(errs...))
}

func (r *ValidationResult) errorf(field, key, format string, args ...any) {
	r.Errors = append(r.Errors, ValidationIssue{field, key, fmt.Sprintf(format, args...)})
}

func (r *ValidationResult) warnf(field, key, format string, args ...any) {
	r.Warnings = append(r.Warnings, ValidationIssue{field, key, fmt.Sprintf(format, args...)})
}

// ValidateConfig checks every section. Defaults larger than the floor are
// raised in place and reported as warnings.
func ValidateConfig(cfg *UserConfig) *ValidationResult {
	res := &ValidationResult{}

	a := cfg.Appearance
	if !slices.Contains(validBorderStyles, a.BorderStyle) {
		res.errorf("appearance", "border_style", "unknown style %q", a.BorderStyle)
	}
	if !slices.Contains(validDockbarPositions, a.DockbarPosition) {
		res.errorf("appearance", "dockbar_position", "must be one of %v, got %q", validDockbarPositions, a.DockbarPosition)
	}
	if !slices.Contains(validTitlePositions, a.WindowTitlePosition) {
		res.errorf("appearance", "window_title_position", "must be one of %v, got %q", validTitlePositions, a.WindowTitlePosition)
	}

	d := &cfg.Desktop
	if d.MinWidth < minFloorWidth {
		res.errorf("desktop", "min_width", "must be at least %d, got %d", minFloorWidth, d.MinWidth)
	}
	if d.MinHeight < minFloorHeight {
		res.errorf("desktop", "min_height", "must be at least %d, got %d", minFloorHeight, d.MinHeight)
	}
	if d.DefaultWidth < d.MinWidth {
		res.warnf("desktop", "default_width", "%d is below min_width, using %d", d.DefaultWidth, d.MinWidth)
		d.DefaultWidth = d.MinWidth
	}
	if d.DefaultHeight < d.MinHeight {
		res.warnf("desktop", "default_height", "%d is below min_height, using %d", d.DefaultHeight, d.MinHeight)
		d.DefaultHeight = d.MinHeight
	}
	if _, err := geom.ParseFloorPolicy(d.FloorPolicy); err != nil {
		res.errorf("desktop", "floor_policy", "%v", err)
	}
	for _, name := range d.StartupApps {
		if _, err := registry.ParseWindowID(name); err != nil {
			res.errorf("desktop", "startup_apps", "%v", err)
		}
	}
	if _, err := log.ParseLevel(d.LogLevel); err != nil {
		res.errorf("desktop", "log_level", "%v", err)
	}

	validateKeybinds(res, "window_management", cfg.Keybindings.WindowManagement, windowActions)
	validateKeybinds(res, "system", cfg.Keybindings.System, systemActions)
	validateKeyConflicts(res, cfg)

	return res
}

func validateKeybinds(res *ValidationResult, section string, binds map[string][]string, known map[string]string) {
	for _, action := range sortedKeys(binds) {
		if _, ok := known[action]; !ok {
			res.warnf("keybindings."+section, action, "unknown action, ignored")
		}
	}
}

func validateKeyConflicts(res *ValidationResult, cfg *UserConfig) {
	owner := map[string]string{}
	for _, binds := range []map[string][]string{cfg.Keybindings.WindowManagement, cfg.Keybindings.System} {
		for _, action := range sortedKeys(binds) {
			for _, key := range binds[action] {
				if prev, ok := owner[key]; ok && prev != action {
					res.warnf("keybindings", key, "bound to both %s and %s, using %s", prev, action, prev)
					continue
				}
				owner[key] = action
			}
		}
	}
}

func sortedKeys(m map[string][]string) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// RegistryOptions converts the desktop section into registry layout options.
func (c *UserConfig) RegistryOptions() registry.Options {
	d := c.Desktop
	return registry.Options{
		BaseZ:       d.BaseZ,
		Origin:      geom.Point{X: d.CascadeOriginX, Y: d.CascadeOriginY},
		Step:        geom.Point{X: d.CascadeStepX, Y: d.CascadeStepY},
		DefaultSize: geom.Size{Width: d.DefaultWidth, Height: d.DefaultHeight},
		MinSize:     geom.Size{Width: d.MinWidth, Height: d.MinHeight},
	}
}

// FloorPolicy returns the parsed floor policy, defaulting to reject.
func (c *UserConfig) FloorPolicy() geom.FloorPolicy {
	p, _ := geom.ParseFloorPolicy(c.Desktop.FloorPolicy)
	return p
}

// StartupWindows returns the windows to open at launch. Unknown names are
// skipped; validation reports them.
func (c *UserConfig) StartupWindows() []registry.WindowID {
	var ids []registry.WindowID
	for _, name := range c.Desktop.StartupApps {
		if id, err := registry.ParseWindowID(name); err == nil {
			ids = append(ids, id)
		}
	}
	return ids
}
