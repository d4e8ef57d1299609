package config

import (
	"fmt"
	"strings"
)

// Keybinding represents a single keybinding entry
type Keybinding struct {
	Key         string
	Description string
}

// KeybindingSection represents a section of related keybindings
type KeybindingSection struct {
	Title    string
	Bindings []Keybinding
}

// Action names bindable from [keybindings.window_management].
var windowActions = map[string]string{
	"next_window":     "Next window",
	"prev_window":     "Previous window",
	"minimize_window": "Minimize window",
	"maximize_window": "Maximize / restore window",
	"close_window":    "Close window",
	"restore_all":     "Restore all",
	"toggle_all":      "Open or close every app",
	"enter_content":   "Type into focused window",
	"select_window_1": "Open app 1",
	"select_window_2": "Open app 2",
	"select_window_3": "Open app 3",
	"select_window_4": "Open app 4",
	"select_window_5": "Open app 5",
	"select_window_6": "Open app 6",
	"select_window_7": "Open app 7",
}

// Action names bindable from [keybindings.system].
var systemActions = map[string]string{
	"toggle_launcher": "Launcher",
	"toggle_help":     "Toggle help",
	"toggle_logs":     "Toggle log viewer",
	"exit_content":    "Back to window management",
	"quit":            "Quit",
}

// Keymap resolves pressed keys to action names.
type Keymap struct {
	byKey    map[string]string
	byAction map[string][]string
}

// NewKeymap builds a keymap from the user configuration. When two actions
// claim the same key the alphabetically first one wins, matching the
// validation warning.
func NewKeymap(cfg *UserConfig) *Keymap {
	km := &Keymap{byKey: map[string]string{}, byAction: map[string][]string{}}
	for _, binds := range []map[string][]string{cfg.Keybindings.WindowManagement, cfg.Keybindings.System} {
		for _, action := range sortedKeys(binds) {
			if _, ok := windowActions[action]; !ok {
				if _, ok := systemActions[action]; !ok {
					continue
				}
			}
			for _, key := range binds[action] {
				if _, taken := km.byKey[key]; taken {
					continue
				}
				km.byKey[key] = action
				km.byAction[action] = append(km.byAction[action], key)
			}
		}
	}
	return km
}

// Action returns the action bound to key.
func (k *Keymap) Action(key string) (string, bool) {
	a, ok := k.byKey[key]
	return a, ok
}

// Keys returns the keys bound to action.
func (k *Keymap) Keys(action string) []string {
	return k.byAction[action]
}

// GetKeysForDisplay formats the keys bound to action for the help overlay.
func (k *Keymap) GetKeysForDisplay(action string) string {
	keys := k.byAction[action]
	if len(keys) == 0 {
		return ""
	}
	out := make([]string, len(keys))
	for i, key := range keys {
		out[i] = displayKey(key)
	}
	return strings.Join(out, ", ")
}

func displayKey(key string) string {
	switch key {
	case "tab":
		return "Tab"
	case "shift+tab":
		return "Shift+Tab"
	case "space":
		return "Space"
	}
	parts := strings.Split(key, "+")
	for i, p := range parts[:len(parts)-1] {
		if p != "" {
			parts[i] = strings.ToUpper(p[:1]) + p[1:]
		}
	}
	return strings.Join(parts, "+")
}

// SelectWindowAction returns the action name for dock slot n (1-based).
func SelectWindowAction(n int) string {
	return fmt.Sprintf("select_window_%d", n)
}

// GetKeybindings returns all keybinding sections for the help overlay.
func GetKeybindings(km *Keymap) []KeybindingSection {
	windows := KeybindingSection{Title: "WINDOWS"}
	for _, action := range []string{"next_window", "prev_window", "minimize_window", "maximize_window", "close_window", "restore_all", "toggle_all", "enter_content"} {
		addBinding(&windows, km, action, windowActions[action])
	}
	if first, last := km.GetKeysForDisplay(SelectWindowAction(1)), km.GetKeysForDisplay(SelectWindowAction(7)); first != "" && last != "" {
		windows.Bindings = append(windows.Bindings, Keybinding{first + "-" + last, "Open or minimize dock app"})
	}

	system := KeybindingSection{Title: "SYSTEM"}
	for _, action := range []string{"toggle_launcher", "toggle_help", "toggle_logs", "exit_content", "quit"} {
		addBinding(&system, km, action, systemActions[action])
	}

	mouse := KeybindingSection{
		Title: "MOUSE",
		Bindings: []Keybinding{
			{"Drag title bar", "Move window"},
			{"Drag edge or corner", "Resize window"},
			{"Alt+drag title bar", "Resize from the top edge"},
			{"Right drag", "Resize from nearest corner"},
			{"Click dock item", "Open, focus or minimize"},
		},
	}
	return []KeybindingSection{windows, system, mouse}
}

// addBinding adds a keybinding to a section if the action has keys configured
func addBinding(section *KeybindingSection, km *Keymap, action, description string) {
	if keys := km.GetKeysForDisplay(action); keys != "" {
		section.Bindings = append(section.Bindings, Keybinding{Key: keys, Description: description})
	}
}
