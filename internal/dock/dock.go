// Package dock implements the launcher strip along the desktop edge. The dock
// holds no window geometry: it reads open and minimized flags from the
// registry and calls Open or Minimize by id. Link items are side effects with
// no window lifecycle.
package dock

import (
	"errors"
	"fmt"

	"github.com/charmbracelet/log"

	"github.com/Gaurav-Gosain/tuidesk/internal/registry"
)

// ErrUnknownItem is returned when a click targets an item the dock cannot
// act on, such as an app item with an unregistered window id.
var ErrUnknownItem = errors.New("unknown dock item")

// ItemKind says what a click on an item does.
type ItemKind uint8

const (
	// KindApp toggles a registered window.
	KindApp ItemKind = iota + 1
	// KindLink hands a URL to the Opener.
	KindLink
	// KindDecor is shown but does nothing.
	KindDecor
	// KindToggleAll opens every window, or closes them all when every one
	// is already open.
	KindToggleAll
)

// ToggleAllItem is the launcher-only entry that opens or closes every app.
var ToggleAllItem = Item{Key: "all_apps", Label: "All Apps", Kind: KindToggleAll}

// Item is one dock entry.
type Item struct {
	Key    string
	Label  string
	Kind   ItemKind
	Window registry.WindowID
	URL    string
}

// Dock is the list of items plus the side-effect hook for links.
type Dock struct {
	Items  []Item
	Opener Opener

	logger *log.Logger
}

// DefaultItems returns the stock dock: the registered apps, a few external
// links and the trash.
func DefaultItems() []Item {
	return []Item{
		{Key: "finder", Label: "Files", Kind: KindApp, Window: registry.Finder},
		{Key: "terminal", Label: "Terminal", Kind: KindApp, Window: registry.Terminal},
		{Key: "snake", Label: "Snake", Kind: KindApp, Window: registry.Snake},
		{Key: "tetris", Label: "Tetris", Kind: KindApp, Window: registry.Tetris},
		{Key: "vscode", Label: "Code", Kind: KindApp, Window: registry.Code},
		{Key: "safari", Label: "Browser", Kind: KindApp, Window: registry.Browser},
		{Key: "mail", Label: "Mail", Kind: KindApp, Window: registry.Mail},
		{Key: "github", Label: "GitHub", Kind: KindLink, URL: "https://github.com/Gaurav-Gosain/tuidesk"},
		{Key: "linkedin", Label: "LinkedIn", Kind: KindLink, URL: "https://www.linkedin.com/"},
		{Key: "resume", Label: "Resume", Kind: KindLink, URL: "resume.pdf"},
		{Key: "trash", Label: "Trash", Kind: KindDecor},
	}
}

// New creates a dock. A nil opener drops link clicks.
func New(items []Item, opener Opener, logger *log.Logger) *Dock {
	if opener == nil {
		opener = NopOpener{}
	}
	if logger == nil {
		logger = log.Default()
	}
	return &Dock{Items: items, Opener: opener, logger: logger}
}

// Item looks up an entry by key.
func (d *Dock) Item(key string) (Item, bool) {
	for _, it := range d.Items {
		if it.Key == key {
			return it, true
		}
	}
	return Item{}, false
}

// Apps returns the app items in dock order.
func (d *Dock) Apps() []Item {
	var out []Item
	for _, it := range d.Items {
		if it.Kind == KindApp {
			out = append(out, it)
		}
	}
	return out
}

// Click runs an item's action. An app that is open and not minimized is
// minimized; anything else is opened, which also restores and raises it.
func (d *Dock) Click(reg *registry.Registry, it Item) error {
	switch it.Kind {
	case KindApp:
		if !it.Window.Valid() {
			return fmt.Errorf("click %q: %w: %s", it.Key, ErrUnknownItem, it.Window)
		}
		s := reg.State(it.Window)
		if s.IsOpen && !s.IsMinimized {
			reg.Minimize(it.Window)
			d.logger.Debug("dock minimized window", "window", it.Window)
			return nil
		}
		reg.Open(it.Window)
		d.logger.Debug("dock opened window", "window", it.Window)
		return nil

	case KindLink:
		if err := d.Opener.Open(it.URL); err != nil {
			return fmt.Errorf("open %s: %w", it.Label, err)
		}
		d.logger.Info("dock opened link", "item", it.Key, "url", it.URL)
		return nil

	case KindToggleAll:
		opened := reg.ToggleAll()
		d.logger.Debug("dock toggled all windows", "open", opened)
		return nil

	case KindDecor:
		return nil
	}
	return fmt.Errorf("click %q: %w", it.Key, ErrUnknownItem)
}

// ClickKey is Click by item key.
func (d *Dock) ClickKey(reg *registry.Registry, key string) error {
	it, ok := d.Item(key)
	if !ok {
		return fmt.Errorf("click %q: %w", key, ErrUnknownItem)
	}
	return d.Click(reg, it)
}

// Indicator is the per-window state the dock reflects.
type Indicator struct {
	Open      bool
	Minimized bool
	Focused   bool
}

// Indicators reads the open and minimized flags of every app item. Focused
// marks the topmost visible window.
func (d *Dock) Indicators(reg *registry.Registry) map[registry.WindowID]Indicator {
	top, hasTop := reg.TopVisible()
	out := make(map[registry.WindowID]Indicator)
	for _, it := range d.Items {
		if it.Kind != KindApp || !it.Window.Valid() {
			continue
		}
		s := reg.State(it.Window)
		out[it.Window] = Indicator{
			Open:      s.IsOpen,
			Minimized: s.IsOpen && s.IsMinimized,
			Focused:   hasTop && top == it.Window,
		}
	}
	return out
}
