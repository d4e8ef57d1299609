// Package apps provides the content shown inside each registered window.
// Apart from the terminal these are static pages; the window shell only
// sees them through shell.Content.
package apps

import (
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/Gaurav-Gosain/tuidesk/internal/registry"
	"github.com/Gaurav-Gosain/tuidesk/internal/shell"
	"github.com/Gaurav-Gosain/tuidesk/internal/theme"
)

// Info describes a registered app for listings.
type Info struct {
	ID    registry.WindowID `json:"id" yaml:"id"`
	Slug  string            `json:"slug" yaml:"slug"`
	Title string            `json:"title" yaml:"title"`
}

// Default returns one content provider per registered window.
func Default(probe *HostProbe) map[registry.WindowID]shell.Content {
	if probe == nil {
		probe = NewHostProbe(0)
	}
	return map[registry.WindowID]shell.Content{
		registry.Finder:   Files(),
		registry.Terminal: NewTerminal(probe),
		registry.Browser:  Browser(),
		registry.Mail:     Mail(),
		registry.Code:     Code(),
		registry.Snake:    Snake(),
		registry.Tetris:   Tetris(),
	}
}

// titles holds each window's title so listings need not build the
// providers.
var titles = map[registry.WindowID]string{
	registry.Finder:   "About Me - Files",
	registry.Terminal: "guest@tuidesk: ~",
	registry.Browser:  "Browser",
	registry.Mail:     "Mail - Inbox",
	registry.Code:     "main.go - Code",
	registry.Snake:    "Snake",
	registry.Tetris:   "Tetris",
}

// Catalog lists every registered app with its title, in registration order.
func Catalog() []Info {
	out := make([]Info, 0, len(titles))
	for _, id := range registry.AllWindowIDs() {
		out = append(out, Info{ID: id, Slug: id.String(), Title: titles[id]})
	}
	return out
}

// Page is static content: a title and pre-rendered lines.
type Page struct {
	title string
	lines []string
}

// NewPage builds static content.
func NewPage(title string, lines ...string) *Page {
	return &Page{title: title, lines: lines}
}

func (p *Page) Title() string { return p.title }

// View returns the page. The shell crops it to the window.
func (p *Page) View(width, height int) string {
	if len(p.lines) > height {
		return strings.Join(p.lines[:height], "\n")
	}
	return strings.Join(p.lines, "\n")
}

func heading(s string) string {
	return lipgloss.NewStyle().Bold(true).Foreground(theme.BorderFocused()).Render(s)
}

func muted(s string) string {
	return lipgloss.NewStyle().Foreground(theme.HelpGray()).Render(s)
}

// Files is a read-only virtual file tree.
func Files() *Page {
	return NewPage(titles[registry.Finder],
		heading("Favorites"),
		"  ▸ Applications",
		"  ▸ Desktop",
		"  ▾ Documents",
		"      about.txt",
		"      resume.pdf",
		"  ▸ Downloads",
		"",
		heading("about.txt"),
		"A terminal desktop: draggable, resizable windows",
		"over a background, with a dock along the edge.",
		muted("Drag a title bar to move. Drag an edge to resize."),
	)
}

// Browser shows a bookmarks page.
func Browser() *Page {
	return NewPage(titles[registry.Browser],
		muted("  ◀ ▶ ⟳  https://start.page"),
		"",
		heading("Favorites"),
		"  • GitHub",
		"  • LinkedIn",
		"  • Resume",
		"",
		muted("Links open from the dock."),
	)
}

// Mail shows a fixed inbox.
func Mail() *Page {
	return NewPage(titles[registry.Mail],
		heading("Inbox (3)"),
		"  ● Welcome to tuidesk          today",
		"    Keyboard shortcuts          today",
		"    Your dock, your way         yesterday",
		"",
		muted("Press ? for the shortcut list."),
	)
}

// Code shows a source file.
func Code() *Page {
	return NewPage(titles[registry.Code],
		muted(" 1 ")+"package main",
		muted(" 2 "),
		muted(" 3 ")+"import \"fmt\"",
		muted(" 4 "),
		muted(" 5 ")+"func main() {",
		muted(" 6 ")+"\tfmt.Println(\"hello, desktop\")",
		muted(" 7 ")+"}",
	)
}

// Snake shows a still board.
func Snake() *Page {
	return NewPage(titles[registry.Snake],
		"┌────────────────────┐",
		"│                    │",
		"│    ●●●●○           │",
		"│                    │",
		"│            ◆       │",
		"│                    │",
		"└────────────────────┘",
		muted("score 0"),
	)
}

// Tetris shows a still board.
func Tetris() *Page {
	return NewPage(titles[registry.Tetris],
		"┌──────────┐",
		"│    ▓▓    │",
		"│    ▓▓    │",
		"│          │",
		"│          │",
		"│ ░░    ▒▒ │",
		"│░░░░  ▒▒▒▒│",
		"└──────────┘",
		muted("lines 0"),
	)
}
