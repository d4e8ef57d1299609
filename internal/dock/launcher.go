package dock

import (
	"strings"

	"charm.land/lipgloss/v2"
	"github.com/charmbracelet/x/ansi"
	"github.com/sahilm/fuzzy"

	"github.com/Gaurav-Gosain/tuidesk/internal/config"
	"github.com/Gaurav-Gosain/tuidesk/internal/theme"
)

// Match is one launcher result.
type Match struct {
	Item    Item
	Indexes []int
}

// Launcher is a fuzzy search over the actionable dock items.
type Launcher struct {
	items  []Item
	open   bool
	query  string
	cursor int
}

// labelSource adapts items to fuzzy.Source.
type labelSource []Item

func (s labelSource) String(i int) string { return s[i].Label }

func (s labelSource) Len() int { return len(s) }

// NewLauncher indexes every item except decorations, followed by the
// toggle-all entry.
func NewLauncher(items []Item) *Launcher {
	l := &Launcher{}
	for _, it := range items {
		if it.Kind != KindDecor {
			l.items = append(l.items, it)
		}
	}
	l.items = append(l.items, ToggleAllItem)
	return l
}

// IsOpen reports whether the overlay is shown.
func (l *Launcher) IsOpen() bool { return l.open }

// Open shows the overlay with an empty query.
func (l *Launcher) Open() {
	l.open = true
	l.query = ""
	l.cursor = 0
}

// Close hides the overlay.
func (l *Launcher) Close() { l.open = false }

// Toggle flips visibility.
func (l *Launcher) Toggle() {
	if l.open {
		l.Close()
		return
	}
	l.Open()
}

// Query returns the current search text.
func (l *Launcher) Query() string { return l.query }

// Type appends text to the query.
func (l *Launcher) Type(s string) {
	l.query += s
	l.cursor = 0
}

// Backspace removes the last rune of the query.
func (l *Launcher) Backspace() {
	if l.query == "" {
		return
	}
	r := []rune(l.query)
	l.query = string(r[:len(r)-1])
	l.cursor = 0
}

// Move shifts the selection, wrapping around the result list.
func (l *Launcher) Move(delta int) {
	n := len(l.Matches())
	if n == 0 {
		l.cursor = 0
		return
	}
	l.cursor = ((l.cursor+delta)%n + n) % n
}

// Matches returns the ranked results, capped at LauncherMaxResults. An
// empty query lists items in dock order.
func (l *Launcher) Matches() []Match {
	var out []Match
	if strings.TrimSpace(l.query) == "" {
		for _, it := range l.items {
			out = append(out, Match{Item: it})
		}
	} else {
		for _, m := range fuzzy.FindFrom(l.query, labelSource(l.items)) {
			out = append(out, Match{Item: l.items[m.Index], Indexes: m.MatchedIndexes})
		}
	}
	if len(out) > config.LauncherMaxResults {
		out = out[:config.LauncherMaxResults]
	}
	return out
}

// Selected returns the highlighted result.
func (l *Launcher) Selected() (Item, bool) {
	m := l.Matches()
	if len(m) == 0 {
		return Item{}, false
	}
	return m[min(l.cursor, len(m)-1)].Item, true
}

// View renders the overlay box.
func (l *Launcher) View() string {
	inner := config.LauncherWidth - 4
	accent := theme.LauncherBorder()
	hl := lipgloss.NewStyle().Foreground(theme.LauncherMatch()).Bold(true)
	dim := lipgloss.NewStyle().Foreground(theme.HelpGray())

	prompt := "> "
	lines := []string{lipgloss.NewStyle().Foreground(accent).Render(prompt) + ansi.Truncate(l.query, inner-len(prompt), "") + "_"}

	matches := l.Matches()
	if len(matches) == 0 {
		lines = append(lines, dim.Render("no matches"))
	}
	for i, m := range matches {
		marker := "  "
		if i == min(l.cursor, len(matches)-1) {
			marker = hl.Render("› ")
			if config.UseASCIIOnly {
				marker = hl.Render("> ")
			}
		}
		label := highlight(m.Item.Label, m.Indexes, hl)
		icon := config.GetDockIcon(m.Item.Key)
		line := marker + icon + " " + label
		if m.Item.Kind == KindLink {
			line += dim.Render(" (link)")
		}
		lines = append(lines, line)
	}

	return lipgloss.NewStyle().
		Border(config.GetBorderForStyle()).
		BorderForeground(accent).
		Padding(0, 1).
		Width(config.LauncherWidth).
		Render(strings.Join(lines, "\n"))
}

func highlight(s string, idx []int, style lipgloss.Style) string {
	if len(idx) == 0 {
		return s
	}
	marked := make(map[int]bool, len(idx))
	for _, i := range idx {
		marked[i] = true
	}
	var b strings.Builder
	for i, r := range s {
		if marked[i] {
			b.WriteString(style.Render(string(r)))
		} else {
			b.WriteRune(r)
		}
	}
	return b.String()
}
