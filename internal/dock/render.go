package dock

import (
	"strings"

	"charm.land/lipgloss/v2"
	"github.com/charmbracelet/x/ansi"

	"github.com/Gaurav-Gosain/tuidesk/internal/config"
	"github.com/Gaurav-Gosain/tuidesk/internal/registry"
	"github.com/Gaurav-Gosain/tuidesk/internal/theme"
)

const divider = " │ "

// Slot is the clickable span of one item, [StartX, EndX).
type Slot struct {
	StartX int
	EndX   int
	Item   Item
}

// Layout is the shared geometry for rendering and hit-testing.
type Layout struct {
	CenterStartX int
	Width        int
	Labels       bool
	Slots        []Slot
}

// Layout centers the items in width. Labels are dropped when they do not
// fit; icons always stay.
func (d *Dock) Layout(width int) Layout {
	l := d.layout(width, true)
	if l.Width > width {
		l = d.layout(width, false)
	}
	return l
}

func (d *Dock) layout(width int, labels bool) Layout {
	l := Layout{Labels: labels}
	x := 0
	for i, it := range d.Items {
		if i > 0 {
			if it.Kind == KindDecor {
				x += ansi.StringWidth(divider)
			} else {
				x += ansi.StringWidth(config.DockSeparator)
			}
		}
		w := lipgloss.Width(pill(itemText(it, labels)))
		l.Slots = append(l.Slots, Slot{StartX: x, EndX: x + w, Item: it})
		x += w
	}
	l.Width = x
	l.CenterStartX = max(0, (width-x)/2)
	for i := range l.Slots {
		l.Slots[i].StartX += l.CenterStartX
		l.Slots[i].EndX += l.CenterStartX
	}
	return l
}

// ItemAt returns the item under column x.
func ItemAt(l Layout, x int) (Item, bool) {
	for _, s := range l.Slots {
		if x >= s.StartX && x < s.EndX {
			return s.Item, true
		}
	}
	return Item{}, false
}

func itemText(it Item, labels bool) string {
	icon := config.GetDockIcon(it.Key)
	if !labels {
		return " " + icon + " "
	}
	label := it.Label
	if ansi.StringWidth(label) > config.MaxNameLengthDock {
		label = ansi.Truncate(label, config.MaxNameLengthDock, "…")
	}
	return " " + icon + " " + label + " "
}

func pill(text string) string {
	return config.GetDockPillLeftChar() + text + config.GetDockPillRightChar()
}

// Render draws the dock as config.DockHeight rows of exactly width cells:
// the items, then a marker row under them.
func (d *Dock) Render(reg *registry.Registry, width int) string {
	if width <= 0 {
		return ""
	}
	l := d.Layout(width)
	ind := d.Indicators(reg)

	bg := theme.DockBg()
	edge := lipgloss.NewStyle().Foreground(bg)
	gap := lipgloss.NewStyle().Foreground(theme.DockDimmed())

	var items, marks strings.Builder
	x := 0
	for i, s := range l.Slots {
		if pad := s.StartX - x; pad > 0 {
			sep := strings.Repeat(" ", pad)
			if i > 0 && s.Item.Kind == KindDecor && pad == ansi.StringWidth(divider) {
				sep = divider
			}
			items.WriteString(gap.Render(sep))
			marks.WriteString(strings.Repeat(" ", pad))
		}

		st := ind[s.Item.Window]
		fg := theme.DockFg()
		switch {
		case st.Focused:
			fg = theme.DockFocused()
		case st.Minimized:
			fg = theme.DockDimmed()
		}
		body := lipgloss.NewStyle().Foreground(fg).Background(bg)
		if st.Focused {
			body = body.Bold(true)
		}
		items.WriteString(edge.Render(config.GetDockPillLeftChar()) +
			body.Render(itemText(s.Item, l.Labels)) +
			edge.Render(config.GetDockPillRightChar()))

		marks.WriteString(marker(st, s.EndX-s.StartX))
		x = s.EndX
	}

	rows := []string{fit(items.String(), width), fit(marks.String(), width)}
	for len(rows) < config.DockHeight {
		rows = append(rows, strings.Repeat(" ", width))
	}
	return strings.Join(rows[:config.DockHeight], "\n")
}

// marker centers the open or focused glyph in a slot of width w.
func marker(st Indicator, w int) string {
	var glyph string
	var style lipgloss.Style
	switch {
	case st.Focused:
		glyph, style = config.GetDockIndicatorFocused(), lipgloss.NewStyle().Foreground(theme.DockFocused())
	case st.Minimized:
		glyph, style = config.GetDockIndicatorOpen(), lipgloss.NewStyle().Foreground(theme.DockDimmed())
	case st.Open:
		glyph, style = config.GetDockIndicatorOpen(), lipgloss.NewStyle().Foreground(theme.DockActive())
	default:
		return strings.Repeat(" ", w)
	}
	gw := ansi.StringWidth(glyph)
	if gw > w {
		return strings.Repeat(" ", w)
	}
	left := (w - gw) / 2
	return strings.Repeat(" ", left) + style.Render(glyph) + strings.Repeat(" ", w-gw-left)
}

func fit(line string, width int) string {
	line = ansi.Truncate(line, width, "")
	if pad := width - ansi.StringWidth(line); pad > 0 {
		line += strings.Repeat(" ", pad)
	}
	return line
}
