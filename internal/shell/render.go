package shell

import (
	"image/color"
	"strings"

	"charm.land/lipgloss/v2"
	"github.com/charmbracelet/x/ansi"

	"github.com/Gaurav-Gosain/tuidesk/internal/config"
	"github.com/Gaurav-Gosain/tuidesk/internal/geom"
	"github.com/Gaurav-Gosain/tuidesk/internal/registry"
	"github.com/Gaurav-Gosain/tuidesk/internal/theme"
)

// buttonsMinWidth is the narrowest frame that still shows the controls:
// two corners, two pills and three buttons.
const buttonsMinWidth = 13

// RenderState carries the per-frame flags that affect chrome.
type RenderState struct {
	Focused     bool
	Interacting bool
}

// Render draws the window at its frame size. Hidden windows render empty.
func (s *Shell) Render(state registry.WindowState, desktop geom.Rect, rs RenderState) string {
	f := Frame(state, desktop)
	if f.Width < 2 || f.Height < 2 {
		return ""
	}

	c := borderColor(rs)
	border := config.GetBorderForStyle()
	edge := lipgloss.NewStyle().Foreground(c)
	innerW, innerH := f.Width-config.BorderWidth, f.Height-config.BorderHeight

	var body string
	if s.Content != nil && innerW > 0 && innerH > 0 {
		body = s.Content.View(innerW, innerH)
	}

	lines := make([]string, 0, f.Height)
	lines = append(lines, topBorder(s.Title(), state.IsMaximized, innerW, c))
	left, right := edge.Render(border.Left), edge.Render(border.Right)
	for _, line := range fitLines(body, innerW, innerH) {
		lines = append(lines, left+line+right)
	}
	lines = append(lines, bottomBorder(s.Title(), innerW, c))
	return strings.Join(lines, "\n")
}

func borderColor(rs RenderState) color.Color {
	switch {
	case rs.Interacting:
		return theme.BorderInteracting()
	case rs.Focused:
		return theme.BorderFocused()
	default:
		return theme.BorderUnfocused()
	}
}

// fitLines crops or pads content to exactly w by h cells.
func fitLines(content string, w, h int) []string {
	src := strings.Split(content, "\n")
	out := make([]string, h)
	for i := range out {
		var line string
		if i < len(src) {
			line = ansi.Truncate(src[i], w, "")
		}
		if pad := w - ansi.StringWidth(line); pad > 0 {
			line += strings.Repeat(" ", pad)
		}
		out[i] = line
	}
	return out
}

func buttons(maximized bool, c color.Color) string {
	if config.HideWindowButtons {
		return ""
	}
	btn := lipgloss.NewStyle().Foreground(theme.ButtonFg()).Background(c)
	pill := lipgloss.NewStyle().Foreground(c)
	return pill.Render(config.GetWindowPillLeft()) +
		btn.Render(config.GetWindowButtonMinimize()) +
		btn.Render(config.GetWindowButtonMaximize(maximized)) +
		btn.Render(config.GetWindowButtonClose()) +
		pill.Render(config.GetWindowPillRight())
}

// fitTitle truncates name so a badge and the buttons share width cells.
// It returns "" when nothing useful fits.
func fitTitle(name string, maxWidth int) string {
	if name == "" || maxWidth <= 3 {
		return ""
	}
	if ansi.StringWidth(name) <= maxWidth {
		return name
	}
	return ansi.Truncate(name, maxWidth, "...")
}

func badge(name string, c color.Color) string {
	pill := lipgloss.NewStyle().Foreground(c)
	text := lipgloss.NewStyle().Foreground(theme.ButtonFg()).Background(c)
	return pill.Render(config.GetWindowPillLeft()) + text.Render(" "+name+" ") + pill.Render(config.GetWindowPillRight())
}

// topBorder is the title bar: badge on the left when titles are on top,
// buttons flush right.
func topBorder(title string, maximized bool, width int, c color.Color) string {
	b := config.GetBorderForStyle()
	edge := lipgloss.NewStyle().Foreground(c)

	btns := ""
	if width+2 >= buttonsMinWidth {
		btns = buttons(maximized, c)
	}
	btnW := lipgloss.Width(btns)

	name := ""
	if config.WindowTitlePosition == "top" {
		// Badge chrome is two pills and two spaces, plus one gap cell.
		name = fitTitle(title, width-btnW-5)
	}

	left := ""
	if name != "" {
		left = badge(name, c)
	}
	pad := width - lipgloss.Width(left) - btnW
	if pad < 0 {
		left, pad = "", width-btnW
	}
	return edge.Render(b.TopLeft) + left + edge.Render(strings.Repeat(b.Top, pad)) + btns + edge.Render(b.TopRight)
}

// bottomBorder centers the title badge when titles are at the bottom.
func bottomBorder(title string, width int, c color.Color) string {
	b := config.GetBorderForStyle()
	edge := lipgloss.NewStyle().Foreground(c)

	name := ""
	if config.WindowTitlePosition == "bottom" {
		name = fitTitle(title, width-4)
	}
	if name == "" {
		return edge.Render(b.BottomLeft + strings.Repeat(b.Bottom, width) + b.BottomRight)
	}

	mid := badge(name, c)
	total := width - lipgloss.Width(mid)
	l := total / 2
	return edge.Render(b.BottomLeft+strings.Repeat(b.Bottom, l)) + mid + edge.Render(strings.Repeat(b.Bottom, total-l)+b.BottomRight)
}
