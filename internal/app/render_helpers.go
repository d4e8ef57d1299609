package app

import (
	"strings"

	"charm.land/lipgloss/v2"
	"github.com/charmbracelet/x/ansi"

	"github.com/Gaurav-Gosain/tuidesk/internal/config"
	"github.com/Gaurav-Gosain/tuidesk/internal/theme"
)

// clipWindowContent crops a window that hangs off the viewport so the
// canvas only receives on-screen cells. It returns the cropped content and
// its new origin.
func clipWindowContent(content string, x, y, viewportWidth, viewportHeight int) (string, int, int) {
	lines := strings.Split(content, "\n")
	windowHeight := len(lines)
	windowWidth := 0
	if windowHeight > 0 {
		windowWidth = ansi.StringWidth(lines[0])
	}

	if content == "" || x+windowWidth <= 0 || x >= viewportWidth || y+windowHeight <= 0 || y >= viewportHeight {
		return "", max(x, 0), max(y, 0)
	}

	finalX, finalY := max(x, 0), max(y, 0)
	lines = lines[finalY-y:]
	if maxLines := viewportHeight - finalY; len(lines) > maxLines {
		lines = lines[:maxLines]
	}

	left := finalX - x
	right := min(windowWidth, viewportWidth-x)
	if left > 0 || right < windowWidth {
		for i, line := range lines {
			lines[i] = ansi.Cut(line, left, right)
		}
	}
	return strings.Join(lines, "\n"), finalX, finalY
}

// renderBackground draws the wallpaper: a sparse dot grid.
func (d *Desktop) renderBackground() string {
	if d.Width <= 0 || d.Height <= 0 {
		return ""
	}
	dot := "·"
	if config.UseASCIIOnly {
		dot = "."
	}
	style := lipgloss.NewStyle().Foreground(theme.DesktopPattern()).Background(theme.DesktopBg())

	var row strings.Builder
	for x := range d.Width {
		if x%8 == 4 {
			row.WriteString(dot)
		} else {
			row.WriteByte(' ')
		}
	}
	dotted := style.Render(row.String())
	blank := style.Render(strings.Repeat(" ", d.Width))

	rows := make([]string, d.Height)
	for y := range rows {
		if y%4 == 2 {
			rows[y] = dotted
		} else {
			rows[y] = blank
		}
	}
	return strings.Join(rows, "\n")
}
