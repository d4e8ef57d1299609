package app

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"
	"github.com/charmbracelet/x/ansi"

	"github.com/Gaurav-Gosain/tuidesk/internal/config"
	"github.com/Gaurav-Gosain/tuidesk/internal/theme"
)

func (d *Desktop) renderOverlays() []*lipgloss.Layer {
	var layers []*lipgloss.Layer

	if len(d.Registry.Stacked()) == 0 && !d.Launcher.IsOpen() {
		layers = append(layers, d.centered(d.renderWelcome(), 1, "welcome"))
	}

	if d.Mode == ContentMode {
		label := lipgloss.NewStyle().
			Foreground(theme.ButtonFg()).
			Background(theme.BorderInteracting()).
			Bold(true).
			Padding(0, 1).
			Render("INPUT  " + d.Keymap.GetKeysForDisplay("exit_content") + " to leave")
		y := 0
		if config.DockbarPosition == "top" {
			y = d.Height - 1
		}
		layers = append(layers, lipgloss.NewLayer(label).X(1).Y(y).Z(config.ZIndexNotifications).ID("mode"))
	}

	if d.Launcher.IsOpen() {
		layers = append(layers, d.centered(d.Launcher.View(), config.ZIndexLauncher, "launcher"))
	}

	if d.ShowHelp {
		layers = append(layers, d.centered(d.renderHelp(), config.ZIndexHelp, "help"))
	}

	if d.ShowLogs {
		layers = append(layers, d.centered(d.renderLogs(), config.ZIndexLogs, "logs"))
	}

	layers = append(layers, d.renderNotifications()...)
	return layers
}

// centered places content in the middle of the screen. Content larger than
// the screen is anchored at the top left.
func (d *Desktop) centered(content string, z int, id string) *lipgloss.Layer {
	x := max((d.Width-lipgloss.Width(content))/2, 0)
	y := max((d.Height-lipgloss.Height(content))/2, 0)
	return lipgloss.NewLayer(content).X(x).Y(y).Z(z).ID(id)
}

func (d *Desktop) renderWelcome() string {
	title := lipgloss.NewStyle().Foreground(theme.BorderFocused()).Bold(true).Render("tuidesk")
	hint := lipgloss.NewStyle().Foreground(theme.HelpGray()).Render(
		fmt.Sprintf("Click the dock or press %s to launch an app, %s for help",
			d.Keymap.GetKeysForDisplay("toggle_launcher"), d.Keymap.GetKeysForDisplay("toggle_help")))
	return lipgloss.JoinVertical(lipgloss.Center, title, "", hint)
}

func (d *Desktop) renderHelp() string {
	key := lipgloss.NewStyle().Foreground(theme.HelpKey()).Bold(true)
	gray := lipgloss.NewStyle().Foreground(theme.HelpGray())
	heading := lipgloss.NewStyle().Foreground(theme.HelpBorder()).Bold(true)

	var lines []string
	for i, section := range config.GetKeybindings(d.Keymap) {
		if i > 0 {
			lines = append(lines, "")
		}
		lines = append(lines, heading.Render(section.Title))
		for _, b := range section.Bindings {
			lines = append(lines, fmt.Sprintf("  %s %s", key.Render(fmt.Sprintf("%-22s", b.Key)), gray.Render(b.Description)))
		}
	}
	if len(lines) > config.MaxHelpLines {
		lines = lines[:config.MaxHelpLines]
	}
	lines = append(lines, "", gray.Render("Press '?' or 'esc' to close"))

	return lipgloss.NewStyle().
		Border(config.GetBorderForStyle()).
		BorderForeground(theme.HelpBorder()).
		Padding(1, 2).
		Render(strings.Join(lines, "\n"))
}

func (d *Desktop) renderLogs() string {
	logsPerPage := d.logsPerPage()
	maxScroll := max(len(d.LogMessages)-logsPerPage, 0)
	d.LogScrollOffset = max(0, min(d.LogScrollOffset, maxScroll))

	gray := lipgloss.NewStyle().Foreground(theme.HelpGray())
	lines := []string{
		lipgloss.NewStyle().Foreground(theme.LogViewerTitle()).Bold(true).Render("System Logs"),
		"",
	}

	start := d.LogScrollOffset
	shown := 0
	msgWidth := config.LogViewerWidth - 6 - len("15:04:05 [ERROR] ")
	for i := start; i < len(d.LogMessages) && shown < logsPerPage; i++ {
		msg := d.LogMessages[i]
		levelColor := theme.LogViewerInfo()
		switch msg.Level {
		case "ERROR":
			levelColor = theme.LogViewerError()
		case "WARN":
			levelColor = theme.LogViewerWarn()
		}
		level := lipgloss.NewStyle().Foreground(levelColor).Render(fmt.Sprintf("[%s]", msg.Level))
		lines = append(lines, fmt.Sprintf("%s %s %s", msg.Time.Format("15:04:05"), level, ansi.Truncate(msg.Message, msgWidth, "...")))
		shown++
	}
	if len(d.LogMessages) == 0 {
		lines = append(lines, gray.Render("No log messages"))
	}

	if maxScroll > 0 {
		lines = append(lines, "", gray.Render(fmt.Sprintf("Showing %d-%d of %d logs (↑/↓ to scroll)",
			start+1, start+shown, len(d.LogMessages))))
	}
	lines = append(lines, "", gray.Render("Press 'esc' to exit, j/k or ↑/↓ to scroll"))

	return lipgloss.NewStyle().
		Border(config.GetBorderForStyle()).
		BorderForeground(theme.LogViewerTitle()).
		Background(theme.LogViewerBg()).
		Padding(1, 2).
		Width(config.LogViewerWidth).
		Render(strings.Join(lines, "\n"))
}

func (d *Desktop) renderNotifications() []*lipgloss.Layer {
	var layers []*lipgloss.Layer
	maxWidth := min(config.MaxNotificationWidth, max(d.Width-2*config.NotificationMargin, 10))
	y := 1
	if config.DockbarPosition == "top" {
		y += config.DockHeight
	}

	for _, n := range d.Notifications {
		bg, icon := theme.NotificationInfo(), "i"
		if n.Type == "error" {
			bg, icon = theme.NotificationError(), "!"
		}
		message := ansi.Truncate(n.Message, maxWidth-8, "...")
		box := lipgloss.NewStyle().
			Background(bg).
			Foreground(theme.ButtonFg()).
			Padding(0, 2).
			Bold(true).
			Render(fmt.Sprintf("%s  %s", icon, message))

		x := max(d.Width-lipgloss.Width(box)-config.NotificationMargin, 0)
		layers = append(layers, lipgloss.NewLayer(box).X(x).Y(y).Z(config.ZIndexNotifications).ID("notif-"+n.ID))
		y += lipgloss.Height(box) + 1
	}
	return layers
}
