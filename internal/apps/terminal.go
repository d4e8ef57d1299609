package apps

import (
	"fmt"
	"slices"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"github.com/charmbracelet/x/ansi"

	"github.com/Gaurav-Gosain/tuidesk/internal/registry"
	"github.com/Gaurav-Gosain/tuidesk/internal/theme"
)

const prompt = "guest@tuidesk:~$ "

type command struct {
	name string
	help string
	run  func(t *Terminal, args []string) []string
}

// Terminal is a small command interpreter with history and completion.
type Terminal struct {
	probe    *HostProbe
	commands []command

	scrollback []string
	input      string
	history    []string
	// histIdx is -1 while editing a fresh line.
	histIdx int
	rev     uint64
}

// NewTerminal creates the terminal app and runs neofetch as its banner.
func NewTerminal(probe *HostProbe) *Terminal {
	t := &Terminal{probe: probe, histIdx: -1}
	t.commands = []command{
		{"help", "List commands", (*Terminal).cmdHelp},
		{"about", "What is this?", (*Terminal).cmdAbout},
		{"skills", "Tech stack", (*Terminal).cmdSkills},
		{"socials", "Where to find us", (*Terminal).cmdSocials},
		{"neofetch", "Show system info", (*Terminal).cmdNeofetch},
		{"echo", "Print arguments", (*Terminal).cmdEcho},
		{"clear", "Clear the screen", nil},
	}
	t.reset()
	return t
}

func (t *Terminal) Title() string { return titles[registry.Terminal] }

// Revision changes whenever the view does.
func (t *Terminal) Revision() uint64 { return t.rev }

// View shows the tail of the scrollback followed by the prompt line.
func (t *Terminal) View(width, height int) string {
	if height <= 0 {
		return ""
	}
	lines := append(slices.Clone(t.scrollback), prompt+t.input+"█")
	if len(lines) > height {
		lines = lines[len(lines)-height:]
	}
	for i, l := range lines {
		lines[i] = ansi.Truncate(l, width, "")
	}
	return strings.Join(lines, "\n")
}

// Update handles key presses while the window is focused.
func (t *Terminal) Update(msg tea.Msg) tea.Cmd {
	key, ok := msg.(tea.KeyPressMsg)
	if !ok {
		return nil
	}
	t.rev++
	switch key.String() {
	case "enter":
		t.Exec(t.input)
	case "backspace":
		if r := []rune(t.input); len(r) > 0 {
			t.input = string(r[:len(r)-1])
		}
	case "up":
		t.recall(-1)
	case "down":
		t.recall(1)
	case "tab":
		t.complete()
	case "ctrl+u":
		t.input = ""
	default:
		if key.Text != "" {
			t.input += key.Text
		}
	}
	return nil
}

// Input returns the line being edited.
func (t *Terminal) Input() string { return t.input }

// Scrollback returns the output so far.
func (t *Terminal) Scrollback() []string { return slices.Clone(t.scrollback) }

// Exec runs one command line as if typed.
func (t *Terminal) Exec(line string) {
	line = strings.TrimSpace(line)
	t.rev++
	t.input = ""
	t.histIdx = -1
	if line == "" {
		t.scrollback = append(t.scrollback, prompt)
		return
	}
	t.history = append(t.history, line)

	args := strings.Fields(line)
	name := strings.ToLower(args[0])
	if name == "clear" {
		t.reset()
		return
	}

	t.scrollback = append(t.scrollback, prompt+line)
	i := slices.IndexFunc(t.commands, func(c command) bool { return c.name == name })
	if i < 0 {
		t.scrollback = append(t.scrollback, errStyle().Render("command not found: "+name))
		return
	}
	t.scrollback = append(t.scrollback, t.commands[i].run(t, args[1:])...)
}

func (t *Terminal) reset() {
	t.scrollback = append([]string{prompt + "neofetch"}, t.cmdNeofetch(nil)...)
	t.scrollback = append(t.scrollback, muted("Type 'help' to see available commands."))
}

// recall walks the history; dir is -1 for older and 1 for newer.
func (t *Terminal) recall(dir int) {
	if len(t.history) == 0 {
		return
	}
	switch {
	case dir < 0 && t.histIdx == -1:
		t.histIdx = len(t.history) - 1
	case dir < 0:
		t.histIdx = max(0, t.histIdx-1)
	case t.histIdx == -1:
		return
	case t.histIdx == len(t.history)-1:
		t.histIdx = -1
		t.input = ""
		return
	default:
		t.histIdx++
	}
	t.input = t.history[t.histIdx]
}

func (t *Terminal) complete() {
	if t.input == "" {
		return
	}
	for _, c := range t.commands {
		if strings.HasPrefix(c.name, t.input) {
			t.input = c.name
			return
		}
	}
}

func errStyle() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(theme.NotificationError())
}

func (t *Terminal) cmdHelp(_ []string) []string {
	key := lipgloss.NewStyle().Foreground(theme.HelpKey()).Bold(true)
	out := make([]string, 0, len(t.commands))
	for _, c := range t.commands {
		out = append(out, fmt.Sprintf("%s %s", key.Render(fmt.Sprintf("%-10s", c.name)), muted(c.help)))
	}
	return out
}

func (t *Terminal) cmdAbout(_ []string) []string {
	return []string{
		"tuidesk is a desktop in your terminal: windows you can",
		"drag, resize, stack, minimize and maximize, plus a dock.",
	}
}

func (t *Terminal) cmdSkills(_ []string) []string {
	return []string{"Go  Bubble Tea  Lip Gloss  SSH  WebSockets"}
}

func (t *Terminal) cmdSocials(_ []string) []string {
	return []string{"GitHub  LinkedIn  Email  (open them from the dock)"}
}

func (t *Terminal) cmdEcho(args []string) []string {
	return []string{strings.Join(args, " ")}
}

func (t *Terminal) cmdNeofetch(_ []string) []string {
	if t.probe == nil {
		return []string{muted("system info unavailable")}
	}
	info, err := t.probe.Info()
	if err != nil {
		return []string{errStyle().Render("neofetch: " + err.Error())}
	}
	label := lipgloss.NewStyle().Foreground(theme.HelpKey()).Bold(true)
	out := []string{label.Render("guest") + "@" + label.Render(info.Hostname), strings.Repeat("-", 6+len(info.Hostname))}
	for _, kv := range info.Lines() {
		out = append(out, label.Render(kv[0]+": ")+kv[1])
	}
	return out
}
