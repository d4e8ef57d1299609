package apps

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	tea "charm.land/bubbletea/v2"
	"github.com/charmbracelet/x/ansi"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Gaurav-Gosain/tuidesk/internal/registry"
	"github.com/Gaurav-Gosain/tuidesk/internal/shell"
)

func stubProbe(calls *int, err error) *HostProbe {
	p := NewHostProbe(time.Hour)
	p.collect = func(context.Context) (HostInfo, error) {
		*calls++
		return HostInfo{Hostname: "devbox", Platform: "linux 6.1", CPUs: 8, MemUsed: 1 << 30, MemTotal: 4 << 30}, err
	}
	return p
}

func typeText(term *Terminal, s string) {
	for _, r := range s {
		term.Update(tea.KeyPressMsg{Code: r, Text: string(r)})
	}
}

func TestDefaultCoversEveryWindow(t *testing.T) {
	var calls int
	contents := Default(stubProbe(&calls, nil))
	for _, id := range registry.AllWindowIDs() {
		c, ok := contents[id]
		require.True(t, ok, "missing content for %s", id)
		assert.NotEmpty(t, c.Title())
	}
	_, ok := contents[registry.Terminal].(shell.Interactive)
	assert.True(t, ok)
}

func TestCatalogOrder(t *testing.T) {
	cat := Catalog()
	require.Len(t, cat, len(registry.AllWindowIDs()))
	assert.Equal(t, "finder", cat[0].Slug)
	assert.Equal(t, "tetris", cat[len(cat)-1].Slug)
}

func TestCatalogDoesNotProbeHost(t *testing.T) {
	var calls int
	saved := collectHost
	collectHost = func(context.Context) (HostInfo, error) {
		calls++
		return HostInfo{}, nil
	}
	t.Cleanup(func() { collectHost = saved })

	cat := Catalog()
	assert.Zero(t, calls, "listing apps does not build the terminal")

	contents := Default(nil)
	assert.Equal(t, 1, calls)
	for _, info := range cat {
		assert.Equal(t, contents[info.ID].Title(), info.Title, info.Slug)
	}
}

func TestPageViewRespectsHeight(t *testing.T) {
	p := Files()
	assert.Len(t, strings.Split(p.View(40, 3), "\n"), 3)
}

func TestHostProbeCaches(t *testing.T) {
	var calls int
	p := stubProbe(&calls, nil)

	for range 3 {
		info, err := p.Info()
		require.NoError(t, err)
		assert.Equal(t, "devbox", info.Hostname)
	}
	assert.Equal(t, 1, calls)

	p.ttl = time.Nanosecond
	time.Sleep(time.Millisecond)
	_, _ = p.Info()
	assert.Equal(t, 2, calls)
}

func TestTerminalBanner(t *testing.T) {
	var calls int
	term := NewTerminal(stubProbe(&calls, nil))
	out := ansi.Strip(term.View(80, 30))
	assert.Contains(t, out, "neofetch")
	assert.Contains(t, out, "devbox")
	assert.Contains(t, out, "Type 'help'")
}

func TestTerminalNeofetchError(t *testing.T) {
	var calls int
	term := NewTerminal(stubProbe(&calls, errors.New("no /proc")))
	assert.Contains(t, ansi.Strip(term.View(80, 30)), "neofetch: no /proc")
}

func TestTerminalCommands(t *testing.T) {
	tests := []struct {
		line string
		want string
	}{
		{"help", "neofetch"},
		{"echo hello   world", "hello world"},
		{"ABOUT", "desktop in your terminal"},
		{"rm -rf /", "command not found: rm"},
	}
	for _, tt := range tests {
		t.Run(tt.line, func(t *testing.T) {
			var calls int
			term := NewTerminal(stubProbe(&calls, nil))
			typeText(term, tt.line)
			assert.Equal(t, tt.line, term.Input())
			term.Update(tea.KeyPressMsg{Code: tea.KeyEnter})

			out := ansi.Strip(strings.Join(term.Scrollback(), "\n"))
			assert.Contains(t, out, prompt+tt.line)
			assert.Contains(t, out, tt.want)
			assert.Empty(t, term.Input())
		})
	}
}

func TestTerminalClearResetsToBanner(t *testing.T) {
	var calls int
	term := NewTerminal(stubProbe(&calls, nil))
	banner := term.Scrollback()

	term.Exec("about")
	term.Exec("clear")
	assert.Equal(t, banner, term.Scrollback())
}

func TestTerminalHistoryAndCompletion(t *testing.T) {
	var calls int
	term := NewTerminal(stubProbe(&calls, nil))
	term.Exec("about")
	term.Exec("skills")

	up := tea.KeyPressMsg{Code: tea.KeyUp}
	down := tea.KeyPressMsg{Code: tea.KeyDown}

	term.Update(up)
	assert.Equal(t, "skills", term.Input())
	term.Update(up)
	assert.Equal(t, "about", term.Input())
	term.Update(up)
	assert.Equal(t, "about", term.Input())
	term.Update(down)
	assert.Equal(t, "skills", term.Input())
	term.Update(down)
	assert.Empty(t, term.Input())

	typeText(term, "neo")
	term.Update(tea.KeyPressMsg{Code: tea.KeyTab})
	assert.Equal(t, "neofetch", term.Input())

	term.Update(tea.KeyPressMsg{Code: tea.KeyBackspace})
	assert.Equal(t, "neofetc", term.Input())
}

func TestTerminalViewShowsTail(t *testing.T) {
	var calls int
	term := NewTerminal(stubProbe(&calls, nil))
	for range 20 {
		term.Exec("echo x")
	}
	lines := strings.Split(term.View(30, 5), "\n")
	require.Len(t, lines, 5)
	assert.True(t, strings.HasPrefix(lines[4], prompt))
	for _, l := range lines {
		assert.LessOrEqual(t, ansi.StringWidth(l), 30)
	}
}
