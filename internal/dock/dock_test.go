package dock

import (
	"errors"
	"strings"
	"testing"

	"charm.land/lipgloss/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Gaurav-Gosain/tuidesk/internal/config"
	"github.com/Gaurav-Gosain/tuidesk/internal/logging"
	"github.com/Gaurav-Gosain/tuidesk/internal/registry"
)

func newTestDock(t *testing.T) (*registry.Registry, *Dock, *RecordingOpener) {
	t.Helper()
	opener := &RecordingOpener{}
	return registry.New(registry.DefaultOptions()), New(DefaultItems(), opener, logging.Discard()), opener
}

func recordEvents(reg *registry.Registry) *[]registry.Event {
	var events []registry.Event
	reg.Subscribe(func(ev registry.Event) { events = append(events, ev) })
	return &events
}

func TestClickTogglesWindow(t *testing.T) {
	reg, d, _ := newTestDock(t)

	require.NoError(t, d.ClickKey(reg, "terminal"))
	s := reg.State(registry.Terminal)
	assert.True(t, s.IsOpen)
	assert.False(t, s.IsMinimized)

	require.NoError(t, d.ClickKey(reg, "terminal"))
	assert.True(t, reg.State(registry.Terminal).IsMinimized)

	require.NoError(t, d.ClickKey(reg, "finder"))
	before := reg.State(registry.Finder).ZIndex

	require.NoError(t, d.ClickKey(reg, "terminal"))
	s = reg.State(registry.Terminal)
	assert.False(t, s.IsMinimized)
	assert.Greater(t, s.ZIndex, before)
	top, _ := reg.TopVisible()
	assert.Equal(t, registry.Terminal, top)
}

func TestClickMaximizedOpenWindowMinimizes(t *testing.T) {
	reg, d, _ := newTestDock(t)
	reg.Open(registry.Code)
	reg.Maximize(registry.Code)

	require.NoError(t, d.ClickKey(reg, "vscode"))
	s := reg.State(registry.Code)
	assert.True(t, s.IsMinimized)
	assert.True(t, s.IsMaximized)
}

func TestLinkNeverTouchesRegistry(t *testing.T) {
	reg, d, opener := newTestDock(t)
	events := recordEvents(reg)

	require.NoError(t, d.ClickKey(reg, "github"))
	require.NoError(t, d.ClickKey(reg, "trash"))

	assert.Empty(t, *events)
	assert.Equal(t, []string{"https://github.com/Gaurav-Gosain/tuidesk"}, opener.Targets())
}

func TestLinkOpenerError(t *testing.T) {
	reg, d, opener := newTestDock(t)
	opener.Err = errors.New("no handler")

	err := d.ClickKey(reg, "resume")
	require.Error(t, err)
	assert.ErrorIs(t, err, opener.Err)
}

func TestClickToggleAll(t *testing.T) {
	reg, d, _ := newTestDock(t)
	require.NoError(t, d.ClickKey(reg, "terminal"))

	require.NoError(t, d.Click(reg, ToggleAllItem))
	for _, s := range reg.Snapshot() {
		assert.True(t, s.Visible(), "%s opened", s.ID)
	}
	top, _ := reg.TopVisible()
	assert.Equal(t, registry.Tetris, top)

	require.NoError(t, d.Click(reg, ToggleAllItem))
	assert.Empty(t, reg.Stacked())
}

func TestUnknownItems(t *testing.T) {
	reg, d, _ := newTestDock(t)
	events := recordEvents(reg)

	tests := []struct {
		name string
		item Item
	}{
		{"zero window", Item{Key: "ghost", Kind: KindApp}},
		{"out of range window", Item{Key: "ghost", Kind: KindApp, Window: registry.WindowID(200)}},
		{"no kind", Item{Key: "ghost"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.ErrorIs(t, d.Click(reg, tt.item), ErrUnknownItem)
		})
	}

	assert.ErrorIs(t, d.ClickKey(reg, "nope"), ErrUnknownItem)
	assert.Empty(t, *events)
}

func TestIndicators(t *testing.T) {
	reg, d, _ := newTestDock(t)
	reg.Open(registry.Finder)
	reg.Open(registry.Terminal)
	reg.Open(registry.Mail)
	reg.Minimize(registry.Mail)

	ind := d.Indicators(reg)
	assert.Equal(t, Indicator{Open: true}, ind[registry.Finder])
	assert.Equal(t, Indicator{Open: true, Focused: true}, ind[registry.Terminal])
	assert.Equal(t, Indicator{Open: true, Minimized: true}, ind[registry.Mail])
	assert.Equal(t, Indicator{}, ind[registry.Snake])
	assert.Len(t, ind, len(registry.AllWindowIDs()))
}

func TestLayoutMatchesRender(t *testing.T) {
	prev := config.UseASCIIOnly
	t.Cleanup(func() { config.UseASCIIOnly = prev })

	for _, ascii := range []bool{true, false} {
		config.UseASCIIOnly = ascii
		for _, width := range []int{200, 60, 20} {
			reg, d, _ := newTestDock(t)
			reg.Open(registry.Finder)

			out := d.Render(reg, width)
			rows := strings.Split(out, "\n")
			require.Len(t, rows, config.DockHeight)
			for _, row := range rows {
				assert.Equal(t, width, lipgloss.Width(row))
			}

			l := d.Layout(width)
			if l.Width <= width {
				for i := 1; i < len(l.Slots); i++ {
					assert.GreaterOrEqual(t, l.Slots[i].StartX, l.Slots[i-1].EndX)
				}
			}
		}
	}
}

func TestLayoutDropsLabelsWhenNarrow(t *testing.T) {
	_, d, _ := newTestDock(t)
	assert.True(t, d.Layout(300).Labels)
	assert.False(t, d.Layout(50).Labels)
}

func TestItemAt(t *testing.T) {
	_, d, _ := newTestDock(t)
	l := d.Layout(200)

	for _, s := range l.Slots {
		it, ok := ItemAt(l, s.StartX)
		require.True(t, ok)
		assert.Equal(t, s.Item.Key, it.Key)

		it, ok = ItemAt(l, s.EndX-1)
		require.True(t, ok)
		assert.Equal(t, s.Item.Key, it.Key)
	}

	_, ok := ItemAt(l, l.CenterStartX-1)
	assert.False(t, ok)
	_, ok = ItemAt(l, l.Slots[0].EndX)
	assert.False(t, ok, "separator column is not clickable")
}

func TestAppsInDockOrder(t *testing.T) {
	_, d, _ := newTestDock(t)
	apps := d.Apps()
	require.Len(t, apps, len(registry.AllWindowIDs()))
	assert.Equal(t, "finder", apps[0].Key)
	for _, it := range apps {
		assert.Equal(t, KindApp, it.Kind)
	}
}
