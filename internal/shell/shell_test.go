package shell

import (
	"strings"
	"testing"

	"charm.land/lipgloss/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Gaurav-Gosain/tuidesk/internal/config"
	"github.com/Gaurav-Gosain/tuidesk/internal/geom"
	"github.com/Gaurav-Gosain/tuidesk/internal/registry"
)

type fakeContent struct {
	title string
	body  string
}

func (f fakeContent) Title() string { return f.title }

func (f fakeContent) View(w, h int) string { return f.body }

var desktop = geom.Rect{X: 0, Y: 0, Width: 120, Height: 40}

func floating(x, y, w, h int) registry.WindowState {
	return registry.WindowState{
		ID:       registry.Finder,
		IsOpen:   true,
		Position: geom.Point{X: x, Y: y},
		Size:     geom.Size{Width: w, Height: h},
	}
}

func withGlobals(t *testing.T, ascii, hideButtons bool, titlePos string) {
	t.Helper()
	prevASCII, prevHide, prevTitle := config.UseASCIIOnly, config.HideWindowButtons, config.WindowTitlePosition
	config.UseASCIIOnly, config.HideWindowButtons, config.WindowTitlePosition = ascii, hideButtons, titlePos
	t.Cleanup(func() {
		config.UseASCIIOnly, config.HideWindowButtons, config.WindowTitlePosition = prevASCII, prevHide, prevTitle
	})
}

func TestFrameByMode(t *testing.T) {
	s := floating(10, 5, 30, 10)
	assert.Equal(t, geom.Rect{X: 10, Y: 5, Width: 30, Height: 10}, Frame(s, desktop))

	s.IsMaximized = true
	assert.Equal(t, desktop, Frame(s, desktop))

	s.IsMinimized = true
	assert.True(t, Frame(s, desktop).Empty())

	s = floating(10, 5, 30, 10)
	s.IsOpen = false
	assert.True(t, Frame(s, desktop).Empty())
}

func TestHitTestZones(t *testing.T) {
	withGlobals(t, false, false, "top")
	s := floating(10, 5, 30, 10) // right edge at x=40, bottom at y=15

	tests := []struct {
		name string
		p    geom.Point
		want Hit
	}{
		{"outside", geom.Point{X: 9, Y: 5}, Hit{}},
		{"title", geom.Point{X: 20, Y: 5}, Hit{Zone: ZoneTitle}},
		{"close", geom.Point{X: 36, Y: 5}, Hit{Zone: ZoneClose}},
		{"close right cell", geom.Point{X: 37, Y: 5}, Hit{Zone: ZoneClose}},
		{"maximize", geom.Point{X: 33, Y: 5}, Hit{Zone: ZoneMaximize}},
		{"minimize", geom.Point{X: 29, Y: 5}, Hit{Zone: ZoneMinimize}},
		{"body", geom.Point{X: 20, Y: 9}, Hit{Zone: ZoneBody}},
		{"top left corner", geom.Point{X: 10, Y: 5}, Hit{ZoneResize, geom.NW}},
		{"top right corner", geom.Point{X: 39, Y: 5}, Hit{ZoneResize, geom.NE}},
		{"left edge", geom.Point{X: 10, Y: 8}, Hit{ZoneResize, geom.W}},
		{"right edge", geom.Point{X: 39, Y: 8}, Hit{ZoneResize, geom.E}},
		{"bottom edge", geom.Point{X: 20, Y: 14}, Hit{ZoneResize, geom.S}},
		{"bottom left corner", geom.Point{X: 11, Y: 14}, Hit{ZoneResize, geom.SW}},
		{"bottom right corner", geom.Point{X: 38, Y: 14}, Hit{ZoneResize, geom.SE}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, HitTest(s, desktop, tt.p))
		})
	}
}

func TestHitTestButtonsNeverStartDrag(t *testing.T) {
	withGlobals(t, false, false, "top")
	s := floating(0, 0, 40, 10)

	for x := 40 + config.MinimizeButtonLeft; x <= 40+config.CloseButtonRight; x++ {
		hit := HitTest(s, desktop, geom.Point{X: x, Y: 0})
		require.True(t, hit.Zone.IsButton(), "x=%d gave %s", x, hit.Zone)
	}
}

func TestHitTestHiddenButtons(t *testing.T) {
	withGlobals(t, false, true, "top")
	s := floating(0, 0, 40, 10)

	assert.Equal(t, ZoneTitle, HitTest(s, desktop, geom.Point{X: 36, Y: 0}).Zone)
}

func TestHitTestMaximizedHasNoResize(t *testing.T) {
	withGlobals(t, false, false, "top")
	s := floating(10, 5, 30, 10)
	s.IsMaximized = true

	assert.Equal(t, ZoneBody, HitTest(s, desktop, geom.Point{X: 0, Y: 20}).Zone)
	assert.Equal(t, ZoneTitle, HitTest(s, desktop, geom.Point{X: 0, Y: 0}).Zone)
	assert.Equal(t, ZoneClose, HitTest(s, desktop, geom.Point{X: 116, Y: 0}).Zone)
	assert.Equal(t, ZoneBody, HitTest(s, desktop, geom.Point{X: 119, Y: 39}).Zone)
}

func TestHitTestHiddenWindow(t *testing.T) {
	s := floating(10, 5, 30, 10)
	s.IsMinimized = true
	assert.Equal(t, Hit{}, HitTest(s, desktop, geom.Point{X: 20, Y: 8}))
}

func TestNearestCorner(t *testing.T) {
	f := geom.Rect{X: 0, Y: 0, Width: 20, Height: 10}
	assert.Equal(t, geom.NW, NearestCorner(f, geom.Point{X: 2, Y: 2}))
	assert.Equal(t, geom.NE, NearestCorner(f, geom.Point{X: 15, Y: 2}))
	assert.Equal(t, geom.SW, NearestCorner(f, geom.Point{X: 2, Y: 8}))
	assert.Equal(t, geom.SE, NearestCorner(f, geom.Point{X: 15, Y: 8}))
}

func TestRenderExactSize(t *testing.T) {
	tests := []struct {
		name     string
		ascii    bool
		hide     bool
		titlePos string
		w, h     int
	}{
		{"nerd font top title", false, false, "top", 40, 10},
		{"ascii bottom title", true, false, "bottom", 40, 10},
		{"hidden title", false, false, "hidden", 30, 6},
		{"no buttons", false, true, "top", 24, 8},
		{"too narrow for buttons", true, false, "top", 8, 4},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			withGlobals(t, tt.ascii, tt.hide, tt.titlePos)
			sh := New(registry.Finder, fakeContent{
				title: "Files with a very long title that will not fit",
				body:  "line one\na line that is far too long for the window and must be cut\n",
			})

			out := sh.Render(floating(3, 3, tt.w, tt.h), desktop, RenderState{Focused: true})
			lines := strings.Split(out, "\n")
			require.Len(t, lines, tt.h)
			for i, line := range lines {
				assert.Equal(t, tt.w, lipgloss.Width(line), "line %d: %q", i, line)
			}
		})
	}
}

func TestRenderShowsTitleAndButtons(t *testing.T) {
	withGlobals(t, true, false, "top")
	sh := New(registry.Terminal, fakeContent{title: "Terminal", body: "$ whoami"})

	out := sh.Render(floating(0, 0, 40, 6), desktop, RenderState{})
	top := strings.Split(out, "\n")[0]
	assert.Contains(t, top, "Terminal")
	assert.Contains(t, top, config.WindowButtonCloseASCII)
	assert.Contains(t, out, "$ whoami")

	s := floating(0, 0, 40, 6)
	s.IsMaximized = true
	out = sh.Render(s, geom.Rect{Width: 50, Height: 8}, RenderState{})
	assert.Contains(t, out, config.WindowButtonRestoreASCII)
	assert.Len(t, strings.Split(out, "\n"), 8)
}

func TestRenderHidden(t *testing.T) {
	sh := New(registry.Mail, fakeContent{title: "Mail"})
	s := floating(0, 0, 40, 6)
	s.IsOpen = false
	assert.Empty(t, sh.Render(s, desktop, RenderState{}))
}
