package app

import (
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/Gaurav-Gosain/tuidesk/internal/config"
	"github.com/Gaurav-Gosain/tuidesk/internal/geom"
	"github.com/Gaurav-Gosain/tuidesk/internal/registry"
	"github.com/Gaurav-Gosain/tuidesk/internal/shell"
)

// renderKey identifies one rendered window frame. Everything that changes
// the output of shell.Render is part of the key.
type renderKey struct {
	state       registry.WindowState
	area        geom.Rect
	focused     bool
	interacting bool
	title       string
	revision    uint64
}

// GetCanvas composes the background, every visible window at its stacking
// value, the dock and the overlays.
func (d *Desktop) GetCanvas() *lipgloss.Canvas {
	canvas := lipgloss.NewCanvas(d.Width, d.Height)
	layers := []*lipgloss.Layer{
		lipgloss.NewLayer(d.renderBackground()).X(0).Y(0).Z(config.ZIndexBackground).ID("background"),
	}

	area := d.DesktopArea()
	top, _ := d.Registry.TopVisible()
	var active registry.WindowID
	if s := d.Tracker.Current(); s != nil {
		active = s.Window
	}

	for _, state := range d.Registry.Stacked() {
		f := shell.Frame(state, area)
		content := d.renderWindow(state, area, shell.RenderState{
			Focused:     state.ID == top,
			Interacting: state.ID == active,
		})
		clipped, x, y := clipWindowContent(content, f.X, f.Y, d.Width, d.Height)
		if clipped == "" {
			continue
		}
		layers = append(layers, lipgloss.NewLayer(clipped).X(x).Y(y).Z(state.ZIndex).ID(state.ID.String()))
	}

	if !config.IsDockbarHidden() {
		layers = append(layers, lipgloss.NewLayer(d.Dock.Render(d.Registry, d.Width)).
			X(0).Y(d.DockY()).Z(config.ZIndexDock).ID("dock"))
	}

	layers = append(layers, d.renderOverlays()...)

	for _, layer := range layers {
		canvas.Compose(layer)
	}
	return canvas
}

// renderWindow returns the framed window, from the cache when nothing that
// affects it has changed.
func (d *Desktop) renderWindow(state registry.WindowState, area geom.Rect, rs shell.RenderState) string {
	sh := d.Shells[state.ID]
	key := renderKey{
		state:       state,
		area:        area,
		focused:     rs.Focused,
		interacting: rs.Interacting,
		title:       sh.Title(),
		revision:    shell.Revision(sh.Content),
	}
	if s, ok := d.cache.Get(key); ok {
		return s
	}
	s := sh.Render(state, area, rs)
	d.cache.Add(key, s)
	return s
}

// View renders the desktop.
func (d *Desktop) View() tea.View {
	var view tea.View
	view.SetContent(lipgloss.Sprint(d.GetCanvas().Render()))
	view.AltScreen = true
	// AllMotion is required so drags keep reporting once the pointer leaves
	// the handle; the program filter drops motion outside sessions.
	view.MouseMode = tea.MouseModeAllMotion
	view.ReportFocus = true
	return view
}
