package input

import (
	tea "charm.land/bubbletea/v2"

	"github.com/Gaurav-Gosain/tuidesk/internal/app"
	"github.com/Gaurav-Gosain/tuidesk/internal/config"
	"github.com/Gaurav-Gosain/tuidesk/internal/dock"
	"github.com/Gaurav-Gosain/tuidesk/internal/geom"
	"github.com/Gaurav-Gosain/tuidesk/internal/registry"
	"github.com/Gaurav-Gosain/tuidesk/internal/session"
	"github.com/Gaurav-Gosain/tuidesk/internal/shell"
)

// handleMouseClick handles mouse press events
func handleMouseClick(msg tea.MouseClickMsg, d *app.Desktop) (*app.Desktop, tea.Cmd) {
	mouse := msg.Mouse()
	p := geom.Point{X: mouse.X, Y: mouse.Y}

	// Any press dismisses an open overlay and is consumed by it.
	if d.Launcher.IsOpen() || d.ShowHelp || d.ShowLogs {
		d.Launcher.Close()
		d.ShowHelp = false
		d.ShowLogs = false
		return d, nil
	}

	if d.InDock(p.Y) {
		if mouse.Button == tea.MouseLeft {
			handleDockClick(p.X, d)
		}
		return d, nil
	}

	state, hit, ok := d.WindowAt(p)
	if !ok {
		d.ExitContentMode()
		return d, nil
	}
	id := state.ID
	d.Registry.Focus(id)

	if mouse.Button == tea.MouseRight {
		d.ExitContentMode()
		if state.Mode() == registry.ModeFloating {
			dir := shell.NearestCorner(shell.Frame(state, d.DesktopArea()), p)
			beginSession(d, session.Resize, id, dir, p)
		}
		return d, nil
	}
	if mouse.Button != tea.MouseLeft {
		return d, nil
	}

	switch hit.Zone {
	case shell.ZoneClose:
		d.ExitContentMode()
		d.Registry.Close(id)
	case shell.ZoneMinimize:
		d.ExitContentMode()
		d.Registry.Minimize(id)
	case shell.ZoneMaximize:
		d.Registry.Maximize(id)
	case shell.ZoneTitle:
		d.ExitContentMode()
		if state.Mode() != registry.ModeFloating {
			return d, nil
		}
		if mouse.Mod.Contains(tea.ModAlt) {
			beginSession(d, session.Resize, id, geom.N, p)
		} else {
			beginSession(d, session.Drag, id, geom.None, p)
		}
	case shell.ZoneResize:
		d.ExitContentMode()
		beginSession(d, session.Resize, id, hit.Direction, p)
	case shell.ZoneBody:
		if !d.EnterContentMode() {
			d.ExitContentMode()
		}
	}
	return d, nil
}

func handleDockClick(x int, d *app.Desktop) {
	it, ok := dock.ItemAt(d.Dock.Layout(d.Width), x)
	if !ok {
		return
	}
	d.ExitContentMode()
	if err := d.Dock.Click(d.Registry, it); err != nil {
		d.ShowNotification(err.Error(), "error", config.NotificationDuration)
	}
}

func beginSession(d *app.Desktop, kind session.Kind, id registry.WindowID, dir geom.Direction, p geom.Point) {
	if _, err := d.Tracker.Begin(kind, id, dir, p); err != nil {
		d.LogWarn("%v", err)
	}
}

// handleMouseMotion feeds the pointer to the active session. Motion with no
// button held means the release was lost, so the session ends there.
func handleMouseMotion(msg tea.MouseMotionMsg, d *app.Desktop) (*app.Desktop, tea.Cmd) {
	if !d.Tracker.Active() {
		return d, nil
	}
	mouse := msg.Mouse()
	if mouse.Button == tea.MouseNone {
		d.Tracker.End()
		return d, nil
	}
	if err := d.Tracker.Update(geom.Point{X: mouse.X, Y: mouse.Y}); err != nil {
		d.ShowNotification(err.Error(), "error", config.NotificationDuration)
	}
	return d, nil
}

func handleMouseRelease(_ tea.MouseReleaseMsg, d *app.Desktop) (*app.Desktop, tea.Cmd) {
	d.Tracker.End()
	return d, nil
}
