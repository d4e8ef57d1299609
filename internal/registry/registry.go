package registry

import (
	"slices"

	"github.com/Gaurav-Gosain/tuidesk/internal/geom"
)

// Options controls the initial layout and the size floor.
type Options struct {
	// BaseZ is the stacking value of the first registered window.
	BaseZ int
	// Origin is where the first window is placed.
	Origin geom.Point
	// Step is the cascade offset applied per registration index.
	Step geom.Point
	// DefaultSize is the initial size of every window.
	DefaultSize geom.Size
	// MinSize is the floor no window may be resized below.
	MinSize geom.Size
}

// DefaultOptions returns the layout used when no configuration is loaded.
func DefaultOptions() Options {
	return Options{
		BaseZ:       10,
		Origin:      geom.Point{X: 4, Y: 2},
		Step:        geom.Point{X: 3, Y: 1},
		DefaultSize: geom.Size{Width: 60, Height: 18},
		MinSize:     geom.Size{Width: 24, Height: 8},
	}
}

// Registry owns every WindowState. It is not safe for concurrent use; all
// calls are expected on the UI event loop.
type Registry struct {
	opts    Options
	windows [windowIDEnd]WindowState

	subs    map[int]func(Event)
	nextSub int
	busy    bool
}

// New builds a registry with every window closed and staggered in a cascade.
func New(opts Options) *Registry {
	opts.DefaultSize = geom.ClampSize(opts.DefaultSize, opts.MinSize)
	r := &Registry{opts: opts, subs: make(map[int]func(Event))}
	for _, id := range AllWindowIDs() {
		i := id.Index()
		r.windows[id] = WindowState{
			ID:       id,
			ZIndex:   opts.BaseZ + i,
			Position: geom.Point{X: opts.Origin.X + i*opts.Step.X, Y: opts.Origin.Y + i*opts.Step.Y},
			Size:     opts.DefaultSize,
		}
	}
	return r
}

// MinSize returns the resize floor.
func (r *Registry) MinSize() geom.Size {
	return r.opts.MinSize
}

// Open shows a window, restores it if minimized and raises it.
func (r *Registry) Open(id WindowID) {
	r.mutate("open", id, func(w *WindowState) EventKind {
		w.IsOpen = true
		w.IsMinimized = false
		w.ZIndex = r.currentMax() + 1
		return Opened
	})
}

// Close hides a window and clears its flags. Geometry and stacking value
// are kept for the next Open.
func (r *Registry) Close(id WindowID) {
	r.mutate("close", id, func(w *WindowState) EventKind {
		w.IsOpen = false
		w.IsMinimized = false
		w.IsMaximized = false
		return Closed
	})
}

// Minimize toggles the minimized flag. Stacking is unchanged.
func (r *Registry) Minimize(id WindowID) {
	r.mutate("minimize", id, func(w *WindowState) EventKind {
		w.IsMinimized = !w.IsMinimized
		if w.IsMinimized {
			return Minimized
		}
		return Restored
	})
}

// Maximize toggles the maximized flag. Floating geometry is left untouched
// so a second call restores it exactly.
func (r *Registry) Maximize(id WindowID) {
	r.mutate("maximize", id, func(w *WindowState) EventKind {
		w.IsMaximized = !w.IsMaximized
		if w.IsMaximized {
			return Maximized
		}
		return Unmaximized
	})
}

// Focus raises a window above every other. Visibility is unchanged.
func (r *Registry) Focus(id WindowID) {
	r.mutate("focus", id, func(w *WindowState) EventKind {
		w.ZIndex = r.currentMax() + 1
		return Focused
	})
}

// Move sets the floating position. No bounds are applied.
func (r *Registry) Move(id WindowID, p geom.Point) {
	r.mutate("move", id, func(w *WindowState) EventKind {
		w.Position = p
		return Moved
	})
}

// Resize sets the floating size. Sizes below the floor are raised to it.
func (r *Registry) Resize(id WindowID, s geom.Size) {
	r.mutate("resize", id, func(w *WindowState) EventKind {
		w.Size = geom.ClampSize(s, r.opts.MinSize)
		return Resized
	})
}

// TopZIndex returns the value the next Focus or Open would assign.
func (r *Registry) TopZIndex() int {
	return r.currentMax() + 1
}

// RestoreAll un-minimizes every open window and raises them in their
// current stacking order.
func (r *Registry) RestoreAll() {
	for _, s := range r.byZ(func(s WindowState) bool { return s.IsOpen && s.IsMinimized }) {
		r.Open(s.ID)
	}
}

// ToggleAll closes every window when all of them are open. Otherwise it
// opens every window in registration order, each raised above the last.
// It reports whether the windows ended up open.
func (r *Registry) ToggleAll() bool {
	allOpen := true
	for _, id := range AllWindowIDs() {
		allOpen = allOpen && r.windows[id].IsOpen
	}
	for _, id := range AllWindowIDs() {
		if allOpen {
			r.Close(id)
		} else {
			r.Open(id)
		}
	}
	return !allOpen
}

// CycleFocus focuses the next (or previous) visible window in registration
// order after the top visible one. It reports the window focused.
func (r *Registry) CycleFocus(forward bool) (WindowID, bool) {
	var visible []WindowID
	for _, id := range AllWindowIDs() {
		if r.windows[id].Visible() {
			visible = append(visible, id)
		}
	}
	if len(visible) == 0 {
		return 0, false
	}

	top, _ := r.TopVisible()
	i := slices.Index(visible, top)
	if forward {
		i = (i + 1) % len(visible)
	} else {
		i = (i - 1 + len(visible)) % len(visible)
	}
	r.Focus(visible[i])
	return visible[i], true
}

// State returns a copy of one window's state.
func (r *Registry) State(id WindowID) WindowState {
	if !id.Valid() {
		violation("state", id, ErrUnknownWindow)
	}
	return r.windows[id]
}

// Snapshot returns every window in registration order.
func (r *Registry) Snapshot() []WindowState {
	out := make([]WindowState, 0, len(r.windows)-1)
	for _, id := range AllWindowIDs() {
		out = append(out, r.windows[id])
	}
	return out
}

// Stacked returns the visible windows from bottom to top.
func (r *Registry) Stacked() []WindowState {
	return r.byZ(WindowState.Visible)
}

// Focused returns the open window holding the highest stacking value.
// Minimized windows keep their rank and may be focused.
func (r *Registry) Focused() (WindowID, bool) {
	return r.topWhere(func(s WindowState) bool { return s.IsOpen })
}

// TopVisible returns the highest visible window.
func (r *Registry) TopVisible() (WindowID, bool) {
	return r.topWhere(WindowState.Visible)
}

func (r *Registry) topWhere(keep func(WindowState) bool) (WindowID, bool) {
	var (
		best  WindowID
		found bool
	)
	for _, id := range AllWindowIDs() {
		w := r.windows[id]
		if keep(w) && (!found || w.ZIndex > r.windows[best].ZIndex) {
			best, found = id, true
		}
	}
	return best, found
}

func (r *Registry) byZ(keep func(WindowState) bool) []WindowState {
	var out []WindowState
	for _, id := range AllWindowIDs() {
		if w := r.windows[id]; keep(w) {
			out = append(out, w)
		}
	}
	slices.SortStableFunc(out, func(a, b WindowState) int { return a.ZIndex - b.ZIndex })
	return out
}

// currentMax is recomputed on every call from the live table.
func (r *Registry) currentMax() int {
	top := r.windows[Finder].ZIndex
	for _, id := range AllWindowIDs() {
		top = max(top, r.windows[id].ZIndex)
	}
	return top
}

// mutate applies fn to one window as the sole writer, then notifies
// subscribers with the resulting state.
func (r *Registry) mutate(op string, id WindowID, fn func(*WindowState) EventKind) {
	if !id.Valid() {
		violation(op, id, ErrUnknownWindow)
	}
	if r.busy {
		violation(op, id, ErrReentrantMutation)
	}
	r.busy = true
	defer func() { r.busy = false }()

	kind := fn(&r.windows[id])
	r.publish(Event{Kind: kind, ID: id, State: r.windows[id]})
}
