package registry

import (
	"maps"
	"slices"
)

// EventKind names the mutation that produced an Event.
type EventKind uint8

const (
	Opened EventKind = iota + 1
	Closed
	Minimized
	Restored
	Maximized
	Unmaximized
	Focused
	Moved
	Resized
)

var eventKindNames = [...]string{
	Opened:      "opened",
	Closed:      "closed",
	Minimized:   "minimized",
	Restored:    "restored",
	Maximized:   "maximized",
	Unmaximized: "unmaximized",
	Focused:     "focused",
	Moved:       "moved",
	Resized:     "resized",
}

func (k EventKind) String() string {
	if int(k) < len(eventKindNames) && eventKindNames[k] != "" {
		return eventKindNames[k]
	}
	return "unknown"
}

// Hides reports whether the event takes the window out of the floating
// state that drag and resize sessions operate on.
func (k EventKind) Hides() bool {
	return k == Closed || k == Minimized || k == Maximized
}

// Event is delivered to subscribers after each mutation commits.
type Event struct {
	Kind  EventKind
	ID    WindowID
	State WindowState
}

// Subscribe registers fn to receive every committed mutation, in the order
// subscribers were added. Subscribers must not mutate the registry. The
// returned function removes the subscription.
func (r *Registry) Subscribe(fn func(Event)) (unsubscribe func()) {
	key := r.nextSub
	r.nextSub++
	r.subs[key] = fn
	return func() { delete(r.subs, key) }
}

func (r *Registry) publish(ev Event) {
	for _, key := range slices.Sorted(maps.Keys(r.subs)) {
		if fn, ok := r.subs[key]; ok {
			fn(ev)
		}
	}
}
