// Package session implements pointer interaction sessions: a title-bar drag
// or an edge resize that spans many motion events between one press and one
// release.
//
// A Tracker is the single owner of the active session. Every way a session
// can end goes through the same teardown, which removes the pointer capture
// and the registry subscription.
package session

import (
	"errors"
	"fmt"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/Gaurav-Gosain/tuidesk/internal/geom"
	"github.com/Gaurav-Gosain/tuidesk/internal/registry"
)

var (
	// ErrNotInteractive is returned when a session is started on a window
	// that is not floating.
	ErrNotInteractive = errors.New("window is not floating")
	// ErrNoSession is returned by Update when nothing is in progress.
	ErrNoSession = errors.New("no active session")
)

// Kind distinguishes drags from resizes.
type Kind uint8

const (
	Drag Kind = iota + 1
	Resize
)

func (k Kind) String() string {
	switch k {
	case Drag:
		return "drag"
	case Resize:
		return "resize"
	default:
		return "unknown"
	}
}

// Session is one drag or resize lifespan.
type Session struct {
	ID        string
	Kind      Kind
	Window    registry.WindowID
	Direction geom.Direction
	Anchor    geom.Anchor
	// Last is the geometry most recently committed to the registry.
	Last    geom.Rect
	Started time.Time
	Updates int
}

// Tracker owns at most one session at a time.
type Tracker struct {
	reg     *registry.Registry
	capture *Capture
	policy  geom.FloorPolicy
	logger  *log.Logger

	current     *Session
	release     func()
	unsubscribe func()
}

// Option configures a Tracker.
type Option func(*Tracker)

// WithFloorPolicy sets how west and north handles treat the size floor.
func WithFloorPolicy(p geom.FloorPolicy) Option {
	return func(t *Tracker) { t.policy = p }
}

// WithCapture shares a Capture with the program's motion filter.
func WithCapture(c *Capture) Option {
	return func(t *Tracker) { t.capture = c }
}

// WithLogger sets the logger used for session lifecycle messages.
func WithLogger(l *log.Logger) Option {
	return func(t *Tracker) { t.logger = l }
}

// NewTracker creates a tracker bound to reg.
func NewTracker(reg *registry.Registry, opts ...Option) *Tracker {
	t := &Tracker{reg: reg, capture: &Capture{}, logger: log.Default()}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// Capture returns the pointer capture this tracker installs into.
func (t *Tracker) Capture() *Capture { return t.capture }

// Active reports whether a session is in progress.
func (t *Tracker) Active() bool { return t.current != nil }

// Current returns a copy of the active session, or nil.
func (t *Tracker) Current() *Session {
	if t.current == nil {
		return nil
	}
	s := *t.current
	return &s
}

// Begin starts a session on a floating window. Focusing the window is the
// caller's job. A session already in progress is cancelled first.
func (t *Tracker) Begin(kind Kind, id registry.WindowID, dir geom.Direction, pointer geom.Point) (*Session, error) {
	if t.current != nil {
		t.Cancel("superseded")
	}

	state := t.reg.State(id)
	if state.Mode() != registry.ModeFloating {
		return nil, fmt.Errorf("begin %s on %s: %w", kind, id, ErrNotInteractive)
	}
	if kind == Resize && !dir.Valid() {
		return nil, fmt.Errorf("begin resize on %s: invalid direction %s", id, dir)
	}
	if kind == Drag {
		dir = geom.None
	}

	s := &Session{
		ID:        uuid.NewString(),
		Kind:      kind,
		Window:    id,
		Direction: dir,
		Anchor:    geom.Anchor{Pointer: pointer, Position: state.Position, Size: state.Size},
		Last:      state.Rect(),
		Started:   time.Now(),
	}

	t.current = s
	t.release = t.capture.Install()
	t.unsubscribe = t.reg.Subscribe(t.watch)

	t.logger.Debug("session started", "session", s.ID[:8], "kind", kind, "window", id, "dir", dir)
	return t.Current(), nil
}

// Update commits the geometry for the live pointer position. A panic while
// committing ends the session and is returned as an error.
func (t *Tracker) Update(pointer geom.Point) (err error) {
	s := t.current
	if s == nil {
		return ErrNoSession
	}

	defer func() {
		if r := recover(); r != nil {
			t.teardown()
			err = fmt.Errorf("session %s aborted: %v", s.ID[:8], r)
			t.logger.Error("session aborted", "session", s.ID[:8], "window", s.Window, "err", r)
		}
	}()

	switch s.Kind {
	case Drag:
		p := geom.Translate(s.Anchor, pointer)
		t.reg.Move(s.Window, p)
		s.Last = geom.RectOf(p, s.Last.Size())
	case Resize:
		res := geom.Resize(s.Anchor, pointer, s.Direction, t.reg.MinSize(), t.policy)
		t.reg.Resize(s.Window, res.Size())
		t.reg.Move(s.Window, res.Position())
		s.Last = res.Rect
	}
	s.Updates++
	return nil
}

// End finishes the session normally and returns it. It is a no-op without
// an active session.
func (t *Tracker) End() *Session {
	s := t.current
	if s == nil {
		return nil
	}
	t.teardown()
	t.logger.Debug("session ended", "session", s.ID[:8], "kind", s.Kind, "window", s.Window,
		"updates", s.Updates, "rect", s.Last, "elapsed", time.Since(s.Started).Round(time.Millisecond))
	return s
}

// Cancel ends the session abnormally. The geometry committed so far stays.
func (t *Tracker) Cancel(reason string) {
	s := t.current
	if s == nil {
		return
	}
	t.teardown()
	t.logger.Debug("session cancelled", "session", s.ID[:8], "window", s.Window, "reason", reason)
}

// watch cancels the session when its window stops floating.
func (t *Tracker) watch(ev registry.Event) {
	if t.current == nil || ev.ID != t.current.Window || !ev.Kind.Hides() {
		return
	}
	t.Cancel("window " + ev.Kind.String())
}

func (t *Tracker) teardown() {
	t.current = nil
	if t.release != nil {
		t.release()
		t.release = nil
	}
	if t.unsubscribe != nil {
		t.unsubscribe()
		t.unsubscribe = nil
	}
}
