// Package shell is the chrome around one application window: frame
// geometry, title bar with control buttons, resize hit zones and rendering.
// A Shell knows its content only through the Content contract.
package shell

import (
	tea "charm.land/bubbletea/v2"

	"github.com/Gaurav-Gosain/tuidesk/internal/config"
	"github.com/Gaurav-Gosain/tuidesk/internal/geom"
	"github.com/Gaurav-Gosain/tuidesk/internal/registry"
)

// Content is anything that can be hosted in a window.
type Content interface {
	Title() string
	View(width, height int) string
}

// Interactive content also receives key input while its window is focused.
type Interactive interface {
	Content
	Update(msg tea.Msg) tea.Cmd
}

// Revisioned content reports a counter that changes whenever its View
// output would. Content without it is treated as static.
type Revisioned interface {
	Revision() uint64
}

// Revision returns c's revision, or 0 for static content.
func Revision(c Content) uint64 {
	if r, ok := c.(Revisioned); ok {
		return r.Revision()
	}
	return 0
}

// Zone is the part of a window under the pointer.
type Zone uint8

const (
	ZoneNone Zone = iota
	ZoneBody
	ZoneTitle
	ZoneClose
	ZoneMinimize
	ZoneMaximize
	ZoneResize
)

func (z Zone) String() string {
	switch z {
	case ZoneBody:
		return "body"
	case ZoneTitle:
		return "title"
	case ZoneClose:
		return "close"
	case ZoneMinimize:
		return "minimize"
	case ZoneMaximize:
		return "maximize"
	case ZoneResize:
		return "resize"
	default:
		return "none"
	}
}

// IsButton reports whether the zone is a title bar control.
func (z Zone) IsButton() bool {
	return z == ZoneClose || z == ZoneMinimize || z == ZoneMaximize
}

// Hit is the result of a hit test. Direction is set for ZoneResize.
type Hit struct {
	Zone      Zone
	Direction geom.Direction
}

// Shell hosts one registered window.
type Shell struct {
	ID      registry.WindowID
	Content Content
}

// New creates the shell for id.
func New(id registry.WindowID, content Content) *Shell {
	return &Shell{ID: id, Content: content}
}

// Title returns the content title.
func (s *Shell) Title() string {
	if s.Content == nil {
		return s.ID.String()
	}
	return s.Content.Title()
}

// Frame returns the on-screen rectangle. Hidden windows have an empty
// frame; maximized windows fill desktop.
func Frame(state registry.WindowState, desktop geom.Rect) geom.Rect {
	switch state.Mode() {
	case registry.ModeMaximized:
		return desktop
	case registry.ModeFloating:
		return state.Rect()
	default:
		return geom.Rect{}
	}
}

// HitTest classifies p against the window. Buttons win over the title bar
// and over the corner under them. Resize zones exist only while floating.
func HitTest(state registry.WindowState, desktop geom.Rect, p geom.Point) Hit {
	f := Frame(state, desktop)
	if f.Empty() || !f.Contains(p) {
		return Hit{}
	}

	if p.Y == f.Y {
		if z := buttonAt(f, p.X); z != ZoneNone {
			return Hit{Zone: z}
		}
	}

	if state.Mode() == registry.ModeFloating {
		if dir := edgeAt(f, p); dir != geom.None {
			return Hit{Zone: ZoneResize, Direction: dir}
		}
	}

	if p.Y == f.Y {
		return Hit{Zone: ZoneTitle}
	}
	return Hit{Zone: ZoneBody}
}

func buttonAt(f geom.Rect, x int) Zone {
	if config.HideWindowButtons || f.Width < buttonsMinWidth {
		return ZoneNone
	}
	off := x - f.Right()
	switch {
	case off >= config.CloseButtonLeft && off <= config.CloseButtonRight:
		return ZoneClose
	case off >= config.MaximizeButtonLeft && off <= config.MaximizeButtonRight:
		return ZoneMaximize
	case off >= config.MinimizeButtonLeft && off <= config.MinimizeButtonRight:
		return ZoneMinimize
	}
	return ZoneNone
}

// edgeAt maps border cells to handles. The top row is the title bar, so
// only its end cells resize. Bottom corners are two cells wide.
func edgeAt(f geom.Rect, p geom.Point) geom.Direction {
	left, right := p.X == f.X, p.X == f.Right()-1
	top, bottom := p.Y == f.Y, p.Y == f.Bottom()-1

	switch {
	case top && left:
		return geom.NW
	case top && right:
		return geom.NE
	case top:
		return geom.None
	case bottom && p.X <= f.X+1:
		return geom.SW
	case bottom && p.X >= f.Right()-2:
		return geom.SE
	case bottom:
		return geom.S
	case left:
		return geom.W
	case right:
		return geom.E
	}
	return geom.None
}

// NearestCorner picks the corner of f closest to p, for right-button resizes.
func NearestCorner(f geom.Rect, p geom.Point) geom.Direction {
	midX, midY := f.X+f.Width/2, f.Y+f.Height/2
	switch {
	case p.X < midX && p.Y < midY:
		return geom.NW
	case p.X < midX:
		return geom.SW
	case p.Y < midY:
		return geom.NE
	default:
		return geom.SE
	}
}
