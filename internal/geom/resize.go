package geom

import "fmt"

// Anchor is the state captured when a pointer session starts. Every update
// in the session is computed from the anchor, never from the previous
// update, so rounding never accumulates.
type Anchor struct {
	Pointer  Point
	Position Point
	Size     Size
}

// Rect returns the window rectangle at session start.
func (a Anchor) Rect() Rect {
	return RectOf(a.Position, a.Size)
}

// FloorPolicy selects what a west or north handle does when the pointer
// pushes the window below the minimum size.
type FloorPolicy uint8

const (
	// FloorReject leaves the offending axis at its anchor values.
	FloorReject FloorPolicy = iota
	// FloorClamp pins the size to the floor and keeps the opposite edge fixed.
	FloorClamp
)

func (p FloorPolicy) String() string {
	switch p {
	case FloorReject:
		return "reject"
	case FloorClamp:
		return "clamp"
	default:
		return fmt.Sprintf("FloorPolicy(%d)", uint8(p))
	}
}

// ParseFloorPolicy parses "reject" or "clamp". The empty string is reject.
func ParseFloorPolicy(s string) (FloorPolicy, error) {
	switch s {
	case "", "reject":
		return FloorReject, nil
	case "clamp":
		return FloorClamp, nil
	default:
		return FloorReject, fmt.Errorf("invalid floor policy %q (want reject or clamp)", s)
	}
}

// Result is the outcome of a resize step.
type Result struct {
	Rect
	// RejectedX is set when a west handle would have crossed the width floor.
	RejectedX bool
	// RejectedY is set when a north handle would have crossed the height floor.
	RejectedY bool
}

// Resize computes the rectangle for handle dir given the live pointer.
// East and south edges clamp to the floor. West and north edges move the
// origin along with the size and follow policy when the floor is crossed.
func Resize(a Anchor, pointer Point, dir Direction, floor Size, policy FloorPolicy) Result {
	delta := pointer.Sub(a.Pointer)
	res := Result{Rect: a.Rect()}

	switch {
	case dir.HasEast():
		res.Width = max(a.Size.Width+delta.X, floor.Width)
	case dir.HasWest():
		res.X, res.Width, res.RejectedX = leadingEdge(a.Position.X, a.Size.Width, delta.X, floor.Width, policy)
	}

	switch {
	case dir.HasSouth():
		res.Height = max(a.Size.Height+delta.Y, floor.Height)
	case dir.HasNorth():
		res.Y, res.Height, res.RejectedY = leadingEdge(a.Position.Y, a.Size.Height, delta.Y, floor.Height, policy)
	}

	return res
}

// leadingEdge moves the origin side of one axis by delta.
func leadingEdge(origin, length, delta, floor int, policy FloorPolicy) (int, int, bool) {
	next := length - delta
	if next >= floor {
		return origin + delta, next, false
	}
	if policy == FloorClamp {
		length = max(length, floor)
		return origin + length - floor, floor, false
	}
	return origin, length, true
}

// Translate moves the anchor position by the total pointer offset. No
// clamping is applied; a window may be dragged partly or fully off screen.
func Translate(a Anchor, pointer Point) Point {
	return a.Position.Add(pointer.Sub(a.Pointer))
}
