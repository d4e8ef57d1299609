// Package geom holds the cell-space geometry used by the desktop: points,
// sizes, rectangles, resize handle directions and the pure resize and drag
// transforms applied during pointer sessions.
package geom

import (
	"fmt"
	"strings"
)

// Point is a position in desktop cells.
type Point struct {
	X, Y int
}

// Add returns p offset by q.
func (p Point) Add(q Point) Point {
	return Point{X: p.X + q.X, Y: p.Y + q.Y}
}

// Sub returns the offset from q to p.
func (p Point) Sub(q Point) Point {
	return Point{X: p.X - q.X, Y: p.Y - q.Y}
}

func (p Point) String() string {
	return fmt.Sprintf("(%d,%d)", p.X, p.Y)
}

// Size is a width and height in cells.
type Size struct {
	Width, Height int
}

func (s Size) String() string {
	return fmt.Sprintf("%dx%d", s.Width, s.Height)
}

// AtLeast reports whether s satisfies the floor on both axes.
func (s Size) AtLeast(floor Size) bool {
	return s.Width >= floor.Width && s.Height >= floor.Height
}

// ClampSize raises each axis of s to the floor.
func ClampSize(s, floor Size) Size {
	return Size{Width: max(s.Width, floor.Width), Height: max(s.Height, floor.Height)}
}

// Rect is an axis-aligned rectangle. Right and Bottom are exclusive.
type Rect struct {
	X, Y, Width, Height int
}

// RectOf builds a Rect from a position and size.
func RectOf(p Point, s Size) Rect {
	return Rect{X: p.X, Y: p.Y, Width: s.Width, Height: s.Height}
}

// Position returns the top-left corner.
func (r Rect) Position() Point { return Point{X: r.X, Y: r.Y} }

// Size returns the dimensions.
func (r Rect) Size() Size { return Size{Width: r.Width, Height: r.Height} }

// Right returns the first column past the rectangle.
func (r Rect) Right() int { return r.X + r.Width }

// Bottom returns the first row past the rectangle.
func (r Rect) Bottom() int { return r.Y + r.Height }

// Empty reports whether the rectangle covers no cells.
func (r Rect) Empty() bool { return r.Width <= 0 || r.Height <= 0 }

// Contains reports whether p lies inside r.
func (r Rect) Contains(p Point) bool {
	return p.X >= r.X && p.X < r.Right() && p.Y >= r.Y && p.Y < r.Bottom()
}

func (r Rect) String() string {
	return fmt.Sprintf("%dx%d+%d+%d", r.Width, r.Height, r.X, r.Y)
}

// Direction is a resize handle. Cardinal values are bit flags so diagonals
// are the union of their two edges.
type Direction uint8

const (
	N Direction = 1 << iota
	S
	E
	W
)

const (
	None Direction = 0
	NE             = N | E
	NW             = N | W
	SE             = S | E
	SW             = S | W
)

// Directions lists the eight resize handles.
var Directions = []Direction{N, S, E, W, NE, NW, SE, SW}

// HasNorth reports whether the handle moves the top edge.
func (d Direction) HasNorth() bool { return d&N != 0 }

// HasSouth reports whether the handle moves the bottom edge.
func (d Direction) HasSouth() bool { return d&S != 0 }

// HasEast reports whether the handle moves the right edge.
func (d Direction) HasEast() bool { return d&E != 0 }

// HasWest reports whether the handle moves the left edge.
func (d Direction) HasWest() bool { return d&W != 0 }

// Valid reports whether d is one of the eight handles.
func (d Direction) Valid() bool {
	for _, v := range Directions {
		if d == v {
			return true
		}
	}
	return false
}

func (d Direction) String() string {
	if d == None {
		return "none"
	}
	var sb strings.Builder
	if d.HasNorth() {
		sb.WriteString("n")
	}
	if d.HasSouth() {
		sb.WriteString("s")
	}
	if d.HasEast() {
		sb.WriteString("e")
	}
	if d.HasWest() {
		sb.WriteString("w")
	}
	return sb.String()
}

// ParseDirection parses a handle name such as "se" or "NW".
func ParseDirection(s string) (Direction, error) {
	want := strings.ToLower(strings.TrimSpace(s))
	for _, d := range Directions {
		if d.String() == want {
			return d, nil
		}
	}
	return None, fmt.Errorf("invalid resize direction %q", s)
}
