package geom

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testFloor = Size{Width: 300, Height: 200}

func anchorAt(x, y, w, h int) Anchor {
	return Anchor{
		Pointer:  Point{X: 1000, Y: 1000},
		Position: Point{X: x, Y: y},
		Size:     Size{Width: w, Height: h},
	}
}

func TestResizeHandles(t *testing.T) {
	a := anchorAt(100, 100, 700, 500)

	tests := []struct {
		name  string
		dir   Direction
		delta Point
		want  Rect
	}{
		{"SE grows both axes", SE, Point{50, 30}, Rect{100, 100, 750, 530}},
		{"E grows width only", E, Point{40, 99}, Rect{100, 100, 740, 500}},
		{"S grows height only", S, Point{99, 25}, Rect{100, 100, 700, 525}},
		{"W shifts origin", W, Point{-20, 0}, Rect{80, 100, 720, 500}},
		{"N shifts origin", N, Point{0, 10}, Rect{100, 110, 700, 490}},
		{"NE mixes edges", NE, Point{15, -5}, Rect{100, 95, 715, 505}},
		{"SW mixes edges", SW, Point{10, 10}, Rect{110, 100, 690, 510}},
		{"E clamps to floor", E, Point{-900, 0}, Rect{100, 100, 300, 500}},
		{"S clamps to floor", S, Point{0, -900}, Rect{100, 100, 700, 200}},
		{"W lands exactly on floor", W, Point{400, 0}, Rect{500, 100, 300, 500}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Resize(a, a.Pointer.Add(tt.delta), tt.dir, testFloor, FloorReject)
			assert.Equal(t, tt.want, got.Rect)
			assert.True(t, got.Size().AtLeast(testFloor))
		})
	}
}

func TestResizeWestFloorRejection(t *testing.T) {
	a := anchorAt(100, 100, 700, 500)

	for _, dx := range []int{401, 500, 10000} {
		got := Resize(a, a.Pointer.Add(Point{X: dx}), W, testFloor, FloorReject)
		assert.Equal(t, a.Rect(), got.Rect, "dx=%d", dx)
		assert.True(t, got.RejectedX)
		assert.False(t, got.RejectedY)
	}
}

func TestResizeNorthFloorRejection(t *testing.T) {
	a := anchorAt(100, 100, 700, 500)

	got := Resize(a, a.Pointer.Add(Point{Y: 301}), N, testFloor, FloorReject)
	assert.Equal(t, a.Rect(), got.Rect)
	assert.True(t, got.RejectedY)
}

func TestResizeNorthWestPastFloor(t *testing.T) {
	a := anchorAt(100, 100, 700, 500)
	pointer := a.Pointer.Add(Point{X: 400, Y: 400})

	t.Run("reject keeps the offending axis", func(t *testing.T) {
		got := Resize(a, pointer, NW, testFloor, FloorReject)
		assert.Equal(t, Rect{500, 100, 300, 500}, got.Rect)
		assert.False(t, got.RejectedX)
		assert.True(t, got.RejectedY)
	})

	t.Run("clamp pins the opposite edge", func(t *testing.T) {
		got := Resize(a, pointer, NW, testFloor, FloorClamp)
		assert.Equal(t, Rect{500, 400, 300, 200}, got.Rect)
		assert.Equal(t, a.Rect().Right(), got.Right())
		assert.Equal(t, a.Rect().Bottom(), got.Bottom())
	})
}

func TestResizeNeverBelowFloor(t *testing.T) {
	a := anchorAt(10, 10, 320, 220)
	deltas := []Point{{-100000, -100000}, {100000, 100000}, {-1, 1}, {321, 221}, {0, 0}}

	for _, dir := range Directions {
		for _, policy := range []FloorPolicy{FloorReject, FloorClamp} {
			for _, d := range deltas {
				got := Resize(a, a.Pointer.Add(d), dir, testFloor, policy)
				require.Truef(t, got.Size().AtLeast(testFloor),
					"dir=%s policy=%s delta=%s gave %s", dir, policy, d, got.Rect)
			}
		}
	}
}

func TestTranslate(t *testing.T) {
	a := anchorAt(100, 100, 700, 500)

	assert.Equal(t, Point{130, 80}, Translate(a, a.Pointer.Add(Point{30, -20})))
	assert.Equal(t, Point{-2000, -2000}, Translate(a, a.Pointer.Add(Point{-2100, -2100})))
}

func TestParseDirection(t *testing.T) {
	for _, d := range Directions {
		got, err := ParseDirection(d.String())
		require.NoError(t, err)
		assert.Equal(t, d, got)
	}

	got, err := ParseDirection(" NW ")
	require.NoError(t, err)
	assert.Equal(t, NW, got)

	_, err = ParseDirection("up")
	assert.Error(t, err)
	assert.False(t, None.Valid())
}

func TestParseFloorPolicy(t *testing.T) {
	p, err := ParseFloorPolicy("")
	require.NoError(t, err)
	assert.Equal(t, FloorReject, p)

	p, err = ParseFloorPolicy("clamp")
	require.NoError(t, err)
	assert.Equal(t, FloorClamp, p)

	_, err = ParseFloorPolicy("stretch")
	assert.Error(t, err)
}

func TestRectContains(t *testing.T) {
	r := Rect{X: 2, Y: 3, Width: 4, Height: 2}

	assert.True(t, r.Contains(Point{2, 3}))
	assert.True(t, r.Contains(Point{5, 4}))
	assert.False(t, r.Contains(Point{6, 4}))
	assert.False(t, r.Contains(Point{2, 5}))
	assert.False(t, Rect{}.Contains(Point{}))
}
