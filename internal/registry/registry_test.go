package registry

import (
	"errors"
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Gaurav-Gosain/tuidesk/internal/geom"
)

func testOptions() Options {
	return Options{
		BaseZ:       10,
		Origin:      geom.Point{X: 50, Y: 50},
		Step:        geom.Point{X: 30, Y: 30},
		DefaultSize: geom.Size{Width: 700, Height: 500},
		MinSize:     geom.Size{Width: 300, Height: 200},
	}
}

func TestNewCascade(t *testing.T) {
	r := New(testOptions())

	for i, s := range r.Snapshot() {
		assert.Equal(t, AllWindowIDs()[i], s.ID)
		assert.False(t, s.IsOpen)
		assert.Equal(t, 10+i, s.ZIndex)
		assert.Equal(t, geom.Point{X: 50 + 30*i, Y: 50 + 30*i}, s.Position)
		assert.Equal(t, geom.Size{Width: 700, Height: 500}, s.Size)
	}
	_, ok := r.Focused()
	assert.False(t, ok)
}

func TestNewRaisesDefaultSizeToFloor(t *testing.T) {
	opts := testOptions()
	opts.DefaultSize = geom.Size{Width: 10, Height: 10}

	r := New(opts)
	assert.Equal(t, opts.MinSize, r.State(Mail).Size)
}

// TestOpenFocusMinimizeScenario walks the stacking scenario end to end.
func TestOpenFocusMinimizeScenario(t *testing.T) {
	r := New(testOptions())
	base := r.TopZIndex() - 1
	a, b := Finder, Terminal

	r.Open(a)
	require.True(t, r.State(a).Visible())
	assert.Equal(t, base+1, r.State(a).ZIndex)

	r.Open(b)
	assert.True(t, r.State(b).Visible())
	assert.Equal(t, base+2, r.State(b).ZIndex)
	assert.Equal(t, base+1, r.State(a).ZIndex)

	r.Focus(a)
	assert.Equal(t, base+3, r.State(a).ZIndex)
	top, _ := r.TopVisible()
	assert.Equal(t, a, top)

	r.Minimize(a)
	assert.False(t, r.State(a).Visible())
	assert.Equal(t, base+3, r.State(a).ZIndex)
	top, _ = r.TopVisible()
	assert.Equal(t, b, top)
	focused, _ := r.Focused()
	assert.Equal(t, a, focused, "minimized windows keep their rank")

	before := r.State(b)
	r.Close(b)
	assert.False(t, r.State(b).IsOpen)
	r.Open(b)
	after := r.State(b)
	assert.Equal(t, before.Position, after.Position)
	assert.Equal(t, before.Size, after.Size)
	assert.Equal(t, base+4, after.ZIndex)
}

func TestOpenIsIdempotentExceptForRaise(t *testing.T) {
	r := New(testOptions())
	r.Open(Mail)
	r.Move(Mail, geom.Point{X: 7, Y: 9})
	before := r.State(Mail)

	r.Open(Mail)
	after := r.State(Mail)
	assert.Equal(t, before.Position, after.Position)
	assert.Equal(t, before.Size, after.Size)
	assert.True(t, after.Visible())
	assert.Greater(t, after.ZIndex, before.ZIndex)
}

func TestOpenRestoresMinimized(t *testing.T) {
	r := New(testOptions())
	r.Open(Code)
	r.Minimize(Code)
	require.True(t, r.State(Code).IsMinimized)

	r.Open(Code)
	assert.False(t, r.State(Code).IsMinimized)
}

func TestCloseResetsFlagsKeepsGeometry(t *testing.T) {
	r := New(testOptions())
	r.Open(Snake)
	r.Maximize(Snake)
	r.Minimize(Snake)
	r.Move(Snake, geom.Point{X: 1, Y: 2})
	z := r.State(Snake).ZIndex

	r.Close(Snake)
	s := r.State(Snake)
	assert.False(t, s.IsOpen)
	assert.False(t, s.IsMinimized)
	assert.False(t, s.IsMaximized)
	assert.Equal(t, geom.Point{X: 1, Y: 2}, s.Position)
	assert.Equal(t, z, s.ZIndex)
	assert.Equal(t, ModeHidden, s.Mode())
}

func TestMaximizeRoundTrip(t *testing.T) {
	r := New(testOptions())
	r.Open(Browser)
	r.Move(Browser, geom.Point{X: 123, Y: 45})
	r.Resize(Browser, geom.Size{Width: 640, Height: 480})
	before := r.State(Browser)

	r.Maximize(Browser)
	assert.Equal(t, ModeMaximized, r.State(Browser).Mode())
	r.Maximize(Browser)

	after := r.State(Browser)
	assert.Equal(t, ModeFloating, after.Mode())
	assert.Equal(t, before.Position, after.Position)
	assert.Equal(t, before.Size, after.Size)
}

func TestResizeHonoursFloor(t *testing.T) {
	r := New(testOptions())
	floor := r.MinSize()

	for _, s := range []geom.Size{
		{Width: -50, Height: -50},
		{Width: 0, Height: 1000},
		{Width: 299, Height: 199},
		{Width: 1 << 30, Height: 1 << 30},
	} {
		r.Resize(Tetris, s)
		got := r.State(Tetris).Size
		assert.GreaterOrEqual(t, got.Width, floor.Width, "requested %s", s)
		assert.GreaterOrEqual(t, got.Height, floor.Height, "requested %s", s)
	}
}

func TestFocusIsStrictlyTop(t *testing.T) {
	r := New(testOptions())
	for _, id := range AllWindowIDs() {
		r.Open(id)
	}

	rng := rand.New(rand.NewPCG(1, 2))
	ids := AllWindowIDs()
	for range 200 {
		id := ids[rng.IntN(len(ids))]
		r.Focus(id)
		mine := r.State(id).ZIndex
		for _, s := range r.Snapshot() {
			if s.ID != id && s.IsOpen {
				require.Less(t, s.ZIndex, mine)
			}
		}
		focused, ok := r.Focused()
		require.True(t, ok)
		require.Equal(t, id, focused)
	}
}

func TestRandomLifecycleKeepsInvariants(t *testing.T) {
	r := New(testOptions())
	rng := rand.New(rand.NewPCG(7, 11))
	ids := AllWindowIDs()
	ops := []func(WindowID){r.Open, r.Close, r.Minimize, r.Maximize, r.Focus}

	for range 1000 {
		ops[rng.IntN(len(ops))](ids[rng.IntN(len(ids))])

		seen := map[int]WindowID{}
		for _, s := range r.Snapshot() {
			if !s.IsOpen {
				continue
			}
			views := 0
			if s.IsMinimized {
				views++
			}
			if !s.IsMinimized && s.IsMaximized {
				views++
			}
			if !s.IsMinimized && !s.IsMaximized {
				views++
			}
			require.Equal(t, 1, views, "window %s", s.ID)

			other, dup := seen[s.ZIndex]
			require.Falsef(t, dup, "%s and %s share z %d", s.ID, other, s.ZIndex)
			seen[s.ZIndex] = s.ID
		}
	}
}

func TestTopZIndexDoesNotMutate(t *testing.T) {
	r := New(testOptions())
	before := r.Snapshot()

	z := r.TopZIndex()
	assert.Equal(t, z, r.TopZIndex())
	assert.Equal(t, before, r.Snapshot())

	r.Focus(Mail)
	assert.Equal(t, z, r.State(Mail).ZIndex)
}

func TestRestoreAllKeepsRelativeOrder(t *testing.T) {
	r := New(testOptions())
	r.Open(Finder)
	r.Open(Terminal)
	r.Open(Mail)
	r.Minimize(Finder)
	r.Minimize(Mail)
	r.Close(Terminal)

	r.RestoreAll()

	assert.True(t, r.State(Finder).Visible())
	assert.True(t, r.State(Mail).Visible())
	assert.False(t, r.State(Terminal).IsOpen, "closed windows stay closed")
	assert.Less(t, r.State(Finder).ZIndex, r.State(Mail).ZIndex)
	top, _ := r.TopVisible()
	assert.Equal(t, Mail, top)
}

func TestToggleAll(t *testing.T) {
	t.Run("mixed opens every window with unique stacking", func(t *testing.T) {
		r := New(testOptions())
		r.Open(Mail)
		r.Open(Finder)
		r.Minimize(Finder)

		assert.True(t, r.ToggleAll())

		seen := map[int]WindowID{}
		prev := 0
		for _, s := range r.Snapshot() {
			assert.True(t, s.Visible(), "%s visible", s.ID)
			_, dup := seen[s.ZIndex]
			assert.False(t, dup, "z %d reused by %s", s.ZIndex, s.ID)
			seen[s.ZIndex] = s.ID
			assert.Greater(t, s.ZIndex, prev, "raised in registration order")
			prev = s.ZIndex
		}
		top, _ := r.Focused()
		assert.Equal(t, Tetris, top)
	})

	t.Run("all open closes every window", func(t *testing.T) {
		r := New(testOptions())
		for _, id := range AllWindowIDs() {
			r.Open(id)
		}
		r.Minimize(Terminal)
		r.Maximize(Snake)

		assert.False(t, r.ToggleAll())

		for _, s := range r.Snapshot() {
			assert.False(t, s.IsOpen)
			assert.False(t, s.IsMinimized)
			assert.False(t, s.IsMaximized)
		}
		assert.Empty(t, r.Stacked())
	})

	t.Run("round trip", func(t *testing.T) {
		r := New(testOptions())
		assert.True(t, r.ToggleAll())
		assert.False(t, r.ToggleAll())
		assert.True(t, r.ToggleAll())
		assert.Len(t, r.Stacked(), len(AllWindowIDs()))
	})
}

func TestCycleFocus(t *testing.T) {
	r := New(testOptions())
	_, ok := r.CycleFocus(true)
	assert.False(t, ok)

	r.Open(Finder)
	r.Open(Mail)
	r.Open(Snake)
	r.Minimize(Mail)

	id, ok := r.CycleFocus(true)
	require.True(t, ok)
	assert.Equal(t, Finder, id, "wraps past the end, skipping minimized")

	id, _ = r.CycleFocus(false)
	assert.Equal(t, Snake, id)
}

func TestUnknownWindowPanics(t *testing.T) {
	r := New(testOptions())

	for _, id := range []WindowID{0, windowIDEnd, 200} {
		func() {
			defer func() {
				rec := recover()
				require.NotNil(t, rec)
				err, ok := rec.(error)
				require.True(t, ok)
				assert.ErrorIs(t, err, ErrUnknownWindow)
				var regErr *Error
				require.True(t, errors.As(err, &regErr))
				assert.Equal(t, "open", regErr.Op)
			}()
			r.Open(id)
		}()
	}

	assert.Panics(t, func() { r.State(0) })
}

func TestSubscribeDeliversCommittedState(t *testing.T) {
	r := New(testOptions())
	var got []Event
	unsubscribe := r.Subscribe(func(ev Event) { got = append(got, ev) })

	r.Open(Code)
	r.Minimize(Code)
	r.Minimize(Code)
	r.Maximize(Code)
	r.Move(Code, geom.Point{X: 3, Y: 4})

	kinds := make([]EventKind, 0, len(got))
	for _, ev := range got {
		assert.Equal(t, Code, ev.ID)
		kinds = append(kinds, ev.Kind)
	}
	assert.Equal(t, []EventKind{Opened, Minimized, Restored, Maximized, Moved}, kinds)
	assert.Equal(t, geom.Point{X: 3, Y: 4}, got[len(got)-1].State.Position)

	unsubscribe()
	r.Close(Code)
	assert.Len(t, got, 5)
}

func TestReentrantMutationPanics(t *testing.T) {
	r := New(testOptions())
	r.Subscribe(func(ev Event) {
		if ev.Kind == Opened {
			r.Focus(Finder)
		}
	})

	defer func() {
		rec := recover()
		require.NotNil(t, rec)
		assert.ErrorIs(t, rec.(error), ErrReentrantMutation)

		// The guard is released after the panic unwinds.
		assert.NotPanics(t, func() { r.Close(Mail) })
	}()
	r.Open(Mail)
}

func TestParseWindowID(t *testing.T) {
	for _, id := range AllWindowIDs() {
		got, err := ParseWindowID(id.String())
		require.NoError(t, err)
		assert.Equal(t, id, got)
	}

	got, err := ParseWindowID("VSCode")
	require.NoError(t, err)
	assert.Equal(t, Code, got)

	_, err = ParseWindowID("photoshop")
	assert.ErrorIs(t, err, ErrUnknownWindow)
	assert.Equal(t, "window(0)", WindowID(0).String())
}
