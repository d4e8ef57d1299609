package dock

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Gaurav-Gosain/tuidesk/internal/config"
)

func TestLauncherEmptyQueryListsDockOrder(t *testing.T) {
	l := NewLauncher(DefaultItems())
	l.Open()

	m := l.Matches()
	require.Len(t, m, config.LauncherMaxResults)
	assert.Equal(t, "finder", m[0].Item.Key)
	for _, match := range m {
		assert.NotEqual(t, KindDecor, match.Item.Kind)
	}
}

func TestLauncherFuzzyRanking(t *testing.T) {
	tests := []struct {
		query string
		want  string
	}{
		{"term", "terminal"},
		{"brw", "safari"},
		{"tet", "tetris"},
		{"git", "github"},
		{"all", "all_apps"},
	}
	for _, tt := range tests {
		t.Run(tt.query, func(t *testing.T) {
			l := NewLauncher(DefaultItems())
			l.Open()
			l.Type(tt.query)

			it, ok := l.Selected()
			require.True(t, ok)
			assert.Equal(t, tt.want, it.Key)
		})
	}
}

func TestLauncherToggleAllIsLauncherOnly(t *testing.T) {
	l := NewLauncher(DefaultItems())
	l.Open()
	l.Type("all apps")
	it, ok := l.Selected()
	require.True(t, ok)
	assert.Equal(t, KindToggleAll, it.Kind)

	for _, it := range DefaultItems() {
		assert.NotEqual(t, KindToggleAll, it.Kind, "%s is not drawn in the dock", it.Key)
	}
}

func TestLauncherNoMatch(t *testing.T) {
	l := NewLauncher(DefaultItems())
	l.Open()
	l.Type("zzzz")

	_, ok := l.Selected()
	assert.False(t, ok)
	assert.Contains(t, l.View(), "no matches")
}

func TestLauncherTrashIsNotSearchable(t *testing.T) {
	l := NewLauncher(DefaultItems())
	l.Type("trash")
	_, ok := l.Selected()
	assert.False(t, ok)
}

func TestLauncherCursorWraps(t *testing.T) {
	l := NewLauncher(DefaultItems())
	l.Open()
	l.Type("t")

	n := len(l.Matches())
	require.Greater(t, n, 1)

	first, _ := l.Selected()
	l.Move(-1)
	last, _ := l.Selected()
	assert.Equal(t, l.Matches()[n-1].Item.Key, last.Key)
	l.Move(1)
	again, _ := l.Selected()
	assert.Equal(t, first.Key, again.Key)
}

func TestLauncherEditing(t *testing.T) {
	l := NewLauncher(DefaultItems())
	l.Toggle()
	assert.True(t, l.IsOpen())

	l.Type("maiĺ")
	l.Backspace()
	assert.Equal(t, "mai", l.Query())
	l.Backspace()
	l.Backspace()
	l.Backspace()
	l.Backspace()
	assert.Empty(t, l.Query())

	l.Toggle()
	assert.False(t, l.IsOpen())
	l.Open()
	assert.Empty(t, l.Query())
}
