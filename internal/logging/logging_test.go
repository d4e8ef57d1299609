package logging

import (
	"bytes"
	"testing"

	"github.com/adrg/xdg"
	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewFiltersByLevel(t *testing.T) {
	var buf bytes.Buffer
	logger, err := New(&buf, "info")
	require.NoError(t, err)

	logger.Debug("hidden", "window", "finder")
	logger.Info("session ended", "window", "terminal", "updates", 3)

	out := buf.String()
	assert.NotContains(t, out, "hidden")
	assert.Contains(t, out, `msg="session ended"`)
	assert.Contains(t, out, "window=terminal")
	assert.Contains(t, out, "updates=3")
	assert.Contains(t, out, "prefix=tuidesk")
}

func TestNewRejectsUnknownLevel(t *testing.T) {
	_, err := New(&bytes.Buffer{}, "chatty")
	assert.Error(t, err)
}

func TestOpenWritesUnderStateHome(t *testing.T) {
	prev := log.Default()
	t.Cleanup(func() {
		log.SetDefault(prev)
		xdg.Reload()
	})
	t.Setenv("XDG_STATE_HOME", t.TempDir())
	xdg.Reload()

	logger, closeFn, err := Open("debug")
	require.NoError(t, err)
	logger.Debug("hello")
	require.NoError(t, closeFn())

	path, err := Path()
	require.NoError(t, err)
	assert.FileExists(t, path)
}
