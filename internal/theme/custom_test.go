package theme

import (
	"os"
	"path/filepath"
	"testing"

	tint "github.com/lrstanley/bubbletint/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTheme(t *testing.T, dir, name, body string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestLoadThemeFileFillsPalette(t *testing.T) {
	dir := t.TempDir()
	path := writeTheme(t, dir, "Desk-Night.json", `{"red": "#ff0000", "fg": "#ddeeff"}`)

	th, err := LoadThemeFile(path)
	require.NoError(t, err)

	assert.Equal(t, "desk-night", th.ID)
	assert.Equal(t, "desk-night", th.DisplayName)
	assert.Equal(t, "#ff0000", ColorToString(th.Red))
	assert.Equal(t, "#ff0000", ColorToString(th.BrightRed), "bright inherits normal")
	assert.Equal(t, "#ddeeff", ColorToString(th.Cursor), "cursor inherits fg")
	assert.Equal(t, "#0000ee", ColorToString(th.Blue))

	// Inherited colors are copies, not aliases.
	assert.NotSame(t, th.Red, th.BrightRed)

	for _, c := range []*tint.Color{th.Bg, th.Black, th.BrightWhite, th.BrightCyan} {
		assert.NotNil(t, c)
	}
}

func TestLoadThemeFileErrors(t *testing.T) {
	dir := t.TempDir()

	_, err := LoadThemeFile(writeTheme(t, dir, "broken.json", `{"red": `))
	assert.ErrorContains(t, err, "parse")

	_, err = LoadThemeFile(filepath.Join(dir, "missing.json"))
	assert.ErrorContains(t, err, "read")
}

func TestLoadThemeDir(t *testing.T) {
	dir := t.TempDir()
	writeTheme(t, dir, "good.json", `{"id": "tuidesk-test-good", "bg": "#111111"}`)
	writeTheme(t, dir, "bad.json", `not json`)
	writeTheme(t, dir, "notes.txt", `{"id": "ignored"}`)
	require.NoError(t, os.Mkdir(filepath.Join(dir, "sub.json"), 0o750))

	tint.NewDefaultRegistry()
	loaded, errs := LoadThemeDir(dir)

	assert.Equal(t, []string{"tuidesk-test-good"}, loaded)
	require.Len(t, errs, 1)
	assert.ErrorContains(t, errs[0], "bad.json")
	assert.Contains(t, tint.TintIDs(), "tuidesk-test-good")
}

func TestLoadThemeDirMissing(t *testing.T) {
	loaded, errs := LoadThemeDir(filepath.Join(t.TempDir(), "nope"))
	assert.Empty(t, loaded)
	assert.Empty(t, errs)
}

func TestFallbackColorsWhenDisabled(t *testing.T) {
	require.NoError(t, Initialize(""))
	assert.False(t, IsEnabled())
	assert.Nil(t, Current())
	assert.Equal(t, "#afffff", ColorToString(BorderFocused()))
	assert.Equal(t, "#000000", ColorToString(nil))
}
