package theme

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/adrg/xdg"
	tint "github.com/lrstanley/bubbletint/v2"
)

// ThemesDir returns the custom themes directory (~/.config/tuidesk/themes),
// creating it when missing.
func ThemesDir() (string, error) {
	keep, err := xdg.ConfigFile("tuidesk/themes/.keep")
	if err != nil {
		return "", fmt.Errorf("failed to get themes directory: %w", err)
	}
	return filepath.Dir(keep), nil
}

// LoadThemeDir registers every *.json theme in dir with bubbletint. Files
// that fail to load are reported and skipped.
func LoadThemeDir(dir string) (loaded []string, errs []error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil
		}
		return nil, []error{fmt.Errorf("failed to read themes directory: %w", err)}
	}

	for _, entry := range entries {
		if entry.IsDir() || !strings.EqualFold(filepath.Ext(entry.Name()), ".json") {
			continue
		}
		t, err := LoadThemeFile(filepath.Join(dir, entry.Name()))
		if err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", entry.Name(), err))
			continue
		}
		tint.Register(t)
		loaded = append(loaded, t.ID)
	}
	return loaded, errs
}

// LoadThemeFile parses one bubbletint JSON theme. The id defaults to the
// file name and missing colors fall back to the xterm palette.
func LoadThemeFile(path string) (*tint.Tint, error) {
	// #nosec G304 - path comes from the user's themes directory
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read theme file: %w", err)
	}

	var t tint.Tint
	if err := json.Unmarshal(data, &t); err != nil {
		return nil, fmt.Errorf("failed to parse theme JSON: %w", err)
	}

	if t.ID == "" {
		base := filepath.Base(path)
		t.ID = strings.ToLower(strings.TrimSuffix(base, filepath.Ext(base)))
	}
	if t.ID == "" {
		return nil, errors.New("theme has no id")
	}
	if t.DisplayName == "" {
		t.DisplayName = t.ID
	}

	fillPalette(&t)
	return &t, nil
}

// fillPalette sets missing colors. Bright variants inherit their normal
// color; the cursor inherits the foreground.
func fillPalette(t *tint.Tint) {
	base := []struct {
		slot **tint.Color
		hex  string
	}{
		{&t.Fg, "#e5e5e5"},
		{&t.Bg, "#000000"},
		{&t.Black, "#000000"},
		{&t.Red, "#cd0000"},
		{&t.Green, "#00cd00"},
		{&t.Yellow, "#cdcd00"},
		{&t.Blue, "#0000ee"},
		{&t.Purple, "#cd00cd"},
		{&t.Cyan, "#00cdcd"},
		{&t.White, "#e5e5e5"},
	}
	for _, b := range base {
		if *b.slot == nil {
			*b.slot = tint.FromHex(b.hex)
		}
	}

	inherit := []struct{ slot, from **tint.Color }{
		{&t.Cursor, &t.Fg},
		{&t.BrightBlack, &t.Black},
		{&t.BrightRed, &t.Red},
		{&t.BrightGreen, &t.Green},
		{&t.BrightYellow, &t.Yellow},
		{&t.BrightBlue, &t.Blue},
		{&t.BrightPurple, &t.Purple},
		{&t.BrightCyan, &t.Cyan},
		{&t.BrightWhite, &t.White},
	}
	for _, in := range inherit {
		if *in.slot == nil {
			dup := **in.from
			*in.slot = &dup
		}
	}
}
