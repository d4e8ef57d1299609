package main

import (
	"bufio"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"strings"

	"charm.land/lipgloss/v2"
	"charm.land/lipgloss/v2/table"
	"gopkg.in/yaml.v3"

	"github.com/Gaurav-Gosain/tuidesk/internal/apps"
	"github.com/Gaurav-Gosain/tuidesk/internal/config"
	"github.com/Gaurav-Gosain/tuidesk/internal/theme"
)

var headerStyle = lipgloss.NewStyle().Bold(true).Padding(0, 1)
var cellStyle = lipgloss.NewStyle().Padding(0, 1)

func newTable(headers ...string) *table.Table {
	return table.New().
		Border(lipgloss.RoundedBorder()).
		Headers(headers...).
		StyleFunc(func(row, _ int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle
			}
			return cellStyle
		})
}

func printConfigPath(w io.Writer) error {
	path, err := config.GetConfigPath()
	if err != nil {
		return fmt.Errorf("failed to get config path: %w", err)
	}
	_, err = fmt.Fprintln(w, path)
	return err
}

// findEditor picks the user's editor.
func findEditor() (string, error) {
	for _, env := range []string{"EDITOR", "VISUAL"} {
		if e := strings.TrimSpace(os.Getenv(env)); e != "" {
			return e, nil
		}
	}
	for _, e := range []string{"vim", "vi", "nano"} {
		if _, err := exec.LookPath(e); err == nil {
			return e, nil
		}
	}
	return "", errors.New("no editor found; set $EDITOR")
}

func editConfigFile() error {
	// Loading creates the file with defaults when it is missing.
	if _, err := config.LoadUserConfig(); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: current config is invalid: %v\n", err)
	}
	path, err := config.GetConfigPath()
	if err != nil {
		return fmt.Errorf("failed to get config path: %w", err)
	}
	editor, err := findEditor()
	if err != nil {
		return err
	}

	fields := strings.Fields(editor)
	// #nosec G204 - the editor comes from the user's own environment
	cmd := exec.Command(fields[0], append(fields[1:], path)...)
	cmd.Stdin, cmd.Stdout, cmd.Stderr = os.Stdin, os.Stdout, os.Stderr
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("editor exited: %w", err)
	}
	return validateConfigFile(os.Stdout)
}

func resetConfigToDefaults(in io.Reader, out io.Writer, yes bool) error {
	path, err := config.GetConfigPath()
	if err != nil {
		return fmt.Errorf("failed to get config path: %w", err)
	}

	if !yes {
		fmt.Fprintf(out, "This will overwrite %s with the defaults. Continue? [y/N] ", path)
		answer, _ := bufio.NewReader(in).ReadString('\n')
		switch strings.ToLower(strings.TrimSpace(answer)) {
		case "y", "yes":
		default:
			fmt.Fprintln(out, "Aborted.")
			return nil
		}
	}

	if err := config.WriteDefaultConfig(path); err != nil {
		return err
	}
	fmt.Fprintf(out, "Configuration reset: %s\n", path)
	return nil
}

func validateConfigFile(w io.Writer) error {
	path, err := config.GetConfigPath()
	if err != nil {
		return fmt.Errorf("failed to get config path: %w", err)
	}
	cfg, err := config.LoadUserConfigFrom(path)
	if err != nil {
		return err
	}
	for _, issue := range cfg.Warnings() {
		fmt.Fprintf(w, "warning: %s\n", issue)
	}
	fmt.Fprintf(w, "%s is valid\n", path)
	return nil
}

func listKeybindings(w io.Writer) error {
	km := config.NewKeymap(loadConfig())
	for _, section := range config.GetKeybindings(km) {
		t := newTable("Key", "Action")
		for _, b := range section.Bindings {
			t.Row(b.Key, b.Description)
		}
		fmt.Fprintln(w, headerStyle.Render(section.Title))
		fmt.Fprintln(w, t.String())
	}
	return nil
}

func listApps(w io.Writer, format string) error {
	catalog := apps.Catalog()
	switch format {
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(catalog)
	case "yaml":
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		defer func() { _ = enc.Close() }()
		return enc.Encode(catalog)
	case "table", "":
		t := newTable("#", "Slug", "Title")
		for i, info := range catalog {
			t.Row(fmt.Sprint(i+1), info.Slug, info.Title)
		}
		_, err := fmt.Fprintln(w, t.String())
		return err
	default:
		return fmt.Errorf("unknown format %q (want table, json or yaml)", format)
	}
}

func listThemes(w io.Writer) error {
	for _, id := range theme.Available() {
		if _, err := fmt.Fprintln(w, id); err != nil {
			return err
		}
	}
	return nil
}
