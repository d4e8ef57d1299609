// Package logging configures the file logger. While the desktop owns the
// terminal nothing may be written to stderr, so records go to a file under
// the XDG state directory.
package logging

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/adrg/xdg"
	"github.com/charmbracelet/log"
)

const logRelPath = "tuidesk/tuidesk.log"

// Path returns the log file location.
func Path() (string, error) {
	return xdg.StateFile(logRelPath)
}

// New returns a logger writing logfmt records to w at level.
func New(w io.Writer, level string) (*log.Logger, error) {
	lvl, err := log.ParseLevel(level)
	if err != nil {
		return nil, fmt.Errorf("invalid log level: %w", err)
	}
	return log.NewWithOptions(w, log.Options{
		Level:           lvl,
		Prefix:          "tuidesk",
		ReportTimestamp: true,
		TimeFormat:      time.RFC3339,
		Formatter:       log.LogfmtFormatter,
	}), nil
}

// Open creates the log file, installs the logger as the package default and
// returns it with a close function.
func Open(level string) (*log.Logger, func() error, error) {
	path, err := Path()
	if err != nil {
		return nil, nil, fmt.Errorf("failed to resolve log path: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o750); err != nil {
		return nil, nil, fmt.Errorf("failed to create log directory: %w", err)
	}
	// #nosec G304 - path is derived from XDG_STATE_HOME
	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o600)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open log file: %w", err)
	}

	logger, err := New(f, level)
	if err != nil {
		_ = f.Close()
		return nil, nil, err
	}
	log.SetDefault(logger)
	return logger, f.Close, nil
}

// Discard returns a logger that drops everything.
func Discard() *log.Logger {
	return log.New(io.Discard)
}
