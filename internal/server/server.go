// Package server serves desktops to remote viewers over SSH and the web.
// Every connection gets its own Desktop; nothing is shared between viewers.
package server

import (
	"fmt"
	"net"
	"path/filepath"

	tea "charm.land/bubbletea/v2"
	"github.com/adrg/xdg"
	"github.com/charmbracelet/log"
)

// Factory builds the model and program options for one remote session.
type Factory func() (tea.Model, []tea.ProgramOption, error)

// Config holds listener settings shared by both transports.
type Config struct {
	Host string
	Port string
	// KeyPath is the SSH host key. Empty means the XDG data location.
	KeyPath string
	Version string
	Logger  *log.Logger
}

func (c Config) addr() string {
	return net.JoinHostPort(c.Host, c.Port)
}

func (c Config) logger() *log.Logger {
	if c.Logger != nil {
		return c.Logger
	}
	return log.Default()
}

// DefaultHostKeyPath returns where the SSH host key is generated when no
// path is given.
func DefaultHostKeyPath() (string, error) {
	p, err := xdg.DataFile("tuidesk/ssh_host_ed25519")
	if err != nil {
		return "", fmt.Errorf("failed to resolve host key path: %w", err)
	}
	return filepath.Clean(p), nil
}

// failedModel reports a session that could not be built and exits.
type failedModel struct{ err error }

func (m failedModel) Init() tea.Cmd { return tea.Quit }

func (m failedModel) Update(tea.Msg) (tea.Model, tea.Cmd) { return m, tea.Quit }

func (m failedModel) View() tea.View {
	var v tea.View
	v.SetContent(fmt.Sprintf("tuidesk: %v\n", m.err))
	return v
}

// build runs the factory, substituting failedModel on error.
func build(f Factory, logger *log.Logger, kind, remote string) (tea.Model, []tea.ProgramOption) {
	m, opts, err := f()
	if err != nil {
		logger.Error("failed to create session", "transport", kind, "remote", remote, "err", err)
		return failedModel{err: err}, nil
	}
	logger.Info("session started", "transport", kind, "remote", remote)
	return m, opts
}
