package server

import (
	"errors"
	"testing"

	tea "charm.land/bubbletea/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Gaurav-Gosain/tuidesk/internal/logging"
)

type stubModel struct{}

func (stubModel) Init() tea.Cmd                       { return nil }
func (stubModel) Update(tea.Msg) (tea.Model, tea.Cmd) { return stubModel{}, nil }
func (stubModel) View() tea.View                      { return tea.View{} }

func TestConfigAddr(t *testing.T) {
	tests := []struct {
		name string
		cfg  Config
		want string
	}{
		{"ipv4", Config{Host: "127.0.0.1", Port: "2222"}, "127.0.0.1:2222"},
		{"all interfaces", Config{Port: "7681"}, ":7681"},
		{"ipv6", Config{Host: "::1", Port: "22"}, "[::1]:22"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.cfg.addr())
		})
	}
}

func TestBuild(t *testing.T) {
	logger := logging.Discard()

	t.Run("factory result is passed through", func(t *testing.T) {
		opt := tea.WithFPS(30)
		m, opts := build(func() (tea.Model, []tea.ProgramOption, error) {
			return stubModel{}, []tea.ProgramOption{opt}, nil
		}, logger, "ssh", "10.0.0.1:5555")
		assert.IsType(t, stubModel{}, m)
		assert.Len(t, opts, 1)
	})

	t.Run("factory error yields a model that quits", func(t *testing.T) {
		m, opts := build(func() (tea.Model, []tea.ProgramOption, error) {
			return nil, nil, errors.New("bad config")
		}, logger, "web", "web-1")
		require.IsType(t, failedModel{}, m)
		assert.Nil(t, opts)

		cmd := m.Init()
		require.NotNil(t, cmd)
		assert.IsType(t, tea.QuitMsg{}, cmd())
		assert.EqualError(t, m.(failedModel).err, "bad config")
	})
}
