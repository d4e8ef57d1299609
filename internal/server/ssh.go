package server

import (
	"context"
	"errors"
	"fmt"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/wish/v2"
	"charm.land/wish/v2/activeterm"
	"charm.land/wish/v2/bubbletea"
	"github.com/charmbracelet/ssh"
)

const shutdownTimeout = 5 * time.Second

// ServeSSH runs an SSH server until ctx is done. Each connection with a PTY
// gets a fresh desktop from f.
func ServeSSH(ctx context.Context, cfg Config, f Factory) error {
	logger := cfg.logger()
	keyPath := cfg.KeyPath
	if keyPath == "" {
		var err error
		if keyPath, err = DefaultHostKeyPath(); err != nil {
			return err
		}
	}

	s, err := wish.NewServer(
		wish.WithAddress(cfg.addr()),
		wish.WithHostKeyPath(keyPath),
		wish.WithVersion("tuidesk-"+cfg.Version),
		wish.WithMiddleware(
			bubbletea.Middleware(func(sess ssh.Session) (tea.Model, []tea.ProgramOption) {
				return build(f, logger, "ssh", sess.RemoteAddr().String())
			}),
			activeterm.Middleware(),
		),
	)
	if err != nil {
		return fmt.Errorf("failed to create SSH server: %w", err)
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("ssh server listening", "addr", cfg.addr(), "host_key", keyPath)
		if err := s.ListenAndServe(); err != nil && !errors.Is(err, ssh.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("ssh server: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	logger.Info("stopping ssh server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := s.Shutdown(shutdownCtx); err != nil && !errors.Is(err, ssh.ErrServerClosed) {
		return fmt.Errorf("failed to stop SSH server: %w", err)
	}
	return nil
}
