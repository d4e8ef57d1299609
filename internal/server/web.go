package server

import (
	"context"
	"fmt"

	tea "charm.land/bubbletea/v2"
	"github.com/Gaurav-Gosain/sip"
	"github.com/google/uuid"
)

// ServeWeb serves desktops to browsers until ctx is done.
func ServeWeb(ctx context.Context, cfg Config, f Factory) error {
	logger := cfg.logger()

	sc := sip.DefaultConfig()
	sc.Host = cfg.Host
	sc.Port = cfg.Port

	logger.Info("web server listening", "addr", cfg.addr())
	srv := sip.NewServer(sc)
	err := srv.Serve(ctx, func(sip.Session) (tea.Model, []tea.ProgramOption) {
		return build(f, logger, "web", "web-"+uuid.NewString()[:8])
	})
	if err != nil && ctx.Err() == nil {
		return fmt.Errorf("web server: %w", err)
	}
	return nil
}
