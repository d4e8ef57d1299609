package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	tea "charm.land/bubbletea/v2"
	"github.com/charmbracelet/log"
	"golang.org/x/term"

	"github.com/Gaurav-Gosain/tuidesk/internal/config"
	"github.com/Gaurav-Gosain/tuidesk/internal/logging"
	"github.com/Gaurav-Gosain/tuidesk/internal/server"
	"github.com/Gaurav-Gosain/tuidesk/pkg/tuidesk"
)

// loadConfig loads the user config, falling back to defaults when the file
// cannot be used.
func loadConfig() *config.UserConfig {
	userConfig, err := config.LoadUserConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: failed to load config, using defaults: %v\n", err)
		return config.DefaultConfig()
	}
	return userConfig
}

func logLevel(cfg *config.UserConfig) string {
	if debugMode {
		return "debug"
	}
	return cfg.Desktop.LogLevel
}

// desktopOptions turns the global flags into desktop options.
func desktopOptions(cfg *config.UserConfig, logger *log.Logger) []tuidesk.Option {
	opts := []tuidesk.Option{
		tuidesk.WithUserConfig(cfg),
		tuidesk.WithLogger(logger),
		tuidesk.WithTheme(themeName),
		tuidesk.WithASCIIOnly(asciiOnly),
		tuidesk.WithBorderStyle(borderStyle),
		tuidesk.WithDockbarPosition(dockbarPosition),
		tuidesk.WithHideWindowButtons(hideWindowButtons),
		tuidesk.WithWindowTitlePosition(windowTitlePosition),
		tuidesk.WithFloorPolicy(floorPolicy),
	}
	if openApps != nil {
		opts = append(opts, tuidesk.WithStartupApps(openApps...))
	}
	return opts
}

func runLocal(ctx context.Context) error {
	if !term.IsTerminal(int(os.Stdout.Fd())) || !term.IsTerminal(int(os.Stdin.Fd())) {
		return errors.New("tuidesk needs an interactive terminal; use 'tuidesk ssh' or 'tuidesk web' to serve it")
	}

	userConfig := loadConfig()
	logger, closeLog, err := logging.Open(logLevel(userConfig))
	if err != nil {
		return err
	}
	defer func() { _ = closeLog() }()

	if debugMode {
		configPath, _ := config.GetConfigPath()
		logPath, _ := logging.Path()
		fmt.Printf("Debug mode enabled\nConfiguration: %s\nLog: %s\n", configPath, logPath)
	}

	model, err := tuidesk.New(desktopOptions(userConfig, logger)...)
	if err != nil {
		return err
	}

	p := tea.NewProgram(model, append(tuidesk.ProgramOptions(), tea.WithoutSignalHandler())...)

	sigCtx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()
	go func() {
		<-sigCtx.Done()
		p.Send(tea.QuitMsg{})
	}()

	if _, err := p.Run(); err != nil {
		return fmt.Errorf("program error: %w", err)
	}
	return nil
}

// setupRemote applies the appearance flags once for every remote session.
// It must run before the server accepts connections.
func setupRemote(cfg *config.UserConfig, logger *log.Logger) error {
	if err := tuidesk.Setup(desktopOptions(cfg, logger)...); err != nil {
		return fmt.Errorf("failed to apply appearance: %w", err)
	}
	return nil
}

// remoteFactory builds a fresh desktop per remote connection. Appearance
// was applied by setupRemote, so building a desktop leaves it alone.
func remoteFactory(cfg *config.UserConfig, logger *log.Logger) server.Factory {
	return func() (tea.Model, []tea.ProgramOption, error) {
		// Sessions must not share the config: building a desktop writes
		// flag overrides into it.
		c := *cfg
		opts := append(desktopOptions(&c, logger), tuidesk.WithRemote(true))
		model, err := tuidesk.New(opts...)
		if err != nil {
			return nil, nil, err
		}
		return model, tuidesk.ProgramOptions(), nil
	}
}

// serverLogger logs to stderr: a server does not own the terminal.
func serverLogger(cfg *config.UserConfig) (*log.Logger, error) {
	logger, err := logging.New(os.Stderr, logLevel(cfg))
	if err != nil {
		return nil, err
	}
	log.SetDefault(logger)
	return logger, nil
}

func runSSHServer(ctx context.Context, host, port, keyPath string) error {
	userConfig := loadConfig()
	logger, err := serverLogger(userConfig)
	if err != nil {
		return err
	}

	if err := setupRemote(userConfig, logger); err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	return server.ServeSSH(ctx, server.Config{
		Host:    host,
		Port:    port,
		KeyPath: keyPath,
		Version: version,
		Logger:  logger,
	}, remoteFactory(userConfig, logger))
}

func runWebServer(ctx context.Context, host, port string) error {
	userConfig := loadConfig()
	logger, err := serverLogger(userConfig)
	if err != nil {
		return err
	}

	if err := setupRemote(userConfig, logger); err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	return server.ServeWeb(ctx, server.Config{
		Host:    host,
		Port:    port,
		Version: version,
		Logger:  logger,
	}, remoteFactory(userConfig, logger))
}
