// Package main implements tuidesk, a portfolio desktop for the terminal:
// draggable, resizable windows, a dock and a launcher, served locally, over
// SSH or in the browser.
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/charmbracelet/fang"
	"github.com/spf13/cobra"

	"github.com/Gaurav-Gosain/tuidesk/internal/config"
)

// Version information (set by goreleaser)
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
	builtBy = "unknown"
)

// Global flags
var (
	debugMode           bool
	asciiOnly           bool
	themeName           string
	borderStyle         string
	dockbarPosition     string
	hideWindowButtons   bool
	windowTitlePosition string
	floorPolicy         string
	openApps            []string
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "tuidesk",
		Short: "A desktop in your terminal",
		Long: `tuidesk - a desktop in your terminal

A window manager for a fixed set of portfolio apps: drag windows by the
title bar, resize them from any edge or corner, and open apps from the
dock or the launcher.`,
		Example: `  # Run tuidesk
  tuidesk

  # Open the terminal app on start
  tuidesk --open terminal

  # Run with a theme and ASCII glyphs
  tuidesk --theme dracula --ascii-only

  # Serve over SSH
  tuidesk ssh --port 2222

  # Serve in the browser
  tuidesk web --port 7681

  # List the apps as JSON
  tuidesk apps --format json`,
		Version: version,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runLocal(cmd.Context())
		},
		SilenceUsage: true,
	}

	rootCmd.PersistentFlags().BoolVar(&debugMode, "debug", false, "Enable debug logging")
	rootCmd.PersistentFlags().BoolVar(&asciiOnly, "ascii-only", false, "Use ASCII characters instead of Nerd Font icons")
	rootCmd.PersistentFlags().StringVar(&themeName, "theme", "", "Color theme to use (e.g., dracula, nord, tokyonight). Leave empty to use standard terminal colors")
	rootCmd.PersistentFlags().StringVar(&borderStyle, "border-style", "", "Window border style: rounded, normal, thick, double, hidden, block, ascii, outer-half-block, inner-half-block (default: from config or rounded)")
	rootCmd.PersistentFlags().StringVar(&dockbarPosition, "dockbar-position", "", "Dock position: bottom, top, hidden (default: from config or bottom)")
	rootCmd.PersistentFlags().BoolVar(&hideWindowButtons, "hide-window-buttons", false, "Hide window control buttons (minimize, maximize, close)")
	rootCmd.PersistentFlags().StringVar(&windowTitlePosition, "window-title-position", "", "Window title position: top, bottom, hidden (default: from config or top)")
	rootCmd.PersistentFlags().StringVar(&floorPolicy, "floor-policy", "", "How left and top edges treat the minimum size: reject, clamp (default: from config or reject)")
	rootCmd.PersistentFlags().StringSliceVar(&openApps, "open", nil, "Apps to open on start, replacing desktop.startup_apps (e.g., --open terminal,vscode)")

	var sshHost, sshPort, sshKeyPath string
	sshCmd := &cobra.Command{
		Use:   "ssh",
		Short: "Serve tuidesk over SSH",
		Long: `Serve tuidesk over SSH

Every connection gets its own desktop. The host key is generated on first
start when --key-path is not given. Dock links are not opened on the server.`,
		Example: `  # Start SSH server on default port
  tuidesk ssh

  # Listen on all interfaces
  tuidesk ssh --host 0.0.0.0 --port 2222

  # Connect
  ssh -p 2222 localhost`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runSSHServer(cmd.Context(), sshHost, sshPort, sshKeyPath)
		},
	}
	sshCmd.Flags().StringVar(&sshPort, "port", config.DefaultSSHPort, "SSH server port")
	sshCmd.Flags().StringVar(&sshHost, "host", config.DefaultSSHHost, "SSH server host")
	sshCmd.Flags().StringVar(&sshKeyPath, "key-path", "", "Path to SSH host key (auto-generated if not specified)")

	var webHost, webPort string
	webCmd := &cobra.Command{
		Use:   "web",
		Short: "Serve tuidesk in the browser",
		Long: `Serve tuidesk in the browser

Every browser tab gets its own desktop.`,
		Example: `  tuidesk web --port 7681`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runWebServer(cmd.Context(), webHost, webPort)
		},
	}
	webCmd.Flags().StringVar(&webPort, "port", config.DefaultWebPort, "Web server port")
	webCmd.Flags().StringVar(&webHost, "host", config.DefaultWebHost, "Web server host")

	configCmd := &cobra.Command{
		Use:   "config",
		Short: "Manage tuidesk configuration",
		Long:  `Manage the tuidesk configuration file`,
	}

	configPathCmd := &cobra.Command{
		Use:   "path",
		Short: "Print configuration file path",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return printConfigPath(cmd.OutOrStdout())
		},
	}

	configEditCmd := &cobra.Command{
		Use:   "edit",
		Short: "Edit configuration in $EDITOR",
		Long: `Open the tuidesk configuration file in your default editor

The editor is determined by checking $EDITOR, $VISUAL, or common editors
like vim, vi and nano in that order.`,
		RunE: func(_ *cobra.Command, _ []string) error {
			return editConfigFile()
		},
	}

	var resetYes bool
	configResetCmd := &cobra.Command{
		Use:   "reset",
		Short: "Reset configuration to defaults",
		Long: `Reset the tuidesk configuration file to default settings

This will overwrite your existing configuration after confirmation.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return resetConfigToDefaults(cmd.InOrStdin(), cmd.OutOrStdout(), resetYes)
		},
	}
	configResetCmd.Flags().BoolVarP(&resetYes, "yes", "y", false, "Skip the confirmation prompt")

	configValidateCmd := &cobra.Command{
		Use:   "validate",
		Short: "Check the configuration file",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return validateConfigFile(cmd.OutOrStdout())
		},
	}

	configCmd.AddCommand(configPathCmd, configEditCmd, configResetCmd, configValidateCmd)

	keybindsCmd := &cobra.Command{
		Use:     "keybinds",
		Aliases: []string{"keys", "kb"},
		Short:   "List all keybindings",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return listKeybindings(cmd.OutOrStdout())
		},
	}

	var appsFormat string
	appsCmd := &cobra.Command{
		Use:   "apps",
		Short: "List the desktop apps",
		Long: `List the registered apps in dock order

Slugs are what --open and desktop.startup_apps accept.`,
		Example: `  tuidesk apps
  tuidesk apps --format yaml`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return listApps(cmd.OutOrStdout(), appsFormat)
		},
	}
	appsCmd.Flags().StringVarP(&appsFormat, "format", "f", "table", "Output format: table, json, yaml")

	themesCmd := &cobra.Command{
		Use:   "themes",
		Short: "List available themes",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return listThemes(cmd.OutOrStdout())
		},
	}

	rootCmd.AddCommand(sshCmd, webCmd, configCmd, keybindsCmd, appsCmd, themesCmd)

	if err := fang.Execute(
		context.Background(),
		rootCmd,
		fang.WithVersion(fmt.Sprintf("%s\nCommit: %s\nBuilt: %s\nBy: %s", version, commit, date, builtBy)),
	); err != nil {
		os.Exit(1)
	}
}
