// Package tuidesk provides an embeddable terminal desktop: draggable,
// resizable windows, a dock and a launcher, as a Bubble Tea model.
//
// # Basic Usage
//
// Create a desktop with default options:
//
//	model, err := tuidesk.New()
//	if err != nil {
//		log.Fatal(err)
//	}
//	p := tea.NewProgram(model, tuidesk.ProgramOptions()...)
//	if _, err := p.Run(); err != nil {
//		log.Fatal(err)
//	}
//
// # Custom Configuration
//
//	model, err := tuidesk.New(
//		tuidesk.WithTheme("dracula"),
//		tuidesk.WithASCIIOnly(true),
//		tuidesk.WithStartupApps("terminal"),
//	)
//
// # Using with sip (Web Terminal)
//
// Appearance is process wide. Apply it once before serving, then build a
// desktop per session:
//
//	if err := tuidesk.Setup(tuidesk.WithTheme("nord")); err != nil {
//		log.Fatal(err)
//	}
//	server := sip.NewServer(sip.DefaultConfig())
//	server.Serve(ctx, func(sess sip.Session) (tea.Model, []tea.ProgramOption) {
//		model, _ := tuidesk.NewForPTY(sess.Pty(), tuidesk.WithRemote(true))
//		return model, tuidesk.ProgramOptions()
//	})
package tuidesk

import (
	"sync"

	tea "charm.land/bubbletea/v2"
	"github.com/charmbracelet/log"

	"github.com/Gaurav-Gosain/tuidesk/internal/app"
	"github.com/Gaurav-Gosain/tuidesk/internal/apps"
	"github.com/Gaurav-Gosain/tuidesk/internal/config"
	"github.com/Gaurav-Gosain/tuidesk/internal/dock"
	"github.com/Gaurav-Gosain/tuidesk/internal/input"
)

// Model is the desktop model that implements tea.Model.
type Model = app.Desktop

// Mode represents where key presses go.
type Mode = app.Mode

// Mode constants
const (
	// WindowManagementMode resolves keys through the keymap.
	WindowManagementMode = app.WindowManagementMode
	// ContentMode passes keys to the focused window.
	ContentMode = app.ContentMode
)

// Opener performs the side effect behind a dock link.
type Opener = dock.Opener

// Options configures a desktop.
type Options struct {
	// Theme is the color theme name (e.g., "dracula", "nord", "tokyonight").
	// Leave empty to use standard terminal colors.
	Theme string

	// ASCIIOnly uses ASCII characters instead of Nerd Font icons.
	ASCIIOnly bool

	// BorderStyle sets the window border style.
	BorderStyle string

	// DockbarPosition sets where the dock appears: "bottom", "top" or "hidden".
	DockbarPosition string

	// HideWindowButtons hides the minimize/maximize/close buttons.
	HideWindowButtons bool

	// WindowTitlePosition is "top", "bottom" or "hidden".
	WindowTitlePosition string

	// FloorPolicy is "reject" or "clamp".
	FloorPolicy string

	// StartupApps are window slugs opened on start. Nil keeps the config.
	StartupApps []string

	// Width and Height are the initial size (set automatically if 0).
	Width  int
	Height int

	// Remote marks SSH and web sessions. Links are not opened on the host.
	Remote bool

	// Opener overrides how dock links are opened.
	Opener Opener

	// Logger receives desktop log records. Defaults to log.Default().
	Logger *log.Logger

	// UserConfig is a custom user configuration. If nil, the config file is
	// loaded, falling back to defaults.
	UserConfig *config.UserConfig
}

// Option is a functional option for configuring a desktop.
type Option func(*Options)

// WithTheme sets the color theme.
func WithTheme(name string) Option {
	return func(o *Options) { o.Theme = name }
}

// WithASCIIOnly enables ASCII-only mode (no Nerd Font icons).
func WithASCIIOnly(enabled bool) Option {
	return func(o *Options) { o.ASCIIOnly = enabled }
}

// WithBorderStyle sets the window border style.
func WithBorderStyle(style string) Option {
	return func(o *Options) { o.BorderStyle = style }
}

// WithDockbarPosition sets the dock position.
func WithDockbarPosition(position string) Option {
	return func(o *Options) { o.DockbarPosition = position }
}

// WithHideWindowButtons hides window control buttons.
func WithHideWindowButtons(hide bool) Option {
	return func(o *Options) { o.HideWindowButtons = hide }
}

// WithWindowTitlePosition sets where window titles are drawn.
func WithWindowTitlePosition(position string) Option {
	return func(o *Options) { o.WindowTitlePosition = position }
}

// WithFloorPolicy sets how west and north resizes treat the size floor.
func WithFloorPolicy(policy string) Option {
	return func(o *Options) { o.FloorPolicy = policy }
}

// WithStartupApps sets the windows opened on start.
func WithStartupApps(slugs ...string) Option {
	return func(o *Options) { o.StartupApps = slugs }
}

// WithSize sets the initial terminal size.
func WithSize(width, height int) Option {
	return func(o *Options) {
		o.Width = width
		o.Height = height
	}
}

// WithRemote marks the desktop as served over SSH or the web.
func WithRemote(enabled bool) Option {
	return func(o *Options) { o.Remote = enabled }
}

// WithOpener sets how dock links are opened.
func WithOpener(opener Opener) Option {
	return func(o *Options) { o.Opener = opener }
}

// WithLogger sets the logger.
func WithLogger(logger *log.Logger) Option {
	return func(o *Options) { o.Logger = logger }
}

// WithUserConfig sets a custom user configuration.
func WithUserConfig(cfg *config.UserConfig) Option {
	return func(o *Options) { o.UserConfig = cfg }
}

// New creates a desktop with the given options.
func New(opts ...Option) (*Model, error) {
	var options Options
	for _, opt := range opts {
		opt(&options)
	}
	return newModel(options)
}

// PTY is the size source of an SSH or web session.
type PTY interface {
	Width() int
	Height() int
}

// NewForPTY creates a desktop sized to a PTY session.
func NewForPTY(pty PTY, opts ...Option) (*Model, error) {
	var options Options
	for _, opt := range opts {
		opt(&options)
	}
	options.Width = pty.Width()
	options.Height = pty.Height()
	return newModel(options)
}

// Setup applies the appearance options (theme, glyphs, borders, dock and
// title placement) for the whole process. Servers call it once before
// accepting connections. Desktops built afterwards leave the appearance
// alone; without Setup the first desktop built applies its own.
func Setup(opts ...Option) error {
	var options Options
	for _, opt := range opts {
		opt(&options)
	}

	setupMu.Lock()
	defer setupMu.Unlock()
	if err := config.ApplyAppearance(options.overrides(), options.userConfig()); err != nil {
		return err
	}
	appearanceSet = true
	return nil
}

var (
	// setupMu guards appearanceSet. Appearance settings are process wide
	// and servers build desktops from many goroutines.
	setupMu       sync.Mutex
	appearanceSet bool
	registerInput sync.Once
)

func (o Options) overrides() config.Overrides {
	return config.Overrides{
		ASCIIOnly:           o.ASCIIOnly,
		BorderStyle:         o.BorderStyle,
		DockbarPosition:     o.DockbarPosition,
		HideWindowButtons:   o.HideWindowButtons,
		WindowTitlePosition: o.WindowTitlePosition,
		ThemeName:           o.Theme,
		FloorPolicy:         o.FloorPolicy,
		StartupApps:         o.StartupApps,
	}
}

// userConfig returns the configured UserConfig, else the config file,
// else the defaults.
func (o Options) userConfig() *config.UserConfig {
	if o.UserConfig != nil {
		return o.UserConfig
	}
	cfg, err := config.LoadUserConfig()
	if err != nil {
		return config.DefaultConfig()
	}
	return cfg
}

func newModel(options Options) (*Model, error) {
	registerInput.Do(func() { app.SetInputHandler(input.HandleInput) })

	userConfig := options.userConfig()
	if err := applyAppearanceOnce(options, userConfig); err != nil {
		return nil, err
	}
	if err := config.ApplyDesktopOverrides(options.overrides(), userConfig); err != nil {
		return nil, err
	}

	logger := options.Logger
	if logger == nil {
		logger = log.Default()
	}
	opener := options.Opener
	if opener == nil {
		if options.Remote {
			opener = dock.NopOpener{Logger: logger}
		} else {
			opener = dock.SystemOpener{}
		}
	}

	d, err := app.New(app.Options{
		Config:   userConfig,
		Contents: apps.Default(apps.NewHostProbe(0)),
		Opener:   opener,
		Logger:   logger,
		Remote:   options.Remote,
	})
	if err != nil {
		return nil, err
	}
	if options.Width > 0 && options.Height > 0 {
		d.Width, d.Height = options.Width, options.Height
	}
	return d, nil
}

func applyAppearanceOnce(options Options, userConfig *config.UserConfig) error {
	setupMu.Lock()
	defer setupMu.Unlock()
	if appearanceSet {
		return nil
	}
	if err := config.ApplyAppearance(options.overrides(), userConfig); err != nil {
		return err
	}
	appearanceSet = true
	return nil
}

// ProgramOptions returns recommended tea.ProgramOption values for running
// the desktop: the frame rate cap and the motion filter.
func ProgramOptions() []tea.ProgramOption {
	return []tea.ProgramOption{
		tea.WithFPS(config.NormalFPS),
		tea.WithFilter(FilterMouseMotion),
	}
}

// FilterMouseMotion is a tea.WithFilter function that drops pointer motion
// while no drag or resize is in progress.
func FilterMouseMotion(model tea.Model, msg tea.Msg) tea.Msg {
	return input.FilterMouseMotion(model, msg)
}

// Apps lists the registered applications in dock order.
func Apps() []apps.Info {
	return apps.Catalog()
}

// Config re-exports the config loaders for embedders.
var Config = struct {
	// LoadUserConfig loads the user's configuration file.
	LoadUserConfig func() (*config.UserConfig, error)
	// DefaultConfig returns the default configuration.
	DefaultConfig func() *config.UserConfig
	// GetConfigPath returns the path to the configuration file.
	GetConfigPath func() (string, error)
}{
	LoadUserConfig: config.LoadUserConfig,
	DefaultConfig:  config.DefaultConfig,
	GetConfigPath:  config.GetConfigPath,
}
