// Package main provides the CLI entrypoint for toast.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/toasthud/toasthud/internal/color"
	"github.com/toasthud/toasthud/internal/config"
	"github.com/toasthud/toasthud/internal/notify"
	"github.com/toasthud/toasthud/internal/runner"
	"github.com/toasthud/toasthud/internal/toast"
)

// Build-time variables (set via ldflags)
var (
	version   = "dev"
	commit    = "unknown"
	buildTime = "unknown"
)

// Global configuration and state
var (
	cfg        *config.Config
	logger     *slog.Logger
	globalOpts struct {
		verbose    bool
		configPath string
	}
	showOpts struct {
		width           float64
		height          float64
		bg              string
		textColor       string
		position        string
		x               float64
		y               float64
		fontSize        float64
		cornerRadius    float64
		displayDuration float64
		fadeInDuration  float64
		fadeOutDuration float64
		windowLevel     string
		icon            string
		clickToDismiss  bool
		autoSize        bool
		minWidth        float64
		maxWidth        float64
		sound           string
		nonBlocking     bool
		check           bool
		rendererPath    string
	}
)

// rootCmd represents the base command when called without any subcommands.
var rootCmd = &cobra.Command{
	Use:   "toast [flags] MESSAGE...",
	Short: "Show a toast notification on screen",
	Long: `toast shows a short-lived heads-up notification window.

The toast fades in, holds for the display duration, fades out, and
disappears. Geometry, colors, timing, and sound are all configurable,
and auto-sizing can derive the window size from the message itself.

Styled shortcuts are available as subcommands:

  toast success "Build finished"
  toast error --display-duration 5 "Deploy failed"`,
	Version: fmt.Sprintf("%s (commit: %s, built: %s)", version, commit, buildTime),
	Args:    cobra.ArbitraryArgs,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// Setup logging
		setupLogger()

		// Load configuration
		var err error
		cfg, err = config.Load(globalOpts.configPath)
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}

		return nil
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		p, err := buildParams(cmd, args)
		if err != nil {
			return err
		}
		return showToast(p)
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	// Global flags
	rootCmd.PersistentFlags().BoolVarP(&globalOpts.verbose, "verbose", "v", false,
		"Enable verbose logging")
	rootCmd.PersistentFlags().StringVar(&globalOpts.configPath, "config", "",
		"Path to config file (default: ~/.config/toasthud/config.toml)")

	// Toast flags, shared with the styled subcommands
	pf := rootCmd.PersistentFlags()
	pf.Float64Var(&showOpts.width, "width", 0, "Toast width in points (50-1000)")
	pf.Float64Var(&showOpts.height, "height", 0, "Toast height in points (30-500)")
	pf.StringVar(&showOpts.bg, "bg", "", "Background color, hex (#RRGGBB[AA]) or float tuple (r,g,b[,a])")
	pf.StringVar(&showOpts.textColor, "text-color", "", "Text color, hex or float tuple")
	pf.StringVarP(&showOpts.position, "position", "p", "", "Named position (top-right, top-left, bottom-right, bottom-left, center)")
	pf.Float64Var(&showOpts.x, "x", 0, "Explicit X coordinate (excludes --position)")
	pf.Float64Var(&showOpts.y, "y", 0, "Explicit Y coordinate (excludes --position)")
	pf.Float64Var(&showOpts.fontSize, "font-size", 0, "Font size in points (8-72)")
	pf.Float64Var(&showOpts.cornerRadius, "corner-radius", 0, "Corner radius in points (0-100, default: pill shape)")
	pf.Float64VarP(&showOpts.displayDuration, "display-duration", "d", 0, "Seconds the toast stays visible (0.1-60)")
	pf.Float64Var(&showOpts.fadeInDuration, "fade-in-duration", 0, "Fade-in seconds (0-5)")
	pf.Float64Var(&showOpts.fadeOutDuration, "fade-out-duration", 0, "Fade-out seconds (0-5)")
	pf.StringVar(&showOpts.windowLevel, "window-level", "", "Window level (normal, floating, status, modal, max, screensaver)")
	pf.StringVar(&showOpts.icon, "icon", "", "Icon name or image file path")
	pf.BoolVar(&showOpts.clickToDismiss, "click-to-dismiss", false, "Dismiss the toast on mouse click")
	pf.BoolVar(&showOpts.autoSize, "auto-size", false, "Derive width and height from the message (excludes --width/--height)")
	pf.Float64Var(&showOpts.minWidth, "min-width", 0, "Minimum auto-size width")
	pf.Float64Var(&showOpts.maxWidth, "max-width", 0, "Maximum auto-size width")
	pf.StringVar(&showOpts.sound, "sound", "", "Sound to play: catalog name or absolute file path")
	pf.BoolVarP(&showOpts.nonBlocking, "non-blocking", "n", false, "Return immediately instead of waiting for the toast")
	pf.BoolVar(&showOpts.check, "check", false, "Fail if the renderer exits non-zero (requires blocking mode)")
	pf.StringVar(&showOpts.rendererPath, "renderer", "", "Path to the toasthud renderer executable")
}

// setupLogger configures the global slog logger.
func setupLogger() {
	level := slog.LevelWarn
	if globalOpts.verbose {
		level = slog.LevelDebug
	}

	opts := &slog.HandlerOptions{
		Level: level,
	}

	// Log to stderr so stdout is clean for output
	handler := slog.NewTextHandler(os.Stderr, opts)
	logger = slog.New(handler)
	slog.SetDefault(logger)
}

// buildParams assembles a parameter record from command-line flags layered
// over config file defaults. Flags the user set explicitly always win.
func buildParams(cmd *cobra.Command, args []string) (*toast.Params, error) {
	flags := cmd.Flags()

	p := &toast.Params{
		Message:        strings.Join(args, " "),
		Icon:           showOpts.icon,
		Sound:          showOpts.sound,
		ClickToDismiss: showOpts.clickToDismiss,
		AutoSize:       showOpts.autoSize,
		NonBlocking:    showOpts.nonBlocking,
		Check:          showOpts.check,
	}

	if flags.Changed("width") {
		p.Width = toast.Float(showOpts.width)
	}
	if flags.Changed("height") {
		p.Height = toast.Float(showOpts.height)
	}
	if flags.Changed("font-size") {
		p.FontSize = toast.Float(showOpts.fontSize)
	}
	if flags.Changed("corner-radius") {
		p.CornerRadius = toast.Float(showOpts.cornerRadius)
	}
	if flags.Changed("min-width") {
		p.MinWidth = toast.Float(showOpts.minWidth)
	}
	if flags.Changed("max-width") {
		p.MaxWidth = toast.Float(showOpts.maxWidth)
	}
	if flags.Changed("display-duration") {
		p.DisplayDuration = toast.Duration(secondsToDuration(showOpts.displayDuration))
	}
	if flags.Changed("fade-in-duration") {
		p.FadeInDuration = toast.Duration(secondsToDuration(showOpts.fadeInDuration))
	}
	if flags.Changed("fade-out-duration") {
		p.FadeOutDuration = toast.Duration(secondsToDuration(showOpts.fadeOutDuration))
	}
	if flags.Changed("x") || flags.Changed("y") {
		p.Coords = &toast.Coordinates{X: showOpts.x, Y: showOpts.y}
	}
	if flags.Changed("position") {
		p.Anchor = toast.Position(showOpts.position)
	}
	if flags.Changed("window-level") {
		p.Level = toast.WindowLevel(showOpts.windowLevel)
	}
	if flags.Changed("bg") {
		c, err := color.Parse(showOpts.bg)
		if err != nil {
			return nil, fmt.Errorf("invalid background: %w", err)
		}
		p.Background = &c
	}
	if flags.Changed("text-color") {
		c, err := color.Parse(showOpts.textColor)
		if err != nil {
			return nil, fmt.Errorf("invalid text color: %w", err)
		}
		p.TextColor = &c
	}

	applyConfigDefaults(p)
	return p, nil
}

// applyConfigDefaults fills parameter fields the user left unset from the
// config file. Explicit coordinates suppress the configured position so
// the two placement modes never collide.
func applyConfigDefaults(p *toast.Params) {
	if p.Anchor == "" && p.Coords == nil && cfg.Display.Position != "" {
		p.Anchor = toast.Position(cfg.Display.Position)
	}
	if p.Level == "" && cfg.Display.WindowLevel != "" {
		p.Level = toast.WindowLevel(cfg.Display.WindowLevel)
	}
	if p.Background == nil && cfg.Display.Background != "" {
		if c, err := color.Parse(cfg.Display.Background); err == nil {
			p.Background = &c
		}
	}
	if p.TextColor == nil && cfg.Display.TextColor != "" {
		if c, err := color.Parse(cfg.Display.TextColor); err == nil {
			p.TextColor = &c
		}
	}
	if p.FontSize == nil && cfg.Display.FontSize != 0 {
		p.FontSize = toast.Float(cfg.Display.FontSize)
	}
	if p.DisplayDuration == nil && cfg.Timing.DisplayDuration != 0 {
		p.DisplayDuration = toast.Duration(cfg.Timing.DisplayDuration.Duration())
	}
	if p.FadeInDuration == nil && cfg.Timing.FadeInDuration != 0 {
		p.FadeInDuration = toast.Duration(cfg.Timing.FadeInDuration.Duration())
	}
	if p.FadeOutDuration == nil && cfg.Timing.FadeOutDuration != 0 {
		p.FadeOutDuration = toast.Duration(cfg.Timing.FadeOutDuration.Duration())
	}
}

// showToast invokes the renderer for p, falling back to the freedesktop
// notification service when the renderer executable cannot be found.
func showToast(p *toast.Params) error {
	rendererPath := showOpts.rendererPath
	if rendererPath == "" {
		rendererPath = cfg.Renderer.Path
	}
	r := runner.New(rendererPath, logger)

	if _, err := r.Locate(); err != nil {
		if !cfg.Renderer.Fallback {
			return err
		}
		logger.Debug("renderer unavailable, trying notification fallback", "error", err)
		return fallbackNotify(p, err)
	}

	res, err := r.Show(context.Background(), p)
	if err != nil {
		return err
	}

	logger.Debug("toast shown",
		"request_id", res.RequestID,
		"pid", res.PID,
		"exit_code", res.ExitCode,
	)
	return nil
}

// fallbackNotify validates p and delivers it via org.freedesktop.Notifications.
// locateErr is the original discovery failure, reported when the fallback
// is unavailable too.
func fallbackNotify(p *toast.Params, locateErr error) error {
	if err := p.Validate(); err != nil {
		return err
	}
	if !notify.Available() {
		return fmt.Errorf("%w (and no notification service is available)", locateErr)
	}

	id, err := notify.Send(p)
	if err != nil {
		return fmt.Errorf("notification fallback failed: %w", err)
	}
	logger.Debug("delivered via notification service", "notification_id", id)
	return nil
}

// secondsToDuration converts fractional seconds to a time.Duration.
func secondsToDuration(s float64) time.Duration {
	return time.Duration(s * float64(time.Second))
}
