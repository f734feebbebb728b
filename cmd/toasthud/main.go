// Package main is the entry point for the toasthud rendering executable.
//
// toasthud draws a single toast window from command-line arguments whose
// names mirror the display parameter record, runs its own GTK main loop
// for the fade-in/hold/fade-out timeline, and exits. Argument errors exit
// with status 2, display errors with status 1.
package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/diamondburned/gotk4/pkg/gio/v2"
	"github.com/diamondburned/gotk4/pkg/glib/v2"
	"github.com/diamondburned/gotk4/pkg/gtk/v4"

	"github.com/toasthud/toasthud/internal/color"
	"github.com/toasthud/toasthud/internal/config"
	"github.com/toasthud/toasthud/internal/display"
	"github.com/toasthud/toasthud/internal/sound"
	"github.com/toasthud/toasthud/internal/toast"
)

const appID = "io.github.toasthud"

// Build-time variables (set via ldflags)
var version = "dev"

func main() {
	var (
		width           = flag.Float64("width", 0, "Toast width in points")
		height          = flag.Float64("height", 0, "Toast height in points")
		bg              = flag.String("bg", "", "Background color (hex or float tuple)")
		textColor       = flag.String("text-color", "", "Text color (hex or float tuple)")
		position        = flag.String("position", "", "Named anchor (top-right, center, ...)")
		x               = flag.Float64("x", 0, "Explicit X coordinate")
		y               = flag.Float64("y", 0, "Explicit Y coordinate")
		fontSize        = flag.Float64("font-size", 0, "Font size in points")
		cornerRadius    = flag.Float64("corner-radius", 0, "Corner radius in points")
		displayDuration = flag.Float64("display-duration", 0, "Display duration in seconds")
		fadeInDuration  = flag.Float64("fade-in-duration", 0, "Fade-in duration in seconds")
		fadeOutDuration = flag.Float64("fade-out-duration", 0, "Fade-out duration in seconds")
		windowLevel     = flag.String("window-level", "", "Window level (normal, floating, ...)")
		icon            = flag.String("icon", "", "Icon name or image file path")
		clickToDismiss  = flag.Bool("click-to-dismiss", false, "Dismiss the toast on mouse click")
		autoSize        = flag.Bool("auto-size", false, "Compute dimensions from the message")
		minWidth        = flag.Float64("min-width", 0, "Minimum auto-size width")
		maxWidth        = flag.Float64("max-width", 0, "Maximum auto-size width")
		soundRef        = flag.String("sound", "", "Sound catalog name or absolute file path")
		showVersion     = flag.Bool("version", false, "Show version and exit")
		verbose         = flag.Bool("verbose", false, "Enable verbose logging")
	)
	flag.Parse()

	if *showVersion {
		fmt.Println("toasthud version", version)
		os.Exit(0)
	}

	level := slog.LevelWarn
	if *verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	}))
	slog.SetDefault(logger)

	// Track which flags were set explicitly so unset optionals stay nil.
	set := map[string]bool{}
	flag.Visit(func(f *flag.Flag) { set[f.Name] = true })

	p := &toast.Params{
		Message:        strings.Join(flag.Args(), " "),
		Icon:           *icon,
		Sound:          *soundRef,
		ClickToDismiss: *clickToDismiss,
		AutoSize:       *autoSize,
		Anchor:         toast.Position(*position),
		Level:          toast.WindowLevel(*windowLevel),
	}
	if set["width"] {
		p.Width = toast.Float(*width)
	}
	if set["height"] {
		p.Height = toast.Float(*height)
	}
	if set["font-size"] {
		p.FontSize = toast.Float(*fontSize)
	}
	if set["corner-radius"] {
		p.CornerRadius = toast.Float(*cornerRadius)
	}
	if set["min-width"] {
		p.MinWidth = toast.Float(*minWidth)
	}
	if set["max-width"] {
		p.MaxWidth = toast.Float(*maxWidth)
	}
	if set["display-duration"] {
		p.DisplayDuration = toast.Duration(secondsToDuration(*displayDuration))
	}
	if set["fade-in-duration"] {
		p.FadeInDuration = toast.Duration(secondsToDuration(*fadeInDuration))
	}
	if set["fade-out-duration"] {
		p.FadeOutDuration = toast.Duration(secondsToDuration(*fadeOutDuration))
	}
	if set["x"] || set["y"] {
		p.Coords = &toast.Coordinates{X: *x, Y: *y}
	}
	if set["bg"] {
		c, err := color.Parse(*bg)
		if err != nil {
			argFatal(logger, fmt.Errorf("invalid background: %w", err))
		}
		p.Background = &c
	}
	if set["text-color"] {
		c, err := color.Parse(*textColor)
		if err != nil {
			argFatal(logger, fmt.Errorf("invalid text color: %w", err))
		}
		p.TextColor = &c
	}

	if err := p.Validate(); err != nil {
		argFatal(logger, err)
	}
	p.ApplyAutoSize()

	cfg, err := config.Load("")
	if err != nil {
		logger.Warn("failed to load config, using defaults", "error", err)
		cfg = config.DefaultConfig()
	}

	os.Exit(run(p, cfg, logger))
}

// run drives the GTK application for a single toast.
func run(p *toast.Params, cfg *config.Config, logger *slog.Logger) int {
	app := gtk.NewApplication(appID, gio.ApplicationNonUnique)

	var soundWG sync.WaitGroup
	displayFailed := false

	app.ConnectActivate(func() {
		popup, err := display.NewPopup(app, p, logger)
		if err != nil {
			logger.Error("failed to create toast window", "error", err)
			displayFailed = true
			app.Quit()
			return
		}

		if p.Sound != "" && cfg.Audio.Enabled {
			path, err := sound.Resolve(p.Sound)
			if err != nil {
				logger.Warn("failed to resolve sound", "sound", p.Sound, "error", err)
			} else {
				player := sound.NewPlayer(logger)
				player.SetVolume(float64(cfg.Audio.Volume) / 100.0)
				soundWG.Add(1)
				go func() {
					defer soundWG.Done()
					if err := player.PlayAndWait(path); err != nil {
						logger.Warn("failed to play sound", "path", path, "error", err)
					}
				}()
			}
		}

		popup.Present(func() {
			// Let the sound finish before the process exits.
			go func() {
				soundWG.Wait()
				glib.IdleAdd(func() {
					app.Quit()
				})
			}()
		})
	})

	status := app.Run([]string{os.Args[0]})
	if displayFailed && status == 0 {
		return 1
	}
	return status
}

// argFatal reports an argument error and exits with status 2 so a
// blocking caller with result checking can observe the failure.
func argFatal(logger *slog.Logger, err error) {
	logger.Error("invalid arguments", "error", err)
	fmt.Fprintln(os.Stderr, "toasthud:", err)
	os.Exit(2)
}

// secondsToDuration converts fractional seconds to a time.Duration.
func secondsToDuration(s float64) time.Duration {
	return time.Duration(s * float64(time.Second))
}
