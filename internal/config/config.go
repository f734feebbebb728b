// Package config handles toasthud configuration file loading and parsing.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/pelletier/go-toml/v2"

	"github.com/toasthud/toasthud/internal/color"
	"github.com/toasthud/toasthud/internal/toast"
)

// Duration is a time.Duration that can be unmarshaled from human-readable
// strings. Supports formats like "500ms", "2s", "1m", or integer
// milliseconds.
type Duration time.Duration

// UnmarshalText implements encoding.TextUnmarshaler for TOML parsing.
func (d *Duration) UnmarshalText(text []byte) error {
	s := string(text)

	// Integer milliseconds for backwards compatibility
	if ms, err := strconv.ParseInt(s, 10, 64); err == nil {
		*d = Duration(time.Duration(ms) * time.Millisecond)
		return nil
	}

	dur, err := time.ParseDuration(s)
	if err != nil {
		return fmt.Errorf("invalid duration %q: must be like '500ms', '2s' or milliseconds: %w", s, err)
	}
	*d = Duration(dur)
	return nil
}

// MarshalText implements encoding.TextMarshaler for TOML output.
func (d Duration) MarshalText() ([]byte, error) {
	return []byte(time.Duration(d).String()), nil
}

// Duration returns the underlying time.Duration.
func (d Duration) Duration() time.Duration {
	return time.Duration(d)
}

// Config holds user defaults for toasts.
// Loaded from ~/.config/toasthud/config.toml.
type Config struct {
	Display  DisplayConfig  `toml:"display"`
	Timing   TimingConfig   `toml:"timing"`
	Audio    AudioConfig    `toml:"audio"`
	Renderer RendererConfig `toml:"renderer"`
}

// DisplayConfig contains default display settings.
type DisplayConfig struct {
	Position    string  `toml:"position"`     // "top-right", "center", etc.
	Background  string  `toml:"background"`   // Hex or float tuple
	TextColor   string  `toml:"text_color"`   // Hex or float tuple
	FontSize    float64 `toml:"font_size"`    // Points, 0 = renderer default
	WindowLevel string  `toml:"window_level"` // "normal", "floating", ...
}

// TimingConfig contains default timing settings.
// Durations accept "2s", "500ms", etc. or integer milliseconds.
type TimingConfig struct {
	DisplayDuration Duration `toml:"display_duration"`
	FadeInDuration  Duration `toml:"fade_in_duration"`
	FadeOutDuration Duration `toml:"fade_out_duration"`
}

// AudioConfig contains audio settings.
type AudioConfig struct {
	Enabled bool `toml:"enabled"`
	Volume  int  `toml:"volume"` // 0-100
}

// RendererConfig contains renderer process settings.
type RendererConfig struct {
	// Path overrides renderer discovery when non-empty.
	Path string `toml:"path"`

	// Fallback delivers via the freedesktop notification service when
	// the renderer executable cannot be found.
	Fallback bool `toml:"fallback"`
}

// DefaultConfig returns a Config with default values.
func DefaultConfig() *Config {
	return &Config{
		Display: DisplayConfig{
			Position:    string(toast.PositionCenter),
			WindowLevel: string(toast.DefaultWindowLevel),
		},
		Timing: TimingConfig{
			DisplayDuration: Duration(toast.DefaultDisplayDuration),
			FadeInDuration:  Duration(toast.DefaultFadeInDuration),
			FadeOutDuration: Duration(toast.DefaultFadeOutDuration),
		},
		Audio: AudioConfig{
			Enabled: true,
			Volume:  80,
		},
		Renderer: RendererConfig{
			Fallback: true,
		},
	}
}

// Path returns the path to the config file.
// Uses XDG_CONFIG_HOME if set, otherwise ~/.config.
func Path() string {
	configHome := os.Getenv("XDG_CONFIG_HOME")
	if configHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return ""
		}
		configHome = filepath.Join(home, ".config")
	}
	return filepath.Join(configHome, "toasthud", "config.toml")
}

// Load loads configuration from the specified path.
// If path is empty, the default config path is used. Returns defaults if
// the file doesn't exist.
func Load(path string) (*Config, error) {
	if path == "" {
		path = Path()
	}

	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return cfg, nil
}

// Save writes the configuration to the specified path, creating parent
// directories if needed.
func (c *Config) Save(path string) error {
	if path == "" {
		path = Path()
	}

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := toml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	// Write atomically via temp file
	tmpPath := path + ".tmp"
	if err := os.WriteFile(tmpPath, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return os.Rename(tmpPath, path)
}

// Validate checks if the configuration is valid, reusing the same closed
// ranges as the parameter validator.
func (c *Config) Validate() error {
	if c.Display.Position != "" {
		valid := false
		for _, p := range toast.ValidPositions() {
			if c.Display.Position == string(p) {
				valid = true
				break
			}
		}
		if !valid {
			return fmt.Errorf("invalid position %q, must be one of: %v", c.Display.Position, toast.ValidPositions())
		}
	}

	if c.Display.WindowLevel != "" {
		valid := false
		for _, l := range toast.ValidWindowLevels() {
			if c.Display.WindowLevel == string(l) {
				valid = true
				break
			}
		}
		if !valid {
			return fmt.Errorf("invalid window level %q, must be one of: %v", c.Display.WindowLevel, toast.ValidWindowLevels())
		}
	}

	if c.Display.Background != "" {
		if _, err := color.Parse(c.Display.Background); err != nil {
			return fmt.Errorf("invalid background: %w", err)
		}
	}
	if c.Display.TextColor != "" {
		if _, err := color.Parse(c.Display.TextColor); err != nil {
			return fmt.Errorf("invalid text_color: %w", err)
		}
	}

	if fs := c.Display.FontSize; fs != 0 && (fs < toast.MinFontSize || fs > toast.MaxFontSize) {
		return fmt.Errorf("font_size must be between %d and %d, got %g", toast.MinFontSize, toast.MaxFontSize, fs)
	}

	if d := c.Timing.DisplayDuration.Duration(); d != 0 &&
		(d < toast.MinDisplayDuration || d > toast.MaxDisplayDuration) {
		return fmt.Errorf("display_duration must be between %s and %s, got %s",
			toast.MinDisplayDuration, toast.MaxDisplayDuration, d)
	}
	for name, d := range map[string]time.Duration{
		"fade_in_duration":  c.Timing.FadeInDuration.Duration(),
		"fade_out_duration": c.Timing.FadeOutDuration.Duration(),
	} {
		if d < 0 || d > toast.MaxFadeDuration {
			return fmt.Errorf("%s must be between 0s and %s, got %s", name, toast.MaxFadeDuration, d)
		}
	}

	if c.Audio.Volume < 0 || c.Audio.Volume > 100 {
		return fmt.Errorf("volume must be between 0 and 100, got %d", c.Audio.Volume)
	}

	return nil
}
