// Package style provides preset looks for common notification types.
package style

import (
	"fmt"

	"github.com/toasthud/toasthud/internal/color"
	"github.com/toasthud/toasthud/internal/sound"
	"github.com/toasthud/toasthud/internal/toast"
)

// Style is a named overlay of display parameters. Fields the caller set
// explicitly always win over the preset.
type Style struct {
	Name       string
	Background color.Color
	TextColor  color.Color
	Icon       string
	Sound      string
}

// mustColor builds a color from known-good components.
func mustColor(r, g, b float64) color.Color {
	c, err := color.New(r, g, b)
	if err != nil {
		panic(err)
	}
	return c
}

var (
	// Success: green background with dark text.
	Success = Style{
		Name:       "success",
		Background: mustColor(0.2, 0.8, 0.3),
		TextColor:  mustColor(0, 0, 0),
		Icon:       "emblem-ok-symbolic",
		Sound:      sound.Confirmation1,
	}

	// Error: red background with white text.
	Error = Style{
		Name:       "error",
		Background: mustColor(0.9, 0.2, 0.2),
		TextColor:  mustColor(1, 1, 1),
		Icon:       "dialog-error-symbolic",
		Sound:      sound.Beep1,
	}

	// Warning: orange background with dark text.
	Warning = Style{
		Name:       "warning",
		Background: mustColor(1.0, 0.6, 0.0),
		TextColor:  mustColor(0, 0, 0),
		Icon:       "dialog-warning-symbolic",
		Sound:      sound.Beep1,
	}

	// Info: blue background with white text.
	Info = Style{
		Name:       "info",
		Background: mustColor(0.2, 0.5, 0.9),
		TextColor:  mustColor(1, 1, 1),
		Icon:       "dialog-information-symbolic",
		Sound:      sound.Confirmation2,
	}

	// Default: dark gray background with white text, no icon or sound.
	Default = Style{
		Name:       "default",
		Background: mustColor(0.2, 0.2, 0.2),
		TextColor:  mustColor(1, 1, 1),
	}
)

// ByName looks up a preset by its name.
func ByName(name string) (Style, error) {
	for _, s := range []Style{Success, Error, Warning, Info, Default} {
		if s.Name == name {
			return s, nil
		}
	}
	return Style{}, fmt.Errorf("unknown style %q", name)
}

// Apply overlays the preset onto p, filling only fields the caller left
// unset.
func (s Style) Apply(p *toast.Params) {
	if p.Background == nil {
		bg := s.Background
		p.Background = &bg
	}
	if p.TextColor == nil {
		tc := s.TextColor
		p.TextColor = &tc
	}
	if p.Icon == "" {
		p.Icon = s.Icon
	}
	if p.Sound == "" {
		p.Sound = s.Sound
	}
}
