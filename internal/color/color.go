// Package color parses and formats toast colors.
//
// Colors are accepted either as hex strings ("#RRGGBB" or "#RRGGBBAA", the
// leading marker is required) or as 3- or 4-component float tuples with every
// component in [0, 1]. Internally the RGB channels are held in a
// colorful.Color so round-trips through hex stay within 1/255 precision.
package color

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
)

// Color is an RGB color with an optional alpha channel.
type Color struct {
	rgb      colorful.Color
	alpha    float64
	hasAlpha bool
}

// New creates an opaque color from 0-1 float components.
// Components outside [0, 1] are rejected.
func New(r, g, b float64) (Color, error) {
	return FromComponents([]float64{r, g, b})
}

// FromComponents creates a color from a 3- or 4-component float tuple.
// The fourth component, when present, is the alpha channel.
func FromComponents(components []float64) (Color, error) {
	if len(components) != 3 && len(components) != 4 {
		return Color{}, fmt.Errorf("color tuple must have 3 or 4 components, got %d", len(components))
	}
	for i, v := range components {
		if v < 0 || v > 1 {
			return Color{}, fmt.Errorf("color component %d out of [0,1] range: %v", i, v)
		}
	}

	c := Color{
		rgb: colorful.Color{R: components[0], G: components[1], B: components[2]},
	}
	if len(components) == 4 {
		c.alpha = components[3]
		c.hasAlpha = true
	}
	return c, nil
}

// ParseHex parses a "#RRGGBB" or "#RRGGBBAA" hex string.
func ParseHex(s string) (Color, error) {
	if !strings.HasPrefix(s, "#") {
		return Color{}, fmt.Errorf("hex color %q must start with '#'", s)
	}

	digits := s[1:]
	switch len(digits) {
	case 6:
		rgb, err := colorful.Hex(s)
		if err != nil {
			return Color{}, fmt.Errorf("invalid hex color %q: %w", s, err)
		}
		return Color{rgb: rgb}, nil
	case 8:
		rgb, err := colorful.Hex("#" + digits[:6])
		if err != nil {
			return Color{}, fmt.Errorf("invalid hex color %q: %w", s, err)
		}
		a, err := strconv.ParseUint(digits[6:], 16, 8)
		if err != nil {
			return Color{}, fmt.Errorf("invalid alpha in hex color %q: %w", s, err)
		}
		return Color{rgb: rgb, alpha: float64(a) / 255, hasAlpha: true}, nil
	default:
		return Color{}, fmt.Errorf("hex color %q must have 6 or 8 hex digits", s)
	}
}

// Parse accepts either a hex string or a comma-separated float tuple
// such as "0.2,0.8,0.3" or "1,1,1,0.5".
func Parse(s string) (Color, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return Color{}, fmt.Errorf("empty color value")
	}
	if strings.HasPrefix(s, "#") {
		return ParseHex(s)
	}
	if strings.Contains(s, ",") {
		parts := strings.Split(s, ",")
		components := make([]float64, 0, len(parts))
		for _, p := range parts {
			v, err := strconv.ParseFloat(strings.TrimSpace(p), 64)
			if err != nil {
				return Color{}, fmt.Errorf("invalid color component %q: %w", p, err)
			}
			components = append(components, v)
		}
		return FromComponents(components)
	}
	return Color{}, fmt.Errorf("invalid color %q: expected \"#RRGGBB[AA]\" or a float tuple", s)
}

// Hex returns the color as "#RRGGBB", or "#RRGGBBAA" when an alpha
// channel is present.
func (c Color) Hex() string {
	hex := strings.ToUpper(strings.TrimPrefix(c.rgb.Clamped().Hex(), "#"))
	if c.hasAlpha {
		hex += fmt.Sprintf("%02X", int(c.alpha*255+0.5))
	}
	return "#" + hex
}

// RGBA returns the 0-1 float components. Alpha is 1 when no alpha
// channel was given.
func (c Color) RGBA() (r, g, b, a float64) {
	a = 1
	if c.hasAlpha {
		a = c.alpha
	}
	return c.rgb.R, c.rgb.G, c.rgb.B, a
}

// HasAlpha reports whether an explicit alpha channel was provided.
func (c Color) HasAlpha() bool {
	return c.hasAlpha
}

// String implements fmt.Stringer.
func (c Color) String() string {
	return c.Hex()
}
