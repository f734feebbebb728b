package display

import (
	"fmt"
	"strings"

	"github.com/toasthud/toasthud/internal/toast"
)

// Renderer fallback colors: dark gray background, white text.
var (
	defaultBackground = [4]float64{0.2, 0.2, 0.2, 1.0}
	defaultTextColor  = [4]float64{1.0, 1.0, 1.0, 1.0}
)

// GenerateCSS builds the stylesheet for a toast window from its
// parameters. The corner radius defaults to half the height (a pill
// shape) when unset.
func GenerateCSS(p *toast.Params) string {
	bg := defaultBackground
	if p.Background != nil {
		r, g, b, a := p.Background.RGBA()
		bg = [4]float64{r, g, b, a}
	}
	fg := defaultTextColor
	if p.TextColor != nil {
		r, g, b, a := p.TextColor.RGBA()
		fg = [4]float64{r, g, b, a}
	}

	radius := p.EffectiveHeight() / 2
	if p.CornerRadius != nil {
		radius = *p.CornerRadius
	}

	var b strings.Builder
	b.WriteString("window.toast-popup {\n")
	b.WriteString("  background-color: transparent;\n")
	b.WriteString("}\n")
	fmt.Fprintf(&b, ".toast-box {\n")
	fmt.Fprintf(&b, "  background-color: %s;\n", cssRGBA(bg))
	fmt.Fprintf(&b, "  border-radius: %gpx;\n", radius)
	fmt.Fprintf(&b, "  padding: 12px 20px;\n")
	b.WriteString("}\n")
	fmt.Fprintf(&b, ".toast-label {\n")
	fmt.Fprintf(&b, "  color: %s;\n", cssRGBA(fg))
	fmt.Fprintf(&b, "  font-size: %gpt;\n", p.EffectiveFontSize())
	b.WriteString("}\n")

	return b.String()
}

// cssRGBA formats 0-1 float components as a CSS rgba() value.
func cssRGBA(c [4]float64) string {
	return fmt.Sprintf("rgba(%d, %d, %d, %.3f)",
		int(c[0]*255+0.5), int(c[1]*255+0.5), int(c[2]*255+0.5), c[3])
}
