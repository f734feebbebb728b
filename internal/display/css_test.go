package display

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/toasthud/toasthud/internal/color"
	"github.com/toasthud/toasthud/internal/toast"
)

func TestGenerateCSS_Defaults(t *testing.T) {
	p := &toast.Params{Message: "hi"}
	css := GenerateCSS(p)

	assert.Contains(t, css, "background-color: transparent")
	assert.Contains(t, css, "background-color: rgba(51, 51, 51, 1.000)")
	assert.Contains(t, css, "color: rgba(255, 255, 255, 1.000)")
	assert.Contains(t, css, "font-size: 16pt")
	// Default height 80 gives a pill radius of 40.
	assert.Contains(t, css, "border-radius: 40px")
}

func TestGenerateCSS_ExplicitColors(t *testing.T) {
	bg, err := color.New(0.2, 0.8, 0.3)
	require.NoError(t, err)
	fg, err := color.New(0, 0, 0)
	require.NoError(t, err)

	p := &toast.Params{
		Message:    "hi",
		Background: &bg,
		TextColor:  &fg,
	}
	css := GenerateCSS(p)

	assert.Contains(t, css, "rgba(51, 204, 77, 1.000)")
	assert.Contains(t, css, "color: rgba(0, 0, 0, 1.000)")
}

func TestGenerateCSS_AlphaChannel(t *testing.T) {
	bg, err := color.FromComponents([]float64{0.1, 0.1, 0.1, 0.5})
	require.NoError(t, err)

	p := &toast.Params{Message: "hi", Background: &bg}
	assert.Contains(t, GenerateCSS(p), "0.500)")
}

func TestGenerateCSS_ExplicitRadiusWins(t *testing.T) {
	p := &toast.Params{
		Message:      "hi",
		Height:       toast.Float(100),
		CornerRadius: toast.Float(0),
	}
	assert.Contains(t, GenerateCSS(p), "border-radius: 0px")
}

func TestGenerateCSS_FontSize(t *testing.T) {
	p := &toast.Params{Message: "hi", FontSize: toast.Float(24)}
	assert.Contains(t, GenerateCSS(p), "font-size: 24pt")
}

func TestAbortFade_DismissDuringFadeIn(t *testing.T) {
	// Once a fade-out has started, a still-ticking fade-in must stop so
	// the two animations never fight over the window opacity.
	p := &Popup{fadingOut: true}
	assert.True(t, p.abortFade(0, 1))
	assert.False(t, p.abortFade(0.6, 0), "the fade-out itself keeps ticking")

	p = &Popup{}
	assert.False(t, p.abortFade(0, 1))

	p = &Popup{closed: true}
	assert.True(t, p.abortFade(0, 1))
	assert.True(t, p.abortFade(1, 0))
}

func TestLevelToLayer(t *testing.T) {
	// Spot-check the level collapse: elevated levels land on the overlay
	// layer, the rest on top.
	assert.Equal(t, levelToLayer(toast.LevelModal), levelToLayer(toast.LevelMax))
	assert.NotEqual(t, levelToLayer(toast.LevelNormal), levelToLayer(toast.LevelModal))
	assert.Equal(t, levelToLayer(toast.LevelFloating), levelToLayer(toast.LevelStatus))
}
