package toast

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEffectiveDefaults(t *testing.T) {
	p := &Params{Message: "hi"}

	assert.Equal(t, DefaultWidth, p.EffectiveWidth())
	assert.Equal(t, DefaultHeight, p.EffectiveHeight())
	assert.Equal(t, DefaultFontSize, p.EffectiveFontSize())
	assert.Equal(t, DefaultDisplayDuration, p.EffectiveDisplayDuration())
	assert.Equal(t, DefaultFadeInDuration, p.EffectiveFadeIn())
	assert.Equal(t, DefaultFadeOutDuration, p.EffectiveFadeOut())
	assert.Equal(t, DefaultWindowLevel, p.EffectiveLevel())
}

func TestEffectiveExplicitValues(t *testing.T) {
	p := &Params{
		Message:         "hi",
		Width:           Float(320),
		FontSize:        Float(20),
		DisplayDuration: Duration(5 * time.Second),
		Level:           LevelMax,
	}

	assert.Equal(t, 320.0, p.EffectiveWidth())
	assert.Equal(t, 20.0, p.EffectiveFontSize())
	assert.Equal(t, 5*time.Second, p.EffectiveDisplayDuration())
	assert.Equal(t, LevelMax, p.EffectiveLevel())
}

func TestClone_DeepCopy(t *testing.T) {
	p := &Params{
		Message:        "hi",
		Width:          Float(300),
		FadeInDuration: Duration(time.Second),
		Coords:         &Coordinates{X: 10, Y: 20},
	}

	clone := p.Clone()
	require.NotNil(t, clone.Width)
	*clone.Width = 999
	*clone.FadeInDuration = 9 * time.Second
	clone.Coords.X = 777

	assert.Equal(t, 300.0, *p.Width)
	assert.Equal(t, time.Second, *p.FadeInDuration)
	assert.Equal(t, 10.0, p.Coords.X)
}

func TestClone_NilFieldsStayNil(t *testing.T) {
	clone := (&Params{Message: "hi"}).Clone()
	assert.Nil(t, clone.Width)
	assert.Nil(t, clone.Height)
	assert.Nil(t, clone.Coords)
	assert.Nil(t, clone.Background)
}

func TestApplyAutoSize_SetsGeometry(t *testing.T) {
	p := &Params{Message: "Hello World", AutoSize: true}
	require.NoError(t, p.Validate())

	p.ApplyAutoSize()

	require.NotNil(t, p.Width)
	require.NotNil(t, p.Height)
	require.NotNil(t, p.CornerRadius)
	assert.GreaterOrEqual(t, *p.Width, 100.0)
	assert.LessOrEqual(t, *p.Width, 400.0)
	assert.GreaterOrEqual(t, *p.Height, 44.0)
}

func TestApplyAutoSize_KeepsExplicitRadius(t *testing.T) {
	p := &Params{Message: "Hello World", AutoSize: true, CornerRadius: Float(4)}
	p.ApplyAutoSize()
	assert.Equal(t, 4.0, *p.CornerRadius)
}

func TestApplyAutoSize_NoopWithoutFlag(t *testing.T) {
	p := &Params{Message: "Hello World"}
	p.ApplyAutoSize()
	assert.Nil(t, p.Width)
	assert.Nil(t, p.Height)
}

func TestApplyAutoSize_LongMessageStaysRenderable(t *testing.T) {
	// The merged geometry is re-validated by the renderer process, so
	// even an extreme message must land inside the accepted ranges.
	p := &Params{Message: strings.Repeat("x", 2000), AutoSize: true}
	require.NoError(t, p.Validate())

	p.ApplyAutoSize()

	require.NotNil(t, p.Height)
	assert.GreaterOrEqual(t, *p.Height, float64(MinHeightValue))
	assert.LessOrEqual(t, *p.Height, float64(MaxHeightValue))
	assert.GreaterOrEqual(t, *p.Width, float64(MinWidthValue))
	assert.LessOrEqual(t, *p.Width, float64(MaxWidthValue))
}

func TestApplyAutoSize_HonorsBounds(t *testing.T) {
	p := &Params{
		Message:  "hi",
		AutoSize: true,
		MinWidth: Float(250),
		MaxWidth: Float(300),
	}
	p.ApplyAutoSize()
	assert.Equal(t, 250.0, *p.Width)
}
