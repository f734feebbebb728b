package color

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_ValidComponents(t *testing.T) {
	c, err := New(0.2, 0.8, 0.3)
	require.NoError(t, err)

	r, g, b, a := c.RGBA()
	assert.Equal(t, 0.2, r)
	assert.Equal(t, 0.8, g)
	assert.Equal(t, 0.3, b)
	assert.Equal(t, 1.0, a)
	assert.False(t, c.HasAlpha())
}

func TestFromComponents_OutOfRange(t *testing.T) {
	_, err := FromComponents([]float64{1.5, 0.5, 0.5})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "component 0 out of [0,1] range")

	_, err = FromComponents([]float64{0.5, 0.5, -0.1})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "component 2")
}

func TestFromComponents_WrongArity(t *testing.T) {
	_, err := FromComponents([]float64{0.5, 0.5})
	assert.Error(t, err)

	_, err = FromComponents([]float64{0.5, 0.5, 0.5, 0.5, 0.5})
	assert.Error(t, err)
}

func TestFromComponents_Alpha(t *testing.T) {
	c, err := FromComponents([]float64{1, 1, 1, 0.5})
	require.NoError(t, err)
	assert.True(t, c.HasAlpha())

	_, _, _, a := c.RGBA()
	assert.Equal(t, 0.5, a)
}

func TestParseHex_RoundTrip(t *testing.T) {
	for _, hex := range []string{"#336699", "#000000", "#FFFFFF", "#1A2B3C"} {
		c, err := ParseHex(hex)
		require.NoError(t, err, hex)
		assert.Equal(t, hex, c.Hex())
	}
}

func TestParseHex_WithAlpha(t *testing.T) {
	c, err := ParseHex("#33669980")
	require.NoError(t, err)
	assert.True(t, c.HasAlpha())
	assert.Equal(t, "#33669980", c.Hex())
}

func TestParseHex_RequiresMarker(t *testing.T) {
	_, err := ParseHex("336699")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "must start with '#'")
}

func TestParseHex_BadLength(t *testing.T) {
	for _, s := range []string{"#fff", "#12345", "#1234567"} {
		_, err := ParseHex(s)
		assert.Error(t, err, s)
	}
}

func TestParse_Tuple(t *testing.T) {
	c, err := Parse("0.2, 0.8, 0.3")
	require.NoError(t, err)

	r, g, b, _ := c.RGBA()
	assert.Equal(t, 0.2, r)
	assert.Equal(t, 0.8, g)
	assert.Equal(t, 0.3, b)
}

func TestParse_Hex(t *testing.T) {
	c, err := Parse("#FF0000")
	require.NoError(t, err)

	r, g, b, _ := c.RGBA()
	assert.InDelta(t, 1.0, r, 1.0/255)
	assert.InDelta(t, 0.0, g, 1.0/255)
	assert.InDelta(t, 0.0, b, 1.0/255)
}

func TestParse_Invalid(t *testing.T) {
	for _, s := range []string{"", "red", "0.5", "1,2,garbage"} {
		_, err := Parse(s)
		assert.Error(t, err, "%q should be rejected", s)
	}
}

func TestHex_ComponentPrecision(t *testing.T) {
	// Hex output quantizes to 1/255; round-tripping must stay within
	// that precision.
	orig, err := New(0.2, 0.5, 0.9)
	require.NoError(t, err)

	parsed, err := ParseHex(orig.Hex())
	require.NoError(t, err)

	r1, g1, b1, _ := orig.RGBA()
	r2, g2, b2, _ := parsed.RGBA()
	assert.InDelta(t, r1, r2, 1.0/255)
	assert.InDelta(t, g1, g2, 1.0/255)
	assert.InDelta(t, b1, b2, 1.0/255)
}
