package autosize

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEstimate_ShortMessage(t *testing.T) {
	// "Hello World" is 11 runes at font size 16: natural width is
	// 11*9.6 + 40 = 145.6, single line height 16*1.2 + 24 = 43.2,
	// floored to 44.
	res := Estimate("Hello World", 16, false, 0, 0)

	assert.InDelta(t, 145.6, res.Width, 0.01)
	assert.Equal(t, 44.0, res.Height)
	assert.Equal(t, 16.0, res.CornerRadius)
}

func TestEstimate_EnforcesMinWidth(t *testing.T) {
	res := Estimate("Hi", 16, false, 0, 0)
	assert.Equal(t, float64(DefaultMinWidth), res.Width)
}

func TestEstimate_WrapsAtMaxWidth(t *testing.T) {
	long := strings.Repeat("x", 100)
	res := Estimate(long, 16, false, 0, 0)

	// 100 runes at 9.6pt each cannot fit in 400pt: 37 chars per line,
	// 3 lines at 16*1.4 each plus padding.
	assert.Equal(t, float64(DefaultMaxWidth), res.Width)
	assert.InDelta(t, 91.2, res.Height, 0.01)
}

func TestEstimate_IconReservesSpace(t *testing.T) {
	without := Estimate("Hello World", 16, false, 0, 0)
	with := Estimate("Hello World", 16, true, 0, 0)

	assert.Equal(t, without.Width+32, with.Width)
}

func TestEstimate_CustomBounds(t *testing.T) {
	res := Estimate("Hi", 16, false, 250, 300)
	assert.Equal(t, 250.0, res.Width)

	long := strings.Repeat("word ", 40)
	res = Estimate(long, 16, false, 250, 300)
	assert.Equal(t, 300.0, res.Width)
}

func TestEstimate_RadiusScalesWithSmallHeights(t *testing.T) {
	// Height is floored to 44, so the radius cap of 16 always wins over
	// height/2 - 2 = 20.
	res := Estimate("x", 8, false, 0, 0)
	assert.Equal(t, 44.0, res.Height)
	assert.Equal(t, 16.0, res.CornerRadius)
}

func TestEstimate_RuneCount(t *testing.T) {
	// Multi-byte runes count once, not per byte.
	ascii := Estimate("aaaa", 16, false, 0, 0)
	multi := Estimate("ääää", 16, false, 0, 0)
	assert.Equal(t, ascii.Width, multi.Width)
}

func TestEstimate_HeightCappedForVeryLongMessages(t *testing.T) {
	// 2000 wrapped runes would estimate far past the renderer's tallest
	// accepted height; the result must stay within it.
	res := Estimate(strings.Repeat("x", 2000), 16, false, 0, 0)

	assert.Equal(t, float64(DefaultMaxWidth), res.Width)
	assert.Equal(t, 500.0, res.Height)
	assert.Equal(t, 16.0, res.CornerRadius)
}

func TestEstimate_TallWrappedMessage(t *testing.T) {
	long := strings.Repeat("x", 370)
	res := Estimate(long, 16, false, 0, 0)

	// 10 lines of wrapped text.
	assert.InDelta(t, 16*1.4*10+24, res.Height, 0.01)
	assert.Equal(t, 16.0, res.CornerRadius)
}
