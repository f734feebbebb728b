// Package autosize estimates toast geometry from message text.
//
// The estimator is a presentation heuristic, not a text-layout engine: it
// assumes a fixed average glyph width per font size and does not account for
// variable glyph widths, multi-byte scripts, or explicit line breaks in the
// message. It is deterministic and free of I/O.
package autosize

import "math"

// Fixed layout constants, in points.
const (
	// glyphWidthFactor approximates the average glyph width as a fraction
	// of the font size.
	glyphWidthFactor = 0.6

	// iconSpacing is added to the font size to reserve the icon box plus
	// its trailing gap.
	iconSpacing = 16

	horizontalPadding = 40 // 20 per side
	verticalPadding   = 24 // 12 top and bottom

	singleLineHeightFactor  = 1.2
	wrappedLineHeightFactor = 1.4

	// minHeight is the absolute floor for the computed height.
	minHeight = 44

	// maxHeight caps the computed height at the tallest value the
	// renderer accepts, so merged geometry always passes validation.
	maxHeight = 500

	// maxCornerRadius caps the computed corner radius.
	maxCornerRadius = 16
)

// Default width bounds applied when the caller supplies none.
const (
	DefaultMinWidth = 100
	DefaultMaxWidth = 400
)

// Result holds the estimated toast geometry.
type Result struct {
	Width        float64
	Height       float64
	CornerRadius float64
}

// Estimate computes (width, height, corner radius) for a toast showing
// message at fontSize points, optionally reserving space for an icon,
// bounded to [minWidth, maxWidth].
//
// Message length is measured in runes; non-Latin scripts with different
// average glyph widths will over- or under-estimate accordingly.
func Estimate(message string, fontSize float64, hasIcon bool, minWidth, maxWidth float64) Result {
	if minWidth <= 0 {
		minWidth = DefaultMinWidth
	}
	if maxWidth <= 0 {
		maxWidth = DefaultMaxWidth
	}

	length := float64(len([]rune(message)))
	glyphWidth := glyphWidthFactor * fontSize

	var iconSpace float64
	if hasIcon {
		iconSpace = fontSize + iconSpacing
	}

	naturalWidth := length*glyphWidth + iconSpace + horizontalPadding

	var width, height float64
	if naturalWidth <= maxWidth {
		width = math.Max(minWidth, naturalWidth)
		lineHeight := fontSize * singleLineHeightFactor
		height = lineHeight + verticalPadding
	} else {
		width = maxWidth
		availableTextWidth := maxWidth - iconSpace - horizontalPadding
		charsPerLine := math.Max(1, math.Floor(availableTextWidth/glyphWidth))
		lines := math.Max(1, math.Ceil(length/charsPerLine))
		lineHeight := fontSize * wrappedLineHeightFactor
		height = lineHeight*lines + verticalPadding
	}

	if height < minHeight {
		height = minHeight
	}
	if height > maxHeight {
		height = maxHeight
	}

	radius := math.Min(maxCornerRadius, height/2-2)

	return Result{
		Width:        width,
		Height:       height,
		CornerRadius: radius,
	}
}
