// Package toast defines the toast parameter record and its validation.
//
// A Params value is constructed once per notification request, validated,
// consumed to produce a renderer invocation, and discarded. There is no
// persistence and no shared state.
package toast

import (
	"time"

	"github.com/toasthud/toasthud/internal/color"
)

// Position is a named screen anchor for a toast.
type Position string

const (
	PositionTopRight    Position = "top-right"
	PositionTopLeft     Position = "top-left"
	PositionBottomRight Position = "bottom-right"
	PositionBottomLeft  Position = "bottom-left"
	PositionCenter      Position = "center"
)

// ValidPositions returns all valid named anchors.
func ValidPositions() []Position {
	return []Position{
		PositionTopRight,
		PositionTopLeft,
		PositionBottomRight,
		PositionBottomLeft,
		PositionCenter,
	}
}

// WindowLevel controls how the toast window stacks against other windows.
type WindowLevel string

const (
	LevelNormal      WindowLevel = "normal"
	LevelFloating    WindowLevel = "floating"
	LevelStatus      WindowLevel = "status"
	LevelModal       WindowLevel = "modal"
	LevelMax         WindowLevel = "max"
	LevelScreensaver WindowLevel = "screensaver"
)

// ValidWindowLevels returns all valid window levels.
func ValidWindowLevels() []WindowLevel {
	return []WindowLevel{
		LevelNormal,
		LevelFloating,
		LevelStatus,
		LevelModal,
		LevelMax,
		LevelScreensaver,
	}
}

// Coordinates is an explicit screen position, measured from the
// top-left corner of the work area.
type Coordinates struct {
	X float64
	Y float64
}

// Closed valid ranges for numeric fields. Values outside a range are
// rejected by Validate, never clamped.
const (
	MinWidthValue  = 50
	MaxWidthValue  = 1000
	MinHeightValue = 30
	MaxHeightValue = 500
	MinFontSize    = 8
	MaxFontSize    = 72
	MinRadius      = 0
	MaxRadius      = 100

	MinDisplayDuration = 100 * time.Millisecond
	MaxDisplayDuration = 60 * time.Second
	MaxFadeDuration    = 5 * time.Second
)

// Renderer defaults, applied by the HUD executable when a field is unset.
// The validator also falls back to these when resolving cross-field checks
// on partially specified records.
const (
	DefaultWidth           = 280.0
	DefaultHeight          = 80.0
	DefaultFontSize        = 16.0
	DefaultDisplayDuration = 2 * time.Second
	DefaultFadeInDuration  = 300 * time.Millisecond
	DefaultFadeOutDuration = 500 * time.Millisecond
	DefaultWindowLevel     = LevelFloating
)

// Params is the display parameter record for a single toast.
// Optional numeric fields use pointers so an explicit zero (for example a
// corner radius of 0, or a fade duration of 0) stays distinguishable from
// "not set".
type Params struct {
	// Message is the text to display. Required, non-empty.
	Message string

	// Explicit dimensions, in points. Incompatible with AutoSize.
	Width  *float64
	Height *float64

	// Colors. Nil means the renderer default (dark gray on white).
	Background *color.Color
	TextColor  *color.Color

	// Position: either a named anchor or explicit coordinates, not both.
	Anchor Position
	Coords *Coordinates

	FontSize     *float64
	CornerRadius *float64

	// Timing. Fade-in plus fade-out must not exceed the display duration.
	DisplayDuration *time.Duration
	FadeInDuration  *time.Duration
	FadeOutDuration *time.Duration

	Level WindowLevel

	// Icon is a themed icon name or an image file path.
	Icon string

	// ClickToDismiss closes the toast early on mouse click.
	ClickToDismiss bool

	// AutoSize computes Width/Height (and a default CornerRadius) from the
	// message text. MinWidth/MaxWidth bound the result and are only
	// meaningful when AutoSize is set.
	AutoSize bool
	MinWidth *float64
	MaxWidth *float64

	// Sound is a bundled catalog name or an absolute audio file path.
	Sound string

	// Execution mode for the renderer process. Check requires blocking,
	// since the exit status is unobservable otherwise.
	NonBlocking bool
	Check       bool
}

// Float returns a pointer to v, for populating optional fields.
func Float(v float64) *float64 { return &v }

// Duration returns a pointer to d, for populating optional fields.
func Duration(d time.Duration) *time.Duration { return &d }

// EffectiveDisplayDuration returns the display duration, falling back to
// the renderer default when unset.
func (p *Params) EffectiveDisplayDuration() time.Duration {
	if p.DisplayDuration != nil {
		return *p.DisplayDuration
	}
	return DefaultDisplayDuration
}

// EffectiveFadeIn returns the fade-in duration, falling back to the
// renderer default when unset.
func (p *Params) EffectiveFadeIn() time.Duration {
	if p.FadeInDuration != nil {
		return *p.FadeInDuration
	}
	return DefaultFadeInDuration
}

// EffectiveFadeOut returns the fade-out duration, falling back to the
// renderer default when unset.
func (p *Params) EffectiveFadeOut() time.Duration {
	if p.FadeOutDuration != nil {
		return *p.FadeOutDuration
	}
	return DefaultFadeOutDuration
}

// EffectiveFontSize returns the font size, falling back to the renderer
// default when unset.
func (p *Params) EffectiveFontSize() float64 {
	if p.FontSize != nil {
		return *p.FontSize
	}
	return DefaultFontSize
}

// EffectiveWidth returns the width, falling back to the renderer default.
func (p *Params) EffectiveWidth() float64 {
	if p.Width != nil {
		return *p.Width
	}
	return DefaultWidth
}

// EffectiveHeight returns the height, falling back to the renderer default.
func (p *Params) EffectiveHeight() float64 {
	if p.Height != nil {
		return *p.Height
	}
	return DefaultHeight
}

// EffectiveLevel returns the window level, falling back to the default.
func (p *Params) EffectiveLevel() WindowLevel {
	if p.Level != "" {
		return p.Level
	}
	return DefaultWindowLevel
}

// Clone returns a deep copy of the record.
func (p *Params) Clone() *Params {
	clone := *p
	copyFloat := func(v *float64) *float64 {
		if v == nil {
			return nil
		}
		c := *v
		return &c
	}
	copyDur := func(v *time.Duration) *time.Duration {
		if v == nil {
			return nil
		}
		c := *v
		return &c
	}
	clone.Width = copyFloat(p.Width)
	clone.Height = copyFloat(p.Height)
	clone.FontSize = copyFloat(p.FontSize)
	clone.CornerRadius = copyFloat(p.CornerRadius)
	clone.MinWidth = copyFloat(p.MinWidth)
	clone.MaxWidth = copyFloat(p.MaxWidth)
	clone.DisplayDuration = copyDur(p.DisplayDuration)
	clone.FadeInDuration = copyDur(p.FadeInDuration)
	clone.FadeOutDuration = copyDur(p.FadeOutDuration)
	if p.Background != nil {
		bg := *p.Background
		clone.Background = &bg
	}
	if p.TextColor != nil {
		tc := *p.TextColor
		clone.TextColor = &tc
	}
	if p.Coords != nil {
		xy := *p.Coords
		clone.Coords = &xy
	}
	return &clone
}
