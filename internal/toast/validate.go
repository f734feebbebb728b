package toast

import (
	"slices"
	"time"

	"github.com/toasthud/toasthud/internal/sound"
)

// Validate checks the record field by field, then cross-field, and
// returns a ConfigError for the first (most specific) violated rule.
// Nothing is clamped; the caller must correct the input and resubmit.
func (p *Params) Validate() error {
	if p.Message == "" {
		return configErrorf("message must be non-empty")
	}

	if err := p.validateRanges(); err != nil {
		return err
	}
	if err := p.validatePosition(); err != nil {
		return err
	}
	if err := p.validateLevel(); err != nil {
		return err
	}
	if err := p.validateAutoSize(); err != nil {
		return err
	}
	if err := p.validateTiming(); err != nil {
		return err
	}
	if err := sound.Validate(p.Sound); err != nil {
		return configErrorf("invalid sound: %v", err)
	}
	if p.Check && p.NonBlocking {
		return configErrorf("check requires blocking mode: exit status is unobservable without blocking")
	}

	return nil
}

// validateRanges checks every present numeric field against its closed
// valid range.
func (p *Params) validateRanges() error {
	type rangeCheck struct {
		name     string
		value    *float64
		min, max float64
	}
	checks := []rangeCheck{
		{"width", p.Width, MinWidthValue, MaxWidthValue},
		{"height", p.Height, MinHeightValue, MaxHeightValue},
		{"font size", p.FontSize, MinFontSize, MaxFontSize},
		{"corner radius", p.CornerRadius, MinRadius, MaxRadius},
		{"min width", p.MinWidth, MinWidthValue, MaxWidthValue},
		{"max width", p.MaxWidth, MinWidthValue, MaxWidthValue},
	}
	for _, c := range checks {
		if c.value == nil {
			continue
		}
		if *c.value < c.min || *c.value > c.max {
			return configErrorf("%s must be between %g and %g, got %g", c.name, c.min, c.max, *c.value)
		}
	}

	if p.DisplayDuration != nil {
		if *p.DisplayDuration < MinDisplayDuration || *p.DisplayDuration > MaxDisplayDuration {
			return configErrorf("display duration must be between %s and %s, got %s",
				MinDisplayDuration, MaxDisplayDuration, *p.DisplayDuration)
		}
	}
	for _, fade := range []struct {
		name  string
		value *time.Duration
	}{
		{"fade-in duration", p.FadeInDuration},
		{"fade-out duration", p.FadeOutDuration},
	} {
		if fade.value == nil {
			continue
		}
		if *fade.value < 0 || *fade.value > MaxFadeDuration {
			return configErrorf("%s must be between 0s and %s, got %s", fade.name, MaxFadeDuration, *fade.value)
		}
	}

	return nil
}

// validatePosition checks the named anchor and rejects a record carrying
// both an anchor and explicit coordinates.
func (p *Params) validatePosition() error {
	if p.Anchor != "" && !slices.Contains(ValidPositions(), p.Anchor) {
		return configErrorf("unrecognized position %q, must be one of: %v", p.Anchor, ValidPositions())
	}
	if p.Anchor != "" && p.Coords != nil {
		return configErrorf("position anchor and explicit coordinates are mutually exclusive")
	}
	return nil
}

// validateLevel checks the window level enumeration.
func (p *Params) validateLevel() error {
	if p.Level != "" && !slices.Contains(ValidWindowLevels(), p.Level) {
		return configErrorf("invalid window level %q, must be one of: %v", p.Level, ValidWindowLevels())
	}
	return nil
}

// validateAutoSize enforces the auto-size cross-field rules.
func (p *Params) validateAutoSize() error {
	if p.AutoSize {
		if p.Width != nil {
			return configErrorf("auto-size and explicit width are mutually exclusive")
		}
		if p.Height != nil {
			return configErrorf("auto-size and explicit height are mutually exclusive")
		}
		if p.MinWidth != nil && p.MaxWidth != nil && *p.MinWidth > *p.MaxWidth {
			return configErrorf("min width %g exceeds max width %g", *p.MinWidth, *p.MaxWidth)
		}
		return nil
	}

	if p.MinWidth != nil {
		return configErrorf("min width is only meaningful with auto-size enabled")
	}
	if p.MaxWidth != nil {
		return configErrorf("max width is only meaningful with auto-size enabled")
	}
	return nil
}

// validateTiming rejects fade durations that sum past the display
// duration, since the toast would never reach full opacity. Unset fields
// resolve to the renderer defaults before the comparison.
func (p *Params) validateTiming() error {
	display := p.EffectiveDisplayDuration()
	fadeIn := p.EffectiveFadeIn()
	fadeOut := p.EffectiveFadeOut()

	if fadeIn+fadeOut > display {
		return configErrorf("fade-in (%s) plus fade-out (%s) exceeds display duration (%s)",
			fadeIn, fadeOut, display)
	}
	return nil
}
