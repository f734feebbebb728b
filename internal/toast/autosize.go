package toast

import "github.com/toasthud/toasthud/internal/autosize"

// ApplyAutoSize merges the estimated geometry into the record when
// auto-size is requested. An explicitly set corner radius always wins over
// the computed one. Call after Validate: the estimator assumes the
// auto-size cross-field rules already hold.
func (p *Params) ApplyAutoSize() {
	if !p.AutoSize {
		return
	}

	var minWidth, maxWidth float64
	if p.MinWidth != nil {
		minWidth = *p.MinWidth
	}
	if p.MaxWidth != nil {
		maxWidth = *p.MaxWidth
	}

	res := autosize.Estimate(p.Message, p.EffectiveFontSize(), p.Icon != "", minWidth, maxWidth)

	p.Width = &res.Width
	p.Height = &res.Height
	if p.CornerRadius == nil {
		p.CornerRadius = &res.CornerRadius
	}
}
