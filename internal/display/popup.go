package display

import (
	"log/slog"
	"os"
	"time"

	layershell "github.com/diamondburned/gotk4-layer-shell/pkg/gtk4layershell"
	"github.com/diamondburned/gotk4/pkg/gdk/v4"
	"github.com/diamondburned/gotk4/pkg/glib/v2"
	"github.com/diamondburned/gotk4/pkg/gtk/v4"

	"github.com/toasthud/toasthud/internal/toast"
)

// frameInterval is the fade animation step, in milliseconds.
const frameInterval = 16

// Popup is a single toast window.
type Popup struct {
	window *gtk.Window
	box    *gtk.Box
	label  *gtk.Label
	icon   *gtk.Image
	params *toast.Params
	logger *slog.Logger

	// State
	fadingOut bool
	closed    bool
	onDone    func()
}

// NewPopup creates the toast window for the given (validated, auto-sized)
// parameters.
func NewPopup(app *gtk.Application, p *toast.Params, logger *slog.Logger) (*Popup, error) {
	if logger == nil {
		logger = slog.Default()
	}

	pop := &Popup{
		params: p,
		logger: logger,
	}

	pop.window = gtk.NewWindow()
	pop.window.SetApplication(app)
	pop.window.SetDecorated(false)
	pop.window.SetResizable(false)
	pop.window.AddCSSClass("toast-popup")
	pop.window.SetDefaultSize(int(p.EffectiveWidth()), int(p.EffectiveHeight()))

	// Initialize layer-shell
	layershell.InitForWindow(pop.window)
	layershell.SetLayer(pop.window, levelToLayer(p.EffectiveLevel()))
	layershell.SetExclusiveZone(pop.window, 0) // Don't reserve space
	layershell.SetKeyboardMode(pop.window, layershell.LayerShellKeyboardModeNone)
	layershell.SetNamespace(pop.window, "toasthud")

	pop.buildUI()
	pop.applyCSS()
	pop.applyAnchors()
	pop.connectSignals()

	return pop, nil
}

// buildUI constructs the widget hierarchy: a horizontal box holding an
// optional icon and the message label.
func (p *Popup) buildUI() {
	p.box = gtk.NewBox(gtk.OrientationHorizontal, 8)
	p.box.AddCSSClass("toast-box")
	p.box.SetHAlign(gtk.AlignFill)
	p.box.SetVAlign(gtk.AlignCenter)

	if p.params.Icon != "" {
		p.icon = gtk.NewImage()
		p.icon.AddCSSClass("toast-icon")
		p.icon.SetPixelSize(int(p.params.EffectiveFontSize() + 8))
		if _, err := os.Stat(p.params.Icon); err == nil {
			p.icon.SetFromFile(p.params.Icon)
		} else {
			p.icon.SetFromIconName(p.params.Icon)
		}
		p.box.Append(p.icon)
	}

	p.label = gtk.NewLabel(p.params.Message)
	p.label.AddCSSClass("toast-label")
	p.label.SetWrap(true)
	p.label.SetWrapMode(2) // PANGO_WRAP_WORD_CHAR
	p.label.SetJustify(gtk.JustifyCenter)
	p.label.SetHExpand(true)
	p.box.Append(p.label)

	p.window.SetChild(p.box)
}

// applyCSS installs the generated stylesheet for this window.
func (p *Popup) applyCSS() {
	provider := gtk.NewCSSProvider()
	provider.LoadFromString(GenerateCSS(p.params))

	display := gdk.DisplayGetDefault()
	if display == nil {
		p.logger.Warn("no display available, cannot apply styling")
		return
	}
	gtk.StyleContextAddProviderForDisplay(
		display,
		provider,
		gtk.STYLE_PROVIDER_PRIORITY_APPLICATION,
	)
}

// applyAnchors sets layer-shell anchors and margins for the configured
// position. Explicit coordinates anchor to the top-left corner with the
// coordinates as margins; no anchors at all centers the window.
func (p *Popup) applyAnchors() {
	const edgeMargin = 20

	if p.params.Coords != nil {
		layershell.SetAnchor(p.window, layershell.LayerShellEdgeTop, true)
		layershell.SetAnchor(p.window, layershell.LayerShellEdgeLeft, true)
		layershell.SetMargin(p.window, layershell.LayerShellEdgeLeft, int(p.params.Coords.X))
		layershell.SetMargin(p.window, layershell.LayerShellEdgeTop, int(p.params.Coords.Y))
		return
	}

	switch p.params.Anchor {
	case toast.PositionTopRight:
		layershell.SetAnchor(p.window, layershell.LayerShellEdgeTop, true)
		layershell.SetAnchor(p.window, layershell.LayerShellEdgeRight, true)
		layershell.SetMargin(p.window, layershell.LayerShellEdgeTop, edgeMargin)
		layershell.SetMargin(p.window, layershell.LayerShellEdgeRight, edgeMargin)

	case toast.PositionTopLeft:
		layershell.SetAnchor(p.window, layershell.LayerShellEdgeTop, true)
		layershell.SetAnchor(p.window, layershell.LayerShellEdgeLeft, true)
		layershell.SetMargin(p.window, layershell.LayerShellEdgeTop, edgeMargin)
		layershell.SetMargin(p.window, layershell.LayerShellEdgeLeft, edgeMargin)

	case toast.PositionBottomRight:
		layershell.SetAnchor(p.window, layershell.LayerShellEdgeBottom, true)
		layershell.SetAnchor(p.window, layershell.LayerShellEdgeRight, true)
		layershell.SetMargin(p.window, layershell.LayerShellEdgeBottom, edgeMargin)
		layershell.SetMargin(p.window, layershell.LayerShellEdgeRight, edgeMargin)

	case toast.PositionBottomLeft:
		layershell.SetAnchor(p.window, layershell.LayerShellEdgeBottom, true)
		layershell.SetAnchor(p.window, layershell.LayerShellEdgeLeft, true)
		layershell.SetMargin(p.window, layershell.LayerShellEdgeBottom, edgeMargin)
		layershell.SetMargin(p.window, layershell.LayerShellEdgeLeft, edgeMargin)

	case toast.PositionCenter:
		// No anchors: layer-shell centers the surface.
	}
}

// connectSignals wires up the optional click-to-dismiss gesture.
func (p *Popup) connectSignals() {
	if !p.params.ClickToDismiss {
		return
	}

	clickCtrl := gtk.NewGestureClick()
	clickCtrl.SetButton(0) // All buttons
	clickCtrl.ConnectReleased(func(nPress int, x, y float64) {
		p.Dismiss()
	})
	p.window.AddController(clickCtrl)
}

// Present shows the window and runs the fade-in/hold/fade-out timeline.
// done is invoked once the toast has fully faded out and closed.
func (p *Popup) Present(done func()) {
	p.onDone = done

	fadeIn := p.params.EffectiveFadeIn()
	fadeOut := p.params.EffectiveFadeOut()
	display := p.params.EffectiveDisplayDuration()

	// Fade-out begins so the window disappears exactly at the end of the
	// display duration. Validation guarantees hold >= 0.
	hold := display - fadeIn - fadeOut

	p.window.SetOpacity(0)
	p.window.Present()

	p.fade(0, 1, fadeIn, func() {
		glib.TimeoutAdd(uint(hold.Milliseconds()), func() bool {
			p.startFadeOut()
			return false
		})
	})
}

// Dismiss fades the toast out early.
func (p *Popup) Dismiss() {
	p.startFadeOut()
}

// startFadeOut begins the fade-out animation, once.
func (p *Popup) startFadeOut() {
	if p.fadingOut || p.closed {
		return
	}
	p.fadingOut = true

	p.fade(p.window.Opacity(), 0, p.params.EffectiveFadeOut(), func() {
		p.close()
	})
}

// close tears down the window and signals completion.
func (p *Popup) close() {
	if p.closed {
		return
	}
	p.closed = true
	p.window.Close()
	if p.onDone != nil {
		p.onDone()
	}
}

// fade animates the window opacity from from to to over d, then invokes
// then. Runs on the GTK main loop via timeout sources.
func (p *Popup) fade(from, to float64, d time.Duration, then func()) {
	if d <= 0 {
		p.window.SetOpacity(to)
		then()
		return
	}

	steps := int(d.Milliseconds() / frameInterval)
	if steps < 1 {
		steps = 1
	}

	step := 0
	glib.TimeoutAdd(frameInterval, func() bool {
		if p.abortFade(from, to) {
			return false
		}
		step++
		progress := float64(step) / float64(steps)
		p.window.SetOpacity(from + (to-from)*progress)
		if step >= steps {
			then()
			return false
		}
		return true
	})
}

// abortFade reports whether an in-flight fade tick should stop: the
// window is closed, or a fade-out has taken over an opposing fade-in.
// Fade-ins raise opacity (to > from), so the fade-out keeps ticking
// while a superseded fade-in stops.
func (p *Popup) abortFade(from, to float64) bool {
	return p.closed || (p.fadingOut && to > from)
}

// levelToLayer collapses the six window levels onto the four layer-shell
// layers.
func levelToLayer(level toast.WindowLevel) layershell.LayerShellLayer {
	switch level {
	case toast.LevelModal, toast.LevelMax, toast.LevelScreensaver:
		return layershell.LayerShellLayerOverlay
	default: // normal, floating, status
		return layershell.LayerShellLayerTop
	}
}
