// Package driftui publishes the scroll button as a Drift widget.
//
// ScrollButton attaches to the [widgets.ScrollController] of the ScrollView
// or ListView it serves, tracks the controller's offset to decide its own
// visibility, and on tap drives the controller back to the configured
// destination. All decisions come from the scroll engine; this package is
// the Drift rendering and event glue around it.
package driftui

import (
	"time"

	"github.com/go-drift/drift/pkg/core"
	rendering "github.com/go-drift/drift/pkg/graphics"
	"github.com/go-drift/drift/pkg/theme"
	"github.com/go-drift/drift/pkg/widgets"

	"github.com/go-drift/scrollto/pkg/scroll"
)

// defaultSmoothDuration is how long a smooth scroll animates when the widget
// does not specify one.
const defaultSmoothDuration = 300 * time.Millisecond

// ScrollButton is a scroll-to-top/scroll-to-target button.
//
// The button hides itself until the controller's offset passes the config's
// threshold (or the watched anchor), and scrolls to the configured
// destination when tapped:
//
//	driftui.ScrollButtonOf(s.controller).
//	    WithConfig(scroll.DefaultConfig().WithThreshold(400)).
//	    WithIcon("⬆")
//
// Place it in a Stack over the scrollable content, aligned bottom-right.
type ScrollButton struct {
	// Controller is the scroll controller of the content this button
	// serves. Required; without it the button renders but taps are no-ops.
	Controller *widgets.ScrollController
	// Config is the engine configuration. Use scroll.DefaultConfig as the
	// base; the zero value disables auto-hide and hash updates.
	Config scroll.Config
	// Anchors resolves the config's WatchID and ScrollID. Optional.
	Anchors *scroll.AnchorSet
	// Icon is the glyph displayed on the button. Defaults to "↑".
	Icon string
	// Size is the button diameter. Defaults to 48.
	Size float64
	// Color is the background color. Defaults to the theme's button
	// background if zero.
	Color rendering.Color
	// IconColor is the glyph color. Defaults to the theme's button
	// foreground if zero.
	IconColor rendering.Color
	// SmoothDuration is the animation length for BehaviorSmooth.
	// Defaults to 300ms.
	SmoothDuration time.Duration
	// OnBegin and OnEnd bracket each scroll gesture.
	OnBegin func()
	OnEnd   func()
	// OnHash receives the URL-fragment push when the config asks for one.
	// Drift has no address bar, so the host decides what a hash means
	// (typically a deep-link update).
	OnHash func(hash string)
}

// ScrollButtonOf creates a scroll button with the canonical configuration
// attached to the given controller.
func ScrollButtonOf(controller *widgets.ScrollController) ScrollButton {
	return ScrollButton{
		Controller: controller,
		Config:     scroll.DefaultConfig(),
	}
}

// WithConfig returns a copy of the button with the specified engine config.
func (b ScrollButton) WithConfig(cfg scroll.Config) ScrollButton {
	b.Config = cfg
	return b
}

// WithAnchors returns a copy of the button resolving ids against the set.
func (b ScrollButton) WithAnchors(anchors *scroll.AnchorSet) ScrollButton {
	b.Anchors = anchors
	return b
}

// WithIcon returns a copy of the button with the specified glyph.
func (b ScrollButton) WithIcon(icon string) ScrollButton {
	b.Icon = icon
	return b
}

// WithColor returns a copy of the button with the specified background and
// glyph colors.
func (b ScrollButton) WithColor(bg, icon rendering.Color) ScrollButton {
	b.Color = bg
	b.IconColor = icon
	return b
}

func (b ScrollButton) CreateElement() core.Element {
	return core.NewStatefulElement()
}

func (b ScrollButton) Key() any {
	return nil
}

func (b ScrollButton) CreateState() core.State {
	return &scrollButtonState{}
}

type scrollButtonState struct {
	core.StateBase
	engine *scroll.Engine
	unsub  func()
}

func (s *scrollButtonState) InitState() {
	w := s.Element().Widget().(ScrollButton)
	s.engine = scroll.NewEngine(w.Config)
	s.subscribe(w)
	s.engine.Evaluate(s.telemetry(w))
	s.OnDispose(func() {
		if s.unsub != nil {
			s.unsub()
		}
	})
}

func (s *scrollButtonState) DidUpdateWidget(oldWidget core.StatefulWidget) {
	old := oldWidget.(ScrollButton)
	w := s.Element().Widget().(ScrollButton)
	s.engine.SetConfig(w.Config)
	if old.Controller != w.Controller || old.Config.AutoHide != w.Config.AutoHide {
		if s.unsub != nil {
			s.unsub()
			s.unsub = nil
		}
		s.subscribe(w)
	}
	s.engine.Evaluate(s.telemetry(w))
}

// subscribe attaches the scroll listener only while auto-hide is on; an
// always-visible button has no reason to track the offset.
func (s *scrollButtonState) subscribe(w ScrollButton) {
	if !w.Config.AutoHide || w.Controller == nil {
		return
	}
	s.unsub = w.Controller.AddListener(s.handleScroll)
}

func (s *scrollButtonState) handleScroll() {
	w := s.Element().Widget().(ScrollButton)
	was := s.engine.Visible()
	if s.engine.Evaluate(s.telemetry(w)) != was {
		s.SetState(nil)
	}
}

func (s *scrollButtonState) telemetry(w ScrollButton) scroll.Telemetry {
	offset := 0.0
	if w.Controller != nil {
		offset = w.Controller.Offset()
	}
	return w.Anchors.Telemetry(offset, s.engine.Config())
}

func (s *scrollButtonState) handleTap() {
	println("DEBUG handleTap called")
	w := s.Element().Widget().(ScrollButton)
	duration := w.SmoothDuration
	if duration <= 0 {
		duration = defaultSmoothDuration
	}
	println("DEBUG engine visible:", s.engine.Visible())
	s.engine.Click(scroll.Effects{
		Telemetry: func() scroll.Telemetry { return s.telemetry(w) },
		Perform:   performOn(w.Controller, duration),
		PushHash:  w.OnHash,
		OnBegin:   w.OnBegin,
		OnEnd:     w.OnEnd,
	})
}

// performOn translates an engine instruction into controller motion. The
// controller is single-axis, so the instruction's vertical target drives it
// and Left is ignored.
func performOn(controller *widgets.ScrollController, duration time.Duration) func(scroll.Instruction) {
	return func(in scroll.Instruction) {
		println("DEBUG perform, top:", int(in.Top), "behavior:", in.Behavior.String())
		if controller == nil {
			return
		}
		switch in.Behavior {
		case scroll.BehaviorSmooth:
			controller.AnimateTo(in.Top, duration)
		default:
			controller.JumpTo(in.Top)
		}
	}
}

func (s *scrollButtonState) Build(ctx core.BuildContext) core.Widget {
	if !s.engine.Visible() {
		return widgets.SizedBox{}
	}

	w := s.Element().Widget().(ScrollButton)
	buttonTheme := theme.ThemeOf(ctx).ButtonThemeOf()

	color := w.Color
	if color == 0 {
		color = buttonTheme.BackgroundColor
	}
	iconColor := w.IconColor
	if iconColor == 0 {
		iconColor = buttonTheme.ForegroundColor
	}
	size := w.Size
	if size == 0 {
		size = 48
	}
	icon := w.Icon
	if icon == "" {
		icon = "↑"
	}

	return widgets.GestureDetector{
		OnTap: s.handleTap,
		Child: widgets.SizedBox{
			Width:  size,
			Height: size,
			Child: widgets.DecoratedBox{
				Color:        color,
				BorderRadius: size / 2,
				Child: widgets.Center{
					Child: widgets.Text{
						Content: icon,
						Style: rendering.TextStyle{
							Color:    iconColor,
							FontSize: size * 0.45,
						},
					},
				},
			},
		},
	}
}
