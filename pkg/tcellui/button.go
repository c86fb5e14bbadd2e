// Package tcellui hosts the scroll button in a tcell application.
//
// Unlike the declarative hosts, a tcell program owns its event loop and
// draws every frame itself. The Button slots into that loop in three
// places: Sync after the scroll offset changes, Draw during rendering,
// and HandleEvent for mouse input.
package tcellui

import (
	"github.com/gdamore/tcell/v2"

	"github.com/go-drift/scrollto/pkg/scroll"
)

// Host connects the button to the application's scrolling surface. Offset
// and Scroll are required; the rest are optional.
type Host struct {
	// Offset returns the current scroll offset in rows.
	Offset func() float64
	// Scroll moves the surface to top. The host decides how to honor the
	// behavior hint, e.g. by animating smooth scrolls across frames.
	Scroll func(top float64, behavior scroll.Behavior)
	// PushHash receives the target id of a finished gesture.
	PushHash func(hash string)
	// OnBegin and OnEnd bracket each gesture.
	OnBegin func()
	OnEnd   func()
}

// Button is a scroll-to-top control drawn in the bottom-right corner of
// the screen. It is not safe for concurrent use; drive it from the
// application's event loop.
type Button struct {
	// Label is the text drawn while the button is visible.
	Label string
	// Style is the cell style for the label.
	Style tcell.Style

	engine  *scroll.Engine
	anchors *scroll.AnchorSet
	host    Host

	// last drawn rect, for hit testing
	x, y, w int
	drawn   bool
}

// New returns a button with the given configuration and host hooks.
func New(cfg scroll.Config, host Host) *Button {
	b := &Button{
		Label:  " ↑ top ",
		Style:  tcell.StyleDefault.Reverse(true),
		engine: scroll.NewEngine(cfg),
		host:   host,
	}
	b.engine.Evaluate(b.telemetry())
	return b
}

// SetAnchors resolves watch and target ids against set.
func (b *Button) SetAnchors(set *scroll.AnchorSet) {
	b.anchors = set
}

// Config returns the button's scroll configuration.
func (b *Button) Config() scroll.Config {
	return b.engine.Config()
}

// SetConfig replaces the scroll configuration.
func (b *Button) SetConfig(cfg scroll.Config) {
	b.engine.SetConfig(cfg)
}

// Visible reports whether the button draws and accepts clicks.
func (b *Button) Visible() bool {
	return b.engine.Visible()
}

// Sync re-evaluates visibility from the host offset. Call it whenever
// the application scrolls. It reports whether visibility changed, so the
// caller knows a redraw is needed.
func (b *Button) Sync() bool {
	was := b.engine.Visible()
	now := b.engine.Evaluate(b.telemetry())
	if !now {
		b.drawn = false
	}
	return was != now
}

// Draw renders the button in the bottom-right corner of s. Hidden
// buttons draw nothing.
func (b *Button) Draw(s tcell.Screen) {
	if !b.engine.Visible() {
		b.drawn = false
		return
	}

	sw, sh := s.Size()
	b.w = len([]rune(b.Label))
	b.x = sw - b.w - 1
	b.y = sh - 2
	if b.x < 0 {
		b.x = 0
	}
	if b.y < 0 {
		b.y = 0
	}
	b.drawn = true

	for i, r := range []rune(b.Label) {
		s.SetContent(b.x+i, b.y, r, nil, b.Style)
	}
}

// HandleEvent consumes mouse clicks on the button. It returns true when
// the event was handled and the host should not process it further.
func (b *Button) HandleEvent(ev tcell.Event) bool {
	mouse, ok := ev.(*tcell.EventMouse)
	if !ok {
		return false
	}
	if mouse.Buttons()&tcell.Button1 == 0 {
		return false
	}
	x, y := mouse.Position()
	if !b.hit(x, y) {
		return false
	}
	b.Click()
	return true
}

// Click runs the scroll gesture as if the button had been clicked. A
// configured delay defers execution through the package scheduler.
func (b *Button) Click() {
	b.engine.Click(scroll.Effects{
		Telemetry: b.telemetry,
		Perform: func(in scroll.Instruction) {
			if b.host.Scroll != nil {
				b.host.Scroll(in.Top, in.Behavior)
			}
		},
		PushHash: b.host.PushHash,
		OnBegin:  b.host.OnBegin,
		OnEnd:    b.host.OnEnd,
	})
}

func (b *Button) hit(x, y int) bool {
	return b.drawn && y == b.y && x >= b.x && x < b.x+b.w
}

func (b *Button) telemetry() scroll.Telemetry {
	var y float64
	if b.host.Offset != nil {
		y = b.host.Offset()
	}
	if b.anchors == nil {
		return scroll.Telemetry{ScrollY: y}
	}
	return b.anchors.Telemetry(y, b.engine.Config())
}
