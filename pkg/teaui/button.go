// Package teaui hosts the scroll button inside a Bubble Tea program.
//
// The Button wraps a host-owned viewport.Model. The host forwards every
// message to Update so the button can track the viewport offset, and
// embeds View in its own layout. Scroll begin/end and hash pushes are
// delivered back to the host as messages so it can decide what to do
// with them (status line, window title, nothing).
package teaui

import (
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/go-drift/scrollto/pkg/scroll"
)

// ScrollBeginMsg is emitted when a scroll gesture starts, after any
// configured delay has elapsed.
type ScrollBeginMsg struct{}

// ScrollEndMsg is emitted when a scroll gesture has finished moving the
// viewport.
type ScrollEndMsg struct{}

// HashMsg carries the target id of a finished gesture, mirroring a URL
// fragment update. The hash may be empty when no target id is set.
type HashMsg struct {
	Hash string
}

// fireMsg executes a gesture whose delay has elapsed. animMsg advances a
// smooth scroll by one frame. Both carry the gesture sequence number so
// messages from superseded gestures are dropped.
type fireMsg struct{ seq int }

type animMsg struct{ seq int }

const (
	defaultLabel          = "↑ top"
	defaultSmoothDuration = 300 * time.Millisecond
	frameInterval         = time.Second / 60
)

// Button renders a scroll-to-top control for a Bubble Tea viewport.
// Construct it with New and adjust it with the With* methods.
type Button struct {
	// Trigger is the key binding that activates the gesture.
	Trigger key.Binding
	// Label is the text rendered by View while the button is visible.
	Label string
	// Style wraps the label when rendering.
	Style lipgloss.Style
	// SmoothDuration is how long a smooth gesture animates for.
	SmoothDuration time.Duration

	cfg      scroll.Config
	anchors  *scroll.AnchorSet
	viewport *viewport.Model
	visible  bool

	seq      int
	animFrom float64
	animTo   float64
	animAt   time.Duration
	pending  scroll.Instruction
}

// New returns a button bound to vp. The viewport must outlive the button.
func New(vp *viewport.Model, cfg scroll.Config) Button {
	return Button{
		Trigger: key.NewBinding(
			key.WithKeys("t"),
			key.WithHelp("t", "scroll to top"),
		),
		Label:          defaultLabel,
		Style:          lipgloss.NewStyle().Bold(true).Padding(0, 1),
		SmoothDuration: defaultSmoothDuration,
		cfg:            cfg,
		viewport:       vp,
		visible:        scroll.EvaluateVisibility(cfg, scroll.Telemetry{ScrollY: float64(vp.YOffset)}),
	}
}

// WithAnchors resolves watch and target ids against set.
func (b Button) WithAnchors(set *scroll.AnchorSet) Button {
	b.anchors = set
	return b
}

// WithTrigger replaces the activation key binding.
func (b Button) WithTrigger(binding key.Binding) Button {
	b.Trigger = binding
	return b
}

// WithLabel replaces the rendered label.
func (b Button) WithLabel(label string) Button {
	b.Label = label
	return b
}

// WithStyle replaces the label style.
func (b Button) WithStyle(style lipgloss.Style) Button {
	b.Style = style
	return b
}

// Config returns the scroll configuration the button was built with.
func (b Button) Config() scroll.Config {
	return b.cfg
}

// Visible reports whether the button currently renders.
func (b Button) Visible() bool {
	return b.visible
}

// Update processes msg and re-reads the viewport offset. The host must
// call it after its own viewport handling so visibility tracks the
// latest offset.
func (b Button) Update(msg tea.Msg) (Button, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if key.Matches(msg, b.Trigger) && b.visible {
			return b.trigger()
		}
	case fireMsg:
		if msg.seq == b.seq {
			return b.fire()
		}
		return b, nil
	case animMsg:
		if msg.seq == b.seq {
			return b.step()
		}
		return b, nil
	}
	b.visible = scroll.EvaluateVisibility(b.cfg, b.telemetry())
	return b, nil
}

// View renders the button, or nothing while it is hidden.
func (b Button) View() string {
	if !b.visible {
		return ""
	}
	return b.Style.Render(b.Label)
}

func (b Button) telemetry() scroll.Telemetry {
	y := float64(b.viewport.YOffset)
	if b.anchors == nil {
		return scroll.Telemetry{ScrollY: y}
	}
	return b.anchors.Telemetry(y, b.cfg)
}

// trigger starts a gesture. Each trigger supersedes any in-flight delay
// or animation by bumping the sequence number.
func (b Button) trigger() (Button, tea.Cmd) {
	b.seq++
	if b.cfg.Delay > 0 {
		seq := b.seq
		return b, tea.Tick(b.cfg.Delay, func(time.Time) tea.Msg {
			return fireMsg{seq: seq}
		})
	}
	return b.fire()
}

// fire reads the viewport at execution time, so anchors that moved
// during the delay scroll to their current position.
func (b Button) fire() (Button, tea.Cmd) {
	in := scroll.ComputeInstruction(b.cfg, b.telemetry())

	begin := func() tea.Msg { return ScrollBeginMsg{} }

	if in.Behavior == scroll.BehaviorSmooth && b.SmoothDuration > 0 {
		b.animFrom = float64(b.viewport.YOffset)
		b.animTo = in.Top
		b.animAt = 0
		b.pending = in
		seq := b.seq
		return b, tea.Sequence(begin, tea.Tick(frameInterval, func(time.Time) tea.Msg {
			return animMsg{seq: seq}
		}))
	}

	b.viewport.SetYOffset(int(in.Top))
	cmds := append([]tea.Cmd{begin}, finishCmds(in)...)
	return b, tea.Sequence(cmds...)
}

// step advances a smooth gesture by one frame.
func (b Button) step() (Button, tea.Cmd) {
	b.animAt += frameInterval
	if b.animAt >= b.SmoothDuration {
		b.viewport.SetYOffset(int(b.animTo))
		return b, tea.Sequence(finishCmds(b.pending)...)
	}

	progress := float64(b.animAt) / float64(b.SmoothDuration)
	eased := 1 - (1-progress)*(1-progress)*(1-progress)
	b.viewport.SetYOffset(int(b.animFrom + (b.animTo-b.animFrom)*eased))

	seq := b.seq
	return b, tea.Tick(frameInterval, func(time.Time) tea.Msg {
		return animMsg{seq: seq}
	})
}

func finishCmds(in scroll.Instruction) []tea.Cmd {
	cmds := make([]tea.Cmd, 0, 2)
	if in.UpdateHash {
		hash := in.Hash
		cmds = append(cmds, func() tea.Msg { return HashMsg{Hash: hash} })
	}
	cmds = append(cmds, func() tea.Msg { return ScrollEndMsg{} })
	return cmds
}
