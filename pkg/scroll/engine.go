package scroll

// Telemetry is one snapshot of the host's scroll state, supplied per
// evaluation. WatchTop and TargetTop are the content offsets of the config's
// WatchID and ScrollID anchors; nil means the anchor did not resolve and the
// engine uses its fallback branch.
type Telemetry struct {
	ScrollY   float64
	WatchTop  *float64
	TargetTop *float64
}

// Instruction is the side-effecting plan a click produces. The host
// translates it into an actual viewport mutation and, when UpdateHash is set,
// pushes Hash as the URL fragment without triggering navigation.
type Instruction struct {
	Top, Left float64
	Behavior  Behavior
	// Hash is the fragment to push, without the leading "#". It is the
	// config's ScrollID and may be empty.
	Hash string
	// UpdateHash reports whether the host should push Hash at all.
	UpdateHash bool
}

// EvaluateVisibility decides whether the button should be rendered for the
// given telemetry. Pure and idempotent; callable on every scroll tick.
//
// With AutoHide disabled the button is always visible. While WatchID
// resolves, visibility depends only on the watched anchor's position;
// otherwise the scroll distance is compared against Threshold.
func EvaluateVisibility(cfg Config, t Telemetry) bool {
	if !cfg.AutoHide {
		return true
	}
	if cfg.WatchID != "" && t.WatchTop != nil {
		return t.ScrollY > *t.WatchTop
	}
	return t.ScrollY > cfg.Threshold
}

// ComputeInstruction resolves the scroll destination for a click. Pure: no
// clock, no I/O.
//
// The vertical target prefers the ScrollID anchor when it resolves, falling
// back to the absolute Top. Left is always the literal configured value;
// anchors never contribute to it.
func ComputeInstruction(cfg Config, t Telemetry) Instruction {
	top := cfg.Top + cfg.Offset
	if cfg.ScrollID != "" && t.TargetTop != nil {
		top = *t.TargetTop + cfg.Offset
	}
	return Instruction{
		Top:        top,
		Left:       cfg.Left,
		Behavior:   cfg.Behavior,
		Hash:       cfg.ScrollID,
		UpdateHash: cfg.UpdateHash,
	}
}

// Engine owns the visibility state of one rendered widget. Create one per
// widget instance when it mounts, with its resolved config; discard it on
// unmount. Engines share no state.
type Engine struct {
	cfg     Config
	visible bool
}

// NewEngine creates an engine for the given config.
func NewEngine(cfg Config) *Engine {
	return &Engine{cfg: cfg}
}

// Config returns the engine's configuration.
func (e *Engine) Config() Config {
	return e.cfg
}

// SetConfig replaces the configuration. Hosts call this when the embedding
// widget is rebuilt with new properties.
func (e *Engine) SetConfig(cfg Config) {
	e.cfg = cfg
}

// Evaluate recomputes visibility from the telemetry snapshot, stores it, and
// returns it.
func (e *Engine) Evaluate(t Telemetry) bool {
	e.visible = EvaluateVisibility(e.cfg, t)
	return e.visible
}

// Visible returns the last computed visibility.
func (e *Engine) Visible() bool {
	return e.visible
}

// Instruction computes the scroll instruction for the telemetry snapshot.
func (e *Engine) Instruction(t Telemetry) Instruction {
	return ComputeInstruction(e.cfg, t)
}

// Effects is the set of host callbacks a click gesture runs against. Only
// Telemetry and Perform are required; nil notifications are skipped.
type Effects struct {
	// Telemetry produces the snapshot used to compute the instruction. It
	// is called at execution time, not at click time, because anchors may
	// move while a delay is pending.
	Telemetry func() Telemetry
	// Perform executes the viewport mutation.
	Perform func(Instruction)
	// PushHash pushes the URL fragment when the instruction asks for it.
	// Hosts without an address bar leave it nil.
	PushHash func(hash string)
	// OnBegin and OnEnd bracket the scroll execution.
	OnBegin func()
	OnEnd   func()
}

// Click runs one click gesture: an optional one-shot delay, the begin
// notification, instruction computation from a fresh telemetry snapshot, the
// scroll itself, the hash push, and the end notification, in that order.
//
// The delay timer is not cancellable through the engine; a widget that
// unmounts while a gesture is pending will still see the deferred callback
// fire. Clicking again while a gesture is pending schedules a second,
// independent gesture — there is deliberately no mutual exclusion.
func (e *Engine) Click(fx Effects) {
	cfg := e.cfg
	run := func() {
		if fx.OnBegin != nil {
			fx.OnBegin()
		}
		var t Telemetry
		if fx.Telemetry != nil {
			t = fx.Telemetry()
		}
		in := ComputeInstruction(cfg, t)
		if fx.Perform != nil {
			fx.Perform(in)
		}
		if in.UpdateHash && fx.PushHash != nil {
			fx.PushHash(in.Hash)
		}
		if fx.OnEnd != nil {
			fx.OnEnd()
		}
	}
	if cfg.Delay > 0 {
		scheduler.After(cfg.Delay, run)
		return
	}
	run()
}
