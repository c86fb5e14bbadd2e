// Package scroll implements the decision logic behind a
// scroll-to-top/scroll-to-target button.
//
// The package is deliberately free of any UI toolkit: it computes whether the
// button should be visible for a given scroll position, and what scroll
// instruction a click should produce. Rendering, event subscription, and the
// actual viewport mutation belong to a host adapter (see the driftui, teaui,
// and tcellui sibling packages).
//
// # Data Flow
//
// The host feeds a [Telemetry] snapshot into the engine on every scroll tick
// and shows or hides its button from the returned boolean:
//
//	engine := scroll.NewEngine(scroll.DefaultConfig().WithThreshold(400))
//	visible := engine.Evaluate(scroll.Telemetry{ScrollY: offset})
//
// On activation the host hands the engine its side effects and the engine
// orchestrates the gesture — optional delay, begin notification, instruction
// computation from a fresh telemetry snapshot, the scroll itself, an optional
// URL-hash push, and the end notification:
//
//	engine.Click(scroll.Effects{
//	    Telemetry: snapshot,
//	    Perform:   func(in scroll.Instruction) { view.ScrollTo(in.Top, in.Left) },
//	    OnBegin:   func() { log.Println("scrolling") },
//	})
//
// # Anchors
//
// Hosts without a DOM resolve the config's WatchID and ScrollID against an
// [AnchorSet], a registry of named content offsets. Unresolved ids fall back
// silently to the threshold and absolute-target branches; a missing anchor is
// never an error.
//
// # Determinism
//
// [EvaluateVisibility] and [ComputeInstruction] are pure functions of config
// and telemetry. The only clockwork is the one-shot delay in [Engine.Click],
// driven by the package [Scheduler]; tests replace it via [SetScheduler].
package scroll
