package scroll

import "time"

// Behavior controls how the host moves the viewport when executing a scroll
// instruction.
type Behavior int

const (
	// BehaviorAuto lets the host pick its platform default.
	BehaviorAuto Behavior = iota
	// BehaviorInstant jumps to the target without animating.
	BehaviorInstant
	// BehaviorSmooth animates to the target.
	BehaviorSmooth
)

// String returns a human-readable representation of the behavior.
func (b Behavior) String() string {
	switch b {
	case BehaviorAuto:
		return "auto"
	case BehaviorInstant:
		return "instant"
	case BehaviorSmooth:
		return "smooth"
	default:
		return "unknown"
	}
}

// Config describes one scroll button. It is immutable per widget instance;
// the With* methods return modified copies.
//
// The zero value is not the default configuration — use [DefaultConfig]
// (smooth scrolling to the top of the page, auto-hide past 20px, hash
// updates enabled):
//
//	cfg := scroll.DefaultConfig().
//	    WithBehavior(scroll.BehaviorInstant).
//	    WithThreshold(400)
type Config struct {
	// Behavior is how the viewport should move.
	Behavior Behavior
	// Top and Left are the absolute scroll destination in pixels,
	// used when ScrollID is unset or does not resolve.
	Top, Left float64
	// Offset is added to the resolved vertical target.
	Offset float64
	// Delay postpones execution of a click gesture.
	Delay time.Duration
	// AutoHide toggles visibility tracking. When false the button is
	// always visible, regardless of scroll position.
	AutoHide bool
	// Threshold is the vertical scroll distance in pixels after which the
	// button becomes visible. Ignored while WatchID resolves.
	Threshold float64
	// UpdateHash controls whether a click pushes "#<ScrollID>" as the URL
	// fragment (on hosts that have one).
	UpdateHash bool
	// WatchID names an anchor whose position gates visibility instead of
	// Threshold.
	WatchID string
	// ScrollID names an anchor to scroll into alignment with the viewport
	// top instead of the absolute Top/Left destination.
	ScrollID string
}

// DefaultConfig returns the canonical widget configuration.
func DefaultConfig() Config {
	return Config{
		Behavior:   BehaviorSmooth,
		AutoHide:   true,
		Threshold:  20,
		UpdateHash: true,
	}
}

// WithBehavior returns a copy of the config with the specified scroll behavior.
func (c Config) WithBehavior(b Behavior) Config {
	c.Behavior = b
	return c
}

// WithTarget returns a copy of the config with the specified absolute
// destination.
func (c Config) WithTarget(top, left float64) Config {
	c.Top = top
	c.Left = left
	return c
}

// WithOffset returns a copy of the config with the specified additive offset.
func (c Config) WithOffset(offset float64) Config {
	c.Offset = offset
	return c
}

// WithDelay returns a copy of the config with the specified click delay.
func (c Config) WithDelay(d time.Duration) Config {
	c.Delay = d
	return c
}

// WithAutoHide returns a copy of the config with visibility tracking enabled
// or disabled.
func (c Config) WithAutoHide(enabled bool) Config {
	c.AutoHide = enabled
	return c
}

// WithThreshold returns a copy of the config with the specified visibility
// threshold.
func (c Config) WithThreshold(px float64) Config {
	c.Threshold = px
	return c
}

// WithUpdateHash returns a copy of the config with hash updates enabled or
// disabled.
func (c Config) WithUpdateHash(enabled bool) Config {
	c.UpdateHash = enabled
	return c
}

// WithWatchID returns a copy of the config gating visibility on the named
// anchor.
func (c Config) WithWatchID(id string) Config {
	c.WatchID = id
	return c
}

// WithScrollID returns a copy of the config scrolling to the named anchor.
func (c Config) WithScrollID(id string) Config {
	c.ScrollID = id
	return c
}

// Validate reports structurally invalid configurations.
func (c Config) Validate() error {
	if c.Delay < 0 {
		return &ConfigError{Op: "scroll.Config.Validate", Field: "Delay", Err: errNegativeDelay}
	}
	if c.Threshold < 0 {
		return &ConfigError{Op: "scroll.Config.Validate", Field: "Threshold", Err: errNegativeThreshold}
	}
	return nil
}
