package scroll

import "sync"

// AnchorSet is a registry of named content offsets — the host-side
// equivalent of looking elements up by id. Hosts register the vertical
// position of each named region of their content and resolve a config's
// WatchID and ScrollID against the set when building telemetry.
//
// All methods are safe for concurrent use. An AnchorSet may be shared by
// several widgets over the same content.
type AnchorSet struct {
	mu   sync.RWMutex
	tops map[string]float64
}

// NewAnchorSet returns an empty anchor registry.
func NewAnchorSet() *AnchorSet {
	return &AnchorSet{tops: make(map[string]float64)}
}

// Set registers or moves the anchor with the given id.
func (a *AnchorSet) Set(id string, top float64) {
	a.mu.Lock()
	a.tops[id] = top
	a.mu.Unlock()
}

// Remove drops the anchor with the given id. Removing an unknown id is a
// no-op.
func (a *AnchorSet) Remove(id string) {
	a.mu.Lock()
	delete(a.tops, id)
	a.mu.Unlock()
}

// Top returns the registered offset for id.
func (a *AnchorSet) Top(id string) (float64, bool) {
	a.mu.RLock()
	top, ok := a.tops[id]
	a.mu.RUnlock()
	return top, ok
}

// Telemetry builds an engine telemetry snapshot for the given scroll offset,
// resolving cfg's WatchID and ScrollID against the set. Unknown ids leave
// the corresponding field nil, which selects the engine's fallback branch.
func (a *AnchorSet) Telemetry(scrollY float64, cfg Config) Telemetry {
	t := Telemetry{ScrollY: scrollY}
	if a == nil {
		return t
	}
	if cfg.WatchID != "" {
		if top, ok := a.Top(cfg.WatchID); ok {
			t.WatchTop = &top
		}
	}
	if cfg.ScrollID != "" {
		if top, ok := a.Top(cfg.ScrollID); ok {
			t.TargetTop = &top
		}
	}
	return t
}
