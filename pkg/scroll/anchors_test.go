package scroll

import "testing"

func TestAnchorSet_ResolvesTelemetry(t *testing.T) {
	anchors := NewAnchorSet()
	anchors.Set("top-section", -50)
	anchors.Set("bottom-scroll", 800)

	cfg := DefaultConfig().WithWatchID("top-section").WithScrollID("bottom-scroll")
	tel := anchors.Telemetry(120, cfg)

	if tel.ScrollY != 120 {
		t.Errorf("scrollY should pass through, got %v", tel.ScrollY)
	}
	if tel.WatchTop == nil || *tel.WatchTop != -50 {
		t.Errorf("watch anchor should resolve to -50, got %v", tel.WatchTop)
	}
	if tel.TargetTop == nil || *tel.TargetTop != 800 {
		t.Errorf("scroll anchor should resolve to 800, got %v", tel.TargetTop)
	}
}

func TestAnchorSet_UnknownIdsStayNil(t *testing.T) {
	anchors := NewAnchorSet()

	cfg := DefaultConfig().WithWatchID("nope").WithScrollID("also-nope")
	tel := anchors.Telemetry(10, cfg)

	if tel.WatchTop != nil || tel.TargetTop != nil {
		t.Error("unknown anchors must leave telemetry fields nil for the fallback branch")
	}

	// Unset ids are not looked up at all.
	tel = anchors.Telemetry(10, DefaultConfig())
	if tel.WatchTop != nil || tel.TargetTop != nil {
		t.Error("unset ids must leave telemetry fields nil")
	}
}

func TestAnchorSet_SetMoveRemove(t *testing.T) {
	anchors := NewAnchorSet()
	anchors.Set("a", 10)
	anchors.Set("a", 25)

	if top, ok := anchors.Top("a"); !ok || top != 25 {
		t.Errorf("re-registering should move the anchor, got %v %v", top, ok)
	}

	anchors.Remove("a")
	if _, ok := anchors.Top("a"); ok {
		t.Error("removed anchor should not resolve")
	}
	anchors.Remove("a") // removing again is a no-op
}

func TestAnchorSet_NilReceiverYieldsBareTelemetry(t *testing.T) {
	var anchors *AnchorSet

	tel := anchors.Telemetry(42, DefaultConfig().WithScrollID("x"))
	if tel.ScrollY != 42 || tel.TargetTop != nil {
		t.Error("nil anchor set should produce telemetry with no resolutions")
	}
}
