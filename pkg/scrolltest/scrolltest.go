// Package scrolltest provides deterministic test support for the scroll
// engine: a fake scheduler for controlling delayed gestures and a recording
// host that captures every side effect a click produces.
package scrolltest

import (
	"sort"
	"sync"
	"time"

	"github.com/go-drift/scrollto/pkg/scroll"
)

// FakeScheduler queues deferred callbacks and releases them when the test
// advances its clock. All methods are safe for concurrent use.
//
//	sched := scrolltest.NewFakeScheduler()
//	prev := scroll.SetScheduler(sched)
//	defer scroll.SetScheduler(prev)
//
//	engine.Click(fx)             // nothing fires yet
//	sched.Advance(2 * time.Second) // delayed gesture runs here
type FakeScheduler struct {
	mu      sync.Mutex
	now     time.Duration
	pending []fakeTimer
}

type fakeTimer struct {
	due time.Duration
	fn  func()
}

// NewFakeScheduler returns a scheduler with no pending callbacks.
func NewFakeScheduler() *FakeScheduler {
	return &FakeScheduler{}
}

// After queues fn to run once the scheduler has advanced d past the current
// fake time. Non-positive durations still queue; they run on the next
// Advance call, never inline.
func (s *FakeScheduler) After(d time.Duration, fn func()) {
	s.mu.Lock()
	s.pending = append(s.pending, fakeTimer{due: s.now + d, fn: fn})
	s.mu.Unlock()
}

// Pending returns the number of queued callbacks.
func (s *FakeScheduler) Pending() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.pending)
}

// Advance moves the fake clock forward by d and runs every callback that has
// come due, in deadline order. Callbacks run without the lock held, so they
// may schedule further callbacks.
func (s *FakeScheduler) Advance(d time.Duration) {
	s.mu.Lock()
	s.now += d
	var due []fakeTimer
	var rest []fakeTimer
	for _, t := range s.pending {
		if t.due <= s.now {
			due = append(due, t)
		} else {
			rest = append(rest, t)
		}
	}
	s.pending = rest
	s.mu.Unlock()

	sort.SliceStable(due, func(i, j int) bool { return due[i].due < due[j].due })
	for _, t := range due {
		t.fn()
	}
}

// RecordingHost captures the side effects of click gestures. The zero value
// is ready to use; Snapshot is the telemetry every gesture will observe.
type RecordingHost struct {
	Snapshot scroll.Telemetry

	// Calls lists effect invocations in order: "begin", "perform",
	// "hash", "end".
	Calls []string
	// Performed collects every executed instruction.
	Performed []scroll.Instruction
	// Hashes collects every pushed fragment.
	Hashes []string
}

// Effects returns the host's callbacks in the form Engine.Click consumes.
func (h *RecordingHost) Effects() scroll.Effects {
	return scroll.Effects{
		Telemetry: func() scroll.Telemetry { return h.Snapshot },
		Perform: func(in scroll.Instruction) {
			h.Calls = append(h.Calls, "perform")
			h.Performed = append(h.Performed, in)
		},
		PushHash: func(hash string) {
			h.Calls = append(h.Calls, "hash")
			h.Hashes = append(h.Hashes, hash)
		},
		OnBegin: func() { h.Calls = append(h.Calls, "begin") },
		OnEnd:   func() { h.Calls = append(h.Calls, "end") },
	}
}
