package tcellui_test

import (
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/go-drift/scrollto/pkg/scroll"
	"github.com/go-drift/scrollto/pkg/scrolltest"
	"github.com/go-drift/scrollto/pkg/tcellui"
)

type fakeHost struct {
	offset float64
	calls  []string
	tops   []float64
	hashes []string
}

func (h *fakeHost) host() tcellui.Host {
	return tcellui.Host{
		Offset: func() float64 { return h.offset },
		Scroll: func(top float64, _ scroll.Behavior) {
			h.calls = append(h.calls, "scroll")
			h.tops = append(h.tops, top)
			h.offset = top
		},
		PushHash: func(hash string) {
			h.calls = append(h.calls, "hash")
			h.hashes = append(h.hashes, hash)
		},
		OnBegin: func() { h.calls = append(h.calls, "begin") },
		OnEnd:   func() { h.calls = append(h.calls, "end") },
	}
}

func newScreen(t *testing.T) tcell.SimulationScreen {
	t.Helper()
	s := tcell.NewSimulationScreen("UTF-8")
	require.NoError(t, s.Init())
	s.SetSize(80, 24)
	t.Cleanup(s.Fini)
	return s
}

func TestButton_SyncTracksHostOffset(t *testing.T) {
	h := &fakeHost{}
	b := tcellui.New(scroll.DefaultConfig(), h.host())

	assert.False(t, b.Visible())

	h.offset = 100
	assert.True(t, b.Sync(), "crossing the threshold changes visibility")
	assert.True(t, b.Visible())

	h.offset = 150
	assert.False(t, b.Sync(), "staying visible is not a change")

	h.offset = 0
	assert.True(t, b.Sync())
	assert.False(t, b.Visible())
}

func TestButton_AutoHideDisabledIsVisibleFromTheStart(t *testing.T) {
	h := &fakeHost{}
	b := tcellui.New(scroll.DefaultConfig().WithAutoHide(false), h.host())

	assert.True(t, b.Visible())
}

func TestButton_DrawBottomRight(t *testing.T) {
	s := newScreen(t)
	h := &fakeHost{offset: 100}
	b := tcellui.New(scroll.DefaultConfig(), h.host())
	b.Sync()

	b.Draw(s)
	s.Show()

	// " ↑ top " is 7 cells wide, one cell in from the right edge, one
	// row above the bottom.
	x := 80 - 7 - 1
	y := 24 - 2
	r, _, _, _ := s.GetContent(x+1, y)
	assert.Equal(t, '↑', r)
}

func TestButton_DrawNothingWhileHidden(t *testing.T) {
	s := newScreen(t)
	h := &fakeHost{}
	b := tcellui.New(scroll.DefaultConfig(), h.host())
	b.Sync()

	b.Draw(s)
	s.Show()

	r, _, _, _ := s.GetContent(80-7, 24-2)
	assert.Equal(t, ' ', r)
}

func TestButton_ClickInsideRect(t *testing.T) {
	s := newScreen(t)
	h := &fakeHost{offset: 300}
	b := tcellui.New(scroll.DefaultConfig(), h.host())
	b.Sync()
	b.Draw(s)

	ev := tcell.NewEventMouse(80-7, 24-2, tcell.Button1, 0)
	assert.True(t, b.HandleEvent(ev))

	require.Equal(t, []string{"begin", "scroll", "hash", "end"}, h.calls)
	assert.Equal(t, []float64{0}, h.tops)
	assert.Equal(t, []string{""}, h.hashes, "hash pushed even without a target id")
}

func TestButton_ClickOutsideRectIsIgnored(t *testing.T) {
	s := newScreen(t)
	h := &fakeHost{offset: 300}
	b := tcellui.New(scroll.DefaultConfig(), h.host())
	b.Sync()
	b.Draw(s)

	assert.False(t, b.HandleEvent(tcell.NewEventMouse(0, 0, tcell.Button1, 0)))
	assert.Empty(t, h.calls)
}

func TestButton_ClickWhileHiddenIsIgnored(t *testing.T) {
	h := &fakeHost{}
	b := tcellui.New(scroll.DefaultConfig(), h.host())
	b.Sync()

	assert.False(t, b.HandleEvent(tcell.NewEventMouse(80-7, 24-2, tcell.Button1, 0)))
	assert.Empty(t, h.calls)
}

func TestButton_NonMouseEventsPassThrough(t *testing.T) {
	h := &fakeHost{offset: 300}
	b := tcellui.New(scroll.DefaultConfig(), h.host())
	b.Sync()

	assert.False(t, b.HandleEvent(tcell.NewEventKey(tcell.KeyEnter, 0, 0)))
}

func TestButton_AnchorTarget(t *testing.T) {
	anchors := scroll.NewAnchorSet()
	anchors.Set("details", 42)

	h := &fakeHost{offset: 300}
	b := tcellui.New(scroll.DefaultConfig().WithScrollID("details"), h.host())
	b.SetAnchors(anchors)
	b.Sync()

	b.Click()

	assert.Equal(t, []float64{42}, h.tops)
	assert.Equal(t, []string{"details"}, h.hashes)
}

func TestButton_DelayedClick(t *testing.T) {
	sched := scrolltest.NewFakeScheduler()
	prev := scroll.SetScheduler(sched)
	defer scroll.SetScheduler(prev)

	h := &fakeHost{offset: 300}
	b := tcellui.New(scroll.DefaultConfig().WithDelay(500*time.Millisecond), h.host())
	b.Sync()

	b.Click()
	assert.Empty(t, h.calls, "nothing runs before the delay elapses")

	sched.Advance(500 * time.Millisecond)
	assert.Equal(t, []string{"begin", "scroll", "hash", "end"}, h.calls)
	assert.Equal(t, []float64{0}, h.tops)
}
