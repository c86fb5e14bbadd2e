package driftui_test

import (
	"testing"

	"github.com/go-drift/drift/pkg/core"
	drifttest "github.com/go-drift/drift/pkg/testing"
	"github.com/go-drift/drift/pkg/widgets"
)

type debugStateful struct {
	onTap func()
}

func (d debugStateful) CreateElement() core.Element { return core.NewStatefulElement() }
func (d debugStateful) Key() any                    { return nil }
func (d debugStateful) CreateState() core.State     { return &debugState{} }

type debugState struct {
	core.StateBase
}

func (s *debugState) Build(ctx core.BuildContext) core.Widget {
	w := s.Element().Widget().(debugStateful)
	return widgets.GestureDetector{
		OnTap: w.onTap,
		Child: widgets.SizedBox{
			Width:  48,
			Height: 48,
			Child: widgets.DecoratedBox{
				Color: 0,
				Child: widgets.Center{
					Child: widgets.Text{Content: "X"},
				},
			},
		},
	}
}

func TestDebug_StatefulGestureDetector(t *testing.T) {
	tester := drifttest.NewWidgetTesterWithT(t)

	tapped := false
	tester.PumpWidget(debugStateful{onTap: func() { tapped = true }})

	if err := tester.Tap(drifttest.ByType[widgets.GestureDetector]()); err != nil {
		t.Fatalf("Tap failed: %v", err)
	}
	tester.Pump()
	if !tapped {
		t.Error("stateful-wrapped GestureDetector OnTap did not fire")
	}
}

func TestDebug_PlainGestureDetector(t *testing.T) {
	tester := drifttest.NewWidgetTesterWithT(t)

	tapped := false
	tester.PumpWidget(widgets.GestureDetector{
		OnTap: func() { tapped = true },
		Child: widgets.SizedBox{
			Width:  48,
			Height: 48,
			Child: widgets.DecoratedBox{
				Color: 0xFF0000FF,
				Child: widgets.Center{
					Child: widgets.Text{Content: "X"},
				},
			},
		},
	})

	if err := tester.Tap(drifttest.ByType[widgets.GestureDetector]()); err != nil {
		t.Fatalf("Tap failed: %v", err)
	}
	tester.Pump()
	if !tapped {
		t.Error("plain GestureDetector OnTap did not fire")
	}
}
