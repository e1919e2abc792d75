package gesture

import (
	"testing"
	"time"
)

func TestHold(t *testing.T) {
	tests := []struct {
		name string
		run  func(in *Injector)
		want int
	}{
		{"held long enough", func(in *Injector) {
			in.Press(1, 0, 0)
			in.Wait(600 * time.Millisecond)
			in.Release(1, 0, 0)
		}, 1},
		{"released early", func(in *Injector) {
			in.Press(1, 0, 0)
			in.Wait(200 * time.Millisecond)
			in.Release(1, 0, 0)
		}, 0},
		{"moved too far", func(in *Injector) {
			in.Press(1, 0, 0)
			in.Move(1, 50, 0)
			in.Wait(600 * time.Millisecond)
			in.Release(1, 50, 0)
		}, 0},
		{"small jitter", func(in *Injector) {
			in.Press(1, 0, 0)
			in.Wait(300 * time.Millisecond)
			in.Move(1, 3, 4)
			in.Wait(300 * time.Millisecond)
			in.Release(1, 3, 4)
		}, 1},
		{"two points", func(in *Injector) {
			in.Press(1, 0, 0)
			in.Press(2, 30, 0)
			in.Wait(600 * time.Millisecond)
			in.Release(1, 0, 0)
			in.Release(2, 30, 0)
		}, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := newTestEngine(t)
			a := &element{}
			var rec recorder
			mustBind(t, e, a, "hold", rec.handle)
			tt.run(NewInjector(e, a, t0))
			if len(rec.results) != tt.want {
				t.Errorf("matches = %d, want %d", len(rec.results), tt.want)
			}
			if s := detectorState(t, e, a, "hold"); s != StateIdle {
				t.Errorf("state = %v, want idle", s)
			}
		})
	}
}

func TestHoldMatchesOnceBeforeRelease(t *testing.T) {
	e := newTestEngine(t)
	a := &element{}
	var rec recorder
	mustBind(t, e, a, "hold", rec.handle)

	in := NewInjector(e, a, t0)
	in.Press(1, 5, 5)
	in.Wait(500 * time.Millisecond)
	if len(rec.results) != 1 {
		t.Fatalf("matches = %d, want 1 at the threshold", len(rec.results))
	}
	if s := detectorState(t, e, a, "hold"); s != StateMatched {
		t.Errorf("state = %v, want matched", s)
	}
	in.Wait(time.Second)
	in.Release(1, 5, 5)
	if len(rec.results) != 1 {
		t.Errorf("matches = %d, want 1", len(rec.results))
	}
	res := rec.last()
	if res.Duration != 500*time.Millisecond || res.Center != (Vec2{5, 5}) {
		t.Errorf("result = %+v", res)
	}
}

func TestHoldAtReleaseWithoutAdvance(t *testing.T) {
	e := newTestEngine(t)
	a := &element{}
	var rec recorder
	mustBind(t, e, a, "hold", rec.handle)

	e.HandleRaw(a, raw(1, 0, 0, 0), PhaseStart)
	e.HandleRaw(nil, raw(1, 2, 0, 700*time.Millisecond), PhaseEnd)
	if len(rec.results) != 1 {
		t.Errorf("matches = %d, want 1", len(rec.results))
	}
}

func TestHoldCancel(t *testing.T) {
	e := newTestEngine(t)
	a := &element{}
	var rec recorder
	mustBind(t, e, a, "hold", rec.handle)

	in := NewInjector(e, a, t0)
	in.Press(1, 0, 0)
	in.Wait(200 * time.Millisecond)
	in.Cancel(1)
	if s := detectorState(t, e, a, "hold"); s != StateIdle {
		t.Errorf("state = %v, want idle", s)
	}
	in.Wait(time.Second)
	if len(rec.results) != 0 {
		t.Errorf("matches = %d after cancel, want 0", len(rec.results))
	}
}

func TestHoldCancelWithPointsRemaining(t *testing.T) {
	e := newTestEngine(t)
	if err := e.SetConfig("hold", HoldConfig{Inputs: 2, Duration: 500 * time.Millisecond, Tolerance: 10}); err != nil {
		t.Fatal(err)
	}
	a := &element{}
	var rec recorder
	mustBind(t, e, a, "hold", rec.handle)

	in := NewInjector(e, a, t0)
	in.Press(1, 0, 0)
	in.Press(2, 40, 0)
	in.Cancel(1)
	if s := detectorState(t, e, a, "hold"); s != StateFailed {
		t.Errorf("state = %v, want failed", s)
	}
	in.Wait(time.Second)
	in.Release(2, 40, 0)
	if len(rec.results) != 0 {
		t.Errorf("matches = %d after cancel, want 0", len(rec.results))
	}
	if s := detectorState(t, e, a, "hold"); s != StateIdle {
		t.Errorf("state = %v, want idle", s)
	}
}
