package gesture

import (
	"testing"
	"time"
)

func TestPinchScale(t *testing.T) {
	e := newTestEngine(t)
	a := &element{}
	var pinch, expand recorder
	mustBind(t, e, a, "pinch", pinch.handle)
	mustBind(t, e, a, "expand", expand.handle)

	NewInjector(e, a, t0).Pinch(1, 2, Vec2{100, 100}, 200, 80, 100*time.Millisecond, 4)

	if len(pinch.results) == 0 {
		t.Fatal("pinch never matched")
	}
	last := pinch.last()
	if !last.Final {
		t.Error("last pinch emit is not final")
	}
	if !approx(last.Scale, 0.4) {
		t.Errorf("Scale = %v, want 0.4", last.Scale)
	}
	if !approx(last.Distance, 80) {
		t.Errorf("Distance = %v, want 80", last.Distance)
	}
	if last.Center != (Vec2{100, 100}) {
		t.Errorf("Center = %v, want {100 100}", last.Center)
	}
	for i, res := range pinch.results[:len(pinch.results)-1] {
		if res.Final {
			t.Errorf("emit %d is final", i)
		}
		if res.DistanceDelta >= 0 {
			t.Errorf("emit %d DistanceDelta = %v, want negative", i, res.DistanceDelta)
		}
	}
	if len(expand.results) != 0 {
		t.Errorf("expand emitted %d times on a pinch", len(expand.results))
	}
	for _, key := range []string{"pinch", "expand"} {
		if s := detectorState(t, e, a, key); s != StateIdle {
			t.Errorf("%s state = %v, want idle", key, s)
		}
	}
}

func TestExpandAndDistance(t *testing.T) {
	e := newTestEngine(t)
	a := &element{}
	var expand, dist, pinch recorder
	mustBind(t, e, a, "expand", expand.handle)
	mustBind(t, e, a, "distance", dist.handle)
	mustBind(t, e, a, "pinch", pinch.handle)

	NewInjector(e, a, t0).Pinch(1, 2, Vec2{0, 0}, 50, 150, 40*time.Millisecond, 2)

	if len(expand.results) == 0 || !approx(expand.last().Scale, 3) {
		t.Errorf("expand results = %d, last scale = %v", len(expand.results), expand.last().Scale)
	}
	if len(dist.results) != len(expand.results) {
		t.Errorf("distance emits = %d, expand emits = %d", len(dist.results), len(expand.results))
	}
	if len(pinch.results) != 0 {
		t.Errorf("pinch emitted %d times on an expand", len(pinch.results))
	}
}

func TestDistanceThirdPointFails(t *testing.T) {
	e := newTestEngine(t)
	a := &element{}
	var rec recorder
	mustBind(t, e, a, "distance", rec.handle)

	in := NewInjector(e, a, t0)
	in.Press(1, 0, 0)
	in.Press(2, 100, 0)
	in.Press(3, 50, 50)
	if s := detectorState(t, e, a, "distance"); s != StateFailed {
		t.Errorf("state = %v, want failed", s)
	}
	in.Move(2, 200, 0)
	in.Release(3, 50, 50)
	in.Move(2, 250, 0)
	in.Release(1, 0, 0)
	in.Release(2, 250, 0)
	if len(rec.results) != 0 {
		t.Errorf("emits = %d, want 0", len(rec.results))
	}
	if s := detectorState(t, e, a, "distance"); s != StateIdle {
		t.Errorf("state = %v, want idle", s)
	}
}

func TestDistanceSinglePoint(t *testing.T) {
	e := newTestEngine(t)
	a := &element{}
	var rec recorder
	mustBind(t, e, a, "distance", rec.handle)

	NewInjector(e, a, t0).Drag(1, Vec2{}, Vec2{100, 0}, 50*time.Millisecond, 5, nil)
	if len(rec.results) != 0 {
		t.Errorf("one point produced %d distance emits", len(rec.results))
	}
}

func TestDistanceCancel(t *testing.T) {
	keys := []string{"pinch", "expand", "distance"}
	for _, key := range keys {
		t.Run(key, func(t *testing.T) {
			e := newTestEngine(t)
			a := &element{}
			var rec recorder
			mustBind(t, e, a, key, rec.handle)

			in := NewInjector(e, a, t0)
			in.Press(1, 0, 0)
			in.Press(2, 100, 0)
			if key == "expand" {
				in.Move(2, 150, 0)
			} else {
				in.Move(2, 50, 0)
			}
			if s := detectorState(t, e, a, key); s != StateMatched {
				t.Fatalf("state before cancel = %v, want matched", s)
			}
			emitted := len(rec.results)

			in.Cancel(1)
			if s := detectorState(t, e, a, key); s != StateFailed {
				t.Errorf("state after cancel = %v, want failed", s)
			}
			in.Move(2, 70, 0)
			in.Release(2, 70, 0)
			if n := len(rec.results) - emitted; n != 0 {
				t.Errorf("%d emits after cancel, want 0", n)
			}
			for _, res := range rec.results {
				if res.Final {
					t.Error("cancelled cycle produced a final emit")
				}
			}
			if s := detectorState(t, e, a, key); s != StateIdle {
				t.Errorf("state = %v, want idle", s)
			}
		})
	}
}
