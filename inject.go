package gesture

import (
	"math"
	"time"

	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// Injector feeds synthetic contacts to an Engine on a virtual clock. It is
// meant for tests and scripted replays: every call is delivered immediately
// and the clock only moves when told to.
type Injector struct {
	engine *Engine
	target Target
	now    time.Time
}

// NewInjector creates an injector whose contacts start on target and whose
// clock starts at start.
func NewInjector(e *Engine, target Target, start time.Time) *Injector {
	return &Injector{engine: e, target: target, now: start}
}

// Now returns the virtual clock.
func (in *Injector) Now() time.Time { return in.now }

// SetTarget changes the target new contacts start on.
func (in *Injector) SetTarget(t Target) { in.target = t }

// Wait advances the virtual clock by d and lets time-driven detectors see it.
func (in *Injector) Wait(d time.Duration) {
	in.now = in.now.Add(d)
	in.engine.Advance(in.now)
}

func (in *Injector) raw(contact int, x, y float64) RawPoint {
	return RawPoint{Contact: contact, X: x, Y: y, Time: in.now}
}

// Press starts contact at (x, y).
func (in *Injector) Press(contact int, x, y float64) {
	in.engine.HandleRaw(in.target, in.raw(contact, x, y), PhaseStart)
}

// Move moves contact to (x, y).
func (in *Injector) Move(contact int, x, y float64) {
	in.engine.HandleRaw(nil, in.raw(contact, x, y), PhaseMove)
}

// Release lifts contact at (x, y).
func (in *Injector) Release(contact int, x, y float64) {
	in.engine.HandleRaw(nil, in.raw(contact, x, y), PhaseEnd)
}

// Cancel aborts contact.
func (in *Injector) Cancel(contact int) {
	in.engine.HandleRaw(nil, in.raw(contact, 0, 0), PhaseCancel)
}

// Tap presses and releases contact at (x, y), held for d.
func (in *Injector) Tap(contact int, x, y float64, d time.Duration) {
	in.Press(contact, x, y)
	in.Wait(d)
	in.Release(contact, x, y)
}

// Drag presses contact at from, moves it to to in steps moves spread evenly
// over d with positions shaped by fn (ease.Linear when nil), and releases it
// at to.
func (in *Injector) Drag(contact int, from, to Vec2, d time.Duration, steps int, fn ease.TweenFunc) {
	if steps < 1 {
		steps = 1
	}
	in.Press(contact, from.X, from.Y)
	path := easedPath(from, to, steps, fn)
	for _, p := range path {
		in.Wait(d / time.Duration(steps))
		in.Move(contact, p.X, p.Y)
	}
	in.Release(contact, to.X, to.Y)
}

// Pinch places contacts a and b on opposite sides of center, spreadFrom
// apart, moves them to spreadTo apart over d in steps moves and releases
// both. spreadTo < spreadFrom pinches, spreadTo > spreadFrom expands.
func (in *Injector) Pinch(a, b int, center Vec2, spreadFrom, spreadTo float64, d time.Duration, steps int) {
	if steps < 1 {
		steps = 1
	}
	half := spreadFrom / 2
	in.Press(a, center.X-half, center.Y)
	in.Press(b, center.X+half, center.Y)
	tw := gween.New(float32(spreadFrom), float32(spreadTo), float32(steps), ease.Linear)
	for i := 0; i < steps; i++ {
		v, _ := tw.Update(1)
		half = float64(v) / 2
		in.Wait(d / time.Duration(steps))
		in.Move(a, center.X-half, center.Y)
		in.Move(b, center.X+half, center.Y)
	}
	in.Release(a, center.X-half, center.Y)
	in.Release(b, center.X+half, center.Y)
}

// Rotate places contacts a and b radius away from center at fromDeg and
// fromDeg+180, turns them to toDeg over d in steps moves and releases both.
func (in *Injector) Rotate(a, b int, center Vec2, radius, fromDeg, toDeg float64, d time.Duration, steps int) {
	if steps < 1 {
		steps = 1
	}
	at := func(deg float64) (Vec2, Vec2) {
		s, c := math.Sincos(deg * math.Pi / 180)
		off := Vec2{c * radius, s * radius}
		return center.Add(off), center.Sub(off)
	}
	pa, pb := at(fromDeg)
	in.Press(a, pa.X, pa.Y)
	in.Press(b, pb.X, pb.Y)
	tw := gween.New(float32(fromDeg), float32(toDeg), float32(steps), ease.Linear)
	for i := 0; i < steps; i++ {
		v, _ := tw.Update(1)
		pa, pb = at(float64(v))
		in.Wait(d / time.Duration(steps))
		in.Move(a, pa.X, pa.Y)
		in.Move(b, pb.X, pb.Y)
	}
	in.Release(a, pa.X, pa.Y)
	in.Release(b, pb.X, pb.Y)
}

// easedPath returns steps positions from just after from up to and
// including to, spaced by the easing function.
func easedPath(from, to Vec2, steps int, fn ease.TweenFunc) []Vec2 {
	if fn == nil {
		fn = ease.Linear
	}
	tx := gween.New(float32(from.X), float32(to.X), float32(steps), fn)
	ty := gween.New(float32(from.Y), float32(to.Y), float32(steps), fn)
	out := make([]Vec2, 0, steps)
	for i := 0; i < steps; i++ {
		x, _ := tx.Update(1)
		y, _ := ty.Update(1)
		out = append(out, Vec2{float64(x), float64(y)})
	}
	// Pin the end exactly; float32 tweening can leave a residue.
	out[steps-1] = to
	return out
}
