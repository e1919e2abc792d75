package gesture

import "math"

// RotateConfig holds the threshold of the rotate detector.
type RotateConfig struct {
	Threshold float64 `yaml:"threshold"` // cumulative rotation in degrees before matching
}

// DefaultRotateConfig returns the built-in rotate threshold.
func DefaultRotateConfig() RotateConfig {
	return RotateConfig{Threshold: 1}
}

// Rotate recognizes two points turning about each other. The angle of the
// line between the points is unwrapped step by step, so rotations past 180
// degrees accumulate instead of flipping sign.
type Rotate struct {
	keyName
	cfg       RotateConfig
	state     State
	set       pointSet
	prevAngle float64 // raw line angle at the previous move
	total     float64 // unwrapped rotation since the second point went down
	emitted   float64 // total at the previous emission
	finished  bool
}

// NewRotate creates a rotate detector.
func NewRotate(cfg RotateConfig) *Rotate {
	return &Rotate{cfg: cfg}
}

func (d *Rotate) Key() string { return d.keyOr("rotate") }
func (d *Rotate) State() State { return d.state }
func (d *Rotate) Config() RotateConfig { return d.cfg }

func (d *Rotate) Reset() {
	d.state = StateIdle
	d.set.clear()
	d.prevAngle, d.total, d.emitted = 0, 0, 0
	d.finished = false
}

func (d *Rotate) lineAngle() float64 {
	return angleDeg(d.set.points[0].Current.Pos, d.set.points[1].Current.Pos)
}

func (d *Rotate) OnPointEvent(ev PointEvent) (Result, bool) {
	p := ev.Point
	switch ev.Phase {
	case PhaseStart:
		if d.state == StateIdle {
			d.state = StateCandidate
		}
		d.set.add(p)
		switch {
		case d.set.len() > 2:
			d.state = StateFailed
		case d.set.len() == 2 && d.state == StateCandidate:
			d.prevAngle = d.lineAngle()
		}
	case PhaseMove:
		if d.set.len() != 2 || d.finished || d.state == StateFailed {
			return Result{}, false
		}
		cur := d.lineAngle()
		d.total += normalizeDeg(cur - d.prevAngle)
		d.prevAngle = cur
		if d.state == StateCandidate && math.Abs(d.total) >= d.cfg.Threshold {
			d.state = StateMatched
		}
		if d.state == StateMatched {
			return d.result(p, false), true
		}
	case PhaseCancel:
		d.state = StateFailed
		if d.set.track(ev) {
			d.Reset()
		}
	case PhaseEnd:
		var res Result
		var ok bool
		switch d.state {
		case StateCandidate:
			d.state = StateFailed
		case StateMatched:
			if !d.finished && d.set.len() == 2 {
				res, ok = d.result(p, true), true
				d.finished = true
			}
		}
		if d.set.track(ev) {
			d.Reset()
		}
		return res, ok
	}
	return Result{}, false
}

func (d *Rotate) result(p *InputPoint, final bool) Result {
	a, b := d.set.points[0].Current.Pos, d.set.points[1].Current.Pos
	res := Result{
		Gesture:    d.Key(),
		Points:     snapshots(d.set.points),
		Time:       p.Current.Time,
		Final:      final,
		Center:     midpoint(a, b),
		Distance:   distance(a, b),
		Direction:  d.prevAngle,
		Angle:      d.total,
		AngleDelta: d.total - d.emitted,
		Duration:   p.Current.Time.Sub(d.set.started),
	}
	d.emitted = d.total
	return res
}
