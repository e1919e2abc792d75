package gesture

import "time"

const velocityWindow = 100 * time.Millisecond

// PanConfig holds the thresholds of the pan detector.
type PanConfig struct {
	Inputs    int     `yaml:"inputs"`    // points that must be down together
	Threshold float64 `yaml:"threshold"` // travel in pixels before the pan starts
}

// DefaultPanConfig returns the built-in pan thresholds.
func DefaultPanConfig() PanConfig {
	return PanConfig{Inputs: 1, Threshold: 1}
}

// Pan recognizes continuous movement. It emits on every move once any point
// has travelled past the threshold, and a final result on release.
type Pan struct {
	keyName
	cfg      PanConfig
	state    State
	set      pointSet
	origin   Vec2 // centroid when the pan started
	last     Vec2 // centroid at the previous emission
	finished bool // final result already emitted this cycle
}

// NewPan creates a pan detector. Non-positive Inputs is treated as 1.
func NewPan(cfg PanConfig) *Pan {
	if cfg.Inputs < 1 {
		cfg.Inputs = 1
	}
	return &Pan{cfg: cfg}
}

func (d *Pan) Key() string { return d.keyOr("pan") }
func (d *Pan) State() State { return d.state }
func (d *Pan) Config() PanConfig { return d.cfg }

func (d *Pan) Reset() {
	d.state = StateIdle
	d.set.clear()
	d.origin, d.last = Vec2{}, Vec2{}
	d.finished = false
}

func (d *Pan) OnPointEvent(ev PointEvent) (Result, bool) {
	p := ev.Point
	switch ev.Phase {
	case PhaseStart:
		if d.state == StateIdle {
			d.state = StateCandidate
		}
		d.set.add(p)
		if d.set.len() > d.cfg.Inputs {
			d.state = StateFailed
		}
	case PhaseMove:
		switch d.state {
		case StateCandidate:
			if d.set.len() != d.cfg.Inputs || p.Displacement() <= d.cfg.Threshold {
				return Result{}, false
			}
			d.state = StateMatched
			d.origin = centroidOfOrigins(d.set.points)
			d.last = d.origin
			return d.result(p, false), true
		case StateMatched:
			if d.finished {
				return Result{}, false
			}
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
			if !d.finished {
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

func (d *Pan) result(p *InputPoint, final bool) Result {
	c := d.set.centroid()
	speed, _ := p.Velocity(velocityWindow)
	res := Result{
		Gesture:   d.Key(),
		Points:    snapshots(d.set.points),
		Time:      p.Current.Time,
		Final:     final,
		Center:    c,
		Delta:     c.Sub(d.last),
		Distance:  distance(d.origin, c),
		Direction: angleDeg(d.origin, c),
		Velocity:  speed,
		Duration:  p.Current.Time.Sub(d.set.started),
	}
	d.last = c
	return res
}

// centroidOfOrigins returns the mean origin position of points.
func centroidOfOrigins(points []*InputPoint) Vec2 {
	var c Vec2
	if len(points) == 0 {
		return c
	}
	for _, p := range points {
		c.X += p.Origin.Pos.X
		c.Y += p.Origin.Pos.Y
	}
	n := float64(len(points))
	return Vec2{c.X / n, c.Y / n}
}
