package gesture

import "time"

// TapConfig holds the thresholds of the tap detector.
type TapConfig struct {
	Inputs      int           `yaml:"inputs"`       // points that must be down together
	MinDuration time.Duration `yaml:"min_duration"` // shortest accepted press
	MaxDuration time.Duration `yaml:"max_duration"` // presses this long or longer fail
	Tolerance   float64       `yaml:"tolerance"`    // max travel per point in pixels
}

// DefaultTapConfig returns the built-in tap thresholds.
func DefaultTapConfig() TapConfig {
	return TapConfig{
		Inputs:      1,
		MaxDuration: 300 * time.Millisecond,
		Tolerance:   10,
	}
}

// Tap recognizes a short press and release without travel. It matches on the
// release of the last point of the cycle.
type Tap struct {
	keyName
	cfg   TapConfig
	state State
	set   pointSet
}

// NewTap creates a tap detector. Non-positive Inputs is treated as 1.
func NewTap(cfg TapConfig) *Tap {
	if cfg.Inputs < 1 {
		cfg.Inputs = 1
	}
	return &Tap{cfg: cfg}
}

func (d *Tap) Key() string { return d.keyOr("tap") }
func (d *Tap) State() State { return d.state }
func (d *Tap) Config() TapConfig { return d.cfg }

func (d *Tap) Reset() {
	d.state = StateIdle
	d.set.clear()
}

func (d *Tap) OnPointEvent(ev PointEvent) (Result, bool) {
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
		if d.state == StateCandidate && p.Displacement() > d.cfg.Tolerance {
			d.state = StateFailed
		}
	case PhaseCancel:
		d.state = StateFailed
		if d.set.track(ev) {
			d.Reset()
		}
	case PhaseEnd:
		if d.state == StateCandidate && p.Displacement() > d.cfg.Tolerance {
			d.state = StateFailed
		}
		if !d.set.track(ev) {
			return Result{}, false
		}
		elapsed := p.Current.Time.Sub(d.set.started)
		ok := d.state == StateCandidate &&
			d.set.peak == d.cfg.Inputs &&
			elapsed >= d.cfg.MinDuration &&
			elapsed < d.cfg.MaxDuration
		var res Result
		if ok {
			res = Result{
				Gesture:  d.Key(),
				Points:   snapshots(d.set.cycle),
				Time:     p.Current.Time,
				Final:    true,
				Center:   centroidOf(d.set.cycle),
				Duration: elapsed,
			}
		}
		d.Reset()
		return res, ok
	}
	return Result{}, false
}

// centroidOf returns the mean current position of points.
func centroidOf(points []*InputPoint) Vec2 {
	var c Vec2
	if len(points) == 0 {
		return c
	}
	for _, p := range points {
		c.X += p.Current.Pos.X
		c.Y += p.Current.Pos.Y
	}
	n := float64(len(points))
	return Vec2{c.X / n, c.Y / n}
}
