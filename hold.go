package gesture

import "time"

// HoldConfig holds the thresholds of the hold detector.
type HoldConfig struct {
	Inputs    int           `yaml:"inputs"`    // points that must be down together
	Duration  time.Duration `yaml:"duration"`  // how long the points must stay down
	Tolerance float64       `yaml:"tolerance"` // max travel per point in pixels
}

// DefaultHoldConfig returns the built-in hold thresholds.
func DefaultHoldConfig() HoldConfig {
	return HoldConfig{
		Inputs:    1,
		Duration:  500 * time.Millisecond,
		Tolerance: 10,
	}
}

// Hold recognizes points resting in place. It matches once per cycle, either
// from a move sample or from Engine.Advance when the host stops sending
// events while the points are still down. A hold that neither observed is
// reported at release if the release itself satisfies it.
type Hold struct {
	keyName
	cfg   HoldConfig
	state State
	set   pointSet
}

// NewHold creates a hold detector. Non-positive Inputs is treated as 1.
func NewHold(cfg HoldConfig) *Hold {
	if cfg.Inputs < 1 {
		cfg.Inputs = 1
	}
	return &Hold{cfg: cfg}
}

func (d *Hold) Key() string { return d.keyOr("hold") }
func (d *Hold) State() State { return d.state }
func (d *Hold) Config() HoldConfig { return d.cfg }

func (d *Hold) Reset() {
	d.state = StateIdle
	d.set.clear()
}

func (d *Hold) OnPointEvent(ev PointEvent) (Result, bool) {
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
		if d.state != StateCandidate {
			return Result{}, false
		}
		if p.Displacement() > d.cfg.Tolerance {
			d.state = StateFailed
			return Result{}, false
		}
		return d.Tick(p.Current.Time)
	case PhaseCancel:
		d.state = StateFailed
		if d.set.track(ev) {
			d.Reset()
		}
	case PhaseEnd:
		var res Result
		var ok bool
		if d.state == StateCandidate {
			if p.Displacement() > d.cfg.Tolerance {
				d.state = StateFailed
			} else {
				res, ok = d.Tick(p.Current.Time)
			}
			if !ok {
				d.state = StateFailed
			}
		}
		if d.set.track(ev) {
			d.Reset()
		}
		return res, ok
	}
	return Result{}, false
}

// Tick matches the hold if the points have been down long enough at now.
func (d *Hold) Tick(now time.Time) (Result, bool) {
	if d.state != StateCandidate || d.set.len() != d.cfg.Inputs {
		return Result{}, false
	}
	held := now.Sub(d.set.started)
	if held < d.cfg.Duration {
		return Result{}, false
	}
	d.state = StateMatched
	return Result{
		Gesture:  d.Key(),
		Points:   snapshots(d.set.points),
		Time:     now,
		Final:    true,
		Center:   d.set.centroid(),
		Duration: held,
	}, true
}
