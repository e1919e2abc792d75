package gesture

import "time"

// SwipeConfig holds the thresholds of the swipe detector.
type SwipeConfig struct {
	Inputs         int           `yaml:"inputs"`          // points that must be down together
	MaxRestTime    time.Duration `yaml:"max_rest_time"`   // trailing window used to measure release velocity
	EscapeVelocity float64       `yaml:"escape_velocity"` // minimum release speed in pixels per second
}

// DefaultSwipeConfig returns the built-in swipe thresholds.
func DefaultSwipeConfig() SwipeConfig {
	return SwipeConfig{
		Inputs:         1,
		MaxRestTime:    100 * time.Millisecond,
		EscapeVelocity: 200,
	}
}

// Swipe recognizes a fast flick. Only the velocity at release matters: a long
// slow drag that comes to rest before lifting fails.
type Swipe struct {
	keyName
	cfg   SwipeConfig
	state State
	set   pointSet

	speed float64 // sum of release speeds this cycle
	dir   float64 // sum of release directions this cycle
	fast  int     // points released at or above the escape velocity
}

// NewSwipe creates a swipe detector. Non-positive Inputs is treated as 1.
func NewSwipe(cfg SwipeConfig) *Swipe {
	if cfg.Inputs < 1 {
		cfg.Inputs = 1
	}
	return &Swipe{cfg: cfg}
}

func (d *Swipe) Key() string { return d.keyOr("swipe") }
func (d *Swipe) State() State { return d.state }
func (d *Swipe) Config() SwipeConfig { return d.cfg }

func (d *Swipe) Reset() {
	d.state = StateIdle
	d.set.clear()
	d.speed, d.dir, d.fast = 0, 0, 0
}

func (d *Swipe) OnPointEvent(ev PointEvent) (Result, bool) {
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
	case PhaseCancel:
		d.state = StateFailed
		if d.set.track(ev) {
			d.Reset()
		}
	case PhaseEnd:
		if d.state == StateCandidate {
			speed, dir := p.Velocity(d.cfg.MaxRestTime)
			if speed >= d.cfg.EscapeVelocity && speed > 0 {
				d.speed += speed
				d.dir += dir
				d.fast++
			} else {
				d.state = StateFailed
			}
		}
		if !d.set.track(ev) {
			return Result{}, false
		}
		ok := d.state == StateCandidate && d.fast == d.cfg.Inputs && d.set.peak == d.cfg.Inputs
		var res Result
		if ok {
			n := float64(d.fast)
			res = Result{
				Gesture:   d.Key(),
				Points:    snapshots(d.set.cycle),
				Time:      p.Current.Time,
				Final:     true,
				Center:    centroidOf(d.set.cycle),
				Distance:  distance(centroidOfOrigins(d.set.cycle), centroidOf(d.set.cycle)),
				Direction: d.dir / n,
				Velocity:  d.speed / n,
				Duration:  p.Current.Time.Sub(d.set.started),
			}
		}
		d.Reset()
		return res, ok
	}
	return Result{}, false
}
