package gesture

import "math"

// DistanceConfig holds the threshold of the two-point distance detectors.
type DistanceConfig struct {
	Threshold float64 `yaml:"threshold"` // inter-point distance change in pixels before matching
}

// DefaultDistanceConfig returns the built-in distance threshold.
func DefaultDistanceConfig() DistanceConfig {
	return DistanceConfig{Threshold: 1}
}

// DistanceMode selects which direction of change a Distance detector accepts
// before it starts matching.
type DistanceMode uint8

const (
	DistanceAny    DistanceMode = iota // either direction ("distance")
	DistancePinch                      // points moving closer ("pinch")
	DistanceExpand                     // points moving apart ("expand")
)

var distanceKeys = [...]string{"distance", "pinch", "expand"}

// Distance recognizes two points moving relative to each other. Once the
// change crosses the threshold in the mode's direction it emits on every move
// until either point lifts. A third point disqualifies the cycle.
type Distance struct {
	keyName
	cfg      DistanceConfig
	mode     DistanceMode
	state    State
	set      pointSet
	initial  float64
	prev     float64
	finished bool
}

// NewDistance creates a two-point distance detector for mode.
func NewDistance(mode DistanceMode, cfg DistanceConfig) *Distance {
	return &Distance{cfg: cfg, mode: mode}
}

// NewPinch creates a distance detector that starts on points moving closer.
func NewPinch(cfg DistanceConfig) *Distance { return NewDistance(DistancePinch, cfg) }

// NewExpand creates a distance detector that starts on points moving apart.
func NewExpand(cfg DistanceConfig) *Distance { return NewDistance(DistanceExpand, cfg) }

func (d *Distance) Key() string { return d.keyOr(distanceKeys[d.mode]) }
func (d *Distance) State() State { return d.state }
func (d *Distance) Config() DistanceConfig { return d.cfg }

func (d *Distance) Reset() {
	d.state = StateIdle
	d.set.clear()
	d.initial, d.prev = 0, 0
	d.finished = false
}

func (d *Distance) span() float64 {
	return distance(d.set.points[0].Current.Pos, d.set.points[1].Current.Pos)
}

func (d *Distance) crossed(change float64) bool {
	switch d.mode {
	case DistancePinch:
		return -change >= d.cfg.Threshold
	case DistanceExpand:
		return change >= d.cfg.Threshold
	default:
		return math.Abs(change) >= d.cfg.Threshold
	}
}

func (d *Distance) OnPointEvent(ev PointEvent) (Result, bool) {
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
			d.initial = d.span()
			d.prev = d.initial
		}
	case PhaseMove:
		if d.set.len() != 2 || d.finished {
			return Result{}, false
		}
		if d.state == StateCandidate && d.crossed(d.span()-d.initial) {
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

func (d *Distance) result(p *InputPoint, final bool) Result {
	cur := d.span()
	scale := 1.0
	if d.initial > 0 {
		scale = cur / d.initial
	}
	res := Result{
		Gesture:       d.Key(),
		Points:        snapshots(d.set.points),
		Time:          p.Current.Time,
		Final:         final,
		Center:        midpoint(d.set.points[0].Current.Pos, d.set.points[1].Current.Pos),
		Distance:      cur,
		DistanceDelta: cur - d.prev,
		Scale:         scale,
		Duration:      p.Current.Time.Sub(d.set.started),
	}
	d.prev = cur
	return res
}
