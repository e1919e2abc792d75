package gesture

import "time"

// State is a detector's recognition state within one cycle.
type State uint8

const (
	StateIdle      State = iota // no points observed this cycle
	StateCandidate              // points observed, not yet disqualified
	StateMatched                // pattern satisfied; emits while points remain
	StateFailed                 // disqualified; silent until full release
)

var stateNames = [...]string{"idle", "candidate", "matched", "failed"}

func (s State) String() string {
	if int(s) < len(stateNames) {
		return stateNames[s]
	}
	return "unknown"
}

// Detector is a per-gesture-type recognition state machine. One instance is
// attached per (Region, gesture key). OnPointEvent is only ever called with
// points the detector has seen start within its current cycle.
type Detector interface {
	// Key returns the gesture key the detector recognizes.
	Key() string
	// OnPointEvent advances the state machine and reports a match.
	OnPointEvent(ev PointEvent) (Result, bool)
	// Reset returns the detector to StateIdle and forgets its points.
	Reset()
	// State returns the current recognition state.
	State() State
}

// Ticker is implemented by detectors that can match with the passage of time
// alone (e.g. hold). Engine.Advance calls Tick on every attached Ticker.
type Ticker interface {
	Tick(now time.Time) (Result, bool)
}

// Result is the payload delivered to handlers when a detector matches.
// Metric fields are filled as applicable to the gesture.
type Result struct {
	Gesture string
	Target  Target
	Points  []PointSnapshot
	Time    time.Time

	// Final is set on the last emission of a cycle. Discrete gestures (tap,
	// swipe, hold) always emit a single final result.
	Final bool
	// Capture is the capture flag of the binding receiving the result.
	Capture bool

	Center        Vec2          // centroid of the involved points
	Delta         Vec2          // centroid movement since the previous emission
	Distance      float64       // displacement from origin, or inter-point distance for two-point gestures
	DistanceDelta float64       // inter-point distance change since the previous emission
	Direction     float64       // direction of travel in degrees
	Velocity      float64       // pixels per second
	Duration      time.Duration // time since the cycle started
	Scale         float64       // current / initial inter-point distance
	Angle         float64       // cumulative rotation in degrees
	AngleDelta    float64       // rotation since the previous emission
}

// keyName is embedded by the built-in detectors. It holds the registry key a
// detector was built under when that differs from its default.
type keyName struct {
	key string
}

func (k *keyName) setKey(key string) { k.key = key }

func (k *keyName) keyOr(def string) string {
	if k.key != "" {
		return k.key
	}
	return def
}

// pointSet tracks the points a detector has observed in the current cycle,
// in start order, plus every point seen this cycle, the cycle's start time and
// its peak concurrency.
type pointSet struct {
	points  []*InputPoint
	cycle   []*InputPoint
	started time.Time
	peak    int
}

func (s *pointSet) add(p *InputPoint) {
	if len(s.points) == 0 {
		s.started = p.Origin.Time
	}
	s.points = append(s.points, p)
	s.cycle = append(s.cycle, p)
	if len(s.points) > s.peak {
		s.peak = len(s.points)
	}
}

func (s *pointSet) remove(p *InputPoint) {
	for i, q := range s.points {
		if q == p {
			copy(s.points[i:], s.points[i+1:])
			s.points[len(s.points)-1] = nil
			s.points = s.points[:len(s.points)-1]
			return
		}
	}
}

func (s *pointSet) len() int { return len(s.points) }

func (s *pointSet) clear() {
	for i := range s.points {
		s.points[i] = nil
	}
	s.points = s.points[:0]
	s.cycle = nil
	s.started = time.Time{}
	s.peak = 0
}

// centroid returns the mean current position of the tracked points.
func (s *pointSet) centroid() Vec2 { return centroidOf(s.points) }

// track applies the common bookkeeping for ev: starts are added, releases are
// removed. It returns true when the release emptied the set.
func (s *pointSet) track(ev PointEvent) (emptied bool) {
	switch ev.Phase {
	case PhaseStart:
		s.add(ev.Point)
	case PhaseEnd, PhaseCancel:
		s.remove(ev.Point)
		return len(s.points) == 0
	}
	return false
}
