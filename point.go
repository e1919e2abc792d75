package gesture

import "time"

// Phase is the lifecycle stage of a contact point.
type Phase uint8

const (
	PhaseStart  Phase = iota // contact went down
	PhaseMove                // contact moved while down
	PhaseEnd                 // contact lifted normally
	PhaseCancel              // host aborted the contact (system interruption, focus loss)
)

var phaseNames = [...]string{"start", "move", "end", "cancel"}

func (p Phase) String() string {
	if int(p) < len(phaseNames) {
		return phaseNames[p]
	}
	return "unknown"
}

// released reports whether p terminates a contact.
func (p Phase) released() bool {
	return p == PhaseEnd || p == PhaseCancel
}

// PointID identifies an InputPoint for its whole lifecycle. IDs are assigned
// by a Tracker and never reused by it.
type PointID uint64

// Sample is one observed position of a contact.
type Sample struct {
	Pos  Vec2
	Time time.Time
}

// InputPoint is one tracked contact. It is owned by the Tracker; Regions and
// detectors hold references but never mutate it.
type InputPoint struct {
	ID      PointID
	Contact int // host-native contact id
	Origin  Sample
	Current Sample
	Phase   Phase

	target  Target
	history []Sample // ring buffer, oldest at head
	head    int
	filled  int
}

func newInputPoint(id PointID, contact int, target Target, s Sample, historyCap int) *InputPoint {
	if historyCap < 2 {
		historyCap = 2
	}
	p := &InputPoint{
		ID:      id,
		Contact: contact,
		Origin:  s,
		Current: s,
		Phase:   PhaseStart,
		target:  target,
		history: make([]Sample, historyCap),
	}
	p.push(s)
	return p
}

// push appends a sample, evicting the oldest when the ring is full.
func (p *InputPoint) push(s Sample) {
	n := len(p.history)
	if p.filled < n {
		p.history[(p.head+p.filled)%n] = s
		p.filled++
	} else {
		p.history[p.head] = s
		p.head = (p.head + 1) % n
	}
	p.Current = s
}

// History returns the retained samples, oldest first. The current sample is
// always the last element.
func (p *InputPoint) History() []Sample {
	out := make([]Sample, p.filled)
	for i := 0; i < p.filled; i++ {
		out[i] = p.history[(p.head+i)%len(p.history)]
	}
	return out
}

// Target returns the handle the contact started on.
func (p *InputPoint) Target() Target { return p.target }

// Displacement returns the straight-line distance from origin to the current
// position.
func (p *InputPoint) Displacement() float64 {
	return distance(p.Origin.Pos, p.Current.Pos)
}

// Elapsed returns the time between the first and the current sample.
func (p *InputPoint) Elapsed() time.Duration {
	return p.Current.Time.Sub(p.Origin.Time)
}

// Velocity estimates the speed in pixels per second over the trailing window
// ending at the current sample, using the oldest retained sample inside the
// window. It also returns the direction of travel in degrees. A point that
// has not moved within the window has zero velocity.
func (p *InputPoint) Velocity(window time.Duration) (speed, direction float64) {
	cutoff := p.Current.Time.Add(-window)
	var from *Sample
	for i := 0; i < p.filled; i++ {
		s := &p.history[(p.head+i)%len(p.history)]
		if !s.Time.Before(cutoff) {
			from = s
			break
		}
	}
	if from == nil {
		return 0, 0
	}
	dt := p.Current.Time.Sub(from.Time).Seconds()
	d := distance(from.Pos, p.Current.Pos)
	if dt <= 0 || d == 0 {
		return 0, 0
	}
	return d / dt, angleDeg(from.Pos, p.Current.Pos)
}

// PointSnapshot is an immutable copy of an InputPoint handed to handlers.
type PointSnapshot struct {
	ID      PointID
	Contact int
	Origin  Sample
	Current Sample
	Phase   Phase
}

// Snapshot copies the point's identity and endpoints.
func (p *InputPoint) Snapshot() PointSnapshot {
	return PointSnapshot{
		ID:      p.ID,
		Contact: p.Contact,
		Origin:  p.Origin,
		Current: p.Current,
		Phase:   p.Phase,
	}
}

func snapshots(points []*InputPoint) []PointSnapshot {
	out := make([]PointSnapshot, len(points))
	for i, p := range points {
		out[i] = p.Snapshot()
	}
	return out
}
