package gesture

import "time"

const defaultHistorySize = 16

// RawPoint is one host-reported contact sample, already normalized to the
// engine's coordinate space.
type RawPoint struct {
	Contact int // host-native contact id, stable while the contact is down
	X, Y    float64
	Time    time.Time
}

// PointEvent is one point-lifecycle event produced by the Tracker.
type PointEvent struct {
	Point *InputPoint
	Phase Phase
}

// Target returns the handle the event's contact is bound to.
func (e PointEvent) Target() Target { return e.Point.target }

// Tracker assigns stable identities to contacts and keeps their position
// history. A contact is bound to the target it started on; later phases of the
// same contact are routed there regardless of where the host reports them.
type Tracker struct {
	active     map[int]*InputPoint
	nextID     PointID
	historyCap int
}

// NewTracker creates a Tracker retaining historySize samples per point.
// Values below 2 use the default.
func NewTracker(historySize int) *Tracker {
	if historySize < 2 {
		historySize = defaultHistorySize
	}
	return &Tracker{
		active:     make(map[int]*InputPoint),
		historyCap: historySize,
	}
}

// OnRawEvent converts a raw contact change into a point-lifecycle event.
// It returns false when the event refers to a contact the tracker does not
// know (a move or release without a start).
//
// A start for a contact that is still active cancels the stale point; the
// returned event is that cancel and the new contact is not started.
func (t *Tracker) OnRawEvent(target Target, raw RawPoint, phase Phase) (PointEvent, bool) {
	s := Sample{Pos: Vec2{raw.X, raw.Y}, Time: raw.Time}

	if phase == PhaseStart {
		if stale, ok := t.active[raw.Contact]; ok {
			delete(t.active, raw.Contact)
			stale.Phase = PhaseCancel
			return PointEvent{Point: stale, Phase: PhaseCancel}, true
		}
		t.nextID++
		p := newInputPoint(t.nextID, raw.Contact, target, s, t.historyCap)
		t.active[raw.Contact] = p
		return PointEvent{Point: p, Phase: PhaseStart}, true
	}

	p, ok := t.active[raw.Contact]
	if !ok {
		return PointEvent{}, false
	}
	if phase != PhaseCancel {
		p.push(s)
	}
	p.Phase = phase
	if phase.released() {
		delete(t.active, raw.Contact)
	}
	return PointEvent{Point: p, Phase: phase}, true
}

// Active returns the number of contacts currently down.
func (t *Tracker) Active() int { return len(t.active) }

// Contacts returns the host contact ids currently down, in no particular order.
func (t *Tracker) Contacts() []int {
	out := make([]int, 0, len(t.active))
	for c := range t.active {
		out = append(out, c)
	}
	return out
}
