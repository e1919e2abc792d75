package gesture

import "time"

// Target is an opaque handle to the visual element a Region is bound to.
// Targets are compared by identity, so they must be non-nil pointers.
type Target any

// attachment is one detector on a Region together with the points it has
// seen start. Points that went down before the detector was attached are
// never forwarded to it.
type attachment struct {
	key      string
	detector Detector
	seen     map[PointID]struct{}
}

// Region is the recognition scope of one target. It owns the target's active
// points and routes their lifecycle events to the attached detectors in
// attachment order.
type Region struct {
	target      Target
	points      []*InputPoint // active, in start order
	attachments []*attachment
}

func newRegion(target Target) *Region {
	return &Region{target: target}
}

// Target returns the handle the region is bound to.
func (r *Region) Target() Target { return r.target }

// ActivePoints returns the points currently down on the region, in start
// order. The returned slice MUST NOT be mutated.
func (r *Region) ActivePoints() []*InputPoint { return r.points }

// Keys returns the attached gesture keys in attachment order.
func (r *Region) Keys() []string {
	out := make([]string, len(r.attachments))
	for i, a := range r.attachments {
		out[i] = a.key
	}
	return out
}

// Detector returns the detector attached under key.
func (r *Region) Detector(key string) (Detector, bool) {
	if a := r.find(key); a != nil {
		return a.detector, true
	}
	return nil, false
}

func (r *Region) find(key string) *attachment {
	for _, a := range r.attachments {
		if a.key == key {
			return a
		}
	}
	return nil
}

// attach attaches a detector for key, reusing an existing attachment. When d
// is nil the detector is built from reg with cfg (nil cfg means defaults).
func (r *Region) attach(key string, d Detector, reg *Registry, cfg any) (Detector, error) {
	if a := r.find(key); a != nil {
		return a.detector, nil
	}
	if d == nil {
		var err error
		if d, err = reg.newDetector(key, cfg); err != nil {
			return nil, err
		}
	}
	d.Reset()
	r.attachments = append(r.attachments, &attachment{
		key:      key,
		detector: d,
		seen:     make(map[PointID]struct{}),
	})
	return d, nil
}

// detach removes the detector for key. It reports whether the region has no
// detectors left and can be destroyed.
func (r *Region) detach(key string) (empty bool) {
	for i, a := range r.attachments {
		if a.key == key {
			copy(r.attachments[i:], r.attachments[i+1:])
			r.attachments[len(r.attachments)-1] = nil
			r.attachments = r.attachments[:len(r.attachments)-1]
			break
		}
	}
	return len(r.attachments) == 0
}

// route forwards ev to every attached detector in attachment order, then
// reconciles the active point set. Matches are returned in the same order,
// with the gesture key set to the attachment key.
func (r *Region) route(ev PointEvent) []Result {
	var out []Result
	id := ev.Point.ID
	for _, a := range r.attachments {
		if ev.Phase == PhaseStart {
			a.seen[id] = struct{}{}
		} else if _, ok := a.seen[id]; !ok {
			continue
		}
		if ev.Phase.released() {
			delete(a.seen, id)
		}
		if res, ok := a.detector.OnPointEvent(ev); ok {
			out = append(out, r.stamp(a, res))
		}
	}

	switch ev.Phase {
	case PhaseStart:
		r.points = append(r.points, ev.Point)
	case PhaseEnd, PhaseCancel:
		for i, p := range r.points {
			if p == ev.Point {
				copy(r.points[i:], r.points[i+1:])
				r.points[len(r.points)-1] = nil
				r.points = r.points[:len(r.points)-1]
				break
			}
		}
	}
	return out
}

// tick advances time-driven detectors to now.
func (r *Region) tick(now time.Time) []Result {
	var out []Result
	for _, a := range r.attachments {
		t, ok := a.detector.(Ticker)
		if !ok {
			continue
		}
		if res, ok := t.Tick(now); ok {
			out = append(out, r.stamp(a, res))
		}
	}
	return out
}

func (r *Region) stamp(a *attachment, res Result) Result {
	res.Gesture = a.key
	res.Target = r.target
	return res
}
