package gesture

import (
	"fmt"
	"log"
	"os"
	"reflect"
	"sort"
	"time"
)

// EntityStore is the interface for optional ECS integration. When set on an
// Engine, every dispatched result is forwarded to the store after the bound
// handlers ran.
type EntityStore interface {
	EmitEvent(res Result)
}

// queued is one unit of work for the engine: a raw contact change, or a clock
// advance when tick is set.
type queued struct {
	target Target
	raw    RawPoint
	phase  Phase
	tick   bool
}

// Engine ties the pipeline together: Tracker → Region → detectors →
// dispatcher. All work for one raw event, including every handler it
// triggers, completes before the next event is processed. Events submitted
// from inside a handler are queued behind the current one.
//
// An Engine is not safe for concurrent use. Hosts feeding input from several
// goroutines must serialize calls.
type Engine struct {
	registry *Registry
	tracker  *Tracker
	regions  map[Target]*Region
	order    []*Region // creation order, used for ticks
	bindings bindingRegistry
	configs  map[string]any

	store   EntityStore
	onError func(error)
	debug   bool
	logger  *log.Logger

	routing bool
	pending []queued
}

// NewEngine creates an engine over reg. A nil registry uses DefaultRegistry.
func NewEngine(reg *Registry) *Engine {
	if reg == nil {
		reg = DefaultRegistry()
	}
	return &Engine{
		registry: reg,
		tracker:  NewTracker(defaultHistorySize),
		regions:  make(map[Target]*Region),
		configs:  make(map[string]any),
		logger:   log.New(os.Stderr, "[gesture] ", 0),
	}
}

// Registry returns the engine's gesture type registry.
func (e *Engine) Registry() *Registry { return e.registry }

// Tracker returns the engine's point tracker.
func (e *Engine) Tracker() *Tracker { return e.tracker }

// IsValidGesture reports whether v is a registered gesture key or a detector
// with a registered key. It never panics.
func (e *Engine) IsValidGesture(v any) bool { return e.registry.IsValidGesture(v) }

// validTarget reports whether t can identify a region.
func validTarget(t Target) bool {
	if t == nil {
		return false
	}
	v := reflect.ValueOf(t)
	return v.Kind() == reflect.Pointer && !v.IsNil()
}

func isNilPointer(v any) bool {
	rv := reflect.ValueOf(v)
	return rv.Kind() == reflect.Pointer && rv.IsNil()
}

// Bind binds handler to gesture on target. gesture is either a registered key
// or a Detector whose key is registered; a detector instance is attached as
// is when its key is not yet attached to the target, otherwise the existing
// detector is kept. A Detector instance must not be bound to more than one
// target. A failed Bind leaves no state behind.
func (e *Engine) Bind(target Target, gesture any, handler Handler, capture bool) (BindingHandle, error) {
	if !validTarget(target) {
		return BindingHandle{}, fmt.Errorf("bind %T: %w", target, ErrInvalidRegion)
	}
	var key string
	var inst Detector
	switch g := gesture.(type) {
	case string:
		key = g
	case Detector:
		if g != nil && !isNilPointer(g) {
			key, inst = g.Key(), g
		}
	}
	if key == "" || !e.registry.IsValidGesture(key) {
		return BindingHandle{}, fmt.Errorf("bind %v: %w", gesture, ErrInvalidGesture)
	}
	if handler == nil {
		return BindingHandle{}, fmt.Errorf("bind %q: %w", key, ErrInvalidHandler)
	}

	r, existed := e.regions[target]
	if !existed {
		r = newRegion(target)
	}
	if _, err := r.attach(key, inst, e.registry, e.configs[key]); err != nil {
		return BindingHandle{}, fmt.Errorf("bind %q: %w", key, err)
	}
	if !existed {
		e.regions[target] = r
		e.order = append(e.order, r)
	}
	id := e.bindings.add(target, key, handler, capture)
	e.debugf("bind %q on %T (%d bindings)", key, target, e.bindings.count(target, key))
	return BindingHandle{id: id, engine: e, target: target, gesture: key}, nil
}

// Unbind removes the bindings of target for the given gesture keys, or for
// every key when none are given, and detaches the matching detectors. It
// returns the number of bindings removed.
func (e *Engine) Unbind(target Target, keys ...string) int {
	if !validTarget(target) {
		return 0
	}
	r, ok := e.regions[target]
	if !ok {
		return 0
	}
	if len(keys) == 0 {
		keys = r.Keys()
	}
	removed := 0
	for _, key := range keys {
		removed += e.bindings.clear(target, key)
		if r.detach(key) {
			e.destroyRegion(r)
			break
		}
	}
	e.debugf("unbind %v on %T: %d removed", keys, target, removed)
	return removed
}

func (e *Engine) removeBinding(target Target, key string, id uint32) {
	found, emptied := e.bindings.remove(target, key, id)
	if !found || !emptied {
		return
	}
	if r, ok := e.regions[target]; ok && r.detach(key) {
		e.destroyRegion(r)
	}
}

func (e *Engine) destroyRegion(r *Region) {
	delete(e.regions, r.target)
	for i, o := range e.order {
		if o == r {
			copy(e.order[i:], e.order[i+1:])
			e.order[len(e.order)-1] = nil
			e.order = e.order[:len(e.order)-1]
			break
		}
	}
	e.debugf("region %T destroyed", r.target)
}

// Bindings returns the bindings of target in the order they were bound.
func (e *Engine) Bindings(target Target) []BindingInfo {
	if !validTarget(target) {
		return nil
	}
	r, ok := e.regions[target]
	if !ok {
		return nil
	}
	var out []BindingInfo
	for _, key := range r.Keys() {
		for _, b := range e.bindings.snapshot(target, key) {
			out = append(out, BindingInfo{
				Gesture: key,
				Capture: b.capture,
				Handle:  BindingHandle{id: b.id, engine: e, target: target, gesture: key},
			})
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Handle.id < out[j].Handle.id })
	return out
}

// Region returns the region bound to target, if any.
func (e *Engine) Region(target Target) (*Region, bool) {
	if !validTarget(target) {
		return nil, false
	}
	r, ok := e.regions[target]
	return r, ok
}

// RegionCount returns the number of live regions.
func (e *Engine) RegionCount() int { return len(e.order) }

// HandleRaw feeds one host contact change through the pipeline. Contacts are
// bound to the target they start on; target is ignored for later phases.
func (e *Engine) HandleRaw(target Target, raw RawPoint, phase Phase) {
	e.enqueue(queued{target: target, raw: raw, phase: phase})
}

// Advance lets time-driven detectors (hold) observe the clock without a new
// input event. Hosts call it once per frame.
func (e *Engine) Advance(now time.Time) {
	e.enqueue(queued{raw: RawPoint{Time: now}, tick: true})
}

func (e *Engine) enqueue(q queued) {
	e.pending = append(e.pending, q)
	if e.routing {
		return
	}
	e.routing = true
	defer func() {
		// A panic from a detector or the entity store must not leave stale
		// events to replay on the next call.
		e.routing = false
		clear(e.pending)
		e.pending = e.pending[:0]
	}()
	for len(e.pending) > 0 {
		next := e.pending[0]
		copy(e.pending, e.pending[1:])
		e.pending[len(e.pending)-1] = queued{}
		e.pending = e.pending[:len(e.pending)-1]
		e.process(next)
	}
}

func (e *Engine) process(q queued) {
	if q.tick {
		regions := make([]*Region, len(e.order))
		copy(regions, e.order)
		for _, r := range regions {
			for _, res := range r.tick(q.raw.Time) {
				e.dispatch(res)
			}
		}
		return
	}

	ev, ok := e.tracker.OnRawEvent(q.target, q.raw, q.phase)
	if !ok {
		e.debugf("drop %s for unknown contact %d", q.phase, q.raw.Contact)
		return
	}
	t := ev.Target()
	if !validTarget(t) {
		return
	}
	r, ok := e.regions[t]
	if !ok {
		return
	}
	for _, res := range r.route(ev) {
		e.dispatch(res)
	}
}

// SetConfig sets the configuration used for detectors of key attached from
// now on. cfg must have the dynamic type of the key's defaults.
func (e *Engine) SetConfig(key string, cfg any) error {
	if _, err := e.registry.newDetector(key, cfg); err != nil {
		return fmt.Errorf("set config: %w", err)
	}
	e.configs[key] = cfg
	return nil
}

// Config returns the configuration detectors of key are built with.
func (e *Engine) Config(key string) (any, error) {
	if cfg, ok := e.configs[key]; ok {
		return cfg, nil
	}
	gt, err := e.registry.Lookup(key)
	if err != nil {
		return nil, err
	}
	return gt.Defaults, nil
}

// SetHistorySize sets how many samples each point keeps for velocity
// estimation. It only takes effect while no contact is down and reports
// whether it did.
func (e *Engine) SetHistorySize(n int) bool {
	if e.tracker.Active() > 0 {
		return false
	}
	e.tracker = NewTracker(n)
	return true
}

// SetEntityStore sets the optional ECS bridge.
func (e *Engine) SetEntityStore(store EntityStore) {
	e.store = store
}

// OnHandlerError registers a callback receiving a *HandlerError for every
// handler that panics during dispatch.
func (e *Engine) OnHandlerError(fn func(error)) {
	e.onError = fn
}
