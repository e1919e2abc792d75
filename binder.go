package gesture

import "fmt"

// Binder is a chainable binding builder for one target. Its gesture table is
// generated from the registry keys present when the Binder was created; keys
// registered later are not reachable through it.
//
//	b, err := engine.On(button)
//	b.Tap(onTap, false).Pan(onPan, false)
//	if err := b.Err(); err != nil { ... }
type Binder struct {
	engine  *Engine
	target  Target
	methods map[string]func(Handler, bool) *Binder
	keys    []string
	handles []BindingHandle
	err     error
}

// On returns a Binder for target. It fails with ErrInvalidRegion when target
// cannot identify a region.
func (e *Engine) On(target Target) (*Binder, error) {
	if !validTarget(target) {
		return nil, fmt.Errorf("on %T: %w", target, ErrInvalidRegion)
	}
	b := &Binder{
		engine:  e,
		target:  target,
		keys:    e.registry.Keys(),
		methods: make(map[string]func(Handler, bool) *Binder),
	}
	for _, key := range b.keys {
		b.methods[key] = b.method(key)
	}
	return b, nil
}

func (b *Binder) method(key string) func(Handler, bool) *Binder {
	return func(h Handler, capture bool) *Binder {
		handle, err := b.engine.Bind(b.target, key, h, capture)
		if err != nil {
			b.setErr(err)
			return b
		}
		b.handles = append(b.handles, handle)
		return b
	}
}

func (b *Binder) setErr(err error) {
	if b.err == nil {
		b.err = err
	}
}

// Target returns the handle the Binder binds to.
func (b *Binder) Target() Target { return b.target }

// Methods returns the gesture keys the Binder can bind, in registry order.
func (b *Binder) Methods() []string {
	out := make([]string, len(b.keys))
	copy(out, b.keys)
	return out
}

// Gesture binds h to the gesture key. Unknown keys record
// ErrUnknownGestureKey; the first error is kept and reported by Err.
func (b *Binder) Gesture(key string, h Handler, capture bool) *Binder {
	m, ok := b.methods[key]
	if !ok {
		b.setErr(fmt.Errorf("binder %q: %w", key, ErrUnknownGestureKey))
		return b
	}
	return m(h, capture)
}

// Handles returns the bindings created through this Binder, in order.
func (b *Binder) Handles() []BindingHandle { return b.handles }

// Err returns the first error recorded by the chain.
func (b *Binder) Err() error { return b.err }

// Tap binds h to "tap".
func (b *Binder) Tap(h Handler, capture bool) *Binder { return b.Gesture("tap", h, capture) }

// Pan binds h to "pan".
func (b *Binder) Pan(h Handler, capture bool) *Binder { return b.Gesture("pan", h, capture) }

// Swipe binds h to "swipe".
func (b *Binder) Swipe(h Handler, capture bool) *Binder { return b.Gesture("swipe", h, capture) }

// Pinch binds h to "pinch".
func (b *Binder) Pinch(h Handler, capture bool) *Binder { return b.Gesture("pinch", h, capture) }

// Expand binds h to "expand".
func (b *Binder) Expand(h Handler, capture bool) *Binder { return b.Gesture("expand", h, capture) }

// Distance binds h to "distance".
func (b *Binder) Distance(h Handler, capture bool) *Binder { return b.Gesture("distance", h, capture) }

// Rotate binds h to "rotate".
func (b *Binder) Rotate(h Handler, capture bool) *Binder { return b.Gesture("rotate", h, capture) }

// Hold binds h to "hold".
func (b *Binder) Hold(h Handler, capture bool) *Binder { return b.Gesture("hold", h, capture) }
