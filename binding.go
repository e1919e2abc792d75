package gesture

// Handler receives gesture results.
type Handler func(Result)

type binding struct {
	id      uint32
	handler Handler
	capture bool
}

// bindingKey identifies one binding list.
type bindingKey struct {
	target Target
	key    string
}

// bindingRegistry holds one ordered binding list per (target, gesture key).
type bindingRegistry struct {
	lists  map[bindingKey][]binding
	nextID uint32
}

func (r *bindingRegistry) add(target Target, key string, h Handler, capture bool) uint32 {
	if r.lists == nil {
		r.lists = make(map[bindingKey][]binding)
	}
	r.nextID++
	k := bindingKey{target, key}
	r.lists[k] = append(r.lists[k], binding{id: r.nextID, handler: h, capture: capture})
	return r.nextID
}

// remove deletes the binding with id and reports whether its list is now
// empty. It reports false when no such binding exists.
func (r *bindingRegistry) remove(target Target, key string, id uint32) (found, emptied bool) {
	k := bindingKey{target, key}
	s := r.lists[k]
	for i := range s {
		if s[i].id == id {
			copy(s[i:], s[i+1:])
			s[len(s)-1] = binding{}
			s = s[:len(s)-1]
			if len(s) == 0 {
				delete(r.lists, k)
				return true, true
			}
			r.lists[k] = s
			return true, false
		}
	}
	return false, false
}

// clear deletes the whole list for (target, key) and returns how many
// bindings it held.
func (r *bindingRegistry) clear(target Target, key string) int {
	k := bindingKey{target, key}
	n := len(r.lists[k])
	delete(r.lists, k)
	return n
}

// snapshot returns a copy of the list so handlers may bind or unbind while
// it is being dispatched.
func (r *bindingRegistry) snapshot(target Target, key string) []binding {
	s := r.lists[bindingKey{target, key}]
	if len(s) == 0 {
		return nil
	}
	out := make([]binding, len(s))
	copy(out, s)
	return out
}

func (r *bindingRegistry) count(target Target, key string) int {
	return len(r.lists[bindingKey{target, key}])
}

// BindingInfo describes one binding, as returned by Engine.Bindings.
type BindingInfo struct {
	Gesture string
	Capture bool
	Handle  BindingHandle
}

// BindingHandle allows removing a single binding. The zero value is inert.
type BindingHandle struct {
	id      uint32
	engine  *Engine
	target  Target
	gesture string
}

// Gesture returns the gesture key of the binding.
func (h BindingHandle) Gesture() string { return h.gesture }

// Remove unbinds this handler only. When it was the last binding for its
// gesture key the detector is detached, and the region is destroyed when no
// detectors remain. Removing twice is a no-op.
func (h BindingHandle) Remove() {
	if h.engine == nil {
		return
	}
	h.engine.removeBinding(h.target, h.gesture, h.id)
}

// dispatch invokes every binding for res in registration order. A panicking
// handler is reported and skipped; the remaining handlers still run.
func (e *Engine) dispatch(res Result) {
	for _, b := range e.bindings.snapshot(res.Target, res.Gesture) {
		r := res
		r.Capture = b.capture
		e.invoke(b.handler, r)
	}
	if e.store != nil {
		e.store.EmitEvent(res)
	}
}

func (e *Engine) invoke(h Handler, res Result) {
	defer func() {
		if v := recover(); v != nil {
			err := &HandlerError{Gesture: res.Gesture, Target: res.Target, Value: v}
			e.logf("%v", err)
			if e.onError != nil {
				e.onError(err)
			}
		}
	}()
	h(res)
}
