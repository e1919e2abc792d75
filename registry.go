package gesture

import "fmt"

// Factory builds a detector from a configuration value. The value has the
// dynamic type of the gesture type's defaults.
type Factory func(cfg any) (Detector, error)

// NewFactory adapts a typed constructor into a Factory. The returned factory
// rejects configuration values of any other type.
func NewFactory[C any, D Detector](fn func(C) D) Factory {
	return func(cfg any) (Detector, error) {
		c, ok := cfg.(C)
		if !ok {
			var want C
			return nil, fmt.Errorf("config %T, want %T", cfg, want)
		}
		return fn(c), nil
	}
}

// GestureType is a registry entry: how to build a detector and its default
// configuration.
type GestureType struct {
	Key      string
	New      Factory
	Defaults any
}

// Registry maps gesture keys to detector constructors. Registries are plain
// values: create one per engine (or per test) rather than sharing a global.
type Registry struct {
	types map[string]GestureType
	keys  []string // registration order
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{types: make(map[string]GestureType)}
}

// DefaultRegistry returns a new registry holding the built-in gestures: tap,
// pan, swipe, pinch, expand, distance, rotate and hold.
func DefaultRegistry() *Registry {
	r := NewRegistry()
	builtins := []GestureType{
		{"tap", NewFactory(NewTap), DefaultTapConfig()},
		{"pan", NewFactory(NewPan), DefaultPanConfig()},
		{"swipe", NewFactory(NewSwipe), DefaultSwipeConfig()},
		{"pinch", NewFactory(NewPinch), DefaultDistanceConfig()},
		{"expand", NewFactory(NewExpand), DefaultDistanceConfig()},
		{"distance", NewFactory(func(c DistanceConfig) *Distance { return NewDistance(DistanceAny, c) }), DefaultDistanceConfig()},
		{"rotate", NewFactory(NewRotate), DefaultRotateConfig()},
		{"hold", NewFactory(NewHold), DefaultHoldConfig()},
	}
	for _, gt := range builtins {
		// Keys are distinct, so registration cannot fail.
		_ = r.Register(gt.Key, gt.New, gt.Defaults, false)
	}
	return r
}

// Register adds a gesture type. It returns ErrDuplicateGestureKey when key is
// already registered, unless overwrite is set. Overwriting keeps the key's
// original position in Keys.
func (r *Registry) Register(key string, factory Factory, defaults any, overwrite bool) error {
	if key == "" || factory == nil {
		return fmt.Errorf("register %q: %w", key, ErrInvalidGesture)
	}
	if _, exists := r.types[key]; exists {
		if !overwrite {
			return fmt.Errorf("register %q: %w", key, ErrDuplicateGestureKey)
		}
	} else {
		r.keys = append(r.keys, key)
	}
	r.types[key] = GestureType{Key: key, New: factory, Defaults: defaults}
	return nil
}

// Lookup returns the gesture type registered under key.
func (r *Registry) Lookup(key string) (GestureType, error) {
	gt, ok := r.types[key]
	if !ok {
		return GestureType{}, fmt.Errorf("lookup %q: %w", key, ErrUnknownGestureKey)
	}
	return gt, nil
}

// IsValidGesture reports whether v is a registered key (string) or a Detector
// whose key is registered. It never panics.
func (r *Registry) IsValidGesture(v any) (valid bool) {
	defer func() {
		if recover() != nil {
			valid = false
		}
	}()
	switch g := v.(type) {
	case string:
		_, ok := r.types[g]
		return ok
	case Detector:
		if g == nil || isNilPointer(g) {
			return false
		}
		_, ok := r.types[g.Key()]
		return ok
	}
	return false
}

// Keys returns the registered gesture keys in registration order.
func (r *Registry) Keys() []string {
	out := make([]string, len(r.keys))
	copy(out, r.keys)
	return out
}

// newDetector builds a detector for key using cfg, or the defaults when cfg
// is nil.
func (r *Registry) newDetector(key string, cfg any) (Detector, error) {
	gt, err := r.Lookup(key)
	if err != nil {
		return nil, err
	}
	if cfg == nil {
		cfg = gt.Defaults
	}
	d, err := gt.New(cfg)
	if err != nil {
		return nil, fmt.Errorf("build %q: %w", key, err)
	}
	if d == nil || isNilPointer(d) {
		return nil, fmt.Errorf("build %q: %w", key, ErrInvalidGesture)
	}
	if k, ok := d.(interface{ setKey(string) }); ok && d.Key() != key {
		k.setKey(key)
	}
	return d, nil
}

// New builds a detector for key, configured with cfg or the key's defaults
// when cfg is nil. Built-in detectors report key from Key even when their
// type is registered under a custom key, so the result can be passed to
// Engine.Bind.
func (r *Registry) New(key string, cfg any) (Detector, error) {
	return r.newDetector(key, cfg)
}
