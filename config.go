package gesture

import (
	"fmt"
	"reflect"
	"sort"

	"gopkg.in/yaml.v2"
)

// LoadConfig parses per-gesture threshold overrides from YAML (JSON is valid
// YAML) and applies them to detectors attached from now on. Top-level keys
// are gesture keys; fields not given keep their current value. Durations are
// written as strings ("250ms").
//
//	tap:
//	  max_duration: 250ms
//	  tolerance: 8
//	swipe:
//	  escape_velocity: 400
//
// Unknown gesture keys and unknown fields are errors. Nothing is applied when
// any entry fails.
func (e *Engine) LoadConfig(data []byte) error {
	var doc map[string]interface{}
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return fmt.Errorf("parse gesture config: %w", err)
	}

	keys := make([]string, 0, len(doc))
	for k := range doc {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	parsed := make(map[string]any, len(doc))
	for _, key := range keys {
		base, err := e.Config(key)
		if err != nil {
			return fmt.Errorf("parse gesture config: %w", err)
		}
		cfg, err := overlayConfig(base, doc[key])
		if err != nil {
			return fmt.Errorf("parse gesture config %q: %w", key, err)
		}
		if _, err := e.registry.newDetector(key, cfg); err != nil {
			return fmt.Errorf("parse gesture config: %w", err)
		}
		parsed[key] = cfg
	}
	for key, cfg := range parsed {
		e.configs[key] = cfg
	}
	e.debugf("loaded config for %v", keys)
	return nil
}

// overlayConfig decodes section over a copy of base and returns the copy with
// base's dynamic type.
func overlayConfig(base any, section interface{}) (any, error) {
	if base == nil {
		return nil, fmt.Errorf("gesture has no configuration")
	}
	if section == nil {
		return base, nil
	}
	raw, err := yaml.Marshal(section)
	if err != nil {
		return nil, err
	}
	ptr := reflect.New(reflect.TypeOf(base))
	ptr.Elem().Set(reflect.ValueOf(base))
	if err := yaml.UnmarshalStrict(raw, ptr.Interface()); err != nil {
		return nil, err
	}
	return ptr.Elem().Interface(), nil
}
