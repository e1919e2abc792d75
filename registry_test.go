package gesture

import (
	"errors"
	"slices"
	"testing"
	"time"
)

func TestDefaultRegistryKeys(t *testing.T) {
	want := []string{"tap", "pan", "swipe", "pinch", "expand", "distance", "rotate", "hold"}
	if got := DefaultRegistry().Keys(); !slices.Equal(got, want) {
		t.Errorf("Keys() = %v, want %v", got, want)
	}
}

func TestRegistryBuildsMatchingDetectors(t *testing.T) {
	r := DefaultRegistry()
	for _, key := range r.Keys() {
		d, err := r.newDetector(key, nil)
		if err != nil {
			t.Fatalf("newDetector(%q): %v", key, err)
		}
		if d.Key() != key {
			t.Errorf("newDetector(%q).Key() = %q", key, d.Key())
		}
		if d.State() != StateIdle {
			t.Errorf("%q starts in %v", key, d.State())
		}
	}
}

func TestRegistryRegister(t *testing.T) {
	r := NewRegistry()
	f := NewFactory(NewTap)

	if err := r.Register("tap", f, DefaultTapConfig(), false); err != nil {
		t.Fatal(err)
	}
	if err := r.Register("tap", f, DefaultTapConfig(), false); !errors.Is(err, ErrDuplicateGestureKey) {
		t.Errorf("duplicate register err = %v, want ErrDuplicateGestureKey", err)
	}
	if err := r.Register("other", f, DefaultTapConfig(), false); err != nil {
		t.Fatal(err)
	}
	long := DefaultTapConfig()
	long.MaxDuration *= 2
	if err := r.Register("tap", f, long, true); err != nil {
		t.Errorf("overwrite err = %v", err)
	}
	if got := r.Keys(); !slices.Equal(got, []string{"tap", "other"}) {
		t.Errorf("Keys() after overwrite = %v", got)
	}
	gt, err := r.Lookup("tap")
	if err != nil {
		t.Fatal(err)
	}
	if gt.Defaults.(TapConfig) != long {
		t.Errorf("overwrite kept old defaults %+v", gt.Defaults)
	}

	tests := []struct {
		name    string
		key     string
		factory Factory
	}{
		{"empty key", "", f},
		{"nil factory", "x", nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := r.Register(tt.key, tt.factory, nil, false); !errors.Is(err, ErrInvalidGesture) {
				t.Errorf("err = %v, want ErrInvalidGesture", err)
			}
		})
	}
}

func TestRegistryLookupUnknown(t *testing.T) {
	if _, err := DefaultRegistry().Lookup("wave"); !errors.Is(err, ErrUnknownGestureKey) {
		t.Errorf("err = %v, want ErrUnknownGestureKey", err)
	}
}

func TestIsValidGesture(t *testing.T) {
	r := DefaultRegistry()
	var nilTap *Tap
	tests := []struct {
		name string
		v    any
		want bool
	}{
		{"registered key", "rotate", true},
		{"unknown key", "wave", false},
		{"empty key", "", false},
		{"detector", NewHold(DefaultHoldConfig()), true},
		{"typed nil detector", nilTap, false},
		{"nil", nil, false},
		{"number", 42, false},
		{"func", func() {}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := r.IsValidGesture(tt.v); got != tt.want {
				t.Errorf("IsValidGesture(%v) = %v, want %v", tt.v, got, tt.want)
			}
		})
	}
}

func TestNewFactoryRejectsWrongConfig(t *testing.T) {
	f := NewFactory(NewPan)
	if _, err := f(TapConfig{}); err == nil {
		t.Error("pan factory accepted a TapConfig")
	}
	d, err := f(PanConfig{Inputs: 3, Threshold: 4})
	if err != nil {
		t.Fatal(err)
	}
	if got := d.(*Pan).Config(); got.Inputs != 3 || got.Threshold != 4 {
		t.Errorf("Config() = %+v", got)
	}
}

func TestCustomKeyDetectorReportsItsKey(t *testing.T) {
	reg := NewRegistry()
	triple := TapConfig{Inputs: 3, MaxDuration: 300 * time.Millisecond, Tolerance: 10}
	if err := reg.Register("triple", NewFactory(NewTap), triple, false); err != nil {
		t.Fatal(err)
	}
	e := NewEngine(reg)
	e.SetLogger(nil)

	a := &element{"a"}
	mustBind(t, e, a, "triple", func(Result) {})
	r, _ := e.Region(a)
	d, ok := r.Detector("triple")
	if !ok {
		t.Fatal("no triple detector attached")
	}
	if got := d.Key(); got != "triple" {
		t.Errorf("attached Key() = %q, want triple", got)
	}
	if !reg.IsValidGesture(d) {
		t.Error("attached triple detector is not a valid gesture")
	}
	d.Reset()
	if got := d.Key(); got != "triple" {
		t.Errorf("Key() after Reset = %q, want triple", got)
	}

	inst, err := reg.New("triple", nil)
	if err != nil {
		t.Fatal(err)
	}
	b := &element{"b"}
	var rec recorder
	mustBind(t, e, b, inst, rec.handle)
	rb, _ := e.Region(b)
	if got := rb.Keys(); !slices.Equal(got, []string{"triple"}) {
		t.Errorf("instance attached as %v, want [triple]", got)
	}
	in := NewInjector(e, b, t0)
	in.Press(1, 0, 0)
	in.Press(2, 10, 0)
	in.Press(3, 20, 0)
	in.Release(1, 0, 0)
	in.Release(2, 10, 0)
	in.Release(3, 20, 0)
	if len(rec.results) != 1 || rec.last().Gesture != "triple" {
		t.Errorf("results = %+v", rec.results)
	}

	// The default key is still used outside the registry.
	if got := NewTap(DefaultTapConfig()).Key(); got != "tap" {
		t.Errorf("NewTap Key() = %q, want tap", got)
	}
	if reg.IsValidGesture(NewTap(DefaultTapConfig())) {
		t.Error("plain tap instance valid in a registry without tap")
	}
}

func TestRegistryNewUnknownKey(t *testing.T) {
	if _, err := DefaultRegistry().New("wave", nil); !errors.Is(err, ErrUnknownGestureKey) {
		t.Errorf("err = %v, want ErrUnknownGestureKey", err)
	}
}
