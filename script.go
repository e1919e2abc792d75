package gesture

import (
	"fmt"
	"time"

	"github.com/tanema/gween/ease"
	"gopkg.in/yaml.v2"
)

// scriptStep is a single action in an input script.
type scriptStep struct {
	Action   string        `yaml:"action"`
	Target   string        `yaml:"target,omitempty"`
	Contact  int           `yaml:"contact,omitempty"`
	Contact2 int           `yaml:"contact2,omitempty"`
	X        float64       `yaml:"x,omitempty"`
	Y        float64       `yaml:"y,omitempty"`
	ToX      float64       `yaml:"toX,omitempty"`
	ToY      float64       `yaml:"toY,omitempty"`
	From     float64       `yaml:"from,omitempty"` // pinch spread or rotate angle
	To       float64       `yaml:"to,omitempty"`
	Radius   float64       `yaml:"radius,omitempty"`
	Duration time.Duration `yaml:"duration,omitempty"`
	Steps    int           `yaml:"steps,omitempty"`
	Ease     string        `yaml:"ease,omitempty"`
}

// scriptDoc is the top-level structure of an input script.
type scriptDoc struct {
	Steps []scriptStep `yaml:"steps"`
}

var easings = map[string]ease.TweenFunc{
	"":          ease.Linear,
	"linear":    ease.Linear,
	"inQuad":    ease.InQuad,
	"outQuad":   ease.OutQuad,
	"inOutQuad": ease.InOutQuad,
	"inCubic":   ease.InCubic,
	"outCubic":  ease.OutCubic,
	"outExpo":   ease.OutExpo,
}

// Script replays recorded or hand-written input through an Injector, one step
// at a time or all at once. Scripts are YAML (or JSON):
//
//	steps:
//	  - {action: target, target: button}
//	  - {action: tap, contact: 1, x: 10, y: 10, duration: 50ms}
//	  - {action: drag, contact: 1, x: 0, y: 0, toX: 300, toY: 0, duration: 80ms, steps: 4, ease: outQuad}
//	  - {action: pinch, contact: 1, contact2: 2, x: 100, y: 100, from: 200, to: 80, duration: 200ms, steps: 5}
//	  - {action: rotate, contact: 1, contact2: 2, x: 100, y: 100, radius: 50, from: 0, to: 90, steps: 6}
//	  - {action: wait, duration: 600ms}
//
// Low-level actions press, move, release and cancel take contact, x and y.
type Script struct {
	steps  []scriptStep
	cursor int
}

// LoadScript parses an input script.
func LoadScript(data []byte) (*Script, error) {
	var doc scriptDoc
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parse script: %w", err)
	}
	if len(doc.Steps) == 0 {
		return nil, fmt.Errorf("parse script: no steps")
	}
	for i, st := range doc.Steps {
		if err := st.validate(); err != nil {
			return nil, fmt.Errorf("parse script: step %d: %w", i, err)
		}
	}
	return &Script{steps: doc.Steps}, nil
}

func (st scriptStep) validate() error {
	switch st.Action {
	case "press", "move", "release", "cancel", "tap", "drag", "pinch", "rotate", "wait":
	case "target":
		if st.Target == "" {
			return fmt.Errorf("target step without a target name")
		}
	default:
		return fmt.Errorf("unknown action %q", st.Action)
	}
	if _, ok := easings[st.Ease]; !ok {
		return fmt.Errorf("unknown easing %q", st.Ease)
	}
	return nil
}

// Len returns the number of steps.
func (s *Script) Len() int { return len(s.steps) }

// Done reports whether every step has been executed.
func (s *Script) Done() bool { return s.cursor >= len(s.steps) }

// Rewind restarts the script from its first step.
func (s *Script) Rewind() { s.cursor = 0 }

// Step executes the next step. targets resolves names used by target steps.
// It returns false once the script is done.
func (s *Script) Step(in *Injector, targets map[string]Target) (bool, error) {
	if s.Done() {
		return false, nil
	}
	st := s.steps[s.cursor]
	s.cursor++

	switch st.Action {
	case "target":
		t, ok := targets[st.Target]
		if !ok {
			return true, fmt.Errorf("script step %d: unknown target %q", s.cursor-1, st.Target)
		}
		in.SetTarget(t)
	case "press":
		in.Press(st.Contact, st.X, st.Y)
	case "move":
		in.Move(st.Contact, st.X, st.Y)
	case "release":
		in.Release(st.Contact, st.X, st.Y)
	case "cancel":
		in.Cancel(st.Contact)
	case "wait":
		in.Wait(st.Duration)
	case "tap":
		in.Tap(st.Contact, st.X, st.Y, st.Duration)
	case "drag":
		in.Drag(st.Contact, Vec2{st.X, st.Y}, Vec2{st.ToX, st.ToY}, st.Duration, st.Steps, easings[st.Ease])
	case "pinch":
		in.Pinch(st.Contact, st.Contact2, Vec2{st.X, st.Y}, st.From, st.To, st.Duration, st.Steps)
	case "rotate":
		in.Rotate(st.Contact, st.Contact2, Vec2{st.X, st.Y}, st.Radius, st.From, st.To, st.Duration, st.Steps)
	}
	return true, nil
}

// Run executes every remaining step.
func (s *Script) Run(in *Injector, targets map[string]Target) error {
	for !s.Done() {
		if _, err := s.Step(in, targets); err != nil {
			return err
		}
	}
	return nil
}
