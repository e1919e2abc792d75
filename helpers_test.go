package gesture

import (
	"io"
	"log"
	"testing"
	"time"
)

// element stands in for a host UI element.
type element struct{ name string }

var t0 = time.Unix(1_000, 0)

func newTestEngine(t *testing.T) *Engine {
	t.Helper()
	e := NewEngine(nil)
	e.SetLogger(log.New(io.Discard, "", 0))
	return e
}

// recorder collects dispatched results.
type recorder struct {
	results []Result
}

func (r *recorder) handle(res Result) { r.results = append(r.results, res) }

func (r *recorder) keys() []string {
	out := make([]string, len(r.results))
	for i, res := range r.results {
		out[i] = res.Gesture
	}
	return out
}

func (r *recorder) last() Result {
	if len(r.results) == 0 {
		return Result{}
	}
	return r.results[len(r.results)-1]
}

func mustBind(t *testing.T, e *Engine, target Target, gesture any, h Handler) BindingHandle {
	t.Helper()
	handle, err := e.Bind(target, gesture, h, false)
	if err != nil {
		t.Fatalf("Bind(%v): %v", gesture, err)
	}
	return handle
}

func detectorState(t *testing.T, e *Engine, target Target, key string) State {
	t.Helper()
	r, ok := e.Region(target)
	if !ok {
		t.Fatalf("no region for %v", target)
	}
	d, ok := r.Detector(key)
	if !ok {
		t.Fatalf("no %q detector", key)
	}
	return d.State()
}

func approx(a, b float64) bool {
	d := a - b
	return d < 1e-6 && d > -1e-6
}
