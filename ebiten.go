package gesture

import (
	"sort"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
)

// MouseContact is the contact id used for the left mouse button.
const MouseContact = -1

// contactSample is one contact observed during a frame.
type contactSample struct {
	id   int
	x, y float64
}

// EbitenSource polls Ebitengine touch and mouse state each frame and turns
// it into contact lifecycle events on an Engine. Contacts that disappear
// between frames end at their last position; losing window focus cancels
// every contact that is down.
type EbitenSource struct {
	engine *Engine
	hit    func(x, y float64) Target

	// Mouse makes the left mouse button act as a contact.
	Mouse bool

	now      func() time.Time
	touchIDs []ebiten.TouchID
	frame    []contactSample
	down     map[int]Vec2 // last position of every contact that is down
}

// NewEbitenSource creates a source feeding e. hit resolves the target under
// a new contact, typically HitList.HitTest.
func NewEbitenSource(e *Engine, hit func(x, y float64) Target) *EbitenSource {
	return &EbitenSource{
		engine: e,
		hit:    hit,
		Mouse:  true,
		now:    time.Now,
		down:   make(map[int]Vec2),
	}
}

// Update reads this frame's input and advances the engine clock. Call it
// from ebiten.Game.Update.
func (s *EbitenSource) Update() {
	now := s.now()
	if !ebiten.IsFocused() {
		s.CancelAll()
		s.engine.Advance(now)
		return
	}

	s.frame = s.frame[:0]
	s.touchIDs = ebiten.AppendTouchIDs(s.touchIDs[:0])
	for _, tid := range s.touchIDs {
		x, y := ebiten.TouchPosition(tid)
		s.frame = append(s.frame, contactSample{id: int(tid), x: float64(x), y: float64(y)})
	}
	if s.Mouse && ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft) {
		x, y := ebiten.CursorPosition()
		s.frame = append(s.frame, contactSample{id: MouseContact, x: float64(x), y: float64(y)})
	}
	s.sync(s.frame, now)
	s.engine.Advance(now)
}

// sync diffs the contacts seen this frame against those down last frame.
func (s *EbitenSource) sync(frame []contactSample, now time.Time) {
	seen := make(map[int]bool, len(frame))
	for _, c := range frame {
		seen[c.id] = true
		raw := RawPoint{Contact: c.id, X: c.x, Y: c.y, Time: now}
		last, ok := s.down[c.id]
		switch {
		case !ok:
			var target Target
			if s.hit != nil {
				target = s.hit(c.x, c.y)
			}
			s.down[c.id] = Vec2{c.x, c.y}
			s.engine.HandleRaw(target, raw, PhaseStart)
		case last.X != c.x || last.Y != c.y:
			s.down[c.id] = Vec2{c.x, c.y}
			s.engine.HandleRaw(nil, raw, PhaseMove)
		}
	}

	for _, id := range s.sortedDown() {
		if seen[id] {
			continue
		}
		last := s.down[id]
		delete(s.down, id)
		s.engine.HandleRaw(nil, RawPoint{Contact: id, X: last.X, Y: last.Y, Time: now}, PhaseEnd)
	}
}

// CancelAll cancels every contact that is down.
func (s *EbitenSource) CancelAll() {
	now := s.now()
	for _, id := range s.sortedDown() {
		last := s.down[id]
		delete(s.down, id)
		s.engine.HandleRaw(nil, RawPoint{Contact: id, X: last.X, Y: last.Y, Time: now}, PhaseCancel)
	}
}

func (s *EbitenSource) sortedDown() []int {
	ids := make([]int, 0, len(s.down))
	for id := range s.down {
		ids = append(ids, id)
	}
	sort.Ints(ids)
	return ids
}
