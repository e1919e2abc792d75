package gesture

// HitShape defines a hit area in an Area's local coordinates.
type HitShape interface {
	Contains(x, y float64) bool
}

// HitRect is an axis-aligned rectangular hit area in local coordinates.
type HitRect struct {
	X, Y, Width, Height float64
}

// Contains reports whether (x, y) lies inside the rectangle.
func (r HitRect) Contains(x, y float64) bool {
	return x >= r.X && x <= r.X+r.Width &&
		y >= r.Y && y <= r.Y+r.Height
}

// HitCircle is a circular hit area in local coordinates.
type HitCircle struct {
	CenterX, CenterY, Radius float64
}

// Contains reports whether (x, y) lies inside or on the circle.
func (c HitCircle) Contains(x, y float64) bool {
	dx := x - c.CenterX
	dy := y - c.CenterY
	return dx*dx+dy*dy <= c.Radius*c.Radius
}

// HitPolygon is a convex polygon hit area in local coordinates.
// Points must define a convex polygon in either winding order.
type HitPolygon struct {
	Points []Vec2
}

// Contains reports whether (x, y) lies inside a convex polygon using cross-product sign test.
func (p HitPolygon) Contains(x, y float64) bool {
	n := len(p.Points)
	if n < 3 {
		return false
	}

	// Check that the point is on the same side of every edge.
	var positive, negative bool
	for i := 0; i < n; i++ {
		a := p.Points[i]
		b := p.Points[(i+1)%n]
		cross := (b.X-a.X)*(y-a.Y) - (b.Y-a.Y)*(x-a.X)
		if cross > 0 {
			positive = true
		} else if cross < 0 {
			negative = true
		}
		if positive && negative {
			return false
		}
	}
	return true
}

// Area places a target's hit shape in host coordinates. Transform maps local
// to host coordinates; the zero matrix means identity.
type Area struct {
	Target    Target
	Shape     HitShape
	Transform [6]float64
	Disabled  bool
}

// contains tests host coordinates against the area.
func (a *Area) contains(x, y float64) bool {
	if a.Disabled || a.Shape == nil {
		return false
	}
	m := a.Transform
	if m == ([6]float64{}) {
		m = identityTransform
	}
	inv, ok := invertAffine(m)
	if !ok {
		return false
	}
	lx, ly := transformPoint(inv, x, y)
	return a.Shape.Contains(lx, ly)
}

// HitList resolves host coordinates to targets. Areas added later are on top.
type HitList struct {
	areas []*Area
}

// Add appends an area on top of the existing ones and returns it so callers
// can update its transform as the target moves.
func (l *HitList) Add(target Target, shape HitShape) *Area {
	a := &Area{Target: target, Shape: shape}
	l.areas = append(l.areas, a)
	return a
}

// Remove drops every area of target.
func (l *HitList) Remove(target Target) {
	kept := l.areas[:0]
	for _, a := range l.areas {
		if a.Target != target {
			kept = append(kept, a)
		}
	}
	for i := len(kept); i < len(l.areas); i++ {
		l.areas[i] = nil
	}
	l.areas = kept
}

// Raise moves target's areas to the top.
func (l *HitList) Raise(target Target) {
	var moved []*Area
	kept := l.areas[:0]
	for _, a := range l.areas {
		if a.Target == target {
			moved = append(moved, a)
		} else {
			kept = append(kept, a)
		}
	}
	l.areas = append(kept, moved...)
}

// HitTest returns the topmost target containing (x, y), or nil.
func (l *HitList) HitTest(x, y float64) Target {
	for i := len(l.areas) - 1; i >= 0; i-- {
		if a := l.areas[i]; a.contains(x, y) {
			return a.Target
		}
	}
	return nil
}
