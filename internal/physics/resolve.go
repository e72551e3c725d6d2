package physics

// Axis selects which component Resolve corrects.
type Axis int

const (
	AxisX Axis = iota
	AxisY
)

func (a Axis) String() string {
	if a == AxisX {
		return "x"
	}
	return "y"
}

// FirstHit returns the first member of set, in set order, whose rect
// intersects the body's hit box and that is not passable.
func FirstHit(b *Body, set Set) (Collider, bool) {
	if set == nil {
		return nil, false
	}
	for i := 0; i < set.Len(); i++ {
		c := set.Collider(i)
		if !c.Rect().Intersects(b.Hit) {
			continue
		}
		if p, ok := c.(Passable); ok && p.Passable() {
			continue
		}
		return c, true
	}
	return nil, false
}

// Resolve pushes the body out of the first blocking member of set along one
// axis and zeroes its velocity on that axis. It returns true if a blocker was
// hit. Only the first hit is corrected, not the nearest one, so a body
// wedged between two blockers on the same axis may still overlap the second.
// With noClip set nothing is resolved.
func Resolve(b *Body, set Set, axis Axis, noClip bool) bool {
	if noClip {
		return false
	}
	hit, ok := FirstHit(b, set)
	if !ok {
		return false
	}
	r := hit.Rect()

	switch axis {
	case AxisX:
		if r.CenterX() > b.Hit.CenterX() {
			b.Pos.X = r.Left() - b.Hit.W/2
		}
		if r.CenterX() < b.Hit.CenterX() {
			b.Pos.X = r.Right() + b.Hit.W/2
		}
		b.Vel.X = 0
		b.Hit.SetCenterX(b.Pos.X)
	case AxisY:
		if r.CenterY() > b.Hit.CenterY() {
			b.Pos.Y = r.Top() - b.Hit.H/2
		}
		if r.CenterY() < b.Hit.CenterY() {
			b.Pos.Y = r.Bottom() + b.Hit.H/2
		}
		b.Vel.Y = 0
		b.Hit.SetCenterY(b.Pos.Y)
	}
	return true
}

// Move integrates the body's velocity over dt and resolves collisions against
// sets, X axis first then Y axis, each axis against every set in order.
func Move(b *Body, dt float64, noClip bool, sets ...Set) {
	b.Pos = b.Pos.Add(b.Vel.Scale(dt))

	b.Hit.SetCenterX(b.Pos.X)
	for _, s := range sets {
		Resolve(b, s, AxisX, noClip)
	}

	b.Hit.SetCenterY(b.Pos.Y)
	for _, s := range sets {
		Resolve(b, s, AxisY, noClip)
	}
}
