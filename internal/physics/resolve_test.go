package physics

import (
	"testing"

	"chosenoffset.com/sorceler/internal/core/geom"
)

type box struct {
	r    geom.Rect
	open bool
}

func (b *box) Rect() geom.Rect { return b.r }
func (b *box) Passable() bool  { return b.open }

type boxes []*box

func (s boxes) Len() int                { return len(s) }
func (s boxes) Collider(i int) Collider { return s[i] }

func TestResolveXFromLeft(t *testing.T) {
	wall := &box{r: geom.NewRect(100, 0, 64, 64)}
	b := NewBody(geom.V(90, 32), 35, 35)
	b.Vel = geom.V(300, 0)

	if !Resolve(&b, boxes{wall}, AxisX, false) {
		t.Fatal("Expected a hit")
	}
	if b.Hit.Right() != wall.r.Left() {
		t.Errorf("Expected hit right edge %v, got %v", wall.r.Left(), b.Hit.Right())
	}
	if b.Pos.X != 100-17.5 {
		t.Errorf("Expected pos.x 82.5, got %v", b.Pos.X)
	}
	if b.Vel.X != 0 {
		t.Errorf("Expected vel.x 0, got %v", b.Vel.X)
	}
	if b.Hit.Intersects(wall.r) {
		t.Error("Hit box still overlaps the wall")
	}
}

func TestResolveXFromRight(t *testing.T) {
	wall := &box{r: geom.NewRect(0, 0, 64, 64)}
	b := NewBody(geom.V(70, 32), 35, 35)

	Resolve(&b, boxes{wall}, AxisX, false)

	if b.Hit.Left() != wall.r.Right() {
		t.Errorf("Expected hit left edge %v, got %v", wall.r.Right(), b.Hit.Left())
	}
}

func TestResolveY(t *testing.T) {
	floor := &box{r: geom.NewRect(0, 100, 64, 64)}
	b := NewBody(geom.V(32, 95), 35, 35)
	b.Vel = geom.V(10, 200)

	Resolve(&b, boxes{floor}, AxisY, false)

	if b.Hit.Bottom() != floor.r.Top() {
		t.Errorf("Expected hit bottom %v, got %v", floor.r.Top(), b.Hit.Bottom())
	}
	if b.Vel.Y != 0 || b.Vel.X != 10 {
		t.Errorf("Expected vel (10, 0), got %v", b.Vel)
	}

	ceiling := &box{r: geom.NewRect(0, 0, 64, 64)}
	b = NewBody(geom.V(32, 70), 35, 35)
	Resolve(&b, boxes{ceiling}, AxisY, false)
	if b.Hit.Top() != ceiling.r.Bottom() {
		t.Errorf("Expected hit top %v, got %v", ceiling.r.Bottom(), b.Hit.Top())
	}
}

func TestResolveNoClip(t *testing.T) {
	wall := &box{r: geom.NewRect(0, 0, 64, 64)}
	b := NewBody(geom.V(32, 32), 35, 35)
	b.Vel = geom.V(5, 5)
	before := b

	for _, axis := range []Axis{AxisX, AxisY} {
		if Resolve(&b, boxes{wall}, axis, true) {
			t.Errorf("Expected no resolution on %s with no-clip", axis)
		}
	}
	if b != before {
		t.Errorf("Body changed under no-clip: %+v -> %+v", before, b)
	}
}

func TestResolveSkipsOpenDoors(t *testing.T) {
	door := &box{r: geom.NewRect(100, 0, 64, 64), open: true}
	b := NewBody(geom.V(90, 32), 35, 35)

	if Resolve(&b, boxes{door}, AxisX, false) {
		t.Error("Expected open door not to block")
	}
	if b.Pos.X != 90 {
		t.Errorf("Expected pos.x unchanged, got %v", b.Pos.X)
	}

	door.open = false
	if !Resolve(&b, boxes{door}, AxisX, false) {
		t.Error("Expected closed door to block")
	}
}

func TestResolveTakesFirstHit(t *testing.T) {
	// Both overlap; the first in order wins even though the second is nearer.
	first := &box{r: geom.NewRect(0, 0, 64, 64)}
	second := &box{r: geom.NewRect(80, 0, 64, 64)}
	b := NewBody(geom.V(75, 32), 35, 35)

	hit, ok := FirstHit(&b, boxes{first, second})
	if !ok || hit != first {
		t.Fatal("Expected the first box to be reported")
	}

	Resolve(&b, boxes{first, second}, AxisX, false)
	if b.Hit.Left() != first.r.Right() {
		t.Errorf("Expected resolution against first box, hit left %v", b.Hit.Left())
	}
}

func TestResolveEmptySet(t *testing.T) {
	b := NewBody(geom.V(10, 10), 35, 35)
	if Resolve(&b, boxes{}, AxisX, false) {
		t.Error("Expected no hit against empty set")
	}
	if Resolve(&b, nil, AxisY, false) {
		t.Error("Expected no hit against nil set")
	}
}

func TestMoveCornerDoesNotTunnel(t *testing.T) {
	// Moving diagonally into the corner of a block ends flush on one side.
	wall := &box{r: geom.NewRect(64, 64, 64, 64)}
	b := NewBody(geom.V(45, 45), 35, 35)
	b.Vel = geom.V(10, 10)

	Move(&b, 0.5, false, boxes{wall})

	if b.Hit.Intersects(wall.r) {
		t.Errorf("Hit box %+v overlaps wall after move", b.Hit)
	}
	if b.Pos.X != 50 {
		t.Errorf("Expected x movement to be kept, got %v", b.Pos.X)
	}
	if b.Pos.Y != 46.5 {
		t.Errorf("Expected y clamped to 46.5, got %v", b.Pos.Y)
	}
	if b.Vel.Y != 0 || b.Vel.X != 10 {
		t.Errorf("Expected vel (10, 0), got %v", b.Vel)
	}
}

func TestMoveIntegratesVelocity(t *testing.T) {
	b := NewBody(geom.V(0, 0), 10, 10)
	b.Vel = geom.V(60, -120)

	Move(&b, 0.5, false)

	if b.Pos != geom.V(30, -60) {
		t.Errorf("Expected pos (30, -60), got %v", b.Pos)
	}
	if b.Hit.Center() != b.Pos {
		t.Errorf("Expected hit centered on pos, got %v", b.Hit.Center())
	}
}
