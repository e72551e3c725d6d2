package entity

import (
	"chosenoffset.com/sorceler/internal/core/geom"
	"chosenoffset.com/sorceler/internal/inventory"
	"chosenoffset.com/sorceler/internal/physics"
)

// PlayerName is the Tiled object name that marks the player's start.
const PlayerName = "player_start"

const defaultHealth = 100

// Player is the single player-controlled entity. It moves between views
// and keeps its inventory and health when it does.
type Player struct {
	base
	physics.Body

	Acc       geom.Vec2 // Reserved, not integrated
	Health    int
	Inventory *inventory.Inventory

	sprite string
}

// NewPlayer creates a player centered at pos with a size x size sprite and a
// smaller hitSize x hitSize collision box.
func NewPlayer(pos geom.Vec2, size, hitSize float64, sprite string) *Player {
	p := &Player{
		base:      newBase(PlayerName, KindPlayer, centeredRect(pos, size)),
		Body:      physics.NewBody(pos, hitSize, hitSize),
		Health:    defaultHealth,
		Inventory: inventory.New(),
		sprite:    sprite,
	}
	return p
}

func (p *Player) Position() geom.Vec2 { return p.Pos }
func (p *Player) Sprite() string      { return p.sprite }
func (p *Player) Layer() int          { return LayerPlayer }

// HitRect returns the collision box.
func (p *Player) HitRect() geom.Rect { return p.Hit }

// SetInput sets the velocity from a direction. dx and dy are -1, 0 or 1;
// diagonal movement is scaled by diagonal so it is not faster.
func (p *Player) SetInput(dx, dy int, speed, diagonal float64) {
	p.Vel = geom.V(float64(dx)*speed, float64(dy)*speed)
	if dx != 0 && dy != 0 {
		p.Vel = p.Vel.Scale(diagonal)
	}
}

// Update moves the player by its velocity and resolves collisions against
// solids in order, then re-centers the sprite on the hit box.
func (p *Player) Update(dt float64, noClip bool, solids ...physics.Set) {
	physics.Move(&p.Body, dt, noClip, solids...)
	p.rect.SetCenter(p.Hit.Center())
}

// Place teleports the player and stops it.
func (p *Player) Place(pos geom.Vec2) {
	p.Body.Place(pos)
	p.rect.SetCenter(pos)
}

// UseClosest uses every interactable whose center is strictly within radius
// of the player. It returns how many were successfully used.
func (p *Player) UseClosest(entities []*Interactable, radius float64) int {
	used := 0
	for _, e := range entities {
		if geom.Distance(p.Pos, e.Rect().Center()) >= radius {
			continue
		}
		if e.Use(p) {
			used++
		}
	}
	return used
}
