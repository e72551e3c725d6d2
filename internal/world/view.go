// Package world owns the per-map views and moves the player between them.
package world

import (
	"chosenoffset.com/sorceler/internal/camera"
	"chosenoffset.com/sorceler/internal/config"
	"chosenoffset.com/sorceler/internal/entity"
	"chosenoffset.com/sorceler/internal/physics"
	"chosenoffset.com/sorceler/internal/world/tilemap"
)

// View is the live state of one map: its groups of objects and its camera.
// Views are created on the first visit and kept for the whole session.
type View struct {
	ID     string
	Map    *tilemap.Map
	Camera *camera.Camera
	Width  float64 // In game pixels
	Height float64

	AllSprites *entity.Group[entity.Drawable]
	Walls      *entity.Group[*entity.Obstacle]
	Entities   *entity.Group[*entity.Interactable]
	Items      *entity.Group[*entity.Item]
	Mobs       *entity.Group[*entity.Mob]
	Triggers   *entity.Group[*entity.Trigger]
	Passages   *entity.Group[*entity.Passage]
}

// NewView creates an empty view for a loaded map
func NewView(id string, m *tilemap.Map, cfg *config.Config) *View {
	w, h := m.PixelSize(cfg.TileSize)
	return &View{
		ID:         id,
		Map:        m,
		Camera:     camera.New(w, h, float64(cfg.ScreenWidth), float64(cfg.ScreenHeight)),
		Width:      w,
		Height:     h,
		AllSprites: entity.NewGroup[entity.Drawable]("all_sprites"),
		Walls:      entity.NewGroup[*entity.Obstacle]("walls"),
		Entities:   entity.NewGroup[*entity.Interactable]("entities"),
		Items:      entity.NewGroup[*entity.Item]("items"),
		Mobs:       entity.NewGroup[*entity.Mob]("mobs"),
		Triggers:   entity.NewGroup[*entity.Trigger]("triggers"),
		Passages:   entity.NewGroup[*entity.Passage]("passages"),
	}
}

// Solids returns the groups the player collides with, in resolution order.
func (v *View) Solids() []physics.Set {
	return []physics.Set{v.Walls, v.Entities, v.Mobs}
}

// AddPlayer puts the player in the view's draw group
func (v *View) AddPlayer(p *entity.Player) {
	v.AllSprites.Add(p)
}

// RemovePlayer takes the player out of the view
func (v *View) RemovePlayer(p *entity.Player) {
	v.AllSprites.Remove(p)
}

// HasPlayer reports whether p is in this view
func (v *View) HasPlayer(p *entity.Player) bool {
	return v.AllSprites.Has(p)
}

// RemoveItem takes a picked up item out of every group
func (v *View) RemoveItem(it *entity.Item) {
	v.Items.Remove(it)
	v.AllSprites.Remove(it)
}
