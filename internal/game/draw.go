package game

import (
	"cmp"
	"image/color"
	"slices"

	"github.com/sirupsen/logrus"

	"chosenoffset.com/sorceler/internal/core/geom"
	"chosenoffset.com/sorceler/internal/entity"
	"chosenoffset.com/sorceler/internal/logger"
	"chosenoffset.com/sorceler/internal/render"
	"chosenoffset.com/sorceler/internal/world"
)

var (
	clearColor = color.RGBA{20, 12, 28, 255}

	// Fallbacks for sprites missing from the sheet
	kindColors = map[entity.Kind]color.RGBA{
		entity.KindPlayer:       {240, 220, 90, 255},
		entity.KindItem:         {90, 200, 240, 255},
		entity.KindMob:          {220, 70, 70, 255},
		entity.KindInteractable: {160, 110, 60, 255},
	}

	debugColors = struct {
		wall, entity, trigger, passage, player color.RGBA
	}{
		wall:    color.RGBA{255, 0, 0, 255},
		entity:  color.RGBA{255, 200, 0, 255},
		trigger: color.RGBA{0, 120, 255, 255},
		passage: color.RGBA{0, 220, 0, 255},
		player:  color.RGBA{255, 255, 255, 255},
	}
)

// Draw renders the game to the screen.
func (g *Game) Draw(screen render.Image) {
	screen.Fill(clearColor)

	v := g.World.Current()
	if v == nil {
		return
	}

	g.drawBackground(screen, v)
	g.drawSprites(screen, v)
	if g.Debug {
		g.drawDebug(screen, v)
	}
	g.drawUI(screen)
}

// background returns the composed tile layers of a view, building them on
// the first visit. Maps without tile data have no background.
func (g *Game) background(v *world.View) render.Image {
	if bg, ok := g.backgrounds[v.ID]; ok {
		return bg
	}
	var bg render.Image
	img, err := v.Map.Compose()
	if err != nil {
		logger.Log.WithFields(logrus.Fields{"map": v.ID}).WithError(err).Warn("Map has no background")
	} else {
		bg = g.Renderer.NewImageFromImage(img)
	}
	g.backgrounds[v.ID] = bg
	return bg
}

func (g *Game) drawBackground(screen render.Image, v *world.View) {
	bg := g.background(v)
	if bg == nil {
		return
	}
	off := v.Camera.Offset()
	scale := v.Map.Scale(g.Config.TileSize)

	opts := &render.DrawImageOptions{GeoM: render.NewGeoM()}
	opts.GeoM.Scale(scale, scale)
	opts.GeoM.Translate(off.X, off.Y)
	screen.DrawImage(bg, opts)
}

func (g *Game) drawSprites(screen render.Image, v *world.View) {
	sprites := v.AllSprites.All()
	slices.SortStableFunc(sprites, func(a, b entity.Drawable) int {
		return cmp.Compare(a.Layer(), b.Layer())
	})

	for _, s := range sprites {
		name := s.Sprite()
		if name == "" {
			continue
		}
		dst := v.Camera.Apply(s.Rect())
		if g.Atlas != nil && g.Atlas.Has(name) {
			if err := g.Atlas.Draw(screen, name, dst); err == nil {
				continue
			}
		}
		g.fillRect(screen, dst, kindColors[s.Kind()])
	}
}

func (g *Game) drawDebug(screen render.Image, v *world.View) {
	for _, w := range v.Walls.All() {
		g.strokeRect(screen, v.Camera.Apply(w.Rect()), debugColors.wall)
	}
	for _, e := range v.Entities.All() {
		g.strokeRect(screen, v.Camera.Apply(e.Rect()), debugColors.entity)
	}
	for _, t := range v.Triggers.All() {
		g.strokeRect(screen, v.Camera.Apply(t.Rect()), debugColors.trigger)
	}
	for _, p := range v.Passages.All() {
		g.strokeRect(screen, v.Camera.Apply(p.Rect()), debugColors.passage)
	}
	if p := g.World.Player(); p != nil {
		g.strokeRect(screen, v.Camera.Apply(p.HitRect()), debugColors.player)
		status := v.ID
		if g.World.NoClip {
			status += " [no-clip]"
		}
		g.Renderer.DrawText(screen, status, 8, 8, debugColors.player, 1)
	}
}

func (g *Game) drawUI(screen render.Image) {
	y := 40
	for _, msg := range g.Messages {
		alpha := uint8(255 * msg.Alpha())
		w, h := g.Renderer.MeasureText(msg.Text, 1)
		g.Renderer.FillRect(screen, 16, float32(y-2), float32(w+8), float32(h+4), color.RGBA{0, 0, 0, alpha / 2})
		g.Renderer.DrawText(screen, msg.Text, 20, y, color.RGBA{255, 255, 255, alpha}, 1)
		y += h + 8
	}

	if g.State == StatePaused {
		const text = "Paused"
		w, h := g.Renderer.MeasureText(text, 2)
		g.Renderer.DrawText(screen, text, (g.screenW-w)/2, (g.screenH-h)/2, color.White, 2)
	}
}

func (g *Game) fillRect(screen render.Image, r geom.Rect, clr color.Color) {
	g.Renderer.FillRect(screen, float32(r.X), float32(r.Y), float32(r.W), float32(r.H), clr)
}

func (g *Game) strokeRect(screen render.Image, r geom.Rect, clr color.Color) {
	g.Renderer.StrokeRect(screen, float32(r.X), float32(r.Y), float32(r.W), float32(r.H), 1, clr)
}
