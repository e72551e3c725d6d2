package world

import (
	"fmt"

	"github.com/sirupsen/logrus"

	"chosenoffset.com/sorceler/internal/config"
	"chosenoffset.com/sorceler/internal/core/geom"
	"chosenoffset.com/sorceler/internal/entity"
	"chosenoffset.com/sorceler/internal/logger"
	"chosenoffset.com/sorceler/internal/world/defs"
)

// Build creates the objects for every placement of the view's map.
//
// player is the live player, or nil if none exists yet; in that case the
// first player_start placement creates it. Build returns the player and the
// anchors of the passages placed on this map.
//
// Placing the same passage twice on one map is an error since its anchor
// would be ambiguous.
//
// A placement can land in several categories at once: an object named both
// as an entity and a trigger becomes both.
func Build(v *View, d *defs.Definitions, cfg *config.Config, player *entity.Player) (*entity.Player, defs.ResolvedPassages, error) {
	log := logger.Log.WithFields(logrus.Fields{"map": v.ID})
	anchors := defs.ResolvedPassages{}

	ratio := v.Map.Scale(cfg.TileSize)
	size := float64(cfg.TileSize)

	for _, obj := range v.Map.Objects {
		x, y := obj.X*ratio, obj.Y*ratio
		w, h := obj.Width*ratio, obj.Height*ratio
		center := geom.V(x+w/2+cfg.ObjectOffset, y+h/2+cfg.ObjectOffset)
		rect := geom.NewRect(x, y, w, h)

		cats := Categories(obj.Name, d)
		if len(cats) == 0 {
			log.WithField("object", obj.Name).Debug("Skipping unknown placement")
			continue
		}

		for _, cat := range cats {
			switch cat {
			case CategoryPlayer:
				if player == nil {
					player = entity.NewPlayer(center, size, cfg.PlayerHitSize, cfg.PlayerSprite)
					v.AddPlayer(player)
					log.WithField("pos", center).Debug("Player created")
				}
			case CategoryItem:
				it := entity.NewItem(obj.Name, center, size, cfg.BobRange, cfg.BobSpeed)
				v.Items.Add(it)
				v.AllSprites.Add(it)
			case CategoryMob:
				m := entity.NewMob(obj.Name, d.Mobs[obj.Name].Sprite, center, size)
				v.Mobs.Add(m)
				v.AllSprites.Add(m)
			case CategoryEntity:
				e := entity.NewInteractable(d.Entities[obj.Name], geom.V(x, y), size)
				v.Entities.Add(e)
				v.AllSprites.Add(e)
			case CategoryTrigger:
				v.Triggers.Add(entity.NewTrigger(d.Triggers[obj.Name], rect))
			case CategoryPassage:
				if _, dup := anchors[obj.Name]; dup {
					return nil, nil, fmt.Errorf("failed to build map %q: passage %q placed twice", v.ID, obj.Name)
				}
				p := entity.NewPassage(obj.Name, v.ID, rect)
				v.Passages.Add(p)
				anchors[obj.Name] = p.Anchor()
				if loc := d.Passages[obj.Name].Location; loc != v.ID {
					log.WithFields(logrus.Fields{
						"passage":  obj.Name,
						"location": loc,
					}).Warn("Passage placed on a different map than its definition")
				}
			case CategoryWall:
				v.Walls.Add(entity.NewObstacle(rect))
			}
		}
	}

	log.WithFields(logrus.Fields{
		"walls":    v.Walls.Len(),
		"items":    v.Items.Len(),
		"mobs":     v.Mobs.Len(),
		"entities": v.Entities.Len(),
		"triggers": v.Triggers.Len(),
		"passages": v.Passages.Len(),
	}).Info("Map built")

	return player, anchors, nil
}
