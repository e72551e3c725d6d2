package world

import (
	"chosenoffset.com/sorceler/internal/entity"
	"chosenoffset.com/sorceler/internal/world/defs"
)

// Category is one kind of object a placement name produces
type Category string

const (
	CategoryPlayer  Category = "player"
	CategoryItem    Category = "item"
	CategoryMob     Category = "mob"
	CategoryEntity  Category = "entity"
	CategoryTrigger Category = "trigger"
	CategoryPassage Category = "passage"
	CategoryWall    Category = "wall"
)

// Categories returns what Build creates for a placement name, in build
// order. Player, item and mob placements are centered and never fall into
// the rect categories. An unknown name has no categories.
func Categories(name string, d *defs.Definitions) []Category {
	var cats []Category
	if name == entity.PlayerName {
		cats = append(cats, CategoryPlayer)
	}
	if d.IsItem(name) {
		cats = append(cats, CategoryItem)
	}
	if _, ok := d.Mobs[name]; ok {
		cats = append(cats, CategoryMob)
	}
	if len(cats) > 0 {
		return cats
	}

	if _, ok := d.Entities[name]; ok {
		cats = append(cats, CategoryEntity)
	}
	if _, ok := d.Triggers[name]; ok {
		cats = append(cats, CategoryTrigger)
	}
	if _, ok := d.Passages[name]; ok {
		cats = append(cats, CategoryPassage)
	}
	if name == entity.WallName {
		cats = append(cats, CategoryWall)
	}
	return cats
}
