// Command mapinfo prints every placement of one or more TMX maps and the
// objects the world builder would create from it.
package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"chosenoffset.com/sorceler/internal/world"
	"chosenoffset.com/sorceler/internal/world/defs"
	"chosenoffset.com/sorceler/internal/world/mapscan"
	"chosenoffset.com/sorceler/internal/world/tilemap"
)

var (
	styleTitle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("228"))

	styleName = lipgloss.NewStyle().
			Foreground(lipgloss.Color("255"))

	styleCategory = lipgloss.NewStyle().
			Foreground(lipgloss.Color("34"))

	styleUnknown = lipgloss.NewStyle().
			Foreground(lipgloss.Color("243"))

	styleError = lipgloss.NewStyle().
			Foreground(lipgloss.Color("196"))
)

func main() {
	defsPath := flag.String("defs", "data/world.lua", "world definitions")
	dir := flag.String("dir", "data/maps", "map directory scanned when no maps are given")
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: mapinfo [-defs world.lua] [-dir maps] [map.tmx...]\n")
		flag.PrintDefaults()
	}
	flag.Parse()

	d, err := defs.LoadFile(*defsPath)
	if err != nil {
		fmt.Fprintln(os.Stderr, styleError.Render(err.Error()))
		os.Exit(1)
	}

	paths := flag.Args()
	if len(paths) == 0 {
		maps, err := mapscan.Scan(*dir)
		if err != nil {
			fmt.Fprintln(os.Stderr, styleError.Render(err.Error()))
			os.Exit(1)
		}
		for _, id := range mapscan.MissingLocations(maps, d) {
			fmt.Println(styleError.Render(fmt.Sprintf("missing map %q for a passage", id)))
		}
		for _, m := range maps {
			paths = append(paths, m.Path)
		}
	}

	failed := false
	for _, path := range paths {
		m, err := tilemap.Load(path)
		if err != nil {
			fmt.Fprintln(os.Stderr, styleError.Render(err.Error()))
			failed = true
			continue
		}
		fmt.Println(report(m, d))
	}
	if failed {
		os.Exit(1)
	}
}

// categories describes what the world builder creates for a placement name,
// adding the entity type and trigger action
func categories(name string, d *defs.Definitions) []string {
	var cats []string
	for _, cat := range world.Categories(name, d) {
		switch cat {
		case world.CategoryEntity:
			cats = append(cats, string(d.Entities[name].Type))
		case world.CategoryTrigger:
			cats = append(cats, "trigger:"+string(d.Triggers[name].Action))
		default:
			cats = append(cats, string(cat))
		}
	}
	return cats
}

func report(m *tilemap.Map, d *defs.Definitions) string {
	var b strings.Builder

	title := fmt.Sprintf("%s  %dx%d tiles @ %dpx, %d placements",
		m.Path, m.Width, m.Height, m.NativeTileSize(), len(m.Objects))
	b.WriteString(styleTitle.Render(title))
	b.WriteString("\n")

	for _, obj := range m.Objects {
		name := styleName.Render(fmt.Sprintf("%-20s", obj.Name))
		pos := fmt.Sprintf("(%6.1f, %6.1f) %4.0fx%-4.0f", obj.X, obj.Y, obj.Width, obj.Height)

		cats := categories(obj.Name, d)
		var kind string
		if len(cats) == 0 {
			kind = styleUnknown.Render("unknown")
		} else {
			kind = styleCategory.Render(strings.Join(cats, ", "))
		}
		fmt.Fprintf(&b, "  %s %s  %s\n", name, pos, kind)
	}
	return b.String()
}
