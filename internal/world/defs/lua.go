package defs

import (
	"fmt"

	lua "github.com/yuin/gopher-lua"
)

type rawDef struct {
	kind  string
	name  string
	table *lua.LTable
}

type rawEvent struct {
	index int
	table *lua.LTable
}

// collector accumulates Lua definitions during file execution.
type collector struct {
	defs   []rawDef
	events []rawEvent
}

// LoadFile executes a Lua definitions file and returns validated definitions.
// The Lua VM is discarded after loading.
func LoadFile(path string) (*Definitions, error) {
	return load(func(L *lua.LState) error {
		return L.DoFile(path)
	}, path)
}

// LoadString is LoadFile for in-memory sources.
func LoadString(src string) (*Definitions, error) {
	return load(func(L *lua.LState) error {
		return L.DoString(src)
	}, "<string>")
}

func load(run func(*lua.LState) error, source string) (*Definitions, error) {
	L := lua.NewState(lua.Options{SkipOpenLibs: true})
	defer L.Close()

	openSafeLibs(L)
	sandbox(L)

	coll := &collector{}
	registerAPI(L, coll)

	if err := run(L); err != nil {
		return nil, fmt.Errorf("failed to execute definitions %s: %w", source, err)
	}

	d, err := compile(coll)
	if err != nil {
		return nil, fmt.Errorf("failed to compile definitions %s: %w", source, err)
	}
	if err := d.Validate(); err != nil {
		return nil, err
	}
	return d, nil
}

// openSafeLibs opens only the safe subset of Lua standard libraries.
func openSafeLibs(L *lua.LState) {
	lua.OpenBase(L)
	lua.OpenTable(L)
	lua.OpenString(L)
	lua.OpenMath(L)
}

// sandbox removes globals that reach outside the VM.
func sandbox(L *lua.LState) {
	for _, name := range []string{"dofile", "loadfile", "load", "loadstring", "collectgarbage"} {
		L.SetGlobal(name, lua.LNil)
	}
}

// registerAPI installs the curried constructors: Item "name" { ... }.
func registerAPI(L *lua.LState, coll *collector) {
	for _, kind := range []string{"Item", "Mob", "Entity", "Trigger", "Passage"} {
		kind := kind
		L.SetGlobal(kind, L.NewFunction(func(L *lua.LState) int {
			name := L.CheckString(1)
			L.Push(L.NewFunction(func(L *lua.LState) int {
				tbl := L.OptTable(1, L.NewTable())
				coll.defs = append(coll.defs, rawDef{kind: kind, name: name, table: tbl})
				return 0
			}))
			return 1
		}))
	}

	// Event(1) { text = "..." }
	L.SetGlobal("Event", L.NewFunction(func(L *lua.LState) int {
		index := L.CheckInt(1)
		L.Push(L.NewFunction(func(L *lua.LState) int {
			tbl := L.CheckTable(1)
			coll.events = append(coll.events, rawEvent{index: index, table: tbl})
			return 0
		}))
		return 1
	}))
}

func compile(coll *collector) (*Definitions, error) {
	d := New()
	seen := make(map[string]bool)

	for _, raw := range coll.defs {
		key := raw.kind + ":" + raw.name
		if seen[key] {
			return nil, fmt.Errorf("%w: duplicate %s %q", ErrInvalidDefinition, raw.kind, raw.name)
		}
		seen[key] = true

		t := raw.table
		switch raw.kind {
		case "Item":
			d.Items.Put(raw.name)
		case "Mob":
			d.Mobs[raw.name] = MobDef{
				Name:   raw.name,
				Sprite: stringField(t, "sprite", raw.name),
			}
		case "Entity":
			sprites := stringList(t, "sprites")
			def := EntityDef{
				Name:      raw.name,
				Type:      EntityType(stringField(t, "type", "")),
				Key:       stringField(t, "key", ""),
				Inventory: stringList(t, "inventory"),
			}
			if len(sprites) != 2 {
				return nil, fmt.Errorf("%w: entity %q needs exactly two sprites, got %d", ErrInvalidDefinition, raw.name, len(sprites))
			}
			def.Sprites = [2]string{sprites[0], sprites[1]}
			d.Entities[raw.name] = def
		case "Trigger":
			d.Triggers[raw.name] = TriggerDef{
				Name:        raw.name,
				Action:      Action(stringField(t, "action", "")),
				Destination: stringField(t, "destination", ""),
				Event:       int(numberField(t, "event", 0)),
			}
		case "Passage":
			d.Passages[raw.name] = PassageDef{
				Name:     raw.name,
				Location: stringField(t, "location", ""),
				X:        numberField(t, "x", 0),
				Y:        numberField(t, "y", 0),
			}
		}
	}

	for _, raw := range coll.events {
		if _, ok := d.Events[raw.index]; ok {
			return nil, fmt.Errorf("%w: duplicate event %d", ErrInvalidDefinition, raw.index)
		}
		d.Events[raw.index] = EventDef{
			Index: raw.index,
			Text:  stringField(raw.table, "text", ""),
		}
	}

	return d, nil
}

func stringField(t *lua.LTable, key, def string) string {
	if s, ok := t.RawGetString(key).(lua.LString); ok {
		return string(s)
	}
	return def
}

func numberField(t *lua.LTable, key string, def float64) float64 {
	if n, ok := t.RawGetString(key).(lua.LNumber); ok {
		return float64(n)
	}
	return def
}

func stringList(t *lua.LTable, key string) []string {
	list, ok := t.RawGetString(key).(*lua.LTable)
	if !ok {
		return nil
	}
	var out []string
	for i := 1; i <= list.Len(); i++ {
		if s, ok := list.RawGetInt(i).(lua.LString); ok {
			out = append(out, string(s))
		}
	}
	return out
}
