package world

import (
	"errors"
	"fmt"
	"path/filepath"

	"github.com/sirupsen/logrus"

	"chosenoffset.com/sorceler/internal/config"
	"chosenoffset.com/sorceler/internal/core/geom"
	"chosenoffset.com/sorceler/internal/entity"
	"chosenoffset.com/sorceler/internal/logger"
	"chosenoffset.com/sorceler/internal/world/defs"
	"chosenoffset.com/sorceler/internal/world/tilemap"
)

var (
	// ErrUnknownPassage is returned when a teleport names a passage with no definition.
	ErrUnknownPassage = errors.New("unknown passage")
	// ErrNoPlayer is returned when the start map has no player_start placement.
	ErrNoPlayer = errors.New("no player start")
	// ErrTravelling is returned by a Travel issued while another is in progress.
	ErrTravelling = errors.New("travel already in progress")
)

// MapLoader loads the map with the given id
type MapLoader interface {
	LoadMap(id string) (*tilemap.Map, error)
}

// DirLoader loads <Dir>/<id>.tmx
type DirLoader struct {
	Dir string
}

func (l DirLoader) LoadMap(id string) (*tilemap.Map, error) {
	return tilemap.Load(filepath.Join(l.Dir, id+".tmx"))
}

// EventSink receives fired events
type EventSink interface {
	OnEvent(ev defs.EventDef)
}

// EventFunc adapts a function to EventSink
type EventFunc func(ev defs.EventDef)

func (f EventFunc) OnEvent(ev defs.EventDef) { f(ev) }

// Manager owns every View of the session, the live player and the passage
// anchors resolved so far. It is not safe for concurrent use.
type Manager struct {
	cfg    *config.Config
	defs   *defs.Definitions
	loader MapLoader

	views    map[string]*View
	current  *View
	player   *entity.Player
	passages defs.ResolvedPassages

	travelling bool

	NoClip bool
	Events EventSink

	// OnEnter is called with each view that becomes current
	OnEnter func(v *View)
}

// NewManager creates a manager with no views
func NewManager(cfg *config.Config, d *defs.Definitions, loader MapLoader) *Manager {
	return &Manager{
		cfg:      cfg,
		defs:     d,
		loader:   loader,
		views:    make(map[string]*View),
		passages: defs.ResolvedPassages{},
	}
}

// Current returns the active view
func (m *Manager) Current() *View { return m.current }

// Player returns the live player
func (m *Manager) Player() *entity.Player { return m.player }

// View returns the cached view of a map, if it was visited
func (m *Manager) View(id string) (*View, bool) {
	v, ok := m.views[id]
	return v, ok
}

// ViewCount returns how many maps have been visited
func (m *Manager) ViewCount() int { return len(m.views) }

// Anchor returns where a teleport into passage lands right now
func (m *Manager) Anchor(passage string) (defs.Anchor, bool) {
	if _, ok := m.defs.Passages[passage]; !ok {
		return defs.Anchor{}, false
	}
	a, err := m.defs.Anchor(passage, m.passages)
	return a, err == nil
}

// Start builds the first map and makes it current.
func (m *Manager) Start(mapID string) error {
	v, err := m.createView(mapID)
	if err != nil {
		return err
	}
	m.enter(v)
	logger.Log.WithFields(logrus.Fields{
		"map":    mapID,
		"player": m.player.ID(),
	}).Info("World started")
	return nil
}

// Update advances the current view by one frame. The player's velocity must
// already be set from input.
func (m *Manager) Update(dt float64) error {
	v := m.current
	p := m.player
	if v == nil || p == nil {
		return nil
	}

	p.Update(dt, m.NoClip, v.Solids()...)

	for _, it := range v.Items.Colliding(p.HitRect()) {
		v.RemoveItem(it)
		p.Inventory.Add(it.Name())
		logger.Log.WithFields(logrus.Fields{
			"map":  v.ID,
			"item": it.Name(),
		}).Info("Item picked up")
	}

	for _, it := range v.Items.All() {
		it.Update()
	}

	v.Camera.Update(p.Rect())

	for _, t := range v.Triggers.Colliding(p.HitRect()) {
		switch t.Action {
		case defs.ActionTeleport:
			return m.Travel(t.Destination)
		case defs.ActionEvent:
			if !t.Fire() {
				continue
			}
			ev, ok := m.defs.Events[t.Event]
			if !ok {
				ev = defs.EventDef{Index: t.Event}
			}
			logger.Log.WithFields(logrus.Fields{
				"map":     v.ID,
				"trigger": t.Name(),
				"event":   t.Event,
			}).Info("Event fired")
			if m.Events != nil {
				m.Events.OnEvent(ev)
			}
		}
	}
	return nil
}

// Interact uses every interactable near the player and returns how many
// were used.
func (m *Manager) Interact() int {
	if m.current == nil || m.player == nil {
		return 0
	}
	used := m.player.UseClosest(m.current.Entities.All(), m.cfg.InteractRadius)
	if used > 0 {
		logger.Log.WithFields(logrus.Fields{
			"map":  m.current.ID,
			"used": used,
		}).Debug("Interacted")
	}
	return used
}

// Travel moves the player to the anchor of passage, creating the
// destination view on its first visit.
func (m *Manager) Travel(passage string) error {
	if m.travelling {
		return ErrTravelling
	}
	m.travelling = true
	defer func() { m.travelling = false }()

	def, ok := m.defs.Passages[passage]
	if !ok {
		return fmt.Errorf("failed to travel: %w: %q", ErrUnknownPassage, passage)
	}
	if m.player == nil {
		return fmt.Errorf("failed to travel to %q: %w", passage, ErrNoPlayer)
	}

	from := m.current
	to, ok := m.views[def.Location]
	if !ok {
		var err error
		if to, err = m.createView(def.Location); err != nil {
			return err
		}
	} else {
		to.AddPlayer(m.player)
	}
	if from != nil && from != to {
		from.RemovePlayer(m.player)
	}

	anchor, err := m.defs.Anchor(passage, m.passages)
	if err != nil {
		return fmt.Errorf("failed to travel: %w", err)
	}
	if anchor.Map != to.ID {
		logger.Log.WithFields(logrus.Fields{
			"passage": passage,
			"anchor":  anchor.Map,
			"map":     to.ID,
		}).Warn("Passage anchor is on another map")
	}
	m.player.Place(geom.V(anchor.X, anchor.Y))
	m.enter(to)

	logger.Log.WithFields(logrus.Fields{
		"passage": passage,
		"map":     to.ID,
		"x":       anchor.X,
		"y":       anchor.Y,
	}).Info("Travelled")
	return nil
}

// Resize updates every view's camera to a new screen size
func (m *Manager) Resize(screenW, screenH float64) {
	for _, v := range m.views {
		v.Camera.Resize(screenW, screenH)
	}
	if m.current != nil && m.player != nil {
		m.current.Camera.Update(m.player.Rect())
	}
}

func (m *Manager) createView(id string) (*View, error) {
	tm, err := m.loader.LoadMap(id)
	if err != nil {
		return nil, fmt.Errorf("failed to load map %q: %w", id, err)
	}
	v := NewView(id, tm, m.cfg)
	if m.player != nil {
		v.AddPlayer(m.player)
	}
	player, anchors, err := Build(v, m.defs, m.cfg, m.player)
	if err != nil {
		if m.player != nil {
			v.RemovePlayer(m.player)
		}
		return nil, err
	}
	// The first view must place the player; nothing is kept otherwise
	if player == nil {
		return nil, fmt.Errorf("failed to start on map %q: %w", id, ErrNoPlayer)
	}
	m.player = player
	m.passages.Merge(anchors)
	m.views[id] = v
	return v, nil
}

func (m *Manager) enter(v *View) {
	m.current = v
	v.Camera.Update(m.player.Rect())
	if m.OnEnter != nil {
		m.OnEnter(v)
	}
}
