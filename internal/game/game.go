// Package game runs the frame loop: it turns input into player intent,
// advances the world and draws the current map.
package game

import (
	"github.com/sirupsen/logrus"

	"chosenoffset.com/sorceler/internal/config"
	"chosenoffset.com/sorceler/internal/logger"
	"chosenoffset.com/sorceler/internal/render"
	"chosenoffset.com/sorceler/internal/world"
	"chosenoffset.com/sorceler/internal/world/atlas"
	"chosenoffset.com/sorceler/internal/world/defs"
)

const messageDuration = 4.0

// Game holds all game state and logic.
type Game struct {
	Config   *config.Config
	World    *world.Manager
	Atlas    *atlas.Atlas
	Renderer render.Renderer
	InputMgr render.InputManager

	State    State
	Debug    bool
	Messages []Message

	backgrounds map[string]render.Image

	screenW, screenH int
}

// New creates a game around a started world. Events fired by the world are
// shown as messages.
func New(cfg *config.Config, w *world.Manager, a *atlas.Atlas, r render.Renderer, input render.InputManager) *Game {
	g := &Game{
		Config:      cfg,
		World:       w,
		Atlas:       a,
		Renderer:    r,
		InputMgr:    input,
		backgrounds: make(map[string]render.Image),
		screenW:     cfg.ScreenWidth,
		screenH:     cfg.ScreenHeight,
	}
	w.Events = g
	if p := w.Player(); p != nil {
		p.Inventory.OnChange = func() {
			logger.Log.WithField("items", p.Inventory.Len()).Debug("Inventory changed")
		}
	}
	return g
}

// Update handles game logic updates.
func (g *Game) Update() error {
	dt := g.Config.DeltaTime()
	in := g.InputMgr

	g.updateMessages(dt)

	if in.IsKeyJustPressed(render.KeyEscape) {
		logger.Log.Info("Quit requested")
		return render.ErrTerminate
	}

	if in.IsKeyJustPressed(render.KeyP) {
		if g.State == StatePaused {
			g.State = StatePlaying
		} else {
			g.State = StatePaused
		}
		logger.Log.WithField("state", g.State).Debug("Pause toggled")
	}
	if g.State == StatePaused {
		return nil
	}

	if in.IsKeyJustPressed(render.KeyN) {
		g.World.NoClip = !g.World.NoClip
		if g.World.NoClip {
			g.ShowMessage("No-clip on")
		} else {
			g.ShowMessage("No-clip off")
		}
	}
	if in.IsKeyJustPressed(render.KeyH) {
		g.Debug = !g.Debug
	}

	p := g.World.Player()
	if in.IsKeyJustPressed(render.KeyI) {
		logger.Log.WithFields(logrus.Fields{
			"player":    p.ID(),
			"inventory": p.Inventory.Items(),
		}).Info(p.Inventory.String())
	}

	dx, dy := movement(in)
	p.SetInput(dx, dy, g.Config.PlayerSpeed, g.Config.DiagonalFactor)

	if in.IsKeyJustPressed(render.KeyE) {
		g.World.Interact()
	}

	return g.World.Update(dt)
}

// movement reads the arrow and WASD keys into a direction on each axis
func movement(in render.InputManager) (dx, dy int) {
	pressed := func(keys ...render.Key) bool {
		for _, k := range keys {
			if in.IsKeyPressed(k) {
				return true
			}
		}
		return false
	}
	if pressed(render.KeyLeft, render.KeyA) {
		dx--
	}
	if pressed(render.KeyRight, render.KeyD) {
		dx++
	}
	if pressed(render.KeyUp, render.KeyW) {
		dy--
	}
	if pressed(render.KeyDown, render.KeyS) {
		dy++
	}
	return dx, dy
}

// Layout follows the window size so a bigger window shows more of the map.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	if outsideWidth > 0 && outsideHeight > 0 && (outsideWidth != g.screenW || outsideHeight != g.screenH) {
		g.screenW, g.screenH = outsideWidth, outsideHeight
		g.World.Resize(float64(outsideWidth), float64(outsideHeight))
	}
	return g.screenW, g.screenH
}

// OnEvent shows the text of a fired world event.
func (g *Game) OnEvent(ev defs.EventDef) {
	if ev.Text == "" {
		return
	}
	g.ShowMessage(ev.Text)
}

func (g *Game) updateMessages(dt float64) {
	var active []Message
	for _, msg := range g.Messages {
		msg.TimeLeft -= dt
		if msg.TimeLeft > 0 {
			active = append(active, msg)
		}
	}
	g.Messages = active
}

// ShowMessage adds a new message to be displayed on screen.
func (g *Game) ShowMessage(text string) {
	g.Messages = append(g.Messages, Message{
		Text:     text,
		TimeLeft: messageDuration,
		MaxTime:  messageDuration,
	})
	logger.Log.WithField("message", text).Debug("Message shown")
}
