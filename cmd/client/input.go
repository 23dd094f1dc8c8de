package main

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"radar-atc/internal/game/command"
)

var digitKeys = map[ebiten.Key]int{
	ebiten.KeyDigit0: 0, ebiten.KeyNumpad0: 0,
	ebiten.KeyDigit1: 1, ebiten.KeyNumpad1: 1,
	ebiten.KeyDigit2: 2, ebiten.KeyNumpad2: 2,
	ebiten.KeyDigit3: 3, ebiten.KeyNumpad3: 3,
	ebiten.KeyDigit4: 4, ebiten.KeyNumpad4: 4,
	ebiten.KeyDigit5: 5, ebiten.KeyNumpad5: 5,
	ebiten.KeyDigit6: 6, ebiten.KeyNumpad6: 6,
	ebiten.KeyDigit7: 7, ebiten.KeyNumpad7: 7,
	ebiten.KeyDigit8: 8, ebiten.KeyNumpad8: 8,
	ebiten.KeyDigit9: 9, ebiten.KeyNumpad9: 9,
}

var commandKeys = map[ebiten.Key]command.Kind{
	ebiten.KeyH: command.Heading,
	ebiten.KeyA: command.Altitude,
	ebiten.KeyS: command.Speed,
	ebiten.KeyC: command.Approach,
	ebiten.KeyO: command.Hold,
	ebiten.KeyD: command.Direct,
	ebiten.KeyE: command.Emergency,
}

func (g *Game) handleInput() {
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		x, y := ebiten.CursorPosition()
		g.callsignInput.IsActive = g.callsignInput.Contains(x, y)
		switch {
		case g.callsignInput.IsActive:
		case g.panel.Click(x, y):
		case x < g.width-panelWidth:
			g.sim.Click(g.camera.ScreenToWorld(float64(x), float64(y)))
		}
	}

	if g.callsignInput.IsActive {
		g.callsignInput.Update()
	} else {
		g.handleKeys()
	}

	_, wy := ebiten.Wheel()
	if wy != 0 {
		cursorX, cursorY := ebiten.CursorPosition()
		factor := 1.1
		if wy < 0 {
			factor = 1 / factor
		}
		g.camera.ZoomAt(float64(cursorX), float64(cursorY), factor)
	}

	// Right mouse button for pan
	if ebiten.IsMouseButtonPressed(ebiten.MouseButtonRight) {
		x, y := ebiten.CursorPosition()
		if !inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonRight) {
			g.camera.Pan(x-g.camera.PanStartX, y-g.camera.PanStartY)
		}
		g.camera.PanStartX, g.camera.PanStartY = x, y
	}
}

func (g *Game) handleKeys() {
	for key, d := range digitKeys {
		if inpututil.IsKeyJustPressed(key) {
			g.sim.Digit(d)
		}
	}
	for key, kind := range commandKeys {
		if inpututil.IsKeyJustPressed(key) {
			g.sim.Command(kind)
		}
	}

	switch {
	case inpututil.IsKeyJustPressed(ebiten.KeyEnter), inpututil.IsKeyJustPressed(ebiten.KeyNumpadEnter):
		g.sim.Enter()
	case inpututil.IsKeyJustPressed(ebiten.KeyEscape):
		g.sim.CancelCommand()
	case inpututil.IsKeyJustPressed(ebiten.KeySpace):
		g.sim.TogglePause()
	case inpututil.IsKeyJustPressed(ebiten.KeyTab):
		g.sim.CycleSelection()
	case inpututil.IsKeyJustPressed(ebiten.KeyN):
		g.sim.SpawnAircraft()
	case inpututil.IsKeyJustPressed(ebiten.KeyEqual), inpututil.IsKeyJustPressed(ebiten.KeyNumpadAdd):
		g.sim.SpeedUp()
	case inpututil.IsKeyJustPressed(ebiten.KeyMinus), inpututil.IsKeyJustPressed(ebiten.KeyNumpadSubtract):
		g.sim.SlowDown()
	case inpututil.IsKeyJustPressed(ebiten.KeyHome):
		g.camera.X, g.camera.Y, g.camera.Zoom = 0, 0, 1
	}
}
