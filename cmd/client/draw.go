package main

import (
	"fmt"
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"radar-atc/internal/config"
	"radar-atc/internal/game/aircraft"
	"radar-atc/internal/game/command"
	"radar-atc/pkg/types"
)

const ringSpacing = 10.0 // NM

var (
	ringColor      = color.RGBA{0, 80, 0, 255}
	waypointColor  = color.RGBA{0, 255, 255, 255}
	runwayColor    = color.RGBA{200, 200, 200, 255}
	stormColor     = color.RGBA{120, 60, 160, 80}
	aircraftColor  = color.RGBA{0, 255, 0, 255}
	selectedColor  = color.RGBA{255, 255, 255, 255}
	conflictColor  = color.RGBA{255, 0, 0, 100}
	predictedColor = color.RGBA{255, 200, 0, 255}
	vectorColor    = color.RGBA{100, 100, 255, 255}
	urgentColor    = color.RGBA{255, 80, 80, 255}
)

func (g *Game) line(screen *ebiten.Image, a, b types.Vec2, width float32, clr color.Color) {
	x1, y1 := g.camera.WorldToScreen(a)
	x2, y2 := g.camera.WorldToScreen(b)
	vector.StrokeLine(screen, float32(x1), float32(y1), float32(x2), float32(y2), width, clr, true)
}

func (g *Game) drawAirspace(screen *ebiten.Image) {
	cx, cy := g.camera.WorldToScreen(types.Vec2{})
	scale := g.camera.Scale()
	radarRange := g.sim.RadarRange()

	for r := ringSpacing; r <= radarRange; r += ringSpacing {
		vector.StrokeCircle(screen, float32(cx), float32(cy), float32(r*scale), 1, ringColor, true)
	}

	for _, c := range []struct {
		label string
		dir   types.Vec2
	}{{"N", types.NewVec2(0, 1)}, {"E", types.NewVec2(1, 0)}, {"S", types.NewVec2(0, -1)}, {"W", types.NewVec2(-1, 0)}} {
		x, y := g.camera.WorldToScreen(c.dir.Scale(radarRange + 2))
		ebitenutil.DebugPrintAt(screen, c.label, int(x)-3, int(y)-8)
	}

	for _, storm := range g.sim.Weather().Storms {
		x, y := g.camera.WorldToScreen(storm.Center)
		vector.DrawFilledCircle(screen, float32(x), float32(y), float32(storm.Radius*scale), stormColor, true)
	}

	if ap := g.sim.Airspace.Active; ap != nil {
		for _, rw := range ap.Runways {
			g.line(screen, rw.Start, rw.End, 3, runwayColor)
		}
	}

	for _, name := range g.sim.Airspace.WaypointNames() {
		wp := g.sim.Airspace.Waypoints[name]
		if wp.Kind == types.WaypointAirport {
			continue
		}
		x, y := g.camera.WorldToScreen(wp.Position)
		vector.DrawFilledCircle(screen, float32(x), float32(y), 3, waypointColor, true)
		ebitenutil.DebugPrintAt(screen, wp.Name, int(x)+5, int(y)+5)
	}
}

func (g *Game) drawAircraft(screen *ebiten.Image, ac *aircraft.Aircraft) {
	x, y := g.camera.WorldToScreen(ac.Position)
	scale := g.camera.Scale()

	if g.sim.InConflict(ac.Callsign) {
		r := config.MinHorizontalSeparation / 2 * scale
		vector.DrawFilledCircle(screen, float32(x), float32(y), float32(r), conflictColor, true)
	}

	// one minute leader line
	radians := ac.Heading * math.Pi / 180.0
	lead := ac.Speed / 60
	g.line(screen, ac.Position, ac.Position.Add(types.NewVec2(math.Sin(radians), math.Cos(radians)).Scale(lead)), 1, vectorColor)

	vector.DrawFilledRect(screen, float32(x)-3, float32(y)-3, 6, 6, aircraftColor, false)
	if selected := g.sim.SelectedAircraft(); selected != nil && selected.Callsign == ac.Callsign {
		vector.StrokeRect(screen, float32(x)-8, float32(y)-8, 16, 16, 1, selectedColor, false)
		if fix, ok := ac.Route.Next(); ok {
			g.line(screen, ac.Position, fix, 1, color.RGBA{0, 120, 120, 255})
		}
	}

	tagText := fmt.Sprintf("%s\nFL%03.0f %s\n%03.0f %.0fkt",
		ac.Callsign, ac.Altitude/100, trend(ac), ac.Heading, ac.Speed)
	ebitenutil.DebugPrintAt(screen, tagText, int(x)+10, int(y)-20)
}

func trend(ac *aircraft.Aircraft) string {
	switch ac.Status() {
	case aircraft.CLIMB:
		return fmt.Sprintf("^%03.0f", ac.TargetAltitude/100)
	case aircraft.DESCEND:
		return fmt.Sprintf("v%03.0f", ac.TargetAltitude/100)
	case aircraft.HOLDING:
		return "HLD"
	case aircraft.APPROACH:
		return "APP"
	default:
		return ""
	}
}

func (g *Game) drawPredictions(screen *ebiten.Image) {
	for _, p := range g.sim.PredictConflicts(config.ConflictLookahead) {
		for _, pos := range []types.Vec2{p.PosA, p.PosB} {
			x, y := g.camera.WorldToScreen(pos)
			vector.StrokeLine(screen, float32(x)-5, float32(y)-5, float32(x)+5, float32(y)+5, 1, predictedColor, true)
			vector.StrokeLine(screen, float32(x)-5, float32(y)+5, float32(x)+5, float32(y)-5, 1, predictedColor, true)
		}
		g.line(screen, p.PosA, p.PosB, 1, predictedColor)
	}
}

func (g *Game) drawUI(screen *ebiten.Image) {
	panelX := g.width - panelWidth
	vector.DrawFilledRect(screen, float32(panelX), 0, panelWidth, float32(g.height), color.RGBA{15, 20, 15, 255}, false)
	vector.StrokeLine(screen, float32(panelX), 0, float32(panelX), float32(g.height), 1, ringColor, false)

	status := "RUNNING"
	if g.sim.Paused() {
		status = "PAUSED"
	}
	airport := "-"
	if ap := g.sim.Airspace.Active; ap != nil {
		airport = ap.ICAO
	}
	w := g.sim.Weather()
	header := fmt.Sprintf("%s  %s\nTime  %s\nSpeed x%.2f\nScore %.0f\nTraffic %d  Next %.0fs\nWind %03.0f/%.0fkt",
		airport, status, clock(g.sim.Time()), g.sim.Speed(), g.sim.Score(),
		len(g.sim.Aircrafts), g.sim.NextSpawn(), w.WindDirection, w.WindSpeed)
	ebitenutil.DebugPrintAt(screen, header, panelX+10, 20)

	selectedText := "Selected: none"
	if ac := g.sim.SelectedAircraft(); ac != nil {
		selectedText = fmt.Sprintf("Selected: %s (%s)\nALT %.0f -> %.0f\nHDG %03.0f -> %03.0f\nSPD %.0f -> %.0f\n%s",
			ac.Callsign, ac.Category, ac.Altitude, ac.TargetAltitude,
			ac.Heading, ac.TargetHeading, ac.Speed, ac.TargetSpeed, ac.Status())
	}
	ebitenutil.DebugPrintAt(screen, selectedText, panelX+10, 120)

	g.callsignInput.Draw(screen)
	g.panel.Draw(screen)

	if armed := g.sim.Commands.Armed(); armed != command.None {
		prompt := armed.Label() + ": "
		if v, ok := g.sim.Commands.Pending(); ok {
			prompt += fmt.Sprintf("%.0f", v)
		} else {
			prompt += "_"
		}
		ebitenutil.DebugPrintAt(screen, prompt, panelX+10, 400)
	}

	g.drawRadio(screen, panelX+10, 430)
}

func (g *Game) drawRadio(screen *ebiten.Image, x, y int) {
	const shown = 18
	msgs := g.sim.RadioLog
	if len(msgs) > shown {
		msgs = msgs[len(msgs)-shown:]
	}
	for i, msg := range msgs {
		line := fmt.Sprintf("%s %s: %s", clock(msg.Time), msg.Callsign, msg.Message)
		if len(line) > 37 {
			line = line[:37]
		}
		if msg.IsUrgent {
			vector.DrawFilledRect(screen, float32(x)-4, float32(y+i*16)+2, 2, 12, urgentColor, false)
		}
		ebitenutil.DebugPrintAt(screen, line, x, y+i*16)
	}
}

func clock(seconds float64) string {
	s := int(seconds)
	return fmt.Sprintf("%02d:%02d", s/60, s%60)
}
