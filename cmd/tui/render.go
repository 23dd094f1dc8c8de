package main

import (
	"fmt"
	"math"

	"github.com/gdamore/tcell/v2"

	"radar-atc/internal/config"
	"radar-atc/internal/game/aircraft"
	"radar-atc/internal/game/command"
	"radar-atc/pkg/types"
)

const panelWidth = 36

var (
	styleDefault   = tcell.StyleDefault.Background(tcell.ColorBlack).Foreground(tcell.ColorWhite)
	styleHeader    = styleDefault.Foreground(tcell.ColorAqua).Bold(true)
	styleRing      = styleDefault.Foreground(tcell.ColorDarkGreen)
	styleWaypoint  = styleDefault.Foreground(tcell.ColorTeal)
	styleRunway    = styleDefault.Foreground(tcell.ColorSilver)
	styleAircraft  = styleDefault.Foreground(tcell.ColorLime)
	styleSelected  = styleDefault.Foreground(tcell.ColorBlack).Background(tcell.ColorLime)
	styleConflict  = styleDefault.Foreground(tcell.ColorBlack).Background(tcell.ColorRed).Bold(true)
	stylePredicted = styleDefault.Foreground(tcell.ColorHotPink).Bold(true)
	styleCursor    = styleDefault.Foreground(tcell.ColorYellow).Bold(true)
	styleLog       = styleDefault.Foreground(tcell.ColorGray)
	styleUrgent    = styleDefault.Foreground(tcell.ColorRed)
	stylePaused    = styleDefault.Foreground(tcell.ColorBlack).Background(tcell.ColorWhite)
)

func drawText(s tcell.Screen, x, y, maxWidth int, style tcell.Style, text string) {
	col := 0
	for _, r := range text {
		if maxWidth > 0 && col >= maxWidth {
			break
		}
		s.SetContent(x+col, y, r, nil, style)
		col++
	}
}

func (t *TUI) scope() scope {
	w, h := t.screen.Size()
	return newScope(max(w-panelWidth, 10), max(h, 5), t.sim.RadarRange())
}

func (t *TUI) render() {
	t.screen.Clear()
	sc := t.scope()

	t.drawRings(sc)
	t.drawAirspace(sc)
	for _, p := range t.sim.PredictConflicts(config.ConflictLookahead) {
		for _, pos := range []types.Vec2{p.PosA, p.PosB} {
			x, y := sc.toCell(pos)
			t.screen.SetContent(x, y, 'x', nil, stylePredicted)
		}
	}
	for _, ac := range t.sim.AllAircraft() {
		t.drawAircraft(sc, ac)
	}
	if t.sim.Commands.IsArmed(command.Direct) {
		x, y := sc.toCell(t.cursor)
		t.screen.SetContent(x, y, '+', nil, styleCursor)
	}

	t.drawPanel()
	t.screen.Show()
}

func (t *TUI) drawRings(sc scope) {
	r := t.sim.RadarRange()
	for ring := 10.0; ring <= r; ring += 10 {
		steps := int(ring * 8)
		for i := 0; i < steps; i++ {
			a := 2 * math.Pi * float64(i) / float64(steps)
			x, y := sc.toCell(types.NewVec2(ring*math.Sin(a), ring*math.Cos(a)))
			t.screen.SetContent(x, y, '·', nil, styleRing)
		}
	}
	for _, c := range []struct {
		label rune
		dir   types.Vec2
	}{{'N', types.NewVec2(0, 1)}, {'E', types.NewVec2(1, 0)}, {'S', types.NewVec2(0, -1)}, {'W', types.NewVec2(-1, 0)}} {
		x, y := sc.toCell(c.dir.Scale(r))
		t.screen.SetContent(x, y, c.label, nil, styleHeader)
	}
}

func (t *TUI) drawAirspace(sc scope) {
	if ap := t.sim.Airspace.Active; ap != nil {
		for _, rw := range ap.Runways {
			for f := 0.0; f <= 1; f += 0.1 {
				x, y := sc.toCell(rw.Start.Add(rw.End.Sub(rw.Start).Scale(f)))
				t.screen.SetContent(x, y, '=', nil, styleRunway)
			}
		}
	}
	for _, name := range t.sim.Airspace.WaypointNames() {
		wp := t.sim.Airspace.Waypoints[name]
		if wp.Kind == types.WaypointAirport {
			continue
		}
		x, y := sc.toCell(wp.Position)
		t.screen.SetContent(x, y, '^', nil, styleWaypoint)
		drawText(t.screen, x+1, y, 0, styleWaypoint, wp.Name)
	}
}

func (t *TUI) drawAircraft(sc scope, ac *aircraft.Aircraft) {
	x, y := sc.toCell(ac.Position)
	style := styleAircraft
	if sel := t.sim.SelectedAircraft(); sel != nil && sel.Callsign == ac.Callsign {
		style = styleSelected
	}
	if t.sim.InConflict(ac.Callsign) {
		style = styleConflict
	}
	t.screen.SetContent(x, y, headingGlyph(ac.Heading), nil, style)
	drawText(t.screen, x+1, y, 0, style, string(ac.Callsign))
	drawText(t.screen, x+1, y+1, 0, styleLog, fmt.Sprintf("%03.0f %3.0f", ac.Altitude/100, ac.Speed/10))
}

// headingGlyph picks one of eight arrows for the heading.
func headingGlyph(h float64) rune {
	glyphs := []rune{'↑', '↗', '→', '↘', '↓', '↙', '←', '↖'}
	return glyphs[int(math.Round(types.NormalizeHeading(h)/45))%8]
}

func (t *TUI) drawPanel() {
	w, h := t.screen.Size()
	x := w - panelWidth + 1
	if x < 0 {
		return
	}
	for y := 0; y < h; y++ {
		t.screen.SetContent(x-1, y, tcell.RuneVLine, nil, styleRing)
	}

	y := 0
	line := func(style tcell.Style, format string, args ...any) {
		drawText(t.screen, x+1, y, panelWidth-2, style, fmt.Sprintf(format, args...))
		y++
	}

	airport := "-"
	if ap := t.sim.Airspace.Active; ap != nil {
		airport = ap.ICAO
	}
	line(styleHeader, "%s RADAR", airport)
	if t.sim.Paused() {
		line(stylePaused, " PAUSED ")
	} else {
		line(styleDefault, "x%.2f", t.sim.Speed())
	}
	line(styleDefault, "Time  %02d:%02d", int(t.sim.Time())/60, int(t.sim.Time())%60)
	line(styleDefault, "Score %.0f", t.sim.Score())
	line(styleDefault, "Traffic %d  next %.0fs", len(t.sim.Aircrafts), t.sim.NextSpawn())
	y++

	if ac := t.sim.SelectedAircraft(); ac != nil {
		line(styleHeader, "%s %s %s", ac.Callsign, ac.Category, ac.Status())
		line(styleDefault, "ALT %5.0f > %5.0f", ac.Altitude, ac.TargetAltitude)
		line(styleDefault, "HDG   %03.0f >   %03.0f", ac.Heading, ac.TargetHeading)
		line(styleDefault, "SPD   %3.0f >   %3.0f", ac.Speed, ac.TargetSpeed)
	} else {
		line(styleLog, "Tab to select")
	}
	y++

	if armed := t.sim.Commands.Armed(); armed != command.None {
		value := "_"
		if v, ok := t.sim.Commands.Pending(); ok {
			value = fmt.Sprintf("%.0f", v)
		}
		if armed == command.Direct {
			value = fmt.Sprintf("(%.0f, %.0f)", t.cursor.X, t.cursor.Y)
		}
		line(styleCursor, "%s: %s", armed.Label(), value)
	} else {
		line(styleLog, "h a s c o d e  n spawn  q quit")
	}
	y++

	msgs := t.sim.RadioLog
	if room := h - y; room > 0 && len(msgs) > room {
		msgs = msgs[len(msgs)-room:]
	}
	for _, m := range msgs {
		style := styleLog
		if m.IsUrgent {
			style = styleUrgent
		}
		line(style, "%s %s", m.Callsign, m.Message)
	}
}
