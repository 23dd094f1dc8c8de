package main

import (
	"math/rand"
	"testing"

	"github.com/gdamore/tcell/v2"

	"radar-atc/internal/config"
	"radar-atc/internal/game/aircraft"
	"radar-atc/internal/game/simulation"
	"radar-atc/pkg/types"
)

func newTestTUI(t *testing.T) *TUI {
	t.Helper()
	sim, err := simulation.New(simulation.Config{
		Settings: config.Defaults(),
		Rand:     rand.New(rand.NewSource(3)),
	})
	if err != nil {
		t.Fatalf("simulation.New: %v", err)
	}
	sim.AddAircraft("DAL210", aircraft.Medium, types.NewVec2(10, 0), 20000, 0, 0)

	screen := tcell.NewSimulationScreen("UTF-8")
	if err := screen.Init(); err != nil {
		t.Fatalf("screen.Init: %v", err)
	}
	t.Cleanup(screen.Fini)
	screen.SetSize(140, 50)
	return NewTUI(screen, sim)
}

func TestScopeRoundTrip(t *testing.T) {
	sc := newScope(101, 51, 50)
	if sc.rowsPerNM != 0.5 || sc.colsPerNM() != 1 {
		t.Fatalf("scale rows %v cols %v", sc.rowsPerNM, sc.colsPerNM())
	}
	tests := []struct {
		p    types.Vec2
		x, y int
	}{
		{types.NewVec2(0, 0), 50, 25},
		{types.NewVec2(10, 10), 60, 20},
		{types.NewVec2(-20, -30), 30, 40},
	}
	for _, test := range tests {
		x, y := sc.toCell(test.p)
		if x != test.x || y != test.y {
			t.Errorf("toCell(%v) = (%d, %d), expected (%d, %d)", test.p, x, y, test.x, test.y)
		}
		if back := sc.toWorld(x, y); back != test.p {
			t.Errorf("toWorld(%d, %d) = %v, expected %v", x, y, back, test.p)
		}
	}
}

func TestHeadingGlyph(t *testing.T) {
	tests := map[float64]rune{0: '↑', 44: '↗', 90: '→', 180: '↓', 270: '←', 350: '↑', -45: '↖'}
	for h, expected := range tests {
		if g := headingGlyph(h); g != expected {
			t.Errorf("headingGlyph(%v) = %c, expected %c", h, g, expected)
		}
	}
}

func TestKeysDriveCommands(t *testing.T) {
	tui := newTestTUI(t)

	tui.key(tcell.KeyTab, 0)
	ac := tui.sim.SelectedAircraft()
	if ac == nil || ac.Callsign != "DAL210" {
		t.Fatalf("Tab did not select DAL210")
	}

	tui.key(tcell.KeyRune, 'h')
	tui.key(tcell.KeyRune, '9')
	tui.key(tcell.KeyEnter, 0)
	if ac.TargetHeading != 90 {
		t.Errorf("target heading %v, expected 90", ac.TargetHeading)
	}

	tui.key(tcell.KeyRune, 'a')
	tui.key(tcell.KeyRune, '3')
	tui.key(tcell.KeyEscape, 0)
	if ac.TargetAltitude != 20000 {
		t.Errorf("escape applied altitude %v", ac.TargetAltitude)
	}

	tui.key(tcell.KeyRune, 'd')
	if tui.cursor != ac.Position {
		t.Errorf("cursor %v not on the aircraft %v", tui.cursor, ac.Position)
	}
	for i := 0; i < 5; i++ {
		tui.key(tcell.KeyDown, 0)
	}
	tui.key(tcell.KeyEnter, 0)
	if ac.TargetHeading != 180 {
		t.Errorf("direct-to heading %v, expected 180", ac.TargetHeading)
	}

	tui.key(tcell.KeyRune, ' ')
	if !tui.sim.Paused() {
		t.Errorf("space did not pause")
	}
	tui.key(tcell.KeyRune, 'n')
	if len(tui.sim.Aircrafts) != 2 {
		t.Errorf("n did not spawn")
	}
	tui.key(tcell.KeyRune, 'q')
	if !tui.quit {
		t.Errorf("q did not quit")
	}
}

func TestCursorStaysOnScope(t *testing.T) {
	tui := newTestTUI(t)
	tui.cursor = types.NewVec2(0, tui.sim.RadarRange())
	tui.moveCursor(0, 1)
	if tui.cursor.Y != tui.sim.RadarRange() {
		t.Errorf("cursor left the scope: %v", tui.cursor)
	}
}

func TestRenderDrawsTraffic(t *testing.T) {
	tui := newTestTUI(t)
	tui.render()

	ac, _ := tui.sim.Aircraft("DAL210")
	x, y := tui.scope().toCell(ac.Position)
	mainc, _, _, _ := tui.screen.GetContent(x, y)
	if mainc != '↑' {
		t.Errorf("cell at aircraft = %q, expected heading glyph", mainc)
	}
}
