package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/labstack/gommon/log"

	"radar-atc/internal/config"
	"radar-atc/internal/game/command"
	"radar-atc/internal/game/simulation"
	"radar-atc/internal/logging"
	"radar-atc/pkg/types"
)

const defaultLogFile = "logs/tui.log"

var commandRunes = map[rune]command.Kind{
	'h': command.Heading,
	'a': command.Altitude,
	's': command.Speed,
	'c': command.Approach,
	'o': command.Hold,
	'd': command.Direct,
	'e': command.Emergency,
}

// TUI drives the simulation from a terminal.
type TUI struct {
	screen tcell.Screen
	sim    *simulation.Simulation
	cursor types.Vec2 // direct-to cursor, world NM
	quit   bool
}

func NewTUI(screen tcell.Screen, sim *simulation.Simulation) *TUI {
	return &TUI{screen: screen, sim: sim}
}

// Run owns the simulation: events and ticks are handled on this
// goroutine only.
func (t *TUI) Run() {
	events := make(chan tcell.Event, 16)
	go func() {
		for {
			ev := t.screen.PollEvent()
			if ev == nil {
				close(events)
				return
			}
			events <- ev
		}
	}()

	ticker := time.NewTicker(time.Duration(float64(time.Second) / t.sim.TickRate))
	defer ticker.Stop()
	render := time.NewTicker(time.Second / 20)
	defer render.Stop()

	t.render()
	for !t.quit {
		select {
		case ev, ok := <-events:
			if !ok {
				return
			}
			t.handleEvent(ev)
		case <-ticker.C:
			t.sim.Step()
		case <-render.C:
			t.render()
		}
	}
}

func (t *TUI) handleEvent(ev tcell.Event) {
	switch ev := ev.(type) {
	case *tcell.EventResize:
		t.screen.Sync()
	case *tcell.EventKey:
		t.key(ev.Key(), ev.Rune())
	case *tcell.EventMouse:
		if ev.Buttons()&tcell.Button1 != 0 {
			x, y := ev.Position()
			t.sim.Click(t.scope().toWorld(x, y))
		}
	}
}

func (t *TUI) key(k tcell.Key, r rune) {
	switch k {
	case tcell.KeyCtrlC:
		t.quit = true
	case tcell.KeyTab:
		t.sim.CycleSelection()
	case tcell.KeyEscape:
		t.sim.CancelCommand()
	case tcell.KeyEnter:
		if t.sim.Commands.IsArmed(command.Direct) {
			t.sim.Click(t.cursor)
		} else {
			t.sim.Enter()
		}
	case tcell.KeyUp:
		t.moveCursor(0, 1)
	case tcell.KeyDown:
		t.moveCursor(0, -1)
	case tcell.KeyLeft:
		t.moveCursor(-1, 0)
	case tcell.KeyRight:
		t.moveCursor(1, 0)
	case tcell.KeyRune:
		t.handleRune(r)
	}
}

func (t *TUI) handleRune(r rune) {
	if r >= '0' && r <= '9' {
		t.sim.Digit(int(r - '0'))
		return
	}
	if kind, ok := commandRunes[r]; ok {
		if kind == command.Direct {
			if ac := t.sim.SelectedAircraft(); ac != nil {
				t.cursor = ac.Position
			}
		}
		t.sim.Command(kind)
		return
	}

	switch r {
	case 'q':
		t.quit = true
	case 'n':
		t.sim.SpawnAircraft()
	case ' ':
		t.sim.TogglePause()
	case '+', '=':
		t.sim.SpeedUp()
	case '-':
		t.sim.SlowDown()
	}
}

// moveCursor steps the direct-to cursor by whole NM, staying on the scope.
func (t *TUI) moveCursor(dx, dy float64) {
	next := t.cursor.Add(types.NewVec2(dx, dy))
	if next.Norm() <= t.sim.RadarRange() {
		t.cursor = next
	}
}

func main() {
	settings, err := config.ParseFlags(flag.CommandLine, os.Args[1:])
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}
	// The terminal is ours; logs always go to a file.
	if settings.LogFile == "" {
		settings.LogFile = defaultLogFile
	}
	closer := logging.Setup(settings.LogLevel, settings.LogFile)
	defer closer.Close()

	sim, err := simulation.New(simulation.Config{Settings: settings})
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to create screen: %v\n", err)
		os.Exit(1)
	}
	if err := screen.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize screen: %v\n", err)
		os.Exit(1)
	}
	screen.SetStyle(styleDefault)
	screen.EnableMouse()

	log.Infof("Terminal scope started at %s", settings.Airport)
	NewTUI(screen, sim).Run()
	screen.Fini()
	log.Infof("Terminal scope closed, score %.0f", sim.Score())
}
