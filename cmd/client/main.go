package main

import (
	"flag"
	"image/color"
	"os"
	"strconv"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/labstack/gommon/log"

	"radar-atc/internal/config"
	"radar-atc/internal/game/simulation"
	"radar-atc/internal/logging"
	"radar-atc/internal/ui"
	"radar-atc/pkg/types"
)

const (
	screenWidth  = 1024
	screenHeight = 768
	panelWidth   = 240
)

type Game struct {
	width, height int
	camera        *Camera
	sim           *simulation.Simulation

	panel         *ui.CommandPanel
	callsignInput *ui.TextInput
}

func NewGame(sim *simulation.Simulation, width, height int) *Game {
	radarWidth := width - panelWidth
	game := &Game{
		sim:    sim,
		camera: NewCamera(radarWidth, height, sim.RadarRange()),
		width:  width,
		height: height,
	}

	panelX := radarWidth + 10
	game.panel = ui.NewCommandPanel(panelX, 250, sim.Command, func() { sim.SpawnAircraft() })
	game.callsignInput = ui.NewTextInput(panelX, 210, panelWidth-20, 26, "select callsign...", func(cs string) {
		if !sim.SelectAircraft(types.Callsign(cs)) {
			log.Infof("No aircraft %s on scope", cs)
		}
	})

	return game
}

func (g *Game) Update() error {
	g.handleInput()
	g.sim.Step()
	g.panel.SetArmed(g.sim.Commands.Armed())
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(color.RGBA{0, 0, 0, 255})

	g.drawAirspace(screen)
	g.drawPredictions(screen)
	for _, ac := range g.sim.AllAircraft() {
		g.drawAircraft(screen, ac)
	}

	g.drawUI(screen)
	ebitenutil.DebugPrint(screen, "FPS: "+strconv.FormatFloat(ebiten.ActualFPS(), 'f', 2, 64))
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.width, g.height
}

func main() {
	settings, err := config.ParseFlags(flag.CommandLine, os.Args[1:])
	if err != nil {
		log.Fatal(err)
	}
	closer := logging.Setup(settings.LogLevel, settings.LogFile)
	defer closer.Close()

	sim, err := simulation.New(simulation.Config{Settings: settings})
	if err != nil {
		log.Fatal(err)
	}

	ebiten.SetWindowSize(screenWidth, screenHeight)
	ebiten.SetWindowTitle("ATC Radar")
	ebiten.SetVsyncEnabled(true)
	ebiten.SetTPS(int(config.TickRate))

	if err := ebiten.RunGame(NewGame(sim, screenWidth, screenHeight)); err != nil {
		log.Fatal(err)
	}
}
