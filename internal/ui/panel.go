package ui

import (
	"github.com/hajimehoshi/ebiten/v2"

	"radar-atc/internal/game/command"
)

const (
	buttonWidth   = 100
	buttonHeight  = 24
	buttonSpacing = 6
)

// CommandPanel is the column of command buttons plus the spawn button.
type CommandPanel struct {
	Buttons map[command.Kind]*Button
	Spawn   *Button
	order   []command.Kind
}

// NewCommandPanel lays the buttons out in two columns starting at x, y.
func NewCommandPanel(x, y int, onCommand func(command.Kind), onSpawn func()) *CommandPanel {
	p := &CommandPanel{Buttons: make(map[command.Kind]*Button)}
	for i, k := range command.Kinds() {
		bx := x + (i%2)*(buttonWidth+buttonSpacing)
		by := y + (i/2)*(buttonHeight+buttonSpacing)
		p.Buttons[k] = NewButton(k.Label(), bx, by, buttonWidth, buttonHeight, func() { onCommand(k) })
		p.order = append(p.order, k)
	}
	rows := (len(p.order) + 1) / 2
	p.Spawn = NewButton("SPAWN", x, y+rows*(buttonHeight+buttonSpacing), 2*buttonWidth+buttonSpacing, buttonHeight, onSpawn)
	return p
}

// SetArmed highlights the button of the armed command, if any.
func (p *CommandPanel) SetArmed(k command.Kind) {
	for kind, b := range p.Buttons {
		b.Active = kind == k
	}
}

// Click returns true if a button consumed the click.
func (p *CommandPanel) Click(x, y int) bool {
	for _, k := range p.order {
		if p.Buttons[k].Click(x, y) {
			return true
		}
	}
	return p.Spawn.Click(x, y)
}

func (p *CommandPanel) Draw(screen *ebiten.Image) {
	for _, k := range p.order {
		p.Buttons[k].Draw(screen)
	}
	p.Spawn.Draw(screen)
}
