package ui

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

var (
	buttonColor       = color.RGBA{40, 60, 40, 255}
	buttonActiveColor = color.RGBA{40, 140, 40, 255}
	buttonBorderColor = color.RGBA{0, 200, 0, 255}
)

type Button struct {
	Label   string
	X, Y    int
	Width   int
	Height  int
	Active  bool
	OnClick func()
}

func NewButton(label string, x, y, width, height int, onClick func()) *Button {
	return &Button{Label: label, X: x, Y: y, Width: width, Height: height, OnClick: onClick}
}

func (b *Button) Contains(x, y int) bool {
	return x >= b.X && x < b.X+b.Width &&
		y >= b.Y && y < b.Y+b.Height
}

// Click fires OnClick if the point is inside the button.
func (b *Button) Click(x, y int) bool {
	if !b.Contains(x, y) {
		return false
	}
	if b.OnClick != nil {
		b.OnClick()
	}
	return true
}

func (b *Button) Draw(screen *ebiten.Image) {
	bg := buttonColor
	if b.Active {
		bg = buttonActiveColor
	}
	vector.DrawFilledRect(screen, float32(b.X), float32(b.Y), float32(b.Width), float32(b.Height), bg, false)
	vector.StrokeRect(screen, float32(b.X), float32(b.Y), float32(b.Width), float32(b.Height), 1, buttonBorderColor, false)
	ebitenutil.DebugPrintAt(screen, b.Label, b.X+6, b.Y+(b.Height-16)/2)
}
