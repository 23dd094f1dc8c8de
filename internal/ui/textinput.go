package ui

import (
	"image/color"
	"strings"
	"unicode"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

const maxCallsignLength = 8

// TextInput is a one-line callsign entry box. While active it swallows
// the keyboard; Enter submits and Escape abandons.
type TextInput struct {
	Text        string
	Placeholder string
	IsActive    bool
	X, Y        int
	Width       int
	Height      int
	OnSubmit    func(string)
}

func NewTextInput(x, y, width, height int, placeholder string, onSubmit func(string)) *TextInput {
	return &TextInput{
		Placeholder: placeholder,
		X:           x,
		Y:           y,
		Width:       width,
		Height:      height,
		OnSubmit:    onSubmit,
	}
}

func (ti *TextInput) Update() {
	if !ti.IsActive {
		return
	}

	for _, r := range ebiten.AppendInputChars(nil) {
		if len(ti.Text) >= maxCallsignLength {
			break
		}
		if r < unicode.MaxASCII && (unicode.IsLetter(r) || unicode.IsDigit(r)) {
			ti.Text += string(unicode.ToUpper(r))
		}
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyBackspace) && len(ti.Text) > 0 {
		ti.Text = ti.Text[:len(ti.Text)-1]
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		ti.Text = ""
		ti.IsActive = false
		return
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyEnter) {
		if text := strings.TrimSpace(ti.Text); text != "" && ti.OnSubmit != nil {
			ti.OnSubmit(text)
		}
		ti.Text = ""
		ti.IsActive = false
	}
}

func (ti *TextInput) Draw(screen *ebiten.Image) {
	bgColor := color.RGBA{30, 30, 30, 255}
	if ti.IsActive {
		bgColor = color.RGBA{60, 60, 60, 255}
	}
	vector.DrawFilledRect(screen, float32(ti.X), float32(ti.Y), float32(ti.Width), float32(ti.Height), bgColor, false)
	vector.StrokeRect(screen, float32(ti.X), float32(ti.Y), float32(ti.Width), float32(ti.Height), 1, color.White, false)

	displayTxt := ti.Text
	switch {
	case ti.IsActive:
		displayTxt += "_"
	case displayTxt == "":
		displayTxt = ti.Placeholder
	}
	ebitenutil.DebugPrintAt(screen, displayTxt, ti.X+5, ti.Y+(ti.Height-16)/2)
}

// Contains reports whether the screen point is inside the box.
func (ti *TextInput) Contains(x, y int) bool {
	return x >= ti.X && x <= ti.X+ti.Width &&
		y >= ti.Y && y <= ti.Y+ti.Height
}
