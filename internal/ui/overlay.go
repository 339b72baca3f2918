//go:build ebiten

package ui

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"
)

// Overlay draws the seed prompt and status line over the bottom of the map.
type Overlay struct {
	Seed SeedInput

	status  string
	isError bool
	bar     *ebiten.Image
	chars   []rune
}

// NewOverlay constructs a new overlay instance.
func NewOverlay() *Overlay { return &Overlay{} }

// SetStatus replaces the status line.
func (o *Overlay) SetStatus(msg string, isError bool) {
	o.status = msg
	o.isError = isError
}

// Capturing reports whether keyboard input belongs to the seed prompt.
func (o *Overlay) Capturing() bool { return o.Seed.Active() }

// Update feeds keyboard input to the prompt. It returns the submitted seed
// and true when Enter was pressed on a valid integer.
func (o *Overlay) Update() (int64, bool) {
	if !o.Seed.Active() {
		return 0, false
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		o.Seed.Cancel()
		return 0, false
	}
	o.chars = ebiten.AppendInputChars(o.chars[:0])
	o.Seed.Type(o.chars...)
	if inpututil.IsKeyJustPressed(ebiten.KeyBackspace) {
		o.Seed.Backspace()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEnter) || inpututil.IsKeyJustPressed(ebiten.KeyNumpadEnter) {
		seed, ok := o.Seed.Submit()
		if !ok {
			o.SetStatus(o.Seed.Message(), true)
		}
		return seed, ok
	}
	return 0, false
}

// Draw renders the bar across the bottom width pixels of screen.
func (o *Overlay) Draw(screen *ebiten.Image, width, height int, theme Theme) {
	line := o.status
	col := theme.Text
	if o.isError {
		col = theme.Error
	}
	if o.Seed.Active() {
		line = "Seed: " + o.Seed.Text() + "_"
		col = theme.Text
		if msg := o.Seed.Message(); msg != "" {
			line += "   " + msg
			col = theme.Error
		}
	}
	if line == "" || width <= 0 || height < barHeight {
		return
	}
	if o.bar == nil || o.bar.Bounds().Dx() != width {
		o.bar = ebiten.NewImage(width, barHeight)
	}
	o.bar.Fill(theme.Background)
	text.Draw(o.bar, line, basicfont.Face7x13, panelPadding/2, barHeight-6, col)
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(0, float64(height-barHeight))
	screen.DrawImage(o.bar, op)
}

const barHeight = 20
