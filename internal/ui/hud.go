//go:build ebiten

package ui

import (
	"fmt"
	"image"
	"image/color"
	"math"
	"strconv"
	"strings"

	"perlinmap/internal/core"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"
)

// HUD renders the parameter panel to the right of the height map.
type HUD struct {
	field      core.Field
	width      int
	panel      *ebiten.Image
	lastHeight int
	snapshot   core.ParameterSnapshot

	controls     []hudControlState
	intSetter    core.IntParameterSetter
	floatSetter  core.FloatParameterSetter
	panelOffsetX int
	title        string

	pixel *ebiten.Image
}

// NewHUD constructs a HUD for the provided field and panel width.
func NewHUD(field core.Field, width int) *HUD {
	if width < 0 {
		width = 0
	}
	h := &HUD{field: field, width: width}
	if width > 0 {
		h.pixel = ebiten.NewImage(1, 1)
		h.pixel.Fill(color.White)
	}
	h.title = buildTitle(field)
	if provider, ok := field.(core.ParameterControlsProvider); ok {
		controls := provider.ParameterControls()
		h.controls = make([]hudControlState, len(controls))
		for i, ctrl := range controls {
			h.controls[i] = hudControlState{control: ctrl, value: "--"}
		}
		h.layoutControls()
	}
	if setter, ok := field.(core.IntParameterSetter); ok {
		h.intSetter = setter
	}
	if setter, ok := field.(core.FloatParameterSetter); ok {
		h.floatSetter = setter
	}
	return h
}

// Width returns the panel width in pixels.
func (h *HUD) Width() int {
	if h == nil {
		return 0
	}
	return h.width
}

// Update refreshes the cached snapshot and applies clicks on the +/- buttons.
// It reports whether a parameter changed.
func (h *HUD) Update(panelOffsetX int) bool {
	if h == nil {
		return false
	}
	h.panelOffsetX = panelOffsetX
	provider, ok := h.field.(core.ParameterProvider)
	if !ok {
		h.snapshot = core.ParameterSnapshot{}
		return false
	}
	h.snapshot = provider.Parameters()
	h.refreshControlValues()
	return h.handleInput()
}

// Draw paints the HUD panel anchored to the right edge of the map.
func (h *HUD) Draw(screen *ebiten.Image, offsetX int, scale int, theme Theme) {
	if h == nil || h.width <= 0 {
		return
	}
	if scale <= 0 {
		scale = 1
	}
	height := h.field.Size().H * scale
	if height <= 0 {
		return
	}
	if h.panel == nil || h.panel.Bounds().Dx() != h.width || h.lastHeight != height {
		h.panel = ebiten.NewImage(h.width, height)
		h.lastHeight = height
	}
	h.panel.Fill(theme.Panel)
	h.drawControls(theme)
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(float64(offsetX), 0)
	screen.DrawImage(h.panel, op)
}

func buildTitle(field core.Field) string {
	if field == nil || field.Name() == "" {
		return "Controls"
	}
	name := field.Name()
	return fmt.Sprintf("%s Controls", strings.ToUpper(name[:1])+name[1:])
}

func (h *HUD) refreshControlValues() {
	for i := range h.controls {
		state := &h.controls[i]
		param, ok := h.snapshot.Lookup(state.control.Key)
		if !ok {
			state.hasValue = false
			state.value = "--"
			continue
		}
		switch state.control.Type {
		case core.ParamTypeInt:
			parsed, err := strconv.ParseInt(param.Value, 10, 64)
			if err != nil {
				state.hasValue = false
				state.value = "--"
				continue
			}
			state.intValue = parsed
			state.value = param.Value
			state.hasValue = true
		case core.ParamTypeFloat:
			parsed, err := strconv.ParseFloat(param.Value, 64)
			if err != nil {
				state.hasValue = false
				state.value = "--"
				continue
			}
			state.floatValue = parsed
			state.value = formatFloat(state.control, parsed)
			state.hasValue = true
		default:
			state.hasValue = false
			state.value = "--"
		}
	}
}

func (h *HUD) handleInput() bool {
	if len(h.controls) == 0 {
		return false
	}
	if !inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		return false
	}
	mx, my := ebiten.CursorPosition()
	if mx < h.panelOffsetX {
		return false
	}
	px := mx - h.panelOffsetX
	for i := range h.controls {
		state := &h.controls[i]
		if !state.hasValue {
			continue
		}
		if pointInRect(px, my, state.minusRect) {
			return h.applyAdjustment(state, -1)
		}
		if pointInRect(px, my, state.plusRect) {
			return h.applyAdjustment(state, 1)
		}
	}
	return false
}

func (h *HUD) applyAdjustment(state *hudControlState, direction int) bool {
	switch state.control.Type {
	case core.ParamTypeInt:
		next, ok := h.intTarget(state, direction)
		if !ok || next == state.intValue {
			return false
		}
		if h.intSetter.SetIntParameter(state.control.Key, next) {
			state.intValue = next
			state.value = strconv.FormatInt(next, 10)
			return true
		}
	case core.ParamTypeFloat:
		next, ok := h.floatTarget(state, direction)
		if !ok || math.Abs(next-state.floatValue) < 1e-9 {
			return false
		}
		if h.floatSetter.SetFloatParameter(state.control.Key, next) {
			state.floatValue = next
			state.value = formatFloat(state.control, next)
			return true
		}
	}
	return false
}

func (h *HUD) intTarget(state *hudControlState, direction int) (int64, bool) {
	if h.intSetter == nil || direction == 0 {
		return 0, false
	}
	step := int64(math.Round(state.control.Step))
	if step <= 0 {
		step = 1
	}
	target := state.intValue + int64(direction)*step
	if direction > 0 && target < state.intValue || direction < 0 && target > state.intValue {
		return state.intValue, true
	}
	if state.control.HasMin {
		if min := int64(math.Round(state.control.Min)); target < min {
			target = min
		}
	}
	if state.control.HasMax {
		if max := int64(math.Round(state.control.Max)); target > max {
			target = max
		}
	}
	return target, true
}

// floatTarget rounds to the step grid so repeated clicks do not drift.
func (h *HUD) floatTarget(state *hudControlState, direction int) (float64, bool) {
	if h.floatSetter == nil || direction == 0 {
		return 0, false
	}
	step := state.control.Step
	if step <= 0 {
		step = 0.05
	}
	v := state.floatValue + float64(direction)*step
	v = math.Round(v/step) * step
	return state.control.Clamp(v), true
}

func (h *HUD) canAdjust(state *hudControlState, direction int) bool {
	switch state.control.Type {
	case core.ParamTypeInt:
		next, ok := h.intTarget(state, direction)
		return ok && next != state.intValue
	case core.ParamTypeFloat:
		next, ok := h.floatTarget(state, direction)
		return ok && math.Abs(next-state.floatValue) >= 1e-9
	}
	return false
}

func (h *HUD) drawControls(theme Theme) {
	face := basicfont.Face7x13
	headerY := panelPadding + headerBaseline
	text.Draw(h.panel, h.title, face, panelPadding, headerY, theme.Text)
	if len(h.controls) == 0 {
		text.Draw(h.panel, "No adjustable parameters", face, panelPadding, headerY+infoSpacing, theme.MutedText)
		return
	}
	for i := range h.controls {
		state := &h.controls[i]
		labelY := state.top + labelBaseline
		text.Draw(h.panel, state.control.Label, face, panelPadding, labelY, theme.Text)
		valueColor := theme.Text
		if !state.hasValue {
			valueColor = theme.MutedText
		}
		bounds := text.BoundString(face, state.value)
		valueX := state.minusRect.Min.X - buttonGap - bounds.Dx()
		text.Draw(h.panel, state.value, face, valueX, labelY, valueColor)

		h.drawButton(state.minusRect, "-", state.hasValue && h.canAdjust(state, -1), theme)
		h.drawButton(state.plusRect, "+", state.hasValue && h.canAdjust(state, 1), theme)
	}
	help := []string{"E seed  R redo  S random", "T theme  P save  Q quit"}
	y := h.lastHeight - panelPadding - (len(help)-1)*helpLineHeight
	for _, line := range help {
		text.Draw(h.panel, line, face, panelPadding, y, theme.MutedText)
		y += helpLineHeight
	}
}

func (h *HUD) drawButton(rect image.Rectangle, label string, enabled bool, theme Theme) {
	if h.pixel == nil {
		return
	}
	bg := theme.Button
	fg := theme.ButtonText
	if !enabled {
		bg = theme.ButtonOff
		fg = theme.MutedText
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(rect.Dx()), float64(rect.Dy()))
	op.GeoM.Translate(float64(rect.Min.X), float64(rect.Min.Y))
	op.ColorScale.ScaleWithColor(bg)
	h.panel.DrawImage(h.pixel, op)

	face := basicfont.Face7x13
	bounds := text.BoundString(face, label)
	x := rect.Min.X + (rect.Dx()-bounds.Dx())/2
	y := rect.Min.Y + (rect.Dy()-bounds.Dy())/2 + bounds.Dy()
	text.Draw(h.panel, label, face, x, y, fg)
}

func (h *HUD) layoutControls() {
	if len(h.controls) == 0 || h.width <= 0 {
		return
	}
	for i := range h.controls {
		top := controlsTop + i*lineHeight
		buttonY := top + (lineHeight-buttonSize)/2
		plusRect := image.Rect(h.width-panelPadding-buttonSize, buttonY, h.width-panelPadding, buttonY+buttonSize)
		minusRect := image.Rect(plusRect.Min.X-buttonGap-buttonSize, buttonY, plusRect.Min.X-buttonGap, buttonY+buttonSize)
		h.controls[i].top = top
		h.controls[i].minusRect = minusRect
		h.controls[i].plusRect = plusRect
	}
}

func formatFloat(ctrl core.ParameterControl, value float64) string {
	step := ctrl.Step
	if step <= 0 {
		step = 0.05
	}
	precision := 1
	switch {
	case step < 0.001:
		precision = 4
	case step < 0.01:
		precision = 3
	case step < 0.1:
		precision = 2
	}
	return strconv.FormatFloat(value, 'f', precision, 64)
}

func pointInRect(x, y int, rect image.Rectangle) bool {
	return x >= rect.Min.X && x < rect.Max.X && y >= rect.Min.Y && y < rect.Max.Y
}

type hudControlState struct {
	control core.ParameterControl
	value   string

	intValue   int64
	floatValue float64
	hasValue   bool

	top       int
	minusRect image.Rectangle
	plusRect  image.Rectangle
}

const (
	panelPadding   = 12
	lineHeight     = 36
	buttonSize     = 24
	buttonGap      = 6
	headerBaseline = 18
	labelBaseline  = 24
	infoSpacing    = 36
	helpLineHeight = 16
	controlsTop    = panelPadding + headerBaseline + 14
)
