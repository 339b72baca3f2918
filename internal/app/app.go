//go:build ebiten

package app

import (
	"fmt"
	"time"

	"perlinmap/internal/core"
	"perlinmap/internal/render"
	"perlinmap/internal/ui"
	"perlinmap/pkg/heightmap"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

type rasterProvider interface {
	Raster() *heightmap.Raster
}

type errProvider interface {
	Err() error
}

type seedProvider interface {
	Seed() int64
}

// Game adapts a core field to the ebiten.Game interface.
type Game struct {
	field   core.Field
	painter *render.GridPainter
	hud     *ui.HUD
	overlay *ui.Overlay
	theme   ui.Theme

	scale   int
	seed    int64
	exports string
}

// New constructs a Game for the provided field. Pressing P saves the current
// raster to cfg.Out.
func New(field core.Field, cfg *Config) *Game {
	size := field.Size()
	scale := cfg.Scale
	if scale <= 0 {
		scale = 1
	}
	return &Game{
		field:   field,
		painter: render.NewGridPainter(size.W, size.H),
		hud:     ui.NewHUD(field, cfg.HUDWidth),
		overlay: ui.NewOverlay(),
		theme:   ui.ThemeByName(cfg.Theme),
		scale:   scale,
		seed:    cfg.Seed,
		exports: cfg.Out,
	}
}

// Reset regenerates the field with the provided seed.
func (g *Game) Reset(seed int64) {
	g.seed = seed
	g.field.Reset(seed)
	g.reportField()
}

// Update handles per-frame input and regenerates after parameter changes.
func (g *Game) Update() error {
	if g.overlay.Capturing() {
		if seed, ok := g.overlay.Update(); ok {
			g.Reset(seed)
		}
		return nil
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyE) {
		g.overlay.Seed.Begin()
		g.overlay.SetStatus("", false)
		return nil
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.Reset(g.seed)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyS) {
		g.Reset(time.Now().UnixNano())
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyT) {
		g.theme = g.theme.Toggle()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyP) {
		g.export()
	}

	changed := g.hud.Update(g.mapWidth())
	g.field.Step()
	if changed {
		if sp, ok := g.field.(seedProvider); ok {
			g.seed = sp.Seed()
		}
		g.reportField()
	}
	return nil
}

// Draw renders the map, the HUD and the status bar.
func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(g.theme.Background)
	g.painter.Blit(screen, g.field.Cells(), g.scale)
	g.hud.Draw(screen, g.mapWidth(), g.scale, g.theme)
	g.overlay.Draw(screen, g.mapWidth(), g.field.Size().H*g.scale, g.theme)
}

// Layout returns the logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.mapWidth() + g.hud.Width(), g.field.Size().H * g.scale
}

func (g *Game) mapWidth() int { return g.field.Size().W * g.scale }

func (g *Game) reportField() {
	if ep, ok := g.field.(errProvider); ok && ep.Err() != nil {
		g.overlay.SetStatus(ep.Err().Error(), true)
		return
	}
	g.overlay.SetStatus(fmt.Sprintf("seed %d", g.seed), false)
}

func (g *Game) export() {
	rp, ok := g.field.(rasterProvider)
	if !ok || rp.Raster() == nil {
		g.overlay.SetStatus("nothing to export yet", true)
		return
	}
	if err := render.SavePNG(g.exports, rp.Raster()); err != nil {
		g.overlay.SetStatus(err.Error(), true)
		return
	}
	g.overlay.SetStatus("saved "+g.exports, false)
}
