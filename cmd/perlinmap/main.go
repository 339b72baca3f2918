//go:build ebiten

package main

import (
	"errors"
	"flag"
	"log"
	"os"

	"perlinmap/internal/app"
	"perlinmap/internal/core"
	_ "perlinmap/internal/fields"

	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	cfg := app.NewConfig()
	if err := cfg.Load(flag.CommandLine, os.Args[1:]); err != nil {
		log.Fatal(err)
	}

	factory, ok := core.Fields()[cfg.Field]
	if !ok {
		log.Fatalf("unknown field %q", cfg.Field)
	}

	field := factory(cfg.FieldOptions())
	game := app.New(field, cfg)
	game.Reset(cfg.Seed)
	w, h := game.Layout(0, 0)

	ebiten.SetWindowTitle("Perlin Noise Height Map Generator - " + field.Name())
	ebiten.SetTPS(cfg.TPS)
	ebiten.SetWindowSize(w, h)

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
}
