package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"runtime"
	"sort"
	"strconv"
	"strings"
	"sync"
	"time"

	"perlinmap/internal/app"
	"perlinmap/internal/fields"
	"perlinmap/internal/render"
	"perlinmap/pkg/heightmap"

	"go.uber.org/multierr"
)

type job struct {
	seed int64
	path string
}

type result struct {
	job
	stats   heightmap.Stats
	elapsed time.Duration
	err     error
}

func main() {
	if err := run(os.Args[1:], os.Stdout); err != nil {
		log.Fatal(err)
	}
}

func run(args []string, out io.Writer) error {
	fs := flag.NewFlagSet("perlinmap-render", flag.ContinueOnError)
	cfg := app.NewConfig()
	if err := cfg.Load(fs, args); err != nil {
		return err
	}

	var smooth bool
	switch cfg.Field {
	case fields.NameHeightmap:
		smooth = true
	case fields.NameNoise:
	default:
		return fmt.Errorf("unknown field %q", cfg.Field)
	}
	if cfg.Seeds < 1 {
		return fmt.Errorf("seeds must be >= 1, got %d", cfg.Seeds)
	}

	jobs := make(chan job)
	results := make(chan result)
	workers := min(cfg.Seeds, runtime.NumCPU())

	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := range jobs {
				results <- renderSeed(j, cfg, smooth)
			}
		}()
	}

	go func() {
		wg.Wait()
		close(results)
	}()

	go func() {
		for i := 0; i < cfg.Seeds; i++ {
			seed := cfg.Seed + int64(i)
			jobs <- job{seed: seed, path: outputPath(cfg.Out, seed, cfg.Seeds)}
		}
		close(jobs)
	}()

	fmt.Fprintf(out, "Rendering %d seed(s) at %dx%d (octaves=%d persistence=%g scale=%g, %d workers)\n",
		cfg.Seeds, cfg.Width, cfg.Height, cfg.Octaves, cfg.Persistence, cfg.Params.Scale, workers)

	var all []result
	for res := range results {
		all = append(all, res)
	}
	sort.Slice(all, func(i, j int) bool { return all[i].seed < all[j].seed })

	var err error
	for _, res := range all {
		if res.err != nil {
			err = multierr.Append(err, fmt.Errorf("seed %d: %w", res.seed, res.err))
			continue
		}
		fmt.Fprintf(out, "seed=%d min=%.4f max=%.4f mean=%.4f -> %s (%s)\n",
			res.seed, res.stats.Min, res.stats.Max, res.stats.Mean, res.path, res.elapsed.Round(time.Millisecond))
	}
	return err
}

func renderSeed(j job, cfg *app.Config, smooth bool) result {
	start := time.Now()
	res := result{job: j}
	grid, err := heightmap.NewGenerator(j.seed).Generate(context.Background(), cfg.Width, cfg.Height, cfg.Params)
	if err != nil {
		res.err = err
		return res
	}
	res.stats = grid.Stats()
	var raster *heightmap.Raster
	if smooth {
		raster = heightmap.SmoothAndRasterize(grid)
	} else {
		raster = heightmap.Rasterize(grid)
	}
	res.err = render.SavePNG(j.path, raster)
	res.elapsed = time.Since(start)
	return res
}

// outputPath inserts the seed before the extension when rendering several seeds.
func outputPath(base string, seed int64, count int) string {
	if count == 1 {
		return base
	}
	ext := filepath.Ext(base)
	return strings.TrimSuffix(base, ext) + "-" + strconv.FormatInt(seed, 10) + ext
}
