// Command polyomino reads a tile set and an image, searches for exact-cover
// tilings, and prints each solution it finds.
package main

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"github.com/kpitt/polyomino/internal/config"
	"github.com/kpitt/polyomino/internal/fail"
	"github.com/kpitt/polyomino/internal/image"
	"github.com/kpitt/polyomino/internal/incidence"
	"github.com/kpitt/polyomino/internal/render"
	"github.com/kpitt/polyomino/internal/tileset"
)

func main() {
	opts, err := config.Parse(os.Args[1:], os.Stderr)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			os.Exit(0)
		}
		fail.Fatal("parsing flags", err)
	}

	logger := zerolog.New(os.Stderr).With().Timestamp().Logger()
	if !opts.Verbose {
		logger = logger.Level(zerolog.Disabled)
	}

	// The tile file and the image come from independent sources (a file and,
	// by default, stdin), so loading them is genuine concurrent I/O rather
	// than two halves of one sequential step.
	var tiles *tileset.Tiles
	var img *image.Image
	var g errgroup.Group
	g.Go(func() error {
		var err error
		tiles, err = loadTiles(opts.TileFile)
		return err
	})
	g.Go(func() error {
		var err error
		img, err = loadImage(opts.ImagePath, opts.Fill)
		return err
	})
	if err := g.Wait(); err != nil {
		fail.Fatal("loading input", err)
	}
	logger.Info().Int("variants", len(tiles.Variants)).Int("kinds", tiles.NumKinds()).Msg("tiles loaded")
	logger.Info().Int("width", img.Width).Int("height", img.Height).Int("cells", img.NumCells()).Msg("image loaded")

	start := time.Now()
	lk := incidence.Build(img, tiles, opts.AllowRepeat)
	solutions := lk.Solve(opts.FindAll)
	elapsed := time.Since(start)

	searchStats := lk.Stats()
	logger.Info().
		Int("solutions", len(solutions)).
		Int64("nodes_visited", searchStats.NodesVisited).
		Int64("forks_spawned", searchStats.ForksSpawned).
		Dur("elapsed", elapsed).
		Msg("search complete")

	if len(solutions) == 0 {
		color.HiWhite("\nNo solution found.")
		return
	}

	for i, sol := range solutions {
		color.HiWhite("\nSolution %d:", i+1)
		fmt.Println(render.RenderString(lk, sol, img, tiles))
	}

	fmt.Printf("\n%s %d in %s\n", color.HiWhiteString("Found"), len(solutions), elapsed)
}

func loadTiles(path string) (*tileset.Tiles, error) {
	if path == "" {
		return tileset.Builtin()
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return tileset.Load(f)
}

func loadImage(path string, fill byte) (*image.Image, error) {
	if path == "" {
		if isStdinTTY() {
			fmt.Println("Enter the image as lines of fill characters, one covered cell per character.")
			fmt.Println("A blank line (or EOF) ends the image:")
		}
		return image.Load(os.Stdin, fill)
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return image.Load(f, fill)
}

func isStdinTTY() bool {
	return isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd())
}
