// Command shapes draws a scene of rasterized shapes to PNG, BMP, TIFF or SVG.
//
// Without -scene it draws the built-in demo scene. Flags override values
// from the scene file:
//
//	shapes -output image.png
//	shapes -scene demo.yaml -output demo.svg -scale 2
//	shapes -seed 42 -spin 36 -v
package main

import (
	"flag"
	"log"
	"log/slog"
	"os"

	"github.com/muesli/termenv"

	"github.com/gogpu/shapes"
	_ "github.com/gogpu/shapes/recording/backends/raster"
	_ "github.com/gogpu/shapes/recording/backends/svg"
)

func main() {
	var cfg config
	cfg.register(flag.CommandLine)
	flag.Parse()
	cfg.markSet(flag.CommandLine)

	if cfg.verbose {
		shapes.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug})))
	}

	out := termenv.NewOutput(os.Stdout)
	res, err := run(cfg, out.Profile, out)
	if err != nil {
		log.Fatalf("shapes: %v", err)
	}

	logResult(log.Default(), res, cfg.spin)
}

func logResult(l *log.Logger, res result, frames int) {
	l.Printf("Image saved to %s (%dx%d, %d shapes)", res.output, res.width, res.height, res.drawn)
	if res.gif != "" {
		l.Printf("Animation saved to %s (%d frames)", res.gif, frames)
	}
}
