package main

import (
	"flag"

	"github.com/gogpu/shapes/scene"
)

const (
	defaultSize   = 1000
	defaultOutput = "image.png"
)

// config holds the command-line flags. Flags given explicitly win over
// the scene file; the rest only fill in what the file leaves empty.
type config struct {
	scene      string
	width      int
	height     int
	output     string
	format     string
	background string
	seed       uint64
	scale      int
	spin       int
	verbose    bool

	set map[string]bool
}

func (c *config) register(fs *flag.FlagSet) {
	fs.StringVar(&c.scene, "scene", "", "scene file (.yaml, .toml or .json); empty draws the demo scene")
	fs.IntVar(&c.width, "width", defaultSize, "image width")
	fs.IntVar(&c.height, "height", defaultSize, "image height")
	fs.StringVar(&c.output, "output", defaultOutput, "output file (.png, .bmp, .tif, .svg)")
	fs.StringVar(&c.format, "format", "", "backend name (raster, svg); default picks by output extension")
	fs.StringVar(&c.background, "background", "", "background color as #rrggbb; default transparent")
	fs.Uint64Var(&c.seed, "seed", 0, "random seed; 0 picks one from the clock")
	fs.IntVar(&c.scale, "scale", 1, "pixel scale factor for the output")
	fs.IntVar(&c.spin, "spin", 0, "also write an animated GIF of the cubes with this many frames")
	fs.BoolVar(&c.verbose, "v", false, "verbose logging to stderr")
}

// markSet records which flags were given on the command line.
func (c *config) markSet(fs *flag.FlagSet) {
	c.set = make(map[string]bool)
	fs.Visit(func(f *flag.Flag) {
		c.set[f.Name] = true
	})
}

// apply overlays the flags onto sc.Canvas.
func (c *config) apply(sc *scene.Scene) {
	cv := &sc.Canvas
	if c.set["width"] || cv.Width == 0 {
		cv.Width = c.width
	}
	if c.set["height"] || cv.Height == 0 {
		cv.Height = c.height
	}
	if c.set["output"] || cv.Output == "" {
		cv.Output = c.output
	}
	if c.set["background"] {
		cv.Background = c.background
	}
	if c.set["seed"] {
		cv.Seed = c.seed
	}
	if c.set["scale"] || cv.Scale == 0 {
		cv.Scale = c.scale
	}
}
