package recording

import (
	"io"

	"github.com/gogpu/shapes"
)

// Backend is the interface that all playback backends must implement.
// Backends receive pixel commands and translate them to their output
// format (raster pixels, SVG elements, ...).
//
// # Implementation Contract
//
// Each backend must:
//  1. Register in init() using recording.Register()
//  2. Ignore pixels outside the dimensions passed to Begin
//  3. Tolerate SetPixel calls outside a BeginShape/EndShape pair
type Backend interface {
	// Begin initializes the backend for the given dimensions.
	// It must be called before any other method.
	Begin(width, height int) error

	// End finalizes the output. After End, output methods
	// (WriteTo, SaveToFile) can be used.
	End() error

	// BeginShape starts a group of pixels drawn by one shape.
	BeginShape(kind string, c shapes.RGBA)

	// EndShape closes the current group.
	EndShape()

	// SetPixel writes one pixel.
	SetPixel(x, y int, c shapes.RGBA)
}

// WriterBackend extends Backend with the ability to write output to an io.Writer.
type WriterBackend interface {
	Backend

	// WriteTo writes the rendered content to the given writer.
	// This should only be called after End().
	WriteTo(w io.Writer) (int64, error)
}

// FileBackend extends Backend with the ability to save output directly to a file.
type FileBackend interface {
	Backend

	// SaveToFile saves the rendered content to a file at the given path.
	// This should only be called after End().
	SaveToFile(path string) error
}

// PixmapBackend extends Backend with access to a rasterized pixmap.
type PixmapBackend interface {
	Backend

	// Pixmap returns the rendered pixmap, or nil before Begin.
	Pixmap() *shapes.Pixmap
}

// Options carries output settings understood by the built-in backends.
type Options struct {
	// Background fills the canvas before playback. The zero value
	// (transparent) leaves it empty.
	Background shapes.RGBA

	// Scale enlarges every pixel to a Scale×Scale block on output.
	// Values below 1 mean 1.
	Scale int
}

// ConfigurableBackend is implemented by backends that accept Options.
// Configure must be called before Begin.
type ConfigurableBackend interface {
	Backend
	Configure(opts Options)
}
