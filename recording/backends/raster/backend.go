// Package raster provides a raster backend for the recording system.
// It replays recordings onto a shapes.Pixmap.
//
// The raster backend serves multiple purposes:
//   - Reference implementation for other backends
//   - Pixel-accurate comparison against direct drawing
//   - PNG, BMP and TIFF output
//
// # Example
//
//	// Import to register the backend
//	import _ "github.com/gogpu/shapes/recording/backends/raster"
//
//	// Create via registry
//	backend, _ := recording.NewBackend("raster")
//
//	// Or create directly
//	backend := raster.NewBackend()
//
//	// Playback recording
//	rec.Playback(backend)
//
//	// Get output
//	backend.SaveToFile("output.png")
//	img := backend.Image()
package raster

import (
	"errors"
	"image"
	"io"

	"github.com/gogpu/shapes"
	"github.com/gogpu/shapes/recording"
)

// ErrNotStarted is returned when output is requested before Begin.
var ErrNotStarted = errors.New("raster: backend not started")

func init() {
	recording.Register("raster", func() recording.Backend {
		return NewBackend()
	})
}

// Backend renders recordings to a shapes.Pixmap.
type Backend struct {
	pm    *shapes.Pixmap
	opts  recording.Options
	drawn int
}

// Ensure Backend implements all required interfaces.
var (
	_ recording.Backend             = (*Backend)(nil)
	_ recording.WriterBackend       = (*Backend)(nil)
	_ recording.FileBackend         = (*Backend)(nil)
	_ recording.PixmapBackend       = (*Backend)(nil)
	_ recording.ConfigurableBackend = (*Backend)(nil)
)

// NewBackend creates a new raster backend.
// The backend must be initialized with Begin before use.
func NewBackend() *Backend {
	return &Backend{}
}

// Configure sets background and output scale.
func (b *Backend) Configure(opts recording.Options) {
	b.opts = opts
}

// Begin allocates the pixmap and paints the background.
func (b *Backend) Begin(width, height int) error {
	b.pm = shapes.NewPixmap(width, height)
	b.drawn = 0
	if b.opts.Background.A > 0 {
		b.pm.Clear(b.opts.Background)
	}
	return nil
}

// End finalizes the rendering.
func (b *Backend) End() error {
	shapes.Logger().Debug("raster playback done", "shapes", b.drawn)
	return nil
}

// BeginShape counts shapes; pixels carry their own color.
func (b *Backend) BeginShape(string, shapes.RGBA) {
	b.drawn++
}

// EndShape is a no-op for raster output.
func (b *Backend) EndShape() {}

// SetPixel writes one pixel; out-of-bounds writes, and writes before
// Begin, are ignored.
func (b *Backend) SetPixel(x, y int, c shapes.RGBA) {
	if b.pm == nil {
		return
	}
	b.pm.Display(x, y, c)
}

// WriteTo writes the rendered image as PNG.
func (b *Backend) WriteTo(w io.Writer) (int64, error) {
	if b.pm == nil {
		return 0, ErrNotStarted
	}
	cw := &countingWriter{w: w}
	err := shapes.EncodeImage(cw, b.Image(), shapes.FormatPNG)
	return cw.n, err
}

// SaveToFile saves the rendered image; the extension picks PNG, BMP or TIFF.
func (b *Backend) SaveToFile(path string) error {
	if b.pm == nil {
		return ErrNotStarted
	}
	return shapes.SaveImage(path, b.Image())
}

// Pixmap returns the unscaled pixmap.
func (b *Backend) Pixmap() *shapes.Pixmap {
	return b.pm
}

// Image returns the rendered image with Scale applied.
func (b *Backend) Image() image.Image {
	if b.pm == nil {
		return nil
	}
	return b.pm.Scaled(b.opts.Scale)
}

// countingWriter wraps an io.Writer and counts bytes written.
type countingWriter struct {
	w io.Writer
	n int64
}

func (cw *countingWriter) Write(p []byte) (int, error) {
	n, err := cw.w.Write(p)
	cw.n += int64(n)
	return n, err
}
