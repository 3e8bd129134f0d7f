// Package svg provides an SVG backend for the recording system.
//
// Every pixel becomes a Scale×Scale <rect>, and every shape becomes a
// <g id="kind-N"> group, so the output can be inspected or restyled per
// shape in any SVG editor. A pixel written twice by the same shape yields
// a single rect; pixels of later shapes are painted over earlier ones.
//
// # Example
//
//	import _ "github.com/gogpu/shapes/recording/backends/svg"
//
//	backend, _ := recording.NewBackend("svg")
//	_ = rec.Playback(backend)
//	_ = backend.(recording.FileBackend).SaveToFile("image.svg")
package svg

import (
	"bytes"
	"fmt"
	"image"
	"io"
	"os"

	svgo "github.com/ajstarks/svgo"

	"github.com/gogpu/shapes"
	"github.com/gogpu/shapes/recording"
)

func init() {
	recording.Register("svg", func() recording.Backend {
		return NewBackend()
	})
}

// Backend writes recordings as SVG documents.
type Backend struct {
	buf    bytes.Buffer
	canvas *svgo.SVG
	opts   recording.Options

	width, height int
	scale         int

	groups  int
	inGroup bool
	seen    map[image.Point]struct{} // pixels of the open group
	rects   int
}

// Ensure Backend implements all required interfaces.
var (
	_ recording.Backend             = (*Backend)(nil)
	_ recording.WriterBackend       = (*Backend)(nil)
	_ recording.FileBackend         = (*Backend)(nil)
	_ recording.ConfigurableBackend = (*Backend)(nil)
)

// NewBackend creates a new SVG backend.
func NewBackend() *Backend {
	return &Backend{}
}

// Configure sets background and pixel scale.
func (b *Backend) Configure(opts recording.Options) {
	b.opts = opts
}

// Begin starts the document.
func (b *Backend) Begin(width, height int) error {
	if width <= 0 || height <= 0 {
		return fmt.Errorf("svg: invalid dimensions: width=%d, height=%d (both must be > 0)", width, height)
	}
	b.buf.Reset()
	b.width, b.height = width, height
	b.scale = max(b.opts.Scale, 1)
	b.groups, b.rects = 0, 0
	b.inGroup = false
	b.seen = make(map[image.Point]struct{})

	b.canvas = svgo.New(&b.buf)
	b.canvas.Start(width*b.scale, height*b.scale, `shape-rendering="crispEdges"`)
	if b.opts.Background.A > 0 {
		b.canvas.Rect(0, 0, width*b.scale, height*b.scale, fillStyle(b.opts.Background))
	}
	return nil
}

// End closes any open group and the document.
func (b *Backend) End() error {
	if b.canvas == nil {
		return fmt.Errorf("svg: End called before Begin")
	}
	if b.inGroup {
		b.EndShape()
	}
	b.canvas.End()
	shapes.Logger().Debug("svg playback done", "groups", b.groups, "rects", b.rects)
	return nil
}

// BeginShape opens a <g> element named after the shape kind.
func (b *Backend) BeginShape(kind string, _ shapes.RGBA) {
	if b.inGroup {
		b.EndShape()
	}
	b.groups++
	b.canvas.Gid(fmt.Sprintf("%s-%d", kind, b.groups))
	b.inGroup = true
}

// EndShape closes the current <g> element.
func (b *Backend) EndShape() {
	if !b.inGroup {
		return
	}
	b.canvas.Gend()
	b.inGroup = false
	clear(b.seen)
}

// SetPixel emits a rect for the pixel unless the open group already has one.
func (b *Backend) SetPixel(x, y int, c shapes.RGBA) {
	if x < 0 || x >= b.width || y < 0 || y >= b.height {
		return
	}
	if b.inGroup {
		p := image.Pt(x, y)
		if _, dup := b.seen[p]; dup {
			return
		}
		b.seen[p] = struct{}{}
	}
	b.canvas.Rect(x*b.scale, y*b.scale, b.scale, b.scale, fillStyle(c))
	b.rects++
}

// Rects returns the number of rect elements emitted for pixels.
func (b *Backend) Rects() int {
	return b.rects
}

// WriteTo writes the SVG document.
func (b *Backend) WriteTo(w io.Writer) (int64, error) {
	return bytes.NewReader(b.buf.Bytes()).WriteTo(w)
}

// SaveToFile writes the SVG document to path.
func (b *Backend) SaveToFile(path string) error {
	return os.WriteFile(path, b.buf.Bytes(), 0o644) //nolint:gosec // output file is meant to be world-readable
}

func fillStyle(c shapes.RGBA) string {
	if c.A >= 1 {
		return "fill:" + c.Hex()
	}
	return fmt.Sprintf("fill:%s;fill-opacity:%.3f", c.Hex(), c.A)
}
