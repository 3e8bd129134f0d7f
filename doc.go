// Package shapes rasterizes simple 2D and 3D geometry onto pixel canvases.
//
// # Overview
//
// shapes converts points, lines, squares, rectangles, triangles, circles,
// pentagons and wireframe cubes into integer pixel writes. It uses the classic
// integer algorithms: Bresenham for lines and the midpoint recurrence for
// circles. Polygons decompose into lines, and cubes are rotated, projected
// with a fixed perspective and traced edge by edge.
//
// # Quick Start
//
//	import "github.com/gogpu/shapes"
//
//	pm := shapes.NewPixmap(1000, 1000)
//
//	_ = shapes.Square{TopLeft: shapes.Pt(150, 150), Side: 100}.Draw(pm)
//	_ = shapes.NewCircle(400, 400, 50).Draw(pm)
//	_ = shapes.Cube{Center: shapes.Pt(700, 300), Size: 100, RotationX: 0.3}.Draw(pm)
//
//	pm.SavePNG("image.png")
//
// # Canvas
//
// Every shape draws through the [Canvas] interface, a single Display method
// taking integer coordinates and a color. Canvases ignore writes outside their
// bounds, so shapes never clip. [Pixmap] is the in-memory RGBA canvas; the
// recording package provides a canvas that captures writes for replay to
// other backends (raster, SVG).
//
// # Colors
//
// Shapes without a stored color draw in [White]. [Circle] carries its own
// color.
//
// # Randomness
//
// Random constructors ([RandomPoint], [RandomLine], [RandomCircle],
// [RandomPentagon], [RandomCube]) take a [Source], so drawing stays
// deterministic under a fixed seed.
//
// # Coordinate System
//
// Uses standard raster coordinates:
//   - Origin (0,0) at top-left
//   - X increases right
//   - Y increases down
//   - Angles in radians
package shapes

// Version information
const (
	// Version is the current version of the library
	Version = "0.1.0"

	// VersionMajor is the major version
	VersionMajor = 0

	// VersionMinor is the minor version
	VersionMinor = 1

	// VersionPatch is the patch version
	VersionPatch = 0
)
