package shapes

import "fmt"

// CubeViewDistance is the eye distance used to project cube vertices.
const CubeViewDistance = 1000.0

// MaxProjected bounds the absolute value of a projected coordinate.
// Vertices close to the eye plane project beyond it and are rejected.
const MaxProjected = 1 << 20

// Cube vertex numbering. The front face is z = -size/2, the back face
// z = +size/2; "bottom" is negative y.
//
//	0 front-bottom-left   4 back-bottom-left
//	1 front-bottom-right  5 back-bottom-right
//	2 front-top-right     6 back-top-right
//	3 front-top-left      7 back-top-left
var cubeCorners = [8][3]float64{
	{-1, -1, -1},
	{1, -1, -1},
	{1, 1, -1},
	{-1, 1, -1},
	{-1, -1, 1},
	{1, -1, 1},
	{1, 1, 1},
	{-1, 1, 1},
}

// CubeEdges lists the 12 edges as vertex index pairs: front face, back
// face, then the four connecting edges.
var CubeEdges = [12][2]int{
	{0, 1}, {1, 2}, {2, 3}, {3, 0},
	{4, 5}, {5, 6}, {6, 7}, {7, 4},
	{0, 4}, {1, 5}, {2, 6}, {3, 7},
}

// Cube is a wireframe cube drawn with perspective.
//
// Vertices are recomputed on every Draw from the stored fields; changing a
// rotation between draws changes the output and nothing else is cached.
type Cube struct {
	Center    Point
	Size      int
	RotationX float64 // radians, applied first
	RotationY float64 // radians, applied second
	RotationZ float64 // radians, applied last

	defaultColor
}

// NewCube creates an unrotated cube.
func NewCube(center Point, size int) Cube {
	return Cube{Center: center, Size: size}
}

// vertices builds, rotates and translates the eight corners.
//
// Translation only moves x and y by Center; z keeps its rotated value, so
// the projection scales the cube around the origin rather than around its
// own center.
func (c Cube) vertices() [8]point3D {
	half := float64(c.Size) / 2
	var v [8]point3D
	for i, k := range cubeCorners {
		p := point3D{x: k[0] * half, y: k[1] * half, z: k[2] * half}
		p.rotate(c.RotationX, c.RotationY, c.RotationZ)
		p.x += float64(c.Center.X)
		p.y += float64(c.Center.Y)
		v[i] = p
	}
	return v
}

// Projected returns the eight vertices projected at CubeViewDistance.
// It fails with ErrDegenerateProjection if any vertex lies on or behind the
// eye plane, or projects further than MaxProjected from the origin.
func (c Cube) Projected() ([8]Point, error) {
	var out [8]Point
	for i, v := range c.vertices() {
		p, err := v.project(CubeViewDistance)
		if err != nil {
			return out, fmt.Errorf("cube vertex %d: %w", i, err)
		}
		out[i] = p
	}
	return out, nil
}

// Draw projects every vertex before touching the canvas, so a degenerate
// projection leaves c unchanged.
func (c Cube) Draw(cv Canvas) error {
	pts, err := c.Projected()
	if err != nil {
		Logger().Warn("cube draw aborted", "center", c.Center, "size", c.Size, "err", err)
		return err
	}
	Logger().Debug("cube projected", "vertices", pts)
	for _, e := range CubeEdges {
		if err := (Line{A: pts[e[0]], B: pts[e[1]]}).Draw(cv); err != nil {
			return err
		}
	}
	return nil
}
