package shapes

import "math"

// Square is an axis-aligned square given by its top-left corner.
// A negative side mirrors the square up and to the left.
type Square struct {
	TopLeft Point
	Side    int

	defaultColor
}

// Rectangle returns the rectangle the square draws as.
func (s Square) Rectangle() Rectangle {
	return Rectangle{
		UpperLeft:  s.TopLeft,
		LowerRight: s.TopLeft.Add(Point{X: s.Side, Y: s.Side}),
	}
}

// Draw draws the square's four edges.
func (s Square) Draw(c Canvas) error {
	return s.Rectangle().Draw(c)
}

// Rectangle is an axis-aligned rectangle given by two opposite corners.
// The corners are not normalized; swapped corners still draw a closed
// quadrilateral.
type Rectangle struct {
	UpperLeft  Point
	LowerRight Point

	defaultColor
}

// Corners returns upper-left, upper-right, lower-right and lower-left,
// in drawing order.
func (r Rectangle) Corners() [4]Point {
	return [4]Point{
		r.UpperLeft,
		{X: r.LowerRight.X, Y: r.UpperLeft.Y},
		r.LowerRight,
		{X: r.UpperLeft.X, Y: r.LowerRight.Y},
	}
}

// Draw draws UL→UR→LR→LL→UL.
func (r Rectangle) Draw(c Canvas) error {
	cs := r.Corners()
	return drawClosed(c, cs[:])
}

// Triangle is three vertices joined by lines. Collinear vertices are
// accepted and draw overlapping segments.
type Triangle struct {
	Vertices [3]Point

	defaultColor
}

// NewTriangle creates a triangle from three vertices.
func NewTriangle(a, b, c Point) Triangle {
	return Triangle{Vertices: [3]Point{a, b, c}}
}

// Draw draws (v0,v1), (v1,v2), (v2,v0).
func (t Triangle) Draw(c Canvas) error {
	return drawClosed(c, t.Vertices[:])
}

// Pentagon is a regular pentagon inscribed in a circle.
type Pentagon struct {
	Center   Point
	Radius   int
	Rotation float64 // radians; vertex 0 sits at this angle

	defaultColor
}

// Vertices returns the five corners at Rotation + i·2π/5.
// Offsets are truncated toward zero.
func (p Pentagon) Vertices() [5]Point {
	var v [5]Point
	r := float64(p.Radius)
	for i := range v {
		angle := p.Rotation + float64(i)*2*math.Pi/5
		sin, cos := math.Sincos(angle)
		v[i] = Point{
			X: p.Center.X + int(r*cos),
			Y: p.Center.Y + int(r*sin),
		}
	}
	return v
}

// Draw draws edges (i, i+1 mod 5).
func (p Pentagon) Draw(c Canvas) error {
	v := p.Vertices()
	return drawClosed(c, v[:])
}

// drawClosed draws lines between consecutive vertices and back to the first,
// all in DefaultColor.
func drawClosed(c Canvas, vertices []Point) error {
	for i, v := range vertices {
		next := vertices[(i+1)%len(vertices)]
		if err := (Line{A: v, B: next}).Draw(c); err != nil {
			return err
		}
	}
	return nil
}
