package shapes

import "math"

// Circle is a circle outline drawn with the midpoint algorithm.
// Unlike the other shapes it carries its own color.
type Circle struct {
	Center Point
	Radius int
	Stroke RGBA // outline color
}

// NewCircle creates a circle centered at (x, y) drawn in DefaultColor.
func NewCircle(x, y, radius int) Circle {
	return Circle{Center: Pt(x, y), Radius: radius, Stroke: DefaultColor}
}

// Color returns the circle's stored color.
func (c Circle) Color() RGBA {
	return c.Stroke
}

// Area returns π·r².
func (c Circle) Area() float64 {
	r := float64(c.Radius)
	return math.Pi * r * r
}

// Diameter returns 2·r.
func (c Circle) Diameter() int {
	return 2 * c.Radius
}

// Intersects reports whether the centers are closer than the sum of the
// radii. Externally tangent circles do not intersect.
func (c Circle) Intersects(o Circle) bool {
	return c.Center.Distance(o.Center) < float64(c.Radius+o.Radius)
}

// Draw writes the eight octant reflections of every midpoint step.
//
// A radius of zero or less writes nothing: the loop condition x < y is
// false before the first step.
func (c Circle) Draw(cv Canvas) error {
	col := c.Color()
	cx, cy := c.Center.X, c.Center.Y

	x, y := 0, c.Radius
	d := 3 - 2*int64(c.Radius)
	for x < y {
		cv.Display(cx+y, cy+x, col)
		cv.Display(cx+x, cy+y, col)
		cv.Display(cx-x, cy+y, col)
		cv.Display(cx-y, cy+x, col)
		cv.Display(cx-y, cy-x, col)
		cv.Display(cx-x, cy-y, col)
		cv.Display(cx+x, cy-y, col)
		cv.Display(cx+y, cy-x, col)

		if d < 0 {
			d += 4*int64(x) + 6
		} else {
			d += 4*int64(x-y) + 10
			y--
		}
		x++
	}
	return nil
}
