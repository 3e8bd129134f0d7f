package shapes

import "math"

// Line is a segment between two points, traced with Bresenham's algorithm.
//
// The pixel set does not depend on which endpoint is A, but the scan always
// runs from the endpoint with the smaller driving coordinate.
type Line struct {
	A, B Point

	defaultColor
}

// NewLine creates a line from a to b.
func NewLine(a, b Point) Line {
	return Line{A: a, B: b}
}

// Draw writes one pixel per column (shallow lines) or per row (steep lines).
func (l Line) Draw(c Canvas) error {
	col := l.Color()
	traceLine(l.A, l.B, func(x, y int) {
		c.Display(x, y, col)
	})
	return nil
}

// Pixels returns the traced pixels in scan order.
func (l Line) Pixels() []Point {
	n := max(abs(l.B.X-l.A.X), abs(l.B.Y-l.A.Y)) + 1
	pts := make([]Point, 0, n)
	traceLine(l.A, l.B, func(x, y int) {
		pts = append(pts, Point{X: x, Y: y})
	})
	return pts
}

// traceLine calls plot for every pixel of the segment a-b.
func traceLine(a, b Point, plot func(x, y int)) {
	dx := abs(b.X - a.X)
	dy := abs(b.Y - a.Y)

	if dx == 0 {
		for y := min(a.Y, b.Y); y <= max(a.Y, b.Y); y++ {
			plot(a.X, y)
		}
		return
	}

	slope := float64(a.Y-b.Y) / float64(a.X-b.X)
	inc := 1
	if slope < 0 {
		inc = -1
	}

	if math.Abs(slope) <= 1 {
		// x drives; y steps by inc.
		k1 := 2 * dy
		k2 := k1 - 2*dx
		p := k1 - dx
		start, end := min(a.X, b.X), max(a.X, b.X)
		y := b.Y
		if start == a.X {
			y = a.Y
		}
		for x := start; x <= end; x++ {
			plot(x, y)
			if p < 0 {
				p += k1
			} else {
				y += inc
				p += k2
			}
		}
		return
	}

	// y drives; x steps by inc.
	k1 := 2 * dx
	k2 := k1 - 2*dy
	p := k1 - dy
	start, end := min(a.Y, b.Y), max(a.Y, b.Y)
	x := b.X
	if start == a.Y {
		x = a.X
	}
	for y := start; y <= end; y++ {
		plot(x, y)
		if p < 0 {
			p += k1
		} else {
			x += inc
			p += k2
		}
	}
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
