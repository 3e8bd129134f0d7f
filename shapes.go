package shapes

// Canvas is a drawing surface that accepts single pixel writes.
//
// Implementations write the pixel when 0 <= x < width and 0 <= y < height
// and silently ignore anything else. Shapes rely on this and never clip.
type Canvas interface {
	Display(x, y int, c RGBA)
}

// Colorer reports the color a shape draws with.
type Colorer interface {
	Color() RGBA
}

// Shape is the closed set of drawable primitives in this package:
// Point, Line, Square, Rectangle, Triangle, Circle, Pentagon and Cube.
//
// Draw writes the shape's outline to c. A non-nil error means nothing was
// written.
type Shape interface {
	Colorer
	Draw(c Canvas) error

	shape()
}

// defaultColor supplies DefaultColor to every shape that embeds it.
type defaultColor struct{}

// Color returns DefaultColor.
func (defaultColor) Color() RGBA { return DefaultColor }

func (Point) shape()     {}
func (Line) shape()      {}
func (Square) shape()    {}
func (Rectangle) shape() {}
func (Triangle) shape()  {}
func (Circle) shape()    {}
func (Pentagon) shape()  {}
func (Cube) shape()      {}

// Compile-time checks.
var (
	_ Shape = Point{}
	_ Shape = Line{}
	_ Shape = Square{}
	_ Shape = Rectangle{}
	_ Shape = Triangle{}
	_ Shape = Circle{}
	_ Shape = Pentagon{}
	_ Shape = Cube{}
)

// Kind returns the lower-case variant name of s ("point", "line", ...).
func Kind(s Shape) string {
	switch s.(type) {
	case Point:
		return "point"
	case Line:
		return "line"
	case Square:
		return "square"
	case Rectangle:
		return "rectangle"
	case Triangle:
		return "triangle"
	case Circle:
		return "circle"
	case Pentagon:
		return "pentagon"
	case Cube:
		return "cube"
	default:
		return "unknown"
	}
}

// DrawAll draws shapes in order and stops at the first error.
func DrawAll(c Canvas, shapes ...Shape) error {
	for _, s := range shapes {
		if err := s.Draw(c); err != nil {
			return err
		}
	}
	return nil
}
