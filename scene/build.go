package scene

import (
	"errors"
	"fmt"

	"github.com/gogpu/shapes"
)

// Item is a built shape.
type Item struct {
	Shape  shapes.Shape
	Hidden bool
}

// Build turns every Spec into shapes, in order. Random specs draw from src
// using the canvas size as limits and expand to Count shapes (at least one).
func (sc *Scene) Build(src shapes.Source) ([]Item, error) {
	items := make([]Item, 0, len(sc.Shapes))
	for i, spec := range sc.Shapes {
		n := 1
		if spec.Random && spec.Count > 1 {
			n = spec.Count
		}
		for range n {
			s, err := sc.build(spec, src)
			if err != nil {
				return nil, fmt.Errorf("scene: shape %d (%s): %w", i, spec.Kind, err)
			}
			items = append(items, Item{Shape: s, Hidden: spec.Hidden})
		}
	}
	shapes.Logger().Debug("scene built", "specs", len(sc.Shapes), "shapes", len(items))
	return items, nil
}

func (sc *Scene) build(spec Spec, src shapes.Source) (shapes.Shape, error) {
	if spec.Color != "" && spec.Kind != "circle" {
		return nil, errors.New("color is only supported for circles")
	}
	if spec.Random {
		return sc.random(spec.Kind, src)
	}

	switch spec.Kind {
	case "point":
		return spec.Center.Point(), nil
	case "line":
		if err := wantPoints(spec, 2); err != nil {
			return nil, err
		}
		return shapes.NewLine(spec.Points[0].Point(), spec.Points[1].Point()), nil
	case "square":
		return shapes.Square{TopLeft: spec.Center.Point(), Side: spec.Size}, nil
	case "rectangle":
		if err := wantPoints(spec, 2); err != nil {
			return nil, err
		}
		return shapes.Rectangle{UpperLeft: spec.Points[0].Point(), LowerRight: spec.Points[1].Point()}, nil
	case "triangle":
		if err := wantPoints(spec, 3); err != nil {
			return nil, err
		}
		return shapes.NewTriangle(spec.Points[0].Point(), spec.Points[1].Point(), spec.Points[2].Point()), nil
	case "circle":
		c := shapes.NewCircle(spec.Center.X, spec.Center.Y, spec.Radius)
		if spec.Color != "" {
			col, err := shapes.ParseHex(spec.Color)
			if err != nil {
				return nil, err
			}
			c.Stroke = col
		}
		return c, nil
	case "pentagon":
		return shapes.Pentagon{Center: spec.Center.Point(), Radius: spec.Radius, Rotation: spec.Rotation}, nil
	case "cube":
		c := shapes.NewCube(spec.Center.Point(), spec.Size)
		c.RotationX, c.RotationY, c.RotationZ = spec.RotationX, spec.RotationY, spec.RotationZ
		return c, nil
	}
	return nil, fmt.Errorf("%w %q", ErrUnknownShape, spec.Kind)
}

func (sc *Scene) random(kind string, src shapes.Source) (shapes.Shape, error) {
	w, h := sc.Canvas.Width, sc.Canvas.Height
	switch kind {
	case "point":
		return shapes.RandomPoint(src, w, h)
	case "line":
		return shapes.RandomLine(src, w, h)
	case "circle":
		return shapes.RandomCircle(src, w, h)
	case "pentagon":
		return shapes.RandomPentagon(src, w, h)
	case "cube":
		return shapes.RandomCube(src, w, h)
	case "square", "rectangle", "triangle":
		return nil, fmt.Errorf("%s has no random form", kind)
	}
	return nil, fmt.Errorf("%w %q", ErrUnknownShape, kind)
}

func wantPoints(spec Spec, n int) error {
	if len(spec.Points) != n {
		return fmt.Errorf("want %d points, got %d", n, len(spec.Points))
	}
	return nil
}

// shapeDrawer is implemented by canvases that track shape boundaries,
// such as recording.Recorder.
type shapeDrawer interface {
	Draw(s shapes.Shape) error
}

// Render draws the visible items onto c in order and stops at the first
// error. If c has a Draw(shapes.Shape) method it is used instead of
// calling each shape's Draw directly.
func Render(c shapes.Canvas, items []Item) error {
	sd, grouped := c.(shapeDrawer)
	for i, it := range items {
		if it.Hidden {
			continue
		}
		var err error
		if grouped {
			err = sd.Draw(it.Shape)
		} else {
			err = it.Shape.Draw(c)
		}
		if err != nil {
			return fmt.Errorf("scene: item %d (%s): %w", i, shapes.Kind(it.Shape), err)
		}
	}
	return nil
}

// Circles splits the circles among items into visible and hidden ones.
func Circles(items []Item) (visible, hidden []shapes.Circle) {
	for _, it := range items {
		c, ok := it.Shape.(shapes.Circle)
		switch {
		case !ok:
		case it.Hidden:
			hidden = append(hidden, c)
		default:
			visible = append(visible, c)
		}
	}
	return visible, hidden
}

// Cubes returns the visible cubes among items.
func Cubes(items []Item) []shapes.Cube {
	var out []shapes.Cube
	for _, it := range items {
		if c, ok := it.Shape.(shapes.Cube); ok && !it.Hidden {
			out = append(out, c)
		}
	}
	return out
}
