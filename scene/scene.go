// Package scene describes a picture as data: canvas settings plus an
// ordered list of shape specifications. Scenes load from YAML, TOML or
// JSON files and build into shapes.Shape values ready to draw.
//
// Example:
//
//	sc, err := scene.Load("demo.yaml")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	items, err := sc.Build(shapes.NewSource(sc.Canvas.Seed))
//	if err != nil {
//	    log.Fatal(err)
//	}
//	pm := shapes.NewPixmap(sc.Canvas.Width, sc.Canvas.Height)
//	_ = scene.Render(pm, items)
//
// A minimal YAML scene:
//
//	canvas:
//	  width: 400
//	  height: 300
//	  background: "#000000"
//	shapes:
//	  - kind: circle
//	    center: {x: 200, y: 150}
//	    radius: 80
//	    color: "#ff8800"
//	  - kind: cube
//	    random: true
//	    count: 3
package scene

import (
	"errors"

	"github.com/gogpu/shapes"
)

// ErrUnknownShape is returned by Build for an unrecognized shape kind.
var ErrUnknownShape = errors.New("scene: unknown shape kind")

// Scene is a decoded scene file.
type Scene struct {
	Canvas Canvas `json:"canvas" yaml:"canvas" toml:"canvas"`
	Shapes []Spec `json:"shapes" yaml:"shapes" toml:"shapes"`
}

// Canvas holds output settings. Zero values mean "not set" so that
// command-line flags can fill them in.
type Canvas struct {
	Width      int    `json:"width" yaml:"width" toml:"width"`
	Height     int    `json:"height" yaml:"height" toml:"height"`
	Background string `json:"background,omitempty" yaml:"background,omitempty" toml:"background,omitempty"`
	Output     string `json:"output,omitempty" yaml:"output,omitempty" toml:"output,omitempty"`
	Seed       uint64 `json:"seed,omitempty" yaml:"seed,omitempty" toml:"seed,omitempty"`
	Scale      int    `json:"scale,omitempty" yaml:"scale,omitempty" toml:"scale,omitempty"`
}

// XY is a point in scene files.
type XY struct {
	X int `json:"x" yaml:"x" toml:"x"`
	Y int `json:"y" yaml:"y" toml:"y"`
}

// Point converts to a shapes.Point.
func (p XY) Point() shapes.Point {
	return shapes.Pt(p.X, p.Y)
}

// Spec describes one shape, or Count random shapes of one kind.
//
// Which fields are read depends on Kind:
//
//	point      Center
//	line       Points[0..1]
//	square     Center (top-left corner), Size
//	rectangle  Points[0..1] (upper-left, lower-right)
//	triangle   Points[0..2]
//	circle     Center, Radius, Color
//	pentagon   Center, Radius, Rotation
//	cube       Center, Size, RotationX, RotationY, RotationZ
//
// With Random set, only Kind and Count are read; square, rectangle and
// triangle have no random form.
type Spec struct {
	Kind   string `json:"kind" yaml:"kind" toml:"kind"`
	Random bool   `json:"random,omitempty" yaml:"random,omitempty" toml:"random,omitempty"`
	Count  int    `json:"count,omitempty" yaml:"count,omitempty" toml:"count,omitempty"`

	// Hidden shapes are built but not drawn; the CLI still reports on them.
	Hidden bool `json:"hidden,omitempty" yaml:"hidden,omitempty" toml:"hidden,omitempty"`

	Center XY     `json:"center" yaml:"center" toml:"center"`
	Points []XY   `json:"points,omitempty" yaml:"points,omitempty" toml:"points,omitempty"`
	Size   int    `json:"size,omitempty" yaml:"size,omitempty" toml:"size,omitempty"`
	Radius int    `json:"radius,omitempty" yaml:"radius,omitempty" toml:"radius,omitempty"`
	Color  string `json:"color,omitempty" yaml:"color,omitempty" toml:"color,omitempty"`

	Rotation  float64 `json:"rotation,omitempty" yaml:"rotation,omitempty" toml:"rotation,omitempty"`
	RotationX float64 `json:"rotation_x,omitempty" yaml:"rotation_x,omitempty" toml:"rotation_x,omitempty"`
	RotationY float64 `json:"rotation_y,omitempty" yaml:"rotation_y,omitempty" toml:"rotation_y,omitempty"`
	RotationZ float64 `json:"rotation_z,omitempty" yaml:"rotation_z,omitempty" toml:"rotation_z,omitempty"`
}

// BackgroundColor parses Canvas.Background. An empty string is transparent.
func (c Canvas) BackgroundColor() (shapes.RGBA, error) {
	if c.Background == "" {
		return shapes.Transparent, nil
	}
	return shapes.ParseHex(c.Background)
}
