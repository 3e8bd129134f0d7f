package scene

// Default returns the demo scene: a 1000×1000 canvas with one of every
// shape, 49 random circles, and two hidden circles the CLI reports on.
func Default() *Scene {
	return &Scene{
		Canvas: Canvas{
			Width:  1000,
			Height: 1000,
			Output: "image.png",
		},
		Shapes: []Spec{
			{Kind: "line", Random: true},
			{Kind: "point", Random: true},
			{Kind: "square", Center: XY{150, 150}, Size: 100},
			{Kind: "rectangle", Points: []XY{{150, 300}, {50, 60}}},
			{Kind: "triangle", Points: []XY{{500, 500}, {250, 700}, {700, 800}}},
			{Kind: "circle", Random: true, Count: 49},
			{Kind: "circle", Hidden: true, Center: XY{400, 400}, Radius: 50},
			{Kind: "circle", Hidden: true, Center: XY{450, 450}, Radius: 60},
			{Kind: "pentagon", Center: XY{300, 200}, Radius: 80, Rotation: 0.2},
			{Kind: "pentagon", Random: true},
			{Kind: "cube", Center: XY{700, 500}, Size: 80},
			{Kind: "cube", Center: XY{700, 300}, Size: 100, RotationX: 0.3, RotationY: 0.5, RotationZ: 0.1},
			{Kind: "cube", Random: true},
		},
	}
}
