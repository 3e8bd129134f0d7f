package shapes

import (
	"math"
	"math/rand/v2"
	"time"
)

// Source supplies the randomness for the Random constructors.
// *rand.Rand from math/rand/v2 satisfies it.
type Source interface {
	// IntN returns a uniform int in [0, n). n must be positive.
	IntN(n int) int
	// Float64 returns a uniform float64 in [0, 1).
	Float64() float64
}

// NewSource returns a PCG-backed source. A zero seed uses the current time.
func NewSource(seed uint64) *rand.Rand {
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

// Sampling ranges of the Random constructors, half-open [Min, Max).
const (
	CircleRadiusMin   = 9
	CircleRadiusMax   = 500
	PentagonRadiusMin = 20
	PentagonRadiusMax = 200
	CubeSizeMin       = 50
	CubeSizeMax       = 200
)

// RandomPoint returns a point with X in [0, limitX) and Y in [0, limitY).
func RandomPoint(src Source, limitX, limitY int) (Point, error) {
	if err := checkLimits("RandomPoint", limitX, limitY); err != nil {
		return Point{}, err
	}
	return randomPoint(src, limitX, limitY), nil
}

// RandomLine returns a line between two random points.
func RandomLine(src Source, limitX, limitY int) (Line, error) {
	if err := checkLimits("RandomLine", limitX, limitY); err != nil {
		return Line{}, err
	}
	a := randomPoint(src, limitX, limitY)
	b := randomPoint(src, limitX, limitY)
	return Line{A: a, B: b}, nil
}

// RandomCircle returns a circle with a random center, a radius in
// [CircleRadiusMin, CircleRadiusMax) and random RGB channels in [0, 255).
func RandomCircle(src Source, limitX, limitY int) (Circle, error) {
	if err := checkLimits("RandomCircle", limitX, limitY); err != nil {
		return Circle{}, err
	}
	center := randomPoint(src, limitX, limitY)
	radius := between(src, CircleRadiusMin, CircleRadiusMax)
	r := uint8(src.IntN(255))
	g := uint8(src.IntN(255))
	b := uint8(src.IntN(255))
	return Circle{Center: center, Radius: radius, Stroke: RGB8(r, g, b)}, nil
}

// RandomPentagon returns a pentagon with a random center, a radius in
// [PentagonRadiusMin, PentagonRadiusMax) and a rotation in [0, 2π).
func RandomPentagon(src Source, limitX, limitY int) (Pentagon, error) {
	if err := checkLimits("RandomPentagon", limitX, limitY); err != nil {
		return Pentagon{}, err
	}
	return Pentagon{
		Center:   randomPoint(src, limitX, limitY),
		Radius:   between(src, PentagonRadiusMin, PentagonRadiusMax),
		Rotation: randomAngle(src),
	}, nil
}

// RandomCube returns a cube with a random center, a size in
// [CubeSizeMin, CubeSizeMax) and three rotations in [0, 2π).
func RandomCube(src Source, limitX, limitY int) (Cube, error) {
	if err := checkLimits("RandomCube", limitX, limitY); err != nil {
		return Cube{}, err
	}
	return Cube{
		Center:    randomPoint(src, limitX, limitY),
		Size:      between(src, CubeSizeMin, CubeSizeMax),
		RotationX: randomAngle(src),
		RotationY: randomAngle(src),
		RotationZ: randomAngle(src),
	}, nil
}

// checkLimits rejects non-positive limits before any sampling happens.
func checkLimits(op string, limitX, limitY int) error {
	if limitX <= 0 {
		return &RangeError{Op: op, Name: "limitX", Limit: limitX}
	}
	if limitY <= 0 {
		return &RangeError{Op: op, Name: "limitY", Limit: limitY}
	}
	return nil
}

func randomPoint(src Source, limitX, limitY int) Point {
	x := src.IntN(limitX)
	y := src.IntN(limitY)
	return Point{X: x, Y: y}
}

// between returns a uniform int in [lo, hi). Callers pass constant lo < hi.
func between(src Source, lo, hi int) int {
	return lo + src.IntN(hi-lo)
}

func randomAngle(src Source) float64 {
	return src.Float64() * 2 * math.Pi
}
