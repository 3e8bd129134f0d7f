package shapes

import (
	"fmt"
	"math"
)

// point3D is a vertex in the cube pipeline. It is rotated in place and
// discarded after projection.
type point3D struct {
	x, y, z float64
}

// rotateX rotates the point around the X axis (y/z plane).
func (p *point3D) rotateX(angle float64) {
	sin, cos := math.Sincos(angle)
	p.y, p.z = p.y*cos-p.z*sin, p.y*sin+p.z*cos
}

// rotateY rotates the point around the Y axis (x/z plane).
func (p *point3D) rotateY(angle float64) {
	sin, cos := math.Sincos(angle)
	p.x, p.z = p.x*cos+p.z*sin, -p.x*sin+p.z*cos
}

// rotateZ rotates the point around the Z axis (x/y plane).
func (p *point3D) rotateZ(angle float64) {
	sin, cos := math.Sincos(angle)
	p.x, p.y = p.x*cos-p.y*sin, p.x*sin+p.y*cos
}

// rotate applies X, then Y, then Z rotation. Order matters.
func (p *point3D) rotate(ax, ay, az float64) {
	p.rotateX(ax)
	p.rotateY(ay)
	p.rotateZ(az)
}

// project maps p onto the z=0 plane seen from viewDistance in front of it.
// Coordinates are truncated toward zero. Points on or behind the eye plane,
// and points whose projection exceeds MaxProjected, are rejected.
func (p point3D) project(viewDistance float64) (Point, error) {
	denom := viewDistance + p.z
	if denom <= 0 {
		return Point{}, fmt.Errorf("%w: z=%g at view distance %g", ErrDegenerateProjection, p.z, viewDistance)
	}
	scale := viewDistance / denom
	x, y := p.x*scale, p.y*scale
	if math.Abs(x) > MaxProjected || math.Abs(y) > MaxProjected {
		return Point{}, fmt.Errorf("%w: z=%g projects to (%g, %g)", ErrDegenerateProjection, p.z, x, y)
	}
	return Point{X: int(x), Y: int(y)}, nil
}
