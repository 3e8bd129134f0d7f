// Package anim turns cubes into spinning animations.
//
// A [CubeTween] eases a cube's three rotation angles towards target values;
// [Spin] samples tweens into frames, and [EncodeGIF] writes the frames as an
// animated GIF with one hue per frame.
package anim

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/gif"
	"io"
	"math"

	"github.com/lucasb-eyer/go-colorful"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"

	"github.com/gogpu/shapes"
)

// ErrTooFewFrames is returned when fewer than two frames are requested.
var ErrTooFewFrames = errors.New("anim: need at least 2 frames")

// CubeTween animates RotationX, RotationY and RotationZ of a cube.
// Call Update with elapsed seconds, or Set with an absolute time.
type CubeTween struct {
	tweens [3]*gween.Tween
	cube   *shapes.Cube
	Done   bool
}

// TweenRotation creates a CubeTween from the cube's current rotation to
// (toX, toY, toZ) over duration seconds. A nil fn means ease.Linear.
func TweenRotation(c *shapes.Cube, toX, toY, toZ float64, duration float32, fn ease.TweenFunc) *CubeTween {
	if fn == nil {
		fn = ease.Linear
	}
	return &CubeTween{
		tweens: [3]*gween.Tween{
			gween.New(float32(c.RotationX), float32(toX), duration, fn),
			gween.New(float32(c.RotationY), float32(toY), duration, fn),
			gween.New(float32(c.RotationZ), float32(toZ), duration, fn),
		},
		cube: c,
	}
}

// Update advances the tween by dt seconds and writes the rotations back.
func (t *CubeTween) Update(dt float32) {
	if t.Done {
		return
	}
	t.apply(func(tw *gween.Tween) (float32, bool) { return tw.Update(dt) })
}

// Set moves the tween to an absolute time and writes the rotations back.
func (t *CubeTween) Set(time float32) {
	t.apply(func(tw *gween.Tween) (float32, bool) { return tw.Set(time) })
}

func (t *CubeTween) apply(step func(*gween.Tween) (float32, bool)) {
	fields := [3]*float64{&t.cube.RotationX, &t.cube.RotationY, &t.cube.RotationZ}
	done := true
	for i, tw := range t.tweens {
		v, finished := step(tw)
		*fields[i] = float64(v)
		if !finished {
			done = false
		}
	}
	t.Done = done
}

// Turn is the rotation added to each axis over one Spin, in radians.
type Turn struct {
	X, Y, Z float64
}

// FullTurn spins once around Y and half a turn around X.
var FullTurn = Turn{X: math.Pi, Y: 2 * math.Pi}

// Spin samples n evenly spaced frames of every cube rotating by turn.
// Frame 0 holds the cubes as given; frame n-1 holds them fully turned.
func Spin(cubes []shapes.Cube, turn Turn, n int, fn ease.TweenFunc) ([][]shapes.Cube, error) {
	if n < 2 {
		return nil, ErrTooFewFrames
	}
	const duration = 1

	work := make([]shapes.Cube, len(cubes))
	copy(work, cubes)
	tweens := make([]*CubeTween, len(work))
	for i := range work {
		c := &work[i]
		tweens[i] = TweenRotation(c, c.RotationX+turn.X, c.RotationY+turn.Y, c.RotationZ+turn.Z, duration, fn)
	}

	frames := make([][]shapes.Cube, n)
	for f := range n {
		at := float32(duration) * float32(f) / float32(n-1)
		for _, tw := range tweens {
			tw.Set(at)
		}
		frames[f] = append([]shapes.Cube(nil), work...)
		if f == 0 {
			// Frame 0 keeps the exact float64 rotations.
			copy(frames[f], cubes)
		}
	}
	shapes.Logger().Debug("spin sampled", "cubes", len(cubes), "frames", n)
	return frames, nil
}

// frameCanvas paints every pixel with one palette index.
type frameCanvas struct {
	img   *image.Paletted
	index uint8
}

func (fc frameCanvas) Display(x, y int, _ shapes.RGBA) {
	if !(image.Point{X: x, Y: y}.In(fc.img.Rect)) {
		return
	}
	fc.img.SetColorIndex(x, y, fc.index)
}

// Palette returns the two-color palette of frame i out of n: a black
// background and a hue that walks the color wheel across the animation.
func Palette(i, n int) color.Palette {
	hue := 360 * float64(i) / float64(max(n, 1))
	return color.Palette{
		color.Black,
		colorful.Hsv(hue, 0.75, 1).Clamped(),
	}
}

// EncodeGIF draws each frame onto a width×height image and writes an
// endlessly looping GIF. delay is the per-frame delay in 1/100 s.
func EncodeGIF(w io.Writer, width, height int, frames [][]shapes.Cube, delay int) error {
	if len(frames) < 2 {
		return ErrTooFewFrames
	}
	if width <= 0 || height <= 0 {
		return fmt.Errorf("anim: invalid size %dx%d", width, height)
	}

	out := &gif.GIF{LoopCount: 0}
	rect := image.Rect(0, 0, width, height)
	for i, cubes := range frames {
		img := image.NewPaletted(rect, Palette(i, len(frames)))
		fc := frameCanvas{img: img, index: 1}
		for j, c := range cubes {
			if err := c.Draw(fc); err != nil {
				return fmt.Errorf("anim: frame %d cube %d: %w", i, j, err)
			}
		}
		out.Image = append(out.Image, img)
		out.Delay = append(out.Delay, delay)
	}
	return gif.EncodeAll(w, out)
}
