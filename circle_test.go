package shapes

import (
	"math"
	"testing"
)

func TestCircleZeroRadiusIsInvisible(t *testing.T) {
	for _, r := range []int{0, -1, -25} {
		var log pixelLog
		if err := NewCircle(0, 0, r).Draw(&log); err != nil {
			t.Fatalf("Draw() = %v", err)
		}
		if len(log.writes) != 0 {
			t.Errorf("radius %d wrote %d pixels, want 0", r, len(log.writes))
		}
	}
}

func TestCircleRadiusOne(t *testing.T) {
	got := drawnSet(t, NewCircle(0, 0, 1))
	want := map[Point]bool{Pt(1, 0): true, Pt(0, 1): true, Pt(-1, 0): true, Pt(0, -1): true}
	if !sameSet(got, want) {
		t.Errorf("radius 1 pixels = %v, want %v", got, want)
	}
}

func TestCircleOnAxisPoints(t *testing.T) {
	got := drawnSet(t, NewCircle(0, 0, 5))
	for _, p := range pts(5, 0, 0, 5, -5, 0, 0, -5) {
		if !got[p] {
			t.Errorf("radius 5 circle missing %v", p)
		}
	}
}

func TestCircleSymmetryAndDistance(t *testing.T) {
	c := NewCircle(40, -7, 37)
	got := drawnSet(t, c)
	for p := range got {
		d := p.Sub(c.Center)
		for _, m := range pts(d.X, -d.Y, -d.X, d.Y, -d.X, -d.Y, d.Y, d.X) {
			if !got[c.Center.Add(m)] {
				t.Fatalf("reflection %v of %v missing", c.Center.Add(m), p)
			}
		}
		if dev := math.Abs(p.Distance(c.Center) - float64(c.Radius)); dev > 1 {
			t.Errorf("pixel %v is %.2f away from the radius", p, dev)
		}
	}
}

func TestCircleUsesStoredColor(t *testing.T) {
	c := Circle{Center: Pt(10, 10), Radius: 4, Stroke: Red}
	var log pixelLog
	if err := c.Draw(&log); err != nil {
		t.Fatalf("Draw() = %v", err)
	}
	if len(log.writes) == 0 {
		t.Fatal("no pixels written")
	}
	for _, w := range log.writes {
		if w.Color != Red {
			t.Fatalf("pixel (%d,%d) color = %+v, want Red", w.X, w.Y, w.Color)
		}
	}
	if NewCircle(0, 0, 1).Color() != White {
		t.Error("NewCircle color should default to White")
	}
}

func TestCircleMetrics(t *testing.T) {
	c := NewCircle(0, 0, 50)
	if got, want := c.Area(), math.Pi*2500; math.Abs(got-want) > 1e-9 {
		t.Errorf("Area() = %v, want %v", got, want)
	}
	if got := c.Diameter(); got != 100 {
		t.Errorf("Diameter() = %d, want 100", got)
	}
	if got := NewCircle(0, 0, 0).Area(); got != 0 {
		t.Errorf("zero radius Area() = %v, want 0", got)
	}
}

func TestCircleIntersects(t *testing.T) {
	tests := []struct {
		name string
		a, b Circle
		want bool
	}{
		{"tangent", NewCircle(0, 0, 5), NewCircle(10, 0, 5), false},
		{"overlapping", NewCircle(0, 0, 5), NewCircle(10, 0, 6), true},
		{"apart", NewCircle(0, 0, 5), NewCircle(100, 100, 5), false},
		{"concentric", NewCircle(3, 3, 1), NewCircle(3, 3, 9), true},
		{"diagonal tangent", NewCircle(0, 0, 2), NewCircle(3, 4, 3), false},
		{"demo pair", NewCircle(400, 400, 50), NewCircle(450, 450, 60), true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.a.Intersects(tt.b); got != tt.want {
				t.Errorf("Intersects() = %v, want %v", got, tt.want)
			}
			if got := tt.b.Intersects(tt.a); got != tt.want {
				t.Errorf("reverse Intersects() = %v, want %v", got, tt.want)
			}
		})
	}
}

func BenchmarkCircleDraw(b *testing.B) {
	pm := NewPixmap(1000, 1000)
	c := NewCircle(500, 500, 400)
	b.ReportAllocs()
	for b.Loop() {
		_ = c.Draw(pm)
	}
}
