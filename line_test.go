package shapes

import (
	"slices"
	"testing"
)

func TestLinePixels(t *testing.T) {
	tests := []struct {
		name string
		a, b Point
		want []Point
	}{
		{
			name: "vertical",
			a:    Pt(5, 2),
			b:    Pt(5, 7),
			want: pts(5, 2, 5, 3, 5, 4, 5, 5, 5, 6, 5, 7),
		},
		{
			name: "vertical reversed",
			a:    Pt(5, 7),
			b:    Pt(5, 2),
			want: pts(5, 2, 5, 3, 5, 4, 5, 5, 5, 6, 5, 7),
		},
		{
			name: "single pixel",
			a:    Pt(3, 3),
			b:    Pt(3, 3),
			want: pts(3, 3),
		},
		{
			name: "horizontal",
			a:    Pt(4, 1),
			b:    Pt(0, 1),
			want: pts(0, 1, 1, 1, 2, 1, 3, 1, 4, 1),
		},
		{
			name: "shallow",
			a:    Pt(0, 0),
			b:    Pt(5, 2),
			want: pts(0, 0, 1, 0, 2, 1, 3, 1, 4, 2, 5, 2),
		},
		{
			name: "negative diagonal",
			a:    Pt(0, 4),
			b:    Pt(4, 0),
			want: pts(0, 4, 1, 3, 2, 2, 3, 1, 4, 0),
		},
		{
			name: "steep",
			a:    Pt(0, 0),
			b:    Pt(2, 5),
			want: pts(0, 0, 0, 1, 1, 2, 1, 3, 2, 4, 2, 5),
		},
		{
			name: "steep reversed",
			a:    Pt(2, 5),
			b:    Pt(0, 0),
			want: pts(0, 0, 0, 1, 1, 2, 1, 3, 2, 4, 2, 5),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := NewLine(tt.a, tt.b).Pixels()
			if !slices.Equal(got, tt.want) {
				t.Errorf("Pixels() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestLineDrawMatchesPixels(t *testing.T) {
	l := NewLine(Pt(10, 3), Pt(-4, 9))
	var log pixelLog
	if err := l.Draw(&log); err != nil {
		t.Fatalf("Draw() = %v", err)
	}
	want := l.Pixels()
	if len(log.writes) != len(want) {
		t.Fatalf("Draw wrote %d pixels, Pixels() has %d", len(log.writes), len(want))
	}
	for i, w := range log.writes {
		if Pt(w.X, w.Y) != want[i] {
			t.Errorf("write %d = (%d,%d), want %v", i, w.X, w.Y, want[i])
		}
		if w.Color != White {
			t.Errorf("write %d color = %+v, want White", i, w.Color)
		}
	}
}

// TestLineConnected checks, over many seeded endpoint pairs, that both
// endpoints are covered, consecutive pixels are 8-neighbours and exactly one
// pixel is written per step of the driving axis.
func TestLineConnected(t *testing.T) {
	src := NewSource(42)
	for i := 0; i < 500; i++ {
		a := Pt(src.IntN(200)-100, src.IntN(200)-100)
		b := Pt(src.IntN(200)-100, src.IntN(200)-100)
		got := NewLine(a, b).Pixels()

		steps := max(abs(a.X-b.X), abs(a.Y-b.Y)) + 1
		if len(got) != steps {
			t.Fatalf("line %v-%v: %d pixels, want %d", a, b, len(got), steps)
		}
		if !slices.Contains(got, a) || !slices.Contains(got, b) {
			t.Fatalf("line %v-%v: endpoints missing from %v", a, b, got)
		}
		for j := 1; j < len(got); j++ {
			if abs(got[j].X-got[j-1].X) > 1 || abs(got[j].Y-got[j-1].Y) > 1 {
				t.Fatalf("line %v-%v: gap between %v and %v", a, b, got[j-1], got[j])
			}
		}
	}
}

func TestLineEndpointOrderIrrelevant(t *testing.T) {
	src := NewSource(7)
	for i := 0; i < 200; i++ {
		a := Pt(src.IntN(64), src.IntN(64))
		b := Pt(src.IntN(64), src.IntN(64))
		ab := unionOfLines(NewLine(a, b))
		ba := unionOfLines(NewLine(b, a))
		if !sameSet(ab, ba) {
			t.Fatalf("Line(%v,%v) and Line(%v,%v) differ", a, b, b, a)
		}
	}
}

func BenchmarkLineDraw(b *testing.B) {
	pm := NewPixmap(1000, 1000)
	l := NewLine(Pt(12, 980), Pt(990, 37))
	b.ReportAllocs()
	for b.Loop() {
		_ = l.Draw(pm)
	}
}
