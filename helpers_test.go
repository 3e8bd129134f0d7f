package shapes

// pixelWrite is one Display call seen by pixelLog.
type pixelWrite struct {
	X, Y  int
	Color RGBA
}

// pixelLog is an unbounded canvas that keeps every write in order.
type pixelLog struct {
	writes []pixelWrite
}

func (l *pixelLog) Display(x, y int, c RGBA) {
	l.writes = append(l.writes, pixelWrite{X: x, Y: y, Color: c})
}

// set returns the distinct coordinates written.
func (l *pixelLog) set() map[Point]bool {
	s := make(map[Point]bool, len(l.writes))
	for _, w := range l.writes {
		s[Pt(w.X, w.Y)] = true
	}
	return s
}

// drawnSet draws s on a fresh pixelLog and returns the written coordinates.
func drawnSet(t interface{ Fatalf(string, ...any) }, s Shape) map[Point]bool {
	var l pixelLog
	if err := s.Draw(&l); err != nil {
		t.Fatalf("%s.Draw() = %v", Kind(s), err)
	}
	return l.set()
}

// unionOfLines returns the pixel set of lines drawn independently.
func unionOfLines(lines ...Line) map[Point]bool {
	s := make(map[Point]bool)
	for _, l := range lines {
		for _, p := range l.Pixels() {
			s[p] = true
		}
	}
	return s
}

func sameSet(a, b map[Point]bool) bool {
	if len(a) != len(b) {
		return false
	}
	for p := range a {
		if !b[p] {
			return false
		}
	}
	return true
}

func pts(xy ...int) []Point {
	out := make([]Point, 0, len(xy)/2)
	for i := 0; i+1 < len(xy); i += 2 {
		out = append(out, Pt(xy[i], xy[i+1]))
	}
	return out
}
