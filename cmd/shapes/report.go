package main

import (
	"fmt"
	"io"

	"github.com/muesli/termenv"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/gogpu/shapes"
)

// report prints, for every intersecting pair of probe circles, the first
// one's area and the second one's diameter. A summary line counts the
// intersecting pairs among the drawn circles.
func report(w io.Writer, profile termenv.Profile, probes, drawn []shapes.Circle) {
	p := message.NewPrinter(language.English)
	head := profile.String("Circles intersect!").Bold().Foreground(profile.Color("#A8CC8C"))

	for i := range probes {
		for j := i + 1; j < len(probes); j++ {
			a, b := probes[i], probes[j]
			if !a.Intersects(b) {
				continue
			}
			fmt.Fprintln(w, head)
			p.Fprintf(w, "Circle 1 area: %.2f\n", a.Area())
			p.Fprintf(w, "Circle 2 diameter: %d\n", b.Diameter())
		}
	}

	summary := p.Sprintf("%d circles drawn, %d intersecting pairs", len(drawn), intersectingPairs(drawn))
	fmt.Fprintln(w, profile.String(summary).Faint())
}

func intersectingPairs(circles []shapes.Circle) int {
	n := 0
	for i := range circles {
		for j := i + 1; j < len(circles); j++ {
			if circles[i].Intersects(circles[j]) {
				n++
			}
		}
	}
	return n
}
