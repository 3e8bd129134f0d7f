package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/muesli/termenv"
	"github.com/tanema/gween/ease"

	"github.com/gogpu/shapes"
	"github.com/gogpu/shapes/anim"
	"github.com/gogpu/shapes/recording"
	"github.com/gogpu/shapes/scene"
)

type result struct {
	output        string
	gif           string
	width, height int
	drawn         int
}

// run loads, draws and saves the scene, then prints the circle report to w.
func run(cfg config, profile termenv.Profile, w io.Writer) (result, error) {
	sc := scene.Default()
	if cfg.scene != "" {
		var err error
		if sc, err = scene.Load(cfg.scene); err != nil {
			return result{}, err
		}
	}
	cfg.apply(sc)
	cv := sc.Canvas

	bg, err := cv.BackgroundColor()
	if err != nil {
		return result{}, err
	}

	items, err := sc.Build(shapes.NewSource(cv.Seed))
	if err != nil {
		return result{}, err
	}

	rec := recording.NewRecorder(cv.Width, cv.Height)
	if err := scene.Render(rec, items); err != nil {
		return result{}, err
	}
	r := rec.FinishRecording()

	name := cfg.format
	if name == "" {
		name = recording.BackendName(cv.Output)
	}
	backend, err := recording.NewBackend(name)
	if err != nil {
		return result{}, err
	}
	if cb, ok := backend.(recording.ConfigurableBackend); ok {
		cb.Configure(recording.Options{Background: bg, Scale: cv.Scale})
	}
	if err := r.Playback(backend); err != nil {
		return result{}, err
	}
	fb, ok := backend.(recording.FileBackend)
	if !ok {
		return result{}, fmt.Errorf("backend %q cannot save to a file", name)
	}
	if err := fb.SaveToFile(cv.Output); err != nil {
		return result{}, err
	}

	res := result{output: cv.Output, width: cv.Width, height: cv.Height}
	for _, c := range r.Commands() {
		if c.Type() == recording.CmdBeginShape {
			res.drawn++
		}
	}

	visible, hidden := scene.Circles(items)
	report(w, profile, hidden, visible)

	if cfg.spin > 0 {
		res.gif = gifPath(cv.Output)
		if err := writeSpin(res.gif, cv.Width, cv.Height, scene.Cubes(items), cfg.spin); err != nil {
			return res, err
		}
	}
	return res, nil
}

// gifPath swaps the extension of the image path for .gif.
func gifPath(output string) string {
	return strings.TrimSuffix(output, filepath.Ext(output)) + ".gif"
}

func writeSpin(path string, width, height int, cubes []shapes.Cube, frames int) error {
	seq, err := anim.Spin(cubes, anim.FullTurn, frames, ease.InOutQuad)
	if err != nil {
		return err
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := anim.EncodeGIF(f, width, height, seq, 4); err != nil {
		_ = f.Close()
		return err
	}
	return f.Close()
}
