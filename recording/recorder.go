package recording

import (
	"github.com/gogpu/shapes"
)

// Recorder captures pixel writes as commands.
// It is a shapes.Canvas with the given bounds: writes outside
// [0,width)×[0,height) are dropped, just as a Pixmap would drop them.
//
// Example:
//
//	rec := recording.NewRecorder(800, 600)
//	_ = rec.Draw(shapes.NewCircle(100, 100, 50))
//	r := rec.FinishRecording()
//
// The Recorder is not safe for concurrent use.
type Recorder struct {
	width, height int
	commands      []Command
	drawn         int
}

var _ shapes.Canvas = (*Recorder)(nil)

// NewRecorder creates a new Recorder for the given dimensions.
func NewRecorder(width, height int) *Recorder {
	return &Recorder{
		width:    width,
		height:   height,
		commands: make([]Command, 0, 256),
	}
}

// Width returns the width of the recording canvas.
func (r *Recorder) Width() int {
	return r.width
}

// Height returns the height of the recording canvas.
func (r *Recorder) Height() int {
	return r.height
}

// Display records a pixel write.
func (r *Recorder) Display(x, y int, c shapes.RGBA) {
	if x < 0 || x >= r.width || y < 0 || y >= r.height {
		return
	}
	r.commands = append(r.commands, PixelCommand{X: x, Y: y, Color: c})
}

// Draw records s between BeginShape and EndShape commands.
// If s fails to draw, everything it recorded is discarded.
func (r *Recorder) Draw(s shapes.Shape) error {
	mark := len(r.commands)
	r.commands = append(r.commands, BeginShapeCommand{Kind: shapes.Kind(s), Color: s.Color()})
	if err := s.Draw(r); err != nil {
		clear(r.commands[mark:])
		r.commands = r.commands[:mark]
		return err
	}
	r.commands = append(r.commands, EndShapeCommand{})
	r.drawn++
	return nil
}

// DrawAll records each shape in order and stops at the first error.
func (r *Recorder) DrawAll(list ...shapes.Shape) error {
	for _, s := range list {
		if err := r.Draw(s); err != nil {
			return err
		}
	}
	return nil
}

// FinishRecording returns an immutable Recording containing all recorded
// commands. The Recorder should not be used afterwards.
func (r *Recorder) FinishRecording() *Recording {
	shapes.Logger().Debug("recording finished",
		"shapes", r.drawn, "commands", len(r.commands))
	return &Recording{
		width:    r.width,
		height:   r.height,
		commands: r.commands,
	}
}

// Recording is an immutable container for recorded commands.
// It can be replayed to any Backend implementation.
type Recording struct {
	width, height int
	commands      []Command
}

// Width returns the width of the recording canvas.
func (r *Recording) Width() int {
	return r.width
}

// Height returns the height of the recording canvas.
func (r *Recording) Height() int {
	return r.height
}

// Commands returns the recorded commands.
func (r *Recording) Commands() []Command {
	return r.commands
}

// PixelCount returns the number of PixelCommands, counting repeats.
func (r *Recording) PixelCount() int {
	n := 0
	for _, c := range r.commands {
		if c.Type() == CmdPixel {
			n++
		}
	}
	return n
}

// Playback replays the recording to the given backend.
func (r *Recording) Playback(backend Backend) error {
	if err := backend.Begin(r.width, r.height); err != nil {
		return err
	}

	for _, cmd := range r.commands {
		switch c := cmd.(type) {
		case BeginShapeCommand:
			backend.BeginShape(c.Kind, c.Color)
		case EndShapeCommand:
			backend.EndShape()
		case PixelCommand:
			backend.SetPixel(c.X, c.Y, c.Color)
		}
	}

	return backend.End()
}
