// Package recording captures shape drawing as a list of pixel commands that
// can be played back to different backends.
//
// A [Recorder] is a [shapes.Canvas]. Shapes drawn through [Recorder.Draw]
// are bracketed by BeginShape/EndShape commands so backends can group
// their pixels (the SVG backend emits one <g> element per shape).
//
// # Example
//
//	rec := recording.NewRecorder(1000, 1000)
//	_ = rec.Draw(shapes.NewCircle(400, 400, 50))
//	_ = rec.Draw(shapes.NewCube(shapes.Pt(700, 500), 80))
//	r := rec.FinishRecording()
//
//	backend, _ := recording.NewBackend("svg")
//	_ = r.Playback(backend)
//
// # Custom Backends
//
// Implement the [Backend] interface and register it with [Register]:
//
//	func init() {
//	    recording.Register("myformat", func() recording.Backend {
//	        return NewMyBackend()
//	    })
//	}
//
// Built-in backends live under recording/backends and register themselves
// when imported:
//
//	import _ "github.com/gogpu/shapes/recording/backends/raster"
//	import _ "github.com/gogpu/shapes/recording/backends/svg"
//
// # Thread Safety
//
// Recorder is NOT safe for concurrent use. A Recording is immutable after
// FinishRecording and can be played back from multiple goroutines, each
// with its own backend.
package recording
