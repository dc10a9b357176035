// Package recording captures vector drawing primitives as commands that can
// be played back to different output backends.
//
// The vocabulary is deliberately small. It covers what a printable
// fabrication drawing needs and nothing more:
//
//   - Circle: center, radius, stroke/fill
//   - Path: move/line/arc/close sequence, stroke/fill
//   - Polygon: ordered vertex list, stroke/fill
//   - Text: position, literal string, font size and anchoring, fill
//   - Group: ordered children under a 2D transform
//
// All coordinates are in millimetres. Arcs are stored in SVG endpoint form
// (radius, large-arc flag, sweep flag, end point) so that vector backends
// can emit them verbatim, without re-approximating them as Béziers.
//
// # Architecture
//
// The system follows a Command Pattern with three main components:
//
//   - Recorder: Captures drawing operations as commands
//   - Recording: Stores commands and resources for playback
//   - Backend: Renders commands to a specific output format
//
// # Basic Usage
//
//	rec := recording.NewRecorder(100, 100)
//	rec.DrawCircle(50, 50, 8, recording.Stroked(recording.Black, 0.1))
//
//	p := recording.NewPath()
//	p.MoveTo(50, 37)
//	p.ArcTo(13, false, false, 63, 50)
//	p.Close()
//	rec.DrawPath(p, recording.Filled(recording.Black))
//
//	r := rec.FinishRecording()
//
// # Playback to Backends
//
// Backends are registered using the database/sql driver pattern. Import a
// backend package with a blank identifier to register it:
//
//	import _ "github.com/gogpu/codewheel/recording/backends/svg"
//
//	b, _ := recording.NewBackend("svg")
//	if err := r.Playback(b); err != nil {
//	    return err
//	}
//	b.(recording.FileBackend).SaveToFile("page.svg")
//
// # Thread Safety
//
// Recorder is NOT safe for concurrent use. Recording objects are immutable
// after FinishRecording and can be played back any number of times.
package recording
