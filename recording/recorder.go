package recording

import "slices"

// Recorder captures drawing operations as commands.
// Use FinishRecording to obtain an immutable Recording that can be
// replayed to different backends.
//
// Example:
//
//	rec := recording.NewRecorder(100, 100)
//	rec.DrawCircle(50, 50, 8, recording.Stroked(recording.Black, 0.1))
//	r := rec.FinishRecording()
//
// The Recorder is not safe for concurrent use.
type Recorder struct {
	width, height float64
	commands      []Command
	resources     *ResourcePool

	// Number of groups opened and not yet closed.
	depth int
}

// NewRecorder creates a new Recorder for a canvas of the given size in
// millimetres.
func NewRecorder(width, height float64) *Recorder {
	return &Recorder{
		width:     width,
		height:    height,
		commands:  make([]Command, 0, 64),
		resources: NewResourcePool(),
	}
}

// Width returns the canvas width.
func (r *Recorder) Width() float64 {
	return r.width
}

// Height returns the canvas height.
func (r *Recorder) Height() float64 {
	return r.height
}

// FinishRecording closes any open groups and returns the recording.
// The Recorder must not be used afterwards.
func (r *Recorder) FinishRecording() *Recording {
	for r.depth > 0 {
		r.EndGroup()
	}
	return &Recording{
		width:     r.width,
		height:    r.height,
		commands:  r.commands,
		resources: r.resources,
	}
}

// --------------------------------------------------------------------------
// Groups
// --------------------------------------------------------------------------

// BeginGroup opens a group drawn under m.
func (r *Recorder) BeginGroup(m Matrix) {
	r.commands = append(r.commands, BeginGroupCommand{Transform: m})
	r.depth++
}

// EndGroup closes the innermost open group.
// If no group is open, this is a no-op.
func (r *Recorder) EndGroup() {
	if r.depth == 0 {
		return
	}
	r.commands = append(r.commands, EndGroupCommand{})
	r.depth--
}

// DrawRecording appends every command of rec inside a group drawn under m.
// The canvas size of rec is ignored; only its commands are copied.
func (r *Recorder) DrawRecording(rec *Recording, m Matrix) {
	r.BeginGroup(m)
	for _, cmd := range rec.commands {
		switch c := cmd.(type) {
		case DrawPathCommand:
			c.Path = r.resources.AddPath(rec.resources.GetPath(c.Path))
			r.commands = append(r.commands, c)
		case DrawPolygonCommand:
			c.Points = slices.Clone(c.Points)
			r.commands = append(r.commands, c)
		default:
			r.commands = append(r.commands, cmd)
		}
	}
	r.EndGroup()
}

// --------------------------------------------------------------------------
// Primitives
// --------------------------------------------------------------------------

// DrawCircle records a circle centered at (cx, cy).
func (r *Recorder) DrawCircle(cx, cy, radius float64, style Style) {
	r.commands = append(r.commands, DrawCircleCommand{
		Center: Pt(cx, cy),
		Radius: radius,
		Style:  style,
	})
}

// DrawPath records a path. The path is copied; the caller may reuse it.
func (r *Recorder) DrawPath(p *Path, style Style) {
	if p == nil || p.Len() == 0 {
		return
	}
	r.commands = append(r.commands, DrawPathCommand{
		Path:  r.resources.AddPath(p),
		Style: style,
	})
}

// DrawPolygon records a closed polygon. Fewer than two points draw nothing.
func (r *Recorder) DrawPolygon(points []Point, style Style) {
	if len(points) < 2 {
		return
	}
	r.commands = append(r.commands, DrawPolygonCommand{
		Points: slices.Clone(points),
		Style:  style,
	})
}

// DrawText records a text string anchored at (x, y).
func (r *Recorder) DrawText(s string, x, y float64, font Font, fill Brush) {
	r.commands = append(r.commands, DrawTextCommand{
		Text:     s,
		Position: Pt(x, y),
		Font:     font,
		Fill:     fill,
	})
}

// --------------------------------------------------------------------------
// Recording
// --------------------------------------------------------------------------

// Recording is an immutable sequence of drawing commands.
// It is safe to play back concurrently to distinct backends.
type Recording struct {
	width, height float64
	commands      []Command
	resources     *ResourcePool
}

// Width returns the canvas width in millimetres.
func (r *Recording) Width() float64 {
	return r.width
}

// Height returns the canvas height in millimetres.
func (r *Recording) Height() float64 {
	return r.height
}

// Commands returns the recorded commands.
// The returned slice must not be modified.
func (r *Recording) Commands() []Command {
	return r.commands
}

// Resources returns the resource pool of the recording.
func (r *Recording) Resources() *ResourcePool {
	return r.resources
}

// Count returns the number of commands of type t.
func (r *Recording) Count(t CommandType) int {
	n := 0
	for _, cmd := range r.commands {
		if cmd.Type() == t {
			n++
		}
	}
	return n
}

// Playback replays every command to backend, bracketed by Begin and End.
func (r *Recording) Playback(backend Backend) error {
	if err := backend.Begin(r.width, r.height); err != nil {
		return err
	}

	for _, cmd := range r.commands {
		switch c := cmd.(type) {
		case BeginGroupCommand:
			backend.BeginGroup(c.Transform)
		case EndGroupCommand:
			backend.EndGroup()
		case DrawCircleCommand:
			backend.DrawCircle(c.Center, c.Radius, c.Style)
		case DrawPathCommand:
			if path := r.resources.GetPath(c.Path); path != nil {
				backend.DrawPath(path, c.Style)
			}
		case DrawPolygonCommand:
			backend.DrawPolygon(c.Points, c.Style)
		case DrawTextCommand:
			backend.DrawText(c.Text, c.Position, c.Font, c.Fill)
		}
	}

	return backend.End()
}
