package recording

import (
	"errors"
	"image"
	"io"
)

// Errors reported by backends.
var (
	// ErrNotBegun is returned when output is requested from a backend that
	// never received Begin.
	ErrNotBegun = errors.New("recording: backend not begun")

	// ErrNotEnded is returned when output is requested before End.
	ErrNotEnded = errors.New("recording: backend not ended")
)

// Backend is the interface that all export backends must implement.
// Backends receive drawing primitives and translate them to their output
// format (SVG elements, raster pixels, ...).
//
// Backends are created via the registry using NewBackend(name) and
// registered via Register() in their init() functions.
//
// # Implementation Contract
//
// Each backend must:
//  1. Register in init() using recording.Register()
//  2. Handle all Backend methods
//  3. Keep its own group/transform stack
//  4. Be reusable: Begin discards any previous output
type Backend interface {
	// Begin initializes the backend for a canvas of the given size in
	// millimetres. It must be called before any drawing operations.
	Begin(width, height float64) error

	// End finalizes the output. After End, WriteTo/SaveToFile may be used.
	End() error

	// BeginGroup opens a group drawn under m, composed with the current
	// transform.
	BeginGroup(m Matrix)

	// EndGroup closes the innermost group.
	EndGroup()

	// DrawCircle draws a circle.
	DrawCircle(center Point, radius float64, style Style)

	// DrawPath draws a path.
	DrawPath(path *Path, style Style)

	// DrawPolygon draws a closed polygon.
	DrawPolygon(points []Point, style Style)

	// DrawText draws a literal string anchored at pos.
	DrawText(s string, pos Point, font Font, fill Brush)
}

// WriterBackend extends Backend with the ability to write output to an io.Writer.
type WriterBackend interface {
	Backend

	// WriteTo writes the rendered content to the given writer.
	// This should only be called after End().
	WriteTo(w io.Writer) (int64, error)
}

// FileBackend extends Backend with the ability to save output directly to a file.
type FileBackend interface {
	Backend

	// SaveToFile saves the rendered content to a file at the given path,
	// replacing any existing file. This should only be called after End().
	SaveToFile(path string) error

	// Extension returns the conventional file extension, including the dot.
	Extension() string
}

// ImageBackend extends Backend with access to rendered pixels.
type ImageBackend interface {
	Backend

	// Image returns the rendered image, or nil before End.
	Image() *image.RGBA
}
