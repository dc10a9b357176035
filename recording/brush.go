package recording

import (
	"fmt"
	"image/color"
	"math"
)

// RGBA represents a color with red, green, blue, and alpha components.
// Each component is in the range [0, 1].
type RGBA struct {
	R, G, B, A float64
}

// Common colors.
var (
	Black = RGBA{R: 0, G: 0, B: 0, A: 1}
	White = RGBA{R: 1, G: 1, B: 1, A: 1}
)

// Color converts RGBA to the standard color.Color interface.
func (c RGBA) Color() color.Color {
	return color.NRGBA{
		R: to8(c.R),
		G: to8(c.G),
		B: to8(c.B),
		A: to8(c.A),
	}
}

// Hex returns the color as "#rrggbb", ignoring alpha.
func (c RGBA) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x", to8(c.R), to8(c.G), to8(c.B))
}

func to8(v float64) uint8 {
	return uint8(math.Round(math.Max(0, math.Min(1, v)) * 255))
}

// Brush represents a fill/stroke paint for recording commands.
// This is a sealed interface; only types in this package implement it.
// A nil Brush means "none".
type Brush interface {
	brushMarker()
}

// SolidBrush is a solid color brush.
type SolidBrush struct {
	Color RGBA
}

func (SolidBrush) brushMarker() {}

// NewSolidBrush creates a solid color brush.
func NewSolidBrush(c RGBA) SolidBrush {
	return SolidBrush{Color: c}
}

// Style describes how a shape is painted. A nil Fill or Stroke paints
// nothing for that part of the shape.
type Style struct {
	Fill        Brush
	Stroke      Brush
	StrokeWidth float64
}

// Filled returns a fill-only style in the given color.
func Filled(c RGBA) Style {
	return Style{Fill: NewSolidBrush(c)}
}

// Stroked returns a stroke-only style in the given color and width.
func Stroked(c RGBA, width float64) Style {
	return Style{Stroke: NewSolidBrush(c), StrokeWidth: width}
}

// HasFill reports whether the style fills the shape interior.
func (s Style) HasFill() bool { return s.Fill != nil }

// HasStroke reports whether the style strokes the shape outline.
func (s Style) HasStroke() bool { return s.Stroke != nil && s.StrokeWidth > 0 }

// BrushColor returns the color of a solid brush.
// ok is false for a nil brush.
func BrushColor(b Brush) (c RGBA, ok bool) {
	if sb, isSolid := b.(SolidBrush); isSolid {
		return sb.Color, true
	}
	return RGBA{}, false
}
