// Package keymap draws the key-label overlay of the circular keypad.
//
// Each dial is a large circle with its keys on a 270° arc of small circles,
// leaving the lower-right quadrant open for the finger stop. Keys are
// labelled in the order of the dial's label list.
//
// Unlike code wheels, key angles use the standard math convention: 0° is
// the +x axis and negative angles run counter-clockwise on screen.
package keymap

import (
	"math"

	"github.com/jbeda/geom"

	"github.com/gogpu/codewheel"
	"github.com/gogpu/codewheel/recording"
	"github.com/gogpu/codewheel/text"
)

// Sheet layout constants, in millimetres.
const (
	KeyDiameter = 13.0
	RowPitch    = 12.0
	Padding     = 10.0
	StrokeWidth = 1.0

	// MaxLabelWidth is the usable width inside a key circle.
	MaxLabelWidth = KeyDiameter - 1
)

// KeySpan is the arc keys are spread over, in radians.
const KeySpan = 1.5 * math.Pi

// Key is one placed key.
type Key struct {
	Dial   string
	Index  int
	Center recording.Point
	Label  string
}

// Keys places the keys of d. Key i sits at angle -(KeySpan/keys)*(i+0.5)
// on a ring of radius Diameter/2 - KeyDiameter/2, pulled in by
// (i mod rows)*RowPitch on staggered dials.
func Keys(d Dial) []Key {
	if d.Keys <= 0 {
		return nil
	}
	ring := d.Diameter/2 - KeyDiameter/2
	step := KeySpan / float64(d.Keys)

	keys := make([]Key, d.Keys)
	for i := range d.Keys {
		angle := -step * (float64(i) + 0.5)
		r := ring - float64(i%d.rows())*RowPitch
		keys[i] = Key{
			Dial:   d.ID,
			Index:  i,
			Center: recording.Pt(d.X+r*math.Cos(angle), d.Y+r*math.Sin(angle)),
		}
		if i < len(d.Labels) {
			keys[i].Label = d.Labels[i]
		}
	}
	return keys
}

// Extent returns the area covered by the dial faces.
func Extent(dials []Dial) geom.Rect {
	if len(dials) == 0 {
		return geom.Rect{}
	}
	first := geom.Coord{X: dials[0].X, Y: dials[0].Y}
	r := geom.Rect{Min: first, Max: first}
	for _, d := range dials {
		rad := d.Diameter / 2
		r.ExpandToContainCoord(geom.Coord{X: d.X - rad, Y: d.Y - rad})
		r.ExpandToContainCoord(geom.Coord{X: d.X + rad, Y: d.Y + rad})
	}
	return r
}

// SheetSize returns the sheet size: the far edge of the dial extent plus
// Padding. The sheet origin stays at (0, 0).
func SheetSize(dials []Dial) (width, height float64) {
	r := Extent(dials)
	return r.Max.X + Padding, r.Max.Y + Padding
}

// Generator draws keymap sheets. It is safe for concurrent use.
type Generator struct {
	shaper *text.Shaper
}

// New creates a Generator.
func New() (*Generator, error) {
	s, err := text.NewShaper()
	if err != nil {
		return nil, err
	}
	return &Generator{shaper: s}, nil
}

// FontSize picks the label size from its rune count: 4 up to four runes,
// 3 up to eight, 2 beyond.
func (g *Generator) FontSize(label string) float64 {
	switch n := text.Len(label); {
	case n > 8:
		return 2
	case n > 4:
		return 3
	}
	return 4
}

// LabelWidth returns the shaped width of label at its FontSize.
func (g *Generator) LabelWidth(label string) float64 {
	return g.shaper.Advance(text.Fold(label), g.FontSize(label))
}

// Overflows reports whether label is wider than MaxLabelWidth.
func (g *Generator) Overflows(label string) bool {
	return g.LabelWidth(label) > MaxLabelWidth
}

// Draw renders dials onto one sheet: per dial, its face circle, then each
// key circle followed by its label.
func (g *Generator) Draw(dials []Dial) *recording.Recording {
	w, h := SheetSize(dials)
	stroke := recording.Stroked(recording.Black, StrokeWidth)
	black := recording.NewSolidBrush(recording.Black)

	r := recording.NewRecorder(w, h)
	for _, d := range dials {
		r.DrawCircle(d.X, d.Y, d.Diameter/2, stroke)
		for _, k := range Keys(d) {
			r.DrawCircle(k.Center.X, k.Center.Y, KeyDiameter/2, stroke)
			if k.Label == "" {
				continue
			}
			if g.Overflows(k.Label) {
				codewheel.Logger().Warn("key label wider than key",
					"dial", d.ID, "key", k.Index, "label", k.Label,
					"width", g.LabelWidth(k.Label))
			}
			r.DrawText(text.Fold(k.Label), k.Center.X, k.Center.Y, recording.Font{
				Size:     g.FontSize(k.Label),
				Anchor:   recording.AnchorMiddle,
				Baseline: recording.BaselineCentral,
			}, black)
		}
	}
	return r.FinishRecording()
}
