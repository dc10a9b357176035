package codewheel

import (
	"log/slog"

	"github.com/gogpu/codewheel/recording"
)

// Label placement in local canvas coordinates, and stroke width of the
// base circles, in millimetres.
const (
	LabelX      = 40.0
	LabelY      = 8.0
	LabelSize   = 8.0
	CircleWidth = 0.1
)

// Sector is one angular interval of a wheel.
type Sector struct {
	// Index is the 0-based sector index.
	Index int

	// Position is the 1-based position number. Sector 0 is position 1,
	// like every other sector it is painted with a real code.
	Position int

	// Code is Gray(Position).
	Code uint

	// Start and End are the boundary angles in degrees, as given.
	Start, End float64
}

// Wedge is one painted ring segment.
type Wedge struct {
	Sector       int
	Ring         int
	Outer, Inner float64
	Start, End   float64
}

// Sectors derives the sectors of spec, one per adjacent boundary pair.
func Sectors(spec EncoderSpec) []Sector {
	n := spec.SectorCount()
	out := make([]Sector, n)
	for i := range n {
		pos := i + 1
		out[i] = Sector{
			Index:    i,
			Position: pos,
			Code:     Gray(uint(pos)),
			Start:    spec.Boundaries[i],
			End:      spec.Boundaries[i+1],
		}
	}
	return out
}

// Wedges derives the wedge fills of spec in painting order: by sector, then
// by ring from the hub outward. A sector gets one wedge per set bit of its
// code below BitWidth; higher bits have no ring and are dropped.
func Wedges(spec EncoderSpec) []Wedge {
	var out []Wedge
	for _, s := range Sectors(spec) {
		out = appendWedges(out, spec.BitWidth, s)
	}
	return out
}

func appendWedges(dst []Wedge, bitWidth int, s Sector) []Wedge {
	for j := range max(bitWidth, 0) {
		if !RingBit(s.Code, j) {
			continue
		}
		dst = append(dst, Wedge{
			Sector: s.Index,
			Ring:   j,
			Outer:  RingOuter(j),
			Inner:  RingInner(j),
			Start:  s.Start,
			End:    s.End,
		})
	}
	return dst
}

// PaintWheel draws one wheel on a CanvasSize x CanvasSize local canvas.
//
// The recording holds, in order: the hub circle, the outer circle, the
// indicator triangle, then for each sector its label followed by its wedges.
func PaintWheel(spec EncoderSpec) *recording.Recording {
	return paintWheel(spec, Logger())
}

func paintWheel(spec EncoderSpec, log *slog.Logger) *recording.Recording {
	c := Center()
	outer := OuterRadius(spec.BitWidth)
	black := recording.NewSolidBrush(recording.Black)

	r := recording.NewRecorder(CanvasSize, CanvasSize)
	r.DrawCircle(c.X, c.Y, HubRadius, recording.Stroked(recording.Black, CircleWidth))
	r.DrawCircle(c.X, c.Y, outer, recording.Stroked(recording.Black, CircleWidth))
	r.DrawPolygon(IndicatorTriangle(outer, spec.IndicatorAngle), recording.Filled(recording.Black))

	var wedges []Wedge
	for _, s := range Sectors(spec) {
		r.DrawText(spec.Name, LabelX, LabelY, recording.Font{Size: LabelSize}, black)

		start := len(wedges)
		wedges = appendWedges(wedges, spec.BitWidth, s)
		for _, w := range wedges[start:] {
			r.DrawPath(WedgePath(w.Outer, w.Inner, w.Start, w.End), recording.Filled(recording.Black))
		}
	}

	log.Debug("painted wheel",
		"name", spec.Name,
		"sectors", spec.SectorCount(),
		"wedges", len(wedges))
	return r.FinishRecording()
}
