package codewheel

import (
	"math/bits"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gogpu/codewheel/recording"
)

func quarterSpec() EncoderSpec {
	return EncoderSpec{
		Page:           "test",
		Name:           "q",
		BitWidth:       2,
		Boundaries:     []float64{0, 90, 180, 270, 360},
		IndicatorAngle: 45,
	}
}

func TestSectors(t *testing.T) {
	got := Sectors(quarterSpec())
	want := []Sector{
		{Index: 0, Position: 1, Code: 1, Start: 0, End: 90},
		{Index: 1, Position: 2, Code: 3, Start: 90, End: 180},
		{Index: 2, Position: 3, Code: 2, Start: 180, End: 270},
		{Index: 3, Position: 4, Code: 6, Start: 270, End: 360},
	}
	diff(t, want, got)
}

func TestSectorsDegenerate(t *testing.T) {
	assert.Empty(t, Sectors(EncoderSpec{}))
	assert.Empty(t, Sectors(EncoderSpec{Boundaries: []float64{10}}))
}

// Sector 3 has Gray code 0b110; bit 2 has no ring at bit width 2 and is
// dropped without error.
func TestWedgesTruncateToBitWidth(t *testing.T) {
	got := Wedges(quarterSpec())
	want := []Wedge{
		{Sector: 0, Ring: 0, Outer: 13, Inner: 8, Start: 0, End: 90},
		{Sector: 1, Ring: 0, Outer: 13, Inner: 8, Start: 90, End: 180},
		{Sector: 1, Ring: 1, Outer: 18, Inner: 13, Start: 90, End: 180},
		{Sector: 2, Ring: 1, Outer: 18, Inner: 13, Start: 180, End: 270},
		{Sector: 3, Ring: 1, Outer: 18, Inner: 13, Start: 270, End: 360},
	}
	diff(t, want, got)
}

func TestWedgesPerSectorMatchPopcount(t *testing.T) {
	for _, spec := range DefaultEncoders() {
		perSector := make(map[int]int)
		for _, w := range Wedges(spec) {
			perSector[w.Sector]++
			require.Less(t, w.Ring, spec.BitWidth, spec.Name)
		}
		mask := uint(1)<<spec.BitWidth - 1
		for i := range spec.SectorCount() {
			want := bits.OnesCount(Gray(uint(i+1)) & mask)
			assert.Equal(t, want, perSector[i], "%s sector %d", spec.Name, i)
		}
	}
}

func TestSectorZeroAlwaysPainted(t *testing.T) {
	// dial_d style: a slack sector before the only detent.
	spec := EncoderSpec{BitWidth: 3, Boundaries: []float64{0, 20, 300}}
	w := Wedges(spec)
	require.NotEmpty(t, w)
	assert.Equal(t, Wedge{Sector: 0, Ring: 0, Outer: 13, Inner: 8, Start: 0, End: 20}, w[0])
}

func TestWedgesNoValidation(t *testing.T) {
	tests := []struct {
		name string
		spec EncoderSpec
		n    int
	}{
		{"zero bit width", EncoderSpec{BitWidth: 0, Boundaries: []float64{0, 90, 180}}, 0},
		{"negative bit width", EncoderSpec{BitWidth: -2, Boundaries: []float64{0, 90}}, 0},
		{"unordered", EncoderSpec{BitWidth: 2, Boundaries: []float64{300, 20, 20, 700}}, 4},
		{"no boundaries", EncoderSpec{BitWidth: 4}, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Len(t, Wedges(tt.spec), tt.n)
			assert.NotPanics(t, func() { PaintWheel(tt.spec) })
		})
	}
}

func TestPaintWheelPrimitives(t *testing.T) {
	rec := PaintWheel(quarterSpec())

	assert.Equal(t, CanvasSize, rec.Width())
	assert.Equal(t, CanvasSize, rec.Height())
	assert.Equal(t, 2, rec.Count(recording.CmdDrawCircle))
	assert.Equal(t, 1, rec.Count(recording.CmdDrawPolygon))
	assert.Equal(t, 4, rec.Count(recording.CmdDrawText))
	assert.Equal(t, 5, rec.Count(recording.CmdDrawPath))
	assert.Zero(t, rec.Count(recording.CmdBeginGroup))

	var types []recording.CommandType
	for _, cmd := range rec.Commands() {
		types = append(types, cmd.Type())
	}
	c, p, tx, pa := recording.CmdDrawCircle, recording.CmdDrawPolygon, recording.CmdDrawText, recording.CmdDrawPath
	want := []recording.CommandType{c, c, p, tx, pa, tx, pa, pa, tx, pa, tx, pa}
	diff(t, want, types)
}

func TestPaintWheelDetails(t *testing.T) {
	rec := PaintWheel(quarterSpec())
	cmds := rec.Commands()

	hub := cmds[0].(recording.DrawCircleCommand)
	assert.Equal(t, recording.Pt(50, 50), hub.Center)
	assert.Equal(t, HubRadius, hub.Radius)
	assert.Equal(t, recording.Stroked(recording.Black, CircleWidth), hub.Style)
	assert.False(t, hub.Style.HasFill())

	outer := cmds[1].(recording.DrawCircleCommand)
	assert.Equal(t, 18.0, outer.Radius)

	tri := cmds[2].(recording.DrawPolygonCommand)
	diff(t, IndicatorTriangle(18, 45), tri.Points)
	assert.Equal(t, recording.Filled(recording.Black), tri.Style)

	label := cmds[3].(recording.DrawTextCommand)
	assert.Equal(t, "q", label.Text)
	assert.Equal(t, recording.Pt(LabelX, LabelY), label.Position)
	assert.Equal(t, LabelSize, label.Font.Size)
	assert.Equal(t, recording.AnchorStart, label.Font.Anchor)

	wedge := cmds[4].(recording.DrawPathCommand)
	diff(t, WedgePath(13, 8, 0, 90).Elements(), rec.Resources().GetPath(wedge.Path).Elements())
	assert.Equal(t, recording.Filled(recording.Black), wedge.Style)
}

func TestPaintWheelDeterministic(t *testing.T) {
	spec, _ := FindEncoder(DefaultEncoders(), "dial_i")
	a := PaintWheel(spec)
	b := PaintWheel(spec)
	diff(t, a.Commands(), b.Commands())
}
