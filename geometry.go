package codewheel

import (
	"math"

	"github.com/gogpu/codewheel/recording"
)

// Physical constants of the encoder, in millimetres.
const (
	// HubRadius is the radius of the innermost circle; ring 0 starts here.
	HubRadius = 8.0

	// RingPitch is the radial width of one code ring.
	RingPitch = 5.0

	// IndicatorSize is the height of the pointer triangle.
	IndicatorSize = 2.0

	// CanvasSize is the side of the square local canvas every wheel is
	// drawn on. The wheel center sits at its middle.
	CanvasSize = 100.0
)

// Center returns the wheel center in local canvas coordinates.
func Center() recording.Point {
	return recording.Pt(CanvasSize/2, CanvasSize/2)
}

// RingInner returns the inner radius of ring j.
func RingInner(j int) float64 {
	return HubRadius + RingPitch*float64(j)
}

// RingOuter returns the outer radius of ring j.
func RingOuter(j int) float64 {
	return HubRadius + RingPitch + RingPitch*float64(j)
}

// OuterRadius returns the radius of the outer base circle of a wheel with
// the given number of rings.
func OuterRadius(bitWidth int) float64 {
	return HubRadius + RingPitch*float64(bitWidth)
}

// PolarToCartesian converts a wheel angle to canvas coordinates.
//
// 0° points straight up from the center (y grows downward) and angles grow
// clockwise, so PolarToCartesian(cx, cy, r, 0) is (cx, cy-r).
func PolarToCartesian(cx, cy, radius, deg float64) (x, y float64) {
	rad := (deg - 90) * math.Pi / 180
	return cx + radius*math.Cos(rad), cy + radius*math.Sin(rad)
}

func polar(radius, deg float64) recording.Point {
	c := Center()
	x, y := PolarToCartesian(c.X, c.Y, radius, deg)
	return recording.Pt(x, y)
}

// LargeArc reports the large-arc flag for a wedge from startDeg to endDeg.
func LargeArc(startDeg, endDeg float64) bool {
	return endDeg-startDeg > 180
}

// WedgePath builds a closed annular wedge between two radii and two angles,
// centered on the local canvas.
//
// The outer arc runs from endDeg back to startDeg with sweep 0 and the inner
// arc forward with sweep 1; swapping either flag selects the complementary
// arc. No ordering of the angles is assumed.
func WedgePath(outerRadius, innerRadius, startDeg, endDeg float64) *recording.Path {
	large := LargeArc(startDeg, endDeg)

	outerEnd := polar(outerRadius, endDeg)
	outerStart := polar(outerRadius, startDeg)
	innerStart := polar(innerRadius, startDeg)
	innerEnd := polar(innerRadius, endDeg)

	p := recording.NewPath()
	p.MoveTo(outerEnd.X, outerEnd.Y)
	p.ArcTo(outerRadius, large, false, outerStart.X, outerStart.Y)
	p.LineTo(innerStart.X, innerStart.Y)
	p.ArcTo(innerRadius, large, true, innerEnd.X, innerEnd.Y)
	p.Close()
	return p
}

// IndicatorTriangle returns the pointer marker: tip on innerRadius at
// angleDeg pointing toward the center, base IndicatorSize further out.
//
// The half base angle uses the small-angle approximation
// (IndicatorSize/2) / (innerRadius+IndicatorSize) radians, which existing
// printed wheels were made with.
func IndicatorTriangle(innerRadius, angleDeg float64) []recording.Point {
	base := innerRadius + IndicatorSize
	half := (IndicatorSize / 2) / base * 180 / math.Pi
	return []recording.Point{
		polar(innerRadius, angleDeg),
		polar(base, angleDeg-half),
		polar(base, angleDeg+half),
	}
}
