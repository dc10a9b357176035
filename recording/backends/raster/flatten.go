// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package raster

import (
	"math"

	"honnef.co/go/curve"

	"github.com/gogpu/codewheel/recording"
)

const (
	// maxChord is the longest device-space chord used to approximate a circle.
	maxChord = 1.0
	// tolerance is the device-space flattening error allowed for arcs.
	tolerance = 0.25
)

// flatten converts a path into device-space polylines, one per subpath.
// closed[i] reports whether subpath i ended with Close.
func flatten(path *recording.Path, m recording.Matrix) (subpaths [][]recording.Point, closed []bool) {
	var cur []recording.Point
	var pen, start recording.Point

	flush := func(isClosed bool) {
		if len(cur) > 0 {
			subpaths = append(subpaths, cur)
			closed = append(closed, isClosed)
		}
		cur = nil
	}

	for _, elem := range path.Transform(m).Elements() {
		switch e := elem.(type) {
		case recording.MoveTo:
			flush(false)
			pen = e.Point
			start = pen
			cur = append(cur, pen)
		case recording.LineTo:
			pen = e.Point
			cur = append(cur, pen)
		case recording.ArcTo:
			cur = append(cur, arcPoints(pen, e, 1)...)
			pen = e.Point
		case recording.Close:
			pen = start
			flush(true)
		}
	}
	flush(false)
	return subpaths, closed
}

// arcPoints flattens an endpoint-form arc starting at from, excluding from
// itself and including the end point. scale converts user units to device
// pixels so the flattening error stays below tolerance pixels.
//
// The endpoint-to-center conversion follows SVG 1.1 implementation notes
// F.6.5 specialised to a circle with no x-axis rotation.
func arcPoints(from recording.Point, a recording.ArcTo, scale float64) []recording.Point {
	to := a.Point
	if from == to {
		return nil
	}
	r := math.Abs(a.Radius)
	if r == 0 {
		return []recording.Point{to}
	}

	x1 := (from.X - to.X) / 2
	y1 := (from.Y - to.Y) / 2
	d2 := x1*x1 + y1*y1
	if lambda := d2 / (r * r); lambda > 1 {
		r *= math.Sqrt(lambda)
	}

	coef := math.Sqrt(math.Max(0, (r*r-d2)/d2))
	if a.LargeArc == a.Sweep {
		coef = -coef
	}
	cx := coef*y1 + (from.X+to.X)/2
	cy := -coef*x1 + (from.Y+to.Y)/2

	theta1 := math.Atan2(from.Y-cy, from.X-cx)
	theta2 := math.Atan2(to.Y-cy, to.X-cx)
	sweep := theta2 - theta1
	if a.Sweep && sweep < 0 {
		sweep += 2 * math.Pi
	} else if !a.Sweep && sweep > 0 {
		sweep -= 2 * math.Pi
	}

	arc := curve.Arc{
		Center:     curve.Pt(cx, cy),
		Radii:      curve.Vec(r, r),
		StartAngle: theta1,
		SweepAngle: sweep,
	}
	var pts []recording.Point
	for el := range curve.Flatten(arc.PathElements(tolerance/scale), tolerance/scale) {
		if el.Kind == curve.LineToKind {
			pts = append(pts, recording.Pt(el.P0.X, el.P0.Y))
		}
	}
	if len(pts) == 0 {
		return []recording.Point{to}
	}
	pts[len(pts)-1] = to
	return pts
}

// circle returns a device-space polygon approximating a full circle.
// reverse flips the winding so the circle can cut a hole.
func circle(c recording.Point, r float64, reverse bool) []recording.Point {
	n := int(math.Ceil(2 * math.Pi * r / maxChord))
	n = min(max(n, 8), 4096)
	pts := make([]recording.Point, n)
	for i := range n {
		th := 2 * math.Pi * float64(i) / float64(n)
		if reverse {
			th = -th
		}
		pts[i] = recording.Pt(c.X+r*math.Cos(th), c.Y+r*math.Sin(th))
	}
	return pts
}

// strokeQuads outlines each segment of a polyline as a quad of half width hw.
// All quads share one orientation, so overlaps never cancel under the
// non-zero rule.
func strokeQuads(pts []recording.Point, closed bool, hw float64) [][]recording.Point {
	if len(pts) < 2 {
		return nil
	}
	segs := len(pts) - 1
	if closed {
		segs++
	}
	quads := make([][]recording.Point, 0, segs)
	for i := range segs {
		p0 := pts[i]
		p1 := pts[(i+1)%len(pts)]
		d := p1.Sub(p0)
		l := math.Hypot(d.X, d.Y)
		if l == 0 {
			continue
		}
		n := recording.Pt(-d.Y/l*hw, d.X/l*hw)
		quads = append(quads, []recording.Point{p0.Add(n), p1.Add(n), p1.Sub(n), p0.Sub(n)})
	}
	return quads
}
