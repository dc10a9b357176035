// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package raster provides a raster backend for the recording system.
// It renders recordings to an RGBA image, mainly as a print proof: a quick
// way to eyeball a page without an SVG viewer, and a pixel-level check that
// wedges land where the vector output says they do.
//
// # Supported Features
//
//   - Solid color fills and strokes of circles, paths and polygons
//   - Circular arcs (flattened to polylines at sub-pixel tolerance)
//   - Nested group transforms
//   - Text in the Go Regular face, with middle/end anchoring and central
//     baseline
//   - PNG output
//
// # Example
//
//	import _ "github.com/gogpu/codewheel/recording/backends/raster"
//
//	backend, _ := recording.NewBackend("raster")
//	rec.Playback(backend)
//	backend.(recording.FileBackend).SaveToFile("page.png")
package raster

import (
	"fmt"
	"image"
	"image/png"
	"io"
	"math"
	"os"
	"sync"

	"golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"
	"golang.org/x/image/vector"

	"github.com/gogpu/codewheel/recording"
)

// DefaultPixelsPerMM is the default output resolution (254 dpi).
const DefaultPixelsPerMM = 10.0

func init() {
	recording.Register("raster", func() recording.Backend {
		return NewBackend()
	})
}

// goRegular is parsed once and shared; sfnt fonts are safe for concurrent
// use, faces are not.
var goRegular = sync.OnceValues(func() (*opentype.Font, error) {
	return opentype.Parse(goregular.TTF)
})

// Option configures a Backend.
type Option func(*Backend)

// WithPixelsPerMM sets the output resolution. Non-positive values are ignored.
func WithPixelsPerMM(ppm float64) Option {
	return func(b *Backend) {
		if ppm > 0 {
			b.ppm = ppm
		}
	}
}

// Backend renders recordings to an RGBA image.
// It implements recording.Backend, recording.WriterBackend,
// recording.FileBackend, and recording.ImageBackend.
type Backend struct {
	ppm     float64
	img     *image.RGBA
	current recording.Matrix
	stack   []recording.Matrix
	ended   bool
}

// Ensure Backend implements all required interfaces.
var (
	_ recording.Backend       = (*Backend)(nil)
	_ recording.WriterBackend = (*Backend)(nil)
	_ recording.FileBackend   = (*Backend)(nil)
	_ recording.ImageBackend  = (*Backend)(nil)
)

// NewBackend creates a new raster backend.
func NewBackend(opts ...Option) *Backend {
	b := &Backend{ppm: DefaultPixelsPerMM}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// Begin allocates a white canvas of the given size in millimetres.
func (b *Backend) Begin(width, height float64) error {
	w := int(math.Ceil(width * b.ppm))
	h := int(math.Ceil(height * b.ppm))
	if w <= 0 || h <= 0 {
		return fmt.Errorf("raster: empty canvas %gx%g mm", width, height)
	}
	b.img = image.NewRGBA(image.Rect(0, 0, w, h))
	draw.Draw(b.img, b.img.Bounds(), image.NewUniform(recording.White.Color()), image.Point{}, draw.Src)
	b.current = recording.Scale(b.ppm, b.ppm)
	b.stack = b.stack[:0]
	b.ended = false
	return nil
}

// End finalizes the rendering.
func (b *Backend) End() error {
	if b.img == nil {
		return recording.ErrNotBegun
	}
	b.ended = true
	return nil
}

// BeginGroup pushes the current transform and composes m onto it.
func (b *Backend) BeginGroup(m recording.Matrix) {
	b.stack = append(b.stack, b.current)
	b.current = b.current.Multiply(m)
}

// EndGroup restores the transform saved by the matching BeginGroup.
func (b *Backend) EndGroup() {
	if len(b.stack) == 0 {
		return
	}
	b.current = b.stack[len(b.stack)-1]
	b.stack = b.stack[:len(b.stack)-1]
}

// DrawCircle fills and/or strokes a circle.
func (b *Backend) DrawCircle(center recording.Point, radius float64, style recording.Style) {
	scale := b.current.ScaleFactor()
	c := b.current.TransformPoint(center)
	r := radius * scale

	if style.HasFill() {
		b.fill([][]recording.Point{circle(c, r, false)}, style.Fill)
	}
	if style.HasStroke() {
		hw := b.halfWidth(style.StrokeWidth)
		outer := circle(c, r+hw, false)
		inner := circle(c, math.Max(r-hw, 0), true)
		b.fill([][]recording.Point{outer, inner}, style.Stroke)
	}
}

// DrawPath fills and/or strokes a path.
func (b *Backend) DrawPath(path *recording.Path, style recording.Style) {
	subpaths, closed := flatten(path, b.current)
	if style.HasFill() {
		b.fill(subpaths, style.Fill)
	}
	if style.HasStroke() {
		hw := b.halfWidth(style.StrokeWidth)
		var quads [][]recording.Point
		for i, sp := range subpaths {
			quads = append(quads, strokeQuads(sp, closed[i], hw)...)
		}
		b.fill(quads, style.Stroke)
	}
}

// DrawPolygon fills and/or strokes a closed polygon.
func (b *Backend) DrawPolygon(points []recording.Point, style recording.Style) {
	dev := make([]recording.Point, len(points))
	for i, p := range points {
		dev[i] = b.current.TransformPoint(p)
	}
	if style.HasFill() {
		b.fill([][]recording.Point{dev}, style.Fill)
	}
	if style.HasStroke() {
		b.fill(strokeQuads(dev, true, b.halfWidth(style.StrokeWidth)), style.Stroke)
	}
}

// DrawText draws s in the Go Regular face.
// If the face cannot be loaded the text is skipped.
func (b *Backend) DrawText(s string, pos recording.Point, f recording.Font, fill recording.Brush) {
	c, ok := recording.BrushColor(fill)
	if !ok || s == "" {
		return
	}
	sf, err := goRegular()
	if err != nil {
		return
	}
	face, err := opentype.NewFace(sf, &opentype.FaceOptions{
		Size:    f.Size * b.current.ScaleFactor(),
		DPI:     72, // 1pt == 1px, so Size is in pixels
		Hinting: font.HintingNone,
	})
	if err != nil {
		return
	}
	defer face.Close()

	p := b.current.TransformPoint(pos)
	switch f.Anchor {
	case recording.AnchorMiddle:
		p.X -= fixedToFloat(font.MeasureString(face, s)) / 2
	case recording.AnchorEnd:
		p.X -= fixedToFloat(font.MeasureString(face, s))
	}
	if f.Baseline == recording.BaselineCentral {
		m := face.Metrics()
		p.Y += fixedToFloat(m.Ascent-m.Descent) / 2
	}

	d := font.Drawer{
		Dst:  b.img,
		Src:  image.NewUniform(c.Color()),
		Face: face,
		Dot:  fixed.Point26_6{X: floatToFixed(p.X), Y: floatToFixed(p.Y)},
	}
	d.DrawString(s)
}

// WriteTo writes the rendered content as PNG to the given writer.
func (b *Backend) WriteTo(w io.Writer) (int64, error) {
	if !b.ended {
		return 0, recording.ErrNotEnded
	}
	cw := &countingWriter{w: w}
	err := png.Encode(cw, b.img)
	return cw.n, err
}

// SaveToFile saves the rendered content as PNG to a file.
func (b *Backend) SaveToFile(path string) error {
	if !b.ended {
		return recording.ErrNotEnded
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("raster: %w", err)
	}
	if err := png.Encode(f, b.img); err != nil {
		f.Close()
		return fmt.Errorf("raster: encode %s: %w", path, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("raster: %w", err)
	}
	return nil
}

// Extension implements recording.FileBackend.
func (b *Backend) Extension() string {
	return ".png"
}

// Image returns the rendered image, or nil before End.
func (b *Backend) Image() *image.RGBA {
	if !b.ended {
		return nil
	}
	return b.img
}

// PixelsPerMM returns the output resolution.
func (b *Backend) PixelsPerMM() float64 {
	return b.ppm
}

// halfWidth converts a stroke width to a device half width of at least
// half a pixel, so hairlines stay visible.
func (b *Backend) halfWidth(w float64) float64 {
	return math.Max(w*b.current.ScaleFactor()/2, 0.5)
}

// fill rasterizes device-space polygons with the non-zero rule.
// The rasterizer only covers the polygons' bounding box, clipped to the
// image.
func (b *Backend) fill(polys [][]recording.Point, brush recording.Brush) {
	c, ok := recording.BrushColor(brush)
	if !ok {
		return
	}
	r := bounds(polys).Intersect(b.img.Bounds())
	if r.Empty() {
		return
	}
	ox, oy := float32(r.Min.X), float32(r.Min.Y)

	z := vector.NewRasterizer(r.Dx(), r.Dy())
	z.DrawOp = draw.Over
	for _, poly := range polys {
		if len(poly) < 3 {
			continue
		}
		z.MoveTo(float32(poly[0].X)-ox, float32(poly[0].Y)-oy)
		for _, p := range poly[1:] {
			z.LineTo(float32(p.X)-ox, float32(p.Y)-oy)
		}
		z.ClosePath()
	}
	z.Draw(b.img, r, image.NewUniform(c.Color()), image.Point{})
}

// bounds returns the integer pixel rectangle covering all points.
func bounds(polys [][]recording.Point) image.Rectangle {
	minX, minY := math.Inf(1), math.Inf(1)
	maxX, maxY := math.Inf(-1), math.Inf(-1)
	for _, poly := range polys {
		for _, p := range poly {
			minX, maxX = math.Min(minX, p.X), math.Max(maxX, p.X)
			minY, maxY = math.Min(minY, p.Y), math.Max(maxY, p.Y)
		}
	}
	if minX > maxX || minY > maxY {
		return image.Rectangle{}
	}
	return image.Rect(
		int(math.Floor(minX)), int(math.Floor(minY)),
		int(math.Ceil(maxX)), int(math.Ceil(maxY)),
	)
}

// countingWriter wraps an io.Writer and counts bytes written.
type countingWriter struct {
	w io.Writer
	n int64
}

func (cw *countingWriter) Write(p []byte) (int, error) {
	n, err := cw.w.Write(p)
	cw.n += int64(n)
	return n, err
}

func fixedToFloat(v fixed.Int26_6) float64 {
	return float64(v) / 64
}

func floatToFixed(v float64) fixed.Int26_6 {
	return fixed.Int26_6(math.Round(v * 64))
}
