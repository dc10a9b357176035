// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package raster

import (
	"bytes"
	"errors"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/gogpu/codewheel/recording"
)

func isWhite(c color.Color) bool {
	r, g, b, _ := c.RGBA()
	return r == 0xffff && g == 0xffff && b == 0xffff
}

func isBlack(c color.Color) bool {
	r, g, b, _ := c.RGBA()
	return r == 0 && g == 0 && b == 0
}

func TestBackendRegistration(t *testing.T) {
	if !recording.IsRegistered("raster") {
		t.Fatal("raster backend not registered")
	}

	backend, err := recording.NewBackend("raster")
	if err != nil {
		t.Fatalf("failed to create raster backend: %v", err)
	}
	if _, ok := backend.(*Backend); !ok {
		t.Fatal("backend is not *raster.Backend")
	}
}

func TestBackendLifecycle(t *testing.T) {
	backend := NewBackend()
	if err := backend.Begin(100, 100); err != nil {
		t.Fatalf("Begin failed: %v", err)
	}
	if backend.Image() != nil {
		t.Error("Image() before End should be nil")
	}
	if err := backend.End(); err != nil {
		t.Fatalf("End failed: %v", err)
	}

	img := backend.Image()
	if img == nil {
		t.Fatal("Image() returned nil")
	}
	if b := img.Bounds(); b.Dx() != 1000 || b.Dy() != 1000 {
		t.Errorf("Image bounds = %v, want 1000x1000", b)
	}
	if !isWhite(img.At(0, 0)) {
		t.Errorf("background = %v, want white", img.At(0, 0))
	}
}

func TestBackendPixelsPerMM(t *testing.T) {
	backend := NewBackend(WithPixelsPerMM(2), WithPixelsPerMM(-1))
	if backend.PixelsPerMM() != 2 {
		t.Fatalf("PixelsPerMM = %v, want 2", backend.PixelsPerMM())
	}
	if err := backend.Begin(210, 297); err != nil {
		t.Fatal(err)
	}
	_ = backend.End()
	if b := backend.Image().Bounds(); b.Dx() != 420 || b.Dy() != 594 {
		t.Errorf("Image bounds = %v, want 420x594", b)
	}
}

func TestBackendEmptyCanvas(t *testing.T) {
	if err := NewBackend().Begin(0, 10); err == nil {
		t.Error("Begin(0, 10) should fail")
	}
}

func TestBackendEndWithoutBegin(t *testing.T) {
	if err := NewBackend().End(); !errors.Is(err, recording.ErrNotBegun) {
		t.Errorf("End() = %v, want ErrNotBegun", err)
	}
}

func TestBackendFillWedge(t *testing.T) {
	// Ring 0, first quadrant of a wheel centered at (50, 50).
	p := recording.NewPath()
	p.MoveTo(50, 37)
	p.ArcTo(13, false, true, 63, 50)
	p.LineTo(58, 50)
	p.ArcTo(8, false, false, 50, 42)
	p.Close()

	backend := NewBackend()
	_ = backend.Begin(100, 100)
	backend.DrawPath(p, recording.Filled(recording.Black))
	_ = backend.End()
	img := backend.Image()

	tests := []struct {
		name  string
		x, y  int
		black bool
	}{
		{"inside wedge", 574, 425, true},
		{"hub", 500, 500, false},
		{"beyond outer radius", 600, 400, false},
		{"other quadrant", 425, 574, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := img.At(tt.x, tt.y)
			if tt.black && !isBlack(c) {
				t.Errorf("pixel(%d,%d) = %v, want black", tt.x, tt.y, c)
			}
			if !tt.black && !isWhite(c) {
				t.Errorf("pixel(%d,%d) = %v, want white", tt.x, tt.y, c)
			}
		})
	}
}

func TestBackendStrokeCircle(t *testing.T) {
	backend := NewBackend()
	_ = backend.Begin(100, 100)
	backend.DrawCircle(recording.Pt(50, 50), 8, recording.Stroked(recording.Black, 0.2))
	_ = backend.End()
	img := backend.Image()

	if isWhite(img.At(580, 500)) {
		t.Error("circle outline not drawn")
	}
	if !isWhite(img.At(500, 500)) {
		t.Error("stroked circle should not be filled")
	}
}

func TestBackendGroupTransform(t *testing.T) {
	backend := NewBackend()
	_ = backend.Begin(100, 100)
	backend.BeginGroup(recording.Translate(40, 40))
	backend.DrawPolygon([]recording.Point{{X: 0, Y: 0}, {X: 10, Y: 0}, {X: 10, Y: 10}, {X: 0, Y: 10}},
		recording.Filled(recording.Black))
	backend.EndGroup()
	backend.EndGroup() // unbalanced pops are ignored
	backend.DrawPolygon([]recording.Point{{X: 0, Y: 0}, {X: 5, Y: 0}, {X: 5, Y: 5}},
		recording.Filled(recording.Black))
	_ = backend.End()
	img := backend.Image()

	if !isBlack(img.At(450, 450)) {
		t.Errorf("translated square missing, pixel = %v", img.At(450, 450))
	}
	if !isWhite(img.At(150, 150)) {
		t.Error("square drawn without translation")
	}
	if !isBlack(img.At(40, 10)) {
		t.Error("transform leaked out of group")
	}
}

func TestBackendText(t *testing.T) {
	backend := NewBackend()
	_ = backend.Begin(100, 100)
	backend.DrawText("8", recording.Pt(50, 50), recording.Font{
		Size:     8,
		Anchor:   recording.AnchorMiddle,
		Baseline: recording.BaselineCentral,
	}, recording.NewSolidBrush(recording.Black))
	_ = backend.End()
	img := backend.Image()

	inked := false
	for y := 460; y < 540 && !inked; y++ {
		for x := 460; x < 540; x++ {
			if !isWhite(img.At(x, y)) {
				inked = true
				break
			}
		}
	}
	if !inked {
		t.Error("no glyph pixels around the anchor point")
	}
	if !isWhite(img.At(0, 0)) {
		t.Error("glyph drawn far from the anchor point")
	}
}

func TestBackendOutputBeforeEnd(t *testing.T) {
	backend := NewBackend()
	_ = backend.Begin(10, 10)

	var buf bytes.Buffer
	if _, err := backend.WriteTo(&buf); !errors.Is(err, recording.ErrNotEnded) {
		t.Errorf("WriteTo() = %v, want ErrNotEnded", err)
	}
	if err := backend.SaveToFile(filepath.Join(t.TempDir(), "x.png")); !errors.Is(err, recording.ErrNotEnded) {
		t.Errorf("SaveToFile() = %v, want ErrNotEnded", err)
	}
}

func TestBackendWriteTo(t *testing.T) {
	backend := NewBackend()
	_ = backend.Begin(10, 5)
	_ = backend.End()

	var buf bytes.Buffer
	n, err := backend.WriteTo(&buf)
	if err != nil {
		t.Fatalf("WriteTo failed: %v", err)
	}
	if n != int64(buf.Len()) {
		t.Errorf("WriteTo returned %d, wrote %d bytes", n, buf.Len())
	}

	img, err := png.Decode(&buf)
	if err != nil {
		t.Fatalf("output is not PNG: %v", err)
	}
	if img.Bounds() != image.Rect(0, 0, 100, 50) {
		t.Errorf("decoded bounds = %v", img.Bounds())
	}
}

func TestBackendSaveToFile(t *testing.T) {
	backend := NewBackend()
	_ = backend.Begin(10, 10)
	_ = backend.End()

	path := filepath.Join(t.TempDir(), "page"+backend.Extension())
	if err := backend.SaveToFile(path); err != nil {
		t.Fatalf("SaveToFile failed: %v", err)
	}
	if _, err := os.Stat(path); err != nil {
		t.Fatal(err)
	}

	missing := filepath.Join(t.TempDir(), "no", "such", "dir", "page.png")
	if err := backend.SaveToFile(missing); err == nil {
		t.Error("SaveToFile into a missing directory should fail")
	}
}

func TestFlattenTransformsArcs(t *testing.T) {
	p := recording.NewPath()
	p.MoveTo(50, 37)
	p.ArcTo(13, false, true, 63, 50)
	p.LineTo(58, 50)
	p.Close()

	subpaths, closed := flatten(p, recording.Scale(10, 10))
	if len(subpaths) != 1 || !closed[0] {
		t.Fatalf("flatten() = %d subpaths, closed %v; want 1 closed", len(subpaths), closed)
	}
	pts := subpaths[0]
	if pts[0] != recording.Pt(500, 370) {
		t.Errorf("first point = %v, want (500, 370)", pts[0])
	}
	if last := pts[len(pts)-1]; last != recording.Pt(580, 500) {
		t.Errorf("last point = %v, want (580, 500)", last)
	}
	for _, q := range pts[1 : len(pts)-1] {
		if d := q.Distance(recording.Pt(500, 500)); d < 129.9 || d > 130.1 {
			t.Fatalf("arc point %v at distance %v, want 130", q, d)
		}
	}
}

func TestArcPoints(t *testing.T) {
	from := recording.Pt(50, 37)
	arc := recording.ArcTo{Radius: 13, Sweep: true, Point: recording.Pt(63, 50)}

	pts := arcPoints(from, arc, 10)
	if len(pts) < 2 {
		t.Fatalf("got %d points", len(pts))
	}
	if last := pts[len(pts)-1]; last != arc.Point {
		t.Errorf("last point = %v, want %v", last, arc.Point)
	}
	for _, p := range pts {
		if d := p.Distance(recording.Pt(50, 50)); d < 12.99 || d > 13.01 {
			t.Fatalf("point %v at distance %v from center, want 13", p, d)
		}
		if p.X < 50-1e-9 || p.Y > 50+1e-9 {
			t.Fatalf("point %v outside the first quadrant", p)
		}
	}

	if pts := arcPoints(from, recording.ArcTo{Radius: 13, Point: from}, 10); pts != nil {
		t.Errorf("degenerate arc produced %d points", len(pts))
	}
	if pts := arcPoints(from, recording.ArcTo{Point: recording.Pt(1, 1)}, 10); len(pts) != 1 {
		t.Errorf("zero-radius arc should be a line, got %d points", len(pts))
	}
}

func TestStrokeQuads(t *testing.T) {
	pts := []recording.Point{{X: 0, Y: 0}, {X: 10, Y: 0}, {X: 10, Y: 10}}
	if got := len(strokeQuads(pts, false, 1)); got != 2 {
		t.Errorf("open polyline quads = %d, want 2", got)
	}
	if got := len(strokeQuads(pts, true, 1)); got != 3 {
		t.Errorf("closed polyline quads = %d, want 3", got)
	}
	if got := strokeQuads(pts[:1], true, 1); got != nil {
		t.Errorf("single point quads = %v, want nil", got)
	}
}

func TestBounds(t *testing.T) {
	polys := [][]recording.Point{
		{{X: 1.5, Y: 2.5}, {X: 4.2, Y: 2.5}},
		{{X: -3, Y: 7.1}},
	}
	if got, want := bounds(polys), image.Rect(-3, 2, 5, 8); got != want {
		t.Errorf("bounds() = %v, want %v", got, want)
	}
	if got := bounds(nil); !got.Empty() {
		t.Errorf("bounds(nil) = %v, want empty", got)
	}
}

func TestBackendFillClipped(t *testing.T) {
	backend := NewBackend(WithPixelsPerMM(1))
	_ = backend.Begin(20, 20)
	// Square straddling the top-left corner.
	backend.DrawPolygon([]recording.Point{{X: -5, Y: -5}, {X: 5, Y: -5}, {X: 5, Y: 5}, {X: -5, Y: 5}},
		recording.Filled(recording.Black))
	// Entirely off canvas.
	backend.DrawPolygon([]recording.Point{{X: 30, Y: 30}, {X: 40, Y: 30}, {X: 40, Y: 40}},
		recording.Filled(recording.Black))
	_ = backend.End()
	img := backend.Image()

	if !isBlack(img.At(2, 2)) {
		t.Errorf("clipped square missing, pixel = %v", img.At(2, 2))
	}
	if !isWhite(img.At(10, 10)) {
		t.Errorf("pixel(10,10) = %v, want white", img.At(10, 10))
	}
}
