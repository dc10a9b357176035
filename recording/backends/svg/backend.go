// Package svg provides an SVG backend for the recording system.
//
// Arcs are written verbatim as SVG "A" commands, so a recording played back
// here keeps its exact large-arc and sweep flags. Numbers are printed in
// their shortest round-trip form, which makes output byte-stable across
// runs.
//
// # Example
//
//	import _ "github.com/gogpu/codewheel/recording/backends/svg"
//
//	backend, _ := recording.NewBackend("svg")
//	rec.Playback(backend)
//	backend.(recording.FileBackend).SaveToFile("page.svg")
package svg

import (
	"bytes"
	"encoding/xml"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	svgo "github.com/ajstarks/svgo"

	"github.com/gogpu/codewheel/recording"
)

func init() {
	recording.Register("svg", func() recording.Backend {
		return NewBackend()
	})
}

// Backend serializes recordings to SVG markup in millimetre units.
type Backend struct {
	buf    bytes.Buffer
	canvas *svgo.SVG
	depth  int
	begun  bool
	ended  bool
	err    error // first write error, reported by End
}

// Ensure Backend implements all required interfaces.
var (
	_ recording.Backend       = (*Backend)(nil)
	_ recording.WriterBackend = (*Backend)(nil)
	_ recording.FileBackend   = (*Backend)(nil)
)

// NewBackend creates a new SVG backend.
func NewBackend() *Backend {
	return &Backend{}
}

// Begin starts a new document. Any previous output is discarded.
// The canvas size is written as given, fractions included.
func (b *Backend) Begin(width, height float64) error {
	b.buf.Reset()
	b.canvas = svgo.New(&b.buf)
	b.depth = 0
	b.begun = true
	b.ended = false
	b.err = nil

	w, h := f64s(width), f64s(height)
	b.canvas.Startraw(
		fmt.Sprintf(`width="%smm" height="%smm"`, w, h),
		fmt.Sprintf(`viewBox="0 0 %s %s"`, w, h),
	)
	return nil
}

// End closes any open groups and the document.
func (b *Backend) End() error {
	if !b.begun {
		return recording.ErrNotBegun
	}
	for b.depth > 0 {
		b.EndGroup()
	}
	b.canvas.End()
	b.ended = true
	if b.err != nil {
		return fmt.Errorf("svg: %w", b.err)
	}
	return nil
}

// BeginGroup opens a <g> element carrying m as its transform attribute.
func (b *Backend) BeginGroup(m recording.Matrix) {
	b.depth++
	if m.IsIdentity() {
		b.canvas.Group()
		return
	}
	b.canvas.Gtransform(transform(m))
}

// EndGroup closes the innermost <g> element.
func (b *Backend) EndGroup() {
	if b.depth == 0 {
		return
	}
	b.depth--
	b.canvas.Gend()
}

// DrawCircle writes a <circle> element.
func (b *Backend) DrawCircle(center recording.Point, radius float64, style recording.Style) {
	fmt.Fprintf(b.canvas.Writer, `<circle cx="%s" cy="%s" r="%s" %s />`+"\n",
		f64s(center.X), f64s(center.Y), f64s(radius), paintAttrs(style))
}

// DrawPath writes a <path> element.
func (b *Backend) DrawPath(path *recording.Path, style recording.Style) {
	b.canvas.Path(PathData(path), paintAttrs(style))
}

// DrawPolygon writes a <polygon> element.
func (b *Backend) DrawPolygon(points []recording.Point, style recording.Style) {
	coords := make([]string, len(points))
	for i, p := range points {
		coords[i] = f64s(p.X) + "," + f64s(p.Y)
	}
	fmt.Fprintf(b.canvas.Writer, `<polygon points="%s" %s />`+"\n",
		strings.Join(coords, " "), paintAttrs(style))
}

// DrawText writes a <text> element with the string XML-escaped.
func (b *Backend) DrawText(s string, pos recording.Point, font recording.Font, fill recording.Brush) {
	w := b.canvas.Writer
	fmt.Fprintf(w, `<text x="%s" y="%s" font-size="%s"`, f64s(pos.X), f64s(pos.Y), f64s(font.Size))
	switch font.Anchor {
	case recording.AnchorMiddle:
		io.WriteString(w, ` text-anchor="middle"`)
	case recording.AnchorEnd:
		io.WriteString(w, ` text-anchor="end"`)
	}
	if font.Baseline == recording.BaselineCentral {
		io.WriteString(w, ` dominant-baseline="central"`)
	}
	fmt.Fprintf(w, ` fill="%s">`, paint(fill))
	if err := xml.EscapeText(w, []byte(s)); err != nil && b.err == nil {
		b.err = err
	}
	io.WriteString(w, "</text>\n")
}

// WriteTo writes the finished document to w.
func (b *Backend) WriteTo(w io.Writer) (int64, error) {
	if !b.ended {
		return 0, recording.ErrNotEnded
	}
	n, err := w.Write(b.buf.Bytes())
	return int64(n), err
}

// SaveToFile writes the finished document to path, replacing any existing file.
func (b *Backend) SaveToFile(path string) error {
	if !b.ended {
		return recording.ErrNotEnded
	}
	if err := os.WriteFile(path, b.buf.Bytes(), 0o644); err != nil {
		return fmt.Errorf("svg: %w", err)
	}
	return nil
}

// Extension implements recording.FileBackend.
func (b *Backend) Extension() string {
	return ".svg"
}

// Bytes returns the finished document, or nil before End.
func (b *Backend) Bytes() []byte {
	if !b.ended {
		return nil
	}
	return b.buf.Bytes()
}

// PathData formats a path as SVG path data, e.g. "M 1 2 A 5 5 0 0 1 3 4 Z".
func PathData(path *recording.Path) string {
	parts := make([]string, 0, path.Len())
	for _, elem := range path.Elements() {
		switch e := elem.(type) {
		case recording.MoveTo:
			parts = append(parts, "M "+f64s(e.Point.X)+" "+f64s(e.Point.Y))
		case recording.LineTo:
			parts = append(parts, "L "+f64s(e.Point.X)+" "+f64s(e.Point.Y))
		case recording.ArcTo:
			r := f64s(e.Radius)
			parts = append(parts, strings.Join([]string{
				"A", r, r, "0", onezero(e.LargeArc), onezero(e.Sweep),
				f64s(e.Point.X), f64s(e.Point.Y),
			}, " "))
		case recording.Close:
			parts = append(parts, "Z")
		}
	}
	return strings.Join(parts, " ")
}

func transform(m recording.Matrix) string {
	if m.IsTranslation() {
		x, y := m.Translation()
		return "translate(" + f64s(x) + ", " + f64s(y) + ")"
	}
	return "matrix(" + strings.Join([]string{
		f64s(m.A), f64s(m.D), f64s(m.B), f64s(m.E), f64s(m.C), f64s(m.F),
	}, " ") + ")"
}

// paintAttrs renders stroke and fill presentation attributes.
func paintAttrs(style recording.Style) string {
	var sb strings.Builder
	sb.WriteString(`stroke="` + paint(style.Stroke) + `"`)
	if style.StrokeWidth > 0 {
		sb.WriteString(` stroke-width="` + f64s(style.StrokeWidth) + `"`)
	}
	sb.WriteString(` fill="` + paint(style.Fill) + `"`)
	if c, ok := recording.BrushColor(style.Fill); ok && c.A < 1 {
		sb.WriteString(` fill-opacity="` + f64s(c.A) + `"`)
	}
	return sb.String()
}

func paint(b recording.Brush) string {
	c, ok := recording.BrushColor(b)
	if !ok || c.A == 0 {
		return "none"
	}
	switch c.Hex() {
	case "#000000":
		return "black"
	case "#ffffff":
		return "white"
	}
	return c.Hex()
}

func f64s(val float64) string {
	if val == 0 {
		// Avoid "-0".
		return "0"
	}
	return strconv.FormatFloat(val, 'f', -1, 64)
}

func onezero(b bool) string {
	if b {
		return "1"
	}
	return "0"
}
