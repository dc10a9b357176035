package codewheel

import (
	"log/slog"

	"github.com/jbeda/geom"

	"github.com/gogpu/codewheel/recording"
)

// A4 page size in millimetres.
const (
	A4Width  = 210.0
	A4Height = 297.0
)

// Page is the set of wheels sharing one output document.
type Page struct {
	Name  string
	Specs []EncoderSpec
}

// GroupPages groups specs by Page. Pages appear in order of first mention
// and keep their wheels in table order.
func GroupPages(specs []EncoderSpec) []Page {
	var pages []Page
	index := make(map[string]int)
	for _, s := range specs {
		i, ok := index[s.Page]
		if !ok {
			i = len(pages)
			index[s.Page] = i
			pages = append(pages, Page{Name: s.Page})
		}
		pages[i].Specs = append(pages[i].Specs, s)
	}
	return pages
}

// WheelBounds returns the page area covered by spec's local canvas.
func WheelBounds(spec EncoderSpec) geom.Rect {
	at := spec.Placement()
	r := geom.Rect{
		Min: geom.Coord{X: at.X, Y: at.Y},
		Max: geom.Coord{X: at.X, Y: at.Y},
	}
	r.ExpandToContainCoord(geom.Coord{X: at.X + CanvasSize, Y: at.Y + CanvasSize})
	return r
}

// Overflows reports whether spec's local canvas extends past a page of the
// given size. The wheel is still drawn; the page simply clips it.
func Overflows(spec EncoderSpec, width, height float64) bool {
	page := geom.Rect{Max: geom.Coord{X: width, Y: height}}
	return !page.ContainsRect(WheelBounds(spec))
}

// ComposePage draws every wheel of p on a page of the given size, each in
// its own group translated by the wheel's placement. Wheels are never
// scaled.
func ComposePage(p Page, width, height float64) *recording.Recording {
	return composePage(p, width, height, Logger())
}

func composePage(p Page, width, height float64, log *slog.Logger) *recording.Recording {
	r := recording.NewRecorder(width, height)
	for _, s := range p.Specs {
		at := s.Placement()
		if Overflows(s, width, height) {
			log.Warn("wheel canvas extends past page",
				"page", p.Name,
				"wheel", s.Name,
				"x", at.X,
				"y", at.Y)
		}
		r.DrawRecording(paintWheel(s, log), recording.Translate(at.X, at.Y))
	}
	log.Debug("composed page", "page", p.Name, "wheels", len(p.Specs))
	return r.FinishRecording()
}
