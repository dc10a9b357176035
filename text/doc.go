// Package text measures and normalizes short labels.
//
// Labels are shaped with go-text/typesetting's HarfBuzz port against the
// embedded Go Regular face, so measured widths include kerning and match
// what the raster backend draws. Widths are reported in the same unit as the
// requested size: shaping a label at 3 (mm) yields an advance in mm.
//
// # Quick Start
//
//	s, err := text.NewShaper()
//	if err != nil {
//		return err
//	}
//	w := s.Advance(text.Fold("<PAGE UP>"), 3)
package text
