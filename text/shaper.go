package text

import (
	"bytes"
	"fmt"
	"sync"

	"github.com/go-text/typesetting/di"
	"github.com/go-text/typesetting/font"
	"github.com/go-text/typesetting/language"
	"github.com/go-text/typesetting/shaping"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/math/fixed"
)

// Shaper measures shaped label widths in the Go Regular face.
//
// Shaper is safe for concurrent use. The parsed font.Font is shared; a
// font.Face is created per call since faces carry glyph caches. HarfbuzzShaper
// instances are pooled because they hold mutable buffers.
type Shaper struct {
	font *font.Font
	pool sync.Pool
}

// NewShaper parses the embedded Go Regular face.
func NewShaper() (*Shaper, error) {
	face, err := font.ParseTTF(bytes.NewReader(goregular.TTF))
	if err != nil {
		return nil, fmt.Errorf("text: parse Go Regular: %w", err)
	}
	return &Shaper{
		font: face.Font,
		pool: sync.Pool{
			New: func() any {
				return &shaping.HarfbuzzShaper{}
			},
		},
	}, nil
}

// Advance returns the horizontal advance of s shaped at the given size.
// The result is in the unit of size. Empty strings and non-positive sizes
// measure 0.
func (s *Shaper) Advance(str string, size float64) float64 {
	if str == "" || size <= 0 {
		return 0
	}
	runes := []rune(str)
	input := shaping.Input{
		Text:      runes,
		RunStart:  0,
		RunEnd:    len(runes),
		Direction: di.DirectionLTR,
		Face:      font.NewFace(s.font),
		Size:      floatToFixed(size),
		Script:    detectScript(runes),
		Language:  language.NewLanguage("en"),
	}

	hb := s.pool.Get().(*shaping.HarfbuzzShaper)
	out := hb.Shape(input)
	s.pool.Put(hb)

	adv := out.Advance
	if adv < 0 {
		adv = -adv
	}
	return fixedToFloat(adv)
}

// detectScript returns the script of the first non-space rune.
func detectScript(runes []rune) language.Script {
	for _, r := range runes {
		if r == ' ' || r == '\t' {
			continue
		}
		return language.LookupScript(r)
	}
	return language.Latin
}

func floatToFixed(v float64) fixed.Int26_6 {
	return fixed.Int26_6(v * 64)
}

func fixedToFloat(v fixed.Int26_6) float64 {
	return float64(v) / 64
}
