package codewheel

import (
	"fmt"
	"slices"

	"gopkg.in/yaml.v3"

	"github.com/gogpu/codewheel/recording"
)

// EncoderSpec describes one code wheel.
//
// Specs are not validated. Boundaries may be out of order, BitWidth may be
// zero, and the painter draws whatever geometry the formulas yield.
type EncoderSpec struct {
	// Page groups wheels onto one output document.
	Page string `yaml:"page"`

	// X and Y place the wheel's 100x100mm local canvas on the page.
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`

	// Name is the label drawn in every sector.
	Name string `yaml:"name"`

	// BitWidth is the number of code rings.
	BitWidth int `yaml:"bits"`

	// Boundaries holds n+1 angles in degrees delimiting n sectors. Values
	// are used as given, without reduction modulo 360.
	Boundaries []float64 `yaml:"degrees,flow"`

	// IndicatorAngle is where the pointer triangle is drawn, in degrees.
	IndicatorAngle float64 `yaml:"indicator"`
}

// Placement returns the wheel's offset on its page.
func (s EncoderSpec) Placement() recording.Point {
	return recording.Pt(s.X, s.Y)
}

// SectorCount returns the number of sectors, len(Boundaries)-1, or 0.
func (s EncoderSpec) SectorCount() int {
	return max(len(s.Boundaries)-1, 0)
}

// Clone returns a deep copy of s.
func (s EncoderSpec) Clone() EncoderSpec {
	s.Boundaries = slices.Clone(s.Boundaries)
	return s
}

// defaultEncoders is the compiled-in table. It is never handed out directly.
var defaultEncoders = buildDefaultEncoders()

// DefaultEncoders returns a copy of the compiled-in encoder table, in table
// order. Callers may modify the result freely.
func DefaultEncoders() []EncoderSpec {
	out := make([]EncoderSpec, len(defaultEncoders))
	for i, s := range defaultEncoders {
		out[i] = s.Clone()
	}
	return out
}

func buildDefaultEncoders() []EncoderSpec {
	// 35 holes every 23/3 degrees starting at 20, after a leading slack
	// sector and before the end stop at 320.
	dial35 := []float64{0}
	for i := range 35 {
		dial35 = append(dial35, float64(i*23)/3+20)
	}
	dial35 = append(dial35, 320)

	// First hole centre plus the offset between sensor and end stop.
	const dial35Indicator = 23.0/3*0.5 + 20 + 23.0/3 + 5

	threeHoles := []float64{0, 90, 180, 270}

	dialE := []float64{0}
	for i := range 7 {
		dialE = append(dialE, 20+45*float64(i))
	}

	dialI := []float64{0}
	for i := range 11 {
		dialI = append(dialI, 20+27*float64(i))
	}

	return []EncoderSpec{
		{
			Page: "one_dial", X: 10, Y: 10, Name: "one_dial", BitWidth: 6,
			Boundaries:     dial35,
			IndicatorAngle: dial35Indicator,
		},
		{
			Page: "nine_dial", X: 0, Y: 10, Name: "dial_a", BitWidth: 6,
			Boundaries:     slices.Clone(dial35),
			IndicatorAngle: dial35Indicator + 85,
		},
		{
			Page: "nine_dial", X: 70, Y: 10, Name: "dial_b", BitWidth: 2,
			Boundaries:     slices.Clone(threeHoles),
			IndicatorAngle: 75,
		},
		{
			Page: "nine_dial", X: 120, Y: 10, Name: "dial_c", BitWidth: 3,
			Boundaries:     []float64{0, 67.5, 135, 202.5, 270},
			IndicatorAngle: 75 - 90,
		},
		{
			Page: "nine_dial", X: 0, Y: 110, Name: "dial_d", BitWidth: 3,
			Boundaries:     []float64{0, 20, 300},
			IndicatorAngle: 20 + 75 + 90 - 90,
		},
		{
			Page: "nine_dial", X: 60, Y: 110, Name: "dial_e", BitWidth: 3,
			Boundaries:     dialE,
			IndicatorAngle: 20 + 75 + 45,
		},
		{
			// Cross keys: four detents a quarter turn apart, last stop pulled
			// back by 45 degrees.
			Page: "nine_dial", X: 120, Y: 110, Name: "dial_f", BitWidth: 3,
			Boundaries:     []float64{0, 10, 100, 190, 280, 10 + 360 - 45},
			IndicatorAngle: 75 + 90 - 15,
		},
		{
			Page: "nine_dial", X: 0, Y: 210, Name: "dial_g", BitWidth: 2,
			Boundaries:     slices.Clone(threeHoles),
			IndicatorAngle: 75 + 80,
		},
		{
			Page: "nine_dial", X: 50, Y: 210, Name: "dial_h", BitWidth: 2,
			Boundaries:     slices.Clone(threeHoles),
			IndicatorAngle: 75 + 90,
		},
		{
			Page: "nine_dial", X: 110, Y: 210, Name: "dial_i", BitWidth: 4,
			Boundaries:     dialI,
			IndicatorAngle: 20 + 75 + 315 - 30,
		},
	}
}

// FindEncoder returns the first spec named name.
func FindEncoder(specs []EncoderSpec, name string) (EncoderSpec, bool) {
	i := slices.IndexFunc(specs, func(s EncoderSpec) bool { return s.Name == name })
	if i < 0 {
		return EncoderSpec{}, false
	}
	return specs[i], true
}

// table is the YAML document layout of MarshalTable.
type table struct {
	Encoders []EncoderSpec `yaml:"encoders"`
}

// MarshalTable renders specs as a YAML document, in order.
func MarshalTable(specs []EncoderSpec) ([]byte, error) {
	out, err := yaml.Marshal(table{Encoders: specs})
	if err != nil {
		return nil, fmt.Errorf("codewheel: marshal table: %w", err)
	}
	return out, nil
}
