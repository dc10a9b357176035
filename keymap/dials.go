package keymap

import "slices"

// Dial is one rotary dial of the keypad.
type Dial struct {
	ID string `yaml:"id"`

	// Diameter of the dial face, in millimetres.
	Diameter float64 `yaml:"diameter"`

	// X and Y locate the dial center on the sheet.
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`

	// Keys is the number of finger holes.
	Keys int `yaml:"keys"`

	// Bits is the ring count of the dial's code wheel.
	Bits int `yaml:"bits"`

	// Rows is the number of staggered rings keys are spread over; 0 and 1
	// both mean a single ring.
	Rows int `yaml:"rows,omitempty"`

	// Labels are printed in key order. Extra labels are ignored and
	// missing ones leave the key blank.
	Labels []string `yaml:"labels,flow"`
}

// EncoderName returns the name of the code wheel that reads this dial.
func (d Dial) EncoderName() string {
	return "dial_" + d.ID
}

func (d Dial) rows() int {
	return max(d.Rows, 1)
}

var defaultDials = []Dial{
	{
		ID: "a", Diameter: 150, X: 125, Y: 84, Keys: 35, Bits: 6, Rows: 3,
		Labels: []string{
			"@", ":", "_", "p", ";", "/", "o", "l", ".", "i", "k", ",",
			"u", "j", "m", "y", "h", "n", "t", "g", "b", "r", "f", "v",
			"e", "d", "c", "w", "s", "x", "q", "a", "z", "<SPACE>", "<CAPS>",
		},
	},
	{ID: "b", Diameter: 41, X: 27, Y: 45, Keys: 3, Bits: 2, Labels: []string{"^", "<ESC>", "<TAB>"}},
	{ID: "c", Diameter: 44, X: 29, Y: 125, Keys: 4, Bits: 3, Labels: []string{"<SHIFT>", "<CTRL>", "<ALT>", "<FN>"}},
	{ID: "d", Diameter: 37, X: 234, Y: 87, Keys: 1, Bits: 3, Labels: []string{"Ent"}},
	{
		ID: "e", Diameter: 59, X: 290, Y: 54, Keys: 6, Bits: 3,
		Labels: []string{"<END>", "<PAGE DOWN>", "<PAGE UP>", "<HOME>", "<INS>", "<DEL>"},
	},
	{ID: "f", Diameter: 59, X: 290, Y: 118, Keys: 4, Bits: 3, Labels: []string{"<RIGHT>", "<UP>", "<LEFT>", "<DOWN>"}},
	{ID: "g", Diameter: 41, X: 345, Y: 49, Keys: 3, Bits: 2, Labels: []string{"*", "/", "."}},
	{ID: "h", Diameter: 41, X: 405, Y: 49, Keys: 3, Bits: 2, Labels: []string{"+", "-", "="}},
	{
		ID: "i", Diameter: 82, X: 378, Y: 112, Keys: 10, Bits: 4,
		Labels: []string{"9", "8", "7", "6", "5", "4", "3", "2", "1", "0"},
	},
}

// DefaultDials returns a copy of the compiled-in dial table.
func DefaultDials() []Dial {
	out := make([]Dial, len(defaultDials))
	for i, d := range defaultDials {
		d.Labels = slices.Clone(d.Labels)
		out[i] = d
	}
	return out
}
