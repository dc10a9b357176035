package codewheel

// Gray returns the reflected binary Gray code of n.
// Gray(k) and Gray(k+1) differ in exactly one bit.
func Gray(n uint) uint {
	return n ^ (n >> 1)
}

// GrayDecode inverts Gray.
func GrayDecode(g uint) uint {
	n := g
	for m := g >> 1; m != 0; m >>= 1 {
		n ^= m
	}
	return n
}

// RingBit reports whether ring j is painted for the given Gray code.
// Bits at or above the wheel's bit width have no ring and are never asked
// for by the painter.
func RingBit(code uint, j int) bool {
	return (code>>uint(j))&1 == 1
}

// DecodeReading returns the position number encoded by a sensor reading in
// which bit j is set when ring j is seen painted. The all-clear reading
// decodes to 0, which no sector paints.
func DecodeReading(reading uint8) int {
	return int(GrayDecode(uint(reading)))
}
