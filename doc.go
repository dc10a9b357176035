// Package codewheel generates printable Gray-code encoder wheels.
//
// A code wheel is a disk whose concentric rings encode an absolute angular
// position as a Gray code, read by a row of photo sensors. Each wheel is
// described by an [EncoderSpec]: ring count, sector boundary angles and an
// indicator angle. The package turns specs into vector drawings and composes
// wheels sharing a page name onto one A4 document.
//
// # Quick Start
//
//	g := codewheel.NewGenerator()
//	paths, err := g.WriteFiles(codewheel.DefaultEncoders(), "out")
//
// # Geometry
//
// Every wheel is drawn on a 100x100mm local canvas centered at (50, 50).
// Angles are in degrees, 0° pointing up and growing clockwise. The hub
// circle has radius [HubRadius]; ring j spans [HubRadius+j*RingPitch,
// HubRadius+(j+1)*RingPitch].
//
// # Encoding
//
// Sector i (0-based) carries position number i+1, including sector 0, and
// ring j of that sector is painted when bit j of [Gray](i+1) is set. Bits at
// or above the wheel's bit width are ignored. [DecodeReading] inverts this
// for a sensor reading.
//
// # Output
//
// Documents are recordings from package recording, written by any
// registered backend. The svg backend is always available; import
// recording/backends/raster for PNG proofs. No spec is validated; malformed
// input yields whatever geometry the formulas produce.
//
// # Logging
//
// codewheel is silent by default. See [SetLogger].
package codewheel
