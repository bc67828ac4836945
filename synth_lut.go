// synth_lut.go - Quarter-wave sine lookup table

package main

// sineQuarterLUT holds the first quarter of a sine cycle with 11-bit
// amplitude: lut[i] = round(2047 * sin(i*pi/64)). The other three quadrants
// are mirrored from this table by the sine waveform generator, producing a
// full cycle centered on 0x800. Table entries are part of the observable
// output contract and must not be regenerated with different rounding.
var sineQuarterLUT = [32]uint16{
	0x000, 0x064, 0x0C9, 0x12C, 0x18F, 0x1F1, 0x252, 0x2B2,
	0x30F, 0x36B, 0x3C5, 0x41C, 0x471, 0x4C3, 0x513, 0x55F,
	0x5A7, 0x5ED, 0x62E, 0x66C, 0x6A6, 0x6DC, 0x70D, 0x73A,
	0x763, 0x787, 0x7A7, 0x7C2, 0x7D8, 0x7E9, 0x7F5, 0x7FD,
}
