// synth_wave.go - Oscillator phase accumulation and the five waveform generators

/*
Each voice owns a 32-bit phase accumulator that advances by frequency<<16 once
per sample period and wraps silently; the carry out of the top bit is the
noise clock and the hard-sync trigger. The waveform generators are pure
functions of the accumulator (plus pulse width, the neighbor's accumulator for
ring modulation, and the noise shift register) and each produces a 12-bit
unsigned sample. Selecting several waveforms at once ANDs their outputs
together, reproducing the combined-waveform behavior of the original datapath
rather than summing.
*/

package main

// advancePhase returns the accumulator advanced by one sample period of the
// given frequency word, and whether the addition carried out of 32 bits.
// Wraparound is modulo 2^32 with no saturation.
func advancePhase(phase uint32, freq uint16) (uint32, bool) {
	sum := uint64(phase) + uint64(freq)<<16
	return uint32(sum), sum > 0xFFFFFFFF
}

// stepNoise advances the 23-bit LFSR one step (taps 23 and 18, feedback into
// bit 0). Starting from a non-zero state the register walks a fixed
// maximal-length sequence of 2^23-1 states and never reaches zero.
func stepNoise(sr uint32) uint32 {
	bit := ((sr >> 22) ^ (sr >> 17)) & 1
	return ((sr << 1) | bit) & NOISE_LFSR_MASK
}

// sawtoothSample is the top 12 bits of the accumulator.
func sawtoothSample(phase uint32) uint16 {
	return uint16(phase >> 20)
}

// triangleSample folds the top 13 bits of the accumulator around the sign
// bit: phase[30:20] on the rising half, 0xFFF minus that on the falling half.
// With ring modulation enabled the fold bit is XORed with the neighbor
// voice's top phase bit.
func triangleSample(phase, neighborPhase uint32, ringMod bool) uint16 {
	fold := phase >> 31
	if ringMod {
		fold ^= neighborPhase >> 31
	}
	v := uint16((phase >> 20) & 0x7FF)
	if fold != 0 {
		return 0xFFF - v
	}
	return v
}

// pulseSample is a 12-bit comparator: all ones while the top 12 phase bits
// are at or above the pulse width, all zeros below it.
func pulseSample(phase uint32, pulseWidth uint16) uint16 {
	if uint16(phase>>20) >= pulseWidth&0xFFF {
		return 0xFFF
	}
	return 0x000
}

// noiseSample taps eight bits of the shift register (22,20,16,13,11,7,4,2)
// and left-packs them into bits 11-4 of the 12-bit sample.
func noiseSample(sr uint32) uint16 {
	return uint16(((sr & 0x400000) >> 11) |
		((sr & 0x100000) >> 10) |
		((sr & 0x010000) >> 7) |
		((sr & 0x002000) >> 5) |
		((sr & 0x000800) >> 4) |
		((sr & 0x000080) >> 1) |
		((sr & 0x000010) << 1) |
		((sr & 0x000004) << 2))
}

// sineSample looks up the quarter-wave table with phase bits 29-25 and
// mirrors it into one of four quadrants selected by the top two phase bits.
func sineSample(phase uint32) uint16 {
	lut := sineQuarterLUT[(phase>>25)&0x1F]
	switch phase >> 30 {
	case 0:
		return 2048 + lut
	case 1:
		return 4095 - lut
	case 2:
		return 2048 - lut
	default:
		return 1 + lut
	}
}

// combineWaveforms ANDs together the 12-bit outputs of every selected
// waveform. Unselected waveforms contribute the identity 0xFFF; with no
// waveform selected the output is zero.
func combineWaveforms(ctrl uint8, phase, neighborPhase uint32, pulseWidth uint16, noiseSR uint32) uint16 {
	if ctrl&CTRL_WAVE_MASK == 0 {
		return 0
	}
	out := uint16(0xFFF)
	if ctrl&CTRL_SINE != 0 {
		out &= sineSample(phase)
	}
	if ctrl&CTRL_TRIANGLE != 0 {
		out &= triangleSample(phase, neighborPhase, ctrl&CTRL_RINGMOD != 0)
	}
	if ctrl&CTRL_SAWTOOTH != 0 {
		out &= sawtoothSample(phase)
	}
	if ctrl&CTRL_PULSE != 0 {
		out &= pulseSample(phase, pulseWidth)
	}
	if ctrl&CTRL_NOISE != 0 {
		out &= noiseSample(noiseSR)
	}
	return out
}

// oscToSigned maps a 12-bit unsigned waveform sample onto the signed 16-bit
// range: (s << 4) - 0x8000.
func oscToSigned(s uint16) int16 {
	return int16(int32(s)<<4 - 0x8000)
}
