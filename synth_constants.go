// synth_constants.go - Register map, control bits and rate tables for the QuadSID core

package main

// Master timing. The synthesis datapath is clocked at 1 MHz and one full
// four-voice sequencer pass takes 16 clocks, which fixes the output sample
// rate. A pass must complete inside a single 16 microsecond sample period.
const (
	CLOCK_RATE        = 1000000
	CYCLES_PER_SAMPLE = 16
	SAMPLE_RATE       = CLOCK_RATE / CYCLES_PER_SAMPLE // 62500 Hz

	NUM_VOICES = 4
)

// Register file layout (memory-mapped at 0xD400-0xD41B).
// Seven registers per voice, in classic SID ordering.
const (
	SYNTH_BASE = 0xD400
	SYNTH_END  = SYNTH_BASE + SYNTH_REG_COUNT - 1

	REG_FREQ_LO = 0 // Frequency word low byte
	REG_FREQ_HI = 1 // Frequency word high byte
	REG_PW_LO   = 2 // Pulse width low byte
	REG_PW_HI   = 3 // Pulse width high nibble (bits 0-3 only)
	REG_CTRL    = 4 // Waveform-control byte
	REG_AD      = 5 // Attack (bits 4-7) / decay (bits 0-3)
	REG_SR      = 6 // Sustain (bits 4-7) / release (bits 0-3)

	VOICE_REG_STRIDE = 7
	SYNTH_REG_COUNT  = NUM_VOICES * VOICE_REG_STRIDE
)

// Waveform-control register bits.
const (
	CTRL_GATE     = 0x01 // Bit 0: gate (note held)
	CTRL_SYNC     = 0x02 // Bit 1: hard sync to the previous voice
	CTRL_RINGMOD  = 0x04 // Bit 2: ring modulation with the previous voice
	CTRL_SINE     = 0x08 // Bit 3: sine waveform
	CTRL_TRIANGLE = 0x10 // Bit 4: triangle waveform
	CTRL_SAWTOOTH = 0x20 // Bit 5: sawtooth waveform
	CTRL_PULSE    = 0x40 // Bit 6: pulse waveform
	CTRL_NOISE    = 0x80 // Bit 7: noise waveform

	CTRL_WAVE_MASK = CTRL_SINE | CTRL_TRIANGLE | CTRL_SAWTOOTH | CTRL_PULSE | CTRL_NOISE
)

// Noise LFSR parameters: 23-bit maximal-length shift register, taps 23 and 18.
// The register is seeded to all ones at reset and can never reach zero.
const (
	NOISE_LFSR_SEED = 0x7FFFFF
	NOISE_LFSR_MASK = 0x7FFFFF
)

// Envelope generator states.
const (
	ENV_IDLE = iota
	ENV_ATTACK
	ENV_DECAY
	ENV_SUSTAIN
	ENV_RELEASE
)

const ENV_LEVEL_MAX = 255

// Mixer: four voices summed, then arithmetic shift right by two so four
// full-scale voices recombine to exactly one full-scale output.
const MIXER_SHIFT = 2

// attackRatePeriods maps a 4-bit attack code to the number of sample periods
// between envelope increments. Derived from the classic 2ms-8s attack slopes
// at 62500 Hz (time = rate * 255 periods).
var attackRatePeriods = [16]uint16{
	1, 2, 4, 6, 9, 14, 17, 20,
	25, 61, 122, 195, 244, 733, 1221, 1953,
}

// decayReleaseRatePeriods is the shared decay/release table. Decay and release
// slopes are three times the attack slope for the same code.
var decayReleaseRatePeriods = [16]uint16{
	3, 6, 12, 18, 27, 42, 51, 60,
	75, 183, 366, 585, 732, 2199, 3663, 5859,
}

// sustainLevels replicates the 4-bit sustain code into both nibbles of the
// 8-bit envelope level (code 8 holds at 0x88).
var sustainLevels = [16]uint8{
	0x00, 0x11, 0x22, 0x33, 0x44, 0x55, 0x66, 0x77,
	0x88, 0x99, 0xAA, 0xBB, 0xCC, 0xDD, 0xEE, 0xFF,
}
