// synth_voice.go - Persistent voice state and the shared working register set

package main

// Voice is one of the four persistent state slots of the voice bank. It holds
// everything that survives between sample periods; parameters live in the
// engine's register file and are latched into the working set at Load time.
type Voice struct {
	phase      uint32 // 32-bit phase accumulator, wraps modulo 2^32
	noiseSR    uint32 // 23-bit noise shift register, never zero
	env        Envelope
	overflow   bool  // phase carry-out from this voice's most recent pass
	lastOutput int16 // most recent enveloped sample, read by the mixer
}

// reset returns the voice to its power-on state.
func (v *Voice) reset() {
	v.phase = 0
	v.noiseSR = NOISE_LFSR_SEED
	v.env.Reset()
	v.overflow = false
	v.lastOutput = 0
}

// workingState is the single shared datapath register set. The sequencer
// copies one voice's state and parameters in at Load, runs the oscillator,
// envelope and multiplier against it, and copies the results back at Store.
// Exactly one voice occupies it at any point in a pass; voices never alias.
type workingState struct {
	voice int

	// Parameters latched from the register file
	freq       uint16
	pulseWidth uint16
	ctrl       uint8
	attack     uint8
	decay      uint8
	sustain    uint8
	release    uint8

	// Neighbor state captured at Load for ring modulation and hard sync
	neighborPhase    uint32
	neighborOverflow bool

	// Datapath state
	phase    uint32
	noiseSR  uint32
	env      Envelope
	overflow bool
	osc      int16
	out      int16
}
