// synth_envelope.go - Per-voice ADSR envelope state machine

/*
Each voice carries a five-state envelope generator (Idle, Attack, Decay,
Sustain, Release) producing an 8-bit amplitude. The generator is stepped once
per sample period; a rate counter gates how many periods pass between
single-unit level changes, with the period looked up from the attack or the
shared decay/release table by the voice's 4-bit rate code.

Gate transitions take priority over the per-state step: a rising gate edge
(or a gate held high while Idle) always enters Attack, a falling edge always
enters Release. Neither edge touches the envelope level itself, so a re-attack
during Release continues rising from wherever the release had decayed to.
*/

package main

// Envelope is the per-voice ADSR state machine.
type Envelope struct {
	state    int
	level    uint8
	counter  uint16
	gatePrev bool
}

// Reset returns the envelope to the power-on state: Idle, level zero.
func (e *Envelope) Reset() {
	e.state = ENV_IDLE
	e.level = 0
	e.counter = 0
	e.gatePrev = false
}

// Step advances the envelope by one sample period. Rate codes are 4-bit;
// wider values are masked down, so the fastest table entry doubles as the
// defensive fallback for out-of-range codes.
func (e *Envelope) Step(gate bool, attack, decay, sustain, release uint8) {
	switch {
	case gate && (!e.gatePrev || e.state == ENV_IDLE):
		e.state = ENV_ATTACK
		e.counter = 0
	case !gate && e.gatePrev:
		e.state = ENV_RELEASE
		e.counter = 0
	default:
		switch e.state {
		case ENV_IDLE:
			e.level = 0
		case ENV_ATTACK:
			if e.level == ENV_LEVEL_MAX {
				e.state = ENV_DECAY
				e.counter = 0
			} else if e.tick(attackRatePeriods[attack&0x0F]) {
				e.level++
			}
		case ENV_DECAY:
			if e.level <= sustainLevels[sustain&0x0F] {
				e.state = ENV_SUSTAIN
			} else if e.tick(decayReleaseRatePeriods[decay&0x0F]) {
				e.level--
			}
		case ENV_SUSTAIN:
			e.level = sustainLevels[sustain&0x0F]
		case ENV_RELEASE:
			if e.level == 0 {
				e.state = ENV_IDLE
			} else if e.tick(decayReleaseRatePeriods[release&0x0F]) {
				e.level--
			}
		}
	}
	e.gatePrev = gate
}

// tick advances the rate counter and reports whether an envelope step is due
// this period. The counter resets when it reaches period-1, so a period of 1
// steps every sample.
func (e *Envelope) tick(period uint16) bool {
	if e.counter >= period-1 {
		e.counter = 0
		return true
	}
	e.counter++
	return false
}

// Level returns the current 8-bit envelope amplitude.
func (e *Envelope) Level() uint8 {
	return e.level
}
