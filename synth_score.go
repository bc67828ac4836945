// synth_score.go - Sample-timestamped register score player and the demo tune

/*
A score is a list of register writes timestamped in sample periods. The player
applies every write that has come due before running the period's sequencer
pass, so scores replay with sample-exact timing regardless of the transport
pulling the audio. The built-in demo tune exercises all five waveforms plus
ring modulation and hard sync across the four voices.
*/

package main

import "sort"

// ScoreEvent is one timestamped write into the register file.
type ScoreEvent struct {
	Sample uint64
	Reg    uint8
	Value  uint8
}

// ScorePlayer replays a score against an engine while pulling samples from it.
type ScorePlayer struct {
	engine *SynthEngine
	events []ScoreEvent
	index  int
	sample uint64
	length uint64
	loop   bool
}

// NewScorePlayer creates a player for the given event list. Events must be
// ordered by sample timestamp. length is the total score length in sample
// periods; with loop set, playback restarts from the top when it is reached.
func NewScorePlayer(engine *SynthEngine, events []ScoreEvent, length uint64, loop bool) *ScorePlayer {
	return &ScorePlayer{
		engine: engine,
		events: events,
		length: length,
		loop:   loop,
	}
}

// NextSample applies all due register writes, then runs one sequencer pass.
func (p *ScorePlayer) NextSample() (int16, int16) {
	for p.index < len(p.events) && p.events[p.index].Sample <= p.sample {
		ev := p.events[p.index]
		p.engine.WriteRegister(ev.Reg, ev.Value)
		p.index++
	}

	p.sample++
	if p.sample >= p.length {
		if p.loop {
			p.sample = 0
			p.index = 0
		}
	}
	return p.engine.NextSample()
}

// Finished reports whether a non-looping score has played out.
func (p *ScorePlayer) Finished() bool {
	return !p.loop && p.sample >= p.length
}

// LengthSeconds returns the score length in seconds.
func (p *ScorePlayer) LengthSeconds() float64 {
	return float64(p.length) / SAMPLE_RATE
}

// Frequency words for the demo tune (word = f * 65536 / SAMPLE_RATE).
const (
	NOTE_A2 = 0x073
	NOTE_C3 = 0x089
	NOTE_E3 = 0x0AD
	NOTE_G3 = 0x0CE
	NOTE_A3 = 0x0E7
	NOTE_C4 = 0x112
	NOTE_E4 = 0x15A
	NOTE_G4 = 0x19B
	NOTE_A4 = 0x1CD
	NOTE_C5 = 0x225
	NOTE_E5 = 0x2B3
	NOTE_G5 = 0x336
)

// demoStep is a sixteenth of the demo bar: a quarter second per step.
const demoStep = SAMPLE_RATE / 4

type scoreBuilder struct {
	events []ScoreEvent
}

func (b *scoreBuilder) write(sample uint64, voice int, reg uint8, value uint8) {
	b.events = append(b.events, ScoreEvent{
		Sample: sample,
		Reg:    uint8(voice*VOICE_REG_STRIDE) + reg,
		Value:  value,
	})
}

func (b *scoreBuilder) setFreq(sample uint64, voice int, word uint16) {
	b.write(sample, voice, REG_FREQ_LO, uint8(word))
	b.write(sample, voice, REG_FREQ_HI, uint8(word>>8))
}

func (b *scoreBuilder) noteOn(sample uint64, voice int, word uint16, wave uint8) {
	b.setFreq(sample, voice, word)
	b.write(sample, voice, REG_CTRL, wave|CTRL_GATE)
}

func (b *scoreBuilder) noteOff(sample uint64, voice int, wave uint8) {
	b.write(sample, voice, REG_CTRL, wave)
}

// DemoScore builds the built-in four-voice demo tune: triangle bass, pulse
// lead arpeggio, sine pad, noise percussion, with a ring-modulated and a
// hard-synced phrase in the second half. Returns the events and the score
// length in sample periods.
func DemoScore() ([]ScoreEvent, uint64) {
	b := &scoreBuilder{}

	// Voice envelopes and pulse width, set once up front.
	b.write(0, 0, REG_AD, 0x28) // bass: fast attack, medium decay
	b.write(0, 0, REG_SR, 0xA6)
	b.write(0, 1, REG_AD, 0x09) // lead: instant attack, long decay
	b.write(0, 1, REG_SR, 0x85)
	b.write(0, 1, REG_PW_LO, 0x00)
	b.write(0, 1, REG_PW_HI, 0x08) // 50% duty
	b.write(0, 2, REG_AD, 0xA4) // pad: slow attack
	b.write(0, 2, REG_SR, 0xC8)
	b.write(0, 3, REG_AD, 0x02) // percussion: instant attack, short decay
	b.write(0, 3, REG_SR, 0x04)

	bass := []uint16{NOTE_A2, NOTE_A2, NOTE_C3, NOTE_E3}
	lead := []uint16{NOTE_A4, NOTE_C5, NOTE_E5, NOTE_C5, NOTE_A4, NOTE_E4, NOTE_G4, NOTE_C5}

	const steps = 32
	for step := 0; step < steps; step++ {
		at := uint64(step) * demoStep
		off := at + demoStep*3/4

		// Bass on every beat (4 steps), held for 3 steps.
		if step%4 == 0 {
			b.noteOn(at, 0, bass[(step/4)%len(bass)], CTRL_TRIANGLE)
			b.noteOff(at+demoStep*3, 0, CTRL_TRIANGLE)
		}

		// Lead waveform changes halfway: plain pulse in the first half,
		// ring-modulated triangle against the bass voice in the second.
		if step < steps/2 {
			b.noteOn(at, 1, lead[step%len(lead)], CTRL_PULSE)
			b.noteOff(off, 1, CTRL_PULSE)
		} else {
			b.noteOn(at, 1, lead[step%len(lead)], CTRL_TRIANGLE|CTRL_RINGMOD)
			b.noteOff(off, 1, CTRL_TRIANGLE|CTRL_RINGMOD)
		}

		// Pad chord root every two bars, hard-synced to the lead in the
		// second half for the classic tearing sweep.
		if step%16 == 0 {
			wave := uint8(CTRL_SINE)
			if step >= steps/2 {
				wave = CTRL_SAWTOOTH | CTRL_SYNC
			}
			b.noteOn(at, 2, NOTE_A3, wave)
			b.noteOff(at+demoStep*14, 2, wave)
		}

		// Noise hats on the off-beats.
		if step%2 == 1 {
			b.noteOn(at, 3, 0x2000, CTRL_NOISE)
			b.noteOff(at+demoStep/4, 3, CTRL_NOISE)
		}
	}

	sort.SliceStable(b.events, func(i, j int) bool {
		return b.events[i].Sample < b.events[j].Sample
	})
	return b.events, steps * demoStep
}
