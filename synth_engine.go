// synth_engine.go - 4-voice time-multiplexed synthesis engine and sequencer

/*
The engine owns the 28-byte register file and the four-slot voice bank, and
drives a single shared datapath across all four voices once per sample period.
Each pass runs six ordered phases per voice:

  Load      copy persistent state plus latched parameters into the working set
  Oscillate advance the phase accumulator, clock the noise LFSR on carry-out,
            apply hard sync, combine the selected waveforms
  Envelope  step the ADSR state machine with the gate bit from the control byte
  Multiply  scale the signed oscillator sample by the 8-bit envelope level
  Store     write the working set back to the voice's persistent slot
  Mix       after voice 3, sum the four stored outputs into the stereo pair

Register writes land under the engine mutex and are only observed by the
datapath at Load boundaries, so an in-progress pass always sees one consistent
parameter snapshot and can never tear a 16-bit frequency or pulse-width write.
*/

package main

import (
	"fmt"
	"sync"
)

// SynthEngine is the synthesis core. It produces one stereo int16 pair per
// call to NextSample and is silent until a voice is gated on.
type SynthEngine struct {
	mutex  sync.Mutex
	regs   [SYNTH_REG_COUNT]uint8
	voices [NUM_VOICES]Voice
	work   workingState

	sampleCount uint64
	output      AudioOutput
}

// NewSynthEngine creates an engine with all voices in their power-on state.
func NewSynthEngine() *SynthEngine {
	e := &SynthEngine{}
	e.resetLocked()
	return e
}

// AttachOutput connects an audio backend that will pull samples from the
// engine. Offline users (tests, WAV rendering) skip this and call NextSample
// directly.
func (e *SynthEngine) AttachOutput(backend int) error {
	output, err := NewAudioOutput(backend, SAMPLE_RATE, e)
	if err != nil {
		return fmt.Errorf("audio backend init: %w", err)
	}
	e.output = output
	return nil
}

// Start begins playback on the attached backend.
func (e *SynthEngine) Start() {
	if e.output != nil {
		e.output.Start()
	}
}

// Stop halts playback and closes the backend.
func (e *SynthEngine) Stop() {
	if e.output != nil {
		e.output.Stop()
		e.output.Close()
	}
}

// WriteRegister writes one byte into the register file. The value becomes
// visible to the datapath at the next Load-phase boundary.
func (e *SynthEngine) WriteRegister(reg uint8, value uint8) {
	if reg >= SYNTH_REG_COUNT {
		return
	}
	e.mutex.Lock()
	e.regs[reg] = value
	e.mutex.Unlock()
}

// ReadRegister returns the current register file contents.
func (e *SynthEngine) ReadRegister(reg uint8) uint8 {
	if reg >= SYNTH_REG_COUNT {
		return 0
	}
	e.mutex.Lock()
	defer e.mutex.Unlock()
	return e.regs[reg]
}

// HandleRegisterWrite processes a write through the memory-mapped window.
func (e *SynthEngine) HandleRegisterWrite(addr uint32, value uint32) {
	if addr < SYNTH_BASE || addr > SYNTH_END {
		return
	}
	e.WriteRegister(uint8(addr-SYNTH_BASE), uint8(value))
}

// HandleRegisterRead processes a read through the memory-mapped window.
func (e *SynthEngine) HandleRegisterRead(addr uint32) uint32 {
	if addr < SYNTH_BASE || addr > SYNTH_END {
		return 0
	}
	return uint32(e.ReadRegister(uint8(addr - SYNTH_BASE)))
}

// Reset reinitializes the register file, all four voices and the sequencer
// atomically, as the global reset line does.
func (e *SynthEngine) Reset() {
	e.mutex.Lock()
	defer e.mutex.Unlock()
	e.resetLocked()
}

func (e *SynthEngine) resetLocked() {
	for i := range e.regs {
		e.regs[i] = 0
	}
	for i := range e.voices {
		e.voices[i].reset()
	}
	e.work = workingState{}
	e.sampleCount = 0
}

// NextSample runs one full sequencer pass and returns the period's stereo
// output pair. This is the "sample needed" entry point the audio transport
// pulses once per frame.
func (e *SynthEngine) NextSample() (int16, int16) {
	e.mutex.Lock()
	defer e.mutex.Unlock()

	for v := 0; v < NUM_VOICES; v++ {
		e.seqLoad(v)
		e.seqOscillate()
		e.seqEnvelope()
		e.seqMultiply()
		e.seqStore()
	}
	e.sampleCount++
	return e.seqMix()
}

// seqLoad copies voice v's persistent state into the working set and decodes
// its parameters from the register file. The previous voice's accumulator and
// carry-out are captured here for ring modulation and hard sync; because the
// bank is walked in index order, voices 1-3 see their neighbor's state from
// the current period and voice 0 sees voice 3's from the previous one, the
// same view the shared hardware datapath had.
func (e *SynthEngine) seqLoad(v int) {
	base := v * VOICE_REG_STRIDE
	voice := &e.voices[v]
	neighbor := &e.voices[(v+NUM_VOICES-1)%NUM_VOICES]

	e.work = workingState{
		voice:      v,
		freq:       uint16(e.regs[base+REG_FREQ_LO]) | uint16(e.regs[base+REG_FREQ_HI])<<8,
		pulseWidth: uint16(e.regs[base+REG_PW_LO]) | uint16(e.regs[base+REG_PW_HI]&0x0F)<<8,
		ctrl:       e.regs[base+REG_CTRL],
		attack:     e.regs[base+REG_AD] >> 4,
		decay:      e.regs[base+REG_AD] & 0x0F,
		sustain:    e.regs[base+REG_SR] >> 4,
		release:    e.regs[base+REG_SR] & 0x0F,

		neighborPhase:    neighbor.phase,
		neighborOverflow: neighbor.overflow,

		phase:   voice.phase,
		noiseSR: voice.noiseSR,
		env:     voice.env,
	}
}

// seqOscillate advances the phase accumulator and computes the combined
// waveform sample. The noise register is clocked exactly once, and only when
// the accumulator carried out this period, tying noise color to pitch. Hard
// sync resets the accumulator after the advance when the neighbor overflowed.
func (e *SynthEngine) seqOscillate() {
	w := &e.work
	w.phase, w.overflow = advancePhase(w.phase, w.freq)
	if w.overflow {
		w.noiseSR = stepNoise(w.noiseSR)
	}
	if w.ctrl&CTRL_SYNC != 0 && w.neighborOverflow {
		w.phase = 0
	}
	w.osc = oscToSigned(combineWaveforms(w.ctrl, w.phase, w.neighborPhase, w.pulseWidth, w.noiseSR))
}

// seqEnvelope steps the voice's ADSR state machine with the gate bit
// extracted from the control byte.
func (e *SynthEngine) seqEnvelope() {
	w := &e.work
	w.env.Step(w.ctrl&CTRL_GATE != 0, w.attack, w.decay, w.sustain, w.release)
}

// seqMultiply scales the signed 16-bit oscillator sample by the unsigned
// 8-bit envelope level, keeping the middle byte-aligned slice of the product:
// (osc * env) >> 8.
func (e *SynthEngine) seqMultiply() {
	w := &e.work
	w.out = int16((int32(w.osc) * int32(w.env.Level())) >> 8)
}

// seqStore writes the working set back into the voice's persistent slot.
func (e *SynthEngine) seqStore() {
	v := &e.voices[e.work.voice]
	v.phase = e.work.phase
	v.noiseSR = e.work.noiseSR
	v.env = e.work.env
	v.overflow = e.work.overflow
	v.lastOutput = e.work.out
}

// seqMix combines the four stored voice outputs into the period's stereo pair.
func (e *SynthEngine) seqMix() (int16, int16) {
	return mixVoices(&e.voices)
}

// EnvelopeLevel returns the current envelope amplitude of a voice.
func (e *SynthEngine) EnvelopeLevel(voice int) uint8 {
	if voice < 0 || voice >= NUM_VOICES {
		return 0
	}
	e.mutex.Lock()
	defer e.mutex.Unlock()
	return e.voices[voice].env.Level()
}

// VoiceOutput returns a voice's most recently computed sample.
func (e *SynthEngine) VoiceOutput(voice int) int16 {
	if voice < 0 || voice >= NUM_VOICES {
		return 0
	}
	e.mutex.Lock()
	defer e.mutex.Unlock()
	return e.voices[voice].lastOutput
}

// SampleCount returns the number of completed sequencer passes since reset.
func (e *SynthEngine) SampleCount() uint64 {
	e.mutex.Lock()
	defer e.mutex.Unlock()
	return e.sampleCount
}
