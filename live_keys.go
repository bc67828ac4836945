// live_keys.go - Interactive keyboard mode on a raw terminal

package main

import (
	"fmt"
	"os"

	"golang.org/x/term"
)

// liveVoice is the voice played from the keyboard.
const liveVoice = 0

var liveKeyNotes = map[byte]uint16{
	'a': NOTE_C4,
	's': 0x134, // D4
	'd': NOTE_E4,
	'f': 0x16E, // F4
	'g': NOTE_G4,
	'h': NOTE_A4,
	'j': 0x206, // B4
	'k': NOTE_C5,
}

var liveWaveKeys = map[byte]uint8{
	'1': CTRL_SINE,
	'2': CTRL_TRIANGLE,
	'3': CTRL_SAWTOOTH,
	'4': CTRL_PULSE,
	'5': CTRL_NOISE,
}

// RunLiveKeyboard puts the terminal in raw mode and maps the home row to
// notes on voice 0. Number keys 1-5 select the waveform, space releases the
// gate, q quits. The engine's audio backend must already be running.
func RunLiveKeyboard(engine *SynthEngine) error {
	fd := int(os.Stdin.Fd())
	old, err := term.MakeRaw(fd)
	if err != nil {
		return fmt.Errorf("raw terminal: %w", err)
	}
	defer term.Restore(fd, old)

	fmt.Print("live mode: a-k play, 1-5 waveform, space release, q quit\r\n")

	base := uint8(liveVoice * VOICE_REG_STRIDE)
	engine.WriteRegister(base+REG_AD, 0x16) // attack 1, decay 6
	engine.WriteRegister(base+REG_SR, 0xA7) // sustain 10, release 7
	engine.WriteRegister(base+REG_PW_LO, 0x00)
	engine.WriteRegister(base+REG_PW_HI, 0x08)

	wave := uint8(CTRL_PULSE)
	buf := make([]byte, 1)
	for {
		n, err := os.Stdin.Read(buf)
		if err != nil {
			return err
		}
		if n == 0 {
			continue
		}

		key := buf[0]
		switch {
		case key == 'q' || key == 3: // q or Ctrl-C
			engine.WriteRegister(base+REG_CTRL, wave)
			return nil
		case key == ' ':
			engine.WriteRegister(base+REG_CTRL, wave)
		default:
			if w, ok := liveWaveKeys[key]; ok {
				wave = w
				continue
			}
			note, ok := liveKeyNotes[key]
			if !ok {
				continue
			}
			// Retrigger: drop the gate before the new note so a held
			// envelope releases into the fresh attack.
			engine.WriteRegister(base+REG_CTRL, wave)
			engine.WriteRegister(base+REG_FREQ_LO, uint8(note))
			engine.WriteRegister(base+REG_FREQ_HI, uint8(note>>8))
			engine.WriteRegister(base+REG_CTRL, wave|CTRL_GATE)
		}
	}
}
