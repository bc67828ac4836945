// synth_mixer_test.go - Stereo sum-and-shift mixer tests

package main

import "testing"

func mixOf(a, b, c, d int16) (int16, int16) {
	var voices [NUM_VOICES]Voice
	voices[0].lastOutput = a
	voices[1].lastOutput = b
	voices[2].lastOutput = c
	voices[3].lastOutput = d
	return mixVoices(&voices)
}

func TestMixer_SumShiftCases(t *testing.T) {
	cases := []struct {
		in   [NUM_VOICES]int16
		want int16
	}{
		{[NUM_VOICES]int16{0, 0, 0, 0}, 0},
		{[NUM_VOICES]int16{32752, 32752, 32752, 32752}, 32752},
		{[NUM_VOICES]int16{-32768, -32768, -32768, -32768}, -32768},
		{[NUM_VOICES]int16{100, -100, 50, -50}, 0},
		{[NUM_VOICES]int16{1000, 0, 0, 0}, 250},
		{[NUM_VOICES]int16{-1000, 0, 0, 0}, -250},
		{[NUM_VOICES]int16{3, 0, 0, 0}, 0}, // arithmetic shift floors toward -inf
		{[NUM_VOICES]int16{-3, 0, 0, 0}, -1},
	}
	for _, c := range cases {
		l, r := mixOf(c.in[0], c.in[1], c.in[2], c.in[3])
		if l != c.want || r != c.want {
			t.Errorf("mix(%v) = (%d, %d), want (%d, %d)", c.in, l, r, c.want, c.want)
		}
	}
}

func TestMixer_NeverOverflows(t *testing.T) {
	// Four full-scale inputs sum to at most 4*32767 in the 32-bit accumulator
	// and the shift brings the result back inside int16 for every sign mix.
	extremes := []int16{-32768, 32767}
	for _, a := range extremes {
		for _, b := range extremes {
			for _, c := range extremes {
				for _, d := range extremes {
					l, r := mixOf(a, b, c, d)
					if l != r {
						t.Fatalf("channels diverged: %d vs %d", l, r)
					}
					want := int16((int32(a) + int32(b) + int32(c) + int32(d)) >> MIXER_SHIFT)
					if l != want {
						t.Errorf("mix(%d,%d,%d,%d) = %d, want %d", a, b, c, d, l, want)
					}
				}
			}
		}
	}
}
