// synth_mixer.go - Four-voice output mixer

package main

// mixVoices sign-extends the four voices' most recent samples, sums them and
// arithmetic-shifts right by two, so four full-scale voices recombine to
// exactly one full-scale output with no overflow or clipping. The scaled sum
// is emitted identically on both stereo channels.
func mixVoices(voices *[NUM_VOICES]Voice) (left, right int16) {
	var sum int32
	for i := range voices {
		sum += int32(voices[i].lastOutput)
	}
	s := int16(sum >> MIXER_SHIFT)
	return s, s
}
