// audio_output.go - Audio backend interface and factory

package main

import "fmt"

// Audio backend selection for NewAudioOutput.
const (
	AUDIO_BACKEND_NONE = iota
	AUDIO_BACKEND_OTO
)

// SampleSource produces one stereo sample pair per call. The transport pulls
// a pair once per output frame; a full sequencer pass must complete before
// the next pull.
type SampleSource interface {
	NextSample() (left, right int16)
}

// AudioOutput is implemented by all audio playback backends.
type AudioOutput interface {
	Start()
	Stop()
	Close()
}

// NewAudioOutput creates the requested playback backend.
func NewAudioOutput(backend int, sampleRate int, src SampleSource) (AudioOutput, error) {
	switch backend {
	case AUDIO_BACKEND_NONE:
		return &NullOutput{}, nil
	case AUDIO_BACKEND_OTO:
		return NewOtoPlayer(sampleRate, src)
	default:
		return nil, fmt.Errorf("unknown audio backend %d", backend)
	}
}

// NullOutput discards all output. Used for offline rendering and tests.
type NullOutput struct{}

func (n *NullOutput) Start() {}
func (n *NullOutput) Stop()  {}
func (n *NullOutput) Close() {}
