//go:build headless

// audio_backend_headless.go - No-op audio backend for headless builds

package main

func NewOtoPlayer(sampleRate int, src SampleSource) (AudioOutput, error) {
	return &NullOutput{}, nil
}
