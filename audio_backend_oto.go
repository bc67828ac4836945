//go:build !headless

// audio_backend_oto.go - OTO v3 audio output implementation

package main

import (
	"sync"

	"github.com/ebitengine/oto/v3"
)

// OtoPlayer streams the engine's stereo int16 output through an oto context.
// Each Read callback from oto is the transport's "sample needed" pulse: it
// pulls one sequencer pass per output frame.
type OtoPlayer struct {
	ctx     *oto.Context
	player  *oto.Player
	src     SampleSource
	started bool
	mutex   sync.Mutex
}

func NewOtoPlayer(sampleRate int, src SampleSource) (AudioOutput, error) {
	op := &oto.NewContextOptions{
		SampleRate:   sampleRate,
		ChannelCount: 2,
		Format:       oto.FormatSignedInt16LE,
	}

	ctx, ready, err := oto.NewContext(op)
	if err != nil {
		return nil, err
	}
	<-ready

	return &OtoPlayer{
		ctx: ctx,
		src: src,
	}, nil
}

// Read fills p with little-endian stereo int16 frames pulled from the source.
func (op *OtoPlayer) Read(p []byte) (n int, err error) {
	frames := len(p) / 4
	for i := 0; i < frames; i++ {
		l, r := op.src.NextSample()
		lo, ro := uint16(l), uint16(r)
		p[i*4] = byte(lo)
		p[i*4+1] = byte(lo >> 8)
		p[i*4+2] = byte(ro)
		p[i*4+3] = byte(ro >> 8)
	}
	for i := frames * 4; i < len(p); i++ {
		p[i] = 0
	}
	return len(p), nil
}

func (op *OtoPlayer) Start() {
	op.mutex.Lock()
	defer op.mutex.Unlock()

	if !op.started {
		if op.player == nil {
			op.player = op.ctx.NewPlayer(op)
		}
		op.player.Play()
		op.started = true
	}
}

func (op *OtoPlayer) Stop() {
	op.mutex.Lock()
	defer op.mutex.Unlock()

	if op.started && op.player != nil {
		op.player.Pause()
		op.started = false
	}
}

func (op *OtoPlayer) Close() {
	op.Stop()
	op.mutex.Lock()
	defer op.mutex.Unlock()

	if op.player != nil {
		op.player.Close()
		op.player = nil
	}
}
