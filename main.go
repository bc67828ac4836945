// main.go - Command line front-end for the QuadSID synthesizer core

package main

import (
	"flag"
	"fmt"
	"os"
	"time"
)

func main() {
	flagSet := flag.NewFlagSet(os.Args[0], flag.ContinueOnError)
	var (
		wavPath string
		seconds float64
		live    bool
		loop    bool
	)
	flagSet.StringVar(&wavPath, "wav", "", "render the demo tune to a WAV file instead of playing it")
	flagSet.Float64Var(&seconds, "seconds", 0, "duration to play/render (default: one pass of the demo tune)")
	flagSet.BoolVar(&live, "live", false, "interactive keyboard mode (raw terminal)")
	flagSet.BoolVar(&loop, "loop", false, "loop the demo tune until interrupted")

	if err := flagSet.Parse(os.Args[1:]); err != nil {
		if err == flag.ErrHelp {
			return
		}
		os.Exit(2)
	}

	fmt.Printf("QuadSID 4-voice synthesizer core (%d Hz)\n", SAMPLE_RATE)

	engine := NewSynthEngine()

	if live {
		if err := runLive(engine); err != nil {
			fmt.Fprintf(os.Stderr, "live mode: %v\n", err)
			os.Exit(1)
		}
		return
	}

	events, length := DemoScore()
	player := NewScorePlayer(engine, events, length, loop)
	if seconds == 0 {
		seconds = player.LengthSeconds()
	}

	if wavPath != "" {
		if err := RenderWAV(player, wavPath, seconds); err != nil {
			fmt.Fprintf(os.Stderr, "render: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("rendered %.1fs to %s\n", seconds, wavPath)
		return
	}

	output, err := NewAudioOutput(AUDIO_BACKEND_OTO, SAMPLE_RATE, player)
	if err != nil {
		fmt.Fprintf(os.Stderr, "audio: %v\n", err)
		os.Exit(1)
	}
	output.Start()
	defer output.Close()

	if loop {
		fmt.Println("playing demo tune (looping, Ctrl-C to stop)")
		select {}
	}
	fmt.Printf("playing demo tune (%.1fs)\n", seconds)
	time.Sleep(time.Duration(seconds * float64(time.Second)))
}

func runLive(engine *SynthEngine) error {
	if err := engine.AttachOutput(AUDIO_BACKEND_OTO); err != nil {
		return err
	}
	engine.Start()
	defer engine.Stop()
	return RunLiveKeyboard(engine)
}
