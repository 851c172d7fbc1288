// SPDX-License-Identifier: EPL-2.0

package mp3wav_test

import (
	"fmt"
	"log"
	"os"

	"github.com/swhelan123/mp3wav"
)

// ExampleConverter demonstrates batch conversion of a directory:
// every .mp3 file becomes a .wav file next to it.
func ExampleConverter() {
	conv := mp3wav.NewConverter(os.Stdout)

	results, err := conv.ConvertDir("assets/audio")
	if err != nil {
		log.Fatal(err)
	}

	for _, res := range results {
		fmt.Printf("%s -> %s: %s\n", res.Source, res.Output, res.Outcome)
	}
}

// ExampleConvert demonstrates converting a single file, preserving
// the source's sample rate and channel count.
func ExampleConvert() {
	if err := mp3wav.Convert("input.mp3", "output.wav"); err != nil {
		log.Fatal(err)
	}
}

// ExampleConvertWith demonstrates resampling to telephony-grade mono
// while converting.
func ExampleConvertWith() {
	err := mp3wav.ConvertWith("input.mp3", "output.wav", mp3wav.Options{
		SampleRate: 8000,
		Mono:       true,
	})
	if err != nil {
		log.Fatal(err)
	}
}
