// SPDX-License-Identifier: EPL-2.0

// Package mp3 decodes MP3 audio via github.com/hajimehoshi/go-mp3.
//
// The Decoder wraps a go-mp3 stream and exposes it as an audio.Source
// producing normalized float32 samples:
//
//	decoder := mp3.Decoder{}
//	f, _ := os.Open("audio.mp3")
//	src, err := decoder.Decode(f)
//
// Output is always two-channel interleaved at the sample rate of the
// source file (go-mp3 upmixes mono input). MP3 encoding is not
// supported; this package only reads.
package mp3
