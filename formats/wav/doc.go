// SPDX-License-Identifier: EPL-2.0

// Package wav reads and writes PCM 16-bit WAV files.
//
// # Decoding
//
// The Decoder handles canonical WAV files (RIFF header, fmt chunk,
// data chunk) and exposes them as an audio.Source of normalized
// float32 samples:
//
//	decoder := wav.Decoder{}
//	f, _ := os.Open("audio.wav")
//	src, err := decoder.Decode(f)
//
// Only uncompressed 16-bit PCM is supported; other layouts fail with
// one of the package sentinel errors (ErrNotWavFile,
// ErrOnlyPCM16bitSupported, ErrUnsupportedWavLayout,
// ErrUnsupportedWavChunks).
//
// # Encoding
//
// Encode writes interleaved 16-bit PCM through the
// github.com/go-audio/wav encoder:
//
//	f, _ := os.Create("output.wav")
//	err := wav.Encode(f, 44100, 2, pcm)
//
// The destination must be an io.WriteSeeker because the encoder
// patches the RIFF chunk sizes when it finishes. Writing to an
// existing file replaces its contents.
package wav
