// SPDX-License-Identifier: EPL-2.0

// Package audio defines the core audio streaming primitives used by the
// converter.
//
// A Source is a stream of interleaved float32 PCM samples in [-1, 1].
// Format decoders (see the formats subpackages) produce Sources; the
// processing stages in this package consume and transform them:
//
//   - Resampler converts a Source to a different sample rate using
//     cubic interpolation.
//   - MonoMixer downmixes a multi-channel Source to mono.
//   - Collect16 drains a Source into 16-bit PCM ready for encoding.
//
// Stages compose by wrapping, so a pipeline is built by chaining
// constructors:
//
//	src, _ := decoder.Decode(file)
//	mono := audio.NewMonoMixer(audio.NewResampler(src, 8000))
//	pcm, err := audio.Collect16(mono, 4096)
//
// The Registry maps source-format extensions to decoders so callers
// can select a decoder from a filename.
package audio
