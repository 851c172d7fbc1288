// SPDX-License-Identifier: EPL-2.0

// Package vorbis decodes Ogg Vorbis audio via
// github.com/jfreymuth/oggvorbis.
//
// The Decoder exposes a Vorbis stream as an audio.Source of
// interleaved float32 samples. Channel count and sample rate come
// from the stream headers. Encoding is not supported.
package vorbis
