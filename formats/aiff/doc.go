// SPDX-License-Identifier: EPL-2.0

// Package aiff decodes PCM 16-bit AIFF audio via
// github.com/go-audio/aiff.
//
// The Decoder exposes an AIFF file as an audio.Source of normalized
// float32 samples. Inputs that don't implement io.ReadSeeker are
// buffered in memory first, which go-audio requires for chunk
// navigation. Only 16-bit PCM files are accepted.
package aiff
