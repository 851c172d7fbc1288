// SPDX-License-Identifier: EPL-2.0

package mp3wav

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/swhelan123/mp3wav/audio"
	"github.com/swhelan123/mp3wav/formats/aiff"
	"github.com/swhelan123/mp3wav/formats/mp3"
	"github.com/swhelan123/mp3wav/formats/vorbis"
	"github.com/swhelan123/mp3wav/formats/wav"
)

// DefaultBufferSize is the number of float32 samples read per
// pipeline call when Options.BufferSize is zero.
const DefaultBufferSize = 4096

// Options controls a single conversion. The zero value preserves the
// source's sample rate and channel count, matching the default export
// behavior of the batch converter.
type Options struct {
	// SampleRate resamples the output to the given rate when
	// non-zero.
	SampleRate int

	// Mono downmixes multi-channel sources to one channel.
	Mono bool

	// BufferSize overrides DefaultBufferSize when positive.
	BufferSize int
}

// DefaultRegistry returns a registry with every built-in decoder
// registered under its usual extension.
func DefaultRegistry() *audio.Registry {
	reg := audio.NewRegistry()
	reg.Register("wav", wav.Decoder{})
	reg.Register("mp3", mp3.Decoder{})
	reg.Register("ogg", vorbis.Decoder{})
	reg.Register("aiff", aiff.Decoder{})
	return reg
}

// Convert decodes srcPath (decoder chosen by file extension) and
// writes it to dstPath as a 16-bit PCM WAV file, preserving sample
// rate and channel count. An existing file at dstPath is overwritten.
func Convert(srcPath, dstPath string) error {
	return ConvertWith(srcPath, dstPath, Options{})
}

// ConvertWith is Convert with explicit Options.
//
// Decode failures are reported wrapping ErrDecode; a missing source
// file surfaces as fs.ErrNotExist; an unregistered extension as
// ErrUnsupportedFormat.
func ConvertWith(srcPath, dstPath string, opts Options) error {
	return convertWith(DefaultRegistry(), srcPath, dstPath, opts)
}

func convertWith(reg *audio.Registry, srcPath, dstPath string, opts Options) error {
	dec, ok := reg.Get(filepath.Ext(srcPath))
	if !ok {
		return fmt.Errorf("%s: %w", srcPath, ErrUnsupportedFormat)
	}

	f, err := os.Open(srcPath)
	if err != nil {
		return fmt.Errorf("%w", err)
	}
	defer f.Close()

	src, err := dec.Decode(f)
	if err != nil {
		return fmt.Errorf("%s: %w: %w", srcPath, ErrDecode, err)
	}
	defer src.Close()

	// Pipeline: decode -> (resample) -> (mono) -> collect
	stream := audio.Source(src)
	rate := stream.SampleRate()
	if opts.SampleRate > 0 && opts.SampleRate != rate {
		stream = audio.NewResampler(stream, opts.SampleRate)
		rate = opts.SampleRate
	}

	channels := stream.Channels()
	if opts.Mono && channels > 1 {
		stream = audio.NewMonoMixer(stream)
		channels = 1
	}

	bufSize := opts.BufferSize
	if bufSize <= 0 {
		bufSize = DefaultBufferSize
	}
	// Reads must cover whole frames
	if rem := bufSize % channels; rem != 0 {
		bufSize -= rem
	}

	pcm, err := audio.Collect16(stream, bufSize)
	if err != nil {
		return fmt.Errorf("%s: %w: %w", srcPath, ErrDecode, err)
	}

	out, err := os.Create(dstPath)
	if err != nil {
		return fmt.Errorf("%w", err)
	}

	if err := wav.Encode(out, rate, channels, pcm); err != nil {
		out.Close()
		return fmt.Errorf("%s: %w", dstPath, err)
	}

	if err := out.Close(); err != nil {
		return fmt.Errorf("%s: %w", dstPath, err)
	}

	return nil
}
