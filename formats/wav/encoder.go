// SPDX-License-Identifier: EPL-2.0

package wav

import (
	"fmt"
	"io"

	goaudio "github.com/go-audio/audio"
	gowav "github.com/go-audio/wav"
)

// Encode writes interleaved 16-bit PCM as a WAV file using the
// go-audio encoder. The writer must seek so the RIFF sizes can be
// patched on close; an *os.File qualifies. Existing content at the
// destination is overwritten by the caller creating the file.
func Encode(ws io.WriteSeeker, sampleRate, channels int, pcm []int16) error {
	if channels < 1 {
		return ErrInvalidChannelCount
	}

	enc := gowav.NewEncoder(ws, sampleRate, 16, channels, 1)

	format := &goaudio.Format{
		NumChannels: channels,
		SampleRate:  sampleRate,
	}

	// Feed the encoder in chunks so large files don't need one giant
	// int slice
	const chunkSize = 8192
	buf := &goaudio.IntBuffer{
		Format:         format,
		SourceBitDepth: 16,
		Data:           make([]int, 0, min(len(pcm), chunkSize)),
	}

	wrote := false
	for i := 0; i < len(pcm); i += chunkSize {
		end := min(i+chunkSize, len(pcm))
		chunk := pcm[i:end]

		buf.Data = buf.Data[:len(chunk)]
		for j, s := range chunk {
			buf.Data[j] = int(s)
		}

		if err := enc.Write(buf); err != nil {
			return fmt.Errorf("%w", err)
		}
		wrote = true
	}

	// An empty sample set still gets a valid header
	if !wrote {
		buf.Data = buf.Data[:0]
		if err := enc.Write(buf); err != nil {
			return fmt.Errorf("%w", err)
		}
	}

	if err := enc.Close(); err != nil {
		return fmt.Errorf("%w", err)
	}

	return nil
}
