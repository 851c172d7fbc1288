// SPDX-License-Identifier: EPL-2.0

// Package mp3wav converts audio files to 16-bit PCM WAV.
//
// The package grew out of a one-off script that turned a directory of
// MP3 game assets into WAV files, and it keeps that shape: a batch
// Converter that scans one directory, plus a single-file Convert for
// everything else.
//
// # Batch conversion
//
// A Converter lists a directory once, picks every file whose
// lowercased name ends in the source extension (".mp3" by default),
// and converts the candidates one at a time:
//
//	conv := mp3wav.NewConverter(os.Stdout)
//	results, err := conv.ConvertDir(".")
//
// Each candidate is independent: a corrupt file is reported with
// OutcomeDecodeFailed and the batch moves on. Output files land next
// to their sources with the extension replaced by ".wav",
// overwriting anything already there.
//
// # Single files
//
// Convert and ConvertWith handle one file, selecting the decoder by
// extension from DefaultRegistry (WAV, MP3, Ogg Vorbis and AIFF):
//
//	err := mp3wav.Convert("input.mp3", "output.wav")
//
//	// resample to 8kHz mono while converting
//	err = mp3wav.ConvertWith("input.mp3", "output.wav", mp3wav.Options{
//		SampleRate: 8000,
//		Mono:       true,
//	})
//
// The zero Options preserve the source's sample rate and channel
// count.
//
// # Errors
//
// Failures carry sentinels for classification: ErrDecode for corrupt
// or unsupported content, ErrUnsupportedFormat for unknown
// extensions, and fs.ErrNotExist when the source is gone. The batch
// converter folds these into the Outcome of each Result.
//
// The codecs themselves are delegated: decoding uses
// github.com/hajimehoshi/go-mp3, github.com/jfreymuth/oggvorbis and
// github.com/go-audio/aiff, and encoding uses github.com/go-audio/wav.
package mp3wav
