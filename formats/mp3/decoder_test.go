// SPDX-License-Identifier: EPL-2.0

package mp3

import (
	"bytes"
	"encoding/binary"
	"io"
	"math"
	"testing"
)

// fakeMP3Reader simulates the gomp3.Decoder for testing
type fakeMP3Reader struct {
	sampleRate int
	samples    []int16
	offset     int
	readErr    error
}

func (m *fakeMP3Reader) SampleRate() int {
	return m.sampleRate
}

func (m *fakeMP3Reader) Read(buf []byte) (int, error) {
	if m.readErr != nil {
		return 0, m.readErr
	}

	if m.offset >= len(m.samples) {
		return 0, io.EOF
	}

	bytesAvailable := (len(m.samples) - m.offset) * 2
	bytesToRead := min(len(buf), bytesAvailable)

	// Only whole samples
	bytesToRead = (bytesToRead / 2) * 2
	samplesToRead := bytesToRead / 2

	for i := 0; i < samplesToRead; i++ {
		sample := m.samples[m.offset+i]
		binary.LittleEndian.PutUint16(buf[i*2:i*2+2], uint16(sample))
	}

	m.offset += samplesToRead

	if m.offset >= len(m.samples) {
		return bytesToRead, io.EOF
	}

	return bytesToRead, nil
}

func TestDecoder_InvalidInput(t *testing.T) {
	t.Parallel()

	invalidData := []byte("This is not MP3 data")

	decoder := Decoder{}
	_, err := decoder.Decode(bytes.NewReader(invalidData))

	if err == nil {
		t.Error("Decode() error = nil, want error for invalid data")
	}
}

func TestDecoder_EmptyInput(t *testing.T) {
	t.Parallel()

	decoder := Decoder{}
	_, err := decoder.Decode(bytes.NewReader([]byte{}))

	if err == nil {
		t.Error("Decode() error = nil, want error for empty input")
	}
}

func TestSource_Metadata(t *testing.T) {
	t.Parallel()

	reader := &fakeMP3Reader{
		sampleRate: 44100,
		samples:    make([]int16, 100),
	}

	src := &source{
		dec:        reader,
		sampleRate: 44100,
		channels:   2,
		buf:        make([]byte, 8192),
	}

	if src.SampleRate() != 44100 {
		t.Errorf("SampleRate() = %d, want 44100", src.SampleRate())
	}

	if src.Channels() != 2 {
		t.Errorf("Channels() = %d, want 2", src.Channels())
	}
}

func TestSource_ReadSamples(t *testing.T) {
	t.Parallel()

	// 8 samples (stereo: 4 frames)
	testSamples := []int16{0, 16384, 32767, -16384, -32768, 8192, -8192, 0}

	reader := &fakeMP3Reader{
		sampleRate: 8000,
		samples:    testSamples,
	}

	src := &source{
		dec:        reader,
		sampleRate: 8000,
		channels:   2,
		buf:        make([]byte, 8192),
	}

	dst := make([]float32, len(testSamples))
	n, err := src.ReadSamples(dst)

	if err != nil && err != io.EOF {
		t.Fatalf("ReadSamples() error = %v", err)
	}

	if n != len(testSamples) {
		t.Fatalf("ReadSamples() n = %d, want %d", n, len(testSamples))
	}

	for i, want16 := range testSamples {
		want := float32(want16) / 32768.0
		if math.Abs(float64(dst[i]-want)) > 1e-6 {
			t.Errorf("dst[%d] = %v, want %v", i, dst[i], want)
		}
	}
}

func TestSource_ReadSamplesExhaustion(t *testing.T) {
	t.Parallel()

	reader := &fakeMP3Reader{
		sampleRate: 8000,
		samples:    make([]int16, 10),
	}

	src := &source{
		dec:        reader,
		sampleRate: 8000,
		channels:   2,
		buf:        make([]byte, 64),
	}

	dst := make([]float32, 100)
	n, err := src.ReadSamples(dst)

	if n != 10 {
		t.Errorf("ReadSamples() n = %d, want 10", n)
	}

	if err != io.EOF {
		t.Errorf("ReadSamples() error = %v, want io.EOF", err)
	}

	// Exhausted reader keeps returning EOF
	n, err = src.ReadSamples(dst)
	if n != 0 || err != io.EOF {
		t.Errorf("ReadSamples() after EOF = (%d, %v), want (0, io.EOF)", n, err)
	}
}

func TestSource_ReadError(t *testing.T) {
	t.Parallel()

	reader := &fakeMP3Reader{
		sampleRate: 8000,
		readErr:    io.ErrUnexpectedEOF,
	}

	src := &source{
		dec:        reader,
		sampleRate: 8000,
		channels:   2,
		buf:        make([]byte, 64),
	}

	dst := make([]float32, 10)
	_, err := src.ReadSamples(dst)

	if err != io.ErrUnexpectedEOF {
		t.Errorf("ReadSamples() error = %v, want io.ErrUnexpectedEOF", err)
	}
}
