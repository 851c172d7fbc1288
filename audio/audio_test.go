// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"io"
	"testing"
)

// mockDecoder is a test decoder implementation
type mockDecoder struct {
	name string
}

func (d *mockDecoder) Decode(r io.Reader) (Source, error) {
	return newSilentSource(44100, 2, 100), nil
}

func TestRegistry_RegisterAndGet(t *testing.T) {
	t.Parallel()

	registry := NewRegistry()
	decoder := &mockDecoder{name: "wav"}

	registry.Register("wav", decoder)

	got, ok := registry.Get("wav")
	if !ok {
		t.Fatal("Registry.Get() failed to retrieve registered decoder")
	}

	if got != decoder {
		t.Error("Registry.Get() returned different decoder instance")
	}
}

func TestRegistry_GetNonExistent(t *testing.T) {
	t.Parallel()

	registry := NewRegistry()

	_, ok := registry.Get("nonexistent")
	if ok {
		t.Error("Registry.Get() returned ok=true for non-existent format")
	}
}

func TestRegistry_CaseInsensitive(t *testing.T) {
	t.Parallel()

	registry := NewRegistry()
	decoder := &mockDecoder{name: "mp3"}

	registry.Register("mp3", decoder)

	for _, key := range []string{"mp3", "MP3", ".mp3", ".MP3", "Mp3"} {
		got, ok := registry.Get(key)
		if !ok {
			t.Errorf("Registry.Get(%q) ok = false, want true", key)
			continue
		}
		if got != decoder {
			t.Errorf("Registry.Get(%q) returned different decoder instance", key)
		}
	}
}

func TestRegistry_MultipleFormats(t *testing.T) {
	t.Parallel()

	registry := NewRegistry()
	wavDecoder := &mockDecoder{name: "wav"}
	mp3Decoder := &mockDecoder{name: "mp3"}
	oggDecoder := &mockDecoder{name: "ogg"}

	registry.Register("wav", wavDecoder)
	registry.Register("mp3", mp3Decoder)
	registry.Register("ogg", oggDecoder)

	tests := []struct {
		ext  string
		want Decoder
	}{
		{"wav", wavDecoder},
		{"mp3", mp3Decoder},
		{"ogg", oggDecoder},
	}

	for _, tt := range tests {
		got, ok := registry.Get(tt.ext)
		if !ok {
			t.Errorf("Registry.Get(%q) ok = false, want true", tt.ext)
			continue
		}
		if got != tt.want {
			t.Errorf("Registry.Get(%q) returned wrong decoder", tt.ext)
		}
	}
}

func TestRegistry_Overwrite(t *testing.T) {
	t.Parallel()

	registry := NewRegistry()
	first := &mockDecoder{name: "first"}
	second := &mockDecoder{name: "second"}

	registry.Register("mp3", first)
	registry.Register("mp3", second)

	got, ok := registry.Get("mp3")
	if !ok {
		t.Fatal("Registry.Get() failed after overwrite")
	}

	if got != second {
		t.Error("Registry.Get() = first decoder, want second (overwritten)")
	}
}
