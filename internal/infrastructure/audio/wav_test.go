package audio

import (
	"bytes"
	stdErrors "errors"
	"testing"

	"github.com/youpy/go-wav"

	"github.com/johnquangdev/convo-coach/internal/domain/entities"
)

func encodeWav(t *testing.T, channels uint16, rate uint32, bits uint16, frames [][2]int) []byte {
	t.Helper()
	var buf bytes.Buffer
	w := wav.NewWriter(&buf, uint32(len(frames)), channels, rate, bits)
	samples := make([]wav.Sample, len(frames))
	for i, f := range frames {
		samples[i] = wav.Sample{Values: f}
	}
	if err := w.WriteSamples(samples); err != nil {
		t.Fatalf("write samples: %v", err)
	}
	return buf.Bytes()
}

func TestDecode_Mono(t *testing.T) {
	data := encodeWav(t, 1, 22050, 16, [][2]int{{100}, {-200}, {300}})

	clip, err := Decode(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if clip.SampleRate != 22050 || clip.Channels != 1 {
		t.Fatalf("format = %v Hz, %d ch", clip.SampleRate, clip.Channels)
	}
	want := []int16{100, -200, 300}
	if len(clip.Samples) != len(want) {
		t.Fatalf("samples = %v", clip.Samples)
	}
	for i := range want {
		if clip.Samples[i] != want[i] {
			t.Fatalf("sample %d = %d, want %d", i, clip.Samples[i], want[i])
		}
	}
}

func TestDecode_StereoInterleaves(t *testing.T) {
	data := encodeWav(t, 2, 44100, 16, [][2]int{{1, -1}, {2, -2}})

	clip, err := Decode(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if clip.Frames() != 2 {
		t.Fatalf("Frames() = %d", clip.Frames())
	}
	want := []int16{1, -1, 2, -2}
	for i := range want {
		if clip.Samples[i] != want[i] {
			t.Fatalf("samples = %v, want %v", clip.Samples, want)
		}
	}
}

func TestDecode_RejectsOtherDepths(t *testing.T) {
	data := encodeWav(t, 1, 8000, 8, [][2]int{{10}})
	if _, err := Decode(bytes.NewReader(data)); !stdErrors.Is(err, entities.ErrUnsupportedFormat) {
		t.Fatalf("expected unsupported format, got %v", err)
	}
}

func TestDecode_Garbage(t *testing.T) {
	if _, err := Decode(bytes.NewReader([]byte("not a wav file at all"))); err == nil {
		t.Fatalf("expected error")
	}
}
