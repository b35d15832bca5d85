package sampleio

import (
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/go-audio/audio"
	"github.com/go-audio/wav"
)

func writeTestWAV(t *testing.T, samples []int, sampleRate, bitDepth int) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "test.wav")
	f, err := os.Create(path)
	if err != nil {
		t.Fatalf("create temp wav: %v", err)
	}
	defer f.Close()

	enc := wav.NewEncoder(f, sampleRate, bitDepth, 1, 1)
	buf := &audio.IntBuffer{
		Data:           samples,
		Format:         &audio.Format{NumChannels: 1, SampleRate: sampleRate},
		SourceBitDepth: bitDepth,
	}
	if err := enc.Write(buf); err != nil {
		t.Fatalf("write wav samples: %v", err)
	}
	if err := enc.Close(); err != nil {
		t.Fatalf("close wav encoder: %v", err)
	}

	return path
}

func TestWAVSourceRoundTrip(t *testing.T) {
	samples := []int{0, 16384, -16384, 32767, -32768}
	path := writeTestWAV(t, samples, 48000, 16)

	f, err := os.Open(path)
	if err != nil {
		t.Fatalf("open wav: %v", err)
	}
	defer f.Close()

	src, err := OpenWAV(f)
	if err != nil {
		t.Fatalf("open source: %v", err)
	}
	if src.SampleRate() != 48000 {
		t.Fatalf("sample rate = %d, want 48000", src.SampleRate())
	}

	var got []float64
	for {
		v, err, ok := src.Next()
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !ok {
			break
		}
		got = append(got, v)
	}

	if len(got) != len(samples) {
		t.Fatalf("got %d samples, want %d", len(got), len(samples))
	}
	for i, want := range samples {
		wantScaled := float64(want) / 32768
		if math.Abs(got[i]-wantScaled) > 1e-3 {
			t.Errorf("sample %d = %v, want ~%v", i, got[i], wantScaled)
		}
	}
}
