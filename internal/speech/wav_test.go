package speech

import (
	"encoding/binary"
	"math"
	"testing"
)

func buildWAV(t *testing.T, sampleRate uint32, channels uint16, samples []int16) []byte {
	t.Helper()
	dataSize := len(samples) * 2
	buf := make([]byte, 0, 44+dataSize)

	le16 := func(v uint16) []byte { b := make([]byte, 2); binary.LittleEndian.PutUint16(b, v); return b }
	le32 := func(v uint32) []byte { b := make([]byte, 4); binary.LittleEndian.PutUint32(b, v); return b }

	buf = append(buf, []byte("RIFF")...)
	buf = append(buf, le32(uint32(36+dataSize))...)
	buf = append(buf, []byte("WAVE")...)
	buf = append(buf, []byte("fmt ")...)
	buf = append(buf, le32(16)...)
	buf = append(buf, le16(1)...) // PCM
	buf = append(buf, le16(channels)...)
	buf = append(buf, le32(sampleRate)...)
	buf = append(buf, le32(sampleRate*uint32(channels)*2)...)
	buf = append(buf, le16(channels*2)...)
	buf = append(buf, le16(16)...)
	buf = append(buf, []byte("data")...)
	buf = append(buf, le32(uint32(dataSize))...)
	for _, s := range samples {
		buf = append(buf, le16(uint16(s))...)
	}
	return buf
}

func TestDecodeWAV_Mono(t *testing.T) {
	data := buildWAV(t, RequiredSampleRate, 1, []int16{0, 16384, -16384, 32767})

	samples, err := DecodeWAV(data)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(samples) != 4 {
		t.Fatalf("expected 4 samples, got %d", len(samples))
	}
	if samples[0] != 0 {
		t.Fatalf("expected silence sample 0, got %v", samples[0])
	}
	if math.Abs(float64(samples[1])-0.5) > 0.001 {
		t.Fatalf("expected ~0.5, got %v", samples[1])
	}
	if math.Abs(float64(samples[2])+0.5) > 0.001 {
		t.Fatalf("expected ~-0.5, got %v", samples[2])
	}
}

func TestDecodeWAV_StereoDownmix(t *testing.T) {
	// Interleaved L/R pairs; each frame averages to 8192.
	data := buildWAV(t, RequiredSampleRate, 2, []int16{16384, 0, 0, 16384})

	samples, err := DecodeWAV(data)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(samples) != 2 {
		t.Fatalf("expected 2 frames, got %d", len(samples))
	}
	for i, s := range samples {
		if math.Abs(float64(s)-0.25) > 0.001 {
			t.Fatalf("frame %d: expected ~0.25, got %v", i, s)
		}
	}
}

func TestDecodeWAV_Rejects(t *testing.T) {
	cases := map[string][]byte{
		"too short":         []byte("RIFF"),
		"not riff":          make([]byte, 64),
		"wrong sample rate": buildWAV(t, 44100, 1, []int16{0, 0}),
	}
	for name, data := range cases {
		if _, err := DecodeWAV(data); err == nil {
			t.Fatalf("%s: expected error", name)
		}
	}
}
