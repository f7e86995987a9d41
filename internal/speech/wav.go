// Package speech wraps the speech-to-text collaborator: WAV decoding,
// whisper.cpp transcription and the optional recording archive. The core
// pipeline only ever sees the transcribed text.
package speech

import (
	"encoding/binary"
	"fmt"
)

// Audio format required by the transcriber.
const (
	RequiredSampleRate = 16000
	requiredBitDepth   = 16
	wavFormatPCM       = 1
)

// DecodeWAV parses a PCM16 WAV payload into mono float32 samples in the
// -1..1 range. Stereo input is downmixed by averaging the channels. The
// sample rate must already be 16 kHz; resampling is the recorder's job.
func DecodeWAV(data []byte) ([]float32, error) {
	if len(data) < 44 {
		return nil, fmt.Errorf("wav: payload too short")
	}
	if string(data[0:4]) != "RIFF" || string(data[8:12]) != "WAVE" {
		return nil, fmt.Errorf("wav: not a RIFF/WAVE payload")
	}

	var (
		format     uint16
		channels   uint16
		sampleRate uint32
		bitDepth   uint16
		pcm        []byte
	)

	// Walk the chunk list; vendors put fact/LIST chunks between fmt and data.
	offset := 12
	for offset+8 <= len(data) {
		chunkID := string(data[offset : offset+4])
		chunkSize := int(binary.LittleEndian.Uint32(data[offset+4 : offset+8]))
		body := offset + 8
		if body+chunkSize > len(data) {
			return nil, fmt.Errorf("wav: truncated %s chunk", chunkID)
		}

		switch chunkID {
		case "fmt ":
			if chunkSize < 16 {
				return nil, fmt.Errorf("wav: malformed fmt chunk")
			}
			format = binary.LittleEndian.Uint16(data[body : body+2])
			channels = binary.LittleEndian.Uint16(data[body+2 : body+4])
			sampleRate = binary.LittleEndian.Uint32(data[body+4 : body+8])
			bitDepth = binary.LittleEndian.Uint16(data[body+14 : body+16])
		case "data":
			pcm = data[body : body+chunkSize]
		}

		// Chunks are word aligned.
		offset = body + chunkSize + chunkSize%2
	}

	if pcm == nil {
		return nil, fmt.Errorf("wav: missing data chunk")
	}
	if format != wavFormatPCM || bitDepth != requiredBitDepth {
		return nil, fmt.Errorf("wav: only 16-bit PCM is supported")
	}
	if channels != 1 && channels != 2 {
		return nil, fmt.Errorf("wav: unsupported channel count %d", channels)
	}
	if sampleRate != RequiredSampleRate {
		return nil, fmt.Errorf("wav: sample rate must be %d Hz, got %d", RequiredSampleRate, sampleRate)
	}

	frameSize := int(channels) * 2
	frames := len(pcm) / frameSize
	if frames == 0 {
		return nil, fmt.Errorf("wav: empty data chunk")
	}

	samples := make([]float32, frames)
	for i := 0; i < frames; i++ {
		base := i * frameSize
		var sum int32
		for ch := 0; ch < int(channels); ch++ {
			sum += int32(int16(binary.LittleEndian.Uint16(pcm[base+ch*2 : base+ch*2+2])))
		}
		samples[i] = float32(sum/int32(channels)) / 32768
	}
	return samples, nil
}
