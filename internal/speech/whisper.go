package speech

import (
	"context"
	"errors"
	"fmt"
	"io"
	"sync"

	whisper "github.com/ggerganov/whisper.cpp/bindings/go/pkg/whisper"
)

// Transcription is the speech-to-text result handed to the conversation
// layer. Confidence is advisory; the dialogue only consumes Text.
type Transcription struct {
	Text            string  `json:"text"`
	Confidence      float64 `json:"confidence"`
	Language        string  `json:"language"`
	DurationSeconds float64 `json:"durationSeconds"`
}

// Transcriber converts 16 kHz mono samples into Swedish text.
type Transcriber interface {
	Transcribe(ctx context.Context, samples []float32) (Transcription, error)
}

// WhisperTranscriber runs a local whisper.cpp model. The model is loaded
// once at startup; inference contexts are created per call. whisper.cpp
// contexts are not safe for concurrent use over one model, so calls are
// serialized.
type WhisperTranscriber struct {
	mu    sync.Mutex
	model whisper.Model
}

// NewWhisperTranscriber loads a ggml model from disk.
func NewWhisperTranscriber(modelPath string) (*WhisperTranscriber, error) {
	model, err := whisper.New(modelPath)
	if err != nil {
		return nil, fmt.Errorf("load whisper model %s: %w", modelPath, err)
	}
	return &WhisperTranscriber{model: model}, nil
}

// Transcribe runs Swedish speech recognition over the samples.
func (t *WhisperTranscriber) Transcribe(ctx context.Context, samples []float32) (Transcription, error) {
	if err := ctx.Err(); err != nil {
		return Transcription{}, err
	}

	t.mu.Lock()
	defer t.mu.Unlock()

	wctx, err := t.model.NewContext()
	if err != nil {
		return Transcription{}, fmt.Errorf("create whisper context: %w", err)
	}
	if err := wctx.SetLanguage("sv"); err != nil {
		return Transcription{}, fmt.Errorf("set whisper language: %w", err)
	}

	if err := wctx.Process(samples, nil, nil, nil); err != nil {
		return Transcription{}, fmt.Errorf("whisper process: %w", err)
	}

	var (
		text       string
		probSum    float64
		tokenCount int
	)
	for {
		segment, err := wctx.NextSegment()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return Transcription{}, fmt.Errorf("read whisper segment: %w", err)
		}
		text += segment.Text
		for _, token := range segment.Tokens {
			probSum += float64(token.P)
			tokenCount++
		}
	}

	confidence := 0.0
	if tokenCount > 0 {
		confidence = probSum / float64(tokenCount)
	}

	return Transcription{
		Text:            text,
		Confidence:      confidence,
		Language:        "sv",
		DurationSeconds: float64(len(samples)) / RequiredSampleRate,
	}, nil
}

// Close releases the loaded model.
func (t *WhisperTranscriber) Close() error {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.model.Close()
}
