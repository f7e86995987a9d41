package conversation

import (
	"context"
	"encoding/binary"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"

	"maleri_backend/internal/catalog"
	"maleri_backend/internal/estimate"
	"maleri_backend/internal/speech"
	"maleri_backend/platform/apperr"
	"maleri_backend/platform/logger"
)

type staticTranscriber struct {
	text string
}

func (t staticTranscriber) Transcribe(_ context.Context, _ []float32) (speech.Transcription, error) {
	return speech.Transcription{Text: t.text, Confidence: 0.9, Language: "sv"}, nil
}

func silenceWAV(t *testing.T) []byte {
	t.Helper()
	samples := make([]byte, 32) // 16 PCM16 frames of silence
	buf := make([]byte, 0, 44+len(samples))

	le16 := func(v uint16) []byte { b := make([]byte, 2); binary.LittleEndian.PutUint16(b, v); return b }
	le32 := func(v uint32) []byte { b := make([]byte, 4); binary.LittleEndian.PutUint32(b, v); return b }

	buf = append(buf, []byte("RIFF")...)
	buf = append(buf, le32(uint32(36+len(samples)))...)
	buf = append(buf, []byte("WAVE")...)
	buf = append(buf, []byte("fmt ")...)
	buf = append(buf, le32(16)...)
	buf = append(buf, le16(1)...) // PCM
	buf = append(buf, le16(1)...) // mono
	buf = append(buf, le32(speech.RequiredSampleRate)...)
	buf = append(buf, le32(speech.RequiredSampleRate*2)...)
	buf = append(buf, le16(2)...)
	buf = append(buf, le16(16)...)
	buf = append(buf, []byte("data")...)
	buf = append(buf, le32(uint32(len(samples)))...)
	buf = append(buf, samples...)
	return buf
}

func TestHandleAudio_TranscriptionAccompaniesTurnError(t *testing.T) {
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	sessions := NewSessionStore(client, time.Hour)

	svc := NewService(
		sessions, catalog.NewStore(), estimate.DefaultPricingConfig(),
		staticTranscriber{text: "måla väggarna"}, nil, nil,
		logger.New("development"),
	)

	// Unknown conversation: the turn fails after transcription succeeded.
	transcription, _, err := svc.HandleAudio(context.Background(), "saknas", silenceWAV(t))
	if !apperr.Is(err, apperr.KindNotFound) {
		t.Fatalf("expected not found for unknown conversation, got %v", err)
	}
	if transcription.Text != "måla väggarna" {
		t.Fatalf("expected the transcription alongside the error, got %+v", transcription)
	}
}

func TestHandleAudio_WithoutTranscriberIsUnavailable(t *testing.T) {
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	sessions := NewSessionStore(client, time.Hour)

	svc := NewService(
		sessions, catalog.NewStore(), estimate.DefaultPricingConfig(),
		nil, nil, nil, logger.New("development"),
	)

	_, _, err := svc.HandleAudio(context.Background(), "x", silenceWAV(t))
	if !apperr.Is(err, apperr.KindUnavailable) {
		t.Fatalf("expected unavailable without a transcriber, got %v", err)
	}
}
