package speech

import (
	"bytes"
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
)

// ArchiveConfig carries the object-storage settings for raw recordings.
type ArchiveConfig struct {
	Endpoint  string
	AccessKey string
	SecretKey string
	UseSSL    bool
	Bucket    string
}

// Enabled reports whether an archive endpoint is configured.
func (c ArchiveConfig) Enabled() bool {
	return c.Endpoint != ""
}

// RecordingArchive stores raw voice recordings in S3-compatible storage so
// a disputed estimate can be replayed later.
type RecordingArchive struct {
	client *minio.Client
	bucket string
}

// NewRecordingArchive creates the archive client.
func NewRecordingArchive(cfg ArchiveConfig) (*RecordingArchive, error) {
	client, err := minio.New(cfg.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.AccessKey, cfg.SecretKey, ""),
		Secure: cfg.UseSSL,
	})
	if err != nil {
		return nil, fmt.Errorf("create minio client: %w", err)
	}
	return &RecordingArchive{client: client, bucket: cfg.Bucket}, nil
}

// EnsureBucketExists creates the recordings bucket if it doesn't exist.
func (a *RecordingArchive) EnsureBucketExists(ctx context.Context) error {
	exists, err := a.client.BucketExists(ctx, a.bucket)
	if err != nil {
		return fmt.Errorf("check bucket existence: %w", err)
	}
	if !exists {
		if err := a.client.MakeBucket(ctx, a.bucket, minio.MakeBucketOptions{}); err != nil {
			return fmt.Errorf("create bucket %s: %w", a.bucket, err)
		}
	}
	return nil
}

// Store uploads one recording and returns its object key.
func (a *RecordingArchive) Store(ctx context.Context, conversationID string, audio []byte) (string, error) {
	key := fmt.Sprintf("conversations/%s/%s_%s.wav",
		conversationID, time.Now().UTC().Format("20060102T150405"), uuid.New().String()[:8])

	_, err := a.client.PutObject(ctx, a.bucket, key, bytes.NewReader(audio), int64(len(audio)), minio.PutObjectOptions{
		ContentType: "audio/wav",
	})
	if err != nil {
		return "", fmt.Errorf("archive recording %s: %w", key, err)
	}
	return key, nil
}
