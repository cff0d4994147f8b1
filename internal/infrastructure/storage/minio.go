package storage

import (
	"context"
	"fmt"
	"strings"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"

	"github.com/meetbrief-team/meetbrief/pkg/config"
)

// CaptionArchive archives raw caption tracks in object storage. Archiving is a
// best-effort side-write: the database row is the source of truth and callers
// must never fail a webhook on archive errors.
type CaptionArchive struct {
	client *minio.Client
	bucket string
}

// NewCaptionArchive creates the archive client and ensures the bucket exists
func NewCaptionArchive(cfg *config.StorageConfig) (*CaptionArchive, error) {
	minioClient, err := minio.New(cfg.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.AccessKeyID, cfg.SecretAccessKey, ""),
		Secure: cfg.UseSSL,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create MinIO client: %w", err)
	}

	archive := &CaptionArchive{
		client: minioClient,
		bucket: cfg.BucketName,
	}

	ctx := context.Background()
	exists, err := minioClient.BucketExists(ctx, cfg.BucketName)
	if err != nil {
		return nil, fmt.Errorf("failed to check bucket existence: %w", err)
	}
	if !exists {
		if err := minioClient.MakeBucket(ctx, cfg.BucketName, minio.MakeBucketOptions{}); err != nil {
			return nil, fmt.Errorf("failed to create bucket: %w", err)
		}
	}

	return archive, nil
}

// StoreCaptionTrack uploads the raw caption text for a transcript id
func (a *CaptionArchive) StoreCaptionTrack(ctx context.Context, transcriptID, content string) error {
	objectName := fmt.Sprintf("captions/%s.vtt", transcriptID)
	reader := strings.NewReader(content)

	_, err := a.client.PutObject(ctx, a.bucket, objectName, reader, int64(len(content)), minio.PutObjectOptions{
		ContentType: "text/vtt",
	})
	if err != nil {
		return fmt.Errorf("failed to upload caption track: %w", err)
	}
	return nil
}
