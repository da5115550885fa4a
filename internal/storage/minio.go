package storage

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"path"
	"strings"
	"time"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"

	"github.com/bagoessprasetyo/pos-ai-sub001/internal/config"
)

const snapshotRoot = "reports"

// MinioArchiver implements Archiver against any S3-compatible endpoint.
type MinioArchiver struct {
	client *minio.Client
	bucket string
}

func NewMinioArchiver(cfg config.ArchiveConfig) (*MinioArchiver, error) {
	if cfg.Endpoint == "" {
		return nil, fmt.Errorf("archive endpoint must be provided")
	}
	if cfg.AccessKey == "" || cfg.SecretKey == "" {
		return nil, fmt.Errorf("archive credentials must be provided")
	}
	if cfg.Bucket == "" {
		return nil, fmt.Errorf("archive bucket must be provided")
	}

	endpoint := strings.TrimPrefix(strings.TrimPrefix(cfg.Endpoint, "https://"), "http://")

	client, err := minio.New(endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.AccessKey, cfg.SecretKey, ""),
		Secure: cfg.UseSSL,
	})
	if err != nil {
		return nil, fmt.Errorf("archive client init failed: %w", err)
	}

	return &MinioArchiver{
		client: client,
		bucket: cfg.Bucket,
	}, nil
}

func (a *MinioArchiver) StoreSnapshot(ctx context.Context, storeID, kind string, generatedAt time.Time, payload []byte) (string, error) {
	key := snapshotKey(storeID, kind, generatedAt)

	_, err := a.client.PutObject(ctx, a.bucket, key, bytes.NewReader(payload), int64(len(payload)), minio.PutObjectOptions{
		ContentType: "application/json",
	})
	if err != nil {
		return "", fmt.Errorf("archive upload %s: %w", key, err)
	}
	return key, nil
}

func (a *MinioArchiver) ListSnapshots(ctx context.Context, prefix string) ([]SnapshotInfo, error) {
	listPrefix := snapshotRoot + "/"
	if prefix != "" {
		listPrefix = path.Join(snapshotRoot, prefix) + "/"
	}

	results := make([]SnapshotInfo, 0)
	for object := range a.client.ListObjects(ctx, a.bucket, minio.ListObjectsOptions{
		Prefix:    listPrefix,
		Recursive: true,
	}) {
		if object.Err != nil {
			return nil, fmt.Errorf("archive list failed: %w", object.Err)
		}
		results = append(results, SnapshotInfo{
			Key:          object.Key,
			Size:         object.Size,
			LastModified: object.LastModified,
		})
	}
	return results, nil
}

func (a *MinioArchiver) GetSnapshot(ctx context.Context, key string) ([]byte, error) {
	object, err := a.client.GetObject(ctx, a.bucket, key, minio.GetObjectOptions{})
	if err != nil {
		return nil, fmt.Errorf("archive get %s: %w", key, err)
	}
	defer object.Close()

	payload, err := io.ReadAll(object)
	if err != nil {
		return nil, fmt.Errorf("archive read %s: %w", key, err)
	}
	return payload, nil
}

var _ Archiver = (*MinioArchiver)(nil)

func snapshotKey(storeID, kind string, generatedAt time.Time) string {
	return path.Join(snapshotRoot, storeID, kind, generatedAt.UTC().Format("2006-01-02")+".json")
}
