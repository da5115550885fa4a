package storage

import (
	"context"
	"time"
)

// SnapshotInfo represents metadata for one archived report object.
type SnapshotInfo struct {
	Key          string    `json:"key"`
	Size         int64     `json:"size"`
	LastModified time.Time `json:"last_modified"`
}

// Archiver persists generated report snapshots to durable object storage.
type Archiver interface {
	// StoreSnapshot writes one report payload and returns the object key.
	StoreSnapshot(ctx context.Context, storeID, kind string, generatedAt time.Time, payload []byte) (string, error)
	ListSnapshots(ctx context.Context, prefix string) ([]SnapshotInfo, error)
	GetSnapshot(ctx context.Context, key string) ([]byte, error)
}
