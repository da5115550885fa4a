package cache

import (
	"context"
	"crypto/sha1"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/bagoessprasetyo/pos-ai-sub001/internal/config"
)

const (
	reportKeyPrefix     = "analytics:report"
	reportScanBatchSize = 100
)

// ReportKey identifies one cached analytics report. WindowStart and
// WindowEnd are day-granular; two requests inside the same window share
// an entry.
type ReportKey struct {
	StoreID     string
	Kind        string
	WindowStart string
	WindowEnd   string
}

type ReportCache interface {
	Get(ctx context.Context, key ReportKey, out any) (bool, error)
	Set(ctx context.Context, key ReportKey, report any) error
	InvalidateStore(ctx context.Context, storeID string) error
	InvalidateAll(ctx context.Context) error
}

type redisReportCache struct {
	client *redis.Client
	ttl    time.Duration
}

type noopReportCache struct{}

func NewReportCache(cfg config.CacheConfig) (ReportCache, error) {
	if !cfg.Enabled {
		return &noopReportCache{}, nil
	}

	client, ttl, err := newRedisClient(cfg)
	if err != nil {
		return nil, err
	}

	return &redisReportCache{
		client: client,
		ttl:    ttl,
	}, nil
}

func NewNoopReportCache() ReportCache {
	return &noopReportCache{}
}

func (c *redisReportCache) Get(ctx context.Context, key ReportKey, out any) (bool, error) {
	payload, err := c.client.Get(ctx, buildReportKey(key)).Bytes()
	if err == redis.Nil {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("redis get failed: %w", err)
	}

	if err := json.Unmarshal(payload, out); err != nil {
		return false, fmt.Errorf("decode report cache: %w", err)
	}
	return true, nil
}

func (c *redisReportCache) Set(ctx context.Context, key ReportKey, report any) error {
	payload, err := json.Marshal(report)
	if err != nil {
		return fmt.Errorf("encode report cache: %w", err)
	}

	if err := c.client.Set(ctx, buildReportKey(key), payload, c.ttl).Err(); err != nil {
		return fmt.Errorf("redis set failed: %w", err)
	}
	return nil
}

func (c *redisReportCache) InvalidateStore(ctx context.Context, storeID string) error {
	prefix := fmt.Sprintf("%s:%s:", reportKeyPrefix, strings.TrimSpace(storeID))
	return deleteKeysWithPrefix(ctx, c.client, prefix, reportScanBatchSize)
}

func (c *redisReportCache) InvalidateAll(ctx context.Context) error {
	return deleteKeysWithPrefix(ctx, c.client, reportKeyPrefix, reportScanBatchSize)
}

func (n *noopReportCache) Get(ctx context.Context, key ReportKey, out any) (bool, error) {
	return false, nil
}

func (n *noopReportCache) Set(ctx context.Context, key ReportKey, report any) error {
	return nil
}

func (n *noopReportCache) InvalidateStore(ctx context.Context, storeID string) error {
	return nil
}

func (n *noopReportCache) InvalidateAll(ctx context.Context) error {
	return nil
}

// buildReportKey keeps the store segment in the clear so per-store
// invalidation can prefix-scan, and hashes the rest.
func buildReportKey(key ReportKey) string {
	return fmt.Sprintf("%s:%s:%s", reportKeyPrefix, strings.TrimSpace(key.StoreID), reportKeyHash(key))
}

func reportKeyHash(key ReportKey) string {
	parts := []string{
		"kind=" + strings.ToLower(strings.TrimSpace(key.Kind)),
	}
	if key.WindowStart != "" {
		parts = append(parts, "window_start="+key.WindowStart)
	}
	if key.WindowEnd != "" {
		parts = append(parts, "window_end="+key.WindowEnd)
	}

	sort.Strings(parts)
	sum := sha1.Sum([]byte(strings.Join(parts, "|")))
	return hex.EncodeToString(sum[:])
}
