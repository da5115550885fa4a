package cache

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bagoessprasetyo/pos-ai-sub001/internal/config"
)

func TestBuildReportKey_Deterministic(t *testing.T) {
	key := ReportKey{StoreID: "s1", Kind: "customers", WindowStart: "2026-03-01", WindowEnd: "2026-08-31"}

	first := buildReportKey(key)
	second := buildReportKey(key)

	assert.Equal(t, first, second)
	assert.True(t, strings.HasPrefix(first, "analytics:report:s1:"))
}

func TestBuildReportKey_DistinguishesInputs(t *testing.T) {
	base := ReportKey{StoreID: "s1", Kind: "customers", WindowStart: "2026-03-01", WindowEnd: "2026-08-31"}

	otherKind := base
	otherKind.Kind = "inventory"
	otherWindow := base
	otherWindow.WindowEnd = "2026-09-01"

	assert.NotEqual(t, buildReportKey(base), buildReportKey(otherKind))
	assert.NotEqual(t, buildReportKey(base), buildReportKey(otherWindow))
}

func TestBuildReportKey_NormalizesCase(t *testing.T) {
	lower := ReportKey{StoreID: "s1", Kind: "customers"}
	upper := ReportKey{StoreID: "s1", Kind: "Customers"}

	assert.Equal(t, buildReportKey(lower), buildReportKey(upper))
}

func TestNoopReportCache(t *testing.T) {
	c := NewNoopReportCache()
	ctx := context.Background()
	key := ReportKey{StoreID: "s1", Kind: "customers"}

	var out map[string]string
	hit, err := c.Get(ctx, key, &out)
	require.NoError(t, err)
	assert.False(t, hit)

	assert.NoError(t, c.Set(ctx, key, map[string]string{"a": "b"}))
	assert.NoError(t, c.InvalidateStore(ctx, "s1"))
	assert.NoError(t, c.InvalidateAll(ctx))
}

func TestNewReportCache_DisabledReturnsNoop(t *testing.T) {
	c, err := NewReportCache(config.CacheConfig{Enabled: false})
	require.NoError(t, err)

	hit, err := c.Get(context.Background(), ReportKey{}, nil)
	require.NoError(t, err)
	assert.False(t, hit)
}
