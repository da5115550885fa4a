package customer

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bagoessprasetyo/pos-ai-sub001/internal/domain"
)

func tx(id, customerID string, total float64, at time.Time) domain.Transaction {
	return domain.Transaction{
		ID:         id,
		CustomerID: customerID,
		Total:      total,
		Status:     domain.TransactionCompleted,
		CreatedAt:  at,
	}
}

func TestExtractMetrics_Aggregation(t *testing.T) {
	now := time.Date(2026, 8, 31, 12, 0, 0, 0, time.UTC)
	customers := []domain.Customer{{ID: "c1"}, {ID: "c2"}}
	transactions := []domain.Transaction{
		tx("t1", "c1", 100, now),
		tx("t2", "c1", 100, now.AddDate(0, 0, -10)),
		tx("t3", "c1", 100, now.AddDate(0, 0, -20)),
	}

	metrics := ExtractMetrics(customers, transactions, now)
	require.Len(t, metrics, 2)

	assert.Equal(t, "c1", metrics[0].CustomerID)
	assert.Equal(t, 3, metrics[0].Frequency)
	assert.Equal(t, 300.0, metrics[0].Monetary)
	assert.Equal(t, 0, metrics[0].Recency)

	// c2 never purchased: sentinel recency, zero frequency and spend.
	assert.Equal(t, noPurchaseRecency, metrics[1].Recency)
	assert.Equal(t, 0, metrics[1].Frequency)
	assert.Equal(t, 0.0, metrics[1].Monetary)
}

func TestExtractMetrics_IgnoresNonCompletedAndWalkIns(t *testing.T) {
	now := time.Date(2026, 8, 31, 0, 0, 0, 0, time.UTC)
	customers := []domain.Customer{{ID: "c1"}}
	transactions := []domain.Transaction{
		{ID: "t1", CustomerID: "c1", Total: 50, Status: "pending", CreatedAt: now},
		{ID: "t2", CustomerID: "c1", Total: 75, Status: "refunded", CreatedAt: now},
		tx("t3", "", 200, now), // walk-in, no customer attached
	}

	metrics := ExtractMetrics(customers, transactions, now)
	require.Len(t, metrics, 1)
	assert.Equal(t, 0, metrics[0].Frequency)
	assert.Equal(t, noPurchaseRecency, metrics[0].Recency)
}

func TestExtractMetrics_FutureTimestampClampsToZero(t *testing.T) {
	now := time.Date(2026, 8, 31, 0, 0, 0, 0, time.UTC)
	customers := []domain.Customer{{ID: "c1"}}
	transactions := []domain.Transaction{tx("t1", "c1", 10, now.Add(2*time.Hour))}

	metrics := ExtractMetrics(customers, transactions, now)
	require.Len(t, metrics, 1)
	assert.Equal(t, 0, metrics[0].Recency)
}
