package customer

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bagoessprasetyo/pos-ai-sub001/internal/domain"
)

func TestCalculateLifetimeValue_TenCustomers(t *testing.T) {
	now := time.Date(2026, 8, 31, 0, 0, 0, 0, time.UTC)
	customers := make([]domain.Customer, 0, 10)
	transactions := make([]domain.Transaction, 0, 10)
	for i := 1; i <= 10; i++ {
		id := fmt.Sprintf("c%d", i)
		customers = append(customers, domain.Customer{ID: id})
		transactions = append(transactions, tx(fmt.Sprintf("t%d", i), id, float64(i)*100, now))
	}

	result := CalculateLifetimeValue(customers, transactions)

	assert.InDelta(t, 550.0, result.AverageCLV, 0.001)
	assert.Equal(t, 1, result.CLVSegments[TierVIP])
	assert.Equal(t, 1, result.CLVSegments[TierHighValue])
	assert.Equal(t, 3, result.CLVSegments[TierMediumValue])
	// The reported low_value size is total-floor(total*0.7), which is 3 here
	// even though 5 customers actually carry the tier.
	assert.Equal(t, 3, result.CLVSegments[TierLowValue])

	require.Len(t, result.HighValueCustomers, 2)
	assert.Equal(t, "c10", result.HighValueCustomers[0].CustomerID)
	assert.Equal(t, TierVIP, result.HighValueCustomers[0].Tier)
	assert.Equal(t, "c9", result.HighValueCustomers[1].CustomerID)
	assert.Equal(t, TierHighValue, result.HighValueCustomers[1].Tier)
}

func TestCalculateLifetimeValue_SmallCohort(t *testing.T) {
	now := time.Date(2026, 8, 31, 0, 0, 0, 0, time.UTC)
	customers := []domain.Customer{{ID: "c1"}, {ID: "c2"}}
	transactions := []domain.Transaction{
		tx("t1", "c1", 500, now),
		tx("t2", "c2", 100, now),
	}

	result := CalculateLifetimeValue(customers, transactions)

	// Cohorts under 10 have empty vip and high tiers by integer division.
	assert.Zero(t, result.CLVSegments[TierVIP])
	assert.Zero(t, result.CLVSegments[TierHighValue])
	assert.Equal(t, 1, result.CLVSegments[TierMediumValue])
	assert.Empty(t, result.HighValueCustomers)
	assert.InDelta(t, 300.0, result.AverageCLV, 0.001)
}

func TestCalculateLifetimeValue_Empty(t *testing.T) {
	result := CalculateLifetimeValue(nil, nil)

	assert.Zero(t, result.AverageCLV)
	assert.NotNil(t, result.HighValueCustomers)
	assert.Equal(t, 0, result.CLVSegments[TierVIP])
}
