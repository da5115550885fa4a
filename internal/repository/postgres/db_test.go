package postgres

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/sync/semaphore"
)

func slotDB(weight int64) *DB {
	return &DB{sem: semaphore.NewWeighted(weight)}
}

func TestWithSlot_BoundsConcurrency(t *testing.T) {
	db := slotDB(2)

	var inFlight, peak int64
	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_ = db.withSlot(context.Background(), func() error {
				n := atomic.AddInt64(&inFlight, 1)
				for {
					p := atomic.LoadInt64(&peak)
					if n <= p || atomic.CompareAndSwapInt64(&peak, p, n) {
						break
					}
				}
				atomic.AddInt64(&inFlight, -1)
				return nil
			})
		}()
	}
	wg.Wait()

	assert.LessOrEqual(t, atomic.LoadInt64(&peak), int64(2))
	assert.Zero(t, atomic.LoadInt64(&inFlight))
}

func TestWithSlot_PropagatesError(t *testing.T) {
	db := slotDB(1)
	wantErr := errors.New("scan failed")

	err := db.withSlot(context.Background(), func() error { return wantErr })

	require.ErrorIs(t, err, wantErr)
}

func TestWithSlot_CanceledContext(t *testing.T) {
	db := slotDB(1)
	require.NoError(t, db.sem.Acquire(context.Background(), 1))
	defer db.sem.Release(1)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	var ran bool
	err := db.withSlot(ctx, func() error { ran = true; return nil })

	require.Error(t, err)
	assert.False(t, ran)
}
