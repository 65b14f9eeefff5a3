package app

import (
	"context"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"heroscores/domain/scores"
	"heroscores/internal/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type countingReader struct {
	inFlight atomic.Int32
	peak     atomic.Int32
}

func (c *countingReader) ReadRows(ctx context.Context) ([]scores.Row, error) {
	n := c.inFlight.Add(1)
	for {
		peak := c.peak.Load()
		if n <= peak || c.peak.CompareAndSwap(peak, n) {
			break
		}
	}
	time.Sleep(20 * time.Millisecond)
	c.inFlight.Add(-1)
	return []scores.Row{{Name: "Flash", Score: 8}}, nil
}

func TestScoreServiceLimitsConcurrentLoads(t *testing.T) {
	reader := &countingReader{}
	service := NewScoreService(reader, 2)

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			rows, err := service.ReadRows(context.Background())
			assert.NoError(t, err)
			assert.Len(t, rows, 1)
		}()
	}
	wg.Wait()

	assert.LessOrEqual(t, reader.peak.Load(), int32(2))
}

func TestScoreServiceHonorsContext(t *testing.T) {
	reader := &countingReader{}
	service := NewScoreService(reader, 1)

	// occupy the only slot
	require.NoError(t, service.loads.Acquire(context.Background(), 1))
	defer service.loads.Release(1)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()

	_, err := service.ReadRows(ctx)
	require.Error(t, err)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
	assert.Equal(t, errors.CodeExternalService, errors.GetCode(err))
	assert.Equal(t, int32(0), reader.peak.Load())
}

func TestScoreServiceCanceledWhileWaiting(t *testing.T) {
	reader := &countingReader{}
	service := NewScoreService(reader, 1)

	require.NoError(t, service.loads.Acquire(context.Background(), 1))
	defer service.loads.Release(1)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := service.ReadRows(ctx)
	require.Error(t, err)
	assert.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, errors.CodeExternalService, errors.GetCode(err))
	assert.Equal(t, "waiting for a load slot: context canceled", err.Error())
}

func TestNewScoreServiceClampsLimit(t *testing.T) {
	service := NewScoreService(&countingReader{}, 0)
	rows, err := service.ReadRows(context.Background())
	require.NoError(t, err)
	assert.Len(t, rows, 1)
}
