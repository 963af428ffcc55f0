package gce

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type poolStubClient struct {
	ComputeManager
	id int
}

func TestCheckoutReusesReleasedHandles(t *testing.T) {
	created := 0
	pool := NewConnectionPool(2, func() (ComputeManager, error) {
		created++
		return &poolStubClient{id: created}, nil
	})

	first, release, err := pool.Checkout(context.Background())
	require.NoError(t, err)
	release()

	second, release, err := pool.Checkout(context.Background())
	require.NoError(t, err)
	release()

	assert.Same(t, first, second)
	assert.Equal(t, 1, created)
}

func TestCheckoutBlocksAtCapacity(t *testing.T) {
	pool := NewConnectionPool(1, func() (ComputeManager, error) {
		return &poolStubClient{}, nil
	})

	_, release, err := pool.Checkout(context.Background())
	require.NoError(t, err)

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()
	_, _, err = pool.Checkout(ctx)
	require.Error(t, err)
	assert.ErrorIs(t, err, context.DeadlineExceeded)

	// Releasing frees the slot for the next checkout.
	release()
	_, release, err = pool.Checkout(context.Background())
	require.NoError(t, err)
	release()
}

func TestReleaseIsIdempotent(t *testing.T) {
	pool := NewConnectionPool(1, func() (ComputeManager, error) {
		return &poolStubClient{}, nil
	})

	_, release, err := pool.Checkout(context.Background())
	require.NoError(t, err)
	release()
	release()

	// A double release must not free a slot twice.
	_, release, err = pool.Checkout(context.Background())
	require.NoError(t, err)
	defer release()

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()
	_, _, err = pool.Checkout(ctx)
	assert.Error(t, err)
}

func TestCheckoutFactoryError(t *testing.T) {
	boom := errors.New("credentials missing")
	pool := NewConnectionPool(1, func() (ComputeManager, error) {
		return nil, boom
	})

	_, _, err := pool.Checkout(context.Background())
	require.Error(t, err)
	assert.ErrorIs(t, err, boom)

	// The failed checkout must not leak its slot.
	pool.factory = func() (ComputeManager, error) { return &poolStubClient{}, nil }
	_, release, err := pool.Checkout(context.Background())
	require.NoError(t, err)
	release()
}

func TestConcurrentCheckouts(t *testing.T) {
	const capacity = 3
	pool := NewConnectionPool(capacity, func() (ComputeManager, error) {
		return &poolStubClient{}, nil
	})

	var (
		mu     sync.Mutex
		active int
		peak   int
	)

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, release, err := pool.Checkout(context.Background())
			if err != nil {
				t.Error(err)
				return
			}
			mu.Lock()
			active++
			if active > peak {
				peak = active
			}
			mu.Unlock()

			time.Sleep(time.Millisecond)

			mu.Lock()
			active--
			mu.Unlock()
			release()
		}()
	}
	wg.Wait()

	assert.LessOrEqual(t, peak, capacity)
}
