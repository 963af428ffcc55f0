package gce

import (
	"context"
	"fmt"
	"sync"
)

// ClientFactory creates a new compute client handle.
type ClientFactory func() (ComputeManager, error)

// ConnectionPool hands out compute client handles for the duration of one
// logical operation. Capacity bounds how many handles are checked out at
// once; released handles are reused. Handles may go stale between
// checkouts, which RealClient tolerates by establishing its service lazily.
type ConnectionPool struct {
	factory ClientFactory
	slots   chan struct{}

	mu   sync.Mutex
	idle []ComputeManager
}

// NewConnectionPool creates a pool with the given capacity.
func NewConnectionPool(capacity int, factory ClientFactory) *ConnectionPool {
	if capacity < 1 {
		capacity = 1
	}
	return &ConnectionPool{
		factory: factory,
		slots:   make(chan struct{}, capacity),
	}
}

// Checkout acquires a client handle, waiting for a free slot if the pool is
// at capacity. The returned release func must be called on every exit path,
// including errors; calling it more than once is safe.
func (p *ConnectionPool) Checkout(ctx context.Context) (ComputeManager, func(), error) {
	select {
	case p.slots <- struct{}{}:
	case <-ctx.Done():
		return nil, nil, fmt.Errorf("connection pool checkout: %w", ctx.Err())
	}

	client, err := p.takeIdle()
	if err != nil {
		<-p.slots
		return nil, nil, err
	}

	var once sync.Once
	release := func() {
		once.Do(func() {
			p.mu.Lock()
			p.idle = append(p.idle, client)
			p.mu.Unlock()
			<-p.slots
		})
	}
	return client, release, nil
}

func (p *ConnectionPool) takeIdle() (ComputeManager, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if n := len(p.idle); n > 0 {
		client := p.idle[n-1]
		p.idle = p.idle[:n-1]
		return client, nil
	}
	client, err := p.factory()
	if err != nil {
		return nil, fmt.Errorf("connection pool: %w", err)
	}
	return client, nil
}
