package gce

import (
	"context"
	"fmt"
	"time"

	compute "google.golang.org/api/compute/v1"
)

// statusDone is the terminal operation status. Everything else is
// non-terminal and must be re-fetched.
const statusDone = "DONE"

// DefaultAwaitRetries is the transport-failure budget for one Await call.
const DefaultAwaitRetries = 5

// Poller drives asynchronous zone operations to their terminal state.
type Poller struct {
	interval time.Duration
}

// NewPoller creates a poller that waits interval between status re-fetches.
func NewPoller(interval time.Duration) *Poller {
	return &Poller{interval: interval}
}

// Await re-fetches the operation until it reaches DONE, then returns it.
//
// Transient transport failures during a re-fetch consume the maxRetries
// budget; once exhausted the failure propagates. A 404 while re-fetching
// means the remote system already garbage-collected the finished operation
// record, so the last known handle is returned as success. A terminal
// operation carrying sub-errors raises an OperationError.
//
// There is no wall-clock bound: an operation that stays non-terminal
// without erroring is polled until the context is cancelled.
func (p *Poller) Await(ctx context.Context, waiter OperationWaiter, zone string, op *compute.Operation, maxRetries int) (*compute.Operation, error) {
	return p.await(ctx, func(ctx context.Context, name string) (*compute.Operation, error) {
		return waiter.GetZoneOperation(ctx, zone, name)
	}, op, maxRetries)
}

// AwaitGlobal is Await for project-global operations such as snapshot
// deletion.
func (p *Poller) AwaitGlobal(ctx context.Context, waiter OperationWaiter, op *compute.Operation, maxRetries int) (*compute.Operation, error) {
	return p.await(ctx, waiter.GetGlobalOperation, op, maxRetries)
}

func (p *Poller) await(ctx context.Context, fetch func(context.Context, string) (*compute.Operation, error), op *compute.Operation, maxRetries int) (*compute.Operation, error) {
	if op == nil {
		return nil, fmt.Errorf("await: nil operation")
	}

	failures := 0
	for op.Status != statusDone {
		select {
		case <-ctx.Done():
			return nil, fmt.Errorf("await %s: %w", op.Name, ctx.Err())
		case <-time.After(p.interval):
		}

		next, err := fetch(ctx, op.Name)
		if err != nil {
			if IsNotFound(err) {
				return op, nil
			}
			if !IsTransient(err) {
				return nil, fmt.Errorf("await %s: %w", op.Name, err)
			}
			failures++
			if failures > maxRetries {
				return nil, fmt.Errorf("await %s: giving up after %d failed status fetches: %w", op.Name, failures, err)
			}
			continue
		}
		op = next
	}

	if err := operationFailed(op); err != nil {
		return nil, err
	}
	return op, nil
}
