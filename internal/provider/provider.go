package provider

import "context"

// Provider is the public pool operation surface.
type Provider interface {
	// ListPoolMembers returns all VMs carrying the pool's label.
	ListPoolMembers(ctx context.Context, pool string) ([]*VirtualMachine, error)

	// GetVM fetches one VM. A VM that does not exist is (nil, nil), not an
	// error.
	GetVM(ctx context.Context, pool, name string) (*VirtualMachine, error)

	// CreateVM creates a VM from the pool's template and returns its
	// normalized view after the remote system reports completion.
	CreateVM(ctx context.Context, pool, name string) (*VirtualMachine, error)

	// CreateDisk creates and attaches an additional data disk.
	CreateDisk(ctx context.Context, pool, vm string, sizeGB int64) error

	// CreateSnapshot snapshots every disk currently attached to the VM
	// under one logical snapshot name.
	CreateSnapshot(ctx context.Context, pool, vm, snapshot string) error

	// RevertSnapshot stops the VM, replaces its disks with ones recreated
	// from the named snapshot set, and starts it again.
	RevertSnapshot(ctx context.Context, pool, vm, snapshot string) error

	// LabelVM merges extra labels into a VM's label set, using the label
	// fingerprint from a fresh read as the concurrency token.
	LabelVM(ctx context.Context, pool, vm string, extra map[string]string) error

	// DestroyVM deletes the VM and sweeps up its disks and snapshots. A VM
	// that is already gone is success.
	DestroyVM(ctx context.Context, pool, vm string) error

	// IsReady probes TCP port 22 on the VM. It is a liveness probe, not a
	// capability check.
	IsReady(ctx context.Context, pool, vm string) (bool, error)

	// PurgeUnconfiguredResources deletes instances, disks and snapshots
	// whose pool label names no configured pool, unless exempted by the
	// allow-list.
	PurgeUnconfiguredResources(ctx context.Context, allowList []string) error
}
