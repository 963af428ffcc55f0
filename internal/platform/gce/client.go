package gce

import (
	"context"

	compute "google.golang.org/api/compute/v1"
)

// InstanceManager defines the interface for managing compute instances.
type InstanceManager interface {
	// InsertInstance creates a new instance in the given zone. The instance
	// status is owned by the remote system and never set locally.
	InsertInstance(ctx context.Context, zone string, instance *compute.Instance) (*compute.Operation, error)
	GetInstance(ctx context.Context, zone, name string) (*compute.Instance, error)
	DeleteInstance(ctx context.Context, zone, name string) (*compute.Operation, error)
	// ListInstances returns all instances in the zone matching the filter
	// expression. An empty filter matches everything.
	ListInstances(ctx context.Context, zone, filter string) ([]*compute.Instance, error)
	StopInstance(ctx context.Context, zone, name string) (*compute.Operation, error)
	StartInstance(ctx context.Context, zone, name string) (*compute.Operation, error)
	// SetInstanceLabels replaces an instance's label set. The fingerprint is
	// the concurrency token from the last read of the instance.
	SetInstanceLabels(ctx context.Context, zone, name string, labels map[string]string, fingerprint string) (*compute.Operation, error)
	AttachDisk(ctx context.Context, zone, instance string, disk *compute.AttachedDisk) (*compute.Operation, error)
	DetachDisk(ctx context.Context, zone, instance, deviceName string) (*compute.Operation, error)
}

// DiskManager defines the interface for managing disks and taking
// per-disk snapshots.
type DiskManager interface {
	InsertDisk(ctx context.Context, zone string, disk *compute.Disk) (*compute.Operation, error)
	GetDisk(ctx context.Context, zone, name string) (*compute.Disk, error)
	DeleteDisk(ctx context.Context, zone, name string) (*compute.Operation, error)
	ListDisks(ctx context.Context, zone, filter string) ([]*compute.Disk, error)
	CreateDiskSnapshot(ctx context.Context, zone, disk string, snapshot *compute.Snapshot) (*compute.Operation, error)
}

// SnapshotManager defines the interface for managing snapshots.
// Snapshots are project-global resources, not zonal ones.
type SnapshotManager interface {
	ListSnapshots(ctx context.Context, filter string) ([]*compute.Snapshot, error)
	DeleteSnapshot(ctx context.Context, name string) (*compute.Operation, error)
}

// OperationWaiter re-fetches the status of an asynchronous operation.
// Zone operations cover instance and disk mutations; snapshot deletion
// yields a global operation.
type OperationWaiter interface {
	GetZoneOperation(ctx context.Context, zone, name string) (*compute.Operation, error)
	GetGlobalOperation(ctx context.Context, name string) (*compute.Operation, error)
}

// ComputeManager combines the full compute capability surface.
type ComputeManager interface {
	InstanceManager
	DiskManager
	SnapshotManager
	OperationWaiter
}
