package provider

import (
	"context"
	"net/http"

	compute "google.golang.org/api/compute/v1"
	"google.golang.org/api/googleapi"
)

// MockCompute implements gce.ComputeManager with overridable behavior.
// Unset funcs fall back to benign defaults: mutations return an already
// terminal operation and lists return nothing.
type MockCompute struct {
	InsertInstanceFunc     func(ctx context.Context, zone string, instance *compute.Instance) (*compute.Operation, error)
	GetInstanceFunc        func(ctx context.Context, zone, name string) (*compute.Instance, error)
	DeleteInstanceFunc     func(ctx context.Context, zone, name string) (*compute.Operation, error)
	ListInstancesFunc      func(ctx context.Context, zone, filter string) ([]*compute.Instance, error)
	StopInstanceFunc       func(ctx context.Context, zone, name string) (*compute.Operation, error)
	StartInstanceFunc      func(ctx context.Context, zone, name string) (*compute.Operation, error)
	SetInstanceLabelsFunc  func(ctx context.Context, zone, name string, labels map[string]string, fingerprint string) (*compute.Operation, error)
	AttachDiskFunc         func(ctx context.Context, zone, instance string, disk *compute.AttachedDisk) (*compute.Operation, error)
	DetachDiskFunc         func(ctx context.Context, zone, instance, deviceName string) (*compute.Operation, error)
	InsertDiskFunc         func(ctx context.Context, zone string, disk *compute.Disk) (*compute.Operation, error)
	GetDiskFunc            func(ctx context.Context, zone, name string) (*compute.Disk, error)
	DeleteDiskFunc         func(ctx context.Context, zone, name string) (*compute.Operation, error)
	ListDisksFunc          func(ctx context.Context, zone, filter string) ([]*compute.Disk, error)
	CreateDiskSnapshotFunc func(ctx context.Context, zone, disk string, snapshot *compute.Snapshot) (*compute.Operation, error)
	ListSnapshotsFunc      func(ctx context.Context, filter string) ([]*compute.Snapshot, error)
	DeleteSnapshotFunc     func(ctx context.Context, name string) (*compute.Operation, error)
	GetZoneOperationFunc   func(ctx context.Context, zone, name string) (*compute.Operation, error)
	GetGlobalOperationFunc func(ctx context.Context, name string) (*compute.Operation, error)
}

func doneOp(name string) *compute.Operation {
	return &compute.Operation{Name: name, Status: "DONE"}
}

func notFoundErr() error {
	return &googleapi.Error{Code: http.StatusNotFound}
}

func (m *MockCompute) InsertInstance(ctx context.Context, zone string, instance *compute.Instance) (*compute.Operation, error) {
	if m.InsertInstanceFunc != nil {
		return m.InsertInstanceFunc(ctx, zone, instance)
	}
	return doneOp("insert-" + instance.Name), nil
}

func (m *MockCompute) GetInstance(ctx context.Context, zone, name string) (*compute.Instance, error) {
	if m.GetInstanceFunc != nil {
		return m.GetInstanceFunc(ctx, zone, name)
	}
	return &compute.Instance{Name: name}, nil
}

func (m *MockCompute) DeleteInstance(ctx context.Context, zone, name string) (*compute.Operation, error) {
	if m.DeleteInstanceFunc != nil {
		return m.DeleteInstanceFunc(ctx, zone, name)
	}
	return doneOp("delete-" + name), nil
}

func (m *MockCompute) ListInstances(ctx context.Context, zone, filter string) ([]*compute.Instance, error) {
	if m.ListInstancesFunc != nil {
		return m.ListInstancesFunc(ctx, zone, filter)
	}
	return nil, nil
}

func (m *MockCompute) StopInstance(ctx context.Context, zone, name string) (*compute.Operation, error) {
	if m.StopInstanceFunc != nil {
		return m.StopInstanceFunc(ctx, zone, name)
	}
	return doneOp("stop-" + name), nil
}

func (m *MockCompute) StartInstance(ctx context.Context, zone, name string) (*compute.Operation, error) {
	if m.StartInstanceFunc != nil {
		return m.StartInstanceFunc(ctx, zone, name)
	}
	return doneOp("start-" + name), nil
}

func (m *MockCompute) SetInstanceLabels(ctx context.Context, zone, name string, labels map[string]string, fingerprint string) (*compute.Operation, error) {
	if m.SetInstanceLabelsFunc != nil {
		return m.SetInstanceLabelsFunc(ctx, zone, name, labels, fingerprint)
	}
	return doneOp("set-labels-" + name), nil
}

func (m *MockCompute) AttachDisk(ctx context.Context, zone, instance string, disk *compute.AttachedDisk) (*compute.Operation, error) {
	if m.AttachDiskFunc != nil {
		return m.AttachDiskFunc(ctx, zone, instance, disk)
	}
	return doneOp("attach-" + disk.DeviceName), nil
}

func (m *MockCompute) DetachDisk(ctx context.Context, zone, instance, deviceName string) (*compute.Operation, error) {
	if m.DetachDiskFunc != nil {
		return m.DetachDiskFunc(ctx, zone, instance, deviceName)
	}
	return doneOp("detach-" + deviceName), nil
}

func (m *MockCompute) InsertDisk(ctx context.Context, zone string, disk *compute.Disk) (*compute.Operation, error) {
	if m.InsertDiskFunc != nil {
		return m.InsertDiskFunc(ctx, zone, disk)
	}
	return doneOp("insert-" + disk.Name), nil
}

func (m *MockCompute) GetDisk(ctx context.Context, zone, name string) (*compute.Disk, error) {
	if m.GetDiskFunc != nil {
		return m.GetDiskFunc(ctx, zone, name)
	}
	return &compute.Disk{Name: name, SelfLink: "projects/test/zones/" + zone + "/disks/" + name}, nil
}

func (m *MockCompute) DeleteDisk(ctx context.Context, zone, name string) (*compute.Operation, error) {
	if m.DeleteDiskFunc != nil {
		return m.DeleteDiskFunc(ctx, zone, name)
	}
	return doneOp("delete-" + name), nil
}

func (m *MockCompute) ListDisks(ctx context.Context, zone, filter string) ([]*compute.Disk, error) {
	if m.ListDisksFunc != nil {
		return m.ListDisksFunc(ctx, zone, filter)
	}
	return nil, nil
}

func (m *MockCompute) CreateDiskSnapshot(ctx context.Context, zone, disk string, snapshot *compute.Snapshot) (*compute.Operation, error) {
	if m.CreateDiskSnapshotFunc != nil {
		return m.CreateDiskSnapshotFunc(ctx, zone, disk, snapshot)
	}
	return doneOp("snapshot-" + snapshot.Name), nil
}

func (m *MockCompute) ListSnapshots(ctx context.Context, filter string) ([]*compute.Snapshot, error) {
	if m.ListSnapshotsFunc != nil {
		return m.ListSnapshotsFunc(ctx, filter)
	}
	return nil, nil
}

func (m *MockCompute) DeleteSnapshot(ctx context.Context, name string) (*compute.Operation, error) {
	if m.DeleteSnapshotFunc != nil {
		return m.DeleteSnapshotFunc(ctx, name)
	}
	return doneOp("delete-" + name), nil
}

func (m *MockCompute) GetZoneOperation(ctx context.Context, zone, name string) (*compute.Operation, error) {
	if m.GetZoneOperationFunc != nil {
		return m.GetZoneOperationFunc(ctx, zone, name)
	}
	return doneOp(name), nil
}

func (m *MockCompute) GetGlobalOperation(ctx context.Context, name string) (*compute.Operation, error) {
	if m.GetGlobalOperationFunc != nil {
		return m.GetGlobalOperationFunc(ctx, name)
	}
	return doneOp(name), nil
}
