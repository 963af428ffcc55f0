package gce

import (
	"context"
	"fmt"
	"sync"

	compute "google.golang.org/api/compute/v1"
	"google.golang.org/api/option"
)

// RealClient implements ComputeManager using the Compute Engine API.
//
// The underlying service is established lazily on first use, so a handle
// that sat idle in the connection pool (or was constructed before
// credentials were available) reconnects transparently.
type RealClient struct {
	project         string
	credentialsFile string

	mu      sync.Mutex
	service *compute.Service
}

// ClientOption configures a RealClient.
type ClientOption func(*RealClient)

// WithCredentialsFile sets a service account key file. Without it,
// application default credentials are used.
func WithCredentialsFile(path string) ClientOption {
	return func(c *RealClient) {
		c.credentialsFile = path
	}
}

// WithService sets a pre-built compute service (useful for testing).
func WithService(svc *compute.Service) ClientOption {
	return func(c *RealClient) {
		c.service = svc
	}
}

// NewRealClient creates a new RealClient scoped to a project.
func NewRealClient(project string, opts ...ClientOption) *RealClient {
	c := &RealClient{project: project}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// ensureService returns the compute service, establishing it if the handle
// is fresh or was never connected.
func (c *RealClient) ensureService(ctx context.Context) (*compute.Service, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.service != nil {
		return c.service, nil
	}

	var opts []option.ClientOption
	if c.credentialsFile != "" {
		opts = append(opts, option.WithCredentialsFile(c.credentialsFile))
	}
	svc, err := compute.NewService(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create compute service: %w", err)
	}
	c.service = svc
	return svc, nil
}

// InsertInstance creates a new instance in the given zone.
func (c *RealClient) InsertInstance(ctx context.Context, zone string, instance *compute.Instance) (*compute.Operation, error) {
	svc, err := c.ensureService(ctx)
	if err != nil {
		return nil, err
	}
	return svc.Instances.Insert(c.project, zone, instance).Context(ctx).Do()
}

// GetInstance fetches an instance by name.
func (c *RealClient) GetInstance(ctx context.Context, zone, name string) (*compute.Instance, error) {
	svc, err := c.ensureService(ctx)
	if err != nil {
		return nil, err
	}
	return svc.Instances.Get(c.project, zone, name).Context(ctx).Do()
}

// DeleteInstance deletes an instance by name.
func (c *RealClient) DeleteInstance(ctx context.Context, zone, name string) (*compute.Operation, error) {
	svc, err := c.ensureService(ctx)
	if err != nil {
		return nil, err
	}
	return svc.Instances.Delete(c.project, zone, name).Context(ctx).Do()
}

// ListInstances returns all instances in the zone matching the filter.
func (c *RealClient) ListInstances(ctx context.Context, zone, filter string) ([]*compute.Instance, error) {
	svc, err := c.ensureService(ctx)
	if err != nil {
		return nil, err
	}
	var instances []*compute.Instance
	call := svc.Instances.List(c.project, zone)
	if filter != "" {
		call = call.Filter(filter)
	}
	err = call.Pages(ctx, func(page *compute.InstanceList) error {
		instances = append(instances, page.Items...)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list instances: %w", err)
	}
	return instances, nil
}

// StopInstance stops a running instance.
func (c *RealClient) StopInstance(ctx context.Context, zone, name string) (*compute.Operation, error) {
	svc, err := c.ensureService(ctx)
	if err != nil {
		return nil, err
	}
	return svc.Instances.Stop(c.project, zone, name).Context(ctx).Do()
}

// StartInstance starts a stopped instance.
func (c *RealClient) StartInstance(ctx context.Context, zone, name string) (*compute.Operation, error) {
	svc, err := c.ensureService(ctx)
	if err != nil {
		return nil, err
	}
	return svc.Instances.Start(c.project, zone, name).Context(ctx).Do()
}

// SetInstanceLabels replaces an instance's label set using the fingerprint
// from the last read as the concurrency token.
func (c *RealClient) SetInstanceLabels(ctx context.Context, zone, name string, labels map[string]string, fingerprint string) (*compute.Operation, error) {
	svc, err := c.ensureService(ctx)
	if err != nil {
		return nil, err
	}
	req := &compute.InstancesSetLabelsRequest{
		Labels:           labels,
		LabelFingerprint: fingerprint,
	}
	return svc.Instances.SetLabels(c.project, zone, name, req).Context(ctx).Do()
}

// AttachDisk attaches a disk to an instance.
func (c *RealClient) AttachDisk(ctx context.Context, zone, instance string, disk *compute.AttachedDisk) (*compute.Operation, error) {
	svc, err := c.ensureService(ctx)
	if err != nil {
		return nil, err
	}
	return svc.Instances.AttachDisk(c.project, zone, instance, disk).Context(ctx).Do()
}

// DetachDisk detaches a disk from an instance by device name.
func (c *RealClient) DetachDisk(ctx context.Context, zone, instance, deviceName string) (*compute.Operation, error) {
	svc, err := c.ensureService(ctx)
	if err != nil {
		return nil, err
	}
	return svc.Instances.DetachDisk(c.project, zone, instance, deviceName).Context(ctx).Do()
}

// InsertDisk creates a new disk in the given zone.
func (c *RealClient) InsertDisk(ctx context.Context, zone string, disk *compute.Disk) (*compute.Operation, error) {
	svc, err := c.ensureService(ctx)
	if err != nil {
		return nil, err
	}
	return svc.Disks.Insert(c.project, zone, disk).Context(ctx).Do()
}

// GetDisk fetches a disk by name.
func (c *RealClient) GetDisk(ctx context.Context, zone, name string) (*compute.Disk, error) {
	svc, err := c.ensureService(ctx)
	if err != nil {
		return nil, err
	}
	return svc.Disks.Get(c.project, zone, name).Context(ctx).Do()
}

// DeleteDisk deletes a disk by name.
func (c *RealClient) DeleteDisk(ctx context.Context, zone, name string) (*compute.Operation, error) {
	svc, err := c.ensureService(ctx)
	if err != nil {
		return nil, err
	}
	return svc.Disks.Delete(c.project, zone, name).Context(ctx).Do()
}

// ListDisks returns all disks in the zone matching the filter.
func (c *RealClient) ListDisks(ctx context.Context, zone, filter string) ([]*compute.Disk, error) {
	svc, err := c.ensureService(ctx)
	if err != nil {
		return nil, err
	}
	var disks []*compute.Disk
	call := svc.Disks.List(c.project, zone)
	if filter != "" {
		call = call.Filter(filter)
	}
	err = call.Pages(ctx, func(page *compute.DiskList) error {
		disks = append(disks, page.Items...)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list disks: %w", err)
	}
	return disks, nil
}

// CreateDiskSnapshot snapshots a single disk.
func (c *RealClient) CreateDiskSnapshot(ctx context.Context, zone, disk string, snapshot *compute.Snapshot) (*compute.Operation, error) {
	svc, err := c.ensureService(ctx)
	if err != nil {
		return nil, err
	}
	return svc.Disks.CreateSnapshot(c.project, zone, disk, snapshot).Context(ctx).Do()
}

// ListSnapshots returns all snapshots in the project matching the filter.
func (c *RealClient) ListSnapshots(ctx context.Context, filter string) ([]*compute.Snapshot, error) {
	svc, err := c.ensureService(ctx)
	if err != nil {
		return nil, err
	}
	var snapshots []*compute.Snapshot
	call := svc.Snapshots.List(c.project)
	if filter != "" {
		call = call.Filter(filter)
	}
	err = call.Pages(ctx, func(page *compute.SnapshotList) error {
		snapshots = append(snapshots, page.Items...)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list snapshots: %w", err)
	}
	return snapshots, nil
}

// DeleteSnapshot deletes a snapshot by name.
func (c *RealClient) DeleteSnapshot(ctx context.Context, name string) (*compute.Operation, error) {
	svc, err := c.ensureService(ctx)
	if err != nil {
		return nil, err
	}
	return svc.Snapshots.Delete(c.project, name).Context(ctx).Do()
}

// GetZoneOperation re-fetches a zone operation's current status.
func (c *RealClient) GetZoneOperation(ctx context.Context, zone, name string) (*compute.Operation, error) {
	svc, err := c.ensureService(ctx)
	if err != nil {
		return nil, err
	}
	return svc.ZoneOperations.Get(c.project, zone, name).Context(ctx).Do()
}

// GetGlobalOperation re-fetches a global operation's current status.
func (c *RealClient) GetGlobalOperation(ctx context.Context, name string) (*compute.Operation, error) {
	svc, err := c.ensureService(ctx)
	if err != nil {
		return nil, err
	}
	return svc.GlobalOperations.Get(c.project, name).Context(ctx).Do()
}
