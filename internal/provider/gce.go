package provider

import (
	"context"
	"errors"
	"fmt"
	"net"
	"time"

	"github.com/puppetlabs/vmpooler-provider-gce/internal/config"
	"github.com/puppetlabs/vmpooler-provider-gce/internal/platform/dns"
	"github.com/puppetlabs/vmpooler-provider-gce/internal/platform/gce"
	"github.com/puppetlabs/vmpooler-provider-gce/internal/util/async"
	"github.com/puppetlabs/vmpooler-provider-gce/internal/util/labels"
	"github.com/puppetlabs/vmpooler-provider-gce/internal/util/naming"
	compute "google.golang.org/api/compute/v1"
)

const sshPort = "22"

// DialFunc opens a bounded-timeout TCP connection. Injectable for tests.
type DialFunc func(network, address string, timeout time.Duration) (net.Conn, error)

// GCE implements Provider against Compute Engine. It holds no per-VM
// state; every operation checks a client handle out of the connection pool
// for its duration and releases it on all exit paths.
type GCE struct {
	cfg      *config.Config
	timeouts *config.Timeouts
	pool     *gce.ConnectionPool
	poller   *gce.Poller
	dns      dns.Synchronizer
	observer Observer
	metrics  *Metrics
	dial     DialFunc
}

// Option configures a GCE provider.
type Option func(*GCE)

// WithObserver sets the observer for lifecycle events.
func WithObserver(o Observer) Option {
	return func(g *GCE) {
		g.observer = o
	}
}

// WithDNS enables A-record synchronization. DNS updates are best-effort:
// failures are reported as events and never fail the VM operation.
func WithDNS(s dns.Synchronizer) Option {
	return func(g *GCE) {
		g.dns = s
	}
}

// WithTimeouts overrides the environment-derived timing configuration.
func WithTimeouts(t *config.Timeouts) Option {
	return func(g *GCE) {
		g.timeouts = t
	}
}

// WithMetrics sets the metrics sink.
func WithMetrics(m *Metrics) Option {
	return func(g *GCE) {
		g.metrics = m
	}
}

// WithDialer replaces the readiness probe's dialer.
func WithDialer(d DialFunc) Option {
	return func(g *GCE) {
		g.dial = d
	}
}

// NewGCE creates a provider over the given configuration and client pool.
func NewGCE(cfg *config.Config, pool *gce.ConnectionPool, opts ...Option) *GCE {
	g := &GCE{
		cfg:      cfg,
		pool:     pool,
		observer: NewConsoleObserver(),
		dial:     net.DialTimeout,
	}
	for _, opt := range opts {
		opt(g)
	}
	if g.timeouts == nil {
		g.timeouts = config.LoadTimeouts()
	}
	g.poller = gce.NewPoller(g.timeouts.PollInterval)
	return g
}

func (g *GCE) ListPoolMembers(ctx context.Context, pool string) (vms []*VirtualMachine, err error) {
	defer g.track("list_pool_members", time.Now(), &err)

	poolCfg, err := g.cfg.Pool(pool)
	if err != nil {
		return nil, err
	}

	client, release, err := g.pool.Checkout(ctx)
	if err != nil {
		return nil, err
	}
	defer release()

	instances, err := client.ListInstances(ctx, poolCfg.Zone, gce.LabelEquals(labels.KeyPool, pool))
	if err != nil {
		return nil, fmt.Errorf("listing pool %s: %w", pool, err)
	}

	vms = make([]*VirtualMachine, len(instances))
	for i, instance := range instances {
		vms[i] = normalizeVM(instance, poolCfg.Template)
	}
	return vms, nil
}

func (g *GCE) GetVM(ctx context.Context, pool, name string) (vm *VirtualMachine, err error) {
	defer g.track("get_vm", time.Now(), &err)

	poolCfg, err := g.cfg.Pool(pool)
	if err != nil {
		return nil, err
	}

	client, release, err := g.pool.Checkout(ctx)
	if err != nil {
		return nil, err
	}
	defer release()

	return g.fetchVM(ctx, client, poolCfg, name)
}

// fetchVM reads an instance and normalizes it. An absent instance is
// (nil, nil).
func (g *GCE) fetchVM(ctx context.Context, client gce.ComputeManager, poolCfg *config.PoolConfig, name string) (*VirtualMachine, error) {
	instance, err := client.GetInstance(ctx, poolCfg.Zone, name)
	if err != nil {
		if gce.IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("fetching instance %s: %w", name, err)
	}
	return normalizeVM(instance, poolCfg.Template), nil
}

func (g *GCE) CreateVM(ctx context.Context, pool, name string) (vm *VirtualMachine, err error) {
	defer g.track("create_vm", time.Now(), &err)

	poolCfg, err := g.cfg.Pool(pool)
	if err != nil {
		return nil, err
	}

	client, release, err := g.pool.Checkout(ctx)
	if err != nil {
		return nil, err
	}
	defer release()

	resourceLabels := labels.New().WithVM(name).WithPool(pool).Build()
	instance := &compute.Instance{
		Name:        name,
		MachineType: fmt.Sprintf("zones/%s/machineTypes/%s", poolCfg.Zone, poolCfg.MachineType),
		Labels:      resourceLabels,
		Disks: []*compute.AttachedDisk{{
			Boot:       true,
			DeviceName: naming.BootDisk(name),
			InitializeParams: &compute.AttachedDiskInitializeParams{
				DiskName:    naming.BootDisk(name),
				SourceImage: poolCfg.Template,
				DiskType:    g.diskTypeURL(poolCfg),
				Labels:      resourceLabels,
			},
		}},
		NetworkInterfaces: []*compute.NetworkInterface{{
			Network:    poolCfg.Network,
			Subnetwork: poolCfg.Subnetwork,
		}},
	}

	g.event(Event{Type: EventResourceCreating, Operation: "create_vm", Resource: name,
		Message: "creating instance", Fields: map[string]string{"pool": pool}})

	// A 404 here (e.g. missing template) is a creation failure, not an
	// absent-VM condition.
	op, err := client.InsertInstance(ctx, poolCfg.Zone, instance)
	if err != nil {
		return nil, fmt.Errorf("creating instance %s: %w", name, err)
	}
	if _, err := g.await(ctx, client, poolCfg.Zone, op); err != nil {
		return nil, err
	}

	vm, err = g.fetchVM(ctx, client, poolCfg, name)
	if err != nil {
		return nil, err
	}
	if vm == nil {
		return nil, fmt.Errorf("instance %s missing after creation", name)
	}

	g.event(Event{Type: EventResourceCreated, Operation: "create_vm", Resource: name,
		Message: "instance created", Fields: map[string]string{"ip": vm.IP}})

	g.syncDNS(ctx, name, vm.IP)
	return vm, nil
}

func (g *GCE) CreateDisk(ctx context.Context, pool, vm string, sizeGB int64) (err error) {
	defer g.track("create_disk", time.Now(), &err)

	poolCfg, err := g.cfg.Pool(pool)
	if err != nil {
		return err
	}

	client, release, err := g.pool.Checkout(ctx)
	if err != nil {
		return err
	}
	defer release()

	instance, err := client.GetInstance(ctx, poolCfg.Zone, vm)
	if err != nil {
		if gce.IsNotFound(err) {
			return &VMNotFoundError{Pool: pool, VM: vm}
		}
		return fmt.Errorf("fetching instance %s: %w", vm, err)
	}

	diskName := naming.NextDisk(vm, len(instance.Disks))
	disk := &compute.Disk{
		Name:   diskName,
		SizeGb: sizeGB,
		Type:   g.diskTypeURL(poolCfg),
		Labels: labels.New().WithVM(vm).WithPool(pool).Build(),
	}

	op, err := client.InsertDisk(ctx, poolCfg.Zone, disk)
	if err != nil {
		return fmt.Errorf("creating disk %s: %w", diskName, err)
	}
	if _, err := g.await(ctx, client, poolCfg.Zone, op); err != nil {
		return err
	}

	// No compensation if the attach fails past this point; an orphaned disk
	// is swept up by DestroyVM's label-based cleanup.
	created, err := client.GetDisk(ctx, poolCfg.Zone, diskName)
	if err != nil {
		return fmt.Errorf("fetching disk %s: %w", diskName, err)
	}

	op, err = client.AttachDisk(ctx, poolCfg.Zone, vm, &compute.AttachedDisk{
		Source:     created.SelfLink,
		DeviceName: diskName,
	})
	if err != nil {
		return fmt.Errorf("attaching disk %s: %w", diskName, err)
	}
	if _, err := g.await(ctx, client, poolCfg.Zone, op); err != nil {
		return err
	}

	g.event(Event{Type: EventResourceCreated, Operation: "create_disk", Resource: diskName,
		Message: "disk created and attached", Fields: map[string]string{"vm": vm}})
	return nil
}

func (g *GCE) CreateSnapshot(ctx context.Context, pool, vm, snapshot string) (err error) {
	defer g.track("create_snapshot", time.Now(), &err)

	poolCfg, err := g.cfg.Pool(pool)
	if err != nil {
		return err
	}

	client, release, err := g.pool.Checkout(ctx)
	if err != nil {
		return err
	}
	defer release()

	instance, err := client.GetInstance(ctx, poolCfg.Zone, vm)
	if err != nil {
		if gce.IsNotFound(err) {
			return &VMNotFoundError{Pool: pool, VM: vm}
		}
		return fmt.Errorf("fetching instance %s: %w", vm, err)
	}

	existing, err := client.ListSnapshots(ctx, snapshotSetFilter(vm, snapshot))
	if err != nil {
		return fmt.Errorf("listing snapshots of %s: %w", vm, err)
	}
	if len(existing) > 0 {
		return &SnapshotExistsError{VM: vm, Snapshot: snapshot}
	}

	// Fan-out: submit one snapshot per attached disk without waiting, so
	// wall time is bounded by one round trip rather than one full poll
	// cycle per disk.
	type submitted struct {
		name string
		op   *compute.Operation
	}
	var ops []submitted
	for _, attached := range instance.Disks {
		diskName := naming.DiskFromSource(attached.Source)
		snap := &compute.Snapshot{
			Name: naming.Snapshot(snapshot, diskName),
			Labels: labels.New().
				WithSnapshotName(snapshot).
				WithVM(vm).
				WithPool(pool).
				WithDiskName(diskName).
				WithBoot(attached.Boot).
				Build(),
		}
		op, err := client.CreateDiskSnapshot(ctx, poolCfg.Zone, diskName, snap)
		if err != nil {
			return fmt.Errorf("snapshotting disk %s: %w", diskName, err)
		}
		ops = append(ops, submitted{name: snap.Name, op: op})
	}

	// Fan-in: wait on every handle together.
	tasks := make([]async.Task, len(ops))
	for i, s := range ops {
		tasks[i] = async.Task{
			Name: s.name,
			Func: func(ctx context.Context) error {
				_, err := g.await(ctx, client, poolCfg.Zone, s.op)
				return err
			},
		}
	}
	if err := async.RunParallel(ctx, tasks); err != nil {
		return fmt.Errorf("snapshot %s: %w", snapshot, err)
	}

	g.event(Event{Type: EventResourceCreated, Operation: "create_snapshot", Resource: snapshot,
		Message: fmt.Sprintf("snapshotted %d disks", len(ops)), Fields: map[string]string{"vm": vm}})
	return nil
}

func (g *GCE) RevertSnapshot(ctx context.Context, pool, vm, snapshot string) (err error) {
	defer g.track("revert_snapshot", time.Now(), &err)

	poolCfg, err := g.cfg.Pool(pool)
	if err != nil {
		return err
	}

	client, release, err := g.pool.Checkout(ctx)
	if err != nil {
		return err
	}
	defer release()

	instance, err := client.GetInstance(ctx, poolCfg.Zone, vm)
	if err != nil {
		if gce.IsNotFound(err) {
			return &VMNotFoundError{Pool: pool, VM: vm}
		}
		return fmt.Errorf("fetching instance %s: %w", vm, err)
	}

	snapshots, err := client.ListSnapshots(ctx, snapshotSetFilter(vm, snapshot))
	if err != nil {
		return fmt.Errorf("listing snapshots of %s: %w", vm, err)
	}
	if len(snapshots) == 0 {
		return &SnapshotNotFoundError{VM: vm, Snapshot: snapshot}
	}

	// The sequence below is not atomic. A failure after the stop leaves the
	// VM stopped with a partial disk set; the caller retries the whole
	// revert, which is idempotent at the boundaries.
	op, err := client.StopInstance(ctx, poolCfg.Zone, vm)
	if err != nil {
		return fmt.Errorf("stopping instance %s: %w", vm, err)
	}
	if _, err := g.await(ctx, client, poolCfg.Zone, op); err != nil {
		return err
	}

	for _, attached := range instance.Disks {
		op, err := client.DetachDisk(ctx, poolCfg.Zone, vm, attached.DeviceName)
		if err != nil {
			return fmt.Errorf("detaching disk %s: %w", attached.DeviceName, err)
		}
		if _, err := g.await(ctx, client, poolCfg.Zone, op); err != nil {
			return err
		}

		diskName := naming.DiskFromSource(attached.Source)
		op, err = client.DeleteDisk(ctx, poolCfg.Zone, diskName)
		if err != nil {
			return fmt.Errorf("deleting disk %s: %w", diskName, err)
		}
		if _, err := g.await(ctx, client, poolCfg.Zone, op); err != nil {
			return err
		}
	}

	for _, snap := range snapshots {
		diskName := snap.Labels[labels.KeyDiskName]
		disk := &compute.Disk{
			Name:           diskName,
			SourceSnapshot: snap.SelfLink,
			Type:           g.diskTypeURL(poolCfg),
			Labels:         labels.New().WithVM(vm).WithPool(pool).Build(),
		}
		op, err := client.InsertDisk(ctx, poolCfg.Zone, disk)
		if err != nil {
			return fmt.Errorf("recreating disk %s: %w", diskName, err)
		}
		if _, err := g.await(ctx, client, poolCfg.Zone, op); err != nil {
			return err
		}

		created, err := client.GetDisk(ctx, poolCfg.Zone, diskName)
		if err != nil {
			return fmt.Errorf("fetching disk %s: %w", diskName, err)
		}
		op, err = client.AttachDisk(ctx, poolCfg.Zone, vm, &compute.AttachedDisk{
			Source:     created.SelfLink,
			DeviceName: diskName,
			Boot:       labels.IsBoot(snap.Labels),
		})
		if err != nil {
			return fmt.Errorf("attaching disk %s: %w", diskName, err)
		}
		if _, err := g.await(ctx, client, poolCfg.Zone, op); err != nil {
			return err
		}
	}

	op, err = client.StartInstance(ctx, poolCfg.Zone, vm)
	if err != nil {
		return fmt.Errorf("starting instance %s: %w", vm, err)
	}
	if _, err := g.await(ctx, client, poolCfg.Zone, op); err != nil {
		return err
	}

	g.event(Event{Type: EventResourceCreated, Operation: "revert_snapshot", Resource: vm,
		Message: fmt.Sprintf("reverted to snapshot %s", snapshot)})
	return nil
}

func (g *GCE) LabelVM(ctx context.Context, pool, vm string, extra map[string]string) (err error) {
	defer g.track("label_vm", time.Now(), &err)

	poolCfg, err := g.cfg.Pool(pool)
	if err != nil {
		return err
	}

	client, release, err := g.pool.Checkout(ctx)
	if err != nil {
		return err
	}
	defer release()

	instance, err := client.GetInstance(ctx, poolCfg.Zone, vm)
	if err != nil {
		if gce.IsNotFound(err) {
			return &VMNotFoundError{Pool: pool, VM: vm}
		}
		return fmt.Errorf("fetching instance %s: %w", vm, err)
	}

	merged := labels.New().Merge(instance.Labels).Merge(extra).Build()
	op, err := client.SetInstanceLabels(ctx, poolCfg.Zone, vm, merged, instance.LabelFingerprint)
	if err != nil {
		return fmt.Errorf("labeling instance %s: %w", vm, err)
	}
	if _, err := g.await(ctx, client, poolCfg.Zone, op); err != nil {
		return err
	}
	return nil
}

func (g *GCE) DestroyVM(ctx context.Context, pool, vm string) (err error) {
	defer g.track("destroy_vm", time.Now(), &err)

	poolCfg, err := g.cfg.Pool(pool)
	if err != nil {
		return err
	}

	client, release, err := g.pool.Checkout(ctx)
	if err != nil {
		return err
	}
	defer release()

	existed := true
	_, err = client.GetInstance(ctx, poolCfg.Zone, vm)
	if err != nil {
		if !gce.IsNotFound(err) {
			return fmt.Errorf("fetching instance %s: %w", vm, err)
		}
		existed = false
	}

	if existed {
		g.event(Event{Type: EventResourceDeleting, Operation: "destroy_vm", Resource: vm,
			Message: "deleting instance"})

		op, err := client.DeleteInstance(ctx, poolCfg.Zone, vm)
		if err != nil {
			return fmt.Errorf("deleting instance %s: %w", vm, err)
		}
		// Delete is the step most sensitive to losing track of completion,
		// so it gets the larger transport-failure budget.
		if _, err := g.poller.Await(ctx, client, poolCfg.Zone, op, g.timeouts.DestroyAwaitRetries); err != nil {
			return err
		}

		g.removeDNS(ctx, vm)
	}

	// Sweep disks and snapshots left behind by interrupted create or revert
	// sequences. Failures here are aggregated, never swallowed.
	var cleanup []error
	cleanup = append(cleanup, g.sweepDisks(ctx, client, poolCfg.Zone, vm))
	cleanup = append(cleanup, g.sweepSnapshots(ctx, client, vm))
	if err := errors.Join(cleanup...); err != nil {
		return fmt.Errorf("destroy %s cleanup: %w", vm, err)
	}

	g.event(Event{Type: EventResourceDeleted, Operation: "destroy_vm", Resource: vm,
		Message: "instance and owned resources deleted"})
	return nil
}

// sweepDisks deletes all disks labeled as owned by vm, fan-out then fan-in.
func (g *GCE) sweepDisks(ctx context.Context, client gce.ComputeManager, zone, vm string) error {
	disks, err := client.ListDisks(ctx, zone, gce.LabelEquals(labels.KeyVM, vm))
	if err != nil {
		return fmt.Errorf("listing disks of %s: %w", vm, err)
	}

	type submitted struct {
		name string
		op   *compute.Operation
	}
	var ops []submitted
	var errs []error
	for _, disk := range disks {
		op, err := client.DeleteDisk(ctx, zone, disk.Name)
		if err != nil {
			if gce.IsNotFound(err) {
				continue
			}
			errs = append(errs, fmt.Errorf("deleting disk %s: %w", disk.Name, err))
			continue
		}
		ops = append(ops, submitted{name: disk.Name, op: op})
	}

	tasks := make([]async.Task, len(ops))
	for i, s := range ops {
		tasks[i] = async.Task{
			Name: s.name,
			Func: func(ctx context.Context) error {
				_, err := g.await(ctx, client, zone, s.op)
				return err
			},
		}
	}
	errs = append(errs, async.RunParallel(ctx, tasks))
	return errors.Join(errs...)
}

// sweepSnapshots deletes all snapshots labeled as owned by vm, across every
// logical snapshot name. Snapshot deletion yields global operations.
func (g *GCE) sweepSnapshots(ctx context.Context, client gce.ComputeManager, vm string) error {
	snapshots, err := client.ListSnapshots(ctx, gce.LabelEquals(labels.KeyVM, vm))
	if err != nil {
		return fmt.Errorf("listing snapshots of %s: %w", vm, err)
	}

	type submitted struct {
		name string
		op   *compute.Operation
	}
	var ops []submitted
	var errs []error
	for _, snap := range snapshots {
		op, err := client.DeleteSnapshot(ctx, snap.Name)
		if err != nil {
			if gce.IsNotFound(err) {
				continue
			}
			errs = append(errs, fmt.Errorf("deleting snapshot %s: %w", snap.Name, err))
			continue
		}
		ops = append(ops, submitted{name: snap.Name, op: op})
	}

	tasks := make([]async.Task, len(ops))
	for i, s := range ops {
		tasks[i] = async.Task{
			Name: s.name,
			Func: func(ctx context.Context) error {
				_, err := g.poller.AwaitGlobal(ctx, client, s.op, g.timeouts.AwaitRetries)
				return err
			},
		}
	}
	errs = append(errs, async.RunParallel(ctx, tasks))
	return errors.Join(errs...)
}

func (g *GCE) IsReady(ctx context.Context, pool, vm string) (ready bool, err error) {
	defer g.track("is_ready", time.Now(), &err)

	if _, err := g.cfg.Pool(pool); err != nil {
		return false, err
	}

	host := vm
	if g.cfg.DNSEnabled() {
		host = fmt.Sprintf("%s.%s", vm, g.cfg.Provider.Domain)
	}

	conn, dialErr := g.dial("tcp", net.JoinHostPort(host, sshPort), g.timeouts.ReadyCheck)
	if dialErr != nil {
		return false, nil
	}
	_ = conn.Close()
	return true, nil
}

func (g *GCE) PurgeUnconfiguredResources(ctx context.Context, allowList []string) (err error) {
	defer g.track("purge", time.Now(), &err)

	client, release, err := g.pool.Checkout(ctx)
	if err != nil {
		return err
	}
	defer release()

	filter := gce.LabelNotIn(labels.KeyPool, g.cfg.PoolNames())
	var errs []error

	for _, zone := range g.cfg.Zones() {
		errs = append(errs, g.purgeZone(ctx, client, zone, filter, allowList))
	}

	// Snapshots are project-global, so one sweep after the zone loop.
	snapshots, listErr := client.ListSnapshots(ctx, filter)
	if listErr != nil {
		errs = append(errs, fmt.Errorf("listing snapshots: %w", listErr))
	}
	for _, snap := range snapshots {
		if labels.ShouldIgnore(snap.Labels, allowList) {
			g.event(Event{Type: EventResourceSkipped, Operation: "purge", Resource: snap.Name,
				Message: "snapshot exempted by allow-list"})
			continue
		}
		if _, err := client.DeleteSnapshot(ctx, snap.Name); err != nil && !gce.IsNotFound(err) {
			g.event(Event{Type: EventOperationFailed, Operation: "purge", Resource: snap.Name,
				Message: fmt.Sprintf("snapshot delete failed: %v", err)})
		}
	}

	return errors.Join(errs...)
}

// purgeZone deletes unmanaged instances and disks in one zone. Instance
// deletions are awaited so the disk sweep sees a consistent label set; disk
// deletions are fire-and-forget since nothing downstream depends on their
// completion.
func (g *GCE) purgeZone(ctx context.Context, client gce.ComputeManager, zone, filter string, allowList []string) error {
	instances, err := client.ListInstances(ctx, zone, filter)
	if err != nil {
		return fmt.Errorf("listing instances in %s: %w", zone, err)
	}

	type submitted struct {
		name string
		op   *compute.Operation
	}
	var ops []submitted
	var errs []error
	for _, instance := range instances {
		if labels.ShouldIgnore(instance.Labels, allowList) {
			g.event(Event{Type: EventResourceSkipped, Operation: "purge", Resource: instance.Name,
				Message: "instance exempted by allow-list"})
			continue
		}
		op, err := client.DeleteInstance(ctx, zone, instance.Name)
		if err != nil {
			if gce.IsNotFound(err) {
				continue
			}
			errs = append(errs, fmt.Errorf("deleting instance %s: %w", instance.Name, err))
			continue
		}
		g.event(Event{Type: EventResourceDeleting, Operation: "purge", Resource: instance.Name,
			Message: "deleting unmanaged instance", Fields: map[string]string{"zone": zone}})
		ops = append(ops, submitted{name: instance.Name, op: op})
	}

	tasks := make([]async.Task, len(ops))
	for i, s := range ops {
		tasks[i] = async.Task{
			Name: s.name,
			Func: func(ctx context.Context) error {
				_, err := g.await(ctx, client, zone, s.op)
				return err
			},
		}
	}
	errs = append(errs, async.RunParallel(ctx, tasks))

	disks, err := client.ListDisks(ctx, zone, filter)
	if err != nil {
		errs = append(errs, fmt.Errorf("listing disks in %s: %w", zone, err))
		return errors.Join(errs...)
	}
	for _, disk := range disks {
		if labels.ShouldIgnore(disk.Labels, allowList) {
			g.event(Event{Type: EventResourceSkipped, Operation: "purge", Resource: disk.Name,
				Message: "disk exempted by allow-list"})
			continue
		}
		if _, err := client.DeleteDisk(ctx, zone, disk.Name); err != nil && !gce.IsNotFound(err) {
			g.event(Event{Type: EventOperationFailed, Operation: "purge", Resource: disk.Name,
				Message: fmt.Sprintf("disk delete failed: %v", err)})
		}
	}

	return errors.Join(errs...)
}

// await drives a zone operation to completion with the default budget.
func (g *GCE) await(ctx context.Context, client gce.ComputeManager, zone string, op *compute.Operation) (*compute.Operation, error) {
	return g.poller.Await(ctx, client, zone, op, g.timeouts.AwaitRetries)
}

// syncDNS points the VM's A record at ip, best-effort.
func (g *GCE) syncDNS(ctx context.Context, vm, ip string) {
	if g.dns == nil || !g.cfg.DNSEnabled() || ip == "" {
		return
	}
	if err := g.dns.Upsert(ctx, vm, ip); err != nil {
		g.event(Event{Type: EventDNSFailed, Operation: "create_vm", Resource: vm,
			Message: fmt.Sprintf("record upsert failed: %v", err)})
		return
	}
	g.event(Event{Type: EventDNSSynced, Operation: "create_vm", Resource: vm,
		Message: fmt.Sprintf("record points at %s", ip)})
}

// removeDNS tears down the VM's A record, best-effort.
func (g *GCE) removeDNS(ctx context.Context, vm string) {
	if g.dns == nil || !g.cfg.DNSEnabled() {
		return
	}
	if err := g.dns.Remove(ctx, vm); err != nil {
		g.event(Event{Type: EventDNSFailed, Operation: "destroy_vm", Resource: vm,
			Message: fmt.Sprintf("record removal failed: %v", err)})
		return
	}
	g.event(Event{Type: EventDNSSynced, Operation: "destroy_vm", Resource: vm,
		Message: "record removed"})
}

// snapshotSetFilter selects the per-disk snapshots of one logical snapshot.
func snapshotSetFilter(vm, snapshot string) string {
	return gce.AllOf(
		gce.LabelEquals(labels.KeyVM, vm),
		gce.LabelEquals(labels.KeySnapshotName, snapshot),
	)
}

func (g *GCE) diskTypeURL(poolCfg *config.PoolConfig) string {
	return fmt.Sprintf("zones/%s/diskTypes/%s", poolCfg.Zone, poolCfg.DiskType)
}

func (g *GCE) event(e Event) {
	g.observer.Event(e)
}

// track records metrics for one finished public operation and reports its
// failure, if any, as an event.
func (g *GCE) track(operation string, start time.Time, err *error) {
	g.metrics.Observe(operation, start, *err)
	if *err != nil {
		g.event(Event{
			Type:      EventOperationFailed,
			Operation: operation,
			Message:   (*err).Error(),
		})
	}
}
