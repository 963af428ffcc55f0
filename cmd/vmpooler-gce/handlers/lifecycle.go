package handlers

import (
	"context"
	"fmt"
	"os"
	"text/tabwriter"
	"time"

	"github.com/puppetlabs/vmpooler-provider-gce/internal/provider"
)

// List handles the list command.
func List(ctx context.Context, configPath, pool string) error {
	p, err := newProvider(configPath)
	if err != nil {
		return err
	}

	vms, err := p.ListPoolMembers(ctx, pool)
	if err != nil {
		return err
	}
	if len(vms) == 0 {
		fmt.Printf("pool %s has no members\n", pool)
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "NAME\tSTATUS\tZONE\tIP\tBOOTED")
	for _, vm := range vms {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n",
			vm.Name, vm.Status, vm.Zone, vm.IP, vm.BootTime.Format(time.RFC3339))
	}
	return w.Flush()
}

// Get handles the get command.
func Get(ctx context.Context, configPath, pool, name string) error {
	p, err := newProvider(configPath)
	if err != nil {
		return err
	}

	vm, err := p.GetVM(ctx, pool, name)
	if err != nil {
		return err
	}
	if vm == nil {
		return fmt.Errorf("vm %q not found in pool %q", name, pool)
	}

	printVM(vm)
	return nil
}

// Create handles the create command.
func Create(ctx context.Context, configPath, pool, name string) error {
	p, err := newProvider(configPath)
	if err != nil {
		return err
	}

	vm, err := p.CreateVM(ctx, pool, name)
	if err != nil {
		return fmt.Errorf("create failed: %w", err)
	}

	fmt.Printf("created %s in pool %s\n", vm.Name, pool)
	printVM(vm)
	return nil
}

// Destroy handles the destroy command.
func Destroy(ctx context.Context, configPath, pool, name string) error {
	p, err := newProvider(configPath)
	if err != nil {
		return err
	}

	if err := p.DestroyVM(ctx, pool, name); err != nil {
		return fmt.Errorf("destroy failed: %w", err)
	}

	fmt.Printf("destroyed %s\n", name)
	return nil
}

// AddDisk handles the add-disk command.
func AddDisk(ctx context.Context, configPath, pool, name string, sizeGB int64) error {
	if sizeGB <= 0 {
		return fmt.Errorf("disk size must be positive, got %d", sizeGB)
	}

	p, err := newProvider(configPath)
	if err != nil {
		return err
	}

	if err := p.CreateDisk(ctx, pool, name, sizeGB); err != nil {
		return fmt.Errorf("add-disk failed: %w", err)
	}

	fmt.Printf("attached a %dGB disk to %s\n", sizeGB, name)
	return nil
}

// Label handles the label command.
func Label(ctx context.Context, configPath, pool, name string, extra map[string]string) error {
	p, err := newProvider(configPath)
	if err != nil {
		return err
	}

	if err := p.LabelVM(ctx, pool, name, extra); err != nil {
		return fmt.Errorf("label failed: %w", err)
	}

	fmt.Printf("labeled %s\n", name)
	return nil
}

// Snapshot handles the snapshot command.
func Snapshot(ctx context.Context, configPath, pool, name, snapshot string) error {
	p, err := newProvider(configPath)
	if err != nil {
		return err
	}

	if err := p.CreateSnapshot(ctx, pool, name, snapshot); err != nil {
		return fmt.Errorf("snapshot failed: %w", err)
	}

	fmt.Printf("snapshotted %s as %s\n", name, snapshot)
	return nil
}

// Revert handles the revert command.
func Revert(ctx context.Context, configPath, pool, name, snapshot string) error {
	p, err := newProvider(configPath)
	if err != nil {
		return err
	}

	if err := p.RevertSnapshot(ctx, pool, name, snapshot); err != nil {
		return fmt.Errorf("revert failed: %w", err)
	}

	fmt.Printf("reverted %s to %s\n", name, snapshot)
	return nil
}

// Ready handles the ready command. A VM that does not answer is an error
// so scripted callers get a non-zero exit code.
func Ready(ctx context.Context, configPath, pool, name string) error {
	p, err := newProvider(configPath)
	if err != nil {
		return err
	}

	ready, err := p.IsReady(ctx, pool, name)
	if err != nil {
		return err
	}
	if !ready {
		return fmt.Errorf("vm %s is not ready", name)
	}

	fmt.Printf("%s is ready\n", name)
	return nil
}

// Purge handles the purge command.
func Purge(ctx context.Context, configPath string, allowList []string) error {
	p, err := newProvider(configPath)
	if err != nil {
		return err
	}

	if err := p.PurgeUnconfiguredResources(ctx, allowList); err != nil {
		return fmt.Errorf("purge failed: %w", err)
	}

	fmt.Println("purge complete")
	return nil
}

func printVM(vm *provider.VirtualMachine) {
	fmt.Printf("  name:         %s\n", vm.Name)
	fmt.Printf("  pool:         %s\n", vm.Pool)
	fmt.Printf("  status:       %s\n", vm.Status)
	fmt.Printf("  zone:         %s\n", vm.Zone)
	fmt.Printf("  machine type: %s\n", vm.MachineType)
	fmt.Printf("  template:     %s\n", vm.Template)
	fmt.Printf("  ip:           %s\n", vm.IP)
	if !vm.BootTime.IsZero() {
		fmt.Printf("  booted:       %s\n", vm.BootTime.Format(time.RFC3339))
	}
}
