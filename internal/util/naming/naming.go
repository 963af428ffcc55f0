package naming

import (
	"fmt"
	"strings"
)

// Naming functions for pool resources.
// Disk and snapshot names follow fixed patterns so resources can be traced
// back to their VM without any local bookkeeping.

// BootDisk returns the name of a VM's boot disk. Index 0 is reserved for
// the boot disk; data disks start at 1.
func BootDisk(vm string) string {
	return fmt.Sprintf("%s-disk0", vm)
}

// NextDisk returns the name for the next disk of a VM that currently has
// existing disks attached (the boot disk counts as one).
//
// Indexing by current disk count means deleting disks out of order and then
// adding a new one can reuse a name. That hazard is inherited behavior; the
// numbering scheme is deliberately left alone.
func NextDisk(vm string, existing int) string {
	return fmt.Sprintf("%s-disk%d", vm, existing)
}

// Snapshot returns the per-disk snapshot name for a logical snapshot.
// Disk names are VM-qualified, so the concatenation stays unique per project.
func Snapshot(logical, disk string) string {
	return fmt.Sprintf("%s-%s", logical, disk)
}

// DiskFromSource extracts a disk name from a source URL such as
// "projects/p/zones/z/disks/vm17-disk0".
func DiskFromSource(source string) string {
	if i := strings.LastIndex(source, "/"); i >= 0 {
		return source[i+1:]
	}
	return source
}
