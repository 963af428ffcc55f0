package provider

import "fmt"

// VMNotFoundError reports an operation against a VM that does not exist.
// GetVM and DestroyVM swallow the underlying 404 instead of raising this;
// the disk and snapshot operations require the VM to be present.
type VMNotFoundError struct {
	Pool string
	VM   string
}

func (e *VMNotFoundError) Error() string {
	return fmt.Sprintf("vm %q does not exist in pool %q", e.VM, e.Pool)
}

// SnapshotExistsError reports a snapshot create against a name already in use.
type SnapshotExistsError struct {
	VM       string
	Snapshot string
}

func (e *SnapshotExistsError) Error() string {
	return fmt.Sprintf("snapshot %q for vm %q already exists", e.Snapshot, e.VM)
}

// SnapshotNotFoundError reports a revert against a snapshot that does not exist.
type SnapshotNotFoundError struct {
	VM       string
	Snapshot string
}

func (e *SnapshotNotFoundError) Error() string {
	return fmt.Sprintf("snapshot %q for vm %q does not exist", e.Snapshot, e.VM)
}
