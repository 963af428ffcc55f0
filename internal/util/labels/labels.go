package labels

import "strings"

// Standard label keys for pool-managed GCE resources.
const (
	// KeyPool identifies which pool a resource belongs to.
	KeyPool = "pool"

	// KeyVM identifies the VM a disk or snapshot belongs to.
	KeyVM = "vm"

	// KeySnapshotName groups the per-disk snapshots of one logical snapshot.
	KeySnapshotName = "snapshot_name"

	// KeyDiskName records the disk a snapshot was taken from, so revert can
	// recreate the disk under its original name.
	KeyDiskName = "diskname"

	// KeyBoot records whether a snapshotted disk was the boot disk ("true"/"false").
	KeyBoot = "boot"
)

// Builder provides a fluent interface for building GCE resource labels.
type Builder struct {
	labels map[string]string
}

// New creates an empty label builder.
func New() *Builder {
	return &Builder{labels: make(map[string]string)}
}

// WithPool adds the pool membership label.
func (b *Builder) WithPool(pool string) *Builder {
	b.labels[KeyPool] = pool
	return b
}

// WithVM adds the owning-VM label.
func (b *Builder) WithVM(vm string) *Builder {
	b.labels[KeyVM] = vm
	return b
}

// WithSnapshotName adds the logical snapshot name label.
func (b *Builder) WithSnapshotName(name string) *Builder {
	b.labels[KeySnapshotName] = name
	return b
}

// WithDiskName adds the source disk name label.
func (b *Builder) WithDiskName(disk string) *Builder {
	b.labels[KeyDiskName] = disk
	return b
}

// WithBoot adds the boot flag label as a string.
func (b *Builder) WithBoot(boot bool) *Builder {
	if boot {
		b.labels[KeyBoot] = "true"
	} else {
		b.labels[KeyBoot] = "false"
	}
	return b
}

// Merge adds all labels from the provided map. Unknown keys pass through
// untouched for forward compatibility.
func (b *Builder) Merge(extra map[string]string) *Builder {
	for k, v := range extra {
		b.labels[k] = v
	}
	return b
}

// Build returns a copy of the labels map.
// Returns a copy to prevent external mutations.
func (b *Builder) Build() map[string]string {
	result := make(map[string]string, len(b.labels))
	for k, v := range b.labels {
		result[k] = v
	}
	return result
}

// IsBoot reports whether a snapshot's recorded boot label marks the boot disk.
// Anything other than the literal "true" means a data disk.
func IsBoot(resourceLabels map[string]string) bool {
	return resourceLabels[KeyBoot] == "true"
}

// ShouldIgnore reports whether a resource is exempt from purging, given the
// caller's allow-list. A nil allow-list exempts nothing. A resource is exempt
// when any of the following holds:
//
//   - its pool label value appears verbatim in the allow-list;
//   - the allow-list contains the empty string and the resource has no pool
//     label at all;
//   - a "key=value" entry in the allow-list matches one of the resource's
//     label pairs exactly.
//
// Entries are lower-cased before matching (GCE labels cannot contain
// uppercase). Normalization happens on a private copy; the caller's slice is
// never modified.
func ShouldIgnore(resourceLabels map[string]string, allowList []string) bool {
	if allowList == nil {
		return false
	}

	normalized := make([]string, len(allowList))
	for i, entry := range allowList {
		normalized[i] = strings.ToLower(entry)
	}

	pool, hasPool := resourceLabels[KeyPool]
	for _, entry := range normalized {
		if entry == "" {
			if !hasPool {
				return true
			}
			continue
		}
		if hasPool && entry == pool {
			return true
		}
		if k, v, ok := strings.Cut(entry, "="); ok {
			if actual, exists := resourceLabels[k]; exists && actual == v {
				return true
			}
		}
	}
	return false
}
