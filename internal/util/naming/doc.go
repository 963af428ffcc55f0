// Package naming defines the deterministic names for disks and snapshots
// managed by the provider. Names are the only link between a VM and its
// disks and snapshots besides labels, so they must be stable and derivable
// from remote state alone.
package naming
