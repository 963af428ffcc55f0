// Package labels provides consistent labeling for GCE resources.
//
// Labels are the sole identity and ownership mechanism in this provider:
// every managed instance and disk carries a pool label, every managed disk
// and snapshot carries a vm label, and snapshots additionally record the
// logical snapshot name, the originating disk name, and whether that disk
// was the boot disk. The purge allow-list check also lives here.
package labels
