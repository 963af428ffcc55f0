// Package async provides helpers for fan-out/fan-in execution.
//
// The provider submits batches of independent remote operations without
// waiting, then waits on all of them together: per-disk snapshot creation
// and the disk/snapshot sweeps during VM destruction. RunParallel is the
// fan-in half of that pattern.
package async
