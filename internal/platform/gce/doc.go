// Package gce wraps the Google Compute Engine API surface this provider
// consumes: instance, disk and snapshot lifecycle, disk attach/detach,
// label mutation, filtered listing, and zone operation polling.
//
// Callers program against the capability interfaces in client.go; RealClient
// implements them over *compute.Service. Mutating calls return operation
// handles that must be driven to completion with Poller.Await. Client
// handles are checked out of a ConnectionPool for the duration of one
// logical operation and tolerate being stale: the underlying service is
// established lazily on first use.
package gce
