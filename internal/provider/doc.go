// Package provider implements the pool operations against Compute Engine.
//
// The orchestrator is stateless between calls: resource identity lives in
// remote labels, the authoritative VM state lives in the remote system, and
// every read is a live lookup. Each public operation checks a compute client
// out of the connection pool for its duration, drives any asynchronous
// operations to completion through the poller, and returns a normalized
// snapshot or a typed error.
package provider
