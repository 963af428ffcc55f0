// Package retry provides bounded retry with configurable backoff.
//
// The default policy is exponential backoff. A multiplier of 1.0 yields a
// fixed interval, which the DNS synchronizer uses for precondition
// conflicts. Errors wrapped with Fatal are never retried.
package retry
