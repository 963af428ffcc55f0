// Package config loads and validates the provider and pool configuration.
//
// Configuration is a YAML file naming the GCP project, the optional DNS
// target, and the pools this provider manages. A pool is a named class of
// interchangeable VMs sharing a template, zone and machine type. Pool
// configuration is immutable per operation; the orchestrator resolves it
// fresh on every call and keeps no state of its own.
package config
