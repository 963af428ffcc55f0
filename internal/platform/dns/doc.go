// Package dns keeps forward A records in sync with virtual machine
// lifecycle events. Records live in a Cloud DNS managed zone and are
// keyed by instance name under a configured domain.
package dns
