// Package main is the entry point for the vmpooler-gce CLI.
//
// vmpooler-gce manages pools of interchangeable virtual machines on
// Google Compute Engine: creating VMs from pool templates, attaching
// disks, snapshotting and reverting, destroying VMs together with their
// disks and snapshots, and purging resources that no configured pool
// owns.
//
// For detailed usage information, run:
//
//	vmpooler-gce --help
package main

import (
	"fmt"
	"os"

	"github.com/puppetlabs/vmpooler-provider-gce/cmd/vmpooler-gce/commands"
)

// Version information set by goreleaser at build time.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	commands.SetVersionInfo(version, commit, date)
	if err := commands.Root().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
