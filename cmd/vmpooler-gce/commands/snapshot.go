package commands

import (
	"github.com/spf13/cobra"

	"github.com/puppetlabs/vmpooler-provider-gce/cmd/vmpooler-gce/handlers"
)

// Snapshot returns the snapshot command.
//
// One logical snapshot produces one per-disk snapshot for every disk
// attached to the VM at that moment; the set is referenced by name on
// revert.
func Snapshot() *cobra.Command {
	var configPath string

	cmd := &cobra.Command{
		Use:   "snapshot <pool> <vm> <name>",
		Short: "Snapshot every disk attached to a VM",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			return handlers.Snapshot(cmd.Context(), configPath, args[0], args[1], args[2])
		},
	}

	configFlag(cmd, &configPath)
	return cmd
}
