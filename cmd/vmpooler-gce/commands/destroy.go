package commands

import (
	"github.com/spf13/cobra"

	"github.com/puppetlabs/vmpooler-provider-gce/cmd/vmpooler-gce/handlers"
)

// Destroy returns the destroy command.
//
// The destroy command deletes the VM and sweeps up every disk and snapshot
// labeled as owned by it, including resources left behind by interrupted
// disk or revert operations. A VM that is already gone counts as success,
// so re-running destroy on a half-cleaned VM only deletes what remains.
func Destroy() *cobra.Command {
	var configPath string

	cmd := &cobra.Command{
		Use:   "destroy <pool> <vm>",
		Short: "Destroy a VM and its disks and snapshots",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return handlers.Destroy(cmd.Context(), configPath, args[0], args[1])
		},
	}

	configFlag(cmd, &configPath)
	return cmd
}
