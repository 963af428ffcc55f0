package commands

import (
	"github.com/spf13/cobra"

	"github.com/puppetlabs/vmpooler-provider-gce/cmd/vmpooler-gce/handlers"
)

// Revert returns the revert command.
//
// Revert stops the VM, replaces its disks with ones recreated from the
// named snapshot set, and starts it again. The sequence is not atomic: a
// failure midway can leave the VM stopped with a partial disk set, in
// which case re-running the revert is the recovery path.
func Revert() *cobra.Command {
	var configPath string

	cmd := &cobra.Command{
		Use:   "revert <pool> <vm> <snapshot>",
		Short: "Revert a VM to a snapshot",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			return handlers.Revert(cmd.Context(), configPath, args[0], args[1], args[2])
		},
	}

	configFlag(cmd, &configPath)
	return cmd
}
