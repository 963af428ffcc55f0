package commands

import (
	"github.com/spf13/cobra"

	"github.com/puppetlabs/vmpooler-provider-gce/cmd/vmpooler-gce/handlers"
)

// Ready returns the ready command. It exits non-zero when the VM does not
// accept TCP connections on port 22.
func Ready() *cobra.Command {
	var configPath string

	cmd := &cobra.Command{
		Use:   "ready <pool> <vm>",
		Short: "Probe whether a VM accepts SSH connections",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return handlers.Ready(cmd.Context(), configPath, args[0], args[1])
		},
	}

	configFlag(cmd, &configPath)
	return cmd
}
