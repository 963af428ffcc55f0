package commands

import (
	"github.com/spf13/cobra"

	"github.com/puppetlabs/vmpooler-provider-gce/cmd/vmpooler-gce/handlers"
)

// Create returns the create command.
//
// The create command provisions a new VM from the pool's template and
// waits until the remote system reports the instance as created. When a
// domain is configured, an A record is synchronized best-effort.
func Create() *cobra.Command {
	var configPath string

	cmd := &cobra.Command{
		Use:   "create <pool> <vm>",
		Short: "Create a VM from a pool's template",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return handlers.Create(cmd.Context(), configPath, args[0], args[1])
		},
	}

	configFlag(cmd, &configPath)
	return cmd
}
