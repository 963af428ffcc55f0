package commands

import (
	"github.com/spf13/cobra"

	"github.com/puppetlabs/vmpooler-provider-gce/cmd/vmpooler-gce/handlers"
)

// Get returns the get command.
func Get() *cobra.Command {
	var configPath string

	cmd := &cobra.Command{
		Use:   "get <pool> <vm>",
		Short: "Show one VM of a pool",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return handlers.Get(cmd.Context(), configPath, args[0], args[1])
		},
	}

	configFlag(cmd, &configPath)
	return cmd
}
