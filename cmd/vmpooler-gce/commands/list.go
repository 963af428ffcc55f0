package commands

import (
	"github.com/spf13/cobra"

	"github.com/puppetlabs/vmpooler-provider-gce/cmd/vmpooler-gce/handlers"
)

// List returns the list command.
func List() *cobra.Command {
	var configPath string

	cmd := &cobra.Command{
		Use:   "list <pool>",
		Short: "List the members of a pool",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return handlers.List(cmd.Context(), configPath, args[0])
		},
	}

	configFlag(cmd, &configPath)
	return cmd
}
