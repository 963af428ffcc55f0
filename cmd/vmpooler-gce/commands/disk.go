package commands

import (
	"github.com/spf13/cobra"

	"github.com/puppetlabs/vmpooler-provider-gce/cmd/vmpooler-gce/handlers"
)

// AddDisk returns the add-disk command.
func AddDisk() *cobra.Command {
	var configPath string
	var sizeGB int64

	cmd := &cobra.Command{
		Use:   "add-disk <pool> <vm>",
		Short: "Create and attach an additional data disk",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return handlers.AddDisk(cmd.Context(), configPath, args[0], args[1], sizeGB)
		},
	}

	configFlag(cmd, &configPath)
	cmd.Flags().Int64Var(&sizeGB, "size", 10, "Disk size in GB")
	return cmd
}
