package commands

import (
	"github.com/spf13/cobra"

	"github.com/puppetlabs/vmpooler-provider-gce/cmd/vmpooler-gce/handlers"
)

// Purge returns the purge command.
//
// Purge deletes instances, disks and snapshots whose pool label names no
// configured pool, across every zone used by the configuration. Allow-list
// entries exempt resources: a pool name, an empty string (resources with no
// pool label at all), or a key=value label token.
func Purge() *cobra.Command {
	var configPath string
	var allowList []string

	cmd := &cobra.Command{
		Use:   "purge",
		Short: "Delete resources owned by no configured pool",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return handlers.Purge(cmd.Context(), configPath, allowList)
		},
	}

	configFlag(cmd, &configPath)
	cmd.Flags().StringSliceVar(&allowList, "allow", nil, "Allow-list entries exempting resources from the purge")
	return cmd
}
