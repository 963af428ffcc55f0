package commands

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/puppetlabs/vmpooler-provider-gce/cmd/vmpooler-gce/handlers"
)

// Label returns the label command. Labels are given as key=value pairs and
// merged into the VM's existing label set.
func Label() *cobra.Command {
	var configPath string

	cmd := &cobra.Command{
		Use:   "label <pool> <vm> <key=value>...",
		Short: "Merge labels into a VM's label set",
		Args:  cobra.MinimumNArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			extra := make(map[string]string, len(args)-2)
			for _, pair := range args[2:] {
				k, v, ok := strings.Cut(pair, "=")
				if !ok || k == "" {
					return fmt.Errorf("invalid label %q, expected key=value", pair)
				}
				extra[k] = v
			}
			return handlers.Label(cmd.Context(), configPath, args[0], args[1], extra)
		},
	}

	configFlag(cmd, &configPath)
	return cmd
}
