// Package commands defines the CLI command structure and flag bindings.
//
// This package contains cobra command definitions that handle argument
// parsing, flag binding, and validation. Command execution is delegated to
// handler functions in the handlers package.
package commands

import "github.com/spf13/cobra"

// defaultConfigPath is used when --config is not given.
const defaultConfigPath = "vmpooler-gce.yaml"

// Root returns the root command for the vmpooler-gce CLI.
func Root() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "vmpooler-gce",
		Short: "Manage pooled VMs on Google Compute Engine",
	}

	cmd.AddCommand(List())
	cmd.AddCommand(Get())
	cmd.AddCommand(Create())
	cmd.AddCommand(Destroy())
	cmd.AddCommand(AddDisk())
	cmd.AddCommand(Label())
	cmd.AddCommand(Snapshot())
	cmd.AddCommand(Revert())
	cmd.AddCommand(Ready())
	cmd.AddCommand(Purge())
	cmd.AddCommand(Version())

	return cmd
}

// configFlag binds the shared --config flag.
func configFlag(cmd *cobra.Command, configPath *string) {
	cmd.Flags().StringVarP(configPath, "config", "c", defaultConfigPath, "Path to the provider configuration file")
}
