package cli

import (
	"github.com/spf13/cobra"
)

func newNewCmd(s *state) *cobra.Command {
	var deps []string

	cmd := &cobra.Command{
		Use:   "new <name>",
		Short: "Scaffold a new module and declare it in the project",
		Long: `Creates hdl/<name>/ with a starter source file, a testbench, and a
manifest.hcl, then adds the module to the project.hcl module list.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := s.newApp()
			if err != nil {
				return err
			}
			return a.New(cmd.Context(), args[0], deps)
		},
	}

	cmd.Flags().StringSliceVar(&deps, "deps", nil, "Module names the new module depends on.")
	return cmd
}

func newCleanCmd(s *state) *cobra.Command {
	return &cobra.Command{
		Use:   "clean",
		Short: "Remove generated build and simulation outputs",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := s.newApp()
			if err != nil {
				return err
			}
			return a.Clean(cmd.Context())
		},
	}
}
