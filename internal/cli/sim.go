package cli

import (
	"github.com/spf13/cobra"

	"github.com/vk/fpgactl/internal/app"
)

func newSimCmd(s *state) *cobra.Command {
	opts := app.SimOptions{}

	cmd := &cobra.Command{
		Use:   "sim [target]",
		Short: "Build and run a simulation target with Verilator",
		Long: `Resolves the named simulation target, aggregates the RTL sources of
the owning module and all of its transitive dependencies, builds the
model with Verilator and runs it. With no argument the 'default'
target is used.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) > 0 {
				opts.Target = args[0]
			}
			a, err := s.newApp()
			if err != nil {
				return err
			}
			return a.Sim(cmd.Context(), opts)
		},
	}

	cmd.Flags().StringVarP(&opts.Module, "module", "m", "", "Only search the named module for the target.")
	cmd.Flags().BoolVar(&opts.Trace, "trace", false, "Enable VCD waveform tracing.")
	cmd.Flags().BoolVar(&opts.TraceFST, "fst", false, "Enable FST waveform tracing.")
	cmd.Flags().BoolVar(&opts.Clean, "clean", false, "Remove the target's sim directory before building.")
	return cmd
}

func newLintCmd(s *state) *cobra.Command {
	opts := app.SimOptions{}

	cmd := &cobra.Command{
		Use:   "lint [target]",
		Short: "Run Verilator lint over a simulation target",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) > 0 {
				opts.Target = args[0]
			}
			a, err := s.newApp()
			if err != nil {
				return err
			}
			return a.Lint(cmd.Context(), opts)
		},
	}

	cmd.Flags().StringVarP(&opts.Module, "module", "m", "", "Only search the named module for the target.")
	return cmd
}

func newListCmd(s *state) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List every simulation target in the project",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := s.newApp()
			if err != nil {
				return err
			}
			return a.ListTargets(cmd.Context())
		},
	}
}
