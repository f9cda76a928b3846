package cli

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/vk/fpgactl/internal/app"
)

func newFlowCmd(s *state, use, short string, run func(a *app.App, ctx context.Context, gui bool) error) *cobra.Command {
	var gui bool

	cmd := &cobra.Command{
		Use:   use,
		Short: short,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := s.newApp()
			if err != nil {
				return err
			}
			return run(a, cmd.Context(), gui)
		},
	}

	cmd.Flags().BoolVar(&gui, "gui", false, "Open the Vivado GUI instead of running in batch mode.")
	return cmd
}

func newSynthCmd(s *state) *cobra.Command {
	return newFlowCmd(s, "synth", "Synthesize the project with Vivado",
		func(a *app.App, ctx context.Context, gui bool) error { return a.Synth(ctx, gui) })
}

func newImplCmd(s *state) *cobra.Command {
	return newFlowCmd(s, "impl", "Run synthesis and implementation with Vivado",
		func(a *app.App, ctx context.Context, gui bool) error { return a.Impl(ctx, gui) })
}

func newBitCmd(s *state) *cobra.Command {
	return newFlowCmd(s, "bit", "Run the full Vivado flow through bitstream generation",
		func(a *app.App, ctx context.Context, gui bool) error { return a.Bit(ctx, gui) })
}
