package app

import (
	"context"
	"path/filepath"

	"github.com/vk/fpgactl/internal/toolrunner"
)

// BuildDirName is the directory under the project root where Vivado
// flow outputs are written.
const BuildDirName = "build"

// Synth runs Vivado synthesis over the aggregated project sources.
func (a *App) Synth(ctx context.Context, gui bool) error {
	return a.vivadoFlow(ctx, toolrunner.FlowSynth, gui)
}

// Impl runs synthesis followed by implementation (place and route).
func (a *App) Impl(ctx context.Context, gui bool) error {
	return a.vivadoFlow(ctx, toolrunner.FlowImpl, gui)
}

// Bit runs the full flow through bitstream generation.
func (a *App) Bit(ctx context.Context, gui bool) error {
	return a.vivadoFlow(ctx, toolrunner.FlowBit, gui)
}

func (a *App) vivadoFlow(parent context.Context, flow toolrunner.Flow, gui bool) error {
	ctx := a.ctx(parent)
	if err := a.ensureLoaded(ctx); err != nil {
		return err
	}

	plan, err := a.resolver.SynthPlan(ctx)
	if err != nil {
		return err
	}
	a.logger.Info("Resolved synthesis inputs.",
		"top", plan.Top, "part", plan.Part,
		"sources", len(plan.Sources), "constraints", len(plan.Constraints))

	buildDir := filepath.Join(a.cfg.Root, BuildDirName)
	return a.runner.Synthesize(ctx, plan, flow, buildDir, gui)
}
