package app

import (
	"context"
	"fmt"

	"github.com/vk/fpgactl/internal/toolrunner"
)

// SimOptions selects a simulation target and controls how Verilator runs it.
type SimOptions struct {
	// Target is the simulation target name. Empty means "default".
	Target string
	// Module restricts the target search to a single module by name.
	Module string
	// Trace enables VCD waveform tracing.
	Trace bool
	// TraceFST enables FST waveform tracing instead of VCD.
	TraceFST bool
	// Clean removes the target's sim directory before building.
	Clean bool
}

func (o SimOptions) target() string {
	if o.Target == "" {
		return "default"
	}
	return o.Target
}

// Sim resolves the requested simulation target and builds and runs it
// with Verilator.
func (a *App) Sim(parent context.Context, opts SimOptions) error {
	ctx := a.ctx(parent)
	if err := a.ensureLoaded(ctx); err != nil {
		return err
	}

	plan, err := a.resolver.ResolveSim(ctx, opts.target(), opts.Module)
	if err != nil {
		return err
	}
	a.logger.Info("Resolved simulation target.",
		"module", plan.Module, "target", plan.Target, "top", plan.Top,
		"sources", len(plan.Sources))

	return a.runner.Simulate(ctx, plan, toolrunner.VerilatorOptions{
		Trace:    opts.Trace,
		TraceFST: opts.TraceFST,
		Clean:    opts.Clean,
	})
}

// Lint resolves the requested simulation target and runs Verilator in
// lint-only mode over it, without building or executing a binary.
func (a *App) Lint(parent context.Context, opts SimOptions) error {
	ctx := a.ctx(parent)
	if err := a.ensureLoaded(ctx); err != nil {
		return err
	}

	plan, err := a.resolver.ResolveSim(ctx, opts.target(), opts.Module)
	if err != nil {
		return err
	}

	if err := a.runner.Simulate(ctx, plan, toolrunner.VerilatorOptions{
		LintOnly: true,
		Clean:    opts.Clean,
	}); err != nil {
		return err
	}
	fmt.Fprintf(a.outW, "Lint passed for %s.%s\n", plan.Module, plan.Target)
	return nil
}

// ListTargets prints every simulation target in the project as
// "module.target", one per line, in registration order.
func (a *App) ListTargets(parent context.Context) error {
	ctx := a.ctx(parent)
	if err := a.ensureLoaded(ctx); err != nil {
		return err
	}

	targets := a.resolver.ListTargets(ctx)
	if len(targets) == 0 {
		fmt.Fprintln(a.outW, "No simulation targets found.")
		return nil
	}
	for _, t := range targets {
		fmt.Fprintln(a.outW, t)
	}
	return nil
}
