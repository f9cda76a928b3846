package toolrunner

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"runtime"

	"github.com/vk/fpgactl/internal/config"
	"github.com/vk/fpgactl/internal/ctxlog"
	"github.com/vk/fpgactl/internal/fsutil"
)

// VerilatorOptions selects the simulation build mode.
type VerilatorOptions struct {
	// LintOnly runs Verilator's lint pass without building a binary.
	LintOnly bool
	// Trace enables VCD waveform tracing; TraceFST enables FST instead.
	// Trace takes precedence when both are set.
	Trace    bool
	TraceFST bool
	// Clean removes the simulation build directory before compiling.
	Clean bool
}

// VerilatorArgs builds the Verilator command line for a resolved simulation
// plan. Pure; the caller decides whether to execute it.
func VerilatorArgs(exe string, plan *config.SimPlan, simDir string, opts VerilatorOptions) []string {
	argv := []string{exe}

	if opts.LintOnly {
		argv = append(argv, "--lint-only")
	} else {
		argv = append(argv, "--binary")
	}

	argv = append(argv, "-sv", "--top-module", plan.Top, "-Mdir", simDir)

	if opts.Trace {
		argv = append(argv, "--trace")
	} else if opts.TraceFST {
		argv = append(argv, "--trace-fst")
	}

	for _, inc := range plan.IncludeDirs {
		argv = append(argv, "+incdir+"+inc)
	}

	argv = append(argv, plan.VerilatorFlags...)
	argv = append(argv, plan.Sources...)
	return argv
}

// SimDir returns the build directory for one simulation target, inside the
// owning module's directory.
func SimDir(plan *config.SimPlan) string {
	return filepath.Join(plan.ModuleDir, "sim", plan.Target)
}

// SimBinary returns the path of the compiled simulation binary Verilator
// produces for the plan's top module.
func SimBinary(plan *config.SimPlan, simDir string) string {
	binary := filepath.Join(simDir, "V"+plan.Top)
	if runtime.GOOS == "windows" {
		binary += ".exe"
	}
	return binary
}

// Simulate verilates the plan and, unless lint-only, runs the produced
// binary and reports any waveform files it wrote.
func (r *Runner) Simulate(ctx context.Context, plan *config.SimPlan, opts VerilatorOptions) error {
	logger := ctxlog.FromContext(ctx)

	verilator, err := LookTool("verilator", "Install Verilator (>=5.0 recommended).")
	if err != nil {
		return err
	}

	simDir := SimDir(plan)
	if opts.Clean {
		if _, err := fsutil.RemoveDirs([]string{simDir}); err != nil {
			return fmt.Errorf("cleaning sim directory: %w", err)
		}
	}
	if err := os.MkdirAll(simDir, 0o755); err != nil {
		return fmt.Errorf("creating sim directory: %w", err)
	}

	if err := r.Run(ctx, simDir, VerilatorArgs(verilator, plan, simDir, opts)); err != nil {
		return err
	}
	if opts.LintOnly {
		fmt.Fprintln(r.outW, "Lint passed.")
		return nil
	}

	binary := SimBinary(plan, simDir)
	if !fsutil.Exists(binary) {
		return fmt.Errorf("expected simulation binary not found: %s", binary)
	}

	fmt.Fprintf(r.outW, "\n=== Running simulation: %s.%s (%s) ===\n\n", plan.Module, plan.Target, filepath.Base(binary))
	if err := r.Run(ctx, simDir, []string{binary}); err != nil {
		return err
	}

	for _, ext := range []string{".vcd", ".fst"} {
		waveforms, err := fsutil.FindFilesByExtension(simDir, ext)
		if err != nil {
			logger.Warn("Could not scan for waveforms.", "dir", simDir, "error", err)
			continue
		}
		for _, w := range waveforms {
			fmt.Fprintf(r.outW, "\nWaveform: %s\n", w)
		}
	}
	return nil
}
