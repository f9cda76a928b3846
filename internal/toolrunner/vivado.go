package toolrunner

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/vk/fpgactl/internal/config"
)

// Flow selects how far the Vivado batch run goes.
type Flow int

const (
	// FlowSynth stops after synthesis.
	FlowSynth Flow = iota
	// FlowImpl runs synthesis and implementation.
	FlowImpl
	// FlowBit runs the full flow through bitstream generation.
	FlowBit
)

// String returns the flow's short name, used for script and artifact names.
func (f Flow) String() string {
	switch f {
	case FlowSynth:
		return "synth"
	case FlowImpl:
		return "impl"
	default:
		return "bit"
	}
}

// VivadoScript renders the batch Tcl script driving the requested flow over
// a resolved synthesis plan. Pure; paths are emitted with forward slashes,
// which Vivado accepts on every platform.
func VivadoScript(plan *config.SynthPlan, flow Flow, buildDir string) string {
	var sb strings.Builder

	fmt.Fprintf(&sb, "# Generated by fpgactl; do not edit.\n")
	for _, src := range plan.Sources {
		fmt.Fprintf(&sb, "read_verilog -sv {%s}\n", tclPath(src))
	}
	for _, xdc := range plan.Constraints {
		fmt.Fprintf(&sb, "read_xdc {%s}\n", tclPath(xdc))
	}

	incArgs := ""
	if len(plan.IncludeDirs) > 0 {
		dirs := make([]string, len(plan.IncludeDirs))
		for i, d := range plan.IncludeDirs {
			dirs[i] = tclPath(d)
		}
		incArgs = fmt.Sprintf(" -include_dirs {%s}", strings.Join(dirs, " "))
	}

	fmt.Fprintf(&sb, "synth_design -top %s -part %s%s\n", plan.Top, plan.Part, incArgs)
	fmt.Fprintf(&sb, "write_checkpoint -force {%s}\n", tclPath(filepath.Join(buildDir, "post_synth.dcp")))
	fmt.Fprintf(&sb, "report_utilization -file {%s}\n", tclPath(filepath.Join(buildDir, "utilization_synth.rpt")))

	if flow >= FlowImpl {
		fmt.Fprintf(&sb, "opt_design\nplace_design\nroute_design\n")
		fmt.Fprintf(&sb, "write_checkpoint -force {%s}\n", tclPath(filepath.Join(buildDir, "post_route.dcp")))
		fmt.Fprintf(&sb, "report_timing_summary -file {%s}\n", tclPath(filepath.Join(buildDir, "timing_summary.rpt")))
	}
	if flow >= FlowBit {
		fmt.Fprintf(&sb, "write_bitstream -force {%s}\n", tclPath(filepath.Join(buildDir, plan.Top+".bit")))
	}
	return sb.String()
}

// tclPath normalizes a path for embedding in Tcl.
func tclPath(p string) string {
	return filepath.ToSlash(p)
}

// Synthesize writes the flow script under buildDir and runs Vivado over it,
// in batch mode by default or in the GUI when requested.
func (r *Runner) Synthesize(ctx context.Context, plan *config.SynthPlan, flow Flow, buildDir string, gui bool) error {
	vivado, err := LookTool("vivado", "Source the Vivado settings script first.")
	if err != nil {
		return err
	}

	if err := os.MkdirAll(buildDir, 0o755); err != nil {
		return fmt.Errorf("creating build directory: %w", err)
	}

	script := filepath.Join(buildDir, flow.String()+".tcl")
	if err := os.WriteFile(script, []byte(VivadoScript(plan, flow, buildDir)), 0o644); err != nil {
		return fmt.Errorf("writing flow script: %w", err)
	}

	mode := "batch"
	if gui {
		mode = "gui"
	}
	return r.Run(ctx, buildDir, []string{vivado, "-mode", mode, "-source", script})
}
