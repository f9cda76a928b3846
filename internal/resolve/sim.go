package resolve

import (
	"context"
	"fmt"

	"github.com/vk/fpgactl/internal/config"
	"github.com/vk/fpgactl/internal/ctxlog"
)

// ResolveSim looks up a named simulation target across the registry and
// assembles its build plan. If moduleFilter is non-empty, only that module
// is considered. The first module in registration order whose sim mapping
// contains the target wins; later modules with the same target name are
// never considered. Target names are expected to be unique per project by
// convention, but uniqueness is not enforced here.
func (r *Resolver) ResolveSim(ctx context.Context, target, moduleFilter string) (*config.SimPlan, error) {
	logger := ctxlog.FromContext(ctx)

	for _, entry := range r.reg.All() {
		if moduleFilter != "" && entry.Module.Name != moduleFilter {
			continue
		}
		t, ok := entry.Module.Target(target)
		if !ok {
			continue
		}

		rtlSources, rtlIncludeDirs, err := r.RTLClosure(ctx, entry.Module.Name)
		if err != nil {
			return nil, err
		}

		// RTL closure first, then the target's own testbench inputs.
		sources := append(rtlSources, resolvePaths(ctx, entry.Dir, t.Sources)...)
		includeDirs := append(rtlIncludeDirs, resolvePaths(ctx, entry.Dir, t.IncludeDirs)...)

		// Concatenation, not override: project-wide flags first, then the
		// target's. Duplicates are both passed through to the tool.
		global := r.reg.Project().VerilatorFlags
		flags := make([]string, 0, len(global)+len(t.VerilatorFlags))
		flags = append(flags, global...)
		flags = append(flags, t.VerilatorFlags...)

		logger.Debug("Simulation target resolved.",
			"module", entry.Module.Name,
			"target", target,
			"sources", len(sources),
		)
		return &config.SimPlan{
			Module:         entry.Module.Name,
			ModuleDir:      entry.Dir,
			Target:         target,
			Top:            t.Top,
			Sources:        sources,
			IncludeDirs:    includeDirs,
			VerilatorFlags: flags,
		}, nil
	}

	return nil, &TargetNotFoundError{
		Target:       target,
		ModuleFilter: moduleFilter,
		Available:    r.ListTargets(ctx),
	}
}

// ListTargets returns every simulation target in the project as
// "module.target" strings: one entry per (module, target) pair in
// registration order, target order as declared in each manifest.
func (r *Resolver) ListTargets(ctx context.Context) []string {
	var targets []string
	for _, entry := range r.reg.All() {
		for _, t := range entry.Module.SimTargets {
			targets = append(targets, fmt.Sprintf("%s.%s", entry.Module.Name, t.Name))
		}
	}
	return targets
}
