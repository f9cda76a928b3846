package resolve

import (
	"context"

	"github.com/vk/fpgactl/internal/config"
	"github.com/vk/fpgactl/internal/dag"
	"github.com/vk/fpgactl/internal/registry"
)

// Resolver answers "what files, what flags" questions over a registered
// module set. It is scoped to one resolution request.
type Resolver struct {
	reg   *registry.Registry
	graph *dag.Graph
}

// New creates a resolver over a populated registry and its validated graph.
func New(reg *registry.Registry, graph *dag.Graph) *Resolver {
	return &Resolver{reg: reg, graph: graph}
}

// RTLClosure returns the ordered union of RTL sources and include dirs
// contributed by the named module and all of its transitive dependencies.
// Dependency sources precede dependent sources; within-module declaration
// order is preserved. Deduplication happens at module level only: the
// closure never visits a module twice, but two modules listing the same
// file both contribute it, since files are module-scoped by convention.
func (r *Resolver) RTLClosure(ctx context.Context, moduleName string) (sources, includeDirs []string, err error) {
	closure, err := r.graph.Closure(moduleName)
	if err != nil {
		return nil, nil, err
	}
	for _, name := range closure {
		entry, ok := r.reg.Lookup(name)
		if !ok {
			return nil, nil, &registry.UnresolvedDependencyError{Module: moduleName, Dependency: name}
		}
		sources = append(sources, resolvePaths(ctx, entry.Dir, entry.Module.Sources)...)
		includeDirs = append(includeDirs, resolvePaths(ctx, entry.Dir, entry.Module.IncludeDirs)...)
	}
	return sources, includeDirs, nil
}

// ProjectRTL returns every registered module's RTL sources and include dirs
// in registration order. This is the whole-project variant used for
// synthesis, as opposed to the per-module closure used for simulation.
func (r *Resolver) ProjectRTL(ctx context.Context) (sources, includeDirs []string) {
	for _, entry := range r.reg.All() {
		sources = append(sources, resolvePaths(ctx, entry.Dir, entry.Module.Sources)...)
		includeDirs = append(includeDirs, resolvePaths(ctx, entry.Dir, entry.Module.IncludeDirs)...)
	}
	return sources, includeDirs
}

// ProjectConstraints returns every registered module's constraint files in
// registration order.
func (r *Resolver) ProjectConstraints(ctx context.Context) []string {
	var constraints []string
	for _, entry := range r.reg.All() {
		constraints = append(constraints, resolvePaths(ctx, entry.Dir, entry.Module.Constraints)...)
	}
	return constraints
}

// SynthPlan assembles the whole-project build inputs for the synthesis
// flow. The project must carry a synth block.
func (r *Resolver) SynthPlan(ctx context.Context) (*config.SynthPlan, error) {
	synth := r.reg.Project().Synth
	if synth == nil {
		return nil, &MissingSynthConfigError{}
	}
	sources, includeDirs := r.ProjectRTL(ctx)
	return &config.SynthPlan{
		Top:         synth.Top,
		Part:        synth.Part,
		Sources:     sources,
		IncludeDirs: includeDirs,
		Constraints: r.ProjectConstraints(ctx),
	}, nil
}
