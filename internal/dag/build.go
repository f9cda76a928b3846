package dag

import (
	"context"
	"fmt"

	"github.com/vk/fpgactl/internal/ctxlog"
	"github.com/vk/fpgactl/internal/registry"
)

// Build constructs the module dependency graph from a populated registry
// and validates that it is acyclic. Registered modules become nodes in
// registration order; each `deps.modules` entry becomes an edge.
func Build(ctx context.Context, reg *registry.Registry) (*Graph, error) {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("Building dependency graph.")

	graph := New()
	entries := reg.All()

	for _, e := range entries {
		graph.AddNode(e.Module.Name)
	}
	for _, e := range entries {
		for _, dep := range e.Module.Deps {
			if err := graph.AddEdge(dep, e.Module.Name); err != nil {
				return nil, fmt.Errorf("linking module '%s': %w", e.Module.Name, err)
			}
		}
	}

	if err := graph.DetectCycles(); err != nil {
		return nil, err
	}

	logger.Debug("Dependency graph built.", "node_count", len(graph.nodes))
	return graph, nil
}
