package dag

import (
	"fmt"

	"github.com/vk/fpgactl/internal/registry"
)

// walker carries the traversal state for one transitive-closure query. It
// replaces the implicit shared visited set of a bare recursive walk with an
// explicit context object, so diamond dependencies are counted once across
// the whole traversal.
type walker struct {
	graph   *Graph
	visited map[string]bool
	order   []string
}

// TransitiveDeps returns all dependencies of the named module, direct and
// indirect, in dependency-first post-order: each dependency's own
// dependencies appear before the dependency itself, and no name appears
// twice. A dependency name with no corresponding node fails loudly with
// UnresolvedDependencyError; a broken manifest is never a silent dead end.
func (g *Graph) TransitiveDeps(name string) ([]string, error) {
	if _, ok := g.nodes[name]; !ok {
		return nil, fmt.Errorf("node not found: %s", name)
	}
	w := &walker{
		graph:   g,
		visited: map[string]bool{name: true},
	}
	if err := w.walk(name); err != nil {
		return nil, err
	}
	return w.order, nil
}

// Closure returns the resolved closure of the named module: its transitive
// dependencies in dependency-first order, followed by the module itself.
func (g *Graph) Closure(name string) ([]string, error) {
	deps, err := g.TransitiveDeps(name)
	if err != nil {
		return nil, err
	}
	return append(deps, name), nil
}

func (w *walker) walk(name string) error {
	n := w.graph.nodes[name]
	for _, dep := range n.deps {
		if w.visited[dep] {
			continue
		}
		w.visited[dep] = true
		if _, ok := w.graph.nodes[dep]; !ok {
			return &registry.UnresolvedDependencyError{Module: name, Dependency: dep}
		}
		if err := w.walk(dep); err != nil {
			return err
		}
		w.order = append(w.order, dep)
	}
	return nil
}
