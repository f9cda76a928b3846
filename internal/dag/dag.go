package dag

import "fmt"

// New creates and returns an initialized, empty Graph.
func New() *Graph {
	return &Graph{
		nodes: make(map[string]*node),
	}
}

// AddNode adds a new node with the given module name to the graph. If the
// node already exists, the function does nothing.
func (g *Graph) AddNode(name string) {
	if _, ok := g.nodes[name]; ok {
		return
	}
	g.nodes[name] = &node{
		name:   name,
		depSet: make(map[string]bool),
	}
	g.insertion = append(g.insertion, name)
}

// AddEdge records that `to` depends on `from`. Both nodes must already
// exist. A self-referential edge is reported as a cycle immediately.
// Duplicate edges are ignored so declaration order is kept intact.
func (g *Graph) AddEdge(from, to string) error {
	if from == to {
		return &CyclicDependencyError{Cycle: []string{from, from}}
	}
	if _, ok := g.nodes[from]; !ok {
		return fmt.Errorf("source node not found: %s", from)
	}
	toNode, ok := g.nodes[to]
	if !ok {
		return fmt.Errorf("destination node not found: %s", to)
	}
	if toNode.depSet[from] {
		return nil
	}
	toNode.depSet[from] = true
	toNode.deps = append(toNode.deps, from)
	return nil
}

// Dependencies returns the direct dependency names of a module, in
// declaration order.
func (g *Graph) Dependencies(name string) ([]string, error) {
	n, ok := g.nodes[name]
	if !ok {
		return nil, fmt.Errorf("node not found: %s", name)
	}
	deps := make([]string, len(n.deps))
	copy(deps, n.deps)
	return deps, nil
}

// DetectCycles checks the graph for circular dependencies using classic
// depth-first search with a recursion stack. The returned error names the
// full cycle path.
func (g *Graph) DetectCycles() error {
	visiting := make(map[string]bool)
	visited := make(map[string]bool)
	var stack []string

	var visit func(n *node) error
	visit = func(n *node) error {
		visiting[n.name] = true
		stack = append(stack, n.name)

		for _, depName := range n.deps {
			dep := g.nodes[depName]
			if dep == nil {
				continue
			}
			if visiting[depName] {
				return &CyclicDependencyError{Cycle: closeCycle(stack, depName)}
			}
			if !visited[depName] {
				if err := visit(dep); err != nil {
					return err
				}
			}
		}

		stack = stack[:len(stack)-1]
		delete(visiting, n.name)
		visited[n.name] = true
		return nil
	}

	for _, name := range g.insertion {
		if !visited[name] {
			if err := visit(g.nodes[name]); err != nil {
				return err
			}
		}
	}
	return nil
}

// closeCycle trims the recursion stack to the segment that starts at the
// revisited node and closes the loop by repeating it.
func closeCycle(stack []string, start string) []string {
	for i, name := range stack {
		if name == start {
			cycle := make([]string, 0, len(stack)-i+1)
			cycle = append(cycle, stack[i:]...)
			return append(cycle, start)
		}
	}
	return []string{start, start}
}
