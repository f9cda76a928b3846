package dag

// Graph is the directed dependency graph over module names. It is built
// once per resolution request and read-only afterwards.
type Graph struct {
	// nodes stores all nodes keyed by module name.
	nodes map[string]*node
	// insertion keeps node names in insertion order for deterministic
	// traversal and error output.
	insertion []string
}

// node represents a single module in the graph. It is un-exported to force
// interaction through the public API using module names.
type node struct {
	// name is the module name, the node identity.
	name string
	// deps holds dependency names in manifest declaration order.
	deps []string
	// depSet mirrors deps for O(1) duplicate checks.
	depSet map[string]bool
}
