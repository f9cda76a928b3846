// Package dag builds and queries the module dependency graph: module name
// nodes, dependency edges, cycle detection, and the transitive-closure
// traversal every aggregated source list is based on. The graph is derived
// from a populated registry on demand; it is never stored between requests.
package dag
