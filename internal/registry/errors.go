package registry

import "fmt"

// UnresolvedDependencyError indicates that a dependency name does not
// correspond to any module declared in the project. It always names both
// the dependent module and the missing name.
type UnresolvedDependencyError struct {
	// Module is the dependent module (by name).
	Module string
	// Dependency is the name that could not be resolved.
	Dependency string
}

func (e *UnresolvedDependencyError) Error() string {
	return fmt.Sprintf("module '%s' depends on '%s', which is not declared in the project module list", e.Module, e.Dependency)
}

// DuplicateModuleNameError indicates that two declared module directories
// claim the same module name. Names are the graph node identity, so a
// collision is fatal.
type DuplicateModuleNameError struct {
	Name  string
	Paths [2]string
}

func (e *DuplicateModuleNameError) Error() string {
	return fmt.Sprintf("module name '%s' is declared by both %s and %s", e.Name, e.Paths[0], e.Paths[1])
}
