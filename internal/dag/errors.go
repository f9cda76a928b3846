package dag

import (
	"fmt"
	"strings"
)

// CyclicDependencyError indicates that a module transitively depends on
// itself. Dependency cycles in a hardware module graph are never valid, so
// they fail the resolution request instead of being silently truncated.
type CyclicDependencyError struct {
	// Cycle is the closed path that forms the cycle, first node repeated
	// at the end.
	Cycle []string
}

func (e *CyclicDependencyError) Error() string {
	return fmt.Sprintf("dependency cycle detected: %s", strings.Join(e.Cycle, " -> "))
}
