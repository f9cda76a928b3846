package resolve

import (
	"fmt"
	"strings"
)

// TargetNotFoundError indicates that a requested simulation target is
// absent from the registry, optionally scoped by a module filter. It
// carries the available targets so callers can show them.
type TargetNotFoundError struct {
	Target string
	// ModuleFilter is the module scope of the lookup, empty when the whole
	// project was searched.
	ModuleFilter string
	// Available holds "module.target" entries in registration order.
	Available []string
}

func (e *TargetNotFoundError) Error() string {
	scope := ""
	if e.ModuleFilter != "" {
		scope = fmt.Sprintf(" in module '%s'", e.ModuleFilter)
	}
	avail := "(none)"
	if len(e.Available) > 0 {
		avail = strings.Join(e.Available, ", ")
	}
	return fmt.Sprintf("sim target '%s'%s not found. Available: %s", e.Target, scope, avail)
}

// MissingSynthConfigError indicates that a synthesis flow was requested but
// the root descriptor has no synth block.
type MissingSynthConfigError struct{}

func (e *MissingSynthConfigError) Error() string {
	return "project.hcl has no 'synth' block; synthesis needs top and part"
}
