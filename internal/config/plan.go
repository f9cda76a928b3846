package config

// SimPlan is the fully resolved input set for one simulation build. All
// paths are absolute. It is handed as-is to the tool-invocation layer.
type SimPlan struct {
	// Module is the name of the module that owns the target.
	Module string
	// ModuleDir is the owning module's absolute directory, used as the
	// working directory root for simulation artifacts.
	ModuleDir string
	// Target is the resolved target name.
	Target string
	// Top is the simulation entry point.
	Top string
	// Sources is the ordered file list: the module's RTL closure followed
	// by the target's own sources.
	Sources []string
	// IncludeDirs is ordered the same way.
	IncludeDirs []string
	// VerilatorFlags is the merged flag list: project-wide flags followed
	// by target-specific flags. Duplicates are passed through.
	VerilatorFlags []string
}

// SynthPlan is the fully resolved input set for a synthesis run: every
// registered module's RTL and constraints in registration order, with
// absolute paths.
type SynthPlan struct {
	Top         string
	Part        string
	Sources     []string
	IncludeDirs []string
	Constraints []string
}
