package config

// Project is the unified representation of the root project descriptor.
// It is loaded once per invocation and immutable afterwards.
type Project struct {
	// ModulePaths lists module directories relative to the project root,
	// in declaration order.
	ModulePaths []string
	// VerilatorFlags are project-wide simulation flags. They are prepended
	// to every sim target's own flags.
	VerilatorFlags []string
	// Synth carries the optional synthesis settings block.
	Synth *Synth
}

// Synth holds the project-wide synthesis configuration.
type Synth struct {
	// Top is the top-level entity handed to the synthesis tool.
	Top string
	// Part is the target FPGA part number.
	Part string
}

// Module is the format-agnostic representation of one module manifest.
// It is read-only after load.
type Module struct {
	// Name is the declared module name. Dependency lists reference names,
	// never paths, and names must be unique across the project.
	Name string
	// Sources and IncludeDirs are RTL inputs, relative to the module
	// directory, in declaration order.
	Sources     []string
	IncludeDirs []string
	// Deps lists dependency module names.
	Deps []string
	// Constraints lists constraint files relative to the module directory.
	Constraints []string
	// SimTargets holds the module's simulation targets in declaration order.
	SimTargets []*SimTarget
}

// Target returns the sim target with the given name, if declared.
func (m *Module) Target(name string) (*SimTarget, bool) {
	for _, t := range m.SimTargets {
		if t.Name == name {
			return t, true
		}
	}
	return nil, false
}

// SimTarget is one named simulation configuration within a module manifest.
// Immutable once parsed.
type SimTarget struct {
	// Name is the target's label, e.g. "default".
	Name string
	// Top is the simulation entry point. Required.
	Top string
	// Sources and IncludeDirs are target-specific additions (testbenches),
	// relative to the module directory.
	Sources     []string
	IncludeDirs []string
	// VerilatorFlags are appended after the project-wide flags.
	VerilatorFlags []string
}
