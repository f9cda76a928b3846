// Package schema holds the HCL-tagged structs that mirror the on-disk
// descriptor layout. The structs are decode targets only; the rest of the
// application works with the format-agnostic model in internal/config.
package schema

import "github.com/hashicorp/hcl/v2"

// --- Root project descriptor (project.hcl) ---

// ProjectBlock is the `project` block of the root descriptor.
type ProjectBlock struct {
	// Modules lists module directories relative to the project root.
	Modules []string `hcl:"modules"`
}

// GlobalSimBlock is the optional project-wide `sim` block.
type GlobalSimBlock struct {
	VerilatorFlags []string `hcl:"verilator_flags,optional"`
}

// SynthBlock is the optional project-wide `synth` block.
type SynthBlock struct {
	Top  string `hcl:"top"`
	Part string `hcl:"part"`
}

// ProjectFile is the top-level structure of project.hcl.
type ProjectFile struct {
	Project *ProjectBlock   `hcl:"project,block"`
	Sim     *GlobalSimBlock `hcl:"sim,block"`
	Synth   *SynthBlock     `hcl:"synth,block"`
	Remain  hcl.Body        `hcl:",remain"`
}

// --- Module manifest (manifest.hcl) ---

// ModuleBlock carries the module's identity.
type ModuleBlock struct {
	Name string `hcl:"name"`
}

// RTLBlock lists the module's RTL inputs, relative to the module directory.
type RTLBlock struct {
	Sources     []string `hcl:"sources,optional"`
	IncludeDirs []string `hcl:"include_dirs,optional"`
}

// DepsBlock lists dependency module names (names, not paths).
type DepsBlock struct {
	Modules []string `hcl:"modules,optional"`
}

// ConstraintsBlock lists constraint files relative to the module directory.
type ConstraintsBlock struct {
	Files []string `hcl:"files,optional"`
}

// SimTargetBlock is one labeled `sim "<target>"` block.
type SimTargetBlock struct {
	Name           string   `hcl:"name,label"`
	Top            string   `hcl:"top"`
	Sources        []string `hcl:"sources,optional"`
	IncludeDirs    []string `hcl:"include_dirs,optional"`
	VerilatorFlags []string `hcl:"verilator_flags,optional"`
}

// ManifestHeader is the first decode pass over a manifest: just the module
// identity plus the remaining body. The rest of the file is decoded in a
// second pass with an eval context derived from the header.
type ManifestHeader struct {
	Module *ModuleBlock `hcl:"module,block"`
	Remain hcl.Body     `hcl:",remain"`
}

// ManifestRest is the second decode pass over a manifest body.
type ManifestRest struct {
	RTL         *RTLBlock         `hcl:"rtl,block"`
	Deps        *DepsBlock        `hcl:"deps,block"`
	Constraints *ConstraintsBlock `hcl:"constraints,block"`
	SimTargets  []*SimTargetBlock `hcl:"sim,block"`
	Remain      hcl.Body          `hcl:",remain"`
}
