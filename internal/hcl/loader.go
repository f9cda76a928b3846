package hcl

import (
	"context"
	"errors"
	"os"
	"path/filepath"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/zclconf/go-cty/cty"

	"github.com/vk/fpgactl/internal/config"
	"github.com/vk/fpgactl/internal/ctxlog"
	"github.com/vk/fpgactl/internal/schema"
)

const (
	// ProjectFileName is the root descriptor file, and doubles as the
	// project root marker for directory discovery.
	ProjectFileName = "project.hcl"
	// ManifestFileName is the per-module descriptor file.
	ManifestFileName = "manifest.hcl"
)

// Loader is the HCL-specific implementation of the config.Loader interface.
type Loader struct{}

// NewLoader creates a new HCL descriptor loader.
func NewLoader() *Loader {
	return &Loader{}
}

// LoadProject reads and parses the root project descriptor at path.
func (l *Loader) LoadProject(ctx context.Context, path string) (*config.Project, error) {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("Loading project descriptor.", "path", path)

	body, err := parseFile(path)
	if err != nil {
		return nil, err
	}

	var root schema.ProjectFile
	if diags := gohcl.DecodeBody(body, nil, &root); diags.HasErrors() {
		return nil, &ParseError{Path: path, Err: diags}
	}
	if root.Project == nil {
		return nil, &ParseError{Path: path, Err: errors.New("missing required 'project' block")}
	}

	project := &config.Project{ModulePaths: root.Project.Modules}
	if root.Sim != nil {
		project.VerilatorFlags = root.Sim.VerilatorFlags
	}
	if root.Synth != nil {
		project.Synth = &config.Synth{Top: root.Synth.Top, Part: root.Synth.Part}
	}

	logger.Debug("Project descriptor loaded.", "modules", len(project.ModulePaths))
	return project, nil
}

// LoadModule reads and parses the manifest inside the given module directory.
// The manifest body is decoded in two passes: the `module` block first, then
// the remainder with a `module` object (name, dir) in scope, so path lists
// may reference module.name and module.dir.
func (l *Loader) LoadModule(ctx context.Context, dir string) (*config.Module, error) {
	logger := ctxlog.FromContext(ctx)
	path := filepath.Join(dir, ManifestFileName)
	logger.Debug("Loading module manifest.", "path", path)

	body, err := parseFile(path)
	if err != nil {
		return nil, err
	}

	var header schema.ManifestHeader
	if diags := gohcl.DecodeBody(body, nil, &header); diags.HasErrors() {
		return nil, &ParseError{Path: path, Err: diags}
	}
	if header.Module == nil {
		return nil, &ParseError{Path: path, Err: errors.New("missing required 'module' block")}
	}
	if header.Module.Name == "" {
		return nil, &ParseError{Path: path, Err: errors.New("module name must not be empty")}
	}

	var rest schema.ManifestRest
	if diags := gohcl.DecodeBody(header.Remain, moduleEvalContext(header.Module.Name, dir), &rest); diags.HasErrors() {
		return nil, &ParseError{Path: path, Err: diags}
	}

	return translateModule(header.Module, &rest), nil
}

// parseFile runs the HCL parser over one descriptor file, mapping a missing
// file to DescriptorNotFoundError and diagnostics to ParseError.
func parseFile(path string) (hcl.Body, error) {
	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return nil, &DescriptorNotFoundError{Path: path}
		}
		return nil, &ParseError{Path: path, Err: err}
	}

	parser := hclparse.NewParser()
	file, diags := parser.ParseHCLFile(path)
	if diags.HasErrors() {
		return nil, &ParseError{Path: path, Err: diags}
	}
	return file.Body, nil
}

// moduleEvalContext exposes the module's own identity to expressions in the
// manifest body.
func moduleEvalContext(name, dir string) *hcl.EvalContext {
	return &hcl.EvalContext{
		Variables: map[string]cty.Value{
			"module": cty.ObjectVal(map[string]cty.Value{
				"name": cty.StringVal(name),
				"dir":  cty.StringVal(dir),
			}),
		},
	}
}

// translateModule converts the HCL-specific manifest schema into the
// agnostic model.
func translateModule(header *schema.ModuleBlock, rest *schema.ManifestRest) *config.Module {
	mod := &config.Module{Name: header.Name}
	if rest.RTL != nil {
		mod.Sources = rest.RTL.Sources
		mod.IncludeDirs = rest.RTL.IncludeDirs
	}
	if rest.Deps != nil {
		mod.Deps = rest.Deps.Modules
	}
	if rest.Constraints != nil {
		mod.Constraints = rest.Constraints.Files
	}
	for _, t := range rest.SimTargets {
		mod.SimTargets = append(mod.SimTargets, &config.SimTarget{
			Name:           t.Name,
			Top:            t.Top,
			Sources:        t.Sources,
			IncludeDirs:    t.IncludeDirs,
			VerilatorFlags: t.VerilatorFlags,
		})
	}
	return mod
}
