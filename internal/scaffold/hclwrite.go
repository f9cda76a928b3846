package scaffold

import (
	"fmt"
	"os"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/hclsyntax"
	"github.com/hashicorp/hcl/v2/hclwrite"
	"github.com/zclconf/go-cty/cty"
)

// renderManifest builds a starter manifest.hcl for a new module.
func renderManifest(name string, deps []string) string {
	f := hclwrite.NewEmptyFile()
	body := f.Body()

	moduleBody := body.AppendNewBlock("module", nil).Body()
	moduleBody.SetAttributeValue("name", cty.StringVal(name))
	body.AppendNewline()

	rtlBody := body.AppendNewBlock("rtl", nil).Body()
	rtlBody.SetAttributeValue("sources", stringList([]string{"src/" + name + ".sv"}))
	rtlBody.SetAttributeValue("include_dirs", stringList(nil))
	body.AppendNewline()

	depsBody := body.AppendNewBlock("deps", nil).Body()
	depsBody.SetAttributeValue("modules", stringList(deps))
	body.AppendNewline()

	simBody := body.AppendNewBlock("sim", []string{"default"}).Body()
	simBody.SetAttributeValue("top", cty.StringVal(name+"_tb"))
	simBody.SetAttributeValue("sources", stringList([]string{"tb/" + name + "_tb.sv"}))
	simBody.SetAttributeValue("verilator_flags", stringList(nil))

	return string(hclwrite.Format(f.Bytes()))
}

// addModuleToProject appends the module's relative path to the modules list
// of project.hcl, preserving the rest of the file byte-for-byte. Returns
// false if the module was already declared.
func addModuleToProject(projectPath, moduleRel string) (bool, error) {
	src, err := os.ReadFile(projectPath)
	if err != nil {
		return false, fmt.Errorf("reading project descriptor: %w", err)
	}

	f, diags := hclwrite.ParseConfig(src, projectPath, hcl.InitialPos)
	if diags.HasErrors() {
		return false, fmt.Errorf("parsing project descriptor: %w", diags)
	}

	projectBlock := f.Body().FirstMatchingBlock("project", nil)
	if projectBlock == nil {
		return false, fmt.Errorf("project descriptor %s has no 'project' block", projectPath)
	}

	existing, err := modulesAttrValues(projectBlock)
	if err != nil {
		return false, err
	}
	for _, m := range existing {
		if m == moduleRel {
			return false, nil
		}
	}

	projectBlock.Body().SetAttributeValue("modules", stringList(append(existing, moduleRel)))

	if err := os.WriteFile(projectPath, hclwrite.Format(f.Bytes()), 0o644); err != nil {
		return false, fmt.Errorf("writing project descriptor: %w", err)
	}
	return true, nil
}

// modulesAttrValues re-evaluates the current modules list from the write
// AST so the rewritten attribute keeps prior entries.
func modulesAttrValues(block *hclwrite.Block) ([]string, error) {
	attr := block.Body().GetAttribute("modules")
	if attr == nil {
		return nil, nil
	}

	tokens := attr.Expr().BuildTokens(nil)
	expr, diags := hclsyntax.ParseExpression(tokens.Bytes(), "project.hcl", hcl.InitialPos)
	if diags.HasErrors() {
		return nil, fmt.Errorf("parsing modules list: %w", diags)
	}
	val, diags := expr.Value(nil)
	if diags.HasErrors() {
		return nil, fmt.Errorf("evaluating modules list: %w", diags)
	}

	var modules []string
	for it := val.ElementIterator(); it.Next(); {
		_, ev := it.Element()
		if ev.Type() == cty.String {
			modules = append(modules, ev.AsString())
		}
	}
	return modules, nil
}

// stringList converts a Go string slice into a cty list value; an empty
// slice renders as `[]`.
func stringList(values []string) cty.Value {
	if len(values) == 0 {
		return cty.ListValEmpty(cty.String)
	}
	vals := make([]cty.Value, len(values))
	for i, v := range values {
		vals[i] = cty.StringVal(v)
	}
	return cty.ListVal(vals)
}
