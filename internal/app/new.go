package app

import (
	"context"
	"fmt"

	"github.com/vk/fpgactl/internal/scaffold"
)

// New scaffolds a fresh module directory with a starter source file,
// testbench and manifest, and declares it in the project descriptor.
func (a *App) New(parent context.Context, name string, deps []string) error {
	ctx := a.ctx(parent)

	created, err := scaffold.CreateModule(ctx, a.cfg.Root, name, deps)
	if err != nil {
		return err
	}

	fmt.Fprintf(a.outW, "Created module '%s' at %s\n", name, created.ModulePath)
	for _, f := range created.Files {
		fmt.Fprintf(a.outW, "  %s\n", f)
	}
	if created.ProjectUpdated {
		fmt.Fprintln(a.outW, "Added module to project.hcl")
	}
	return nil
}
