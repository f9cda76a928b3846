package hcl

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeDescriptor(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoadProject(t *testing.T) {
	loader := NewLoader()
	ctx := context.Background()

	t.Run("full descriptor", func(t *testing.T) {
		dir := t.TempDir()
		path := writeDescriptor(t, dir, ProjectFileName, `
			project {
				modules = ["hdl/uart", "hdl/fifo"]
			}
			sim {
				verilator_flags = ["-Wall"]
			}
			synth {
				top  = "top"
				part = "xc7a35ticsg324-1L"
			}
		`)

		project, err := loader.LoadProject(ctx, path)
		require.NoError(t, err)
		assert.Equal(t, []string{"hdl/uart", "hdl/fifo"}, project.ModulePaths)
		assert.Equal(t, []string{"-Wall"}, project.VerilatorFlags)
		require.NotNil(t, project.Synth)
		assert.Equal(t, "top", project.Synth.Top)
		assert.Equal(t, "xc7a35ticsg324-1L", project.Synth.Part)
	})

	t.Run("minimal descriptor", func(t *testing.T) {
		dir := t.TempDir()
		path := writeDescriptor(t, dir, ProjectFileName, `
			project {
				modules = ["hdl/blink"]
			}
		`)

		project, err := loader.LoadProject(ctx, path)
		require.NoError(t, err)
		assert.Equal(t, []string{"hdl/blink"}, project.ModulePaths)
		assert.Empty(t, project.VerilatorFlags)
		assert.Nil(t, project.Synth)
	})

	t.Run("missing file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), ProjectFileName)

		_, err := loader.LoadProject(ctx, path)
		var notFound *DescriptorNotFoundError
		require.ErrorAs(t, err, &notFound)
		assert.Equal(t, path, notFound.Path)
	})

	t.Run("missing project block", func(t *testing.T) {
		dir := t.TempDir()
		path := writeDescriptor(t, dir, ProjectFileName, `
			sim {
				verilator_flags = []
			}
		`)

		_, err := loader.LoadProject(ctx, path)
		var parseErr *ParseError
		require.ErrorAs(t, err, &parseErr)
		assert.Contains(t, parseErr.Error(), "missing required 'project' block")
	})

	t.Run("syntax error", func(t *testing.T) {
		dir := t.TempDir()
		path := writeDescriptor(t, dir, ProjectFileName, `project { modules = [`)

		_, err := loader.LoadProject(ctx, path)
		var parseErr *ParseError
		require.ErrorAs(t, err, &parseErr)
	})
}

func TestLoadModule(t *testing.T) {
	loader := NewLoader()
	ctx := context.Background()

	t.Run("full manifest", func(t *testing.T) {
		dir := t.TempDir()
		writeDescriptor(t, dir, ManifestFileName, `
			module {
				name = "uart"
			}
			rtl {
				sources      = ["src/uart_tx.sv", "src/uart_rx.sv"]
				include_dirs = ["include"]
			}
			deps {
				modules = ["fifo"]
			}
			constraints {
				files = ["constraints/uart.xdc"]
			}
			sim "default" {
				top     = "uart_tb"
				sources = ["tb/uart_tb.sv"]
			}
			sim "fast" {
				top             = "uart_tb"
				sources         = ["tb/uart_tb.sv"]
				verilator_flags = ["-O3"]
			}
		`)

		mod, err := loader.LoadModule(ctx, dir)
		require.NoError(t, err)
		assert.Equal(t, "uart", mod.Name)
		assert.Equal(t, []string{"src/uart_tx.sv", "src/uart_rx.sv"}, mod.Sources)
		assert.Equal(t, []string{"include"}, mod.IncludeDirs)
		assert.Equal(t, []string{"fifo"}, mod.Deps)
		assert.Equal(t, []string{"constraints/uart.xdc"}, mod.Constraints)

		// Target declaration order is preserved.
		require.Len(t, mod.SimTargets, 2)
		assert.Equal(t, "default", mod.SimTargets[0].Name)
		assert.Equal(t, "fast", mod.SimTargets[1].Name)
		assert.Equal(t, []string{"-O3"}, mod.SimTargets[1].VerilatorFlags)
	})

	t.Run("module identity is in scope for path lists", func(t *testing.T) {
		dir := t.TempDir()
		writeDescriptor(t, dir, ManifestFileName, `
			module {
				name = "fifo"
			}
			rtl {
				sources = ["src/${module.name}.sv"]
			}
			sim "default" {
				top = "${module.name}_tb"
			}
		`)

		mod, err := loader.LoadModule(ctx, dir)
		require.NoError(t, err)
		assert.Equal(t, []string{"src/fifo.sv"}, mod.Sources)
		assert.Equal(t, "fifo_tb", mod.SimTargets[0].Top)
	})

	t.Run("manifest without rtl block", func(t *testing.T) {
		dir := t.TempDir()
		writeDescriptor(t, dir, ManifestFileName, `
			module {
				name = "stub"
			}
		`)

		mod, err := loader.LoadModule(ctx, dir)
		require.NoError(t, err)
		assert.Equal(t, "stub", mod.Name)
		assert.Empty(t, mod.Sources)
		assert.Empty(t, mod.SimTargets)
	})

	t.Run("missing module block", func(t *testing.T) {
		dir := t.TempDir()
		writeDescriptor(t, dir, ManifestFileName, `
			rtl {
				sources = ["a.sv"]
			}
		`)

		_, err := loader.LoadModule(ctx, dir)
		var parseErr *ParseError
		require.ErrorAs(t, err, &parseErr)
		assert.Contains(t, parseErr.Error(), "missing required 'module' block")
	})

	t.Run("empty module name", func(t *testing.T) {
		dir := t.TempDir()
		writeDescriptor(t, dir, ManifestFileName, `
			module {
				name = ""
			}
		`)

		_, err := loader.LoadModule(ctx, dir)
		var parseErr *ParseError
		require.ErrorAs(t, err, &parseErr)
		assert.Contains(t, parseErr.Error(), "module name must not be empty")
	})

	t.Run("missing manifest", func(t *testing.T) {
		dir := t.TempDir()

		_, err := loader.LoadModule(ctx, dir)
		var notFound *DescriptorNotFoundError
		require.ErrorAs(t, err, &notFound)
		assert.Equal(t, filepath.Join(dir, ManifestFileName), notFound.Path)
	})
}
