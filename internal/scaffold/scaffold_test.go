package scaffold

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	projecthcl "github.com/vk/fpgactl/internal/hcl"
)

func writeProjectFile(t *testing.T, root, content string) string {
	t.Helper()
	path := filepath.Join(root, projecthcl.ProjectFileName)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestCreateModule(t *testing.T) {
	ctx := context.Background()

	t.Run("scaffolds a loadable module", func(t *testing.T) {
		root := t.TempDir()
		writeProjectFile(t, root, `
			project {
				modules = []
			}
		`)

		created, err := CreateModule(ctx, root, "uart", []string{"fifo"})
		require.NoError(t, err)
		assert.Equal(t, "hdl/uart", created.ModulePath)
		assert.True(t, created.ProjectUpdated)
		assert.Len(t, created.Files, 3)

		// The generated manifest must round-trip through the real loader.
		loader := projecthcl.NewLoader()
		mod, err := loader.LoadModule(ctx, filepath.Join(root, "hdl", "uart"))
		require.NoError(t, err)
		assert.Equal(t, "uart", mod.Name)
		assert.Equal(t, []string{"src/uart.sv"}, mod.Sources)
		assert.Equal(t, []string{"fifo"}, mod.Deps)
		require.Len(t, mod.SimTargets, 1)
		assert.Equal(t, "default", mod.SimTargets[0].Name)
		assert.Equal(t, "uart_tb", mod.SimTargets[0].Top)
		assert.Equal(t, []string{"tb/uart_tb.sv"}, mod.SimTargets[0].Sources)

		// Starter sources exist where the manifest points.
		assert.FileExists(t, filepath.Join(root, "hdl", "uart", "src", "uart.sv"))
		assert.FileExists(t, filepath.Join(root, "hdl", "uart", "tb", "uart_tb.sv"))
	})

	t.Run("declares the module in the project", func(t *testing.T) {
		root := t.TempDir()
		path := writeProjectFile(t, root, `
			project {
				modules = ["hdl/fifo"]
			}
		`)

		_, err := CreateModule(ctx, root, "uart", nil)
		require.NoError(t, err)

		loader := projecthcl.NewLoader()
		project, err := loader.LoadProject(ctx, path)
		require.NoError(t, err)
		assert.Equal(t, []string{"hdl/fifo", "hdl/uart"}, project.ModulePaths)
	})

	t.Run("preserves unrelated project content", func(t *testing.T) {
		root := t.TempDir()
		path := writeProjectFile(t, root, `
			project {
				modules = []
			}

			sim {
				verilator_flags = ["-Wall"]
			}
		`)

		_, err := CreateModule(ctx, root, "blink", nil)
		require.NoError(t, err)

		loader := projecthcl.NewLoader()
		project, err := loader.LoadProject(ctx, path)
		require.NoError(t, err)
		assert.Equal(t, []string{"hdl/blink"}, project.ModulePaths)
		assert.Equal(t, []string{"-Wall"}, project.VerilatorFlags)
	})

	t.Run("existing directory is rejected", func(t *testing.T) {
		root := t.TempDir()
		writeProjectFile(t, root, `
			project {
				modules = []
			}
		`)
		require.NoError(t, os.MkdirAll(filepath.Join(root, "hdl", "uart"), 0755))

		_, err := CreateModule(ctx, root, "uart", nil)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "already exists")
	})

	t.Run("already declared module skips the project edit", func(t *testing.T) {
		root := t.TempDir()
		writeProjectFile(t, root, `
			project {
				modules = ["hdl/uart"]
			}
		`)

		created, err := CreateModule(ctx, root, "uart", nil)
		require.NoError(t, err)
		assert.False(t, created.ProjectUpdated)
	})

	t.Run("missing project descriptor", func(t *testing.T) {
		root := t.TempDir()

		_, err := CreateModule(ctx, root, "uart", nil)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "reading project descriptor")
	})
}
