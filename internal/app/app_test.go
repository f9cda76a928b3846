package app_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vk/fpgactl/internal/app"
	"github.com/vk/fpgactl/internal/dag"
	"github.com/vk/fpgactl/internal/hcl"
	"github.com/vk/fpgactl/internal/registry"
	"github.com/vk/fpgactl/internal/resolve"
	"github.com/vk/fpgactl/internal/testutil"
)

func TestListTargets(t *testing.T) {
	h := testutil.NewTestApp(t, map[string]string{
		"project.hcl": `
			project {
				modules = ["hdl/uart", "hdl/fifo"]
			}
		`,
		"hdl/uart/manifest.hcl": `
			module {
				name = "uart"
			}
			deps {
				modules = ["fifo"]
			}
			sim "default" {
				top = "uart_tb"
			}
			sim "fast" {
				top = "uart_tb"
			}
		`,
		"hdl/fifo/manifest.hcl": `
			module {
				name = "fifo"
			}
			sim "default" {
				top = "fifo_tb"
			}
		`,
	})

	require.NoError(t, h.App.ListTargets(context.Background()))

	// fifo registers first as uart's dependency.
	out := h.Output.String()
	assert.Contains(t, out, "fifo.default")
	assert.Contains(t, out, "uart.default")
	assert.Contains(t, out, "uart.fast")
	assert.Less(t, indexOf(out, "fifo.default"), indexOf(out, "uart.default"))
}

func TestListTargets_Empty(t *testing.T) {
	h := testutil.NewTestApp(t, map[string]string{
		"project.hcl": `
			project {
				modules = ["hdl/blink"]
			}
		`,
		"hdl/blink/manifest.hcl": `
			module {
				name = "blink"
			}
		`,
	})

	require.NoError(t, h.App.ListTargets(context.Background()))
	assert.Contains(t, h.Output.String(), "No simulation targets found.")
}

func TestSim_UnknownTarget(t *testing.T) {
	h := testutil.NewTestApp(t, map[string]string{
		"project.hcl": `
			project {
				modules = ["hdl/blink"]
			}
		`,
		"hdl/blink/manifest.hcl": `
			module {
				name = "blink"
			}
			sim "default" {
				top = "blink_tb"
			}
		`,
	})

	err := h.App.Sim(context.Background(), app.SimOptions{Target: "ghost"})
	var notFound *resolve.TargetNotFoundError
	require.ErrorAs(t, err, &notFound)
	assert.Equal(t, []string{"blink.default"}, notFound.Available)
}

func TestSim_CycleIsFatal(t *testing.T) {
	h := testutil.NewTestApp(t, map[string]string{
		"project.hcl": `
			project {
				modules = ["hdl/a", "hdl/b"]
			}
		`,
		"hdl/a/manifest.hcl": `
			module {
				name = "a"
			}
			deps {
				modules = ["b"]
			}
		`,
		"hdl/b/manifest.hcl": `
			module {
				name = "b"
			}
			deps {
				modules = ["a"]
			}
		`,
	})

	err := h.App.Sim(context.Background(), app.SimOptions{})
	var cycErr *dag.CyclicDependencyError
	require.ErrorAs(t, err, &cycErr)
}

func TestSim_UnresolvedDependency(t *testing.T) {
	h := testutil.NewTestApp(t, map[string]string{
		"project.hcl": `
			project {
				modules = ["hdl/a"]
			}
		`,
		"hdl/a/manifest.hcl": `
			module {
				name = "a"
			}
			deps {
				modules = ["ghost"]
			}
		`,
	})

	err := h.App.Sim(context.Background(), app.SimOptions{})
	var unresolved *registry.UnresolvedDependencyError
	require.ErrorAs(t, err, &unresolved)
	assert.Equal(t, "a", unresolved.Module)
	assert.Equal(t, "ghost", unresolved.Dependency)
}

func TestNewThenListTargets(t *testing.T) {
	h := testutil.NewTestApp(t, map[string]string{
		"project.hcl": `
			project {
				modules = []
			}
		`,
	})

	require.NoError(t, h.App.New(context.Background(), "blink", nil))
	assert.Contains(t, h.Output.String(), "Created module 'blink' at hdl/blink")

	// A fresh app over the same tree must see the scaffolded target.
	cfg, err := app.NewConfig(app.Config{Root: h.Root, LogFormat: "text", LogLevel: "warn"})
	require.NoError(t, err)
	out := &testutil.SafeBuffer{}
	second := app.NewApp(out, cfg, hcl.NewLoader())
	require.NoError(t, second.ListTargets(context.Background()))
	assert.Contains(t, out.String(), "blink.default")
}

func TestClean(t *testing.T) {
	h := testutil.NewTestApp(t, map[string]string{
		"project.hcl": `
			project {
				modules = ["hdl/blink"]
			}
		`,
		"hdl/blink/manifest.hcl": `
			module {
				name = "blink"
			}
		`,
	})

	simDir := filepath.Join(h.Root, "hdl", "blink", "sim", "default")
	require.NoError(t, os.MkdirAll(simDir, 0755))
	buildDir := filepath.Join(h.Root, app.BuildDirName)
	require.NoError(t, os.MkdirAll(buildDir, 0755))

	require.NoError(t, h.App.Clean(context.Background()))

	assert.NoDirExists(t, buildDir)
	assert.NoDirExists(t, filepath.Join(h.Root, "hdl", "blink", "sim"))

	// Second run has nothing left to remove.
	cfg, err := app.NewConfig(app.Config{Root: h.Root, LogFormat: "text", LogLevel: "warn"})
	require.NoError(t, err)
	out := &testutil.SafeBuffer{}
	second := app.NewApp(out, cfg, hcl.NewLoader())
	require.NoError(t, second.Clean(context.Background()))
	assert.Contains(t, out.String(), "Nothing to clean.")
}

func TestSynth_MissingConfig(t *testing.T) {
	h := testutil.NewTestApp(t, map[string]string{
		"project.hcl": `
			project {
				modules = ["hdl/blink"]
			}
		`,
		"hdl/blink/manifest.hcl": `
			module {
				name = "blink"
			}
		`,
	})

	err := h.App.Synth(context.Background(), false)
	var missing *resolve.MissingSynthConfigError
	require.ErrorAs(t, err, &missing)
}

func indexOf(s, sub string) int {
	for i := 0; i+len(sub) <= len(s); i++ {
		if s[i:i+len(sub)] == sub {
			return i
		}
	}
	return -1
}
