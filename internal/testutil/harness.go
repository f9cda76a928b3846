// Package testutil provides a shared harness for tests that need a real
// project tree on disk: a descriptor writer, a thread-safe log buffer, and
// a one-call App constructor over the written tree.
package testutil

import (
	"bytes"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/vk/fpgactl/internal/app"
	"github.com/vk/fpgactl/internal/hcl"
)

// SafeBuffer is a thread-safe buffer for capturing log output in tests.
type SafeBuffer struct {
	b  bytes.Buffer
	mu sync.Mutex
}

// Write implements the io.Writer interface for SafeBuffer.
func (b *SafeBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.b.Write(p)
}

// String implements the fmt.Stringer interface for SafeBuffer.
func (b *SafeBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.b.String()
}

// WriteProject materializes a project tree in a fresh temporary directory.
// Keys are paths relative to the project root (for example "project.hcl" or
// "hdl/uart/manifest.hcl") and values are file contents. The root directory
// is removed when the test finishes.
func WriteProject(t *testing.T, files map[string]string) string {
	t.Helper()

	root, err := os.MkdirTemp("", ".tmp-fpgactl-test-*")
	require.NoError(t, err)
	t.Cleanup(func() { os.RemoveAll(root) })

	for name, content := range files {
		path := filepath.Join(root, name)
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
		require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	}
	return root
}

// HarnessResult holds the app and captured output of a harness run.
type HarnessResult struct {
	App    *app.App
	Root   string
	Output *SafeBuffer
}

// NewTestApp writes the given project tree and constructs an App over it,
// logging at debug level into an in-memory buffer.
func NewTestApp(t *testing.T, files map[string]string) *HarnessResult {
	t.Helper()

	root := WriteProject(t, files)
	out := &SafeBuffer{}

	cfg, err := app.NewConfig(app.Config{
		Root:      root,
		LogFormat: "text",
		LogLevel:  "debug",
	})
	require.NoError(t, err)

	return &HarnessResult{
		App:    app.NewApp(out, cfg, hcl.NewLoader()),
		Root:   root,
		Output: out,
	}
}
