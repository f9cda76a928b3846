package config

import "context"

// Loader is the interface for a format-specific descriptor loader. Parsing
// is pure: a Loader reads exactly one file per call and keeps no state.
// Memoization is owned by the registry, not the loader.
type Loader interface {
	// LoadProject reads and parses the root project descriptor at path.
	LoadProject(ctx context.Context, path string) (*Project, error)

	// LoadModule reads and parses the module manifest inside dir.
	LoadModule(ctx context.Context, dir string) (*Module, error)
}
