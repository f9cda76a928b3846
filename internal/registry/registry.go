package registry

import (
	"context"
	"path/filepath"

	"github.com/vk/fpgactl/internal/config"
	"github.com/vk/fpgactl/internal/ctxlog"
)

// Entry is one registered module: its location plus its parsed manifest.
type Entry struct {
	// Path is the module directory relative to the project root.
	Path string
	// Dir is the absolute module directory.
	Dir string
	// Module is the parsed manifest, read-only after load.
	Module *config.Module
}

// Registry holds all modules loaded for a single resolution request. It is
// scoped to one invocation and discarded afterwards; there is no shared
// state across requests.
type Registry struct {
	root    string
	project *config.Project
	loader  config.Loader

	// byPath memoizes parsed manifests so a module visited twice (for
	// example a shared dependency) is parsed once and reused.
	byPath map[string]*Entry
	// byName maps a module name to its relative path. Built during
	// registration; name lookups never re-parse a file.
	byName map[string]string

	// registered and order track the dependency-first registration pass.
	registered map[string]bool
	order      []string
}

// New creates a registry for the given project, rooted at the absolute
// project directory.
func New(root string, project *config.Project, loader config.Loader) *Registry {
	return &Registry{
		root:       root,
		project:    project,
		loader:     loader,
		byPath:     make(map[string]*Entry),
		byName:     make(map[string]string),
		registered: make(map[string]bool),
	}
}

// Root returns the absolute project root directory.
func (r *Registry) Root() string { return r.root }

// Project returns the root descriptor the registry was built from.
func (r *Registry) Project() *config.Project { return r.project }

// RegisterAll loads every module declared in the project, recursively
// ensuring each module's named dependencies are registered first. A
// dependency name that cannot be found among the declared modules is a
// fatal UnresolvedDependencyError.
func (r *Registry) RegisterAll(ctx context.Context) error {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("Registering project modules.", "declared", len(r.project.ModulePaths))

	for _, rel := range r.project.ModulePaths {
		if err := r.register(ctx, rel); err != nil {
			return err
		}
	}

	logger.Debug("Module registration complete.", "registered", len(r.order))
	return nil
}

// register loads the module at rel and everything it depends on,
// dependencies first. Marking the path before descending keeps the pass
// idempotent and guarantees termination even on a cyclic manifest set;
// cycles themselves are diagnosed later by the graph build.
func (r *Registry) register(ctx context.Context, rel string) error {
	if r.registered[rel] {
		return nil
	}
	r.registered[rel] = true

	entry, err := r.load(ctx, rel)
	if err != nil {
		return err
	}

	for _, dep := range entry.Module.Deps {
		depRel, ok, err := r.findPath(ctx, dep)
		if err != nil {
			return err
		}
		if !ok {
			return &UnresolvedDependencyError{Module: entry.Module.Name, Dependency: dep}
		}
		if err := r.register(ctx, depRel); err != nil {
			return err
		}
	}

	r.order = append(r.order, rel)
	return nil
}

// load parses the manifest at rel exactly once and indexes its name.
func (r *Registry) load(ctx context.Context, rel string) (*Entry, error) {
	if entry, ok := r.byPath[rel]; ok {
		return entry, nil
	}

	dir := filepath.Join(r.root, rel)
	mod, err := r.loader.LoadModule(ctx, dir)
	if err != nil {
		return nil, err
	}

	if prev, ok := r.byName[mod.Name]; ok && prev != rel {
		return nil, &DuplicateModuleNameError{Name: mod.Name, Paths: [2]string{prev, rel}}
	}

	entry := &Entry{Path: rel, Dir: dir, Module: mod}
	r.byPath[rel] = entry
	r.byName[mod.Name] = rel
	return entry, nil
}

// findPath resolves a module name to its relative path. The memoized index
// answers repeat lookups; otherwise the declared module list is scanned,
// parsing (and indexing) candidates until the name matches.
func (r *Registry) findPath(ctx context.Context, name string) (string, bool, error) {
	if rel, ok := r.byName[name]; ok {
		return rel, true, nil
	}
	for _, rel := range r.project.ModulePaths {
		entry, err := r.load(ctx, rel)
		if err != nil {
			return "", false, err
		}
		if entry.Module.Name == name {
			return rel, true, nil
		}
	}
	return "", false, nil
}

// FindByName returns the relative path of the module with the given name.
// After RegisterAll it is a pure index lookup.
func (r *Registry) FindByName(name string) (string, bool) {
	rel, ok := r.byName[name]
	return rel, ok
}

// Lookup returns the registered entry for a module name.
func (r *Registry) Lookup(name string) (*Entry, bool) {
	rel, ok := r.byName[name]
	if !ok {
		return nil, false
	}
	entry, ok := r.byPath[rel]
	return entry, ok
}

// All returns the registered modules in registration order: dependencies
// before dependents, first-declared root first.
func (r *Registry) All() []*Entry {
	entries := make([]*Entry, 0, len(r.order))
	for _, rel := range r.order {
		entries = append(entries, r.byPath[rel])
	}
	return entries
}
