package app

import (
	"context"
	"io"
	"log/slog"
	"path/filepath"

	"github.com/vk/fpgactl/internal/config"
	"github.com/vk/fpgactl/internal/ctxlog"
	"github.com/vk/fpgactl/internal/dag"
	projecthcl "github.com/vk/fpgactl/internal/hcl"
	"github.com/vk/fpgactl/internal/registry"
	"github.com/vk/fpgactl/internal/resolve"
	"github.com/vk/fpgactl/internal/toolrunner"
)

// App encapsulates the application's dependencies, configuration, and
// lifecycle. One App is created per CLI invocation and discarded afterwards.
type App struct {
	outW   io.Writer
	logger *slog.Logger
	cfg    *Config
	loader config.Loader
	runner *toolrunner.Runner

	// Populated lazily by ensureLoaded on the first command that needs
	// the project graph.
	reg      *registry.Registry
	graph    *dag.Graph
	resolver *resolve.Resolver
}

// NewApp is the constructor for the main application. It returns a fully
// initialized App instance with its own isolated logger. The project
// descriptors are not read until a command needs them.
func NewApp(outW io.Writer, cfg *Config, loader config.Loader) *App {
	logger := newLogger(cfg.LogLevel, cfg.LogFormat, outW)
	logger.Debug("Logger configured successfully.")

	return &App{
		outW:   outW,
		logger: logger,
		cfg:    cfg,
		loader: loader,
		runner: toolrunner.New(outW),
	}
}

// Logger returns the application's isolated logger.
func (a *App) Logger() *slog.Logger { return a.logger }

// Root returns the absolute project root directory.
func (a *App) Root() string { return a.cfg.Root }

// ctx attaches the application logger to the given context so every
// package below can retrieve it with ctxlog.FromContext.
func (a *App) ctx(parent context.Context) context.Context {
	return ctxlog.WithLogger(parent, a.logger)
}

// ensureLoaded parses the project descriptor, registers every declared
// module dependency-first, and builds the dependency graph. Calling it
// twice on the same App is a no-op.
func (a *App) ensureLoaded(ctx context.Context) error {
	if a.resolver != nil {
		return nil
	}
	logger := ctxlog.FromContext(ctx)

	projectPath := filepath.Join(a.cfg.Root, projecthcl.ProjectFileName)
	project, err := a.loader.LoadProject(ctx, projectPath)
	if err != nil {
		return err
	}

	reg := registry.New(a.cfg.Root, project, a.loader)
	if err := reg.RegisterAll(ctx); err != nil {
		return err
	}
	logger.Debug("All modules registered.", "count", len(reg.All()))

	graph, err := dag.Build(ctx, reg)
	if err != nil {
		return err
	}
	logger.Debug("Dependency graph built and validated.")

	a.reg = reg
	a.graph = graph
	a.resolver = resolve.New(reg, graph)
	return nil
}
