// Package app wires the pieces together for one CLI invocation: logger,
// descriptor loader, module registry, dependency graph, resolver, and the
// tool runner. Every command creates one App, runs one operation, and
// discards it; nothing is shared across invocations.
package app
