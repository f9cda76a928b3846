// Package cli defines the fpgactl command tree. Every invocation builds a
// fresh set of cobra commands wired to one App instance, so tests can run
// the full CLI against an in-memory writer without touching globals.
package cli
