// Package toolrunner is the tool-invocation collaborator: it consumes the
// resolved build plans and turns them into Verilator and Vivado runs.
// Command-line construction is pure and separately testable; only the
// Runner methods touch the operating system.
package toolrunner
