// Package resolve turns the registered module set and its dependency graph
// into flat, ordered build inputs: per-module RTL closures, whole-project
// source and constraint lists, and fully merged simulation plans. It is
// pure computation plus existence checks on listed paths; it never invokes
// a tool.
package resolve
