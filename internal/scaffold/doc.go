// Package scaffold creates new HDL module skeletons: directory layout,
// starter RTL and testbench files, a manifest, and the project descriptor
// edit that declares the module. Descriptor writes go through hclwrite so
// the generated files are canonically formatted.
package scaffold
