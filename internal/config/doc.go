// Package config defines the format-agnostic descriptor model for an FPGA
// project: the root project descriptor, per-module manifests, and the
// resolved build plans handed to the tool-invocation layer. The Loader
// interface decouples the model from the concrete descriptor format; the
// HCL implementation lives in internal/hcl.
package config
