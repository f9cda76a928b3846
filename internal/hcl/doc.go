// Package hcl provides the concrete HCL implementation of the descriptor
// store: parsing project.hcl and per-module manifest.hcl files into the
// format-agnostic model defined in internal/config. It owns all file
// parsing and HCL-to-model translation; it performs no graph logic and
// no caching.
package hcl
