package hcl

import "fmt"

// DescriptorNotFoundError indicates that an expected descriptor file is
// absent. It is fatal to the current resolution request.
type DescriptorNotFoundError struct {
	// Path is the descriptor file that was expected to exist.
	Path string
}

func (e *DescriptorNotFoundError) Error() string {
	return fmt.Sprintf("descriptor not found: %s", e.Path)
}

// ParseError indicates a malformed descriptor document. Err carries the
// underlying HCL diagnostics or a structural validation failure.
type ParseError struct {
	Path string
	Err  error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("failed to parse %s: %v", e.Path, e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }
