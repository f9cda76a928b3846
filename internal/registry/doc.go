// Package registry materializes the project's module set. Given the root
// descriptor's declared module paths it loads every manifest exactly once,
// follows dependency names to their module directories, and indexes the
// result two ways: path -> module and name -> path. Registration order is
// dependency-first (a module is appended only after everything it depends
// on), with the first-declared root module leading.
//
// The name -> path index is memoized during registration, so name lookups
// never re-parse a descriptor file.
package registry
