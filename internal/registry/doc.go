// Package registry provides the central "glue" for the module system.
//
// The Registry stores mappings between the string identifiers used in
// manifests (e.g., "OnRunAdd") and the compiled Go handlers and context
// factories that implement them. Validate checks a loaded manifest against
// those mappings so that mismatches surface at startup rather than at the
// moment a command is invoked.
package registry
