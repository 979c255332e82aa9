// Package runner is the entry point that executes a command tree against an
// argument vector and reports the exit code.
package runner
