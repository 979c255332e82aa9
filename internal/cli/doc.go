// Package cli is responsible for parsing the launcher's own command-line
// flags, validating them, and handling process-level concerns like exit
// codes. It splits the argument vector into the app configuration and the
// arguments handed to the manifest-defined program.
package cli
