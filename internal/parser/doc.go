// Package parser maps an argument vector onto registered parameter
// descriptors.
//
// A Parser keeps a FIFO queue of positional descriptors and a table from flag
// string to descriptor. Parse scans the tokens left to right:
//
//   - (group variant) a token naming a child command stops the scan and the
//     remaining tokens become the child's argument vector;
//   - `--help` stops the scan in help-only mode;
//   - a version flag stops the scan in version-only mode;
//   - `-x`, `--flag` and `--flag=value` bind flag descriptors. A bare flag
//     passes its own text as the value. Non-container flags can be given once;
//   - any other token binds the next positional descriptor.
//
// Scanning never mutates the registration tables, so one Parser can parse many
// vectors and still render the same help afterwards.
package parser
