// Package param defines parameter descriptors: self-contained units that know
// their flags, their default value, how to convert a raw command-line token
// into a typed value, and how to render their own help line.
//
// # Positional vs. flag
//
// A descriptor with neither a default nor a short flag is positional. Anything
// else is a flag. The parser applies this rule once, when the descriptor is
// registered; calling SetDefault afterwards does not reclassify it.
//
// # Kinds
//
//   - String, Integer, Float: native conversion of the raw token.
//   - Boolean: a presence toggle. Parse ignores the token and returns the
//     negation of the current default, so `--round` flips a false default to
//     true and a true default to false.
//   - StringList: the only container kind. Every occurrence appends to an
//     Accumulator owned by the caller, never to the descriptor itself, so a
//     descriptor can be reused across parses.
//   - Choice: the token is looked up among the values of an Enum.
//   - ChoiceByFlag: one long flag per Enum member (`--none-binary` for a member
//     named NONE_BINARY); the value is chosen by which flag was given.
//   - File, Directory: the token is a path checked against an afero.Fs.
//   - ContextParam: never parsed; the owning command wires its context in as
//     the default.
//   - Version: a flag that switches the parser into version-only mode.
//
// # Environment variables
//
// Options.Env is stored and exposed through Env() but nothing in the engine
// reads it. Environment-sourced defaults are left to the caller.
package param
