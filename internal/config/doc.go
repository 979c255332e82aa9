// Package config defines the format-agnostic model of a command manifest and
// the interfaces (Loader, Converter) for reading one.
//
// A manifest declares a single command tree: a root command or group, its
// parameters, and its children. The builder package turns the model into
// executable commands. The HCL implementation of the interfaces lives in the
// hcl package.
package config
