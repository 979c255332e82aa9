/*
Package builder turns a loaded manifest into an executable command tree. It is
the bridge between the static configuration model (the 'config' package) and
the dispatch engine (the 'command' package).

Construction is a single recursive pass:

 1. Context: one shared context is created for the whole tree, either a
    plain clictx.Context or the custom one named by the root's `context`
    attribute.

 2. Parameters: every `param` block becomes a parameter descriptor of the
    declared kind. Defaults are converted by the config.Converter; choice
    defaults are resolved to the matching enum member.

 3. Commands: each block becomes a *command.Command or *command.Group with
    its handler looked up in the registry. Children are added to their
    group in declaration order.

The model is expected to have passed registry.Validate; the builder still
returns errors for anything it cannot construct.
*/
package builder
