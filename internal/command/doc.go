// Package command binds a parser to a handler.
//
// Executable is a closed union with two variants. A Command parses its argv
// and calls its handler. A Group parses up to the first token naming one of
// its children, runs its own handler, then hands the rest of argv to that
// child. Groups nest to any depth and share one clictx.Store along the chain.
package command
