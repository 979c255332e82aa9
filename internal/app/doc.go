// Package app contains the core application logic. It defines the main App
// struct, its configuration, and the lifecycle that loads manifests, wires
// Go modules to them, and dispatches a program's arguments, decoupled from
// any specific entrypoint like the clea binary.
package app
