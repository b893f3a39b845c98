// Package app contains the core application logic. It defines the main App
// struct, its configuration, and the run lifecycle: load every instance,
// drive each through an episode in the configured mode, and report the
// outcomes. It is decoupled from any specific entrypoint like a CLI.
package app
