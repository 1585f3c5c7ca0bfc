// Package app contains the core application logic. It defines the main App
// struct, its configuration, and the launch lifecycle (load description,
// resolve, build, preview or supervise), decoupled from any specific
// entrypoint like a CLI.
package app
