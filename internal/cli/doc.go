// Package cli defines the Cobra command tree for the newitem CLI. The root
// command runs the interactive scaffolding flow; each other file registers one
// subcommand. Commands delegate to internal packages for business logic and
// only handle flags, I/O and exit status.
package cli
