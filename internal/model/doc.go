// Package model defines the domain types and value objects for the
// add-text-to-root CLI.
//
// This package contains pure data structures with no external dependencies.
// Options is built once per invocation from command-line flags; Layout
// describes where the embedded text lands inside the ROOT file.
//
// The package also defines exit codes (ExitCode) and a custom error type
// (CLIError) that carries exit codes for proper OS process exit handling.
package model
