// Package main is the entry point for the add-text-to-root CLI.
//
// This binary embeds a text file (typically a JSON or YAML network
// configuration) into a ROOT calibration file. It delegates all
// functionality to the internal/cli package, which defines the cobra command.
//
// Build-time variables (version, commit, date) are injected via ldflags.
// During development, they default to "dev", "none", and "unknown".
package main

import (
	"github.com/shinji-kodama/add-text-to-root/internal/cli"
)

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	cli.Version = version
	cli.Commit = commit
	cli.Date = date

	rootCmd := cli.NewRootCommand()
	cli.Execute(rootCmd)
}
