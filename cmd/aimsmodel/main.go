// Package main is the entry point for the aimsmodel CLI.
//
// The CLI replays YAML scripts of model operations and reports which of them
// produced change events. It is a development aid for checking emission
// behaviour without writing a Go program.
//
// Usage:
//
//	aimsmodel validate -f script.yaml # Validate a replay script
//	aimsmodel replay -f script.yaml   # Apply a script and report events
//	aimsmodel version                 # Show version info
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// Version information - set at build time via ldflags.
// Example: go build -ldflags "-X main.version=1.0.0"
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

// rootCmd is the base command when called without subcommands.
var rootCmd = &cobra.Command{
	Use:   "aimsmodel",
	Short: "Replay operations against observable data models",
	Long: `aimsmodel replays scripted operations against an observable data model
and reports how many change events each operation emitted.

Quick start:
  1. Create a script file (script.yaml)
  2. Run: aimsmodel replay -f script.yaml

Example script:
  store: map
  steps:
    - op: add
      entries:
        - {id: a, v: 1}
    - op: remove
      id: a
    - op: clear`,
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		// cobra already printed the error
		os.Exit(1)
	}
}

func main() {
	Execute()
}

// versionCmd prints version information.
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Long:  `Print the version, commit hash, and build date of this aimsmodel binary.`,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("aimsmodel %s\n", version)
		fmt.Printf("  commit: %s\n", commit)
		fmt.Printf("  built:  %s\n", date)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
