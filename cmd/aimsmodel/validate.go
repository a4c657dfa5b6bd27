package main

import (
	"fmt"

	"github.com/jpalmerr/aimsmodel/config"
	"github.com/spf13/cobra"
)

// validateCmd validates a replay script without applying it.
var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Validate a replay script",
	Long: `Validate an aimsmodel replay script without running it.

This command parses the YAML, expands environment variables, and checks
that every step is valid for the script's store kind.

Exit codes:
  0 - Script is valid
  1 - Script is invalid (error details printed to stderr)

Example:
  aimsmodel validate -f script.yaml
  aimsmodel validate --file ./testdata/replay.yaml`,
	RunE: runValidate,
}

func init() {
	rootCmd.AddCommand(validateCmd)

	validateCmd.Flags().StringP("file", "f", "", "path to script file (required)")
	_ = validateCmd.MarkFlagRequired("file")
}

func runValidate(cmd *cobra.Command, args []string) error {
	scriptFile, _ := cmd.Flags().GetString("file")
	script, err := config.Load(scriptFile)
	if err != nil {
		return fmt.Errorf("invalid script: %w", err)
	}

	counts := script.CountOps()

	fmt.Printf("Script is valid!\n")
	fmt.Printf("  Store: %s\n", script.Store)
	fmt.Printf("  Steps: %d (add %d, remove %d, set %d, clear %d)\n",
		len(script.Steps),
		counts[config.OpAdd], counts[config.OpRemove], counts[config.OpSet], counts[config.OpClear])

	return nil
}
