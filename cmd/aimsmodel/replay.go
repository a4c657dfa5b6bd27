package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/jpalmerr/aimsmodel/config"
	"github.com/jpalmerr/aimsmodel/internal/replay"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

// newLogger creates a JSON logger for CLI use.
func newLogger(verbose bool) *slog.Logger {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	}))
}

// replayCmd applies a replay script to a fresh model.
var replayCmd = &cobra.Command{
	Use:   "replay",
	Short: "Apply a replay script and report change events",
	Long: `Apply each step of a replay script to a fresh model.

For every step the command prints how many change events were emitted and
the model size afterwards, then prints the final model data as YAML.
With --verbose, every change event is also logged to stderr as JSON.

Example:
  aimsmodel replay -f script.yaml
  aimsmodel replay -f script.yaml --verbose`,
	RunE: runReplay,
}

func init() {
	rootCmd.AddCommand(replayCmd)

	replayCmd.Flags().StringP("file", "f", "", "path to script file (required)")
	replayCmd.Flags().BoolP("verbose", "v", false, "log every change event to stderr")
	_ = replayCmd.MarkFlagRequired("file")
}

func runReplay(cmd *cobra.Command, args []string) error {
	verbose, _ := cmd.Flags().GetBool("verbose")
	logger := newLogger(verbose)

	scriptFile, _ := cmd.Flags().GetString("file")
	script, err := config.Load(scriptFile)
	if err != nil {
		return fmt.Errorf("failed to load script: %w", err)
	}

	logger.Info("script loaded",
		"store", script.Store,
		"steps", len(script.Steps),
	)

	res, err := replay.Run(script, logger)
	if err != nil {
		return fmt.Errorf("replay failed: %w", err)
	}

	final, err := yaml.Marshal(res.Final)
	if err != nil {
		return fmt.Errorf("failed to encode final data: %w", err)
	}

	fmt.Printf("Replayed %d steps against %s store\n", len(res.Steps), res.Store)
	for _, s := range res.Steps {
		fmt.Printf("  [%d] %-6s events=%d size=%d\n", s.Index, s.Op, s.Events, s.Size)
	}
	fmt.Printf("Total events: %d\n", res.Events)
	fmt.Printf("Final data:\n%s", final)

	return nil
}
