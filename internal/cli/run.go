package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	"zipf/internal/domain"
	"zipf/internal/port"
)

var prune bool

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run every stage in order",
	Long: `Run fetch, clean, tokenize, freq, corpus and plot in order over the
configured books. A book that fails in one stage is skipped by that stage and
the run carries on.

Examples:
  zipf run           # Regenerate everything
  zipf run --prune   # Also delete artifacts of books no longer configured`,
	Args: cobra.NoArgs,
	RunE: runAll,
}

func init() {
	runCmd.Flags().BoolVar(&prune, "prune", false, "delete artifacts of books not in the configured list first")
	rootCmd.AddCommand(runCmd)
}

func runAll(cmd *cobra.Command, args []string) error {
	s, err := newSession()
	if err != nil {
		return err
	}
	defer s.finish()

	if prune {
		removed, err := s.layout.Prune(s.pipeline.IDs())
		if err != nil {
			fmt.Printf("Warning: prune incomplete: %v\n", err)
		}
		for _, path := range removed {
			fmt.Printf("Removed %s\n", path)
		}
	}

	fmt.Printf("Processing %d books in %s...\n", len(s.pipeline.IDs()), s.layout.Root())

	results := s.pipeline.Run(cmd.Context(), func(stage domain.Stage, _ int) port.ProgressFunc {
		return newProgress(stage)
	})

	for _, r := range results {
		printResult(r)
	}

	fmt.Printf("\nCorpus table: %s\n", s.layout.CorpusCSVPath())
	fmt.Printf("Plots:        %s, %s\n", s.layout.FullPlotPath(), s.layout.TopPlotPath())
	return nil
}
