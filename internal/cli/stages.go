package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	"zipf/internal/domain"
)

var stageCommands = []struct {
	stage domain.Stage
	short string
	long  string
}{
	{domain.StageFetch, "Download the configured books",
		"Download every configured book to gutenberg_books/book_<id>.txt.\nBooks that do not return HTTP 200 are reported and skipped."},
	{domain.StageClean, "Clean downloaded books",
		"Lower-case each book, strip the Project Gutenberg header/footer markers,\npunctuation, digits and other non-letters, and collapse whitespace."},
	{domain.StageTokenize, "Split cleaned books into tokens",
		"Write one token per line for every cleaned book."},
	{domain.StageDocFreq, "Count word frequencies per book",
		"Write word<TAB>count tables sorted by descending count, one per book."},
	{domain.StageCorpus, "Count word frequencies across the corpus",
		"Count the tokens of every book together and write the ranked\nRank,Word,Frequency table."},
	{domain.StagePlot, "Plot frequency against rank",
		"Render the full-range rank/frequency chart and the top-N panels from\nthe corpus table."},
}

func init() {
	for _, sc := range stageCommands {
		stage := sc.stage
		rootCmd.AddCommand(&cobra.Command{
			Use:   string(stage),
			Short: sc.short,
			Long:  sc.long,
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				return runSingleStage(cmd, stage)
			},
		})
	}
}

func runSingleStage(cmd *cobra.Command, stage domain.Stage) error {
	s, err := newSession()
	if err != nil {
		return err
	}
	defer s.finish()

	fmt.Printf("%s (%d books)...\n", stageLabels[stage], len(s.pipeline.IDs()))

	result, err := s.runStage(cmd.Context(), stage)
	if err != nil {
		return err
	}
	printResult(result)
	return nil
}
