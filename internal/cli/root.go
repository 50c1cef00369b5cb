package cli

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"zipf/config"
	"zipf/internal/logging"
)

var (
	cfgFile string
	cfg     *config.Config
	rootDir string
	logger  *slog.Logger
)

var rootCmd = &cobra.Command{
	Use:   "zipf",
	Short: "Download Project Gutenberg books and chart their word frequencies",
	Long: `zipf downloads a fixed list of Project Gutenberg books, cleans and
tokenizes them, counts word frequencies per book and across the corpus, and
plots frequency against rank to show the Zipf distribution.

Each stage reads the previous stage's directory and writes its own:
  gutenberg_books -> cleaned_books -> tokenized_books -> frequency_tables
  -> corpus_stats/word_frequencies.csv -> corpus_stats/*.png

Example usage:
  zipf run                  # Run every stage for the configured books
  zipf clean                # Re-run a single stage
  zipf status               # Show which artifacts exist`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error

		if rootDir == "" {
			rootDir, err = os.Getwd()
			if err != nil {
				return fmt.Errorf("failed to get working directory: %w", err)
			}
		}

		if cfgFile != "" {
			cfg, err = config.Load(cfgFile)
		} else {
			cfg, err = config.LoadFromDir(rootDir)
		}
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
		if err := cfg.Validate(); err != nil {
			return fmt.Errorf("invalid config: %w", err)
		}

		logger = logging.Setup(cfg.Logging.Level, cfg.Logging.Format, os.Stderr).
			With("run_id", uuid.NewString())
		return nil
	},
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ./zipf.yaml)")
	rootCmd.PersistentFlags().StringVarP(&rootDir, "dir", "d", "", "root directory for stage directories (default is current directory)")
}

func GetConfig() *config.Config {
	return cfg
}

func GetRootDir() string {
	return rootDir
}
