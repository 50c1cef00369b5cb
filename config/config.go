package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// Config holds all configuration for the zipf pipeline.
type Config struct {
	Corpus  CorpusConfig  `yaml:"corpus"`
	Dirs    DirsConfig    `yaml:"dirs"`
	Fetch   FetchConfig   `yaml:"fetch"`
	Clean   CleanConfig   `yaml:"clean"`
	Plot    PlotConfig    `yaml:"plot"`
	Metrics MetricsConfig `yaml:"metrics"`
	Logging LoggingConfig `yaml:"logging"`
}

// CorpusConfig names the books to process.
type CorpusConfig struct {
	IDs         []int  `yaml:"ids"`
	URLTemplate string `yaml:"url_template"` // every {id} is replaced by the book ID
}

// DirsConfig holds one directory per stage, relative to the root directory.
type DirsConfig struct {
	Raw       string `yaml:"raw"`
	Cleaned   string `yaml:"cleaned"`
	Tokenized string `yaml:"tokenized"`
	Frequency string `yaml:"frequency"`
	Output    string `yaml:"output"` // corpus CSV and plots
}

type FetchConfig struct {
	TimeoutSeconds int    `yaml:"timeout_seconds"`
	UserAgent      string `yaml:"user_agent"`
}

type CleanConfig struct {
	MarkerMatch string `yaml:"marker_match"` // "longest" or "shortest"
	FoldAccents bool   `yaml:"fold_accents"`
}

type PlotConfig struct {
	TopN         []int   `yaml:"top_n"`
	LogScale     bool    `yaml:"log_scale"`
	WidthInches  float64 `yaml:"width_inches"`
	HeightInches float64 `yaml:"height_inches"`
}

type MetricsConfig struct {
	Textfile string `yaml:"textfile"` // empty disables metrics output
}

type LoggingConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"` // "text" or "json"
}

// DefaultIDs is the reference corpus of twenty Project Gutenberg books.
var DefaultIDs = []int{
	1342, 84, 2701, 11, 98, 345, 1661, 5200, 4300, 1080,
	1184, 74, 2542, 408, 174, 16328, 215, 1400, 28054, 23,
}

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		Corpus: CorpusConfig{
			IDs:         append([]int(nil), DefaultIDs...),
			URLTemplate: "https://www.gutenberg.org/files/{id}/{id}-0.txt",
		},
		Dirs: DirsConfig{
			Raw:       "gutenberg_books",
			Cleaned:   "cleaned_books",
			Tokenized: "tokenized_books",
			Frequency: "frequency_tables",
			Output:    "corpus_stats",
		},
		Fetch: FetchConfig{
			TimeoutSeconds: 60,
			UserAgent:      "zipf/1.0",
		},
		Clean: CleanConfig{
			MarkerMatch: "longest",
			FoldAccents: false,
		},
		Plot: PlotConfig{
			TopN:         []int{10, 100, 1000},
			LogScale:     true,
			WidthInches:  12,
			HeightInches: 6,
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "text",
		},
	}
}

// Load loads configuration from a YAML file.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil // Return defaults if no config file
		}
		return nil, err
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

// LoadFromDir loads configuration from a directory (looks for zipf.yaml).
func LoadFromDir(dir string) (*Config, error) {
	path := filepath.Join(dir, FileName)
	if _, err := os.Stat(path); err == nil {
		return Load(path)
	}

	path = filepath.Join(dir, ".zipf", "config.yaml")
	if _, err := os.Stat(path); err == nil {
		return Load(path)
	}

	return DefaultConfig(), nil
}

// FileName is the config file looked up in the root directory.
const FileName = "zipf.yaml"

// Save saves configuration to a YAML file.
func (c *Config) Save(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// Validate checks the settings the pipeline cannot run without.
func (c *Config) Validate() error {
	if len(c.Corpus.IDs) == 0 {
		return fmt.Errorf("corpus.ids is empty")
	}
	for _, id := range c.Corpus.IDs {
		if id <= 0 {
			return fmt.Errorf("corpus.ids: invalid book ID %d", id)
		}
	}
	if !strings.Contains(c.Corpus.URLTemplate, "{id}") {
		return fmt.Errorf("corpus.url_template must contain {id}: %q", c.Corpus.URLTemplate)
	}
	switch c.Clean.MarkerMatch {
	case "", "longest", "shortest":
	default:
		return fmt.Errorf("clean.marker_match must be longest or shortest, got %q", c.Clean.MarkerMatch)
	}
	if len(c.Plot.TopN) != 3 {
		return fmt.Errorf("plot.top_n must have exactly 3 entries, got %d", len(c.Plot.TopN))
	}
	for _, n := range c.Plot.TopN {
		if n <= 0 {
			return fmt.Errorf("plot.top_n entries must be positive, got %d", n)
		}
	}
	return nil
}
