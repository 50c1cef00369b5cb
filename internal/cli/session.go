package cli

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"zipf/config"
	"zipf/internal/adapter/analyzer"
	"zipf/internal/adapter/chart"
	"zipf/internal/adapter/fs"
	"zipf/internal/adapter/gutenberg"
	"zipf/internal/adapter/metrics"
	"zipf/internal/domain"
	"zipf/internal/logging"
	"zipf/internal/usecase"
)

// session wires one pipeline from the loaded config.
type session struct {
	cfg      *config.Config
	layout   *fs.Layout
	pipeline *usecase.Pipeline
	recorder *metrics.Recorder
}

func newSession() (*session, error) {
	cfg := GetConfig()

	layout := newLayout(cfg, GetRootDir())

	fetcher, err := gutenberg.NewFetcher(
		cfg.Corpus.URLTemplate,
		cfg.Fetch.UserAgent,
		time.Duration(cfg.Fetch.TimeoutSeconds)*time.Second,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create fetcher: %w", err)
	}

	cleaner, err := analyzer.NewCleaner(cfg.Clean.MarkerMatch, cfg.Clean.FoldAccents)
	if err != nil {
		return nil, fmt.Errorf("failed to create cleaner: %w", err)
	}

	plotter := chart.NewPlotter(cfg.Plot.WidthInches, cfg.Plot.HeightInches, cfg.Plot.LogScale)
	recorder := metrics.NewRecorder()

	p := usecase.NewPipeline(docIDs(cfg.Corpus.IDs), layout, fetcher, cleaner, analyzer.NewTokenizer(), plotter).
		WithTopN(cfg.Plot.TopN).
		WithRecorder(recorder).
		WithLogger(logging.WithComponent(logger, "pipeline"))

	return &session{
		cfg:      cfg,
		layout:   layout,
		pipeline: p,
		recorder: recorder,
	}, nil
}

func newLayout(cfg *config.Config, root string) *fs.Layout {
	return fs.NewLayout(root, fs.Dirs{
		Raw:       cfg.Dirs.Raw,
		Cleaned:   cfg.Dirs.Cleaned,
		Tokenized: cfg.Dirs.Tokenized,
		Frequency: cfg.Dirs.Frequency,
		Output:    cfg.Dirs.Output,
	})
}

func docIDs(ids []int) []domain.DocID {
	out := make([]domain.DocID, len(ids))
	for i, id := range ids {
		out[i] = domain.DocID(id)
	}
	return out
}

// runStage runs a single stage with a progress bar.
func (s *session) runStage(ctx context.Context, stage domain.Stage) (*domain.StageResult, error) {
	progress := newProgress(stage)

	switch stage {
	case domain.StageFetch:
		return s.pipeline.Fetch(ctx, progress)
	case domain.StageClean:
		return s.pipeline.Clean(progress)
	case domain.StageTokenize:
		return s.pipeline.Tokenize(progress)
	case domain.StageDocFreq:
		return s.pipeline.CountDocuments(progress)
	case domain.StageCorpus:
		return s.pipeline.CountCorpus(progress)
	case domain.StagePlot:
		return s.pipeline.Plot(progress)
	default:
		return nil, fmt.Errorf("unknown stage: %s", stage)
	}
}

// finish writes the metrics textfile, if one is configured.
func (s *session) finish() {
	path := s.cfg.Metrics.Textfile
	if path == "" {
		return
	}
	if !filepath.IsAbs(path) {
		path = filepath.Join(s.layout.Root(), path)
	}
	if err := s.recorder.WriteTextfile(path); err != nil {
		fmt.Printf("\nWarning: failed to write metrics to %s: %v\n", path, err)
		return
	}
	logger.Debug("metrics written", "path", path)
}

func printResult(r *domain.StageResult) {
	fmt.Printf("\n%s complete:\n", stageLabels[r.Stage])
	fmt.Printf("  Processed: %d/%d\n", r.Processed, r.Total)
	fmt.Printf("  Skipped:   %d\n", r.Skipped)
	if r.Stats != nil {
		fmt.Printf("  Documents:  %d\n", r.Stats.Documents)
		fmt.Printf("  Tokens:     %d\n", r.Stats.Tokens)
		fmt.Printf("  Vocabulary: %d\n", r.Stats.Vocabulary)
	}

	if len(r.Warnings) > 0 {
		fmt.Printf("\nWarnings:\n")
		for _, w := range r.Warnings {
			fmt.Printf("  - %s\n", w)
		}
	}
}
