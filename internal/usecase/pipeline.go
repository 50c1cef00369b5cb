package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"zipf/internal/adapter/analyzer"
	"zipf/internal/adapter/fs"
	"zipf/internal/domain"
	"zipf/internal/port"
)

// DefaultTopN are the panel limits of the truncated plot.
var DefaultTopN = []int{10, 100, 1000}

// Pipeline runs the stages over a fixed list of books. Every stage reads the
// previous stage's directory and writes its own; a missing input or failed
// download skips that book and the stage carries on.
type Pipeline struct {
	ids       []domain.DocID
	layout    *fs.Layout
	fetcher   port.Fetcher
	cleaner   port.Cleaner
	tokenizer port.Tokenizer
	plotter   port.Plotter
	topN      []int
	recorder  port.StageRecorder
	logger    *slog.Logger
}

// NewPipeline creates a pipeline over ids.
func NewPipeline(
	ids []domain.DocID,
	layout *fs.Layout,
	fetcher port.Fetcher,
	cleaner port.Cleaner,
	tokenizer port.Tokenizer,
	plotter port.Plotter,
) *Pipeline {
	return &Pipeline{
		ids:       ids,
		layout:    layout,
		fetcher:   fetcher,
		cleaner:   cleaner,
		tokenizer: tokenizer,
		plotter:   plotter,
		topN:      DefaultTopN,
		recorder:  nopRecorder{},
		logger:    slog.Default(),
	}
}

// WithTopN sets the panel limits of the truncated plot.
func (p *Pipeline) WithTopN(limits []int) *Pipeline {
	if len(limits) > 0 {
		p.topN = limits
	}
	return p
}

func (p *Pipeline) WithRecorder(r port.StageRecorder) *Pipeline {
	if r != nil {
		p.recorder = r
	}
	return p
}

func (p *Pipeline) WithLogger(l *slog.Logger) *Pipeline {
	if l != nil {
		p.logger = l
	}
	return p
}

// IDs returns the identifier list the pipeline works on.
func (p *Pipeline) IDs() []domain.DocID {
	return p.ids
}

// Fetch downloads every book. Non-200 responses are skipped without writing
// a file, and a book_<id>.txt left by an earlier run is removed.
func (p *Pipeline) Fetch(ctx context.Context, progress port.ProgressFunc) (*domain.StageResult, error) {
	return p.eachDoc(domain.StageFetch, progress, func(id domain.DocID) error {
		body, err := p.fetcher.Fetch(ctx, id)
		if err != nil {
			return err
		}
		return fs.WriteFile(p.layout.Path(domain.StageFetch, id), body)
	})
}

// Clean normalizes every downloaded book.
func (p *Pipeline) Clean(progress port.ProgressFunc) (*domain.StageResult, error) {
	return p.eachDoc(domain.StageClean, progress, func(id domain.DocID) error {
		raw, err := fs.ReadText(p.layout.Path(domain.StageFetch, id))
		if err != nil {
			return err
		}
		return fs.WriteFile(p.layout.Path(domain.StageClean, id), []byte(p.cleaner.Clean(raw)))
	})
}

// Tokenize splits every cleaned book into tokens.
func (p *Pipeline) Tokenize(progress port.ProgressFunc) (*domain.StageResult, error) {
	return p.eachDoc(domain.StageTokenize, progress, func(id domain.DocID) error {
		text, err := fs.ReadText(p.layout.Path(domain.StageClean, id))
		if err != nil {
			return err
		}
		return fs.WriteTokens(p.layout.Path(domain.StageTokenize, id), p.tokenizer.Tokenize(text))
	})
}

// CountDocuments writes one word/count table per book.
func (p *Pipeline) CountDocuments(progress port.ProgressFunc) (*domain.StageResult, error) {
	return p.eachDoc(domain.StageDocFreq, progress, func(id domain.DocID) error {
		tokens, err := fs.ReadTokens(p.layout.Path(domain.StageTokenize, id))
		if err != nil {
			return err
		}
		counter := analyzer.NewCounter()
		counter.Add(tokens)
		return fs.WriteDocFrequency(p.layout.Path(domain.StageDocFreq, id), counter.MostCommon())
	})
}

// CountCorpus counts the tokens of all books together and writes the ranked
// CSV table.
func (p *Pipeline) CountCorpus(progress port.ProgressFunc) (*domain.StageResult, error) {
	counter := analyzer.NewCounter()

	result, err := p.eachDoc(domain.StageCorpus, progress, func(id domain.DocID) error {
		tokens, err := fs.ReadTokens(p.layout.Path(domain.StageTokenize, id))
		if err != nil {
			return err
		}
		counter.Add(tokens)
		return nil
	})
	if err != nil {
		return nil, err
	}

	stats := domain.CorpusStats{
		Documents:  result.Processed,
		Tokens:     counter.Total(),
		Vocabulary: counter.Vocabulary(),
	}
	result.Stats = &stats
	p.recorder.ObserveCorpus(stats)

	path := p.layout.CorpusCSVPath()
	if err := fs.WriteCorpusCSV(path, counter.Ranked()); err != nil {
		msg := fmt.Sprintf("failed to write %s: %v", path, err)
		p.logger.Warn("corpus table not written", "stage", domain.StageCorpus, "path", path, "error", err)
		result.Warnings = append(result.Warnings, msg)
		return result, nil
	}

	p.logger.Info("corpus table written", "stage", domain.StageCorpus, "path", path,
		"documents", stats.Documents, "tokens", stats.Tokens, "vocabulary", stats.Vocabulary)
	return result, nil
}

// Plot renders the full-range chart and the top-N panels from the corpus CSV.
func (p *Pipeline) Plot(progress port.ProgressFunc) (*domain.StageResult, error) {
	start := time.Now()
	stage := domain.StagePlot
	if err := p.layout.EnsureDir(stage); err != nil {
		return nil, fmt.Errorf("failed to create %s directory: %w", stage, err)
	}

	figures := []struct {
		path string
		draw func(rows []domain.RankedWord, path string) error
	}{
		{p.layout.FullPlotPath(), p.plotter.PlotFull},
		{p.layout.TopPlotPath(), func(rows []domain.RankedWord, path string) error {
			return p.plotter.PlotTop(rows, p.topN, path)
		}},
	}

	result := &domain.StageResult{Stage: stage, Total: len(figures)}
	log := p.logger.With("stage", stage)

	rows, err := fs.ReadCorpusCSV(p.layout.CorpusCSVPath())
	if err != nil {
		log.Warn("skipping plots", "error", err)
		for range figures {
			result.Warn(err.Error())
			p.recorder.ObserveDocument(stage, domain.OutcomeSkipped)
		}
		p.recorder.ObserveStage(stage, time.Since(start).Seconds())
		return result, nil
	}

	for i, fig := range figures {
		if err := fig.draw(rows, fig.path); err != nil {
			log.Warn("figure not written", "path", fig.path, "error", err)
			result.Warn(fmt.Sprintf("%s: %v", fig.path, err))
			p.recorder.ObserveDocument(stage, domain.OutcomeSkipped)
		} else {
			result.Processed++
			p.recorder.ObserveDocument(stage, domain.OutcomeOK)
		}
		if progress != nil {
			progress(i+1, len(figures), fig.path)
		}
	}

	p.recorder.ObserveStage(stage, time.Since(start).Seconds())
	return result, nil
}

// ProgressFactory supplies a progress callback for each stage. It may
// return nil.
type ProgressFactory func(stage domain.Stage, total int) port.ProgressFunc

// Run executes every stage in order. A stage that cannot start is logged and
// the run moves on to the next one.
func (p *Pipeline) Run(ctx context.Context, progressFor ProgressFactory) []*domain.StageResult {
	if progressFor == nil {
		progressFor = func(domain.Stage, int) port.ProgressFunc { return nil }
	}

	stages := []struct {
		stage domain.Stage
		total int
		run   func(port.ProgressFunc) (*domain.StageResult, error)
	}{
		{domain.StageFetch, len(p.ids), func(pf port.ProgressFunc) (*domain.StageResult, error) { return p.Fetch(ctx, pf) }},
		{domain.StageClean, len(p.ids), p.Clean},
		{domain.StageTokenize, len(p.ids), p.Tokenize},
		{domain.StageDocFreq, len(p.ids), p.CountDocuments},
		{domain.StageCorpus, len(p.ids), p.CountCorpus},
		{domain.StagePlot, 2, p.Plot},
	}

	var results []*domain.StageResult
	for _, s := range stages {
		result, err := s.run(progressFor(s.stage, s.total))
		if err != nil {
			p.logger.Error("stage failed", "stage", s.stage, "error", err)
			result = &domain.StageResult{Stage: s.stage, Total: s.total, Warnings: []string{err.Error()}}
		}
		results = append(results, result)
	}
	return results
}

// eachDoc runs fn for every identifier in order. Errors from fn skip that
// identifier only, and any output it left from an earlier run is removed.
func (p *Pipeline) eachDoc(stage domain.Stage, progress port.ProgressFunc, fn func(id domain.DocID) error) (*domain.StageResult, error) {
	start := time.Now()
	if err := p.layout.EnsureDir(stage); err != nil {
		return nil, fmt.Errorf("failed to create %s directory: %w", stage, err)
	}

	result := &domain.StageResult{Stage: stage, Total: len(p.ids)}
	log := p.logger.With("stage", stage)

	for i, id := range p.ids {
		if err := fn(id); err != nil {
			log.Warn("skipping book", "id", int(id), "error", err)
			result.Warn(fmt.Sprintf("book ID %d: %v", id, err))
			p.recorder.ObserveDocument(stage, domain.OutcomeSkipped)
			// A previous run's output would otherwise feed the next stage.
			if err := p.layout.Discard(stage, id); err != nil {
				log.Warn("stale output not removed", "id", int(id), "error", err)
			}
		} else {
			result.Processed++
			p.recorder.ObserveDocument(stage, domain.OutcomeOK)
		}
		if progress != nil {
			progress(i+1, len(p.ids), id.String())
		}
	}

	p.recorder.ObserveStage(stage, time.Since(start).Seconds())
	return result, nil
}

type nopRecorder struct{}

func (nopRecorder) ObserveDocument(domain.Stage, string) {}
func (nopRecorder) ObserveStage(domain.Stage, float64)   {}
func (nopRecorder) ObserveCorpus(domain.CorpusStats)     {}
