package port

import "zipf/internal/domain"

// Plotter renders rank/frequency charts.
type Plotter interface {
	// PlotFull draws the whole ranked table to path.
	PlotFull(rows []domain.RankedWord, path string) error

	// PlotTop draws one panel per limit, each truncated to the top-N ranks.
	PlotTop(rows []domain.RankedWord, limits []int, path string) error
}

// ProgressFunc is called after each identifier a stage handles.
type ProgressFunc func(processed, total int, current string)

// StageRecorder receives per-stage outcomes for batch metrics.
type StageRecorder interface {
	ObserveDocument(stage domain.Stage, outcome string)
	ObserveStage(stage domain.Stage, seconds float64)
	ObserveCorpus(stats domain.CorpusStats)
}
