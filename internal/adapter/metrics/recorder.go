// Package metrics collects batch-run metrics and writes them in the
// Prometheus text exposition format, for pickup by a node_exporter
// textfile collector.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"zipf/internal/domain"
)

// Recorder holds the collectors for one pipeline run.
type Recorder struct {
	registry *prometheus.Registry

	documentsTotal   *prometheus.CounterVec
	stageDuration    *prometheus.GaugeVec
	corpusDocuments  prometheus.Gauge
	corpusTokens     prometheus.Gauge
	corpusVocabulary prometheus.Gauge
	lastRun          prometheus.Gauge
}

// NewRecorder creates a Recorder with its own registry.
func NewRecorder() *Recorder {
	r := &Recorder{
		registry: prometheus.NewRegistry(),
		documentsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "zipf_documents_total",
				Help: "Documents handled per stage by outcome (ok, skipped).",
			},
			[]string{"stage", "outcome"},
		),
		stageDuration: prometheus.NewGaugeVec(
			prometheus.GaugeOpts{
				Name: "zipf_stage_duration_seconds",
				Help: "Wall time of the last run of each stage.",
			},
			[]string{"stage"},
		),
		corpusDocuments: prometheus.NewGauge(
			prometheus.GaugeOpts{
				Name: "zipf_corpus_documents",
				Help: "Documents that contributed to the corpus table.",
			},
		),
		corpusTokens: prometheus.NewGauge(
			prometheus.GaugeOpts{
				Name: "zipf_corpus_tokens",
				Help: "Tokens counted across the corpus.",
			},
		),
		corpusVocabulary: prometheus.NewGauge(
			prometheus.GaugeOpts{
				Name: "zipf_corpus_vocabulary_size",
				Help: "Distinct words across the corpus.",
			},
		),
		lastRun: prometheus.NewGauge(
			prometheus.GaugeOpts{
				Name: "zipf_last_run_timestamp_seconds",
				Help: "Unix time at which the metrics file was last written.",
			},
		),
	}

	r.registry.MustRegister(
		r.documentsTotal,
		r.stageDuration,
		r.corpusDocuments,
		r.corpusTokens,
		r.corpusVocabulary,
		r.lastRun,
	)
	return r
}

func (r *Recorder) ObserveDocument(stage domain.Stage, outcome string) {
	r.documentsTotal.WithLabelValues(string(stage), outcome).Inc()
}

func (r *Recorder) ObserveStage(stage domain.Stage, seconds float64) {
	r.stageDuration.WithLabelValues(string(stage)).Set(seconds)
}

func (r *Recorder) ObserveCorpus(stats domain.CorpusStats) {
	r.corpusDocuments.Set(float64(stats.Documents))
	r.corpusTokens.Set(float64(stats.Tokens))
	r.corpusVocabulary.Set(float64(stats.Vocabulary))
}

// WriteTextfile writes all metrics to path. An empty path is a no-op.
func (r *Recorder) WriteTextfile(path string) error {
	if path == "" {
		return nil
	}
	r.lastRun.SetToCurrentTime()
	return prometheus.WriteToTextfile(path, r.registry)
}
