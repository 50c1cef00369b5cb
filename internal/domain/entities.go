package domain

import "strconv"

// DocID identifies one Project Gutenberg ebook.
type DocID int

func (id DocID) String() string {
	return strconv.Itoa(int(id))
}

// Stage names one step of the pipeline.
type Stage string

const (
	StageFetch    Stage = "fetch"
	StageClean    Stage = "clean"
	StageTokenize Stage = "tokenize"
	StageDocFreq  Stage = "freq"
	StageCorpus   Stage = "corpus"
	StagePlot     Stage = "plot"
)

// Stages lists every stage in execution order.
var Stages = []Stage{StageFetch, StageClean, StageTokenize, StageDocFreq, StageCorpus, StagePlot}

type WordCount struct {
	Word  string
	Count int
}

// RankedWord is one row of the corpus frequency table. Rank starts at 1.
type RankedWord struct {
	Rank  int
	Word  string
	Count int
}

// Document outcomes reported to a StageRecorder.
const (
	OutcomeOK      = "ok"
	OutcomeSkipped = "skipped"
)

// StageResult summarises one pass of a stage over the identifier list.
type StageResult struct {
	Stage     Stage
	Total     int
	Processed int
	Skipped   int
	Warnings  []string

	// Stats is set by the corpus stage.
	Stats *CorpusStats
}

// Warn records a skipped identifier.
func (r *StageResult) Warn(msg string) {
	r.Skipped++
	r.Warnings = append(r.Warnings, msg)
}

type CorpusStats struct {
	Documents  int
	Tokens     int
	Vocabulary int
}
