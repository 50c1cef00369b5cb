package fs

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"zipf/internal/domain"
)

const (
	CorpusCSVName = "word_frequencies.csv"
	FullPlotName  = "zipf_full.png"
	TopPlotName   = "zipf_top.png"
)

// Dirs names the per-stage directories, relative to the layout root unless
// absolute.
type Dirs struct {
	Raw       string
	Cleaned   string
	Tokenized string
	Frequency string
	Output    string
}

type artifact struct {
	dir    string
	prefix string
	suffix string
}

func (a artifact) name(id domain.DocID) string {
	return a.prefix + id.String() + a.suffix
}

func (a artifact) pattern() string {
	return a.prefix + "*" + a.suffix
}

// Layout maps stages and identifiers to files on disk.
type Layout struct {
	root      string
	outputDir string
	artifacts map[domain.Stage]artifact
}

func NewLayout(root string, dirs Dirs) *Layout {
	resolve := func(dir string) string {
		if filepath.IsAbs(dir) {
			return dir
		}
		return filepath.Join(root, dir)
	}
	return &Layout{
		root:      root,
		outputDir: resolve(dirs.Output),
		artifacts: map[domain.Stage]artifact{
			domain.StageFetch:    {dir: resolve(dirs.Raw), prefix: "book_", suffix: ".txt"},
			domain.StageClean:    {dir: resolve(dirs.Cleaned), prefix: "cleaned_", suffix: ".txt"},
			domain.StageTokenize: {dir: resolve(dirs.Tokenized), prefix: "tokens_", suffix: ".txt"},
			domain.StageDocFreq:  {dir: resolve(dirs.Frequency), prefix: "freq_", suffix: ".tsv"},
		},
	}
}

func (l *Layout) Root() string {
	return l.root
}

// Dir returns the directory a stage writes into.
func (l *Layout) Dir(stage domain.Stage) string {
	if a, ok := l.artifacts[stage]; ok {
		return a.dir
	}
	return l.outputDir
}

// Path returns the per-identifier file a stage writes. It panics for the
// corpus-wide stages, which have no per-identifier output.
func (l *Layout) Path(stage domain.Stage, id domain.DocID) string {
	a, ok := l.artifacts[stage]
	if !ok {
		panic(fmt.Sprintf("stage %s has no per-document artifact", stage))
	}
	return filepath.Join(a.dir, a.name(id))
}

func (l *Layout) CorpusCSVPath() string {
	return filepath.Join(l.outputDir, CorpusCSVName)
}

func (l *Layout) FullPlotPath() string {
	return filepath.Join(l.outputDir, FullPlotName)
}

func (l *Layout) TopPlotPath() string {
	return filepath.Join(l.outputDir, TopPlotName)
}

// EnsureDir creates the output directory of a stage.
func (l *Layout) EnsureDir(stage domain.Stage) error {
	return os.MkdirAll(l.Dir(stage), 0755)
}

// scanned is one file matching a stage's artifact pattern.
type scanned struct {
	path      string
	id        domain.DocID
	canonical bool // the name is exactly what Path(stage, id) produces
}

func (l *Layout) scan(stage domain.Stage) ([]scanned, error) {
	a, ok := l.artifacts[stage]
	if !ok {
		return nil, fmt.Errorf("stage %s has no per-document artifact", stage)
	}
	if _, err := os.Stat(a.dir); os.IsNotExist(err) {
		return nil, nil
	}

	matches, err := doublestar.Glob(os.DirFS(a.dir), a.pattern(), doublestar.WithFilesOnly())
	if err != nil {
		return nil, fmt.Errorf("failed to scan %s: %w", a.dir, err)
	}

	var files []scanned
	for _, m := range matches {
		raw := strings.TrimSuffix(strings.TrimPrefix(m, a.prefix), a.suffix)
		n, err := strconv.Atoi(raw)
		if err != nil {
			continue
		}
		id := domain.DocID(n)
		files = append(files, scanned{
			path:      filepath.Join(a.dir, m),
			id:        id,
			canonical: m == a.name(id),
		})
	}
	return files, nil
}

// Scan lists the identifiers that have an artifact for stage, sorted. Files
// such as cleaned_007.txt are not counted; the pipeline never reads them.
func (l *Layout) Scan(stage domain.Stage) ([]domain.DocID, error) {
	files, err := l.scan(stage)
	if err != nil {
		return nil, err
	}

	var ids []domain.DocID
	for _, f := range files {
		if f.canonical {
			ids = append(ids, f.id)
		}
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids, nil
}

// Stale returns the artifact files of stage that the pipeline will not read:
// those whose identifier is not in ids and those with a non-canonical name.
func (l *Layout) Stale(stage domain.Stage, ids []domain.DocID) ([]string, error) {
	files, err := l.scan(stage)
	if err != nil {
		return nil, err
	}

	wanted := make(map[domain.DocID]struct{}, len(ids))
	for _, id := range ids {
		wanted[id] = struct{}{}
	}

	var stale []string
	for _, f := range files {
		if _, ok := wanted[f.id]; !ok || !f.canonical {
			stale = append(stale, f.path)
		}
	}
	sort.Strings(stale)
	return stale, nil
}

// Discard removes the artifact of id for stage, if it exists. Stages without
// per-document artifacts are a no-op.
func (l *Layout) Discard(stage domain.Stage, id domain.DocID) error {
	if _, ok := l.artifacts[stage]; !ok {
		return nil
	}
	err := os.Remove(l.Path(stage, id))
	if err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}

// Prune deletes stale artifacts of every per-document stage and returns the
// removed paths.
func (l *Layout) Prune(ids []domain.DocID) ([]string, error) {
	var removed []string
	for _, stage := range domain.Stages {
		if _, ok := l.artifacts[stage]; !ok {
			continue
		}
		stale, err := l.Stale(stage, ids)
		if err != nil {
			return removed, err
		}
		for _, path := range stale {
			if err := os.Remove(path); err != nil {
				return removed, fmt.Errorf("failed to remove %s: %w", path, err)
			}
			removed = append(removed, path)
		}
	}
	return removed, nil
}
