package chart

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"zipf/internal/domain"
)

var pngMagic = []byte("\x89PNG\r\n\x1a\n")

func zipfRows(n int) []domain.RankedWord {
	rows := make([]domain.RankedWord, n)
	for i := range rows {
		rows[i] = domain.RankedWord{Rank: i + 1, Word: "w", Count: 1 + 1000/(i+1)}
	}
	return rows
}

func assertPNG(t *testing.T, path string) {
	t.Helper()
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(data, pngMagic), "%s is not a PNG", path)
}

func TestPlotter_PlotFull(t *testing.T) {
	dir := t.TempDir()

	for _, logScale := range []bool{true, false} {
		p := NewPlotter(6, 4, logScale)
		path := filepath.Join(dir, "full.png")
		require.NoError(t, p.PlotFull(zipfRows(200), path))
		assertPNG(t, path)
	}
}

func TestPlotter_PlotFull_FlatCounts(t *testing.T) {
	rows := []domain.RankedWord{{Rank: 1, Word: "a", Count: 1}, {Rank: 2, Word: "b", Count: 1}}
	path := filepath.Join(t.TempDir(), "flat.png")

	require.NoError(t, NewPlotter(6, 4, true).PlotFull(rows, path))
	assertPNG(t, path)
}

func TestPlotter_PlotTop(t *testing.T) {
	path := filepath.Join(t.TempDir(), "top.png")

	require.NoError(t, NewPlotter(12, 4, true).PlotTop(zipfRows(50), []int{10, 100, 1000}, path))
	assertPNG(t, path)
}

func TestPlotter_Empty(t *testing.T) {
	dir := t.TempDir()
	p := NewPlotter(0, 0, true)

	assert.Error(t, p.PlotFull(nil, filepath.Join(dir, "a.png")))
	assert.Error(t, p.PlotTop(nil, []int{10}, filepath.Join(dir, "b.png")))
}

func TestTruncate(t *testing.T) {
	rows := zipfRows(5)

	assert.Len(t, Truncate(rows, 3), 3)
	assert.Len(t, Truncate(rows, 10), 5)
}
