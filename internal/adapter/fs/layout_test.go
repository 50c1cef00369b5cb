package fs

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"zipf/internal/domain"
)

func testLayout(t *testing.T) *Layout {
	t.Helper()
	return NewLayout(t.TempDir(), Dirs{
		Raw:       "raw",
		Cleaned:   "cleaned",
		Tokenized: "tokenized",
		Frequency: "freq",
		Output:    "out",
	})
}

func TestLayout_Paths(t *testing.T) {
	l := NewLayout("/work", Dirs{Raw: "raw", Cleaned: "/abs/cleaned", Tokenized: "tok", Frequency: "freq", Output: "out"})

	assert.Equal(t, filepath.Join("/work", "raw", "book_1342.txt"), l.Path(domain.StageFetch, 1342))
	assert.Equal(t, filepath.Join("/abs/cleaned", "cleaned_84.txt"), l.Path(domain.StageClean, 84))
	assert.Equal(t, filepath.Join("/work", "tok", "tokens_11.txt"), l.Path(domain.StageTokenize, 11))
	assert.Equal(t, filepath.Join("/work", "freq", "freq_98.tsv"), l.Path(domain.StageDocFreq, 98))
	assert.Equal(t, filepath.Join("/work", "out", CorpusCSVName), l.CorpusCSVPath())
	assert.Equal(t, filepath.Join("/work", "out"), l.Dir(domain.StagePlot))

	assert.Panics(t, func() { l.Path(domain.StageCorpus, 1) })
}

func TestLayout_ScanAndPrune(t *testing.T) {
	l := testLayout(t)
	require.NoError(t, l.EnsureDir(domain.StageClean))

	for _, id := range []domain.DocID{11, 84, 1342} {
		require.NoError(t, WriteFile(l.Path(domain.StageClean, id), []byte("text")))
	}
	require.NoError(t, WriteFile(filepath.Join(l.Dir(domain.StageClean), "cleaned_notanid.txt"), nil))
	require.NoError(t, WriteFile(filepath.Join(l.Dir(domain.StageClean), "notes.md"), nil))

	ids, err := l.Scan(domain.StageClean)
	require.NoError(t, err)
	assert.Equal(t, []domain.DocID{11, 84, 1342}, ids)

	stale, err := l.Stale(domain.StageClean, []domain.DocID{84, 1342})
	require.NoError(t, err)
	assert.Equal(t, []string{l.Path(domain.StageClean, 11)}, stale)

	removed, err := l.Prune([]domain.DocID{84, 1342})
	require.NoError(t, err)
	assert.Equal(t, stale, removed)

	_, err = os.Stat(l.Path(domain.StageClean, 11))
	assert.True(t, os.IsNotExist(err))
	_, err = os.Stat(l.Path(domain.StageClean, 84))
	assert.NoError(t, err)
}

func TestLayout_NonCanonicalNames(t *testing.T) {
	l := testLayout(t)
	require.NoError(t, l.EnsureDir(domain.StageClean))
	require.NoError(t, l.EnsureDir(domain.StageTokenize))

	padded := filepath.Join(l.Dir(domain.StageClean), "cleaned_007.txt")
	signed := filepath.Join(l.Dir(domain.StageClean), "cleaned_+84.txt")
	tokens := filepath.Join(l.Dir(domain.StageTokenize), "tokens_0084.txt")
	for _, path := range []string{padded, signed, tokens, l.Path(domain.StageClean, 84)} {
		require.NoError(t, WriteFile(path, []byte("text")))
	}

	ids, err := l.Scan(domain.StageClean)
	require.NoError(t, err)
	assert.Equal(t, []domain.DocID{84}, ids)

	stale, err := l.Stale(domain.StageClean, []domain.DocID{7, 84})
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{padded, signed}, stale)

	removed, err := l.Prune([]domain.DocID{84})
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{padded, signed, tokens}, removed)

	for _, path := range removed {
		_, err := os.Stat(path)
		assert.True(t, os.IsNotExist(err), path)
	}
	_, err = os.Stat(l.Path(domain.StageClean, 84))
	assert.NoError(t, err)
}

func TestLayout_Discard(t *testing.T) {
	l := testLayout(t)
	require.NoError(t, l.EnsureDir(domain.StageFetch))
	require.NoError(t, WriteFile(l.Path(domain.StageFetch, 1), []byte("old")))

	require.NoError(t, l.Discard(domain.StageFetch, 1))
	_, err := os.Stat(l.Path(domain.StageFetch, 1))
	assert.True(t, os.IsNotExist(err))

	assert.NoError(t, l.Discard(domain.StageFetch, 1))
	assert.NoError(t, l.Discard(domain.StageCorpus, 1))
}

func TestLayout_ScanMissingDir(t *testing.T) {
	l := testLayout(t)

	ids, err := l.Scan(domain.StageTokenize)
	require.NoError(t, err)
	assert.Empty(t, ids)
}

func TestReadText_Missing(t *testing.T) {
	_, err := ReadText(filepath.Join(t.TempDir(), "absent.txt"))
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrMissingInput))
}

func TestTokens_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tokens.txt")
	tokens := []string{"call", "me", "ishmael"}

	require.NoError(t, WriteTokens(path, tokens))
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "call\nme\nishmael\n", string(data))

	got, err := ReadTokens(path)
	require.NoError(t, err)
	assert.Equal(t, tokens, got)
}
