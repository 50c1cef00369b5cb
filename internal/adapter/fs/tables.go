package fs

import (
	"bufio"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"

	"zipf/internal/domain"
)

var corpusHeader = []string{"Rank", "Word", "Frequency"}

// WriteDocFrequency writes word<TAB>count lines in the given order.
func WriteDocFrequency(path string, entries []domain.WordCount) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	w := bufio.NewWriter(f)
	for _, e := range entries {
		fmt.Fprintf(w, "%s\t%d\n", e.Word, e.Count)
	}
	if err := w.Flush(); err != nil {
		return err
	}
	return f.Close()
}

// WriteCorpusCSV writes the ranked table with a Rank,Word,Frequency header.
func WriteCorpusCSV(path string, rows []domain.RankedWord) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write(corpusHeader); err != nil {
		return err
	}
	for _, r := range rows {
		record := []string{strconv.Itoa(r.Rank), r.Word, strconv.Itoa(r.Count)}
		if err := w.Write(record); err != nil {
			return err
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return err
	}
	return f.Close()
}

// ReadCorpusCSV reads a file written by WriteCorpusCSV.
func ReadCorpusCSV(path string) ([]domain.RankedWord, error) {
	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", domain.ErrMissingInput, path)
		}
		return nil, err
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = len(corpusHeader)

	header, err := r.Read()
	if err != nil {
		if err == io.EOF {
			return nil, fmt.Errorf("empty corpus table: %s", path)
		}
		return nil, err
	}
	if header[0] != corpusHeader[0] {
		return nil, fmt.Errorf("unexpected corpus table header: %v", header)
	}

	var rows []domain.RankedWord
	for {
		record, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}
		rank, err := strconv.Atoi(record[0])
		if err != nil {
			return nil, fmt.Errorf("invalid rank %q: %w", record[0], err)
		}
		count, err := strconv.Atoi(record[2])
		if err != nil {
			return nil, fmt.Errorf("invalid frequency %q: %w", record[2], err)
		}
		rows = append(rows, domain.RankedWord{Rank: rank, Word: record[1], Count: count})
	}
	return rows, nil
}
