package fs

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"strings"

	"zipf/internal/domain"
)

// ReadText reads a whole file. A missing file is reported as
// domain.ErrMissingInput.
func ReadText(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return "", fmt.Errorf("%w: %s", domain.ErrMissingInput, path)
		}
		return "", err
	}
	return string(data), nil
}

// WriteFile replaces path with data.
func WriteFile(path string, data []byte) error {
	return os.WriteFile(path, data, 0644)
}

// WriteTokens writes one token per line.
func WriteTokens(path string, tokens []string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	w := bufio.NewWriter(f)
	for _, tok := range tokens {
		w.WriteString(tok)
		w.WriteByte('\n')
	}
	if err := w.Flush(); err != nil {
		return err
	}
	return f.Close()
}

// ReadTokens reads a file written by WriteTokens.
func ReadTokens(path string) ([]string, error) {
	text, err := ReadText(path)
	if err != nil {
		return nil, err
	}
	return strings.Fields(text), nil
}
