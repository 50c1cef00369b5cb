package domain

import (
	"errors"
	"fmt"
)

var (
	ErrMissingInput = errors.New("input file not found")
	ErrFetchFailed  = errors.New("download failed")
)

// FetchError reports a non-200 response for one ebook.
type FetchError struct {
	ID         DocID
	URL        string
	StatusCode int
}

func (e *FetchError) Error() string {
	return fmt.Sprintf("failed to download book ID %d: %s returned status %d", e.ID, e.URL, e.StatusCode)
}

func (e *FetchError) Unwrap() error {
	return ErrFetchFailed
}
