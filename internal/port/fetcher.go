package port

import (
	"context"

	"zipf/internal/domain"
)

// Fetcher downloads the raw text of one ebook.
type Fetcher interface {
	// Fetch returns the response body verbatim. A non-200 response is
	// reported as a *domain.FetchError.
	Fetch(ctx context.Context, id domain.DocID) ([]byte, error)

	// URL returns the address Fetch requests for id.
	URL(id domain.DocID) string
}
