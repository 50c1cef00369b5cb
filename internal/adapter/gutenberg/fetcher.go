package gutenberg

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"zipf/internal/domain"
)

// DefaultURLTemplate is the plain-text location of a Project Gutenberg book.
const DefaultURLTemplate = "https://www.gutenberg.org/files/{id}/{id}-0.txt"

const idPlaceholder = "{id}"

// Fetcher downloads books over HTTP. It makes exactly one request per call.
type Fetcher struct {
	template  string
	userAgent string
	client    *http.Client
}

// NewFetcher creates a Fetcher for urlTemplate, in which every "{id}" is
// replaced by the book identifier.
func NewFetcher(urlTemplate, userAgent string, timeout time.Duration) (*Fetcher, error) {
	if urlTemplate == "" {
		urlTemplate = DefaultURLTemplate
	}
	if !strings.Contains(urlTemplate, idPlaceholder) {
		return nil, fmt.Errorf("url template %q has no %s placeholder", urlTemplate, idPlaceholder)
	}
	if timeout <= 0 {
		timeout = 60 * time.Second
	}
	return &Fetcher{
		template:  urlTemplate,
		userAgent: userAgent,
		client: &http.Client{
			Timeout: timeout,
		},
	}, nil
}

func (f *Fetcher) URL(id domain.DocID) string {
	return strings.ReplaceAll(f.template, idPlaceholder, id.String())
}

func (f *Fetcher) Fetch(ctx context.Context, id domain.DocID) ([]byte, error) {
	url := f.URL(id)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	if f.userAgent != "" {
		req.Header.Set("User-Agent", f.userAgent)
	}

	resp, err := f.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request for book ID %d failed: %w", id, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		io.Copy(io.Discard, resp.Body)
		return nil, &domain.FetchError{ID: id, URL: url, StatusCode: resp.StatusCode}
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response for book ID %d: %w", id, err)
	}
	return body, nil
}
