package excel

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"

	"heroscores/internal/errors"
)

// FileSource reads the workbook from the local filesystem
type FileSource struct {
	Path string
}

// Open opens the file; ctx is checked once before touching the disk
func (s *FileSource) Open(ctx context.Context) (io.ReadCloser, error) {
	if err := ctx.Err(); err != nil {
		return nil, errors.ExternalServiceError("scores file", err)
	}
	f, err := os.Open(s.Path)
	if err != nil {
		return nil, errors.ExternalServiceError("scores file", err)
	}
	return f, nil
}

func (s *FileSource) Describe() string {
	return "file:" + s.Path
}

// HTTPSource fetches the workbook with a single GET
type HTTPSource struct {
	URL    string
	Client *http.Client
}

// Open issues the request; any non-2xx status is a fetch failure
func (s *HTTPSource) Open(ctx context.Context) (io.ReadCloser, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.URL, nil)
	if err != nil {
		return nil, errors.ExternalServiceError("scores http", err)
	}

	client := s.Client
	if client == nil {
		client = http.DefaultClient
	}

	resp, err := client.Do(req)
	if err != nil {
		return nil, errors.ExternalServiceError("scores http", err)
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		resp.Body.Close()
		return nil, errors.ExternalServiceError("scores http", fmt.Errorf("GET %s: unexpected status %s", s.URL, resp.Status))
	}
	return resp.Body, nil
}

func (s *HTTPSource) Describe() string {
	return "http:" + s.URL
}
