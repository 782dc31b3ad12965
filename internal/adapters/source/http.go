package source

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"agentdash/internal/domain/record"
)

const defaultHTTPTimeout = 30 * time.Second

// HTTPSource fetches the exports from a static file server by fixed
// relative paths. There are no retries and no distinction between
// transient and permanent failures; callers decide whether to reload.
type HTTPSource struct {
	baseURL string
	client  *http.Client
	paths   map[string]string
}

// HTTPOption applies a configuration option to the HTTPSource.
type HTTPOption func(*HTTPSource)

// WithHTTPClient overrides the HTTP client.
func WithHTTPClient(c *http.Client) HTTPOption {
	return func(s *HTTPSource) {
		if c != nil {
			s.client = c
		}
	}
}

// WithPath overrides the relative path for one dataset.
func WithPath(dataset, path string) HTTPOption {
	return func(s *HTTPSource) {
		if dataset != "" && path != "" {
			s.paths[dataset] = path
		}
	}
}

// NewHTTPSource creates an HTTPSource against baseURL.
func NewHTTPSource(baseURL string, opts ...HTTPOption) *HTTPSource {
	s := &HTTPSource{
		baseURL: baseURL,
		client:  &http.Client{Timeout: defaultHTTPTimeout},
		paths: map[string]string{
			DatasetAgents:      DefaultAgentsFile,
			DatasetAgencies:    DefaultAgenciesFile,
			DatasetInvestments: DefaultInvestmentsFile,
		},
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Fetch downloads and parses one dataset.
func (s *HTTPSource) Fetch(ctx context.Context, dataset string) ([]record.Row, error) {
	path, ok := s.paths[dataset]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownDataset, dataset)
	}

	u, err := url.JoinPath(s.baseURL, path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrFetch, err)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrFetch, err)
	}

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrFetch, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: %s returned %s", ErrFetch, path, resp.Status)
	}
	return readRows(resp.Body)
}
