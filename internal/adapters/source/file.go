package source

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"agentdash/internal/domain/record"
)

// FileSource reads the exports from a local directory.
type FileSource struct {
	dir   string
	files map[string]string
}

// FileOption applies a configuration option to the FileSource.
type FileOption func(*FileSource)

// WithFileName overrides the file name for one dataset.
func WithFileName(dataset, name string) FileOption {
	return func(s *FileSource) {
		if dataset != "" && name != "" {
			s.files[dataset] = name
		}
	}
}

// NewFileSource creates a FileSource rooted at dir with the default
// export file names.
func NewFileSource(dir string, opts ...FileOption) *FileSource {
	s := &FileSource{
		dir: dir,
		files: map[string]string{
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

// Fetch reads and parses one dataset file.
func (s *FileSource) Fetch(ctx context.Context, dataset string) ([]record.Row, error) {
	name, ok := s.files[dataset]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownDataset, dataset)
	}
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrFetch, err)
	}

	f, err := os.Open(filepath.Join(s.dir, name))
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrFetch, err)
	}
	defer f.Close()

	return readRows(f)
}
