// Package source fetches and parses the three delimited exports the
// pipeline runs on: the agents tab, the agencies tab and the
// player-investment-by-agent (PIBA) sheet.
package source

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"strings"

	"agentdash/internal/domain/record"
)

// Dataset names understood by every Source implementation.
const (
	DatasetAgents      = "agents"
	DatasetAgencies    = "agencies"
	DatasetInvestments = "piba"
)

// Default file names, matching the upstream export job.
const (
	DefaultAgentsFile      = "Agents Tab.csv"
	DefaultAgenciesFile    = "Agencies Tab.csv"
	DefaultInvestmentsFile = "PIBA.csv"
)

// Source fetches one dataset as header-keyed rows. Implementations do
// not retry: a failed fetch is terminal for that load attempt.
type Source interface {
	Fetch(ctx context.Context, dataset string) ([]record.Row, error)
}

// readRows parses CSV text into rows keyed by trimmed header.
//
// The first record is the header row. Header cells are trimmed once
// here, which collapses the padded/unpadded header variants the
// exports disagree on. Blank lines are skipped, ragged rows are
// tolerated, and cells beyond the header width are dropped.
func readRows(r io.Reader) ([]record.Row, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.LazyQuotes = true

	header, err := cr.Read()
	if err == io.EOF {
		return nil, fmt.Errorf("%w: empty input", ErrParse)
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrParse, err)
	}
	for i := range header {
		header[i] = strings.TrimSpace(header[i])
	}

	var rows []record.Row
	for {
		cells, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrParse, err)
		}
		if isBlank(cells) {
			continue
		}
		row := make(record.Row, len(header))
		for i, h := range header {
			if h == "" {
				continue
			}
			if i < len(cells) {
				row[h] = cells[i]
			} else {
				row[h] = ""
			}
		}
		rows = append(rows, row)
	}
	return rows, nil
}

func isBlank(cells []string) bool {
	for _, c := range cells {
		if strings.TrimSpace(c) != "" {
			return false
		}
	}
	return true
}
