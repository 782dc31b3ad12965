// Package aggregate reduces per-row export data into the per-agency
// and per-season views the dashboard renders.
package aggregate

import (
	"agentdash/internal/domain/model"
	"agentdash/internal/domain/record"
)

// Agencies reduces the agencies export to one record per distinct
// valid agency name.
//
// Population policy: rows are scanned in file order and an agency's
// fields are taken wholesale from the first row whose dollar index
// parsed nonzero; every later row for that agency is ignored. An
// agency whose rows all carry a zero dollar index stays zero-valued,
// indistinguishable from unpopulated. This mirrors the upstream
// worksheet exactly; whether multi-row agencies should instead be
// summed is pending product confirmation.
//
// Output order is unspecified beyond being deterministic for equal
// input; consumers sort for display.
func Agencies(rows []record.Row) []model.AgencyRecord {
	valid := make([]record.Row, 0, len(rows))
	for _, r := range rows {
		if record.ValidAgencyRow(r) {
			valid = append(valid, r)
		}
	}

	byName := make(map[string]*model.AgencyRecord)
	names := make([]string, 0, len(valid))
	for _, r := range valid {
		name := r.Key("Agency Name")
		if _, ok := byName[name]; ok {
			continue
		}
		byName[name] = &model.AgencyRecord{AgencyName: name}
		names = append(names, name)
	}

	for _, r := range valid {
		agency := byName[r.Key("Agency Name")]
		// First populated row wins: keep overwriting until a row parses
		// with a nonzero dollar index, then ignore the rest.
		if agency.DollarIndex != 0 {
			continue
		}
		*agency = record.MapAgencyRow(r)
	}

	out := make([]model.AgencyRecord, 0, len(names))
	for _, name := range names {
		out = append(out, *byName[name])
	}
	return out
}
