package aggregate

import (
	"math"

	"agentdash/internal/domain/model"
)

const vcpScale = 100

// SeasonVCP sums cost and contribution per season across the given
// player-investment records and derives the value-capture percentage
// for each: round(100 * cost / contribution), or nil when the summed
// contribution is zero. NaN contributions are skipped silently.
//
// The function is scope-agnostic and pure: callers pre-filter records
// to one agent or one agency.
func SeasonVCP(records []model.PlayerInvestmentRecord) model.SeasonVCP {
	out := make(model.SeasonVCP, 6)
	for _, season := range model.Seasons() {
		var cost, contribution float64
		for _, rec := range records {
			line, ok := rec.Seasons[season.Label]
			if !ok {
				continue
			}
			cost += line.Cost
			if math.IsNaN(line.Contribution) {
				continue
			}
			contribution += line.Contribution
		}

		if contribution == 0 {
			out[season.Label] = nil
			continue
		}
		vcp := int(math.Round(vcpScale * cost / contribution))
		out[season.Label] = &vcp
	}
	return out
}

// FilterByAgent returns the records attributed to one agent.
func FilterByAgent(records []model.PlayerInvestmentRecord, agentName string) []model.PlayerInvestmentRecord {
	out := make([]model.PlayerInvestmentRecord, 0)
	for _, rec := range records {
		if rec.AgentName == agentName {
			out = append(out, rec)
		}
	}
	return out
}

// FilterByAgency returns the records attributed to one agency.
func FilterByAgency(records []model.PlayerInvestmentRecord, agencyName string) []model.PlayerInvestmentRecord {
	out := make([]model.PlayerInvestmentRecord, 0)
	for _, rec := range records {
		if rec.AgencyName == agencyName {
			out = append(out, rec)
		}
	}
	return out
}
