// Package record maps raw CSV rows onto typed domain records.
//
// The exports this service ingests are pivot-table dumps with unstable
// header spelling: some columns carry surrounding spaces in one export
// and none in another. Headers are normalized (trimmed) once at parse
// time; the lookup here still falls back to the space-padded variant
// so rows built from untrimmed sources map identically.
package record

import (
	"agentdash/internal/domain/model"
	"agentdash/internal/domain/parse"
)

// Row is one CSV row keyed by column header.
type Row map[string]string

// Column headers shared by the agents and agencies exports.
const (
	colAgentName       = "Agent Name"
	colAgencyName      = "Agency Name"
	colDollarIndex     = "Dollar Index"
	colWonPct          = "Won%"
	colContractsTrack  = "CT"
	colTotalContract   = "Total Contract Value"
	colTotalPlayer     = "Total Player Value"
	colDollarsCaptured = "Dollars Captured Above/ Below Value"
	colMarketCapture   = "Market Value Capture %"
	colDiscountRate    = "Discount Rate"
)

// Rank columns present only in the agencies export.
const (
	colIndexRank         = "Index R"
	colWinRateRank       = "WinR"
	colContractRank      = "CTR"
	colContractValueRank = "TCV R"
	colPlayerValueRank   = "TPV R"
)

// Columns specific to the player-investment export.
const (
	colCombinedNames = "Combined Names"
	colTotalCost     = "Total Cost"
	colTotalPC       = "Total PC"
	colValueCapture  = "Value Capture %"
)

// get returns the cell for a header, tolerating the space-padded
// variant some exports use.
func (r Row) get(header string) string {
	if v, ok := r[header]; ok {
		return v
	}
	return r[" "+header+" "]
}

// Key returns the row's key cell for the given key column.
func (r Row) Key(header string) string {
	return r.get(header)
}

// ValidAgentRow reports whether the row names a real agent.
func ValidAgentRow(r Row) bool {
	return parse.ValidKey(r.get(colAgentName))
}

// ValidAgencyRow reports whether the row names a real agency.
func ValidAgencyRow(r Row) bool {
	return parse.ValidKey(r.get(colAgencyName))
}

// ValidPlayerRow reports whether the row names a real player.
func ValidPlayerRow(r Row) bool {
	return parse.ValidKey(r.get(colCombinedNames))
}

// MapAgentRow converts one agents-export row into an AgentRecord.
// Callers filter with ValidAgentRow first; mapping itself never fails.
func MapAgentRow(r Row) model.AgentRecord {
	return model.AgentRecord{
		AgentName:          r.get(colAgentName),
		AgencyName:         r.get(colAgencyName),
		DollarIndex:        parse.Numeric(r.get(colDollarIndex)),
		WinRate:            parse.Percentage(r.get(colWonPct)),
		ContractsTracked:   int(parse.Numeric(r.get(colContractsTrack))),
		TotalContractValue: parse.Numeric(r.get(colTotalContract)),
		TotalPlayerValue:   parse.Numeric(r.get(colTotalPlayer)),
		DollarsCaptured:    parse.Numeric(r.get(colDollarsCaptured)),
		MarketValueCapture: r.get(colMarketCapture),
		DiscountRate:       r.get(colDiscountRate),
	}
}

// MapAgencyRow converts one agencies-export row into an AgencyRecord.
// Unlike agent ranks, agency ranks ship inside the export and are
// parsed here rather than derived.
func MapAgencyRow(r Row) model.AgencyRecord {
	return model.AgencyRecord{
		AgencyName:         r.get(colAgencyName),
		DollarIndex:        parse.Numeric(r.get(colDollarIndex)),
		WinRate:            parse.Percentage(r.get(colWonPct)),
		ContractsTracked:   int(parse.Numeric(r.get(colContractsTrack))),
		TotalContractValue: parse.Numeric(r.get(colTotalContract)),
		TotalPlayerValue:   parse.Numeric(r.get(colTotalPlayer)),
		DollarsCaptured:    parse.Numeric(r.get(colDollarsCaptured)),
		MarketValueCapture: r.get(colMarketCapture),
		DiscountRate:       r.get(colDiscountRate),
		RankSet: model.RankSet{
			IndexRank:         int(parse.Numeric(r.get(colIndexRank))),
			WinRateRank:       int(parse.Numeric(r.get(colWinRateRank))),
			ContractRank:      int(parse.Numeric(r.get(colContractRank))),
			ContractValueRank: int(parse.Numeric(r.get(colContractValueRank))),
			PlayerValueRank:   int(parse.Numeric(r.get(colPlayerValueRank))),
		},
	}
}

// MapPlayerInvestmentRow converts one player-investment row, reading
// the six fixed season cost/contribution column pairs.
func MapPlayerInvestmentRow(r Row) model.PlayerInvestmentRecord {
	rec := model.PlayerInvestmentRecord{
		PlayerName:        r.get(colCombinedNames),
		AgentName:         r.get(colAgentName),
		AgencyName:        r.get(colAgencyName),
		TotalCost:         parse.Numeric(r.get(colTotalCost)),
		TotalContribution: parse.Numeric(r.get(colTotalPC)),
		Seasons:           make(map[string]model.SeasonLine, 6),
		DollarsCaptured:   parse.Numeric(r.get(colDollarsCaptured)),
		ValueCapture:      r.get(colValueCapture),
	}
	for _, s := range model.Seasons() {
		rec.Seasons[s.Label] = model.SeasonLine{
			Cost:         parse.Numeric(r.get("COST " + s.Suffix)),
			Contribution: parse.Numeric(r.get("PC " + s.Suffix)),
		}
	}
	return rec
}

// MapAgentRows filters and maps a whole agents export.
func MapAgentRows(rows []Row) []model.AgentRecord {
	out := make([]model.AgentRecord, 0, len(rows))
	for _, r := range rows {
		if !ValidAgentRow(r) {
			continue
		}
		out = append(out, MapAgentRow(r))
	}
	return out
}

// MapPlayerInvestmentRows filters and maps a whole player-investment export.
func MapPlayerInvestmentRows(rows []Row) []model.PlayerInvestmentRecord {
	out := make([]model.PlayerInvestmentRecord, 0, len(rows))
	for _, r := range rows {
		if !ValidPlayerRow(r) {
			continue
		}
		out = append(out, MapPlayerInvestmentRow(r))
	}
	return out
}
