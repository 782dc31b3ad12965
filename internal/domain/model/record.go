// Package model contains domain records passed between layers.
package model

// AgentRecord is one row of the agents export, cleaned and typed.
// Numeric fields default to zero when the source cell was empty, a
// sentinel ("(blank)", "Grand Total"), or unparseable.
type AgentRecord struct {
	AgentName          string  `json:"agent_name"`
	AgencyName         string  `json:"agency_name"`
	DollarIndex        float64 `json:"dollar_index"`
	WinRate            float64 `json:"win_rate"` // fraction, e.g. 0.55
	ContractsTracked   int     `json:"contracts_tracked"`
	TotalContractValue float64 `json:"total_contract_value"`
	TotalPlayerValue   float64 `json:"total_player_value"`
	DollarsCaptured    float64 `json:"dollars_captured"` // signed, above/below value
	MarketValueCapture string  `json:"market_value_capture"`
	DiscountRate       string  `json:"discount_rate"`
}

// RankSet holds the five per-metric ranks for one agent or agency.
// Ranks are dense and 1-based; each metric is ranked independently by
// a stable descending sort, so ties keep their original order.
type RankSet struct {
	IndexRank         int `json:"index_rank"`
	WinRateRank       int `json:"win_rate_rank"`
	ContractRank      int `json:"contract_rank"`
	ContractValueRank int `json:"contract_value_rank"`
	PlayerValueRank   int `json:"player_value_rank"`
}

// RankedAgent pairs an agent record with its derived ranks.
type RankedAgent struct {
	AgentRecord
	RankSet
}

// AgencyRecord is the aggregate of all source rows sharing one agency
// name. Numeric fields come from the first source row whose dollar
// index parsed nonzero; rank fields are read from the export itself
// rather than derived.
type AgencyRecord struct {
	AgencyName         string  `json:"agency_name"`
	DollarIndex        float64 `json:"dollar_index"`
	WinRate            float64 `json:"win_rate"`
	ContractsTracked   int     `json:"contracts_tracked"`
	TotalContractValue float64 `json:"total_contract_value"`
	TotalPlayerValue   float64 `json:"total_player_value"`
	DollarsCaptured    float64 `json:"dollars_captured"`
	MarketValueCapture string  `json:"market_value_capture"`
	DiscountRate       string  `json:"discount_rate"`
	RankSet
}

// SeasonLine is the cost/contribution pair for one player in one season.
type SeasonLine struct {
	Cost         float64 `json:"cost"`
	Contribution float64 `json:"contribution"`
}

// PlayerInvestmentRecord is one row of the player-investment-by-agent
// export, keyed by player name.
type PlayerInvestmentRecord struct {
	PlayerName        string                `json:"player_name"`
	AgentName         string                `json:"agent_name"`
	AgencyName        string                `json:"agency_name"`
	TotalCost         float64               `json:"total_cost"`
	TotalContribution float64               `json:"total_contribution"`
	Seasons           map[string]SeasonLine `json:"seasons"` // keyed by Seasons() labels
	DollarsCaptured   float64               `json:"dollars_captured"`
	ValueCapture      string                `json:"value_capture"`
}

// SeasonVCP maps a season label to the value-capture percentage for
// that season, or nil when the summed contribution was zero.
type SeasonVCP map[string]*int
