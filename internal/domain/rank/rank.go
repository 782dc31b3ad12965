// Package rank derives cross-sectional agent rankings.
//
// Five metrics are ranked independently: dollar index, win rate,
// contracts tracked, total contract value and total player value. Each
// ranking is a stable descending sort of the full agent population, so
// ties keep their original relative order and every metric's ranks are
// a permutation of 1..n. Ranks are always recomputed wholesale; there
// is no partial update path.
package rank

import (
	"sort"

	"agentdash/internal/domain/model"
)

// Compute attaches the five per-metric ranks to every agent. The input
// slice is not modified and the result preserves its order.
func Compute(agents []model.AgentRecord) []model.RankedAgent {
	ranked := make([]model.RankedAgent, len(agents))
	index := make(map[string]*model.RankedAgent, len(agents))
	for i, a := range agents {
		ranked[i] = model.RankedAgent{AgentRecord: a}
		index[a.AgentName] = &ranked[i]
	}

	assign := func(key func(model.AgentRecord) float64, set func(*model.RankedAgent, int)) {
		order := make([]model.AgentRecord, len(agents))
		copy(order, agents)
		sort.SliceStable(order, func(i, j int) bool {
			return key(order[i]) > key(order[j])
		})
		for pos, a := range order {
			if ra, ok := index[a.AgentName]; ok {
				set(ra, pos+1)
			}
		}
	}

	assign(func(a model.AgentRecord) float64 { return a.DollarIndex },
		func(ra *model.RankedAgent, r int) { ra.IndexRank = r })
	assign(func(a model.AgentRecord) float64 { return a.WinRate },
		func(ra *model.RankedAgent, r int) { ra.WinRateRank = r })
	assign(func(a model.AgentRecord) float64 { return float64(a.ContractsTracked) },
		func(ra *model.RankedAgent, r int) { ra.ContractRank = r })
	assign(func(a model.AgentRecord) float64 { return a.TotalContractValue },
		func(ra *model.RankedAgent, r int) { ra.ContractValueRank = r })
	assign(func(a model.AgentRecord) float64 { return a.TotalPlayerValue },
		func(ra *model.RankedAgent, r int) { ra.PlayerValueRank = r })

	return ranked
}
