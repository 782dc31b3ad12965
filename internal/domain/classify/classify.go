// Package classify buckets agents into performance tiers per metric,
// matching the dashboard's classification view.
package classify

import "agentdash/internal/domain/model"

// Metric selects which agent field a classification applies to.
type Metric string

// Classifiable metrics.
const (
	MetricDollarIndex        Metric = "dollar-index"
	MetricWinRate            Metric = "win-percentage"
	MetricContractsTracked   Metric = "contracts-tracked"
	MetricTotalContractValue Metric = "total-contract-value"
)

// Tier is one classification band. Min is inclusive, Max exclusive;
// a zero bound means unbounded on that side.
type Tier struct {
	Name string  `json:"name"`
	Min  float64 `json:"min,omitempty"`
	Max  float64 `json:"max,omitempty"`
}

// Tier names, best to worst.
const (
	TierElite        = "Elite"
	TierGreat        = "Great"
	TierGood         = "Good"
	TierAverage      = "Average"
	TierBelowAverage = "Below Average"
)

var thresholds = map[Metric][]Tier{
	MetricDollarIndex: {
		{Name: TierElite, Min: 1.5},
		{Name: TierGreat, Min: 1.2, Max: 1.5},
		{Name: TierGood, Min: 1.0, Max: 1.2},
		{Name: TierAverage, Min: 0.8, Max: 1.0},
		{Name: TierBelowAverage, Max: 0.8},
	},
	MetricWinRate: {
		{Name: TierElite, Min: 0.6},
		{Name: TierGreat, Min: 0.55, Max: 0.6},
		{Name: TierGood, Min: 0.5, Max: 0.55},
		{Name: TierAverage, Min: 0.45, Max: 0.5},
		{Name: TierBelowAverage, Max: 0.45},
	},
	MetricContractsTracked: {
		{Name: TierElite, Min: 30},
		{Name: TierGreat, Min: 20, Max: 30},
		{Name: TierGood, Min: 10, Max: 20},
		{Name: TierAverage, Min: 5, Max: 10},
		{Name: TierBelowAverage, Max: 5},
	},
	MetricTotalContractValue: {
		{Name: TierElite, Min: 100_000_000},
		{Name: TierGreat, Min: 50_000_000, Max: 100_000_000},
		{Name: TierGood, Min: 25_000_000, Max: 50_000_000},
		{Name: TierAverage, Min: 10_000_000, Max: 25_000_000},
		{Name: TierBelowAverage, Max: 10_000_000},
	},
}

// Valid reports whether m names a classifiable metric.
func Valid(m Metric) bool {
	_, ok := thresholds[m]
	return ok
}

// Tiers returns the bands for a metric, best first. Unknown metrics
// fall back to dollar index, matching the dashboard's default view.
func Tiers(m Metric) []Tier {
	t, ok := thresholds[m]
	if !ok {
		t = thresholds[MetricDollarIndex]
	}
	out := make([]Tier, len(t))
	copy(out, t)
	return out
}

// value extracts the metric field from an agent.
func value(m Metric, a model.RankedAgent) float64 {
	switch m {
	case MetricWinRate:
		return a.WinRate
	case MetricContractsTracked:
		return float64(a.ContractsTracked)
	case MetricTotalContractValue:
		return a.TotalContractValue
	default:
		return a.DollarIndex
	}
}

// Classify returns the tier a value falls into. Values that fit no
// band land in the last (worst) one.
func Classify(m Metric, v float64) Tier {
	tiers := Tiers(m)
	for _, t := range tiers {
		switch {
		case t.Min != 0 && t.Max != 0:
			if v >= t.Min && v < t.Max {
				return t
			}
		case t.Min != 0:
			if v >= t.Min {
				return t
			}
		case t.Max != 0:
			if v < t.Max {
				return t
			}
		}
	}
	return tiers[len(tiers)-1]
}

// GroupByTier buckets agents into tier-name keyed groups for a metric.
// Every tier is present in the result, possibly empty.
func GroupByTier(m Metric, agents []model.RankedAgent) map[string][]model.RankedAgent {
	groups := make(map[string][]model.RankedAgent, len(thresholds[m]))
	for _, t := range Tiers(m) {
		groups[t.Name] = []model.RankedAgent{}
	}
	for _, a := range agents {
		tier := Classify(m, value(m, a))
		groups[tier.Name] = append(groups[tier.Name], a)
	}
	return groups
}
