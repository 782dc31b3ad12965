package loadgen

import (
	"fmt"
	"math/rand"
	"sort"
	"strconv"
	"strings"
)

// Performer archetypes. Each agent is assigned one so the generated
// dataset has a realistic spread instead of uniform noise.
const (
	caseElitePerformer = iota
	caseHighPerformer
	caseAveragePerformer
	caseLowPerformer
	performerCases
)

// Metric generation ranges per archetype.
const (
	eliteIndexMin   = 1.4
	eliteIndexRange = 0.6
	highIndexMin    = 1.1
	highIndexRange  = 0.3
	avgIndexMin     = 0.8
	avgIndexRange   = 0.3
	lowIndexMin     = 0.3
	lowIndexRange   = 0.5

	contractValueMin   = 2_000_000
	contractValueRange = 180_000_000
	seasonCostMin      = 250_000
	seasonCostRange    = 8_000_000
)

var firstNames = []string{
	"Marcus", "Elena", "Dmitri", "Sofia", "Jorge", "Amara", "Henrik",
	"Luca", "Priya", "Tomas", "Nadia", "Kwame", "Ingrid", "Rafael",
	"Yuki", "Oscar", "Leila", "Viktor", "Carmen", "Andre",
}

var lastNames = []string{
	"Silva", "Petrov", "Okafor", "Lindqvist", "Moreau", "Tanaka",
	"Vargas", "Kovac", "Eriksen", "Mbeki", "Rossi", "Haddad",
	"Novak", "Fernandez", "Larsen", "Diallo", "Weber", "Costa",
}

var agencyStems = []string{
	"Apex", "Meridian", "Vanguard", "Summit", "Pinnacle", "Atlas",
	"Horizon", "Keystone", "Northgate", "Sterling",
}

var agencySuffixes = []string{
	"Sports Group", "Talent Partners", "Management", "Athlete Advisory",
	"Representation",
}

// agentSeed is the numeric truth behind one generated agent. The CSV
// writer renders these values through the messy export formatting.
type agentSeed struct {
	Name          string
	Agency        string
	DollarIndex   float64
	WinRate       float64 // fraction, rendered as "NN.N%"
	Contracts     int
	ContractValue float64
	PlayerValue   float64
	Captured      float64 // may be negative
}

// playerSeed is one generated player-investment row.
type playerSeed struct {
	Name    string
	Agent   string
	Agency  string
	Costs   [6]float64
	Contrib [6]float64
}

// generator produces reproducible fixture data from a seeded PRNG.
type generator struct {
	rng *rand.Rand
}

func newGenerator(seed int64) *generator {
	return &generator{rng: rand.New(rand.NewSource(seed))}
}

// agents generates n agents spread over a pool of agencies. Names are
// unique; a numeric suffix disambiguates once the pools are exhausted.
func (g *generator) agents(n int) []agentSeed {
	agencies := g.agencyPool(max(n/4, 1))
	seen := make(map[string]bool, n)
	out := make([]agentSeed, 0, n)
	for len(out) < n {
		name := firstNames[g.rng.Intn(len(firstNames))] + " " + lastNames[g.rng.Intn(len(lastNames))]
		if seen[name] {
			name += " " + strconv.Itoa(len(out))
		}
		seen[name] = true
		out = append(out, g.agent(name, agencies[g.rng.Intn(len(agencies))]))
	}
	return out
}

func (g *generator) agent(name, agency string) agentSeed {
	var index float64
	switch g.rng.Intn(performerCases) {
	case caseElitePerformer:
		index = eliteIndexMin + g.rng.Float64()*eliteIndexRange
	case caseHighPerformer:
		index = highIndexMin + g.rng.Float64()*highIndexRange
	case caseAveragePerformer:
		index = avgIndexMin + g.rng.Float64()*avgIndexRange
	default:
		index = lowIndexMin + g.rng.Float64()*lowIndexRange
	}

	contractValue := contractValueMin + g.rng.Float64()*contractValueRange
	playerValue := contractValue * (0.7 + g.rng.Float64()*0.6)
	return agentSeed{
		Name:          name,
		Agency:        agency,
		DollarIndex:   index,
		WinRate:       0.2 + g.rng.Float64()*0.7,
		Contracts:     1 + g.rng.Intn(40),
		ContractValue: contractValue,
		PlayerValue:   playerValue,
		Captured:      playerValue - contractValue,
	}
}

func (g *generator) agencyPool(n int) []string {
	seen := make(map[string]bool, n)
	out := make([]string, 0, n)
	for len(out) < n {
		name := agencyStems[g.rng.Intn(len(agencyStems))] + " " + agencySuffixes[g.rng.Intn(len(agencySuffixes))]
		if seen[name] {
			name = fmt.Sprintf("%s %d", name, len(out))
		}
		seen[name] = true
		out = append(out, name)
	}
	return out
}

// players generates n player-investment rows attributed to the given
// agents. Early seasons are left at zero for a share of players so the
// fixtures exercise the null capture-percentage path.
func (g *generator) players(n int, agents []agentSeed) []playerSeed {
	out := make([]playerSeed, 0, n)
	for i := 0; i < n; i++ {
		agent := agents[g.rng.Intn(len(agents))]
		p := playerSeed{
			Name:   firstNames[g.rng.Intn(len(firstNames))] + " " + lastNames[g.rng.Intn(len(lastNames))] + " " + strconv.Itoa(i),
			Agent:  agent.Name,
			Agency: agent.Agency,
		}
		firstSeason := g.rng.Intn(4)
		for s := firstSeason; s < 6; s++ {
			p.Costs[s] = seasonCostMin + g.rng.Float64()*seasonCostRange
			p.Contrib[s] = p.Costs[s] * (0.5 + g.rng.Float64())
		}
		out = append(out, p)
	}
	return out
}

// rankBy returns 1-based positions for agents ordered descending by key.
func rankBy(agents []agentSeed, key func(agentSeed) float64) map[string]int {
	order := make([]int, len(agents))
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(a, b int) bool {
		return key(agents[order[a]]) > key(agents[order[b]])
	})
	ranks := make(map[string]int, len(agents))
	for pos, idx := range order {
		ranks[agents[idx].Name] = pos + 1
	}
	return ranks
}

// currency renders a value the way the upstream export does: dollar
// sign, thousands commas, negatives wrapped in parentheses.
func currency(v float64) string {
	neg := v < 0
	if neg {
		v = -v
	}
	s := groupThousands(strconv.FormatInt(int64(v+0.5), 10))
	if neg {
		return "($" + s + ")"
	}
	return "$" + s
}

func groupThousands(digits string) string {
	var b strings.Builder
	for i, r := range digits {
		if i > 0 && (len(digits)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteRune(r)
	}
	return b.String()
}

func percent(frac float64) string {
	return fmt.Sprintf("%.1f%%", frac*100)
}
