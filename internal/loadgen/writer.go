package loadgen

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"agentdash/internal/domain/model"
)

// File permission constants.
const (
	outputDirPermission  = 0750
	outputFilePermission = 0600
)

// Header rows mirror the upstream pivot exports, quirks included: a
// couple of columns ship space-padded, and the sheets disagree on
// which ones.
var agentsHeader = []string{
	"Agent Name", " Agency Name ", "Dollar Index", "Won%", "CT",
	"Total Contract Value", "Total Player Value",
	"Dollars Captured Above/ Below Value", "Market Value Capture %",
	"Discount Rate",
}

var agenciesHeader = []string{
	" Agency Name ", "Dollar Index", "Won%", "CT",
	"Total Contract Value", "Total Player Value",
	"Dollars Captured Above/ Below Value", "Market Value Capture %",
	"Discount Rate", "Index R", "WinR", "CTR", "TCV R", "TPV R",
}

// writeAgentsCSV renders the agents export, closing with the pivot
// footer rows real dumps carry.
func writeAgentsCSV(path string, agents []agentSeed) error {
	rows := make([][]string, 0, len(agents)+2)
	for _, a := range agents {
		rows = append(rows, []string{
			a.Name,
			a.Agency,
			fmt.Sprintf("$%.2f", a.DollarIndex),
			percent(a.WinRate),
			strconv.Itoa(a.Contracts),
			currency(a.ContractValue),
			currency(a.PlayerValue),
			currency(a.Captured),
			percent(a.Captured / a.ContractValue),
			percent(0.05),
		})
	}
	rows = append(rows,
		[]string{"(blank)", "", "", "", "", "", "", "", "", ""},
		[]string{"Grand Total", "", "", "", "", "", "", "", "", ""},
	)
	return writeCSV(path, agentsHeader, rows)
}

// writeAgenciesCSV renders the agencies export. Each agency row
// repeats per member agent, the way the pivot dump flattens groups;
// only the first row per agency carries its aggregate numbers.
func writeAgenciesCSV(path string, agents []agentSeed) error {
	indexRank := rankBy(agents, func(a agentSeed) float64 { return a.DollarIndex })

	seen := make(map[string]bool)
	rows := make([][]string, 0, len(agents)+2)
	for i, a := range agents {
		if seen[a.Agency] {
			// Continuation rows: agency name repeats, numbers blank out.
			rows = append(rows, []string{a.Agency, "", "", "", "", "", "", "", "", "", "", "", "", ""})
			continue
		}
		seen[a.Agency] = true
		rows = append(rows, []string{
			a.Agency,
			fmt.Sprintf("$%.2f", a.DollarIndex),
			percent(a.WinRate),
			strconv.Itoa(a.Contracts),
			currency(a.ContractValue),
			currency(a.PlayerValue),
			currency(a.Captured),
			percent(a.Captured / a.ContractValue),
			percent(0.05),
			strconv.Itoa(indexRank[a.Name]),
			strconv.Itoa(i + 1),
			strconv.Itoa(i + 1),
			strconv.Itoa(i + 1),
			strconv.Itoa(i + 1),
		})
	}
	rows = append(rows,
		[]string{"(blank)", "", "", "", "", "", "", "", "", "", "", "", "", ""},
		[]string{"Grand Total", "", "", "", "", "", "", "", "", "", "", "", "", ""},
	)
	return writeCSV(path, agenciesHeader, rows)
}

// writePlayersCSV renders the player-investment export with the six
// fixed season cost/contribution column pairs.
func writePlayersCSV(path string, players []playerSeed) error {
	header := []string{"Combined Names", "Agent Name", " Agency Name "}
	for _, s := range model.Seasons() {
		header = append(header, "COST "+s.Suffix, "PC "+s.Suffix)
	}
	header = append(header, "Total Cost", "Total PC", "Dollars Captured Above/ Below Value", "Value Capture %")

	rows := make([][]string, 0, len(players)+1)
	for _, p := range players {
		row := []string{p.Name, p.Agent, p.Agency}
		var totalCost, totalContrib float64
		for s := 0; s < 6; s++ {
			row = append(row, currency(p.Costs[s]), currency(p.Contrib[s]))
			totalCost += p.Costs[s]
			totalContrib += p.Contrib[s]
		}
		captured := totalContrib - totalCost
		capture := "0.0%"
		if totalContrib > 0 {
			capture = percent(totalCost / totalContrib)
		}
		row = append(row, currency(totalCost), currency(totalContrib), currency(captured), capture)
		rows = append(rows, row)
	}
	rows = append(rows, append([]string{"Grand Total"}, make([]string, len(header)-1)...))
	return writeCSV(path, header, rows)
}

func writeCSV(path string, header []string, rows [][]string) error {
	if err := os.MkdirAll(filepath.Dir(path), outputDirPermission); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, outputFilePermission)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write(header); err != nil {
		return fmt.Errorf("failed to write header: %w", err)
	}
	for _, row := range rows {
		if err := w.Write(row); err != nil {
			return fmt.Errorf("failed to write row: %w", err)
		}
	}
	w.Flush()
	return w.Error()
}
