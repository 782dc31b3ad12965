package loadgen

import (
	"context"
	"fmt"
	"log"
	"path/filepath"
	"time"

	"github.com/google/uuid"

	"agentdash/internal/adapters/source"
	"agentdash/pkg/logger"
)

// Run executes one complete seed-data pass: generate the three CSV
// exports, write them to the output directory and, when a base URL is
// configured, verify a running instance serves them back consistently.
func Run(ctx context.Context, config *Config) error {
	stats := &Stats{StartTime: time.Now()}
	runID := uuid.New().String()

	logger.Get().Info(ctx, "starting seed-data run",
		logger.String("runID", runID),
		logger.String("outputDir", config.OutputDir),
		logger.Int("agents", config.NumAgents),
		logger.Int("players", config.NumPlayers),
		logger.Any("seed", config.Seed),
		logger.String("baseURL", config.BaseURL))

	// Step 1: Generate the dataset.
	gen := newGenerator(config.Seed)
	agents := gen.agents(config.NumAgents)
	players := gen.players(config.NumPlayers, agents)
	stats.AgentsGenerated = len(agents)
	stats.PlayerRows = len(players)

	// Step 2: Write the three exports.
	if err := writeAgentsCSV(filepath.Join(config.OutputDir, source.DefaultAgentsFile), agents); err != nil {
		return fmt.Errorf("failed to write agents export: %w", err)
	}
	stats.FilesWritten++

	if err := writeAgenciesCSV(filepath.Join(config.OutputDir, source.DefaultAgenciesFile), agents); err != nil {
		return fmt.Errorf("failed to write agencies export: %w", err)
	}
	stats.FilesWritten++
	stats.AgencyRows = len(agents)

	if err := writePlayersCSV(filepath.Join(config.OutputDir, source.DefaultInvestmentsFile), players); err != nil {
		return fmt.Errorf("failed to write player-investment export: %w", err)
	}
	stats.FilesWritten++

	// Step 3: Verify a running service, when one is configured.
	if config.BaseURL != "" {
		if err := verifyService(ctx, config, agents, stats); err != nil {
			return fmt.Errorf("service verification failed: %w", err)
		}
	}

	stats.EndTime = time.Now()
	stats.Duration = stats.EndTime.Sub(stats.StartTime)
	displayFinalStats(stats)

	logger.Get().Info(ctx, "seed-data run completed", logger.String("runID", runID))
	return nil
}

// displayFinalStats prints the run summary.
func displayFinalStats(stats *Stats) {
	log.Println("=== Seed Data Run Summary ===")
	log.Printf("Agents generated:  %d", stats.AgentsGenerated)
	log.Printf("Agency rows:       %d", stats.AgencyRows)
	log.Printf("Player rows:       %d", stats.PlayerRows)
	log.Printf("Files written:     %d", stats.FilesWritten)
	if stats.ChecksPerformed > 0 {
		log.Printf("Checks performed:  %d", stats.ChecksPerformed)
		log.Printf("Checks failed:     %d", stats.ChecksFailed)
	}
	log.Printf("Duration:          %v", stats.Duration)
}
