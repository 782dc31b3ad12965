package main

import (
	"context"
	"flag"
	"os"
	"time"

	"agentdash/internal/loadgen"
)

// Default configuration constants.
const (
	defaultNumAgents  = 90
	defaultNumPlayers = 450
	defaultSeed       = 1
	defaultTimeout    = 30 * time.Second
	defaultRunTimeout = 5 * time.Minute
)

func main() {
	var (
		outputDir  = flag.String("out", "data", "Output directory for the CSV exports")
		numAgents  = flag.Int("agents", defaultNumAgents, "Number of agents to generate")
		numPlayers = flag.Int("players", defaultNumPlayers, "Number of player investment rows to generate")
		seed       = flag.Int64("seed", defaultSeed, "Random seed for reproducible fixtures")
		baseURL    = flag.String("url", "", "Base URL of a running service to verify against (empty skips verification)")
		timeout    = flag.Duration("timeout", defaultTimeout, "HTTP request timeout for verification")
		logFile    = flag.String("log", "", "Log file for run output (default: seed_log_TIMESTAMP.log)")
		verbose    = flag.Bool("verbose", false, "Enable verbose logging")
		help       = flag.Bool("help", false, "Show help")
	)
	flag.Parse()

	if *help {
		loadgen.ShowHelp()
		return
	}

	if err := loadgen.SetupLogging(*logFile); err != nil {
		os.Stderr.WriteString("Failed to setup logging: " + err.Error() + "\n")
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), defaultRunTimeout)
	defer cancel()

	config := &loadgen.Config{
		OutputDir:  *outputDir,
		NumAgents:  *numAgents,
		NumPlayers: *numPlayers,
		Seed:       *seed,
		BaseURL:    *baseURL,
		Timeout:    *timeout,
		LogFile:    *logFile,
		Verbose:    *verbose,
	}

	if err := loadgen.Run(ctx, config); err != nil {
		os.Stderr.WriteString("Seed run failed: " + err.Error() + "\n")
		return
	}
}
