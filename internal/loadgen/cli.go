package loadgen

import (
	"context"
	"fmt"
	"io"
	"log"
	"os"
	"time"

	"agentdash/pkg/logger"
)

// File permission constants.
const (
	logFilePermission = 0600
)

// SetupLogging configures logging to both console and file.
// If logFile is empty, a timestamped filename is generated.
func SetupLogging(logFile string) error {
	if err := logger.Init(); err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}

	if logFile == "" {
		timestamp := time.Now().Format("20060102_150405")
		logFile = "seed_log_" + timestamp + ".log"
	}

	file, err := os.OpenFile(logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, logFilePermission)
	if err != nil {
		return fmt.Errorf("failed to create log file: %w", err)
	}

	multiWriter := io.MultiWriter(os.Stdout, file)
	log.SetOutput(multiWriter)
	log.SetFlags(log.LstdFlags | log.Lmicroseconds)
	logger.Get().Info(context.Background(), "logging to file", logger.String("logFile", logFile))
	return nil
}

// ShowHelp prints usage information for the seed-data tool.
func ShowHelp() {
	os.Stdout.WriteString(`Agentdash Seed Data Tool
========================

Generates the three CSV exports the dashboard ingests (agents tab,
agencies tab, player investment by agent), with the same formatting
quirks as the upstream pivot dumps. Optionally verifies a running
instance against the generated data.

Usage:
  go run cmd/seed-data/main.go [options]

Options:
  -out string
        Output directory for the CSV exports (default "data")
  -agents int
        Number of agents to generate (default 90)
  -players int
        Number of player investment rows to generate (default 450)
  -seed int
        Random seed for reproducible fixtures (default 1)
  -url string
        Base URL of a running service to verify against (default: skip verification)
  -timeout duration
        HTTP request timeout for verification (default 30s)
  -log string
        Log file for run output (default: seed_log_TIMESTAMP.log)
  -verbose
        Enable verbose logging
  -help
        Show this help message

Examples:
  # Write fixtures into ./data
  go run cmd/seed-data/main.go

  # Larger dataset, then verify a local instance
  go run cmd/seed-data/main.go -agents 200 -players 1200 -url http://localhost:8090
`)
}
