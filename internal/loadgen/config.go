package loadgen

import "time"

// Config holds configuration for a seed-data run.
type Config struct {
	OutputDir  string        // Directory the CSV exports are written to
	NumAgents  int           // Number of agents to generate
	NumPlayers int           // Number of player investment rows to generate
	Seed       int64         // Random seed for reproducible fixtures
	BaseURL    string        // Base URL of a running service to verify against (empty skips verification)
	Timeout    time.Duration // HTTP request timeout for verification
	LogFile    string        // Log file for run output
	Verbose    bool          // Enable verbose logging
}

// Stats holds seed-data run statistics.
type Stats struct {
	AgentsGenerated  int
	AgencyRows       int
	PlayerRows       int
	FilesWritten     int
	ChecksPerformed  int
	ChecksFailed     int
	StartTime        time.Time
	EndTime          time.Time
	Duration         time.Duration
}
