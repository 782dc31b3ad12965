// Package config defines service configuration structures and loading hooks.
//
// Conventions:
// - Provide New() to build a Config with defaults.
// - All future functions must accept context.Context as the first parameter.
// - External errors must be wrapped via this package's error helpers.
package config

// Config contains process configuration. Extend as needed.
type Config struct {
	// LogLevel controls verbosity: debug, info, warn, error.
	LogLevel string `koanf:"log_level"`

	// Addr configures the HTTP listen address, e.g. ":8090".
	Addr string `koanf:"addr"`

	// DataDir is the directory holding the three CSV exports.
	DataDir string `koanf:"data_dir"`

	// DataBaseURL, when set, fetches the exports from a static file
	// server instead of DataDir.
	DataBaseURL string `koanf:"data_base_url"`

	// AgentsFile, AgenciesFile and InvestmentsFile override the
	// default export file names.
	AgentsFile      string `koanf:"agents_file"`
	AgenciesFile    string `koanf:"agencies_file"`
	InvestmentsFile string `koanf:"investments_file"`

	// RefreshIntervalSec re-loads the dataset periodically; 0 disables
	// refresh, leaving the boot-time snapshot in place.
	RefreshIntervalSec int `koanf:"refresh_interval_sec"`

	// MaxLeaderboardLimit caps GET /leaderboard?limit.
	MaxLeaderboardLimit int `koanf:"max_leaderboard_limit"`

	// HeadshotPath is the static asset path player headshot URLs are
	// built against.
	HeadshotPath string `koanf:"headshot_path"`
}

// New creates a Config with defaults.
func New() *Config {
	return &Config{
		LogLevel:            "info",
		Addr:                ":8090",
		DataDir:             "data",
		RefreshIntervalSec:  0,
		MaxLeaderboardLimit: 90,
		HeadshotPath:        "/headshots_cache/",
	}
}
