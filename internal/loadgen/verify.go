package loadgen

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"strings"
)

// leaderboardEntry mirrors the wire shape of one leaderboard row; only
// the fields the checks read are declared.
type leaderboardEntry struct {
	AgentName   string  `json:"agent_name"`
	DollarIndex float64 `json:"dollar_index"`
}

// verifyService checks a running instance against the generated data:
// health must report ok, the agent list must match what was written,
// and the leaderboard must come back sorted.
func verifyService(ctx context.Context, config *Config, agents []agentSeed, stats *Stats) error {
	client := &http.Client{Timeout: config.Timeout}

	log.Println("verifying service at", config.BaseURL)

	stats.ChecksPerformed++
	if err := checkHealth(ctx, client, config.BaseURL); err != nil {
		stats.ChecksFailed++
		return fmt.Errorf("health check failed: %w", err)
	}
	log.Println("health check passed")

	stats.ChecksPerformed++
	if err := checkAgentCount(ctx, client, config.BaseURL, len(agents)); err != nil {
		stats.ChecksFailed++
		return fmt.Errorf("agent count check failed: %w", err)
	}
	log.Println("agent count check passed")

	stats.ChecksPerformed++
	if err := checkLeaderboardOrder(ctx, client, config.BaseURL); err != nil {
		stats.ChecksFailed++
		return fmt.Errorf("leaderboard order check failed: %w", err)
	}
	log.Println("leaderboard order check passed")

	return nil
}

func checkHealth(ctx context.Context, client *http.Client, baseURL string) error {
	resp, err := get(ctx, client, baseURL, "/healthz")
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("unexpected status %d", resp.StatusCode)
	}
	return nil
}

func checkAgentCount(ctx context.Context, client *http.Client, baseURL string, want int) error {
	resp, err := get(ctx, client, baseURL, "/agents")
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("unexpected status %d", resp.StatusCode)
	}

	var agents []leaderboardEntry
	if err := json.NewDecoder(resp.Body).Decode(&agents); err != nil {
		return fmt.Errorf("failed to decode agent list: %w", err)
	}
	if len(agents) != want {
		return fmt.Errorf("service reports %d agents, generated %d", len(agents), want)
	}
	return nil
}

func checkLeaderboardOrder(ctx context.Context, client *http.Client, baseURL string) error {
	resp, err := get(ctx, client, baseURL, "/leaderboard?metric=dollar-index&limit=25")
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("unexpected status %d", resp.StatusCode)
	}

	var entries []leaderboardEntry
	if err := json.NewDecoder(resp.Body).Decode(&entries); err != nil {
		return fmt.Errorf("failed to decode leaderboard: %w", err)
	}
	if len(entries) == 0 {
		return fmt.Errorf("empty leaderboard")
	}
	for i := 1; i < len(entries); i++ {
		if entries[i].DollarIndex > entries[i-1].DollarIndex {
			return fmt.Errorf("leaderboard out of order at position %d: %s (%.2f) above %s (%.2f)",
				i+1, entries[i-1].AgentName, entries[i-1].DollarIndex,
				entries[i].AgentName, entries[i].DollarIndex)
		}
	}
	return nil
}

func get(ctx context.Context, client *http.Client, baseURL, path string) (*http.Response, error) {
	// Plain concatenation: paths here may carry a query string, which
	// url.JoinPath would escape.
	u := strings.TrimRight(baseURL, "/") + path
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build request: %w", err)
	}
	return client.Do(req)
}
