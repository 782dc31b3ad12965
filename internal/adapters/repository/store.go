// Package repository defines the dataset store interface and errors.
//
// The store holds one immutable Snapshot of the fully derived dataset.
// Loads replace the snapshot wholesale; nothing is ever updated in
// place, so readers need no locking beyond the swap itself.
package repository

import (
	"context"
	"time"

	"agentdash/internal/domain/model"
)

// Snapshot is one complete, derived dataset. Generation increases with
// every load attempt; LoadedAt is when derivation finished.
type Snapshot struct {
	Agents      []model.AgentRecord
	Ranked      []model.RankedAgent
	Agencies    []model.AgencyRecord
	Investments []model.PlayerInvestmentRecord
	Generation  uint64
	LoadedAt    time.Time
}

// Store provides read access to the current snapshot and the single
// write path that swaps it.
type Store interface {
	// Replace installs a new snapshot. A snapshot whose generation does
	// not exceed the current one is rejected with ErrStaleLoad, which
	// keeps a slow, superseded load from clobbering a fresher one.
	Replace(ctx context.Context, snap Snapshot) error

	// Agents returns the agent records in load order.
	Agents(ctx context.Context) []model.AgentRecord
	// Ranked returns the agents with their derived rank sets.
	Ranked(ctx context.Context) []model.RankedAgent
	// Agencies returns the aggregated agency records.
	Agencies(ctx context.Context) []model.AgencyRecord
	// Investments returns all player investment records.
	Investments(ctx context.Context) []model.PlayerInvestmentRecord

	// RankedByName returns one ranked agent. ErrNotFound if unknown.
	RankedByName(ctx context.Context, agentName string) (model.RankedAgent, error)
	// AgencyByName returns one agency. ErrNotFound if unknown.
	AgencyByName(ctx context.Context, agencyName string) (model.AgencyRecord, error)
	// InvestmentsByAgent returns the records attributed to one agent.
	InvestmentsByAgent(ctx context.Context, agentName string) []model.PlayerInvestmentRecord
	// InvestmentsByAgency returns the records attributed to one agency.
	InvestmentsByAgency(ctx context.Context, agencyName string) []model.PlayerInvestmentRecord

	// Count returns the number of agents in the current snapshot.
	Count(ctx context.Context) int
	// Generation returns the current snapshot's generation, 0 before
	// the first successful load.
	Generation(ctx context.Context) uint64
	// LoadedAt returns when the current snapshot was derived.
	LoadedAt(ctx context.Context) time.Time
}
