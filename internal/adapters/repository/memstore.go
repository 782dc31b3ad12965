package repository

import (
	"context"
	"fmt"
	"sync"
	"time"

	"agentdash/internal/domain/model"
	"agentdash/pkg/metrics"
)

// MemStore is the in-memory Store implementation. The snapshot and its
// name indexes are rebuilt together under the write lock and read
// without copying; Snapshot contents are treated as immutable.
type MemStore struct {
	mu   sync.RWMutex
	snap Snapshot

	byAgent    map[string]model.RankedAgent
	byAgency   map[string]model.AgencyRecord
	invByAgent map[string][]model.PlayerInvestmentRecord
	invByOrg   map[string][]model.PlayerInvestmentRecord
}

// NewMemStore creates an empty store. Context is accepted first to
// satisfy the project-wide convention; it is currently unused.
func NewMemStore(_ context.Context) *MemStore {
	return &MemStore{
		byAgent:    map[string]model.RankedAgent{},
		byAgency:   map[string]model.AgencyRecord{},
		invByAgent: map[string][]model.PlayerInvestmentRecord{},
		invByOrg:   map[string][]model.PlayerInvestmentRecord{},
	}
}

// Replace installs a new snapshot and rebuilds the name indexes.
func (s *MemStore) Replace(_ context.Context, snap Snapshot) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if snap.Generation <= s.snap.Generation {
		return fmt.Errorf("%w: got %d, have %d", ErrStaleLoad, snap.Generation, s.snap.Generation)
	}

	byAgent := make(map[string]model.RankedAgent, len(snap.Ranked))
	for _, ra := range snap.Ranked {
		if _, ok := byAgent[ra.AgentName]; !ok {
			byAgent[ra.AgentName] = ra
		}
	}
	byAgency := make(map[string]model.AgencyRecord, len(snap.Agencies))
	for _, a := range snap.Agencies {
		if _, ok := byAgency[a.AgencyName]; !ok {
			byAgency[a.AgencyName] = a
		}
	}
	invByAgent := make(map[string][]model.PlayerInvestmentRecord)
	invByOrg := make(map[string][]model.PlayerInvestmentRecord)
	for _, inv := range snap.Investments {
		invByAgent[inv.AgentName] = append(invByAgent[inv.AgentName], inv)
		invByOrg[inv.AgencyName] = append(invByOrg[inv.AgencyName], inv)
	}

	s.snap = snap
	s.byAgent = byAgent
	s.byAgency = byAgency
	s.invByAgent = invByAgent
	s.invByOrg = invByOrg

	metrics.UpdateDatasetAgents(len(snap.Agents))
	metrics.UpdateDatasetAgencies(len(snap.Agencies))
	metrics.UpdateDatasetInvestments(len(snap.Investments))
	metrics.UpdateDatasetGeneration(snap.Generation)
	return nil
}

// Agents returns the agent records in load order.
func (s *MemStore) Agents(_ context.Context) []model.AgentRecord {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.snap.Agents
}

// Ranked returns the agents with their derived rank sets.
func (s *MemStore) Ranked(_ context.Context) []model.RankedAgent {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.snap.Ranked
}

// Agencies returns the aggregated agency records.
func (s *MemStore) Agencies(_ context.Context) []model.AgencyRecord {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.snap.Agencies
}

// Investments returns all player investment records.
func (s *MemStore) Investments(_ context.Context) []model.PlayerInvestmentRecord {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.snap.Investments
}

// RankedByName returns one ranked agent by name.
func (s *MemStore) RankedByName(_ context.Context, agentName string) (model.RankedAgent, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	ra, ok := s.byAgent[agentName]
	if !ok {
		return model.RankedAgent{}, fmt.Errorf("%w: agent %q", ErrNotFound, agentName)
	}
	return ra, nil
}

// AgencyByName returns one agency by name.
func (s *MemStore) AgencyByName(_ context.Context, agencyName string) (model.AgencyRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	a, ok := s.byAgency[agencyName]
	if !ok {
		return model.AgencyRecord{}, fmt.Errorf("%w: agency %q", ErrNotFound, agencyName)
	}
	return a, nil
}

// InvestmentsByAgent returns the records attributed to one agent.
func (s *MemStore) InvestmentsByAgent(_ context.Context, agentName string) []model.PlayerInvestmentRecord {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.invByAgent[agentName]
}

// InvestmentsByAgency returns the records attributed to one agency.
func (s *MemStore) InvestmentsByAgency(_ context.Context, agencyName string) []model.PlayerInvestmentRecord {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.invByOrg[agencyName]
}

// Count returns the number of agents in the current snapshot.
func (s *MemStore) Count(_ context.Context) int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.snap.Agents)
}

// Generation returns the current snapshot's generation.
func (s *MemStore) Generation(_ context.Context) uint64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.snap.Generation
}

// LoadedAt returns when the current snapshot was derived.
func (s *MemStore) LoadedAt(_ context.Context) time.Time {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.snap.LoadedAt
}

var _ Store = (*MemStore)(nil)
