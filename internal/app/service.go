// Package service provides the core business service that implements
// the dependencies required by the HTTP API.
package service

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"sync"
	"sync/atomic"
	"time"

	"github.com/google/uuid"

	"agentdash/internal/adapters/repository"
	"agentdash/internal/adapters/source"
	"agentdash/internal/domain/aggregate"
	"agentdash/internal/domain/classify"
	"agentdash/internal/domain/model"
	"agentdash/internal/domain/rank"
	"agentdash/internal/domain/record"
	"agentdash/pkg/logger"
	"agentdash/pkg/metrics"
)

// Defaults used when no option overrides them.
const (
	defaultMaxLeaderboardLimit = 90
	minContractsThreshold      = 10
)

// Metric names accepted by Leaderboard.
const (
	MetricDollarIndex   = "dollar-index"
	MetricWinRate       = "win-rate"
	MetricContracts     = "contracts"
	MetricContractValue = "contract-value"
	MetricPlayerValue   = "player-value"
)

// ErrNoData is returned by read operations before the first
// successful load.
var ErrNoData = errors.New("no dataset loaded")

// AgentData is the bundle the agent-facing pages load in one call.
type AgentData struct {
	Agents      []model.AgentRecord            `json:"agents"`
	Ranks       []model.RankedAgent            `json:"ranks"`
	Investments []model.PlayerInvestmentRecord `json:"player_investments"`
}

// Comparison is a side-by-side view of two agents.
type Comparison struct {
	A model.RankedAgent `json:"a"`
	B model.RankedAgent `json:"b"`
}

// Service owns the load/derive cycle and serves read queries from the
// current snapshot.
type Service struct {
	mu sync.RWMutex

	store  repository.Store
	src    source.Source
	logger logger.Logger

	refreshInterval time.Duration
	maxLimit        int
	headshotPath    string

	generation atomic.Uint64

	started bool
	stopCh  chan struct{}
	wg      sync.WaitGroup
}

// Option applies a configuration option to the Service.
type Option func(*Service)

// WithLogger sets a custom logger for the service.
func WithLogger(l logger.Logger) Option {
	return func(s *Service) {
		if l != nil {
			s.logger = l
		}
	}
}

// WithSource sets the dataset source.
func WithSource(src source.Source) Option {
	return func(s *Service) {
		if src != nil {
			s.src = src
		}
	}
}

// WithStore sets the dataset store.
func WithStore(store repository.Store) Option {
	return func(s *Service) {
		if store != nil {
			s.store = store
		}
	}
}

// WithRefreshInterval enables periodic reloads. Zero disables them.
func WithRefreshInterval(interval time.Duration) Option {
	return func(s *Service) {
		if interval >= 0 {
			s.refreshInterval = interval
		}
	}
}

// WithMaxLeaderboardLimit caps leaderboard query sizes.
func WithMaxLeaderboardLimit(limit int) Option {
	return func(s *Service) {
		if limit > 0 {
			s.maxLimit = limit
		}
	}
}

// WithHeadshotPath sets the static path headshot URLs are built on.
func WithHeadshotPath(path string) Option {
	return func(s *Service) {
		if path != "" {
			s.headshotPath = path
		}
	}
}

// New constructs a new Service with default configuration.
func New(opts ...Option) *Service {
	s := &Service{
		maxLimit:     defaultMaxLeaderboardLimit,
		headshotPath: model.DefaultHeadshotPath,
		stopCh:       make(chan struct{}),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Start performs the initial load and, when configured, begins the
// refresh loop. A failed initial load is terminal for startup.
func (s *Service) Start(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.started {
		return nil
	}
	if s.src == nil {
		return errors.New("service requires a dataset source")
	}
	if s.logger == nil {
		s.logger = logger.Get()
	}
	if s.store == nil {
		s.store = repository.NewMemStore(ctx)
	}

	s.logger.Info(ctx, "starting dashboard service...")

	if err := s.Reload(ctx); err != nil {
		return fmt.Errorf("initial load: %w", err)
	}

	if s.refreshInterval > 0 {
		s.wg.Add(1)
		go s.refreshLoop()
	}

	s.started = true
	s.logger.Info(ctx, "dashboard service started",
		logger.Int("agents", s.store.Count(ctx)),
		logger.Uint64("generation", s.store.Generation(ctx)),
	)
	return nil
}

// Stop gracefully shuts down the refresh loop.
func (s *Service) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.started {
		return
	}
	select {
	case <-s.stopCh:
	default:
		close(s.stopCh)
	}
	s.wg.Wait()
	s.started = false
	s.logger.Info(context.Background(), "dashboard service stopped")
}

func (s *Service) refreshLoop() {
	defer s.wg.Done()
	ticker := time.NewTicker(s.refreshInterval)
	defer ticker.Stop()

	for {
		select {
		case <-s.stopCh:
			return
		case <-ticker.C:
			ctx, cancel := context.WithTimeout(context.Background(), s.refreshInterval)
			if err := s.Reload(ctx); err != nil {
				// Keep serving the previous snapshot.
				s.logger.Warn(ctx, "dataset refresh failed", logger.Error(err))
			}
			cancel()
		}
	}
}

// Reload fetches the three exports, derives the full dataset and swaps
// it into the store. Each attempt takes the next generation before
// fetching, so a slow attempt that finishes after a newer one is
// rejected by the store instead of clobbering it.
func (s *Service) Reload(ctx context.Context) error {
	loadID := uuid.NewString()
	gen := s.generation.Add(1)
	start := time.Now()

	snap, err := s.buildSnapshot(ctx, gen)
	if err != nil {
		metrics.RecordLoadFailure()
		s.logger.Error(ctx, "dataset load failed",
			logger.String("load_id", loadID),
			logger.Uint64("generation", gen),
			logger.Error(err),
		)
		return err
	}

	if err := s.store.Replace(ctx, snap); err != nil {
		if errors.Is(err, repository.ErrStaleLoad) {
			metrics.RecordLoadStale()
			s.logger.Warn(ctx, "discarding superseded load",
				logger.String("load_id", loadID),
				logger.Uint64("generation", gen),
			)
			return nil
		}
		metrics.RecordLoadFailure()
		return err
	}

	metrics.RecordLoadSuccess()
	metrics.RecordLoadDuration(float64(time.Since(start).Milliseconds()))
	s.logger.Info(ctx, "dataset loaded",
		logger.String("load_id", loadID),
		logger.Uint64("generation", gen),
		logger.Int("agents", len(snap.Agents)),
		logger.Int("agencies", len(snap.Agencies)),
		logger.Int("player_investments", len(snap.Investments)),
	)
	return nil
}

func (s *Service) buildSnapshot(ctx context.Context, gen uint64) (repository.Snapshot, error) {
	agentRows, err := s.src.Fetch(ctx, source.DatasetAgents)
	if err != nil {
		return repository.Snapshot{}, fmt.Errorf("fetch agents: %w", err)
	}
	agencyRows, err := s.src.Fetch(ctx, source.DatasetAgencies)
	if err != nil {
		return repository.Snapshot{}, fmt.Errorf("fetch agencies: %w", err)
	}
	investmentRows, err := s.src.Fetch(ctx, source.DatasetInvestments)
	if err != nil {
		return repository.Snapshot{}, fmt.Errorf("fetch player investments: %w", err)
	}

	agents := record.MapAgentRows(agentRows)
	investments := record.MapPlayerInvestmentRows(investmentRows)
	agencies := aggregate.Agencies(agencyRows)

	metrics.RecordRowsParsed(source.DatasetAgents, len(agents))
	metrics.RecordRowsSkipped(source.DatasetAgents, len(agentRows)-len(agents))
	metrics.RecordRowsParsed(source.DatasetAgencies, len(agencies))
	metrics.RecordRowsParsed(source.DatasetInvestments, len(investments))
	metrics.RecordRowsSkipped(source.DatasetInvestments, len(investmentRows)-len(investments))

	return repository.Snapshot{
		Agents:      agents,
		Ranked:      rank.Compute(agents),
		Agencies:    agencies,
		Investments: investments,
		Generation:  gen,
		LoadedAt:    time.Now(),
	}, nil
}

// LoadAgentData returns the bundle the agent pages consume: agents,
// ranked agents and all player investments.
func (s *Service) LoadAgentData(ctx context.Context) (AgentData, error) {
	if s.store.Generation(ctx) == 0 {
		return AgentData{}, ErrNoData
	}
	return AgentData{
		Agents:      s.store.Agents(ctx),
		Ranks:       s.store.Ranked(ctx),
		Investments: s.store.Investments(ctx),
	}, nil
}

// LoadAgencyData returns the aggregated agency records.
func (s *Service) LoadAgencyData(ctx context.Context) ([]model.AgencyRecord, error) {
	if s.store.Generation(ctx) == 0 {
		return nil, ErrNoData
	}
	return s.store.Agencies(ctx), nil
}

// Agents returns ranked agents sorted alphabetically for listing.
func (s *Service) Agents(ctx context.Context) []model.RankedAgent {
	ranked := s.store.Ranked(ctx)
	out := make([]model.RankedAgent, len(ranked))
	copy(out, ranked)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].AgentName < out[j].AgentName
	})
	return out
}

// AgentByName returns one ranked agent.
func (s *Service) AgentByName(ctx context.Context, name string) (model.RankedAgent, error) {
	return s.store.RankedByName(ctx, name)
}

// FirstAgent returns the alphabetically first agent, used as the
// missing-selection fallback. ErrNoData when the snapshot is empty.
func (s *Service) FirstAgent(ctx context.Context) (model.RankedAgent, error) {
	agents := s.Agents(ctx)
	if len(agents) == 0 {
		return model.RankedAgent{}, ErrNoData
	}
	return agents[0], nil
}

// Agencies returns agency records sorted alphabetically.
func (s *Service) Agencies(ctx context.Context) []model.AgencyRecord {
	agencies := s.store.Agencies(ctx)
	out := make([]model.AgencyRecord, len(agencies))
	copy(out, agencies)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].AgencyName < out[j].AgencyName
	})
	return out
}

// AgencyByName returns one agency record.
func (s *Service) AgencyByName(ctx context.Context, name string) (model.AgencyRecord, error) {
	return s.store.AgencyByName(ctx, name)
}

// FirstAgency returns the alphabetically first agency, used as the
// missing-selection fallback.
func (s *Service) FirstAgency(ctx context.Context) (model.AgencyRecord, error) {
	agencies := s.Agencies(ctx)
	if len(agencies) == 0 {
		return model.AgencyRecord{}, ErrNoData
	}
	return agencies[0], nil
}

// Leaderboard returns up to limit agents ordered descending by the
// given metric (default dollar index). When minContracts is set,
// agents with fewer than ten tracked contracts are excluded first.
// The limit is capped by the configured maximum.
func (s *Service) Leaderboard(ctx context.Context, metric string, limit int, minContracts bool) ([]model.RankedAgent, error) {
	key, err := metricKey(metric)
	if err != nil {
		return nil, err
	}
	if limit < 1 || limit > s.maxLimit {
		limit = s.maxLimit
	}

	ranked := s.store.Ranked(ctx)
	out := make([]model.RankedAgent, 0, len(ranked))
	for _, ra := range ranked {
		if minContracts && ra.ContractsTracked < minContractsThreshold {
			continue
		}
		out = append(out, ra)
	}
	sort.SliceStable(out, func(i, j int) bool {
		return key(out[i]) > key(out[j])
	})
	if len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func metricKey(metric string) (func(model.RankedAgent) float64, error) {
	switch metric {
	case "", MetricDollarIndex:
		return func(a model.RankedAgent) float64 { return a.DollarIndex }, nil
	case MetricWinRate:
		return func(a model.RankedAgent) float64 { return a.WinRate }, nil
	case MetricContracts:
		return func(a model.RankedAgent) float64 { return float64(a.ContractsTracked) }, nil
	case MetricContractValue:
		return func(a model.RankedAgent) float64 { return a.TotalContractValue }, nil
	case MetricPlayerValue:
		return func(a model.RankedAgent) float64 { return a.TotalPlayerValue }, nil
	default:
		return nil, fmt.Errorf("unknown leaderboard metric %q", metric)
	}
}

// InvestmentsByAgent returns one agent's player investment records.
func (s *Service) InvestmentsByAgent(ctx context.Context, agentName string) []model.PlayerInvestmentRecord {
	return s.store.InvestmentsByAgent(ctx, agentName)
}

// AgentSeasonVCP derives the per-season value capture for one agent.
func (s *Service) AgentSeasonVCP(ctx context.Context, agentName string) model.SeasonVCP {
	return aggregate.SeasonVCP(s.store.InvestmentsByAgent(ctx, agentName))
}

// AgencySeasonVCP derives the per-season value capture for one agency.
func (s *Service) AgencySeasonVCP(ctx context.Context, agencyName string) model.SeasonVCP {
	return aggregate.SeasonVCP(s.store.InvestmentsByAgency(ctx, agencyName))
}

// Classifications groups all agents into tier bands for a metric.
func (s *Service) Classifications(ctx context.Context, metric string) (map[string][]model.RankedAgent, error) {
	m := classify.Metric(metric)
	if metric == "" {
		m = classify.MetricDollarIndex
	}
	if !classify.Valid(m) {
		return nil, fmt.Errorf("unknown classification metric %q", metric)
	}
	return classify.GroupByTier(m, s.store.Ranked(ctx)), nil
}

// Compare returns two agents side by side.
func (s *Service) Compare(ctx context.Context, nameA, nameB string) (Comparison, error) {
	a, err := s.store.RankedByName(ctx, nameA)
	if err != nil {
		return Comparison{}, err
	}
	b, err := s.store.RankedByName(ctx, nameB)
	if err != nil {
		return Comparison{}, err
	}
	return Comparison{A: a, B: b}, nil
}

// HeadshotURL maps a player name to its headshot asset URL.
func (s *Service) HeadshotURL(playerName string) string {
	return model.HeadshotURL(s.headshotPath, playerName)
}

// GetStats returns service statistics for monitoring.
func (s *Service) GetStats() map[string]interface{} {
	s.mu.RLock()
	defer s.mu.RUnlock()

	ctx := context.Background()
	stats := map[string]interface{}{
		"started":               s.started,
		"refresh_interval":      s.refreshInterval.String(),
		"max_leaderboard_limit": s.maxLimit,
	}

	gen := s.store.Generation(ctx)
	stats["generation"] = gen
	if gen > 0 {
		loadedAt := s.store.LoadedAt(ctx)
		stats["agents"] = len(s.store.Agents(ctx))
		stats["agencies"] = len(s.store.Agencies(ctx))
		stats["player_investments"] = len(s.store.Investments(ctx))
		stats["loaded_at"] = loadedAt.UTC().Format(time.RFC3339)

		metrics.UpdateDatasetAge(time.Since(loadedAt))
	}
	return stats
}
