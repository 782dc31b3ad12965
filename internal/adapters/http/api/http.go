// Package api declares HTTP contracts and route registration helpers.
package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/url"
	"strings"

	app "agentdash/internal/app"
	"agentdash/internal/adapters/repository"
	"agentdash/internal/domain/model"
)

// Dependencies required by HTTP handlers. Using an interface bundle
// keeps the handler layer loosely coupled to the service package.
type Dependencies interface {
	LoadAgentData(ctx context.Context) (app.AgentData, error)
	LoadAgencyData(ctx context.Context) ([]model.AgencyRecord, error)

	Agents(ctx context.Context) []model.RankedAgent
	AgentByName(ctx context.Context, name string) (model.RankedAgent, error)
	FirstAgent(ctx context.Context) (model.RankedAgent, error)
	Agencies(ctx context.Context) []model.AgencyRecord
	AgencyByName(ctx context.Context, name string) (model.AgencyRecord, error)
	FirstAgency(ctx context.Context) (model.AgencyRecord, error)

	Leaderboard(ctx context.Context, metric string, limit int, minContracts bool) ([]model.RankedAgent, error)
	InvestmentsByAgent(ctx context.Context, agentName string) []model.PlayerInvestmentRecord
	AgentSeasonVCP(ctx context.Context, agentName string) model.SeasonVCP
	AgencySeasonVCP(ctx context.Context, agencyName string) model.SeasonVCP
	Classifications(ctx context.Context, metric string) (map[string][]model.RankedAgent, error)
	Compare(ctx context.Context, nameA, nameB string) (app.Comparison, error)
	HeadshotURL(playerName string) string
}

// Server wires HTTP routes for the business API.
type Server struct {
	healthHandler         *HealthHandler
	statsHandler          *StatsHandler
	agentsHandler         *AgentsHandler
	agenciesHandler       *AgenciesHandler
	leaderboardHandler    *LeaderboardHandler
	rankHandler           *RankHandler
	classificationHandler *ClassificationsHandler
	compareHandler        *CompareHandler
	dashboardHandler      *dashboardHandler
}

// NewServer creates a new API server with all handlers.
func NewServer(deps Dependencies, statsProvider StatsProvider, maxLimit int) *Server {
	return &Server{
		healthHandler:         NewHealthHandler(),
		statsHandler:          NewStatsHandler(statsProvider),
		agentsHandler:         NewAgentsHandler(deps),
		agenciesHandler:       NewAgenciesHandler(deps),
		leaderboardHandler:    NewLeaderboardHandler(deps, maxLimit),
		rankHandler:           NewRankHandler(deps),
		classificationHandler: NewClassificationsHandler(deps),
		compareHandler:        NewCompareHandler(deps),
		dashboardHandler:      newdashboardHandler(),
	}
}

// Register attaches all HTTP routes to mux.
func (s *Server) Register(ctx context.Context, mux *http.ServeMux) {
	mux.HandleFunc("/healthz", MetricsMiddleware(s.healthHandler.HandleHealth, "healthz"))
	mux.HandleFunc("/dashboard", s.dashboardHandler.HandleDashboard)
	mux.HandleFunc("/stats", MetricsMiddleware(s.statsHandler.HandleStats, "stats"))
	mux.HandleFunc("/agents", MetricsMiddleware(s.agentsHandler.HandleList, "agents"))
	mux.HandleFunc("/agents/", MetricsMiddleware(s.agentsHandler.HandleDetail, "agent_detail"))
	mux.HandleFunc("/agencies", MetricsMiddleware(s.agenciesHandler.HandleList, "agencies"))
	mux.HandleFunc("/agencies/", MetricsMiddleware(s.agenciesHandler.HandleDetail, "agency_detail"))
	mux.HandleFunc("/leaderboard", MetricsMiddleware(s.leaderboardHandler.HandleGetLeaderboard, "leaderboard"))
	mux.HandleFunc("/rank/", MetricsMiddleware(s.rankHandler.HandleGetRank, "rank"))
	mux.HandleFunc("/classifications", MetricsMiddleware(s.classificationHandler.HandleGetClassifications, "classifications"))
	mux.HandleFunc("/compare", MetricsMiddleware(s.compareHandler.HandleCompare, "compare"))
}

type errorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, code string, err error) {
	msg := http.StatusText(status)
	if err != nil {
		msg = err.Error()
	}
	writeJSON(w, status, errorResponse{Code: code, Message: msg})
}

// isNotFound translates upstream not-found conditions to 404.
func isNotFound(err error) bool {
	return errors.Is(err, repository.ErrNotFound) || errors.Is(err, app.ErrNoData)
}

// pathParam extracts the trailing path segment after prefix, rejecting
// nested paths. Names contain spaces, so the segment is unescaped.
func pathParam(r *http.Request, prefix string) (string, bool) {
	p := strings.TrimPrefix(r.URL.Path, prefix)
	if p == "" || strings.Contains(p, "/") {
		return "", false
	}
	if unescaped, err := url.PathUnescape(p); err == nil {
		p = unescaped
	}
	return p, true
}
