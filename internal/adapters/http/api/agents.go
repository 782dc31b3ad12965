// Package api declares HTTP contracts and route registration helpers.
package api

import (
	"net/http"

	"agentdash/internal/domain/model"
)

// AgentsHandler serves the agent list and agent detail views.
type AgentsHandler struct {
	deps Dependencies
}

// NewAgentsHandler creates a new agents handler.
func NewAgentsHandler(deps Dependencies) *AgentsHandler {
	return &AgentsHandler{deps: deps}
}

// HandleList handles GET /agents requests: all ranked agents,
// alphabetical.
func (h *AgentsHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.NotFound(w, r)
		return
	}
	writeJSON(w, http.StatusOK, h.deps.Agents(r.Context()))
}

// playerView decorates an investment record with its headshot URL.
type playerView struct {
	model.PlayerInvestmentRecord
	HeadshotURL string `json:"headshot_url"`
}

// agentDetail is the full dashboard payload for one agent.
type agentDetail struct {
	model.RankedAgent
	SeasonVCP model.SeasonVCP `json:"season_vcp"`
	Players   []playerView    `json:"players"`
}

// HandleDetail handles GET /agents/{name} requests. An unknown name
// falls back to the first agent rather than erroring; only an empty
// dataset yields 404.
func (h *AgentsHandler) HandleDetail(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.NotFound(w, r)
		return
	}
	name, ok := pathParam(r, "/agents/")
	if !ok {
		writeError(w, http.StatusBadRequest, "bad_request", ErrBadRequest)
		return
	}

	ctx := r.Context()
	agent, err := h.deps.AgentByName(ctx, name)
	if err != nil {
		// No selection: fall back to the first available agent.
		agent, err = h.deps.FirstAgent(ctx)
		if err != nil {
			writeError(w, http.StatusNotFound, "not_found", err)
			return
		}
	}

	investments := h.deps.InvestmentsByAgent(ctx, agent.AgentName)
	players := make([]playerView, len(investments))
	for i, inv := range investments {
		players[i] = playerView{
			PlayerInvestmentRecord: inv,
			HeadshotURL:            h.deps.HeadshotURL(inv.PlayerName),
		}
	}

	writeJSON(w, http.StatusOK, agentDetail{
		RankedAgent: agent,
		SeasonVCP:   h.deps.AgentSeasonVCP(ctx, agent.AgentName),
		Players:     players,
	})
}
