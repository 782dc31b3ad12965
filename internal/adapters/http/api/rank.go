// Package api declares HTTP contracts and route registration helpers.
package api

import (
	"context"
	"net/http"

	"agentdash/internal/domain/model"
)

// RankDependencies defines the interface for rank operations.
type RankDependencies interface {
	AgentByName(ctx context.Context, name string) (model.RankedAgent, error)
}

// RankHandler handles rank requests.
type RankHandler struct {
	deps RankDependencies
}

// NewRankHandler creates a new rank handler.
func NewRankHandler(deps RankDependencies) *RankHandler {
	return &RankHandler{deps: deps}
}

// rankResponse is the rank-only view of one agent.
type rankResponse struct {
	AgentName string `json:"agent_name"`
	model.RankSet
}

// HandleGetRank handles GET /rank/{agent_name} requests.
func (h *RankHandler) HandleGetRank(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.NotFound(w, r)
		return
	}
	name, ok := pathParam(r, "/rank/")
	if !ok {
		writeError(w, http.StatusBadRequest, "bad_request", ErrBadRequest)
		return
	}
	agent, err := h.deps.AgentByName(r.Context(), name)
	if err != nil {
		if isNotFound(err) {
			writeError(w, http.StatusNotFound, "not_found", err)
			return
		}
		writeError(w, http.StatusInternalServerError, "internal_error", err)
		return
	}
	writeJSON(w, http.StatusOK, rankResponse{AgentName: agent.AgentName, RankSet: agent.RankSet})
}
