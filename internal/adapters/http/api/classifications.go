// Package api declares HTTP contracts and route registration helpers.
package api

import (
	"context"
	"net/http"

	"agentdash/internal/domain/model"
)

// ClassificationDependencies defines the interface for tier groupings.
type ClassificationDependencies interface {
	Classifications(ctx context.Context, metric string) (map[string][]model.RankedAgent, error)
}

// ClassificationsHandler handles classification requests.
type ClassificationsHandler struct {
	deps ClassificationDependencies
}

// NewClassificationsHandler creates a new classifications handler.
func NewClassificationsHandler(deps ClassificationDependencies) *ClassificationsHandler {
	return &ClassificationsHandler{deps: deps}
}

// HandleGetClassifications handles GET /classifications?metric=M
// requests, grouping every agent into tier bands for the metric.
func (h *ClassificationsHandler) HandleGetClassifications(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.NotFound(w, r)
		return
	}
	groups, err := h.deps.Classifications(r.Context(), r.URL.Query().Get("metric"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "bad_request", err)
		return
	}
	writeJSON(w, http.StatusOK, groups)
}
