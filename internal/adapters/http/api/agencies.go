// Package api declares HTTP contracts and route registration helpers.
package api

import (
	"net/http"

	"agentdash/internal/domain/model"
)

// AgenciesHandler serves the agency list and agency detail views.
type AgenciesHandler struct {
	deps Dependencies
}

// NewAgenciesHandler creates a new agencies handler.
func NewAgenciesHandler(deps Dependencies) *AgenciesHandler {
	return &AgenciesHandler{deps: deps}
}

// HandleList handles GET /agencies requests: aggregated agency
// records, alphabetical.
func (h *AgenciesHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.NotFound(w, r)
		return
	}
	writeJSON(w, http.StatusOK, h.deps.Agencies(r.Context()))
}

// agencyDetail is the full dashboard payload for one agency.
type agencyDetail struct {
	model.AgencyRecord
	SeasonVCP model.SeasonVCP `json:"season_vcp"`
}

// HandleDetail handles GET /agencies/{name} requests with the same
// first-record fallback as agent detail.
func (h *AgenciesHandler) HandleDetail(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.NotFound(w, r)
		return
	}
	name, ok := pathParam(r, "/agencies/")
	if !ok {
		writeError(w, http.StatusBadRequest, "bad_request", ErrBadRequest)
		return
	}

	ctx := r.Context()
	agency, err := h.deps.AgencyByName(ctx, name)
	if err != nil {
		agency, err = h.deps.FirstAgency(ctx)
		if err != nil {
			writeError(w, http.StatusNotFound, "not_found", err)
			return
		}
	}

	writeJSON(w, http.StatusOK, agencyDetail{
		AgencyRecord: agency,
		SeasonVCP:    h.deps.AgencySeasonVCP(ctx, agency.AgencyName),
	})
}
