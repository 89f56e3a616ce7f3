// Package api declares HTTP contracts and route registration helpers.
package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"
)

// GapHandler handles skill-gap analysis requests.
type GapHandler struct {
	deps Dependencies
}

// NewGapHandler creates a new skill-gap handler.
func NewGapHandler(deps Dependencies) *GapHandler {
	return &GapHandler{deps: deps}
}

// gapRequest mirrors the OpenAPI schema for POST /skill-gap.
type gapRequest struct {
	Skills          []string `json:"skills"`
	TargetRole      string   `json:"target_role"`
	ExperienceLevel string   `json:"experience_level"`
}

func (g gapRequest) validate() error {
	if strings.TrimSpace(g.TargetRole) == "" {
		return errors.New("missing target_role")
	}
	return nil
}

// HandleSkillGap handles POST /skill-gap requests.
func (h *GapHandler) HandleSkillGap(w http.ResponseWriter, r *http.Request) {
	const op = "api.skill_gap"
	if r.Method != http.MethodPost {
		http.NotFound(w, r)
		return
	}
	var req gapRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "bad_request", WrapKind(op, ErrBadRequest, err))
		return
	}
	if err := req.validate(); err != nil {
		writeError(w, http.StatusBadRequest, "bad_request", WrapKind(op, ErrBadRequest, err))
		return
	}

	report, err := h.deps.AnalyzeGap(r.Context(), req.Skills, req.TargetRole, req.ExperienceLevel)
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, report)
}

// RolesHandler lists the roles with a gap roadmap.
type RolesHandler struct {
	deps Dependencies
}

// NewRolesHandler creates a new roles handler.
func NewRolesHandler(deps Dependencies) *RolesHandler {
	return &RolesHandler{deps: deps}
}

type rolesResponse struct {
	Roles []string `json:"roles"`
}

// HandleRoles handles GET /roles requests.
func (h *RolesHandler) HandleRoles(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.NotFound(w, r)
		return
	}
	roles, err := h.deps.Roles(r.Context())
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, rolesResponse{Roles: roles})
}
