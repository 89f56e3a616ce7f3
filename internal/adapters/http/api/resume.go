// Package api declares HTTP contracts and route registration helpers.
package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"
)

// ResumeHandler handles resume scoring requests.
type ResumeHandler struct {
	deps Dependencies
}

// NewResumeHandler creates a new resume handler.
func NewResumeHandler(deps Dependencies) *ResumeHandler {
	return &ResumeHandler{deps: deps}
}

// resumeRequest mirrors the OpenAPI schema for POST /resume-score.
type resumeRequest struct {
	ResumeText string `json:"resume_text"`
	TargetRole string `json:"target_role"`
}

func (r resumeRequest) validate() error {
	if strings.TrimSpace(r.ResumeText) == "" {
		return errors.New("missing resume_text")
	}
	return nil
}

// HandleResumeScore handles POST /resume-score requests.
func (h *ResumeHandler) HandleResumeScore(w http.ResponseWriter, r *http.Request) {
	const op = "api.resume_score"
	if r.Method != http.MethodPost {
		http.NotFound(w, r)
		return
	}
	var req resumeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "bad_request", WrapKind(op, ErrBadRequest, err))
		return
	}
	if err := req.validate(); err != nil {
		writeError(w, http.StatusBadRequest, "bad_request", WrapKind(op, ErrBadRequest, err))
		return
	}

	result, err := h.deps.ScoreResume(r.Context(), req.ResumeText, req.TargetRole)
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, result)
}
