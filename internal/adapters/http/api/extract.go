// Package api declares HTTP contracts and route registration helpers.
package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"
)

// ExtractHandler handles skill extraction requests.
type ExtractHandler struct {
	deps Dependencies
}

// NewExtractHandler creates a new extraction handler.
func NewExtractHandler(deps Dependencies) *ExtractHandler {
	return &ExtractHandler{deps: deps}
}

// extractRequest accepts either an explicit skill list or free text.
// Exactly one of the two must be set.
type extractRequest struct {
	Skills     []string `json:"skills"`
	ResumeText string   `json:"resume_text"`
}

func (e extractRequest) validate() error {
	hasSkills := len(e.Skills) > 0
	hasText := strings.TrimSpace(e.ResumeText) != ""
	switch {
	case !hasSkills && !hasText:
		return errors.New("provide skills or resume_text")
	case hasSkills && hasText:
		return errors.New("provide skills or resume_text, not both")
	}
	return nil
}

// HandleExtract handles POST /extract requests.
func (h *ExtractHandler) HandleExtract(w http.ResponseWriter, r *http.Request) {
	const op = "api.extract"
	if r.Method != http.MethodPost {
		http.NotFound(w, r)
		return
	}
	var req extractRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "bad_request", WrapKind(op, ErrBadRequest, err))
		return
	}
	if err := req.validate(); err != nil {
		writeError(w, http.StatusBadRequest, "bad_request", WrapKind(op, ErrBadRequest, err))
		return
	}

	if len(req.Skills) > 0 {
		result, err := h.deps.ExtractSkills(r.Context(), req.Skills)
		if err != nil {
			writeDomainError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, result)
		return
	}
	result, err := h.deps.ExtractFromText(r.Context(), req.ResumeText)
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, result)
}
