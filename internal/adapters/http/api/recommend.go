// Package api declares HTTP contracts and route registration helpers.
package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/okian/ascent/internal/domain/recommend"
)

// RecommendHandler handles job recommendation requests.
type RecommendHandler struct {
	deps Dependencies
}

// NewRecommendHandler creates a new recommendation handler.
func NewRecommendHandler(deps Dependencies) *RecommendHandler {
	return &RecommendHandler{deps: deps}
}

// recommendRequest mirrors the OpenAPI schema for POST /recommend.
// Skills may come as an explicit list or be extracted from resume_text.
type recommendRequest struct {
	Skills          []string `json:"skills"`
	ResumeText      string   `json:"resume_text"`
	TopN            int      `json:"top_n"`
	ExperienceLevel string   `json:"experience_level"`
	Location        string   `json:"location"`
}

func (r recommendRequest) validate() error {
	if len(r.Skills) == 0 && strings.TrimSpace(r.ResumeText) == "" {
		return errors.New("provide skills or resume_text")
	}
	return nil
}

type recommendResponse struct {
	Recommendations []recommend.Result `json:"recommendations"`
	Count           int                `json:"count"`
}

// HandleRecommend handles POST /recommend requests.
func (h *RecommendHandler) HandleRecommend(w http.ResponseWriter, r *http.Request) {
	const op = "api.recommend"
	if r.Method != http.MethodPost {
		http.NotFound(w, r)
		return
	}
	var req recommendRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "bad_request", WrapKind(op, ErrBadRequest, err))
		return
	}
	if err := req.validate(); err != nil {
		writeError(w, http.StatusBadRequest, "bad_request", WrapKind(op, ErrBadRequest, err))
		return
	}

	skills := req.Skills
	if len(skills) == 0 {
		extracted, err := h.deps.ExtractFromText(r.Context(), req.ResumeText)
		if err != nil {
			writeDomainError(w, err)
			return
		}
		skills = extracted.Canonical
	}

	results, err := h.deps.Recommend(r.Context(), skills, recommend.Query{
		TopN:            req.TopN,
		ExperienceLevel: req.ExperienceLevel,
		Location:        req.Location,
	})
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, recommendResponse{Recommendations: results, Count: len(results)})
}
