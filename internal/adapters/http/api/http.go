// Package api declares HTTP contracts and route registration helpers.
package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/okian/ascent/internal/domain/extract"
	"github.com/okian/ascent/internal/domain/gap"
	"github.com/okian/ascent/internal/domain/recommend"
	"github.com/okian/ascent/internal/domain/rubric"
)

// Dependencies required by HTTP handlers. Using an interface bundle keeps
// the handler layer loosely coupled to implementations in other packages.
type Dependencies interface {
	ExtractSkills(ctx context.Context, skills []string) (extract.Result, error)
	ExtractFromText(ctx context.Context, text string) (extract.Result, error)
	Recommend(ctx context.Context, skills []string, q recommend.Query) ([]recommend.Result, error)
	AnalyzeGap(ctx context.Context, skills []string, targetRole, experienceLevel string) (gap.Report, error)
	ScoreResume(ctx context.Context, resumeText, targetRole string) (rubric.Result, error)
	Roles(ctx context.Context) ([]string, error)
}

// Server wires HTTP routes for the business API.
type Server struct {
	healthHandler    *HealthHandler
	statsHandler     *StatsHandler
	extractHandler   *ExtractHandler
	recommendHandler *RecommendHandler
	gapHandler       *GapHandler
	resumeHandler    *ResumeHandler
	rolesHandler     *RolesHandler
	webhookHandler   *WebhookHandler
}

// NewServer creates a new API server with all handlers.
func NewServer(deps Dependencies, statsProvider StatsProvider) *Server {
	return &Server{
		healthHandler:    NewHealthHandler(),
		statsHandler:     NewStatsHandler(statsProvider),
		extractHandler:   NewExtractHandler(deps),
		recommendHandler: NewRecommendHandler(deps),
		gapHandler:       NewGapHandler(deps),
		resumeHandler:    NewResumeHandler(deps),
		rolesHandler:     NewRolesHandler(deps),
		webhookHandler:   NewWebhookHandler(deps),
	}
}

// Register attaches all HTTP routes to mux.
func (s *Server) Register(ctx context.Context, mux *http.ServeMux) {
	mux.HandleFunc("/healthz", MetricsMiddleware(s.healthHandler.HandleHealth, "healthz"))
	mux.HandleFunc("/stats", MetricsMiddleware(s.statsHandler.HandleStats, "stats"))
	mux.HandleFunc("/extract", MetricsMiddleware(s.extractHandler.HandleExtract, "extract"))
	mux.HandleFunc("/recommend", MetricsMiddleware(s.recommendHandler.HandleRecommend, "recommend"))
	mux.HandleFunc("/skill-gap", MetricsMiddleware(s.gapHandler.HandleSkillGap, "skill_gap"))
	mux.HandleFunc("/resume-score", MetricsMiddleware(s.resumeHandler.HandleResumeScore, "resume_score"))
	mux.HandleFunc("/roles", MetricsMiddleware(s.rolesHandler.HandleRoles, "roles"))
	mux.HandleFunc("/webhook", MetricsMiddleware(s.webhookHandler.HandleWebhook, "webhook"))
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

// writeDomainError maps domain faults onto HTTP statuses. Unrecognized
// errors fall through to 500.
func writeDomainError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, gap.ErrUnknownRole):
		writeError(w, http.StatusNotFound, "unknown_role", err)
	case errors.Is(err, recommend.ErrInvalidTopN),
		errors.Is(err, recommend.ErrInvalidExperienceLevel),
		errors.Is(err, gap.ErrInvalidLevel),
		errors.Is(err, rubric.ErrEmptyResume):
		writeError(w, http.StatusBadRequest, "bad_request", err)
	default:
		writeError(w, http.StatusInternalServerError, "internal", err)
	}
}
