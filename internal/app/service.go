// Package service provides the core business service that implements
// the dependencies required by the HTTP API.
package service

import (
	"context"
	"sync"
	"time"

	"github.com/okian/ascent/internal/adapters/dataset"
	repository "github.com/okian/ascent/internal/adapters/repository"
	"github.com/okian/ascent/internal/domain/extract"
	"github.com/okian/ascent/internal/domain/gap"
	"github.com/okian/ascent/internal/domain/recommend"
	"github.com/okian/ascent/internal/domain/rubric"
	"github.com/okian/ascent/pkg/logger"
	"github.com/okian/ascent/pkg/metrics"
)

// Service wires the analytical engines to the reference-data snapshot and
// implements the API dependencies.
type Service struct {
	mu sync.Mutex

	// Core components
	store       repository.Store
	loader      *dataset.Loader
	recommender *recommend.Engine
	analyzer    *gap.Analyzer

	// Configuration
	defaultTopN    int
	maxTopN        int
	gapLevelWeeks  map[string]int
	resumeMinWords int
	resumeMaxWords int
	watchDatasets  bool

	// State
	started bool

	// Logging
	logger logger.Logger
}

// Option applies a configuration option to the Service.
type Option func(*Service)

// WithLogger sets a custom logger for the service.
func WithLogger(l logger.Logger) Option {
	return func(s *Service) {
		if l != nil {
			s.logger = l
		}
	}
}

// WithLoader sets the dataset loader the service reloads from.
func WithLoader(l *dataset.Loader) Option {
	return func(s *Service) {
		if l != nil {
			s.loader = l
		}
	}
}

// WithDefaultTopN sets the recommendation count used when a request
// leaves top_n unset.
func WithDefaultTopN(n int) Option {
	return func(s *Service) {
		if n > 0 {
			s.defaultTopN = n
		}
	}
}

// WithMaxTopN caps the top_n a request may ask for.
func WithMaxTopN(n int) Option {
	return func(s *Service) {
		if n > 0 {
			s.maxTopN = n
		}
	}
}

// WithGapLevelWeeks overrides the per-missing-skill learning cost per level.
func WithGapLevelWeeks(costs map[string]int) Option {
	return func(s *Service) {
		if len(costs) > 0 {
			s.gapLevelWeeks = costs
		}
	}
}

// WithResumeWordBand sets the acceptable resume word-count band.
func WithResumeWordBand(minWords, maxWords int) Option {
	return func(s *Service) {
		if minWords > 0 && maxWords > minWords {
			s.resumeMinWords = minWords
			s.resumeMaxWords = maxWords
		}
	}
}

// WithWatch reloads the snapshot when an external dataset file changes.
func WithWatch(enabled bool) Option {
	return func(s *Service) {
		s.watchDatasets = enabled
	}
}

// New constructs a new Service with default configuration.
func New(opts ...Option) *Service {
	s := &Service{
		store:          repository.NewAtomicStore(),
		loader:         dataset.NewLoader(),
		defaultTopN:    5,
		maxTopN:        25,
		resumeMinWords: 200,
		resumeMaxWords: 1200,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Start loads the initial snapshot and builds the engines. When dataset
// watching is enabled, changed files trigger a wholesale reload.
func (s *Service) Start(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.started {
		return nil
	}
	if s.logger == nil {
		s.logger = logger.Get()
	}

	s.logger.Info(ctx, "starting matching service...")

	s.recommender = recommend.New(recommend.WithDefaultTopN(s.defaultTopN))
	s.analyzer = gap.New(gap.WithLevelCosts(s.gapLevelWeeks))

	if err := s.reload(ctx); err != nil {
		return err
	}

	if s.watchDatasets {
		if err := s.loader.Watch(func() {
			bg := context.Background()
			if err := s.Reload(bg); err != nil {
				s.logger.Error(bg, "dataset reload failed; keeping previous snapshot",
					logger.Error(err),
				)
			}
		}); err != nil {
			return err
		}
	}

	postings, skills := s.store.Counts(ctx)
	s.started = true
	s.logger.Info(ctx, "matching service started",
		logger.Int("postings", postings),
		logger.Int("skills", skills),
	)
	return nil
}

// Stop gracefully shuts down the service.
func (s *Service) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.started {
		return
	}
	s.started = false
	s.logger.Info(context.Background(), "matching service stopped")
}

// Reload rebuilds the snapshot from the dataset files and swaps it in.
// A failed load leaves the previous snapshot serving.
func (s *Service) Reload(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.reload(ctx)
}

func (s *Service) reload(ctx context.Context) error {
	start := time.Now()
	snap, err := s.loader.Load(ctx)
	if err != nil {
		metrics.RecordSnapshotReloadFailure()
		return err
	}
	// The scorer travels inside the snapshot so concurrent resume scoring
	// never pairs one snapshot's verb list with another's taxonomy.
	snap.Scorer = rubric.New(
		rubric.WithImpactVerbs(snap.ImpactVerbs),
		rubric.WithLengthBand(s.resumeMinWords, s.resumeMaxWords),
	)
	if err := s.store.Replace(ctx, snap); err != nil {
		metrics.RecordSnapshotReloadFailure()
		return err
	}

	metrics.RecordSnapshotReload(time.Since(start).Seconds())
	metrics.UpdateSnapshotCounts(len(snap.Postings), snap.Taxonomy.Len())
	if s.logger != nil {
		s.logger.Info(ctx, "snapshot loaded",
			logger.Int("postings", len(snap.Postings)),
			logger.Int("skills", snap.Taxonomy.Len()),
			logger.Any("version", snap.Version),
		)
	}
	return nil
}

// ExtractSkills normalizes an explicit skill list against the taxonomy.
func (s *Service) ExtractSkills(ctx context.Context, skills []string) (extract.Result, error) {
	snap, err := s.store.Snapshot(ctx)
	if err != nil {
		return extract.Result{}, err
	}
	metrics.RecordExtraction()
	return extract.New(snap.Taxonomy).FromList(ctx, skills), nil
}

// ExtractFromText scans free text for known skill aliases.
func (s *Service) ExtractFromText(ctx context.Context, text string) (extract.Result, error) {
	snap, err := s.store.Snapshot(ctx)
	if err != nil {
		return extract.Result{}, err
	}
	metrics.RecordExtraction()
	return extract.New(snap.Taxonomy).FromText(ctx, text), nil
}

// Recommend normalizes the caller's skills and ranks postings against them.
// The configured cap bounds top_n silently.
func (s *Service) Recommend(ctx context.Context, skills []string, q recommend.Query) ([]recommend.Result, error) {
	snap, err := s.store.Snapshot(ctx)
	if err != nil {
		return nil, err
	}
	if q.TopN > s.maxTopN {
		q.TopN = s.maxTopN
	}
	normalized := extract.New(snap.Taxonomy).FromList(ctx, skills)
	results, err := s.recommender.Recommend(ctx, normalized.Canonical, snap.Postings, q)
	if err != nil {
		metrics.RecordValidationFault("recommend")
		return nil, err
	}
	metrics.RecordRecommendation()
	return results, nil
}

// AnalyzeGap reports known versus missing skills for a target role.
func (s *Service) AnalyzeGap(ctx context.Context, skills []string, targetRole, experienceLevel string) (gap.Report, error) {
	snap, err := s.store.Snapshot(ctx)
	if err != nil {
		return gap.Report{}, err
	}
	normalized := extract.New(snap.Taxonomy).FromList(ctx, skills)
	report, err := s.analyzer.Analyze(ctx, normalized.Canonical, targetRole, experienceLevel, snap.Roadmaps)
	if err != nil {
		metrics.RecordValidationFault("skill_gap")
		return gap.Report{}, err
	}
	metrics.RecordGapAnalysis()
	return report, nil
}

// ScoreResume evaluates resume text against the coaching rubric.
func (s *Service) ScoreResume(ctx context.Context, resumeText, targetRole string) (rubric.Result, error) {
	snap, err := s.store.Snapshot(ctx)
	if err != nil {
		return rubric.Result{}, err
	}
	result, err := snap.Scorer.Score(ctx, resumeText, targetRole, snap.Taxonomy, snap.Roadmaps)
	if err != nil {
		metrics.RecordValidationFault("resume_score")
		return rubric.Result{}, err
	}
	metrics.RecordResumeScored()
	return result, nil
}

// Roles lists the role names with a roadmap, for discovery endpoints.
func (s *Service) Roles(ctx context.Context) ([]string, error) {
	snap, err := s.store.Snapshot(ctx)
	if err != nil {
		return nil, err
	}
	roles := make([]string, 0, len(snap.Roadmaps))
	for _, r := range snap.Roadmaps {
		roles = append(roles, r.Role)
	}
	return roles, nil
}

// GetStats returns service statistics for monitoring.
func (s *Service) GetStats() map[string]interface{} {
	s.mu.Lock()
	started := s.started
	s.mu.Unlock()

	ctx := context.Background()
	stats := map[string]interface{}{
		"started":       started,
		"defaultTopN":   s.defaultTopN,
		"maxTopN":       s.maxTopN,
		"watchDatasets": s.watchDatasets,
	}

	if snap, err := s.store.Snapshot(ctx); err == nil {
		stats["postings"] = len(snap.Postings)
		stats["skills"] = snap.Taxonomy.Len()
		stats["roadmaps"] = len(snap.Roadmaps)
		stats["snapshotVersion"] = snap.Version
		stats["snapshotLoadedAt"] = snap.LoadedAt

		metrics.UpdateSnapshotCounts(len(snap.Postings), snap.Taxonomy.Len())
	}

	return stats
}
