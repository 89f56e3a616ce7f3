// Package config defines service configuration structures and loading hooks.
//
// Conventions:
// - Provide New() defaults and Load(ctx) layering (defaults -> file -> env).
// - External errors must be wrapped via this package's error helpers.
package config

import (
	"context"
)

// Config contains process configuration. Extend as needed.
type Config struct {
	// LogLevel controls verbosity: debug, info, warn, error.
	LogLevel string `koanf:"log_level"`

	// Addr configures the HTTP listen address, e.g. ":8080".
	Addr string `koanf:"addr"`

	// DefaultTopN is the recommendation count used when a request leaves
	// top_n unset.
	DefaultTopN int `koanf:"default_top_n"`

	// MaxTopN caps the top_n a request may ask for.
	MaxTopN int `koanf:"max_top_n"`

	// SkillsPath points at an external skills document (taxonomy, roadmaps,
	// rubric word lists). Empty means the embedded default.
	SkillsPath string `koanf:"skills_path"`

	// JobsPath points at an external job-listing CSV. Empty means the
	// embedded default.
	JobsPath string `koanf:"jobs_path"`

	// WatchDatasets reloads the snapshot when an external dataset file
	// changes. Ignored when only embedded defaults are in use.
	WatchDatasets bool `koanf:"watch_datasets"`

	// GapLevelWeeks maps roadmap level names to the per-missing-skill
	// learning cost in weeks.
	GapLevelWeeks map[string]int `koanf:"gap_level_weeks"`

	// ResumeMinWords and ResumeMaxWords bound the acceptable resume length.
	ResumeMinWords int `koanf:"resume_min_words"`
	ResumeMaxWords int `koanf:"resume_max_words"`
}

// New creates a Config with defaults. Context is accepted first to satisfy
// the project-wide convention; it is reserved for future use.
func New(_ context.Context) *Config {
	return &Config{
		LogLevel:    "info",
		Addr:        ":9080",
		DefaultTopN: 5,
		MaxTopN:     25,
		GapLevelWeeks: map[string]int{
			"beginner":     1,
			"intermediate": 2,
			"advanced":     3,
		},
		ResumeMinWords: 200,
		ResumeMaxWords: 1200,
	}
}
